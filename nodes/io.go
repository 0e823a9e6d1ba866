package nodes

import (
	"pipelined.dev/graph"
	"pipelined.dev/graph/signal"
)

// Input is the endpoint that brings host audio into the graph. The
// host sets the buffer for the upcoming block before the runner
// renders it; without a buffer the node outputs silence.
type Input struct {
	channels int
	buffer   signal.Float64
}

// NewInput returns an input endpoint with the given channel count.
func NewInput(channels int) *Input {
	return &Input{channels: channels}
}

// SetBuffer sets the host buffer rendered into the next block. The
// buffer is read, not retained beyond Process.
func (n *Input) SetBuffer(buffer signal.Float64) {
	n.buffer = buffer
}

// Info returns the port shape: no inputs, one output.
func (n *Input) Info() graph.NodeInfo {
	return graph.Generator(n.channels)
}

// Process copies the host buffer to the output port, silence if no
// buffer was set.
func (n *Input) Process(_, outputs []signal.Float64, frames int) {
	if len(outputs) == 0 {
		return
	}
	out := outputs[0]
	out.Clear()
	if n.buffer != nil {
		out.CopyFrom(n.buffer)
	}
	n.buffer = nil
}

// Reset drops any pending host buffer.
func (n *Input) Reset() {
	n.buffer = nil
}

// Name returns the node name.
func (n *Input) Name() string {
	return "Input"
}

// Output is the endpoint that carries rendered audio out of the
// graph. It copies its input through; the host reads the result from
// the runner after the block.
type Output struct {
	channels int
}

// NewOutput returns an output endpoint with the given channel count.
func NewOutput(channels int) *Output {
	return &Output{channels: channels}
}

// Info returns the port shape: one input, one output.
func (n *Output) Info() graph.NodeInfo {
	return graph.Custom([]int{n.channels}, []int{n.channels}, 0)
}

// Process copies the input to the output buffer.
func (n *Output) Process(inputs, outputs []signal.Float64, frames int) {
	if len(inputs) == 0 || len(outputs) == 0 {
		return
	}
	outputs[0].CopyFrom(inputs[0])
}

// Reset is a no-op.
func (n *Output) Reset() {}

// Name returns the node name.
func (n *Output) Name() string {
	return "Output"
}
