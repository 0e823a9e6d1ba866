package graph

import (
	"pipelined.dev/graph/signal"
)

// NodeID is an opaque handle to a node within one graph. IDs are
// comparable and usable as map keys, but have no meaning across
// different Graph instances. The zero value never identifies a node.
type NodeID uint64

// Node is the capability every processing unit scheduled by the graph
// implements. It is the only seam between the graph engine and
// concrete DSP, I/O or voice implementations.
type Node interface {
	// Info declares the node's port shape and latency. It must be
	// stable at least for the time the node is registered in a graph.
	Info() NodeInfo
	// Process renders one block of frames from the input port buffers
	// into the output port buffers. It is called on the audio thread
	// and must not allocate, lock or block.
	Process(inputs []signal.Float64, outputs []signal.Float64, frames int)
	// Reset clears the node's internal state.
	Reset()
	// Name returns a diagnostic name.
	Name() string
}

// NodeInfo declares a node's port shape: the number of input and
// output ports, channels per port, and the processing latency the
// node introduces.
type NodeInfo struct {
	// Inputs is the number of input ports.
	Inputs int
	// Outputs is the number of output ports.
	Outputs int
	// InputChannels holds the channel count per input port.
	InputChannels []int
	// OutputChannels holds the channel count per output port.
	OutputChannels []int
	// Latency is the node's processing latency in samples.
	Latency int
}

// Mono returns info for a mono-in/mono-out node.
func Mono() NodeInfo {
	return Custom([]int{1}, []int{1}, 0)
}

// Stereo returns info for a stereo-in/stereo-out node.
func Stereo() NodeInfo {
	return Custom([]int{2}, []int{2}, 0)
}

// Generator returns info for a node without inputs, e.g. an input
// endpoint or an oscillator.
func Generator(channels int) NodeInfo {
	return Custom(nil, []int{channels}, 0)
}

// Sink returns info for a node without outputs, e.g. an analyzer.
func Sink(channels int) NodeInfo {
	return Custom([]int{channels}, nil, 0)
}

// Custom returns info with an arbitrary port configuration. Port
// counts are derived from the channel slices.
func Custom(inputChannels, outputChannels []int, latency int) NodeInfo {
	return NodeInfo{
		Inputs:         len(inputChannels),
		Outputs:        len(outputChannels),
		InputChannels:  inputChannels,
		OutputChannels: outputChannels,
		Latency:        latency,
	}
}
