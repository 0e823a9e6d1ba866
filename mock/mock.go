// Package mock provides configurable fake nodes for graph tests.
package mock

import (
	"pipelined.dev/graph"
	"pipelined.dev/graph/signal"
)

// Counter counts processed data.
type Counter struct {
	// Blocks is the number of Process calls.
	Blocks int
	// Samples is the total number of frames processed.
	Samples int
}

// advance counter's metrics.
func (c *Counter) advance(frames int) {
	c.Blocks++
	c.Samples += frames
}

// Node is a mock graph node. Its port shape is configurable; by
// default it is stereo-in/stereo-out. Process adds Value to the first
// input and writes the result to every output port, so signal flow
// through a topology can be asserted.
type Node struct {
	// Shape overrides the default stereo port shape when set.
	Shape *graph.NodeInfo
	// Value is added to the input samples.
	Value float64
	// NodeName overrides the default diagnostic name.
	NodeName string

	// Counter counts Process calls and frames.
	Counter Counter
	// Resets counts Reset calls.
	Resets int
}

// Info returns the configured shape, stereo by default.
func (n *Node) Info() graph.NodeInfo {
	if n.Shape != nil {
		return *n.Shape
	}
	return graph.Stereo()
}

// Process adds Value to the first input port and writes the sum to
// all output ports. Without inputs it writes Value itself.
func (n *Node) Process(inputs, outputs []signal.Float64, frames int) {
	n.Counter.advance(frames)
	for _, out := range outputs {
		for ch := 0; ch < out.NumChannels(); ch++ {
			for frame := 0; frame < frames; frame++ {
				sample := n.Value
				if len(inputs) > 0 && ch < inputs[0].NumChannels() {
					sample += inputs[0][ch][frame]
				}
				out[ch][frame] = sample
			}
		}
	}
}

// Reset counts the call.
func (n *Node) Reset() {
	n.Resets++
}

// Name returns the configured name, "Mock" by default.
func (n *Node) Name() string {
	if n.NodeName != "" {
		return n.NodeName
	}
	return "Mock"
}
