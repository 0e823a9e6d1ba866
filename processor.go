package graph

import "iter"

// Processor is the read-only compiled form of a graph, the only
// graph-derived value the audio thread touches. It has no mutation
// surface and shares no state with the graph that produced it.
type Processor struct {
	order       []NodeID
	connections []Connection
	bufferSize  int
}

// Order returns the topologically sorted processing order. The slice
// is owned by the processor and must not be modified.
func (p *Processor) Order() []NodeID {
	return p.order
}

// Connections returns all connections of the compiled graph. The
// slice is owned by the processor and must not be modified.
func (p *Processor) Connections() []Connection {
	return p.connections
}

// BufferSize returns the buffer size the graph was compiled with.
func (p *Processor) BufferSize() int {
	return p.bufferSize
}

// InputsFor returns a lazy view over the connections into a node.
func (p *Processor) InputsFor(node NodeID) iter.Seq[Connection] {
	return func(yield func(Connection) bool) {
		for _, c := range p.connections {
			if c.Dest == node {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// OutputsFrom returns a lazy view over the connections out of a node.
func (p *Processor) OutputsFrom(node NodeID) iter.Seq[Connection] {
	return func(yield func(Connection) bool) {
		for _, c := range p.connections {
			if c.Source == node {
				if !yield(c) {
					return
				}
			}
		}
	}
}
