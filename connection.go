package graph

import "fmt"

// Connection is a directed edge from a source node's output port to a
// destination node's input port. Two connections are equal only if
// all four fields match.
type Connection struct {
	// Source is the node the signal comes from.
	Source NodeID
	// SourcePort is the output port index on the source node.
	SourcePort int
	// Dest is the node the signal goes to.
	Dest NodeID
	// DestPort is the input port index on the destination node.
	DestPort int
}

func (c Connection) String() string {
	return fmt.Sprintf("%d:%d -> %d:%d", c.Source, c.SourcePort, c.Dest, c.DestPort)
}
