package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by topology edits and compilation. All of
// them are ordinary recoverable results: a rejected edit is an invalid
// request, not a transient failure, and must be corrected by the
// caller.
var (
	// ErrCycle is returned when a connection would close a loop,
	// including self-loops, or when compilation finds one.
	ErrCycle = errors.New("connection would create a cycle")
	// ErrDuplicateConnection is returned when the exact same edge
	// already exists.
	ErrDuplicateConnection = errors.New("connection already exists")
	// ErrConnectionNotFound is returned by Disconnect when no exact
	// matching edge exists.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrNotCompiled is returned when a processor is requested from a
	// dirty graph.
	ErrNotCompiled = errors.New("graph must be compiled before creating a processor")
)

// NodeError is returned when an operation references a node that is
// not in the graph.
type NodeError struct {
	// Node is the missing node.
	Node NodeID
}

func (e NodeError) Error() string {
	return fmt.Sprintf("node %d not found", e.Node)
}

// PortError is returned when a connection references a port index a
// node doesn't have. Max is the largest valid index, -1 if the node
// has no ports of the requested direction.
type PortError struct {
	// Node is the node the port was requested on.
	Node NodeID
	// Port is the requested port index.
	Port int
	// Max is the maximum valid port index.
	Max int
}

func (e PortError) Error() string {
	return fmt.Sprintf("port %d not found on node %d (max: %d)", e.Port, e.Node, e.Max)
}

// BufferSizeError is returned when a block is requested with a frame
// count the pre-allocated buffers can't hold.
type BufferSizeError struct {
	// Expected is the configured buffer size.
	Expected int
	// Actual is the requested frame count.
	Actual int
}

func (e BufferSizeError) Error() string {
	return fmt.Sprintf("buffer size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// PortConflictError is returned when more than one connection feeds
// the same input port. Implicit fan-in is rejected; summing several
// sources requires an explicit mixing node.
type PortConflictError struct {
	// Node is the node whose input port is over-connected.
	Node NodeID
	// Port is the input port index.
	Port int
}

func (e PortConflictError) Error() string {
	return fmt.Sprintf("input port %d on node %d has multiple connections", e.Port, e.Node)
}

// ChannelError is returned when a connection links ports with
// different channel counts.
type ChannelError struct {
	// Connection is the offending edge.
	Connection Connection
	// Source is the channel count of the source port.
	Source int
	// Dest is the channel count of the destination port.
	Dest int
}

func (e ChannelError) Error() string {
	return fmt.Sprintf("channel count mismatch at %v: source %d, dest %d", e.Connection, e.Source, e.Dest)
}
