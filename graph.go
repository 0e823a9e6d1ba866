package graph

import (
	"github.com/rs/xid"

	"pipelined.dev/graph/log"
)

// Graph is a control-thread-owned processing topology. Nodes and
// connections are edited freely, validated on every edit, and
// compiled into a processing order. A graph starts dirty; any edit
// marks it dirty again, and a processor snapshot can only be taken
// from a compiled graph.
//
// Graph is not safe for concurrent use. It belongs to the control
// thread; the audio thread only ever sees Processor snapshots.
type Graph struct {
	uid        string
	sampleRate int
	bufferSize int

	nodes  map[NodeID]nodeEntry
	ids    []NodeID // live node IDs in creation order
	nextID NodeID

	connections []Connection

	dirty           bool
	processingOrder []NodeID
	latency         map[NodeID]int // per-node compensation, zero for now

	log log.Logger
}

// nodeEntry stores a node together with its cached info, so port
// validation doesn't re-query the node on every edit.
type nodeEntry struct {
	node Node
	info NodeInfo
}

// New creates an empty dirty graph with fixed sample rate and buffer
// size.
func New(sampleRate int, bufferSize int) *Graph {
	return &Graph{
		uid:        newUID(),
		sampleRate: sampleRate,
		bufferSize: bufferSize,
		nodes:      make(map[NodeID]nodeEntry),
		dirty:      true,
		latency:    make(map[NodeID]int),
		log:        log.Default(),
	}
}

// newUID returns new unique id value.
func newUID() string {
	return xid.New().String()
}

// String returns the graph's unique id.
func (g *Graph) String() string {
	return g.uid
}

// SampleRate returns the configured sample rate.
func (g *Graph) SampleRate() int {
	return g.sampleRate
}

// BufferSize returns the configured buffer size.
func (g *Graph) BufferSize() int {
	return g.bufferSize
}

// IsDirty returns true if the graph was edited since the last
// successful compilation.
func (g *Graph) IsDirty() bool {
	return g.dirty
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.ids)
}

// ConnectionCount returns the number of connections in the graph.
func (g *Graph) ConnectionCount() int {
	return len(g.connections)
}

// AddNode stores the node and its cached info and returns a fresh id.
func (g *Graph) AddNode(node Node) NodeID {
	g.nextID++
	id := g.nextID
	g.nodes[id] = nodeEntry{node: node, info: node.Info()}
	g.ids = append(g.ids, id)
	g.dirty = true
	g.log.Debugf("graph %s: added node %d %s", g.uid, id, node.Name())
	return id
}

// Node returns the stored node.
func (g *Graph) Node(id NodeID) (Node, error) {
	entry, ok := g.nodes[id]
	if !ok {
		return nil, NodeError{Node: id}
	}
	return entry.node, nil
}

// RemoveNode deletes the node and every connection referencing it as
// source or destination.
func (g *Graph) RemoveNode(id NodeID) error {
	if _, ok := g.nodes[id]; !ok {
		return NodeError{Node: id}
	}
	delete(g.nodes, id)
	for i, liveID := range g.ids {
		if liveID == id {
			g.ids = append(g.ids[:i], g.ids[i+1:]...)
			break
		}
	}
	kept := g.connections[:0]
	for _, c := range g.connections {
		if c.Source != id && c.Dest != id {
			kept = append(kept, c)
		}
	}
	g.connections = kept
	g.dirty = true
	g.log.Debugf("graph %s: removed node %d", g.uid, id)
	return nil
}

// Connect adds a directed edge from the source node's output port to
// the destination node's input port. Both nodes must exist, both port
// indices must be valid for their cached info, the exact edge must
// not already exist, and the edge must not close a loop.
func (g *Graph) Connect(source NodeID, sourcePort int, dest NodeID, destPort int) error {
	sourceEntry, ok := g.nodes[source]
	if !ok {
		return NodeError{Node: source}
	}
	if sourcePort < 0 || sourcePort >= sourceEntry.info.Outputs {
		return PortError{Node: source, Port: sourcePort, Max: sourceEntry.info.Outputs - 1}
	}
	destEntry, ok := g.nodes[dest]
	if !ok {
		return NodeError{Node: dest}
	}
	if destPort < 0 || destPort >= destEntry.info.Inputs {
		return PortError{Node: dest, Port: destPort, Max: destEntry.info.Inputs - 1}
	}

	connection := Connection{Source: source, SourcePort: sourcePort, Dest: dest, DestPort: destPort}
	for _, c := range g.connections {
		if c == connection {
			return ErrDuplicateConnection
		}
	}
	if wouldCycle(g.connections, source, dest) {
		return ErrCycle
	}

	g.connections = append(g.connections, connection)
	g.dirty = true
	g.log.Debugf("graph %s: connected %v", g.uid, connection)
	return nil
}

// Disconnect removes the exact matching connection.
func (g *Graph) Disconnect(source NodeID, sourcePort int, dest NodeID, destPort int) error {
	connection := Connection{Source: source, SourcePort: sourcePort, Dest: dest, DestPort: destPort}
	for i, c := range g.connections {
		if c == connection {
			g.connections = append(g.connections[:i], g.connections[i+1:]...)
			g.dirty = true
			g.log.Debugf("graph %s: disconnected %v", g.uid, connection)
			return nil
		}
	}
	return ErrConnectionNotFound
}

// wouldCycle reports whether adding the edge source -> dest to the
// connection list would close a loop. If source is reachable from
// dest over existing edges, the new edge would complete the cycle
// dest -> ... -> source -> dest. A self-loop is the degenerate case:
// dest reaches source immediately.
func wouldCycle(connections []Connection, source, dest NodeID) bool {
	visited := make(map[NodeID]struct{})
	stack := []NodeID{dest}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == source {
			return true
		}
		if _, ok := visited[id]; ok {
			continue
		}
		visited[id] = struct{}{}
		for _, c := range connections {
			if c.Source == id {
				stack = append(stack, c.Dest)
			}
		}
	}
	return false
}

// Compile determines the processing order with Kahn's algorithm and
// clears the dirty flag. It fails with ErrCycle if the connection set
// is not acyclic; Connect should already prevent that, so the check
// here is defensive. Among simultaneously ready nodes the order is
// FIFO in node creation order.
func (g *Graph) Compile() error {
	inDegree := make(map[NodeID]int, len(g.ids))
	adjacency := make(map[NodeID][]NodeID, len(g.ids))
	for _, id := range g.ids {
		inDegree[id] = 0
	}
	for _, c := range g.connections {
		adjacency[c.Source] = append(adjacency[c.Source], c.Dest)
		inDegree[c.Dest]++
	}

	ready := make([]NodeID, 0, len(g.ids))
	for _, id := range g.ids {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]NodeID, 0, len(g.ids))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)
		for _, next := range adjacency[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				ready = append(ready, next)
			}
		}
	}

	if len(order) != len(g.ids) {
		return ErrCycle
	}

	g.processingOrder = order
	g.compensateLatency()
	g.dirty = false
	g.log.Debugf("graph %s: compiled %d nodes, %d connections", g.uid, len(order), len(g.connections))
	return nil
}

// compensateLatency recomputes the per-node delay table. The table is
// all zero until path-tracing delay compensation is implemented;
// NodeInfo.Latency is already collected so the algorithm can slot in.
func (g *Graph) compensateLatency() {
	clear(g.latency)
	for _, id := range g.ids {
		g.latency[id] = 0
	}
}

// Processor returns an immutable snapshot of the compiled graph for
// the audio thread. It fails with ErrNotCompiled while the graph is
// dirty. The snapshot holds copies of the order and connections and
// keeps no reference back to the graph, so later edits never affect
// it.
func (g *Graph) Processor() (*Processor, error) {
	if g.dirty {
		return nil, ErrNotCompiled
	}
	order := make([]NodeID, len(g.processingOrder))
	copy(order, g.processingOrder)
	connections := make([]Connection, len(g.connections))
	copy(connections, g.connections)
	return &Processor{
		order:       order,
		connections: connections,
		bufferSize:  g.bufferSize,
	}, nil
}
