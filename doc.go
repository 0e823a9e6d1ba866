/*
Package graph provides the execution core of a real-time audio engine:
a mutable processing graph that compiles into an immutable,
allocation-free plan the audio thread runs every block.

Concept

Two execution contexts never meet on a lock. The control thread owns a
Graph: it adds and removes nodes, connects and disconnects ports, and
compiles the topology into a processing order. The audio thread owns
the result of that work: a Processor snapshot walked by a Runner, fed
by the lock-free primitives in the queue and schedule packages.

Topology

A node declares its port shape with NodeInfo and implements the Node
capability: Info, Process, Reset, Name. Connections are directed edges
between ports. Every edit is validated synchronously: unknown nodes
and ports, duplicate edges and cycles (including self-loops) are
rejected at the offending call, so the graph always holds a DAG.

Compilation

Compile orders the nodes with Kahn's algorithm so that every edge
points from an earlier to a later node. A successful compile clears
the dirty flag and allows taking Processor snapshots. Snapshots are
independent values: later edits to the graph never affect a snapshot
already handed to the audio thread.

Execution

A Runner pre-allocates one buffer per output port and resolves every
input port to its upstream buffer when it is created. Each block it
drains parameter mutations from a queue.Queue, applies mutations
scheduled for the block's sample window, and calls Process on every
node in order. Nothing on that path allocates, locks or blocks.
*/
package graph
