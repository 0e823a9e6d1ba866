package graph

// Mutation is a node parameter change shipped from the control thread
// to the audio thread, usually through a queue.Queue[Mutation] or a
// schedule.Scheduler[Mutation]. The closure captures the target
// parameter; the node id lets a runner drop mutations for nodes that
// are not part of its snapshot.
type Mutation struct {
	// Node is the node the mutation targets.
	Node NodeID

	fn func()
}

// Mutate binds a mutator function to the node it targets.
func Mutate(node NodeID, fn func()) Mutation {
	return Mutation{Node: node, fn: fn}
}

// Apply executes the mutator function.
func (m Mutation) Apply() {
	if m.fn != nil {
		m.fn()
	}
}
