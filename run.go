package graph

import (
	"pipelined.dev/graph/queue"
	"pipelined.dev/graph/schedule"
	"pipelined.dev/graph/signal"
)

type (
	// Runner drives a compiled graph block by block on the audio
	// thread. All buffers are allocated and all connections resolved
	// when the runner is created, so ProcessBlock performs no
	// allocation, locking or blocking.
	//
	// Once a runner is created, its nodes belong to the audio thread:
	// the control thread changes parameters only through the mutation
	// queue or the scheduler, both handed over at construction.
	Runner struct {
		uid        string
		sampleRate int
		bufferSize int
		processor  *Processor

		entries []entry
		outputs map[NodeID][]signal.Float64

		mutations *queue.Queue[Mutation]
		events    *schedule.Scheduler[Mutation]
		position  uint64

		// applyEvent is bound once at construction; the per-block
		// scheduler walk must not allocate a closure.
		applyEvent func(uint64, Mutation)
	}

	// entry is one node in processing order with its resolved port
	// buffers. Input buffers alias the outputs of upstream nodes;
	// unconnected input ports get a dedicated silent buffer.
	entry struct {
		id      NodeID
		node    Node
		inputs  []signal.Float64
		outputs []signal.Float64
	}

	// RunnerOption configures a runner.
	RunnerOption func(*Runner)
)

// WithMutations hands the runner the consumer side of a mutation
// queue. The runner drains it at every block boundary.
func WithMutations(q *queue.Queue[Mutation]) RunnerOption {
	return func(r *Runner) {
		r.mutations = q
	}
}

// WithSchedule hands the runner a scheduler of sample-positioned
// mutations. Events due in a block's window are applied before the
// block renders. The scheduler must not be mutated while the runner
// uses it; schedule ahead before handing it over or coordinate
// externally.
func WithSchedule(s *schedule.Scheduler[Mutation]) RunnerOption {
	return func(r *Runner) {
		r.events = s
	}
}

// NewRunner snapshots a compiled graph into a runner. It fails with
// ErrNotCompiled if the graph is dirty, with ChannelError if any
// connection links ports with different channel counts, and with
// PortConflictError if more than one connection feeds the same input
// port.
func NewRunner(g *Graph, options ...RunnerOption) (*Runner, error) {
	processor, err := g.Processor()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		uid:        newUID(),
		sampleRate: g.sampleRate,
		bufferSize: g.bufferSize,
		processor:  processor,
		entries:    make([]entry, 0, len(processor.order)),
		outputs:    make(map[NodeID][]signal.Float64, len(processor.order)),
	}
	for _, option := range options {
		option(r)
	}
	r.applyEvent = func(_ uint64, m Mutation) {
		r.apply(m)
	}

	// First pass: allocate every output port buffer.
	for _, id := range processor.order {
		info := g.nodes[id].info
		outputs := make([]signal.Float64, info.Outputs)
		for port := 0; port < info.Outputs; port++ {
			outputs[port] = signal.EmptyFloat64(info.OutputChannels[port], g.bufferSize)
		}
		r.outputs[id] = outputs
	}

	// Second pass: resolve input ports to upstream output buffers.
	for _, id := range processor.order {
		info := g.nodes[id].info
		inputs := make([]signal.Float64, info.Inputs)
		bound := make([]bool, info.Inputs)
		for port := 0; port < info.Inputs; port++ {
			inputs[port] = signal.EmptyFloat64(info.InputChannels[port], g.bufferSize)
		}
		for c := range processor.InputsFor(id) {
			if bound[c.DestPort] {
				return nil, PortConflictError{Node: id, Port: c.DestPort}
			}
			bound[c.DestPort] = true
			sourceChannels := g.nodes[c.Source].info.OutputChannels[c.SourcePort]
			destChannels := info.InputChannels[c.DestPort]
			if sourceChannels != destChannels {
				return nil, ChannelError{Connection: c, Source: sourceChannels, Dest: destChannels}
			}
			inputs[c.DestPort] = r.outputs[c.Source][c.SourcePort]
		}
		r.entries = append(r.entries, entry{
			id:      id,
			node:    g.nodes[id].node,
			inputs:  inputs,
			outputs: r.outputs[id],
		})
	}

	g.log.Debugf("runner %s: created from graph %s, %d nodes", r.uid, g.uid, len(r.entries))
	return r, nil
}

// String returns the runner's unique id.
func (r *Runner) String() string {
	return r.uid
}

// SampleRate returns the sample rate the runner renders at.
func (r *Runner) SampleRate() int {
	return r.sampleRate
}

// BufferSize returns the maximum frames per block.
func (r *Runner) BufferSize() int {
	return r.bufferSize
}

// Position returns the absolute sample position of the next block.
func (r *Runner) Position() uint64 {
	return r.position
}

// Processor returns the compiled snapshot the runner executes.
func (r *Runner) Processor() *Processor {
	return r.processor
}

// Output returns the rendered buffer of a node's output port, nil if
// the node or port is unknown. The buffer contents are valid until
// the next ProcessBlock.
func (r *Runner) Output(id NodeID, port int) signal.Float64 {
	outputs, ok := r.outputs[id]
	if !ok || port < 0 || port >= len(outputs) {
		return nil
	}
	return outputs[port]
}

// ProcessBlock renders one block: it drains pending mutations,
// applies scheduled mutations due in the block's sample window, and
// executes every node in processing order. Because the order is
// topological, each node's inputs are rendered before the node runs.
func (r *Runner) ProcessBlock(frames int) error {
	if frames < 1 || frames > r.bufferSize {
		return BufferSizeError{Expected: r.bufferSize, Actual: frames}
	}

	if r.mutations != nil {
		for {
			m, err := r.mutations.Pop()
			if err != nil {
				break
			}
			r.apply(m)
		}
	}
	if r.events != nil {
		r.events.ForEachInRange(r.position, r.position+uint64(frames), r.applyEvent)
	}

	for i := range r.entries {
		e := &r.entries[i]
		e.node.Process(e.inputs, e.outputs, frames)
	}

	r.position += uint64(frames)
	if r.events != nil {
		r.events.SetPosition(r.position)
	}
	return nil
}

// apply executes a mutation if its target node is part of this
// runner's snapshot.
func (r *Runner) apply(m Mutation) {
	if _, ok := r.outputs[m.Node]; ok {
		m.Apply()
	}
}

// Reset resets every node, zeroes all port buffers and rewinds the
// position.
func (r *Runner) Reset() {
	for i := range r.entries {
		e := &r.entries[i]
		e.node.Reset()
		for _, buf := range e.outputs {
			buf.Clear()
		}
		for _, buf := range e.inputs {
			buf.Clear()
		}
	}
	r.position = 0
	if r.events != nil {
		r.events.SetPosition(0)
	}
}
