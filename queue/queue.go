// Package queue provides a lock-free single-producer single-consumer
// queue for communication with the audio thread.
//
// The queue never blocks either side: Push and Pop return an error
// instead of waiting, so the audio thread can drain pending messages
// inside its block deadline without taking locks or allocating.
//
// The SPSC discipline is a precondition, not something the type
// enforces: exactly one goroutine may call Push and exactly one may
// call Pop and Peek. Go's sync/atomic operations are sequentially
// consistent, which is strictly stronger than the acquire/release
// pairing the protocol needs, so the producer's slot write is visible
// to the consumer once the head store is.
package queue

import (
	"errors"
	"sync/atomic"
)

// ErrFull is returned by Push when the queue is at capacity.
var ErrFull = errors.New("queue is full")

// ErrEmpty is returned by Pop when there is nothing to pop.
var ErrEmpty = errors.New("queue is empty")

const cacheLine = 64

// Queue is a lock-free SPSC ring buffer. Head and tail are
// monotonically increasing cursors, each written by exactly one
// goroutine; slot index is cursor masked by capacity-1. Cursors are
// padded apart to keep producer and consumer off the same cache line.
type Queue[T any] struct {
	head atomic.Uint64 // write cursor, producer-owned
	_    [cacheLine - 8]byte
	tail atomic.Uint64 // read cursor, consumer-owned
	_    [cacheLine - 8]byte

	buffer []T
	mask   uint64
}

// New returns a queue with capacity rounded up to the next power of
// two. It panics if capacity is less than one.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		panic("queue: capacity must be positive")
	}
	size := 1
	for size < capacity {
		size <<= 1
	}
	return &Queue[T]{
		buffer: make([]T, size),
		mask:   uint64(size - 1),
	}
}

// Cap returns the capacity of the queue.
func (q *Queue[T]) Cap() int {
	return len(q.buffer)
}

// Len returns the number of items currently queued. Under concurrent
// use the value is an approximation.
func (q *Queue[T]) Len() int {
	return int(q.head.Load() - q.tail.Load())
}

// Empty returns true if the queue has no items.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Full returns true if the queue is at capacity.
func (q *Queue[T]) Full() bool {
	return q.Len() >= len(q.buffer)
}

// Push adds a value to the queue. It returns ErrFull when the queue
// is at capacity. Only the producer goroutine may call Push.
func (q *Queue[T]) Push(value T) error {
	head := q.head.Load()
	tail := q.tail.Load()
	if head-tail >= uint64(len(q.buffer)) {
		return ErrFull
	}
	q.buffer[head&q.mask] = value
	// Publish the slot write. Consumers observing the new head are
	// guaranteed to observe the write above.
	q.head.Store(head + 1)
	return nil
}

// Pop removes and returns the oldest value. It returns ErrEmpty when
// there is nothing queued. Only the consumer goroutine may call Pop.
func (q *Queue[T]) Pop() (T, error) {
	tail := q.tail.Load()
	head := q.head.Load()
	if tail == head {
		var zero T
		return zero, ErrEmpty
	}
	index := tail & q.mask
	value := q.buffer[index]
	// Clear the slot so popped values don't pin memory.
	var zero T
	q.buffer[index] = zero
	q.tail.Store(tail + 1)
	return value, nil
}

// Peek returns a pointer to the next value to be popped without
// removing it, or false if the queue is empty. The pointer is valid
// only until the next Pop. Only the consumer goroutine may call Peek.
func (q *Queue[T]) Peek() (*T, bool) {
	tail := q.tail.Load()
	head := q.head.Load()
	if tail == head {
		return nil, false
	}
	return &q.buffer[tail&q.mask], true
}

// Reset discards all queued items. It must not be called concurrently
// with Push or Pop.
func (q *Queue[T]) Reset() {
	for i := range q.buffer {
		var zero T
		q.buffer[i] = zero
	}
	q.head.Store(0)
	q.tail.Store(0)
}
