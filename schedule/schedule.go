// Package schedule provides sample-accurate event scheduling for
// automation and control events.
//
// Events are stored in position-sorted buckets and queried by sample
// window, one window per audio block. The scheduler is populated from
// a control goroutine and queried from the audio goroutine; the
// bucket store itself is not lock-free, so mutation (Schedule,
// DrainBefore, Clear) needs a single writer or an external lock. The
// position cursor is atomic and usable from any goroutine, but it is
// a timing hint for relative scheduling, not a synchronization point.
package schedule

import (
	"iter"
	"sync/atomic"
)

// Event is a scheduled event paired with its absolute sample
// position.
type Event[T any] struct {
	// Position is the absolute sample position the event is due at.
	Position uint64
	// Data is the event payload.
	Data T
}

// bucket holds all events scheduled at one position, in insertion
// order.
type bucket[T any] struct {
	position uint64
	events   []T
}

// Scheduler holds time-stamped events and answers windowed queries
// per audio block without blocking.
type Scheduler[T any] struct {
	buckets  []bucket[T] // sorted by position
	count    int
	position atomic.Uint64
}

// New returns an empty scheduler with the position cursor at zero.
func New[T any]() *Scheduler[T] {
	return &Scheduler[T]{}
}

// Position returns the current playback position in samples.
func (s *Scheduler[T]) Position() uint64 {
	return s.position.Load()
}

// SetPosition sets the current playback position.
func (s *Scheduler[T]) SetPosition(position uint64) {
	s.position.Store(position)
}

// Advance moves the position forward by the given number of samples.
func (s *Scheduler[T]) Advance(samples uint64) {
	s.position.Add(samples)
}

// search returns the index of the first bucket with position >= p.
// Open-coded binary search, the audio goroutine runs it every block
// and must not allocate a predicate closure.
func (s *Scheduler[T]) search(p uint64) int {
	lo, hi := 0, len(s.buckets)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.buckets[mid].position < p {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Schedule adds an event at the given absolute position. Multiple
// events at the same position keep their scheduling order.
func (s *Scheduler[T]) Schedule(position uint64, event T) {
	i := s.search(position)
	if i < len(s.buckets) && s.buckets[i].position == position {
		s.buckets[i].events = append(s.buckets[i].events, event)
	} else {
		s.buckets = append(s.buckets, bucket[T]{})
		copy(s.buckets[i+1:], s.buckets[i:])
		s.buckets[i] = bucket[T]{position: position, events: []T{event}}
	}
	s.count++
}

// ScheduleRelative adds an event offset samples after the current
// position.
func (s *Scheduler[T]) ScheduleRelative(offset uint64, event T) {
	s.Schedule(s.Position()+offset, event)
}

// EventsInRange returns a lazy sequence over all events with position
// in [start, end), ordered by position and then by scheduling order.
// The sequence is restartable and safe to iterate multiple times as
// long as the scheduler is not mutated in between. This is the query
// the audio goroutine runs once per block.
func (s *Scheduler[T]) EventsInRange(start, end uint64) iter.Seq2[uint64, T] {
	return func(yield func(uint64, T) bool) {
		for i := s.search(start); i < len(s.buckets); i++ {
			b := &s.buckets[i]
			if b.position >= end {
				return
			}
			for _, event := range b.events {
				if !yield(b.position, event) {
					return
				}
			}
		}
	}
}

// ForEachInRange calls fn for every event with position in
// [start, end), in the same order as EventsInRange. It builds no
// iterator value, so a caller with a pre-bound fn can run it every
// block without allocating.
func (s *Scheduler[T]) ForEachInRange(start, end uint64, fn func(uint64, T)) {
	for i := s.search(start); i < len(s.buckets); i++ {
		b := &s.buckets[i]
		if b.position >= end {
			return
		}
		for _, event := range b.events {
			fn(b.position, event)
		}
	}
}

// DrainBefore removes and returns all events with position before the
// given one, ordered by position and then by scheduling order. Call
// it periodically from the control goroutine to reclaim memory for
// already-processed blocks.
func (s *Scheduler[T]) DrainBefore(position uint64) []Event[T] {
	n := s.search(position)
	if n == 0 {
		return nil
	}
	var drained []Event[T]
	for i := 0; i < n; i++ {
		b := &s.buckets[i]
		for _, event := range b.events {
			drained = append(drained, Event[T]{Position: b.position, Data: event})
		}
		s.count -= len(b.events)
	}
	kept := copy(s.buckets, s.buckets[n:])
	// Zero the vacated tail so the backing array doesn't pin the
	// drained event slices.
	for i := kept; i < len(s.buckets); i++ {
		s.buckets[i] = bucket[T]{}
	}
	s.buckets = s.buckets[:kept]
	return drained
}

// Clear removes all scheduled events. The position cursor is kept.
func (s *Scheduler[T]) Clear() {
	s.buckets = s.buckets[:0]
	s.count = 0
}

// Len returns the number of scheduled events.
func (s *Scheduler[T]) Len() int {
	return s.count
}

// Empty returns true if no events are scheduled.
func (s *Scheduler[T]) Empty() bool {
	return s.count == 0
}
