// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

var (
	ErrNegativeCapacity = errors.New("reservoir capacity must be non-negative")
	ErrNilSource        = errors.New("reservoir requires a random source")

	_ Reservoir[struct{}] = (*reservoir[struct{}])(nil)
)

// Reservoir maintains a uniform sample of fixed capacity over a stream of
// unknown length.
//
// Implementations returned by NewReservoir are not safe for concurrent use.
// Callers that feed a Reservoir from multiple goroutines must serialize the
// calls themselves, or wrap it with NewLocked.
type Reservoir[T any] interface {
	// Update offers the next stream item to the reservoir and reports whether
	// it was kept.
	Update(item T) bool

	// Samples returns a copy of the current reservoir contents. The order of
	// the returned items carries no meaning.
	Samples() []T

	// Len returns the number of items currently held, min(Seen, Capacity).
	Len() int

	// Capacity returns the maximum number of items held.
	Capacity() int

	// Seen returns the number of items offered since construction.
	Seen() uint64
}

// reservoir implements Algorithm R.
//
// Until [capacity] items have been seen every item is appended. After that
// the n'th item is kept with probability capacity/n and, if kept, replaces a
// uniformly chosen slot.
//
// Update takes O(1) time. Memory is O(capacity).
type reservoir[T any] struct {
	source   RandomSource
	capacity int
	seen     uint64
	slots    []T
}

// NewReservoir returns an empty reservoir that holds at most [capacity]
// items, drawing its randomness from [source].
func NewReservoir[T any](capacity int, source RandomSource) (Reservoir[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if source == nil {
		return nil, ErrNilSource
	}
	return &reservoir[T]{
		source:   source,
		capacity: capacity,
		slots:    make([]T, 0, capacity),
	}, nil
}

func (r *reservoir[T]) Update(item T) bool {
	if r.seen < uint64(r.capacity) {
		r.slots = append(r.slots, item)
		r.seen++
		return true
	}

	// The counter is bumped before the draw so that [item] is the n'th item,
	// 1-indexed.
	r.seen++
	if r.source.Float64()*float64(r.seen) >= float64(r.capacity) {
		return false
	}
	r.slots[r.source.Intn(r.capacity)] = item
	return true
}

func (r *reservoir[T]) Samples() []T {
	samples := make([]T, len(r.slots))
	copy(samples, r.slots)
	return samples
}

func (r *reservoir[T]) Len() int {
	return len(r.slots)
}

func (r *reservoir[T]) Capacity() int {
	return r.capacity
}

func (r *reservoir[T]) Seen() uint64 {
	return r.seen
}
