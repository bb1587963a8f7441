// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "sync"

var _ Reservoir[struct{}] = (*lockedReservoir[struct{}])(nil)

type lockedReservoir[T any] struct {
	lock      sync.Mutex
	reservoir Reservoir[T]
}

// NewLocked returns a Reservoir that serializes every call into [reservoir].
// The wrapped reservoir must not be used directly afterwards.
func NewLocked[T any](reservoir Reservoir[T]) Reservoir[T] {
	return &lockedReservoir[T]{reservoir: reservoir}
}

func (r *lockedReservoir[T]) Update(item T) bool {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.reservoir.Update(item)
}

func (r *lockedReservoir[T]) Samples() []T {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.reservoir.Samples()
}

func (r *lockedReservoir[T]) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.reservoir.Len()
}

func (r *lockedReservoir[T]) Capacity() int {
	return r.reservoir.Capacity()
}

func (r *lockedReservoir[T]) Seen() uint64 {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.reservoir.Seen()
}
