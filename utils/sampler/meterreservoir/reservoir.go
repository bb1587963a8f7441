// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterreservoir

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/reservoir/utils/sampler"
)

var _ sampler.Reservoir[struct{}] = (*Reservoir[struct{}])(nil)

// Reservoir reports prometheus metrics for every call into the wrapped
// reservoir. It has the same concurrency requirements as the reservoir it
// wraps.
type Reservoir[T any] struct {
	metrics   *metrics
	reservoir sampler.Reservoir[T]
}

func New[T any](
	namespace string,
	registerer prometheus.Registerer,
	reservoir sampler.Reservoir[T],
) (*Reservoir[T], error) {
	metrics, err := newMetrics(namespace, registerer)
	return &Reservoir[T]{
		metrics:   metrics,
		reservoir: reservoir,
	}, err
}

func (r *Reservoir[T]) Update(item T) bool {
	kept := r.reservoir.Update(item)

	r.metrics.updates.Inc()
	if kept {
		r.metrics.kept.Inc()
	} else {
		r.metrics.discarded.Inc()
	}
	r.metrics.seen.Set(float64(r.reservoir.Seen()))
	r.metrics.size.Set(float64(r.reservoir.Len()))
	return kept
}

func (r *Reservoir[T]) Samples() []T {
	start := time.Now()
	samples := r.reservoir.Samples()
	end := time.Since(start)
	r.metrics.samples.Observe(float64(end))
	return samples
}

func (r *Reservoir[T]) Len() int {
	return r.reservoir.Len()
}

func (r *Reservoir[T]) Capacity() int {
	return r.reservoir.Capacity()
}

func (r *Reservoir[T]) Seen() uint64 {
	return r.reservoir.Seen()
}
