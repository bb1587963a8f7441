// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterreservoir

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/reservoir/utils/metric"
)

type metrics struct {
	samples prometheus.Histogram

	updates,
	kept,
	discarded prometheus.Counter

	seen,
	size prometheus.Gauge
}

func newMetrics(
	namespace string,
	registerer prometheus.Registerer,
) (*metrics, error) {
	m := &metrics{
		samples:   metric.NewNanosecondsLatencyMetric(namespace, "samples"),
		updates:   metric.NewCounter(namespace, "updates", "# of items offered to the reservoir"),
		kept:      metric.NewCounter(namespace, "kept", "# of items written into a reservoir slot"),
		discarded: metric.NewCounter(namespace, "discarded", "# of items dropped by the reservoir"),
		seen:      metric.NewGauge(namespace, "seen", "# of items observed since construction"),
		size:      metric.NewGauge(namespace, "size", "# of items currently held"),
	}
	return m, errors.Join(
		registerer.Register(m.samples),
		registerer.Register(m.updates),
		registerer.Register(m.kept),
		registerer.Register(m.discarded),
		registerer.Register(m.seen),
		registerer.Register(m.size),
	)
}
