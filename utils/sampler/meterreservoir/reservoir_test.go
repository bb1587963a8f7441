// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterreservoir

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/reservoir/utils/sampler"
)

func TestReservoirMetrics(t *testing.T) {
	require := require.New(t)

	base, err := sampler.NewReservoir[int](10, sampler.NewSeededRNG(0))
	require.NoError(err)

	registry := prometheus.NewRegistry()
	r, err := New[int]("test", registry, base)
	require.NoError(err)

	const length = 1_000
	var kept int
	for i := 0; i < length; i++ {
		if r.Update(i) {
			kept++
		}
	}
	require.Len(r.Samples(), 10)

	require.Equal(float64(length), testutil.ToFloat64(r.metrics.updates))
	require.Equal(float64(kept), testutil.ToFloat64(r.metrics.kept))
	require.Equal(float64(length-kept), testutil.ToFloat64(r.metrics.discarded))
	require.Equal(float64(length), testutil.ToFloat64(r.metrics.seen))
	require.Equal(10.0, testutil.ToFloat64(r.metrics.size))
	require.Equal(1, testutil.CollectAndCount(r.metrics.samples))
}

func TestReservoirMatchesWrapped(t *testing.T) {
	require := require.New(t)

	plain, err := sampler.NewReservoir[string](4, sampler.NewSeededRNG(17))
	require.NoError(err)
	wrapped, err := sampler.NewReservoir[string](4, sampler.NewSeededRNG(17))
	require.NoError(err)

	r, err := New[string]("", prometheus.NewRegistry(), wrapped)
	require.NoError(err)
	require.Equal(4, r.Capacity())

	for _, item := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		require.Equal(plain.Update(item), r.Update(item))
	}
	require.Equal(plain.Samples(), r.Samples())
	require.Equal(plain.Len(), r.Len())
	require.Equal(plain.Seen(), r.Seen())
}

func TestNewDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	base, err := sampler.NewReservoir[int](1, sampler.NewSeededRNG(0))
	require.NoError(err)

	_, err = New[int]("dup", registry, base)
	require.NoError(err)

	_, err = New[int]("dup", registry, base)
	var alreadyRegistered prometheus.AlreadyRegisteredError
	require.ErrorAs(err, &alreadyRegistered)
}
