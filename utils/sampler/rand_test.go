// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext/prng"
)

type testSource struct {
	t      *testing.T
	values []uint64
}

func (s *testSource) Uint64() uint64 {
	if len(s.values) == 0 {
		s.t.Fatal("Uint64 called more times than expected")
	}

	next := s.values[0]
	s.values = s.values[1:]
	return next
}

func TestRNGFloat64(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected float64
	}{
		{
			name:     "zero",
			value:    0,
			expected: 0,
		},
		{
			name:     "half",
			value:    1 << 63,
			expected: 0.5,
		},
		{
			name:     "low bits ignored",
			value:    1<<11 - 1,
			expected: 0,
		},
		{
			name:     "max",
			value:    math.MaxUint64,
			expected: float64(1<<53-1) / (1 << 53),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			source := &testSource{
				t:      t,
				values: []uint64{test.value},
			}
			rng := NewRNG(source)
			val := rng.Float64()
			require.Equal(t, test.expected, val)
			require.Less(t, val, 1.0)
			require.Empty(t, source.values)
		})
	}
}

func TestRNGUint64Inclusive(t *testing.T) {
	tests := []struct {
		name     string
		bound    uint64
		values   []uint64
		expected uint64
	}{
		{
			name:     "mask power of two",
			bound:    7,
			values:   []uint64{0xff},
			expected: 7,
		},
		{
			name:     "max uint64",
			bound:    math.MaxUint64,
			values:   []uint64{12345},
			expected: 12345,
		},
		{
			name:     "large bound retries",
			bound:    math.MaxInt64 + 1<<62,
			values:   []uint64{math.MaxUint64, 5},
			expected: 5,
		},
		{
			name:     "modulo",
			bound:    2,
			values:   []uint64{10},
			expected: 1,
		},
		{
			name:     "modulo retries above maximum",
			bound:    2,
			values:   []uint64{math.MaxInt64, 4},
			expected: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			source := &testSource{
				t:      t,
				values: test.values,
			}
			rng := NewRNG(source)
			require.Equal(t, test.expected, rng.Uint64Inclusive(test.bound))
			require.Empty(t, source.values)
		})
	}
}

func TestRNGIntn(t *testing.T) {
	require := require.New(t)

	rng := NewSeededRNG(0)
	for _, n := range []int{1, 2, 3, 10, 1000, math.MaxInt} {
		for i := 0; i < 100; i++ {
			v := rng.Intn(n)
			require.GreaterOrEqual(v, 0)
			require.Less(v, n)
		}
	}

	require.Panics(func() { rng.Intn(0) })
	require.Panics(func() { rng.Intn(-1) })
}

func TestSeededRNGMatchesMT19937(t *testing.T) {
	require := require.New(t)

	source := prng.NewMT19937()
	source.Seed(42)

	rng := NewSeededRNG(42)
	for i := 0; i < 100; i++ {
		require.Equal(source.Uint64(), rng.uint64())
	}
}

func TestSeededRNGDeterministic(t *testing.T) {
	require := require.New(t)

	a := NewSeededRNG(7)
	b := NewSeededRNG(7)
	for i := 0; i < 1000; i++ {
		require.Equal(a.Float64(), b.Float64())
		require.Equal(a.Intn(1000), b.Intn(1000))
	}
}
