// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	CapacityKey         = "capacity"
	SeedKey             = "seed"
	LockedKey           = "locked"
	MetricsNamespaceKey = "metrics-namespace"
	LogLevelKey         = "log-level"

	// EnvPrefix is prepended to every key when reading environment
	// variables, e.g. RESERVOIR_CAPACITY.
	EnvPrefix = "reservoir"
)
