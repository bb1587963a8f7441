// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/reservoir/utils/logging"
)

const (
	DefaultCapacity         = 1024
	DefaultMetricsNamespace = "reservoir"
)

func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("reservoir", pflag.ContinueOnError)
	fs.Int(CapacityKey, DefaultCapacity, "Maximum number of items held by the reservoir")
	fs.Uint64(SeedKey, 0, "Seed of the reservoir's random source")
	fs.Bool(LockedKey, false, "Serialize every call into the reservoir with a mutex")
	fs.String(MetricsNamespaceKey, DefaultMetricsNamespace, "Namespace of the reservoir's prometheus metrics")
	fs.String(LogLevelKey, strings.ToLower(logging.Info.String()), "The log level. Should be one of {verbo, debug, info, warn, error, fatal, off}")
	return fs
}

// BuildViper parses [args] into [fs] and returns a viper instance that reads
// flags first and falls back to RESERVOIR_* environment variables.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}
