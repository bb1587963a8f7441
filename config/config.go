// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ava-labs/reservoir/utils/logging"
	"github.com/ava-labs/reservoir/utils/sampler"
	"github.com/ava-labs/reservoir/utils/sampler/meterreservoir"
)

var errNegativeCapacity = errors.New("capacity must be non-negative")

type Config struct {
	Capacity         int           `json:"capacity"`
	Seed             uint64        `json:"seed"`
	Locked           bool          `json:"locked"`
	MetricsNamespace string        `json:"metricsNamespace"`
	LogLevel         logging.Level `json:"logLevel"`
}

func (c Config) Verify() error {
	if c.Capacity < 0 {
		return fmt.Errorf("%w: got %d", errNegativeCapacity, c.Capacity)
	}
	return nil
}

// NewLogger returns a JSON logger writing to [w] at the configured level.
func (c Config) NewLogger(w io.Writer) logging.Logger {
	return logging.NewLogger(
		"reservoir",
		logging.NewWrappedCore(c.LogLevel, w, logging.NewJSONEncoder()),
	)
}

func GetConfig(v *viper.Viper) (Config, error) {
	logLevel, err := logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Capacity:         v.GetInt(CapacityKey),
		Seed:             v.GetUint64(SeedKey),
		Locked:           v.GetBool(LockedKey),
		MetricsNamespace: v.GetString(MetricsNamespaceKey),
		LogLevel:         logLevel,
	}
	return config, config.Verify()
}

// New builds a reservoir seeded with [config.Seed]. If [registerer] is non-nil
// the reservoir reports metrics to it. If [config.Locked] is set the returned
// reservoir is safe for concurrent use.
func New[T any](
	config Config,
	log logging.Logger,
	registerer prometheus.Registerer,
) (sampler.Reservoir[T], error) {
	if err := config.Verify(); err != nil {
		log.Error("invalid reservoir config",
			zap.Error(err),
		)
		return nil, err
	}

	r, err := sampler.NewReservoir[T](config.Capacity, sampler.NewSeededRNG(config.Seed))
	if err != nil {
		return nil, err
	}

	if registerer != nil {
		metered, err := meterreservoir.New[T](config.MetricsNamespace, registerer, r)
		if err != nil {
			log.Error("failed to register reservoir metrics",
				zap.String("namespace", config.MetricsNamespace),
				zap.Error(err),
			)
			return nil, fmt.Errorf("couldn't register reservoir metrics: %w", err)
		}
		r = metered
	}

	if config.Locked {
		r = sampler.NewLocked(r)
	}

	log.Info("created reservoir",
		zap.Int("capacity", config.Capacity),
		zap.Uint64("seed", config.Seed),
		zap.Bool("locked", config.Locked),
		zap.Bool("metered", registerer != nil),
	)
	return r, nil
}
