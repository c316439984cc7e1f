// Copyright 2026 Materialize, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the file form of the mzbench options.
package config

import (
	"fmt"
	"slices"

	"github.com/andofcourse/materialize/pkg/bench"
	"github.com/andofcourse/materialize/pkg/errors"
)

const (
	// DefaultNumMeasurements is how often each sweep point is measured
	// when neither flag nor file say otherwise.
	DefaultNumMeasurements = 6

	// DefaultSinkTable is the table the result sink writes to.
	DefaultSinkTable = "mzbench_results"
)

// Config mirrors the command line of mzbench, [sweep] for the sweep itself
// and [sink] for the optional result store. Flags take precedence over the
// file.
type Config struct {
	Sweep SweepConfig `toml:"sweep" json:"sweep"`
	Sink  SinkConfig  `toml:"sink" json:"sink"`
}

// SweepConfig configures what a sweep measures.
type SweepConfig struct {
	// NumMeasurements is how often each sweep point is measured.
	NumMeasurements int `toml:"num-measurements" json:"num-measurements"`

	// Size is the benchmark scale, one of benchmark-medium, benchmark-ci
	// or benchmark.
	Size string `toml:"size" json:"size"`

	// Composition names the mzcompose composition holding the benchmark
	// workflows. A composition given on the command line wins.
	Composition string `toml:"composition" json:"composition"`

	// NoBenchmarkThisCheckout drops the current checkout from the sweep.
	NoBenchmarkThisCheckout bool `toml:"no-benchmark-this-checkout" json:"no-benchmark-this-checkout"`

	// WorkerCounts overrides the worker plan derived from the host CPUs.
	// The benchmark-ci size ignores it and always runs one worker.
	WorkerCounts []int `toml:"worker-counts" json:"worker-counts"`
}

// SinkConfig configures the optional MySQL result sink. An empty DSN
// disables the sink.
type SinkConfig struct {
	// MySQLDSN is the go-sql-driver DSN of the results database.
	MySQLDSN string `toml:"mysql-dsn" json:"mysql-dsn"`

	// Table is the table results are inserted into. It is created when
	// missing.
	Table string `toml:"table" json:"table"`
}

// NewDefaultConfig returns the configuration used when no file is given.
func NewDefaultConfig() *Config {
	return &Config{
		Sweep: SweepConfig{
			NumMeasurements: DefaultNumMeasurements,
			Size:            string(bench.SizeMedium),
		},
		Sink: SinkConfig{
			Table: DefaultSinkTable,
		},
	}
}

// FromFile reads path on top of the defaults. Unknown keys and invalid
// values are rejected.
func FromFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := StrictDecodeFile(path, cfg); err != nil {
		return nil, errors.Trace(err)
	}
	if err := cfg.ValidateAndAdjust(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// ValidateAndAdjust checks the configuration and normalizes it in place.
func (c *Config) ValidateAndAdjust() error {
	if _, err := bench.ParseSize(c.Sweep.Size); err != nil {
		return errors.Trace(err)
	}
	if len(c.Sweep.WorkerCounts) > 0 {
		counts := make([]int, 0, len(c.Sweep.WorkerCounts))
		for _, n := range c.Sweep.WorkerCounts {
			if n <= 0 {
				return errors.ErrInvalidConfig.GenWithStackByArgs(
					fmt.Sprintf("worker-counts entries must be strictly positive, got %d", n))
			}
			if !slices.Contains(counts, n) {
				counts = append(counts, n)
			}
		}
		c.Sweep.WorkerCounts = counts
	}
	if c.Sink.MySQLDSN != "" && c.Sink.Table == "" {
		return errors.ErrInvalidConfig.GenWithStackByArgs("sink table must not be empty")
	}
	return nil
}
