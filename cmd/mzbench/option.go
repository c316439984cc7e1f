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

package main

import (
	"os"
	"path/filepath"

	"github.com/andofcourse/materialize/pkg/bench"
	"github.com/andofcourse/materialize/pkg/config"
	"github.com/andofcourse/materialize/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagNumMeasurements         = "num-measurements"
	flagSize                    = "size"
	flagNoBenchmarkThisCheckout = "no-benchmark-this-checkout"
	flagVerbose                 = "verbose"
	flagMzRoot                  = "mz-root"
	flagConfig                  = "config"
)

type option struct {
	numMeasurements         int
	size                    string
	noBenchmarkThisCheckout bool
	verbose                 bool
	mzRoot                  string
	configFile              string

	composition   string
	gitReferences []string
	workerCounts  []int
	benchSize     bench.Size
	sink          config.SinkConfig
}

func newOption() *option {
	return &option{}
}

func (o *option) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.numMeasurements, flagNumMeasurements, "n",
		config.DefaultNumMeasurements, "number of times to repeat each benchmark measurement")
	cmd.Flags().StringVarP(&o.size, flagSize, "s",
		string(bench.SizeMedium), "scale of the benchmark to run (benchmark-medium, benchmark-ci or benchmark)")
	cmd.Flags().BoolVar(&o.noBenchmarkThisCheckout, flagNoBenchmarkThisCheckout,
		false, "don't benchmark the version of materialized in this checkout")
	cmd.Flags().BoolVarP(&o.verbose, flagVerbose, "v", false, "enable verbose logging output")
	cmd.Flags().StringVar(&o.mzRoot, flagMzRoot,
		os.Getenv("MZ_ROOT"), "path to the materialize repository root (defaults to $MZ_ROOT)")
	cmd.Flags().StringVarP(&o.configFile, flagConfig, "c", "", "optional toml configuration file")
}

// Adjust merges the configuration file into the options. A flag given on
// the command line always wins over the file, the file wins over built in
// defaults. The first positional argument names the composition, the rest
// are git references to benchmark as well.
func (o *option) Adjust(flags *pflag.FlagSet, args []string) error {
	cfg := config.NewDefaultConfig()
	if o.configFile != "" {
		loaded, err := config.FromFile(o.configFile)
		if err != nil {
			return errors.Trace(err)
		}
		cfg = loaded
	}

	if !flags.Changed(flagNumMeasurements) {
		o.numMeasurements = cfg.Sweep.NumMeasurements
	}
	if !flags.Changed(flagSize) {
		o.size = cfg.Sweep.Size
	}
	if !flags.Changed(flagNoBenchmarkThisCheckout) {
		o.noBenchmarkThisCheckout = cfg.Sweep.NoBenchmarkThisCheckout
	}
	o.workerCounts = cfg.Sweep.WorkerCounts
	o.sink = cfg.Sink

	if len(args) > 0 {
		o.composition = args[0]
		o.gitReferences = args[1:]
	} else {
		o.composition = cfg.Sweep.Composition
	}
	if o.composition == "" {
		return errors.ErrInvalidConfig.GenWithStackByArgs(
			"a composition must be named on the command line or in the config file")
	}

	size, err := bench.ParseSize(o.size)
	if err != nil {
		return errors.Trace(err)
	}
	o.benchSize = size

	if o.mzRoot == "" {
		return errors.Trace(errors.ErrRootNotSet.GenWithStackByArgs())
	}
	root, err := filepath.Abs(o.mzRoot)
	if err != nil {
		return errors.Trace(err)
	}
	o.mzRoot = root
	return nil
}

func (o *option) sweepOptions() bench.Options {
	return bench.Options{
		Root:                    o.mzRoot,
		Composition:             o.composition,
		Size:                    o.benchSize,
		NumMeasurements:         o.numMeasurements,
		GitReferences:           o.gitReferences,
		NoBenchmarkThisCheckout: o.noBenchmarkThisCheckout,
		WorkerCounts:            o.workerCounts,
		Verbose:                 o.verbose,
	}
}
