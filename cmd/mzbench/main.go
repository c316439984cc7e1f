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

// mzbench sweeps materialized benchmarks across worker counts and git
// revisions and prints one CSV row per measurement on stdout. Everything
// else it has to say goes to stderr.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/andofcourse/materialize/pkg/bench"
	"github.com/andofcourse/materialize/pkg/errors"
	"github.com/andofcourse/materialize/pkg/mzcompose"
	"github.com/andofcourse/materialize/pkg/sink"
	"github.com/google/uuid"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ExitCodeFailed is the exit code for failures that carry no child
	// exit code of their own.
	ExitCodeFailed = 1
	// ExitCodeInvalidConfig is the exit code for bad flags or a bad
	// config file.
	ExitCodeInvalidConfig = 2
)

func main() {
	if err := initLogger(false); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitCodeFailed)
	}

	o := newOption()
	cmd := &cobra.Command{
		Use:   "mzbench [flags] <composition> [git_references...]",
		Short: "Run benchmark sweeps of materialized across worker counts and revisions",
		Long: `mzbench repeatedly runs a benchmark composition while sweeping the number
of materialized workers and, optionally, several materialized revisions.
Results stream to stdout as CSV, one row per measurement, so they can be
piped into a file or another tool while the sweep is still running.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.verbose {
				if err := initLogger(true); err != nil {
					return errors.Trace(err)
				}
			}
			if err := o.Adjust(cmd.Flags(), args); err != nil {
				return errors.Trace(err)
			}
			return run(o)
		},
	}
	o.addFlags(cmd)

	if err := cmd.Execute(); err != nil {
		log.Error("mzbench failed", zap.Error(err))
		os.Exit(exitCodeForError(err))
	}
}

// initLogger points the global logger at stderr. Stdout carries nothing
// but CSV.
func initLogger(verbose bool) error {
	level := "info"
	if verbose {
		level = "debug"
	}
	cfg := &log.Config{Level: level, Format: "text"}
	stderr := zapcore.Lock(os.Stderr)
	lg, props, err := log.InitLoggerWithWriteSyncer(cfg, stderr, stderr)
	if err != nil {
		return errors.Trace(err)
	}
	log.ReplaceGlobals(lg, props)
	return nil
}

func run(o *option) error {
	// Work out of the repository root so git resolves references against
	// the right repository.
	if err := os.Chdir(o.mzRoot); err != nil {
		return errors.WrapError(errors.ErrInvalidConfig, err, "entering repository root")
	}

	runID := uuid.NewString()
	log.Info("starting benchmark sweep",
		zap.String("runID", runID),
		zap.String("composition", o.composition),
		zap.String("size", string(o.benchSize)),
		zap.String("root", o.mzRoot))

	ctx := context.Background()
	sweep := bench.NewSweep(o.sweepOptions(), os.Stdout)
	if o.sink.MySQLDSN != "" {
		mysqlSink, err := sink.NewMySQL(ctx, o.sink.MySQLDSN, o.sink.Table, runID)
		if err != nil {
			return errors.Trace(err)
		}
		defer mysqlSink.Close()
		sweep.WithSink(mysqlSink)
	}
	return sweep.Run(ctx)
}

// exitCodeForError maps a sweep failure to the process exit code. When the
// benchmark child process failed, its exit code is passed through.
func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	code, ok := errors.RFCCode(err)
	if !ok {
		return ExitCodeFailed
	}
	switch code {
	case errors.ErrInvalidConfig.RFCCode(), errors.ErrRootNotSet.RFCCode():
		return ExitCodeInvalidConfig
	case errors.ErrSetupFailed.RFCCode(), errors.ErrRunFailed.RFCCode():
		if child := mzcompose.ExitCode(err); child > 0 {
			return child
		}
		return ExitCodeFailed
	default:
		return ExitCodeFailed
	}
}
