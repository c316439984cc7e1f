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

package bench

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/andofcourse/materialize/pkg/errors"
	"github.com/andofcourse/materialize/pkg/mzbuild"
	"github.com/andofcourse/materialize/pkg/mzcompose"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Options configures a benchmark sweep.
type Options struct {
	// Root is the absolute path to the repository checkout.
	Root string
	// Composition names the mzcompose composition holding the benchmark
	// workflows.
	Composition string
	// Size selects the workflow scale.
	Size Size
	// NumMeasurements is how often each sweep point is measured.
	NumMeasurements int
	// GitReferences lists additional materialized revisions to measure.
	GitReferences []string
	// NoBenchmarkThisCheckout drops the current checkout from the sweep,
	// measuring only GitReferences.
	NoBenchmarkThisCheckout bool
	// WorkerCounts overrides the worker plan derived from the host CPUs.
	WorkerCounts []int
	// Verbose resolves all revisions up front and logs the sweep plan
	// before anything runs.
	Verbose bool
}

// stepRunner runs one workflow of a composition. *mzcompose.Runner
// implements it.
type stepRunner interface {
	Command(step string) []string
	RunStep(step string, env []string) ([]byte, error)
}

// tagResolver maps git references to image tags. *mzbuild.Resolver
// implements it.
type tagResolver interface {
	BuildTag(ref string) (string, error)
}

// ResultSink receives every measurement in addition to the CSV stream.
type ResultSink interface {
	Insert(ctx context.Context, r Result) error
}

// Sweep measures the cartesian product of iterations, worker counts and
// revisions for one composition and streams one CSV row per measurement.
// Any failure aborts the whole sweep, rows already written stay valid.
type Sweep struct {
	opts     Options
	runner   stepRunner
	resolver tagResolver
	results  *ResultWriter
	sink     ResultSink
	hostPlan func() []int
}

// NewSweep returns a Sweep writing CSV to out.
func NewSweep(opts Options, out io.Writer) *Sweep {
	return &Sweep{
		opts:     opts,
		runner:   mzcompose.NewRunner(opts.Root, opts.Composition),
		resolver: mzbuild.NewResolver(),
		results:  NewResultWriter(out),
		hostPlan: HostCPUCounts,
	}
}

// WithSink adds a sink that stores every result row as it is emitted.
func (s *Sweep) WithSink(sink ResultSink) *Sweep {
	s.sink = sink
	return s
}

// Run performs the sweep. The CSV header is written before the benchmark
// is set up, so consumers see it even when no measurement ever completes.
func (s *Sweep) Run(ctx context.Context) error {
	workerCounts := s.workerPlan()
	revisions := s.revisions()

	if s.opts.Verbose {
		tags := make([]string, 0, len(revisions))
		for _, ref := range revisions {
			tag, err := s.resolver.BuildTag(ref)
			if err != nil {
				return errors.Trace(err)
			}
			tags = append(tags, tag)
		}
		log.Debug("sweep plan",
			zap.Int("numMeasurements", s.opts.NumMeasurements),
			zap.Ints("workerCounts", workerCounts),
			zap.Strings("mzbuildTags", tags))
	}

	if err := s.results.WriteHeader(); err != nil {
		return errors.Trace(err)
	}

	setupStep := s.opts.Size.SetupStep()
	if out, err := s.runner.RunStep(setupStep, nil); err != nil {
		s.logStepFailure("setup benchmark failed", setupStep, out, err)
		return errors.WrapError(errors.ErrSetupFailed, err, setupStep)
	}

	for iteration := range s.opts.NumMeasurements {
		for _, workers := range workerCounts {
			for _, ref := range revisions {
				if err := s.runOne(ctx, iteration, workers, ref); err != nil {
					return errors.Trace(err)
				}
			}
		}
	}
	return nil
}

// workerPlan returns the effective worker counts. The CI size always runs
// a single worker regardless of the host or any override.
func (s *Sweep) workerPlan() []int {
	if s.opts.Size == SizeCI {
		return []int{1}
	}
	if len(s.opts.WorkerCounts) > 0 {
		return s.opts.WorkerCounts
	}
	return s.hostPlan()
}

// revisions returns the revisions to measure, the current checkout first.
// The checkout is represented by the empty string.
func (s *Sweep) revisions() []string {
	revisions := make([]string, 0, len(s.opts.GitReferences)+1)
	if !s.opts.NoBenchmarkThisCheckout {
		revisions = append(revisions, "")
	}
	return append(revisions, s.opts.GitReferences...)
}

func (s *Sweep) runOne(ctx context.Context, iteration, workers int, ref string) error {
	env := []string{
		"MZ_ROOT=" + s.opts.Root,
		"MZ_WORKERS=" + strconv.Itoa(workers),
		"MZBUILD_WAIT_FOR_IMAGE=true",
	}
	if ref != "" {
		tag, err := s.resolver.BuildTag(ref)
		if err != nil {
			return errors.Trace(err)
		}
		env = append(env, "MZBUILD_MATERIALIZED_TAG="+tag)
	}

	runStep := s.opts.Size.RunStep()
	out, err := s.runner.RunStep(runStep, env)
	if err != nil {
		s.logStepFailure("run benchmark failed", runStep, out, err,
			zap.Int("iteration", iteration),
			zap.Int("numWorkers", workers),
			zap.String("gitRevision", ref))
		return errors.WrapError(errors.ErrRunFailed, err, runStep)
	}

	result := Result{
		GitRevision:  ref,
		NumWorkers:   workers,
		Iteration:    iteration,
		Measurements: ExtractMeasurements(out),
	}
	if err := s.results.WriteResult(result); err != nil {
		return errors.Trace(err)
	}
	if s.sink != nil {
		if err := s.sink.Insert(ctx, result); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

func (s *Sweep) logStepFailure(msg, step string, out []byte, err error, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("step", step),
		zap.String("command", strings.Join(s.runner.Command(step), " ")),
		zap.Int("exitCode", mzcompose.ExitCode(err)),
		zap.ByteString("output", out),
	}, fields...)
	log.Error(msg, fields...)
}
