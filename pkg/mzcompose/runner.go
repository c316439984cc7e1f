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

// Package mzcompose invokes the mzcompose wrapper script that builds and
// runs compositions of Materialize services.
package mzcompose

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/andofcourse/materialize/pkg/errors"
)

// Runner invokes workflows of a single mzcompose composition.
type Runner struct {
	bin         string
	composition string
	execCommand func(argv []string, env []string) ([]byte, error)
}

// NewRunner returns a Runner for the named composition, using the mzcompose
// script under root.
func NewRunner(root, composition string) *Runner {
	return &Runner{
		bin:         filepath.Join(root, "bin", "mzcompose"),
		composition: composition,
		execCommand: runCombined,
	}
}

// Command returns the argv RunStep uses for step, for diagnostics.
func (r *Runner) Command(step string) []string {
	return []string{r.bin, "--mz-find", r.composition, "run", step}
}

// RunStep runs the named workflow of the composition and returns the
// combined stdout and stderr of the child, also on failure. A nil env runs
// the child with the parent's environment unchanged, otherwise the entries
// of env are appended to a copy of the parent's environment.
func (r *Runner) RunStep(step string, env []string) ([]byte, error) {
	return r.execCommand(r.Command(step), env)
}

func runCombined(argv []string, env []string) ([]byte, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	if env != nil {
		cmd.Env = append(os.Environ(), env...)
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return out, errors.Trace(err)
	}
	return out, nil
}

// ExitCode extracts the process exit code carried by err. It returns -1
// when err carries none, for example when the child could not be started.
func ExitCode(err error) int {
	type exitCoder interface {
		ExitCode() int
	}
	for e := errors.Cause(err); e != nil; e = errors.Unwrap(e) {
		if coder, ok := e.(exitCoder); ok {
			return coder.ExitCode()
		}
	}
	return -1
}
