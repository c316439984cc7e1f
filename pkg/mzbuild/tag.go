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

// Package mzbuild maps git references to the tags that mzbuild assigns to
// the images it produces.
package mzbuild

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/andofcourse/materialize/pkg/errors"
)

// Resolver turns user-supplied git references into mzbuild image tags.
// Resolution shells out to git in the current working directory, so the
// caller must already be inside the repository.
type Resolver struct {
	execGit func(args ...string) ([]byte, error)
}

// NewResolver returns a Resolver backed by the git binary on PATH.
func NewResolver() *Resolver {
	return &Resolver{execGit: gitOutput}
}

// BuildTag resolves ref to an mzbuild image tag. Commits pointed at by an
// exact tag resolve to the tag name, anything else resolves to
// "unstable-<commit>". The empty reference resolves to the empty string and
// means the current checkout.
func (r *Resolver) BuildTag(ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	if out, err := r.execGit("describe", "--exact-match", ref); err == nil {
		return string(bytes.TrimSpace(out)), nil
	}
	out, err := r.execGit("rev-parse", "--verify", ref)
	if err != nil {
		return "", errors.WrapError(errors.ErrResolveRevision, err, ref)
	}
	return "unstable-" + string(bytes.TrimSpace(out)), nil
}

// gitOutput runs git and returns its stdout. On failure the error carries
// whatever git printed to stderr.
func gitOutput(args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, errors.Annotate(err, msg)
		}
		return nil, errors.Trace(err)
	}
	return stdout.Bytes(), nil
}
