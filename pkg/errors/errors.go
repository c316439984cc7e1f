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

package errors

import (
	"github.com/pingcap/errors"
)

// Error definitions for the benchmark sweep driver. Every fatal condition of
// a sweep maps to exactly one of these codes; nothing here is retried.
var (
	// ErrRootNotSet is returned when neither --mz-root nor the MZ_ROOT
	// environment variable identifies the repository root.
	ErrRootNotSet = errors.Normalize(
		"repository root not set, pass --mz-root or export MZ_ROOT",
		errors.RFCCodeText("MZBENCH:ErrRootNotSet"),
	)
	// ErrInvalidConfig is returned for bad flags or a bad config file.
	ErrInvalidConfig = errors.Normalize(
		"invalid configuration: %s",
		errors.RFCCodeText("MZBENCH:ErrInvalidConfig"),
	)
	// ErrResolveRevision is returned when a git reference cannot be resolved
	// to any commit. This aborts the sweep before or during the run loop.
	ErrResolveRevision = errors.Normalize(
		"resolve git reference failed: %s",
		errors.RFCCodeText("MZBENCH:ErrResolveRevision"),
	)
	// ErrSetupFailed is returned when the mandatory setup invocation exits
	// non-zero. No sweep point runs after this.
	ErrSetupFailed = errors.Normalize(
		"setup benchmark failed: %s",
		errors.RFCCodeText("MZBENCH:ErrSetupFailed"),
	)
	// ErrRunFailed is returned when a per-point run invocation exits
	// non-zero. Rows emitted for earlier points remain valid.
	ErrRunFailed = errors.Normalize(
		"run benchmark failed: %s",
		errors.RFCCodeText("MZBENCH:ErrRunFailed"),
	)
	// ErrSinkFailed is returned when the optional result sink cannot be
	// reached or cannot accept a row. The sweep is aborted rather than
	// continued with partial storage.
	ErrSinkFailed = errors.Normalize(
		"result sink failed: %s",
		errors.RFCCodeText("MZBENCH:ErrSinkFailed"),
	)
)
