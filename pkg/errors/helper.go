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

// RFCErrorCode is the machine readable code attached to normalized errors.
type RFCErrorCode = errors.RFCErrorCode

// WrapError wraps err under a normalized error, attaching the RFC code and
// formatting args into the normalized message. A nil err stays nil so call
// sites can wrap unconditionally.
func WrapError(rfcError *errors.Error, err error, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return rfcError.Wrap(err).GenWithStackByArgs(args...)
}

// RFCCode walks the cause chain of err looking for a normalized error and
// returns its RFC code. The second return value reports whether one was found.
func RFCCode(err error) (errors.RFCErrorCode, bool) {
	if err == nil {
		return "", false
	}
	if rfcErr, ok := err.(*errors.Error); ok {
		return rfcErr.RFCCode(), true
	}
	if cause := errors.Unwrap(err); cause != nil {
		return RFCCode(cause)
	}
	type causer interface {
		Cause() error
	}
	if causeErr, ok := err.(causer); ok {
		return RFCCode(causeErr.Cause())
	}
	return "", false
}

// Re-exported helpers so call sites only need this package.
var (
	New       = errors.New
	Errorf    = errors.Errorf
	Trace     = errors.Trace
	Annotate  = errors.Annotate
	Annotatef = errors.Annotatef
	Cause     = errors.Cause
	Unwrap    = errors.Unwrap
)
