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
	"fmt"
	"strings"

	"github.com/andofcourse/materialize/pkg/errors"
)

// Size selects the scale of the benchmark workflows within a composition.
type Size string

const (
	// SizeMedium is the default scale.
	SizeMedium Size = "benchmark-medium"
	// SizeCI is the small scale used in continuous integration. It pins
	// the worker plan to a single worker so results stay comparable
	// across heterogeneous CI machines.
	SizeCI Size = "benchmark-ci"
	// SizeFull is the large scale.
	SizeFull Size = "benchmark"
)

// Sizes lists the valid sizes.
var Sizes = []Size{SizeMedium, SizeCI, SizeFull}

// ParseSize validates a size name.
func ParseSize(s string) (Size, error) {
	for _, size := range Sizes {
		if Size(s) == size {
			return size, nil
		}
	}
	return "", errors.ErrInvalidConfig.GenWithStackByArgs(
		fmt.Sprintf("size must be one of %s, got %q", sizeNames(), s))
}

// SetupStep returns the composition workflow that prepares data for this
// size.
func (s Size) SetupStep() string {
	return "setup-" + string(s)
}

// RunStep returns the composition workflow that measures this size.
func (s Size) RunStep() string {
	return "run-" + string(s)
}

func sizeNames() string {
	names := make([]string, 0, len(Sizes))
	for _, size := range Sizes {
		names = append(names, string(size))
	}
	return strings.Join(names, ", ")
}
