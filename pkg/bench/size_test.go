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
	"testing"

	"github.com/andofcourse/materialize/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	t.Parallel()

	for _, size := range Sizes {
		parsed, err := ParseSize(string(size))
		require.NoError(t, err)
		require.Equal(t, size, parsed)
	}

	_, err := ParseSize("benchmark-huge")
	require.Error(t, err)
	code, ok := errors.RFCCode(err)
	require.True(t, ok)
	require.Equal(t, errors.ErrInvalidConfig.RFCCode(), code)
}

func TestSizeSteps(t *testing.T) {
	t.Parallel()

	require.Equal(t, "setup-benchmark-medium", SizeMedium.SetupStep())
	require.Equal(t, "run-benchmark-medium", SizeMedium.RunStep())
	require.Equal(t, "setup-benchmark-ci", SizeCI.SetupStep())
	require.Equal(t, "run-benchmark", SizeFull.RunStep())
}
