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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnumerateCPUCounts(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		hostCPUs int
		want     []int
	}{
		{1, []int{}},
		{2, []int{1}},
		{4, []int{2, 1}},
		{8, []int{3, 2, 1}},
		{16, []int{7, 5, 4, 2}},
		{20, []int{8, 6, 4, 2}},
		{56, []int{24, 18, 12, 6}},
		{96, []int{41, 31, 20, 10}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%dcpus", tc.hostCPUs), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, EnumerateCPUCounts(tc.hostCPUs))
		})
	}
}

func TestEnumerateCPUCountsShape(t *testing.T) {
	t.Parallel()

	for hostCPUs := 1; hostCPUs <= 256; hostCPUs++ {
		counts := EnumerateCPUCounts(hostCPUs)
		require.LessOrEqual(t, len(counts), planTrials, "host %d", hostCPUs)
		for i, n := range counts {
			require.Positive(t, n, "host %d", hostCPUs)
			if i > 0 {
				require.Greater(t, counts[i-1], n, "host %d", hostCPUs)
			}
		}
	}
}

func TestHostCPUCounts(t *testing.T) {
	t.Parallel()

	counts := HostCPUCounts()
	for _, n := range counts {
		require.Positive(t, n)
	}
}
