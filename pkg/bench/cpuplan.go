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

// Package bench drives benchmark sweeps of materialized across worker
// counts and git revisions and emits one CSV row per measurement.
package bench

import (
	"math"
	"runtime"
	"slices"
)

// cpuFraction is the share of host CPUs handed to materialized workers.
// The rest is left for system and background processing, and for hosts with
// hyperthreading it keeps the count near the physical core budget.
const cpuFraction = 0.425

// planTrials is the number of evenly spaced worker counts tried per sweep.
const planTrials = 4

// EnumerateCPUCounts returns the worker counts to benchmark on a host with
// hostCPUs logical CPUs, largest first. The counts are evenly spaced
// fractions of the usable CPU budget, deduplicated, and anything not
// strictly positive is dropped. A one CPU host yields an empty plan.
//
// Rounding is half to even throughout, so a 56 core machine yields
// [24 18 12 6] and a 96 core machine yields [41 31 20 10].
func EnumerateCPUCounts(hostCPUs int) []int {
	maxCPUs := math.RoundToEven(float64(hostCPUs) * cpuFraction)
	counts := make([]int, 0, planTrials)
	for i := planTrials; i > 0; i-- {
		n := int(math.RoundToEven(float64(i) * maxCPUs / planTrials))
		if n <= 0 {
			continue
		}
		if !slices.Contains(counts, n) {
			counts = append(counts, n)
		}
	}
	return counts
}

// HostCPUCounts returns the worker count plan for the host running the
// sweep.
func HostCPUCounts() []int {
	return EnumerateCPUCounts(runtime.NumCPU())
}
