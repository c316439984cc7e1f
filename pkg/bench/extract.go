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
	"strings"
)

// Markers the benchmark workflows print on their output.
const (
	successPrefix     = "SUCCESS!"
	secondsTakenToken = "seconds_taken="
	rowsPerSecToken   = "rows_per_sec="
	grafanaURLPrefix  = "Grafana URL: "
)

// Measurements holds the values one benchmark run reported on its output.
// Values are kept verbatim as printed. A marker the run never printed
// leaves its field empty.
type Measurements struct {
	SecondsTaken  string
	RowsPerSecond string
	GrafanaURL    string
}

// ExtractMeasurements scans the combined output of a benchmark run for
// result markers. Lines starting with "SUCCESS!" carry whitespace separated
// seconds_taken= and rows_per_sec= tokens, a "Grafana URL: " line names the
// dashboard that observed the run. When a marker repeats, the last
// occurrence wins.
//
// TODO: read results from a well known file written by the composition
// instead of scraping its output.
func ExtractMeasurements(output []byte) Measurements {
	var m Measurements
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.HasPrefix(line, successPrefix) {
			for _, token := range strings.Fields(line) {
				if v, ok := strings.CutPrefix(token, secondsTakenToken); ok {
					m.SecondsTaken = v
				} else if v, ok := strings.CutPrefix(token, rowsPerSecToken); ok {
					m.RowsPerSecond = v
				}
			}
		} else if v, ok := strings.CutPrefix(line, grafanaURLPrefix); ok {
			m.GrafanaURL = v
		}
	}
	return m
}
