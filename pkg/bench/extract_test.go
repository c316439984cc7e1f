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

	"github.com/stretchr/testify/require"
)

func TestExtractMeasurements(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		output string
		want   Measurements
	}{
		{
			name:   "empty output",
			output: "",
			want:   Measurements{},
		},
		{
			name:   "no markers",
			output: "Creating network benchmark_default\nStarting materialized ... done\n",
			want:   Measurements{},
		},
		{
			name:   "success line",
			output: "SUCCESS! seconds_taken=92 rows_per_sec=108695\n",
			want:   Measurements{SecondsTaken: "92", RowsPerSecond: "108695"},
		},
		{
			name: "markers between noise",
			output: "Pulling grafana ... done\n" +
				"SUCCESS! query=q01 seconds_taken=41.5 rows_per_sec=2409\n" +
				"Grafana URL: http://localhost:3000/d/materialize-overview?from=16&to=32\n" +
				"Stopping containers\n",
			want: Measurements{
				SecondsTaken:  "41.5",
				RowsPerSecond: "2409",
				GrafanaURL:    "http://localhost:3000/d/materialize-overview?from=16&to=32",
			},
		},
		{
			name: "last occurrence wins",
			output: "SUCCESS! seconds_taken=10 rows_per_sec=100\n" +
				"Grafana URL: http://localhost:3000/d/one\n" +
				"SUCCESS! seconds_taken=20 rows_per_sec=200\n" +
				"Grafana URL: http://localhost:3000/d/two\n",
			want: Measurements{
				SecondsTaken:  "20",
				RowsPerSecond: "200",
				GrafanaURL:    "http://localhost:3000/d/two",
			},
		},
		{
			name: "later line with fewer tokens keeps earlier values",
			output: "SUCCESS! seconds_taken=10 rows_per_sec=100\n" +
				"SUCCESS! seconds_taken=30\n",
			want: Measurements{SecondsTaken: "30", RowsPerSecond: "100"},
		},
		{
			name:   "markers must start the line",
			output: "  SUCCESS! seconds_taken=5\nsee Grafana URL: http://localhost:3000\n",
			want:   Measurements{},
		},
		{
			name:   "carriage returns stripped",
			output: "SUCCESS! seconds_taken=7 rows_per_sec=9\r\nGrafana URL: http://localhost:3000/d/x\r\n",
			want: Measurements{
				SecondsTaken:  "7",
				RowsPerSecond: "9",
				GrafanaURL:    "http://localhost:3000/d/x",
			},
		},
		{
			name:   "similar token names do not match",
			output: "SUCCESS! seconds_taken_total=1 rows_per_second=2 seconds_taken=3\n",
			want:   Measurements{SecondsTaken: "3"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ExtractMeasurements([]byte(tc.output)))
		})
	}
}
