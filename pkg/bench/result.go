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
	"encoding/csv"
	"io"
	"strconv"

	"github.com/andofcourse/materialize/pkg/errors"
)

// NoRevision is the git_revision column value for runs of the current
// checkout, which have no git reference attached.
const NoRevision = "NONE"

// resultColumns is the CSV schema of a sweep. Downstream dashboards key on
// these names, do not reorder.
var resultColumns = []string{
	"git_revision",
	"num_workers",
	"iteration",
	"seconds_taken",
	"rows_per_second",
	"grafana_url",
}

// Result is one benchmark measurement within a sweep.
type Result struct {
	// GitRevision is the reference named on the command line, empty for
	// the current checkout.
	GitRevision string
	// NumWorkers is the MZ_WORKERS value the run was measured at.
	NumWorkers int
	// Iteration counts repeated measurements of the same point from zero.
	Iteration int
	// Measurements carries whatever the run reported about itself.
	Measurements Measurements
}

// RevisionLabel returns the git_revision column value for the result, the
// NONE sentinel when the run used the current checkout.
func (r Result) RevisionLabel() string {
	if r.GitRevision == "" {
		return NoRevision
	}
	return r.GitRevision
}

// ResultWriter streams sweep results as CSV. Every row is flushed as soon
// as it is written so measurements reach the consumer while the sweep is
// still running.
type ResultWriter struct {
	csv *csv.Writer
}

// NewResultWriter returns a ResultWriter emitting to w.
func NewResultWriter(w io.Writer) *ResultWriter {
	return &ResultWriter{csv: csv.NewWriter(w)}
}

// WriteHeader emits the column header row. It must be called once, before
// any result.
func (w *ResultWriter) WriteHeader() error {
	return w.write(resultColumns)
}

// WriteResult emits one measurement row.
func (w *ResultWriter) WriteResult(r Result) error {
	return w.write([]string{
		r.RevisionLabel(),
		strconv.Itoa(r.NumWorkers),
		strconv.Itoa(r.Iteration),
		r.Measurements.SecondsTaken,
		r.Measurements.RowsPerSecond,
		r.Measurements.GrafanaURL,
	})
}

func (w *ResultWriter) write(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return errors.Trace(err)
	}
	w.csv.Flush()
	return errors.Trace(w.csv.Error())
}
