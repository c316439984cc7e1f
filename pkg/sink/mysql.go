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

// Package sink stores sweep results in MySQL so sweeps can be compared
// after the fact.
package sink

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"

	"github.com/andofcourse/materialize/pkg/bench"
	"github.com/andofcourse/materialize/pkg/errors"
	_ "github.com/go-sql-driver/mysql"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Table names cannot be bound as statement parameters, so only plain
// identifiers are accepted.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Measurement columns are text, values arrive verbatim from the benchmark
// output and may be empty.
const createTableStmt = `CREATE TABLE IF NOT EXISTS %s (
	id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
	run_id VARCHAR(36) NOT NULL,
	git_revision VARCHAR(255) NOT NULL,
	num_workers INT NOT NULL,
	iteration INT NOT NULL,
	seconds_taken VARCHAR(64) NOT NULL,
	rows_per_second VARCHAR(64) NOT NULL,
	grafana_url VARCHAR(1024) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (id),
	KEY idx_run_id (run_id)
)`

const insertStmt = `INSERT INTO %s (run_id, git_revision, num_workers, iteration, seconds_taken, rows_per_second, grafana_url) VALUES (?, ?, ?, ?, ?, ?, ?)`

// MySQL stores results in one table, every row labeled with the run ID of
// the sweep that produced it.
type MySQL struct {
	db    *sql.DB
	table string
	runID string
}

// NewMySQL connects to dsn and makes sure table exists. The returned sink
// labels every inserted row with runID.
func NewMySQL(ctx context.Context, dsn, table, runID string) (*MySQL, error) {
	if !identifierPattern.MatchString(table) {
		return nil, errors.ErrInvalidConfig.GenWithStackByArgs(
			fmt.Sprintf("sink table name %q is not a plain identifier", table))
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.WrapError(errors.ErrSinkFailed, err, "open")
	}
	s, err := newWithDB(ctx, db, table, runID)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func newWithDB(ctx context.Context, db *sql.DB, table, runID string) (*MySQL, error) {
	if err := db.PingContext(ctx); err != nil {
		return nil, errors.WrapError(errors.ErrSinkFailed, err, "connect")
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf(createTableStmt, table)); err != nil {
		return nil, errors.WrapError(errors.ErrSinkFailed, err, "create table "+table)
	}
	log.Info("result sink ready", zap.String("table", table), zap.String("runID", runID))
	return &MySQL{db: db, table: table, runID: runID}, nil
}

// Insert stores one result row. It implements bench.ResultSink.
func (s *MySQL) Insert(ctx context.Context, r bench.Result) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(insertStmt, s.table),
		s.runID,
		r.RevisionLabel(),
		r.NumWorkers,
		r.Iteration,
		r.Measurements.SecondsTaken,
		r.Measurements.RowsPerSecond,
		r.Measurements.GrafanaURL,
	)
	if err != nil {
		return errors.WrapError(errors.ErrSinkFailed, err, "insert into "+s.table)
	}
	return nil
}

// Close releases the database connection.
func (s *MySQL) Close() {
	if err := s.db.Close(); err != nil {
		log.Warn("close result sink failed", zap.Error(err))
	}
}
