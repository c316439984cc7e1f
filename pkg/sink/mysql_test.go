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

package sink

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/andofcourse/materialize/pkg/bench"
	"github.com/andofcourse/materialize/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testRunID = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"

func newMockSink(t *testing.T) (*MySQL, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(true),
	)
	require.NoError(t, err)

	mock.ExpectPing()
	mock.ExpectExec(fmt.Sprintf(createTableStmt, "mzbench_results")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	s, err := newWithDB(context.Background(), db, "mzbench_results", testRunID)
	require.NoError(t, err)
	return s, mock
}

func TestNewMySQLRejectsBadTableName(t *testing.T) {
	t.Parallel()

	for _, table := range []string{"", "results; drop table x", "na me", "1table", "a.b"} {
		_, err := NewMySQL(context.Background(), "root@tcp(127.0.0.1:3306)/bench", table, testRunID)
		require.Error(t, err, "table %q", table)
		code, ok := errors.RFCCode(err)
		require.True(t, ok)
		require.Equal(t, errors.ErrInvalidConfig.RFCCode(), code)
	}
}

func TestSinkCreatesTable(t *testing.T) {
	t.Parallel()

	s, mock := newMockSink(t)
	mock.ExpectClose()
	s.Close()
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSinkInsert(t *testing.T) {
	t.Parallel()

	s, mock := newMockSink(t)
	mock.ExpectExec(fmt.Sprintf(insertStmt, "mzbench_results")).
		WithArgs(testRunID, "NONE", 8, 0, "92", "108695", "http://localhost:3000/d/overview").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(fmt.Sprintf(insertStmt, "mzbench_results")).
		WithArgs(testRunID, "v0.4.0", 4, 1, "", "", "").
		WillReturnResult(sqlmock.NewResult(2, 1))

	require.NoError(t, s.Insert(context.Background(), bench.Result{
		NumWorkers: 8,
		Iteration:  0,
		Measurements: bench.Measurements{
			SecondsTaken:  "92",
			RowsPerSecond: "108695",
			GrafanaURL:    "http://localhost:3000/d/overview",
		},
	}))
	require.NoError(t, s.Insert(context.Background(), bench.Result{
		GitRevision: "v0.4.0",
		NumWorkers:  4,
		Iteration:   1,
	}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSinkInsertFailure(t *testing.T) {
	t.Parallel()

	s, mock := newMockSink(t)
	mock.ExpectExec(fmt.Sprintf(insertStmt, "mzbench_results")).
		WithArgs(testRunID, "NONE", 2, 0, "", "", "").
		WillReturnError(errors.New("server has gone away"))

	err := s.Insert(context.Background(), bench.Result{NumWorkers: 2})
	require.Error(t, err)
	code, ok := errors.RFCCode(err)
	require.True(t, ok)
	require.Equal(t, errors.ErrSinkFailed.RFCCode(), code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSinkConnectFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual),
		sqlmock.MonitorPingsOption(true),
	)
	require.NoError(t, err)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	_, err = newWithDB(context.Background(), db, "mzbench_results", testRunID)
	require.Error(t, err)
	code, ok := errors.RFCCode(err)
	require.True(t, ok)
	require.Equal(t, errors.ErrSinkFailed.RFCCode(), code)
}
