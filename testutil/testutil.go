// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/umpd-yara/yara-records/db"
	"github.com/umpd-yara/yara-records/models"
)

// SetupTestDB opens a fresh SQLite database in a temp dir with the full
// YARA schema. The gateway is closed when the test ends.
func SetupTestDB(t *testing.T) *db.Gateway {
	t.Helper()

	gw := SetupEmptyDB(t)
	if err := db.CreateSchema(context.Background(), gw); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return gw
}

// SetupEmptyDB opens a fresh SQLite database with no tables.
func SetupEmptyDB(t *testing.T) *db.Gateway {
	t.Helper()

	path := filepath.Join(t.TempDir(), "yara.db")
	gw, err := db.Open(context.Background(), "sqlite", path, "")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { gw.Close() })

	return gw
}

// Call is one statement seen by a SpyRunner.
type Call struct {
	Query string
	Args  []any
}

// SpyRunner records every call before passing it to the wrapped runner.
// With a nil runner, queries return an empty table and execs succeed.
type SpyRunner struct {
	Runner db.Runner

	mu      sync.Mutex
	queries []Call
	execs   []Call
}

func NewSpyRunner(r db.Runner) *SpyRunner {
	return &SpyRunner{Runner: r}
}

func (s *SpyRunner) Query(ctx context.Context, query string, args ...any) (*models.Table, error) {
	s.mu.Lock()
	s.queries = append(s.queries, Call{Query: query, Args: args})
	s.mu.Unlock()

	if s.Runner == nil {
		return &models.Table{}, nil
	}
	return s.Runner.Query(ctx, query, args...)
}

func (s *SpyRunner) Exec(ctx context.Context, stmt string, args ...any) error {
	s.mu.Lock()
	s.execs = append(s.execs, Call{Query: stmt, Args: args})
	s.mu.Unlock()

	if s.Runner == nil {
		return nil
	}
	return s.Runner.Exec(ctx, stmt, args...)
}

func (s *SpyRunner) Dialect() db.Dialect {
	if s.Runner == nil {
		d, _ := db.NewDialect("sqlite", "")
		return d
	}
	return s.Runner.Dialect()
}

func (s *SpyRunner) Queries() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.queries...)
}

func (s *SpyRunner) Execs() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.execs...)
}

// Calls returns the total number of backend calls.
func (s *SpyRunner) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries) + len(s.execs)
}

// InsertTestIncident inserts an incident row directly
func InsertTestIncident(t *testing.T, r db.Runner, id, incidentType, city, status string) {
	t.Helper()

	q := db.NewQueries(r.Dialect())
	err := r.Exec(context.Background(), q.InsertIncident,
		id, incidentType, "1 Main St", city, "20742", status, "2024-03-15")
	if err != nil {
		t.Fatalf("Failed to create test incident: %v", err)
	}
}

// InsertTestOfficer inserts an officer row directly
func InsertTestOfficer(t *testing.T, r db.Runner, id, name string) {
	t.Helper()

	q := db.NewQueries(r.Dialect())
	err := r.Exec(context.Background(), q.InsertOfficer,
		id, name, "3015550100", "1980-01-01", "2015-06-01")
	if err != nil {
		t.Fatalf("Failed to create test officer: %v", err)
	}
}

// InsertTestPerson inserts a person row directly
func InsertTestPerson(t *testing.T, r db.Runner, ssn, name, phone string) {
	t.Helper()

	q := db.NewQueries(r.Dialect())
	err := r.Exec(context.Background(), q.InsertPerson, ssn, name, "1990-07-04", phone)
	if err != nil {
		t.Fatalf("Failed to create test person: %v", err)
	}
}

// InsertTestArrest inserts an arrest row directly; date uses yyyy-mm-dd hh:mi:ss
func InsertTestArrest(t *testing.T, r db.Runner, id, date, location, status, ssn string) {
	t.Helper()

	q := db.NewQueries(r.Dialect())
	err := r.Exec(context.Background(), q.InsertArrest, id, date, location, status, ssn)
	if err != nil {
		t.Fatalf("Failed to create test arrest: %v", err)
	}
}

// CountRows returns the number of rows in a table matching an optional
// where clause with bound args.
func CountRows(t *testing.T, r db.Runner, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + r.Dialect().Table(table)
	if where != "" {
		query += " WHERE " + where
	}
	tbl, err := r.Query(context.Background(), query, args...)
	if err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if tbl.Len() != 1 {
		t.Fatalf("Expected one count row, got %d", tbl.Len())
	}

	n, err := strconv.Atoi(tbl.Rows[0][0])
	if err != nil {
		t.Fatalf("Failed to parse count %q: %v", tbl.Rows[0][0], err)
	}
	return n
}

// MakeFormRequest creates a POST request with a urlencoded body
func MakeFormRequest(path string, form map[string]string) *http.Request {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertBodyContains checks that the response body contains every fragment
func AssertBodyContains(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := w.Body.String()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("Expected body to contain %q. Body: %s", f, body)
		}
	}
}
