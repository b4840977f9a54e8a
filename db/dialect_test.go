// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDialect(t *testing.T) {
	tests := []struct {
		dbType  string
		schema  string
		name    string
		table   string
		wantErr bool
	}{
		{"postgres", "yara", "postgres", "yara.incident", false},
		{"postgresql", "", "postgres", "public.incident", false},
		{"sqlite", "yara", "sqlite", "incident", false},
		{"sqlite3", "", "sqlite", "incident", false},
		{"mssql", "yara", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			d, err := NewDialect(tt.dbType, tt.schema)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownDialect))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
			assert.Equal(t, tt.table, d.Table(TableIncident))
		})
	}
}

func TestPostgresRebind(t *testing.T) {
	d := postgresDialect{schema: "yara"}

	tests := []struct {
		in   string
		want string
	}{
		{"SELECT 1", "SELECT 1"},
		{"VALUES (?, ?, ?)", "VALUES ($1, $2, $3)"},
		{"WHERE a LIKE ? AND b = '?' OR c = ?", "WHERE a LIKE $1 AND b = '?' OR c = $2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, d.Rebind(tt.in))
	}
}

func TestSQLiteRebindIsIdentity(t *testing.T) {
	q := "INSERT INTO person VALUES (?, ?, ?, ?)"
	assert.Equal(t, q, sqliteDialect{}.Rebind(q))
}

func TestPostgresIsDuplicateKey(t *testing.T) {
	d := postgresDialect{schema: "yara"}

	dup := &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"}
	fk := &pq.Error{Code: "23503", Message: "insert or update violates foreign key constraint"}

	assert.True(t, d.IsDuplicateKey(dup))
	assert.True(t, d.IsDuplicateKey(fmt.Errorf("insert incident: %w", dup)))
	assert.False(t, d.IsDuplicateKey(fk))
	assert.False(t, d.IsDuplicateKey(errors.New("connection refused")))
	assert.False(t, d.IsDuplicateKey(nil))
}

func TestSearchQueryPlaceholders(t *testing.T) {
	for _, dbType := range []string{"postgres", "sqlite"} {
		t.Run(dbType, func(t *testing.T) {
			d, err := NewDialect(dbType, "yara")
			require.NoError(t, err)

			q := NewQueries(d).Search
			assert.Equal(t, SearchColumns, strings.Count(q, "?"))
			assert.Contains(t, q, d.Like())
			assert.Contains(t, q, d.DateText("arrest_date"))
			assert.Contains(t, q, d.Table(TableArrest))
		})
	}

	d := postgresDialect{schema: "yara"}
	rebound := d.Rebind(NewQueries(d).Search)
	assert.Contains(t, rebound, "$13")
	assert.NotContains(t, rebound, "$14")
}

func TestSearchArgs(t *testing.T) {
	args := SearchArgs("Theft")
	require.Len(t, args, SearchColumns)
	for _, a := range args {
		assert.Equal(t, "%Theft%", a)
	}
}

func TestInsertStatementsBindEveryValue(t *testing.T) {
	q := NewQueries(sqliteDialect{})

	tests := []struct {
		name string
		stmt string
		want int
	}{
		{"incident", q.InsertIncident, 7},
		{"officer", q.InsertOfficer, 5},
		{"person", q.InsertPerson, 4},
		{"evidence", q.InsertEvidence, 5},
		{"arrest", q.InsertArrest, 5},
		{"assign", q.InsertAssign, 3},
		{"contain", q.InsertContain, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strings.Count(tt.stmt, "?"))
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "x.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN("x.db"))
	assert.Equal(t, "file:x.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN("file:x.db?mode=rwc"))
	assert.Equal(t, "x.db?_pragma=foreign_keys(0)", sqliteDSN("x.db?_pragma=foreign_keys(0)"))
}

func TestFormatValue(t *testing.T) {
	midnight := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	afternoon := time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)

	tests := []struct {
		name   string
		value  any
		layout string
		want   string
	}{
		{"timestamp column at midnight", midnight, "2006-01-02 15:04:05", "2024-05-01 00:00:00"},
		{"date column", midnight, "2006-01-02", "2024-05-01"},
		{"untyped midnight", midnight, "", "2024-05-01"},
		{"untyped time of day", afternoon, "", "2024-05-01 13:45:00"},
		{"null", nil, "", ""},
		{"bytes", []byte("abc"), "", "abc"},
		{"integer", int64(42), "", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value, tt.layout))
		})
	}
}
