// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var ErrUnknownDialect = errors.New("unknown database type")

// Dialect captures the SQL differences between the supported stores.
// Statements are written with ? placeholders and unqualified table names.
type Dialect interface {
	Name() string
	// DriverName is the database/sql driver to open.
	DriverName() string
	// Table returns the qualified name of a YARA table.
	Table(name string) string
	// Rebind rewrites ? placeholders into the store's positional form.
	Rebind(query string) string
	// Like is the case-insensitive pattern operator.
	Like() string
	// DateText renders a timestamp column as yyyy-mm-dd hh:mi:ss text.
	DateText(column string) string
	// CreateSchemaStmt creates the namespace holding the tables, or "".
	CreateSchemaStmt() string
	// ListTablesQuery lists table names in the YARA namespace.
	ListTablesQuery() (string, []any)
	// IsDuplicateKey reports a primary-key or unique constraint violation.
	IsDuplicateKey(err error) bool
}

// NewDialect returns the dialect for a configured database type.
func NewDialect(dbType, schema string) (Dialect, error) {
	switch dbType {
	case "postgres", "postgresql":
		if schema == "" {
			schema = "public"
		}
		return postgresDialect{schema: schema}, nil
	case "sqlite", "sqlite3":
		return sqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dbType)
	}
}

type postgresDialect struct {
	schema string
}

func (d postgresDialect) Name() string       { return "postgres" }
func (d postgresDialect) DriverName() string { return "postgres" }
func (d postgresDialect) Like() string       { return "ILIKE" }

func (d postgresDialect) Table(name string) string {
	return d.schema + "." + name
}

func (d postgresDialect) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 16)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func (d postgresDialect) DateText(column string) string {
	return "to_char(" + column + ", 'YYYY-MM-DD HH24:MI:SS')"
}

func (d postgresDialect) CreateSchemaStmt() string {
	if d.schema == "public" {
		return ""
	}
	return "CREATE SCHEMA IF NOT EXISTS " + d.schema
}

func (d postgresDialect) ListTablesQuery() (string, []any) {
	return `SELECT table_name FROM information_schema.tables WHERE table_schema = ?`, []any{d.schema}
}

// 23505 is unique_violation
func (d postgresDialect) IsDuplicateKey(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

type sqliteDialect struct{}

func (sqliteDialect) Name() string               { return "sqlite" }
func (sqliteDialect) DriverName() string         { return "sqlite" }
func (sqliteDialect) Table(name string) string   { return name }
func (sqliteDialect) Rebind(query string) string { return query }

// LIKE is case-insensitive for ASCII in SQLite.
func (sqliteDialect) Like() string { return "LIKE" }

func (sqliteDialect) DateText(column string) string {
	return "strftime('%Y-%m-%d %H:%M:%S', " + column + ")"
}

func (sqliteDialect) CreateSchemaStmt() string { return "" }

func (sqliteDialect) ListTablesQuery() (string, []any) {
	return `SELECT name FROM sqlite_master WHERE type = 'table'`, nil
}

func (sqliteDialect) IsDuplicateKey(err error) bool {
	var sqErr *sqlite.Error
	if !errors.As(err, &sqErr) {
		return false
	}
	switch sqErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// extended codes disabled on this connection
		return strings.Contains(sqErr.Error(), "UNIQUE constraint failed")
	}
	return false
}
