// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/umpd-yara/yara-records/models"
)

// Runner is the query/execute surface used by handlers and the seeder.
type Runner interface {
	Query(ctx context.Context, query string, args ...any) (*models.Table, error)
	Exec(ctx context.Context, stmt string, args ...any) error
	Dialect() Dialect
}

// Gateway runs single statements against the store. Every call takes its
// own connection from the pool and returns it before the call ends.
type Gateway struct {
	db      *sql.DB
	dialect Dialect
}

func NewGateway(conn *sql.DB, d Dialect) *Gateway {
	return &Gateway{db: conn, dialect: d}
}

// Open connects to the configured store and verifies the connection.
func Open(ctx context.Context, dbType, dsn, schema string) (*Gateway, error) {
	d, err := NewDialect(dbType, schema)
	if err != nil {
		return nil, err
	}

	if d.Name() == "sqlite" {
		dsn = sqliteDSN(dsn)
	}

	conn, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewGateway(conn, d), nil
}

// sqliteDSN turns on foreign key enforcement unless the DSN sets it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (g *Gateway) Dialect() Dialect { return g.dialect }

func (g *Gateway) Close() error { return g.db.Close() }

// Query runs a read statement and returns every row rendered as text.
// Errors from the store are returned unchanged.
func (g *Gateway) Query(ctx context.Context, query string, args ...any) (*models.Table, error) {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, g.dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	layouts := timeLayouts(types)

	table := &models.Table{Columns: cols, Rows: [][]string{}}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = formatValue(v, layouts[i])
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

// Exec runs one write statement in its own transaction and commits it.
// Errors from the store are returned unchanged.
func (g *Gateway) Exec(ctx context.Context, stmt string, args ...any) error {
	conn, err := g.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, g.dialect.Rebind(stmt), args...); err != nil {
		return err
	}

	return tx.Commit()
}

// timeLayouts picks the text layout for each column from its declared
// type. Columns without a temporal declared type get "".
func timeLayouts(types []*sql.ColumnType) []string {
	layouts := make([]string, len(types))
	for i, ct := range types {
		name := strings.ToUpper(ct.DatabaseTypeName())
		switch {
		case name == "DATE":
			layouts[i] = models.DateLayout
		case strings.HasPrefix(name, "TIMESTAMP"), name == "DATETIME":
			layouts[i] = models.DateTimeLayout
		}
	}
	return layouts
}

// formatValue renders a scanned value as text. A time in a column with no
// known layout is shown as a date when it falls exactly on midnight.
func formatValue(v any, layout string) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case time.Time:
		if layout != "" {
			return x.Format(layout)
		}
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(models.DateLayout)
		}
		return x.Format(models.DateTimeLayout)
	default:
		return fmt.Sprint(x)
	}
}
