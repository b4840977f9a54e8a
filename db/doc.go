// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the query/execute gateway over the YARA relational schema.

# Gateway

Open connects to PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite) and
returns a Gateway:

	gw, err := db.Open(ctx, "postgres", cfg.DatabaseURL, "yara")

Gateway has two operations:

  - Query: run a read statement, return a models.Table of text values
  - Exec: run one write statement in its own transaction and commit

Each call takes a dedicated connection from the pool and releases it before
returning, on every path. Nothing is retried. Errors raised by the store are
returned unchanged so callers can show the raw text.

# Dialects

Statements are written with ? placeholders and unqualified table names.
The Dialect rewrites them per store:

	postgres: yara.incident, $1..$n, ILIKE, to_char(...)
	sqlite:   incident,      ?,      LIKE,  strftime(...)

Dialect.IsDuplicateKey recognizes unique and primary key violations.

# Schema

CreateSchema creates the seven tables. Safe to call multiple times.
MissingTables reports required tables absent from the store.

# Tables

	incident 1──* evidence
	person   1──* arrest
	officer  *──* incident (via assign, with hours_spent)
	incident *──* person   (via contain, with role)

# Queries

NewQueries builds every literal statement for a dialect: the three
dashboard listings, one insert per table, the id pool selects used by the
seeder, and the cross-entity search. SearchArgs binds one wildcard pattern
to all 13 search comparisons.
*/
package db
