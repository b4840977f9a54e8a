// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the YARA records server.

YARA is the University of Maryland Police Department's records browser and
editor. It lists incidents, officers and arrests, adds incidents, persons
and arrests through forms, and searches across all three by keyword.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run .

Or with flags:

	go run . -p 3318 -t sqlite -d yara.db -init-schema

# Configuration

Required settings:

  - DATABASE_URL (-d): Connection string or SQLite file path

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): postgres or sqlite (default: sqlite)
  - YARA_SCHEMA (-schema): PostgreSQL schema holding the tables (default: yara)
  - YARA_INIT_SCHEMA (-init-schema): Create missing tables at startup

A .env file in the working directory is loaded first when present.

# Sample Data

The yaraseed command fills the tables with synthetic records:

	go run ./cmd/yaraseed --database-url yara.db --init-schema

# Architecture

  - handlers: Page handlers (dashboard, forms, search)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request ids, logging, panic recovery
  - models: Forms, domain records, query result tables
  - db: Dialects, gateway, schema and literal statements
  - seed: Synthetic data loader
  - ids: Record id formatting
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
