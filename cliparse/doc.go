// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the record browser.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - Schema: Schema holding the YARA tables on postgres (default: yara)
  - InitSchema: Create missing tables at startup

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-schema       Schema name
	-init-schema  Create tables if missing

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	YARA_SCHEMA      → -schema
	YARA_INIT_SCHEMA → -init-schema

A .env file in the working directory is loaded before the lookup. Variables
already present in the environment are not overwritten by it.

CLI flags take precedence over environment variables.
*/
package cliparse
