// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"strings"
)

// Table names in foreign-key dependency order.
const (
	TableIncident = "incident"
	TableOfficer  = "officer"
	TablePerson   = "person"
	TableEvidence = "evidence"
	TableArrest   = "arrest"
	TableAssign   = "assign"
	TableContain  = "contain"
)

// RequiredTables lists every table the browser and the seeder expect.
var RequiredTables = []string{
	TableIncident,
	TableOfficer,
	TablePerson,
	TableEvidence,
	TableArrest,
	TableAssign,
	TableContain,
}

// CreateSchema creates all YARA tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, r Runner) error {
	for _, stmt := range schemaStatements(r.Dialect()) {
		if err := r.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// MissingTables returns the required tables absent from the store, in
// dependency order.
func MissingTables(ctx context.Context, r Runner) ([]string, error) {
	query, args := r.Dialect().ListTablesQuery()
	tbl, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	found := make(map[string]bool, tbl.Len())
	for _, row := range tbl.Rows {
		found[strings.ToLower(row[0])] = true
	}

	var missing []string
	for _, name := range RequiredTables {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	return missing, nil
}

func schemaStatements(d Dialect) []string {
	t := d.Table
	stmts := []string{}
	if s := d.CreateSchemaStmt(); s != "" {
		stmts = append(stmts, s)
	}

	return append(stmts,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    incident_id VARCHAR(10) PRIMARY KEY,
    incident_type VARCHAR(30) NOT NULL,
    incident_street VARCHAR(50),
    incident_city VARCHAR(30),
    incident_zip VARCHAR(10),
    incident_status VARCHAR(20),
    incident_date DATE
)`, t(TableIncident)),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    officer_id VARCHAR(10) PRIMARY KEY,
    officer_name VARCHAR(50) NOT NULL,
    officer_phone_number VARCHAR(10),
    officer_dob DATE,
    officer_hire_date DATE
)`, t(TableOfficer)),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    person_ssn VARCHAR(9) PRIMARY KEY,
    person_name VARCHAR(50) NOT NULL,
    person_dob DATE,
    person_phone_number VARCHAR(10)
)`, t(TablePerson)),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    evidence_id VARCHAR(10) PRIMARY KEY,
    evidence_description VARCHAR(100),
    evidence_storage_location VARCHAR(30),
    evidence_status VARCHAR(20),
    incident_id VARCHAR(10) NOT NULL REFERENCES %s(incident_id)
)`, t(TableEvidence), t(TableIncident)),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    arrest_id VARCHAR(10) PRIMARY KEY,
    arrest_date TIMESTAMP,
    arrest_location VARCHAR(50),
    arrest_status VARCHAR(30),
    person_ssn VARCHAR(9) NOT NULL REFERENCES %s(person_ssn)
)`, t(TableArrest), t(TablePerson)),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    officer_id VARCHAR(10) NOT NULL REFERENCES %s(officer_id),
    incident_id VARCHAR(10) NOT NULL REFERENCES %s(incident_id),
    hours_spent INTEGER,
    PRIMARY KEY (officer_id, incident_id)
)`, t(TableAssign), t(TableOfficer), t(TableIncident)),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    incident_id VARCHAR(10) NOT NULL REFERENCES %s(incident_id),
    person_ssn VARCHAR(9) NOT NULL REFERENCES %s(person_ssn),
    role VARCHAR(10) NOT NULL CHECK (role IN ('Victim', 'Suspect', 'Witness')),
    PRIMARY KEY (incident_id, person_ssn)
)`, t(TableContain), t(TableIncident), t(TablePerson)),
	)
}
