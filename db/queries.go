// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "fmt"

// SearchColumns is the number of column comparisons in the search query:
// 6 incident, 3 person and 4 arrest columns.
const SearchColumns = 13

// Queries holds every literal statement the system runs, built once for a
// dialect. Only table names are formatted in; values are always bound.
type Queries struct {
	ListIncidents string
	ListOfficers  string
	ListArrests   string

	InsertIncident string
	InsertOfficer  string
	InsertPerson   string
	InsertEvidence string
	InsertArrest   string
	InsertAssign   string
	InsertContain  string

	IncidentIDs string
	OfficerIDs  string
	PersonSSNs  string

	Search string
}

func NewQueries(d Dialect) Queries {
	t := d.Table

	return Queries{
		ListIncidents: fmt.Sprintf(`SELECT * FROM %s ORDER BY incident_id`, t(TableIncident)),
		ListOfficers:  fmt.Sprintf(`SELECT * FROM %s`, t(TableOfficer)),
		ListArrests: fmt.Sprintf(`
			SELECT a.arrest_id, a.arrest_date, a.arrest_location, a.arrest_status, p.person_name
			FROM %s a
			JOIN %s p ON a.person_ssn = p.person_ssn
			ORDER BY a.arrest_date DESC
		`, t(TableArrest), t(TablePerson)),

		InsertIncident: fmt.Sprintf(`
			INSERT INTO %s
			(incident_id, incident_type, incident_street, incident_city, incident_zip, incident_status, incident_date)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, t(TableIncident)),
		InsertOfficer: fmt.Sprintf(`
			INSERT INTO %s
			(officer_id, officer_name, officer_phone_number, officer_dob, officer_hire_date)
			VALUES (?, ?, ?, ?, ?)
		`, t(TableOfficer)),
		InsertPerson: fmt.Sprintf(`
			INSERT INTO %s
			(person_ssn, person_name, person_dob, person_phone_number)
			VALUES (?, ?, ?, ?)
		`, t(TablePerson)),
		InsertEvidence: fmt.Sprintf(`
			INSERT INTO %s
			(evidence_id, evidence_description, evidence_storage_location, evidence_status, incident_id)
			VALUES (?, ?, ?, ?, ?)
		`, t(TableEvidence)),
		InsertArrest: fmt.Sprintf(`
			INSERT INTO %s
			(arrest_id, arrest_date, arrest_location, arrest_status, person_ssn)
			VALUES (?, ?, ?, ?, ?)
		`, t(TableArrest)),
		InsertAssign: fmt.Sprintf(`
			INSERT INTO %s (officer_id, incident_id, hours_spent)
			VALUES (?, ?, ?)
		`, t(TableAssign)),
		InsertContain: fmt.Sprintf(`
			INSERT INTO %s (incident_id, person_ssn, role)
			VALUES (?, ?, ?)
		`, t(TableContain)),

		IncidentIDs: fmt.Sprintf(`SELECT incident_id FROM %s`, t(TableIncident)),
		OfficerIDs:  fmt.Sprintf(`SELECT officer_id FROM %s`, t(TableOfficer)),
		PersonSSNs:  fmt.Sprintf(`SELECT person_ssn FROM %s`, t(TablePerson)),

		Search: searchQuery(d),
	}
}

func searchQuery(d Dialect) string {
	arrestDate := d.DateText("arrest_date")

	return fmt.Sprintf(`
		SELECT
			'Incident' AS category,
			incident_id AS record_id,
			CONCAT('Type: ', incident_type, ' | City: ', incident_city, ' | Status: ', incident_status) AS details
		FROM %[1]s
		WHERE
			incident_id %[4]s ? OR
			incident_type %[4]s ? OR
			incident_city %[4]s ? OR
			incident_status %[4]s ? OR
			incident_street %[4]s ? OR
			incident_zip %[4]s ?

		UNION ALL

		SELECT
			'Person' AS category,
			person_ssn AS record_id,
			CONCAT('Name: ', person_name, ' | Phone: ', person_phone_number) AS details
		FROM %[2]s
		WHERE
			person_ssn %[4]s ? OR
			person_name %[4]s ? OR
			person_phone_number %[4]s ?

		UNION ALL

		SELECT
			'Arrest' AS category,
			arrest_id AS record_id,
			CONCAT('Location: ', arrest_location, ' | Status: ', arrest_status, ' | Date: ', %[5]s) AS details
		FROM %[3]s
		WHERE
			arrest_id %[4]s ? OR
			arrest_location %[4]s ? OR
			arrest_status %[4]s ? OR
			%[5]s %[4]s ?
	`, d.Table(TableIncident), d.Table(TablePerson), d.Table(TableArrest), d.Like(), arrestDate)
}

// SearchArgs wraps the term in wildcards once and binds it to every
// column comparison of the search query.
func SearchArgs(term string) []any {
	pattern := "%" + term + "%"
	args := make([]any, SearchColumns)
	for i := range args {
		args[i] = pattern
	}
	return args
}
