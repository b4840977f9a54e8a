// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the record types, form inputs and constants shared by
the record browser and the seeder.

# Domain Types

One struct per table of the YARA schema:

  - Incident: root entity (id, type, street, city, zip, status, date)
  - Officer: id, name, phone, date of birth, hire date
  - Person: SSN-like id, name, date of birth, phone
  - Evidence: item stored for exactly one incident
  - Assign: officer ↔ incident link with hours spent
  - Contain: incident ↔ person link with a role
  - Arrest: person taken into custody, with date, location and status

# Forms

IncidentForm, PersonForm and ArrestForm carry raw form input. Required
fields are tagged for trimming (conform) and presence checks (validator):

	Type string `conform:"trim" validate:"required"`

CombineDateTime formats the arrest date and time pickers into one timestamp
string.

# Tables

Table holds a query result with columns and text rows. Dashboard views and
search results are both rendered from it.

# Constants

Status and role values:

	IncidentOpen, IncidentClosed, IncidentUnderReview, IncidentPending
	ArrestArrested, ArrestReleased, ArrestUnderInvestigation
	RoleVictim, RoleSuspect, RoleWitness

Search categories: CategoryIncident, CategoryPerson, CategoryArrest.
*/
package models
