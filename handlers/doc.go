// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the YARA records UI.

# Handler Types

Each handler is a struct over a db.Runner:

  - DashboardHandler: the three read-only record views
  - IncidentHandler: the Add Incident form
  - PersonHandler: the Add Person form
  - ArrestHandler: the Record Arrest form
  - SearchHandler: cross-entity keyword search

Handlers are created via constructor functions:

	gw, _ := db.Open(ctx, "postgres", dsn, "yara")
	incidents := handlers.NewIncidentHandler(gw)

Statements are built once per handler with db.NewQueries for the gateway's
dialect.

# Pages

Every page is rendered server side from embedded html/template files inside
a shared layout with a five-entry navigation sidebar:

	GET  /                     → Index
	GET  /dashboard/incidents  → Incidents
	GET  /dashboard/officers   → Officers
	GET  /dashboard/arrests    → Arrests
	GET  /incidents/new        → NewIncident
	POST /incidents/new        → CreateIncident
	GET  /persons/new          → NewPerson
	POST /persons/new          → CreatePerson
	GET  /arrests/new          → NewArrest
	POST /arrests/new          → CreateArrest
	GET  /search?q=            → Search

# Form Submission

Required fields are trimmed (conform) and checked (validator). A missing
field answers 422 with a warning banner and never reaches the store. A
store error answers 500 with the raw backend text shown under the error
banner. On success the form is cleared and a success banner is shown.

# Status Codes

  - 200: Page rendered (including warnings and empty search results)
  - 400: Form body could not be parsed
  - 422: Required field missing
  - 500: Store error
*/
package handlers
