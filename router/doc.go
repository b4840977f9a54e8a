// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the YARA records UI.

# Route Registration

NewRouter creates a configured http.ServeMux with all pages:

	mux := router.NewRouter(gw)

# Endpoints

Health:

	GET /health

Dashboard:

	GET /                    - Dashboard with the three view buttons
	GET /dashboard/incidents - All incidents, ordered by id
	GET /dashboard/officers  - All officers
	GET /dashboard/arrests   - Arrests with person name, newest first

Insertion forms (GET renders, POST submits):

	/incidents/new - Add Incident
	/persons/new   - Add Person
	/arrests/new   - Record Arrest

Search:

	GET /search?q= - Keyword search across incidents, persons and arrests

# Handler Initialization

The router creates one handler per page group over the shared gateway:

	dashboardHandler := handlers.NewDashboardHandler(gw)
	searchHandler := handlers.NewSearchHandler(gw)

Every page handler is wrapped with middleware.WithLogging.
*/
package router
