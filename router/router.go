// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/umpd-yara/yara-records/db"
	"github.com/umpd-yara/yara-records/handlers"
	"github.com/umpd-yara/yara-records/middleware"
)

func NewRouter(gw db.Runner) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(gw)
	incidentHandler := handlers.NewIncidentHandler(gw)
	personHandler := handlers.NewPersonHandler(gw)
	arrestHandler := handlers.NewArrestHandler(gw)
	searchHandler := handlers.NewSearchHandler(gw)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Dashboard (read-only views)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(dashboardHandler.Index))
	mux.HandleFunc("GET /dashboard/incidents", middleware.WithLogging(dashboardHandler.Incidents))
	mux.HandleFunc("GET /dashboard/officers", middleware.WithLogging(dashboardHandler.Officers))
	mux.HandleFunc("GET /dashboard/arrests", middleware.WithLogging(dashboardHandler.Arrests))

	// Insertion forms
	mux.HandleFunc("GET /incidents/new", middleware.WithLogging(incidentHandler.NewIncident))
	mux.HandleFunc("POST /incidents/new", middleware.WithLogging(incidentHandler.CreateIncident))
	mux.HandleFunc("GET /persons/new", middleware.WithLogging(personHandler.NewPerson))
	mux.HandleFunc("POST /persons/new", middleware.WithLogging(personHandler.CreatePerson))
	mux.HandleFunc("GET /arrests/new", middleware.WithLogging(arrestHandler.NewArrest))
	mux.HandleFunc("POST /arrests/new", middleware.WithLogging(arrestHandler.CreateArrest))

	// Search
	mux.HandleFunc("GET /search", middleware.WithLogging(searchHandler.Search))

	return mux
}
