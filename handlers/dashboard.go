// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/umpd-yara/yara-records/db"
)

type DashboardHandler struct {
	gw db.Runner
	q  db.Queries
}

func NewDashboardHandler(gw db.Runner) *DashboardHandler {
	return &DashboardHandler{gw: gw, q: db.NewQueries(gw.Dialect())}
}

// Index handles GET /
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "dashboard", pageData{
		Title: NavDashboard,
		Nav:   NavDashboard,
	})
}

// Incidents handles GET /dashboard/incidents
func (h *DashboardHandler) Incidents(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "All Incidents", h.q.ListIncidents)
}

// Officers handles GET /dashboard/officers
func (h *DashboardHandler) Officers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "Officers", h.q.ListOfficers)
}

// Arrests handles GET /dashboard/arrests
func (h *DashboardHandler) Arrests(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "Arrests", h.q.ListArrests)
}

func (h *DashboardHandler) list(w http.ResponseWriter, r *http.Request, caption, query string) {
	data := pageData{
		Title:   NavDashboard,
		Nav:     NavDashboard,
		Caption: caption,
	}

	table, err := h.gw.Query(r.Context(), query)
	if err != nil {
		slog.Error("failed to load records", "view", caption, "error", err)
		data.Banner = &banner{Kind: bannerError, Message: "Failed to load " + caption + ".", Detail: err.Error()}
		render(w, http.StatusInternalServerError, "dashboard", data)
		return
	}

	data.Table = table
	render(w, http.StatusOK, "dashboard", data)
}
