// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/umpd-yara/yara-records/db"
	"github.com/umpd-yara/yara-records/models"
)

type IncidentHandler struct {
	gw  db.Runner
	q   db.Queries
	now func() time.Time
}

func NewIncidentHandler(gw db.Runner) *IncidentHandler {
	return &IncidentHandler{gw: gw, q: db.NewQueries(gw.Dialect()), now: time.Now}
}

// NewIncident handles GET /incidents/new
func (h *IncidentHandler) NewIncident(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, models.IncidentForm{Status: models.IncidentOpen}, nil)
}

// CreateIncident handles POST /incidents/new
func (h *IncidentHandler) CreateIncident(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, models.IncidentForm{}, &banner{Kind: bannerError, Message: "Invalid form data."})
		return
	}

	form := models.IncidentForm{
		ID:     r.PostFormValue("id"),
		Type:   r.PostFormValue("type"),
		Street: r.PostFormValue("street"),
		City:   r.PostFormValue("city"),
		Zip:    r.PostFormValue("zip"),
		Status: orDefault(r.PostFormValue("status"), models.IncidentOpen),
	}

	missing, err := missingFields(&form)
	if err != nil {
		slog.Error("failed to validate incident form", "error", err)
		h.render(w, http.StatusInternalServerError, form, &banner{Kind: bannerError, Message: "Failed to insert incident.", Detail: err.Error()})
		return
	}
	if len(missing) > 0 {
		h.render(w, http.StatusUnprocessableEntity, form, &banner{Kind: bannerWarning, Message: "Please fill all fields."})
		return
	}

	err = h.gw.Exec(r.Context(), h.q.InsertIncident,
		form.ID, form.Type, form.Street, form.City, form.Zip, form.Status,
		h.now().Format(models.DateLayout))
	if err != nil {
		slog.Error("failed to insert incident", "incident_id", form.ID, "error", err)
		h.render(w, http.StatusInternalServerError, form, &banner{Kind: bannerError, Message: "Failed to insert incident.", Detail: err.Error()})
		return
	}

	slog.Info("incident added", "incident_id", form.ID, "type", form.Type)

	h.render(w, http.StatusOK, models.IncidentForm{Status: models.IncidentOpen},
		&banner{Kind: bannerSuccess, Message: "Incident " + form.ID + " added successfully."})
}

func (h *IncidentHandler) render(w http.ResponseWriter, status int, form models.IncidentForm, b *banner) {
	render(w, status, "incident", pageData{
		Title:    "Add New Incident",
		Nav:      NavAddIncident,
		Banner:   b,
		Form:     form,
		Statuses: models.IncidentFormStatuses,
	})
}
