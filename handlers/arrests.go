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

const clockLayout = "15:04:05"

type ArrestHandler struct {
	gw  db.Runner
	q   db.Queries
	now func() time.Time
}

func NewArrestHandler(gw db.Runner) *ArrestHandler {
	return &ArrestHandler{gw: gw, q: db.NewQueries(gw.Dialect()), now: time.Now}
}

// NewArrest handles GET /arrests/new
func (h *ArrestHandler) NewArrest(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, h.blankForm(), nil)
}

// CreateArrest handles POST /arrests/new
func (h *ArrestHandler) CreateArrest(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, h.blankForm(), &banner{Kind: bannerError, Message: "Invalid form data."})
		return
	}

	form := models.ArrestForm{
		ID:        r.PostFormValue("id"),
		PersonSSN: r.PostFormValue("person_ssn"),
		Date:      r.PostFormValue("date"),
		Time:      r.PostFormValue("time"),
		Location:  r.PostFormValue("location"),
		Status:    orDefault(r.PostFormValue("status"), models.ArrestArrested),
	}

	missing, err := missingFields(&form)
	if err != nil {
		slog.Error("failed to validate arrest form", "error", err)
		h.render(w, http.StatusInternalServerError, form, &banner{Kind: bannerError, Message: "Failed to record arrest.", Detail: err.Error()})
		return
	}
	if len(missing) > 0 {
		h.render(w, http.StatusUnprocessableEntity, form, &banner{Kind: bannerWarning, Message: "Please fill all required fields."})
		return
	}

	arrestedAt := models.CombineDateTime(form.Date, form.Time)

	err = h.gw.Exec(r.Context(), h.q.InsertArrest,
		form.ID, arrestedAt, form.Location, form.Status, form.PersonSSN)
	if err != nil {
		slog.Error("failed to insert arrest", "arrest_id", form.ID, "person_ssn", form.PersonSSN, "error", err)
		h.render(w, http.StatusInternalServerError, form, &banner{Kind: bannerError, Message: "Failed to record arrest.", Detail: err.Error()})
		return
	}

	slog.Info("arrest recorded", "arrest_id", form.ID, "person_ssn", form.PersonSSN)

	h.render(w, http.StatusOK, h.blankForm(),
		&banner{Kind: bannerSuccess, Message: "Arrest " + form.ID + " recorded successfully."})
}

// blankForm defaults the date and time pickers to now
func (h *ArrestHandler) blankForm() models.ArrestForm {
	now := h.now()
	return models.ArrestForm{
		Date:   now.Format(models.DateLayout),
		Time:   now.Format(clockLayout),
		Status: models.ArrestArrested,
	}
}

func (h *ArrestHandler) render(w http.ResponseWriter, status int, form models.ArrestForm, b *banner) {
	render(w, status, "arrest", pageData{
		Title:    "Record New Arrest",
		Nav:      NavAddArrest,
		Banner:   b,
		Form:     form,
		Statuses: models.ArrestStatuses,
	})
}
