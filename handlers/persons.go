// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/umpd-yara/yara-records/db"
	"github.com/umpd-yara/yara-records/models"
)

type PersonHandler struct {
	gw db.Runner
	q  db.Queries
}

func NewPersonHandler(gw db.Runner) *PersonHandler {
	return &PersonHandler{gw: gw, q: db.NewQueries(gw.Dialect())}
}

// NewPerson handles GET /persons/new
func (h *PersonHandler) NewPerson(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, models.PersonForm{DOB: models.PersonDOBDefault.Format(models.DateLayout)}, nil)
}

// CreatePerson handles POST /persons/new
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, models.PersonForm{}, &banner{Kind: bannerError, Message: "Invalid form data."})
		return
	}

	form := models.PersonForm{
		SSN:   r.PostFormValue("ssn"),
		Name:  r.PostFormValue("name"),
		DOB:   r.PostFormValue("dob"),
		Phone: r.PostFormValue("phone"),
	}

	missing, err := missingFields(&form)
	if err != nil {
		slog.Error("failed to validate person form", "error", err)
		h.render(w, http.StatusInternalServerError, form, &banner{Kind: bannerError, Message: "Failed to add person.", Detail: err.Error()})
		return
	}
	if len(missing) > 0 {
		h.render(w, http.StatusUnprocessableEntity, form, &banner{Kind: bannerWarning, Message: "Please fill all fields."})
		return
	}

	// An empty date picker stores NULL
	var dob any
	if form.DOB != "" {
		dob = form.DOB
	}

	err = h.gw.Exec(r.Context(), h.q.InsertPerson, form.SSN, form.Name, dob, form.Phone)
	if err != nil {
		slog.Error("failed to insert person", "person_ssn", form.SSN, "error", err)
		h.render(w, http.StatusInternalServerError, form, &banner{Kind: bannerError, Message: "Failed to add person.", Detail: err.Error()})
		return
	}

	slog.Info("person added", "person_ssn", form.SSN)

	h.render(w, http.StatusOK, models.PersonForm{DOB: models.PersonDOBDefault.Format(models.DateLayout)},
		&banner{Kind: bannerSuccess, Message: "Person " + form.Name + " added successfully."})
}

func (h *PersonHandler) render(w http.ResponseWriter, status int, form models.PersonForm, b *banner) {
	render(w, status, "person", pageData{
		Title:  "Add New Person",
		Nav:    NavAddPerson,
		Banner: b,
		Form:   form,
		DOBMin: models.PersonDOBMin.Format(models.DateLayout),
		DOBMax: models.PersonDOBMax.Format(models.DateLayout),
	})
}
