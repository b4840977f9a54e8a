// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/leebenson/conform"

	"github.com/umpd-yara/yara-records/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Navigation labels
const (
	NavDashboard   = "Dashboard"
	NavAddIncident = "Add Incident"
	NavAddPerson   = "Add Person"
	NavAddArrest   = "Add Arrest"
	NavSearch      = "Search Records"
)

type navItem struct {
	Label string
	Path  string
}

var navItems = []navItem{
	{NavDashboard, "/"},
	{NavAddIncident, "/incidents/new"},
	{NavAddPerson, "/persons/new"},
	{NavAddArrest, "/arrests/new"},
	{NavSearch, "/search"},
}

// Banner kinds
const (
	bannerSuccess = "success"
	bannerInfo    = "info"
	bannerWarning = "warning"
	bannerError   = "error"
)

type banner struct {
	Kind    string
	Message string
	// Detail holds raw backend error text
	Detail string
}

type pageData struct {
	Title    string
	Nav      string
	NavItems []navItem
	Banner   *banner

	Table   *models.Table
	Caption string

	Form     any
	Statuses []string
	DOBMin   string
	DOBMax   string

	Query string
}

var pages = map[string]*template.Template{
	"dashboard": parsePage("dashboard.html"),
	"incident":  parsePage("incident.html"),
	"person":    parsePage("person.html"),
	"arrest":    parsePage("arrest.html"),
	"search":    parsePage("search.html"),
}

func parsePage(name string) *template.Template {
	return template.Must(template.ParseFS(templateFS,
		"templates/layout.html",
		"templates/table.html",
		"templates/"+name,
	))
}

// render executes a page inside the layout. The page is buffered so a
// template error never leaves a half-written response.
func render(w http.ResponseWriter, status int, page string, data pageData) {
	tmpl, ok := pages[page]
	if !ok {
		slog.Error("unknown page", "page", page)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data.NavItems = navItems

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

var validate = validator.New()

// missingFields trims the tagged fields of form in place and returns the
// names of required fields that are empty.
func missingFields(form any) ([]string, error) {
	if err := conform.Strings(form); err != nil {
		return nil, err
	}

	err := validate.Struct(form)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing, nil
}

// orDefault returns v unless it is empty.
func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
