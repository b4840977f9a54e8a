// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/umpd-yara/yara-records/db"
)

type SearchHandler struct {
	gw db.Runner
	q  db.Queries
}

func NewSearchHandler(gw db.Runner) *SearchHandler {
	return &SearchHandler{gw: gw, q: db.NewQueries(gw.Dialect())}
}

// Search handles GET /search?q=. A first visit without q renders the
// bare form; a submitted blank q is rejected before any store call.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title: "Search Records",
		Nav:   NavSearch,
	}

	params := r.URL.Query()
	if !params.Has("q") {
		render(w, http.StatusOK, "search", data)
		return
	}

	q := params.Get("q")
	data.Query = q
	if strings.TrimSpace(q) == "" {
		data.Banner = &banner{Kind: bannerWarning, Message: "Please enter a value to search."}
		render(w, http.StatusOK, "search", data)
		return
	}

	table, err := h.gw.Query(r.Context(), h.q.Search, db.SearchArgs(q)...)
	if err != nil {
		slog.Error("search failed", "term", q, "error", err)
		data.Banner = &banner{Kind: bannerError, Message: "Search failed.", Detail: err.Error()}
		render(w, http.StatusInternalServerError, "search", data)
		return
	}

	slog.Info("search completed", "term", q, "matches", table.Len())

	if table.Empty() {
		data.Banner = &banner{Kind: bannerInfo, Message: "No matching records found."}
		render(w, http.StatusOK, "search", data)
		return
	}

	data.Table = table
	data.Banner = &banner{
		Kind:    bannerSuccess,
		Message: "Found " + humanize.Comma(int64(table.Len())) + " matching record(s).",
	}
	render(w, http.StatusOK, "search", data)
}
