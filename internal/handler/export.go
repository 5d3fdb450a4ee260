// Package handler — export.go implements GET /trips/{tripID}/export.
// The format query parameter selects json (default), csv, ics or text;
// the response is the rendered file with a download disposition.
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// ExportTrip handles GET /trips/{tripID}/export?format=.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = domain.FormatJSON
	}

	export, err := s.exporter.Export(trip, format)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Content)))
	//nolint:errcheck — nothing useful to do once headers are sent.
	w.Write(export.Content)
}
