package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// locationRequest is the body for creating or replacing a favorite
// location. The id is server-assigned.
type locationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// ListLocations handles GET /locations.
func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.locations.List(r.Context()))
}

// CreateLocation handles POST /locations.
func (s *Server) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.locations.Create(r.Context(), domain.FavoriteLocation{
		Name: req.Name, Address: req.Address, Notes: req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateLocation handles PUT /locations/{locationID}.
func (s *Server) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.locations.Update(r.Context(), chi.URLParam(r, "locationID"), domain.FavoriteLocation{
		Name: req.Name, Address: req.Address, Notes: req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteLocation handles DELETE /locations/{locationID}.
func (s *Server) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.locations.Delete(r.Context(), chi.URLParam(r, "locationID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
