package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
	"github.com/boropappa/china-trip-solo/backend/internal/service"
)

// tripCreateRequest is the POST /trips body. Dates use
// openapi_types.Date so malformed values fail at decode time instead of
// reaching the domain as garbage strings.
type tripCreateRequest struct {
	Title       string              `json:"title"`
	Destination string              `json:"destination"`
	StartDate   *openapi_types.Date `json:"startDate"`
	EndDate     *openapi_types.Date `json:"endDate"`
	Timezone    string              `json:"timezone"`
}

// tripUpdateRequest is the PUT /trips/{id} body; all fields optional.
type tripUpdateRequest struct {
	Title       *string             `json:"title"`
	Destination *string             `json:"destination"`
	StartDate   *openapi_types.Date `json:"startDate"`
	EndDate     *openapi_types.Date `json:"endDate"`
	Timezone    *string             `json:"timezone"`
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.trips.List(r.Context()))
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}
	if req.StartDate == nil || req.EndDate == nil {
		writeRequestError(w, "startDate and endDate are required")
		return
	}

	trip := domain.Trip{
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   req.StartDate.Time.Format(domain.DateLayout),
		EndDate:     req.EndDate.Time.Format(domain.DateLayout),
		Timezone:    req.Timezone,
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PUT /trips/{tripID}. Only the fields present in
// the body are changed; a changed date range realigns the day list.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	var req tripUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}

	patch := service.TripPatch{
		Title:       req.Title,
		Destination: req.Destination,
		Timezone:    req.Timezone,
	}
	if req.StartDate != nil {
		start := req.StartDate.Time.Format(domain.DateLayout)
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end := req.EndDate.Time.Format(domain.DateLayout)
		patch.EndDate = &end
	}

	updated, err := s.trips.Update(r.Context(), chi.URLParam(r, "tripID"), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportTrip handles POST /trips/import. The body is raw trip JSON as
// produced by the JSON export; the response is the normalized trip.
func (s *Server) ImportTrip(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeRequestError(w, "could not read request body")
		return
	}

	trip, err := s.trips.Import(r.Context(), raw)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}
