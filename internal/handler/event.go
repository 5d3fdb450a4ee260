package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// eventRequest is the body for creating or replacing an event. The id
// and orderIndex are owned by the server and never taken from a client.
type eventRequest struct {
	Title     string   `json:"title"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Address   string   `json:"address"`
	Notes     string   `json:"notes"`
	Transport string   `json:"transport"`
	Tags      []string `json:"tags"`
	Duration  *int     `json:"duration"`
}

// reorderRequest is the body for POST .../events/reorder: move the
// event fromId onto the position of toId.
type reorderRequest struct {
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
}

// toDomain converts the request to a domain.Event after checking the
// clock fields, which the service layer does not re-validate.
func (req eventRequest) toDomain() (domain.Event, string) {
	for _, clock := range []string{req.StartTime, req.EndTime} {
		if clock == "" {
			continue
		}
		if _, err := time.Parse(domain.ClockLayout, clock); err != nil {
			return domain.Event{}, "times must be HH:MM (24-hour)"
		}
	}
	return domain.Event{
		Title:     req.Title,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Address:   req.Address,
		Notes:     req.Notes,
		Transport: req.Transport,
		Tags:      req.Tags,
		Duration:  req.Duration,
	}, ""
}

// CreateEvent handles POST /trips/{tripID}/days/{date}/events.
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}
	event, msg := req.toDomain()
	if msg != "" {
		writeRequestError(w, msg)
		return
	}

	created, err := s.trips.AddEvent(r.Context(), chi.URLParam(r, "tripID"), chi.URLParam(r, "date"), event)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateEvent handles PUT /trips/{tripID}/days/{date}/events/{eventID}.
func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}
	event, msg := req.toDomain()
	if msg != "" {
		writeRequestError(w, msg)
		return
	}

	updated, err := s.trips.UpdateEvent(r.Context(),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "date"), chi.URLParam(r, "eventID"), event)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteEvent handles DELETE /trips/{tripID}/days/{date}/events/{eventID}.
func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	err := s.trips.DeleteEvent(r.Context(),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "date"), chi.URLParam(r, "eventID"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderEvents handles POST /trips/{tripID}/days/{date}/events/reorder.
// Responds with the day's full event list in its new order.
func (s *Server) ReorderEvents(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}
	if req.FromID == "" || req.ToID == "" {
		writeRequestError(w, "fromId and toId are required")
		return
	}

	events, err := s.trips.ReorderEvents(r.Context(),
		chi.URLParam(r, "tripID"), chi.URLParam(r, "date"), req.FromID, req.ToID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
