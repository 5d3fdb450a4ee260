package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/boropappa/china-trip-solo/backend/internal/timeline"
)

// timelineResponse is the GET .../timeline payload: the grid placement
// of every timed event plus the current-time indicator when the clock
// is inside the display window.
type timelineResponse struct {
	Date        string               `json:"date"`
	HourStart   int                  `json:"hourStart"`
	HourEnd     int                  `json:"hourEnd"`
	Placements  []timeline.Placement `json:"placements"`
	NowPosition *float64             `json:"nowPosition,omitempty"`
}

// GetTimeline handles GET /trips/{tripID}/days/{date}/timeline.
func (s *Server) GetTimeline(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.Get(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		writeError(w, err)
		return
	}

	date := chi.URLParam(r, "date")
	for _, day := range trip.Days {
		if day.Date != date {
			continue
		}
		resp := timelineResponse{
			Date:       day.Date,
			HourStart:  timeline.HourStart,
			HourEnd:    timeline.HourEnd,
			Placements: timeline.Build(day.Events),
		}
		if pos, ok := timeline.NowPosition(time.Now()); ok {
			resp.NowPosition = &pos
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}
	writeErrorBody(w, http.StatusNotFound, "not_found", "day not found")
}
