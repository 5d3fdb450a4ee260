package handler

import (
	"encoding/json"
	"net/http"

	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// GetSettings handles GET /settings. First-ever call returns defaults.
func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.settings.Get(r.Context()))
}

// UpdateSettings handles PATCH /settings with a partial-update body;
// absent fields keep their current values.
func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeRequestError(w, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.settings.Update(r.Context(), patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
