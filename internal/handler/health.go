package handler

import "net/http"

// GetHealth handles GET /healthz. It reports process liveness only; a
// storage outage degrades reads to defaults rather than failing health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
