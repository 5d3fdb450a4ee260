package handler

import "net/http"

// ClearData handles DELETE /data: it removes the trips, locations and
// settings documents. Destructive-action confirmation is the client's
// concern; the API clears unconditionally.
func (s *Server) ClearData(w http.ResponseWriter, r *http.Request) {
	s.data.ClearAll(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
