package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/boropappa/china-trip-solo/backend/internal/codec"
	"github.com/boropappa/china-trip-solo/backend/internal/domain"
)

// errorResponse is the JSON envelope for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck — nothing useful to do once headers are sent.
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service or codec error to its HTTP response.
// Unrecognized errors become a 500 with a generic message; the real
// error is already in the logs via the recoverer/handler.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, codec.ErrParse):
		writeErrorBody(w, http.StatusBadRequest, "parse_error", unwrapMessage(err))
	case errors.Is(err, codec.ErrInvalidTrip):
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeErrorBody(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	default:
		writeErrorBody(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// writeRequestError rejects a request before it reaches the service
// layer (missing or malformed body, bad path parameter).
func writeRequestError(w http.ResponseWriter, message string) {
	writeErrorBody(w, http.StatusUnprocessableEntity, "validation_error", message)
}

func writeErrorBody(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// unwrapMessage strips the "layer.Type.Method:" wrapping prefixes so
// the user sees only the human-readable tail.
// e.g. "service.TripService.Create: validation error: title is required"
// → "title is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{"validation error: ", "invalid JSON: "} {
		if i := strings.Index(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	// No marker — drop any "pkg.Type.Method: " prefixes.
	parts := strings.Split(msg, ": ")
	return parts[len(parts)-1]
}
