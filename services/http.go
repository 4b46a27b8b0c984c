package services

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps domain errors onto HTTP statuses. Validation
// failures surface their message verbatim; anything else gets the fallback
// text so internals stay out of responses.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case IsValidationError(err):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case IsConstraintViolation(err):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "Operation violates a data constraint"})
	default:
		slog.Error("Request failed", "error", err)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
