package server

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON shape of every error reply.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data) //nolint:errcheck // headers already sent
	}
}

// respondError sends an error response with the given status code.
func respondError(w http.ResponseWriter, status int, message string, details interface{}) {
	respondJSON(w, status, ErrorResponse{Error: message, Details: details})
}
