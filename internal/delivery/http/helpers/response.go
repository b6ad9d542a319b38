package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body used across all API surfaces: an error
// message, plus details echoing the underlying failure for server faults.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error body with the given status and message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// WriteServerError writes a 500 response whose details field echoes the
// underlying error message.
func WriteServerError(w http.ResponseWriter, details string) {
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal Server Error",
		Details: details,
	})
}

// WriteMethodNotAllowed writes a 405 response carrying the Allow header.
func WriteMethodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	WriteJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method Not Allowed"})
}
