// Package types holds the relay envelope types and JSON response helpers.
package types

import (
	"encoding/json"
	"net/http"
)

// RelayError is the flat error envelope returned to callers.
type RelayError struct {
	Error string `json:"error"`
}

// WriteError writes a JSON error envelope with the given status code.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, &RelayError{Error: message})
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}
