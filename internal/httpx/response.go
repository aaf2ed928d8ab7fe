// Package httpx holds the JSON response envelope shared by every handler:
// plain payloads on success, an error code plus optional detail (validation
// violations, transition info) on failure.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error envelope. Error is a stable
// machine-readable code ("validation_failed", "not_found", ...); Details
// carries whatever the handler can add, typically a field violation map.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON writes payload with the given status. Marshalling happens before the
// header is written so an encode failure never produces partial JSON.
func JSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, werr := w.Write(body); werr != nil {
		// client went away; nothing left to do
		_ = werr
	}
}

// JSONError writes the error envelope.
func JSONError(w http.ResponseWriter, status int, code string, details any) {
	JSON(w, status, ErrorResponse{Error: code, Details: details})
}
