package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	errCodeInvalidRequest = "invalid_request"
	errCodeValidation     = "validation_failed"
	errCodeUnavailable    = "service_unavailable"
	errCodeUpstream       = "upstream_error"
)

// Error represents a normalized API error response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the response shape shared by every API endpoint.
type Envelope[T any] struct {
	// Success indicates whether the request completed successfully.
	Success bool `json:"success"`
	// Data holds the result when successful.
	Data *T `json:"data,omitempty"`
	// Error is the normalized error payload when the request fails.
	Error *Error `json:"error,omitempty"`
}

// decodeJSONBody decodes a request body with strict unknown-field and trailing-token checks.
func decodeJSONBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		return ErrMultipleJSONObjects
	}

	return nil
}

// writeJSON writes a JSON response and logs serialization failures.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Int("status", status).Msg("failed to encode JSON response")
	}
}

// respondOK writes a successful envelope around data.
func respondOK[T any](w http.ResponseWriter, data T) {
	writeJSON(w, http.StatusOK, Envelope[T]{Success: true, Data: &data})
}

// respondError writes a failed envelope.
func respondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Envelope[struct{}]{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}
