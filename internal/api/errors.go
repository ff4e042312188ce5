package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solavatzka/sola-backend/internal/catalog"
	"github.com/solavatzka/sola-backend/internal/record"
)

// Error represents a structured error response.
type Error struct {
	Status  int                  `json:"status"`
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Fields  []catalog.FieldError `json:"fields,omitempty"`
}

// Common error codes.
const (
	ErrCodeBadRequest         = "bad_request"
	ErrCodeNotFound           = "not_found"
	ErrCodeInternal           = "internal_error"
	ErrCodeValidation         = "validation_error"
	ErrCodeNotConfigured      = "not_configured"
	ErrCodeStorageUnavailable = "storage_unavailable"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

// writeBadRequest writes a 400 error response.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

// writeInternalError writes a 500 error response.
func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, message)
}

// writeValidationError writes a 400 response carrying field-level detail.
func writeValidationError(w http.ResponseWriter, verr *catalog.ValidationError) {
	writeJSON(w, http.StatusBadRequest, Error{
		Status:  http.StatusBadRequest,
		Code:    ErrCodeValidation,
		Message: verr.Error(),
		Fields:  verr.Fields,
	})
}

// writeStoreError maps record store failures onto HTTP responses.
// Both store states are 503s, but the codes stay distinct so callers can
// tell an unconfigured deployment from an outage.
func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, record.ErrNotConfigured):
		writeError(w, http.StatusServiceUnavailable, ErrCodeNotConfigured,
			"record store is not configured; see /test")
	case errors.Is(err, record.ErrUnavailable):
		s.logger.Error("record store unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, ErrCodeStorageUnavailable,
			"record store is unavailable")
	case errors.Is(err, record.ErrNotFound):
		writeError(w, http.StatusNotFound, ErrCodeNotFound, "record not found")
	default:
		s.logger.Error("record store error", "error", err)
		writeInternalError(w, "record store error")
	}
}
