package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/solavatzka/sola-backend/internal/catalog"
	"github.com/solavatzka/sola-backend/internal/record"
)

// handleCreateRecord returns a handler that validates the request body
// against the catalog and persists it under the given kind.
//
// Validation happens entirely at this boundary: the store never sees an
// unvalidated record, and a rejected payload persists nothing.
func (s *Server) handleCreateRecord(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeBadRequest(w, "invalid JSON body")
			return
		}

		rec, err := catalog.Validate(kind, payload)
		if err != nil {
			var verr *catalog.ValidationError
			if errors.As(err, &verr) {
				writeValidationError(w, verr)
				return
			}
			writeBadRequest(w, err.Error())
			return
		}

		id, err := s.store.Create(r.Context(), kind, rec)
		if err != nil {
			s.writeStoreError(w, err)
			return
		}

		if s.telemetry != nil {
			s.telemetry.WriteRecordCreated(kind)
		}

		writeJSON(w, http.StatusOK, map[string]any{"id": id})
	}
}

// handleListRecords returns a handler that lists records of a kind.
//
// filterParams names the query parameters that become exact-match filter
// fields when present (e.g. channel_id on /messages). The limit parameter
// defaults to def and is rejected outside [1, max].
func (s *Server) handleListRecords(kind string, def, max int, filterParams ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r, def, max)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
			return
		}

		filter := record.Filter{}
		for _, param := range filterParams {
			if v := r.URL.Query().Get(param); v != "" {
				filter[param] = v
			}
		}

		records, err := s.store.List(r.Context(), kind, filter, limit)
		if err != nil {
			s.writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

// parseLimit reads the limit query parameter. Out-of-range limits are
// rejected, not clamped, so callers notice their mistake.
func parseLimit(r *http.Request, def, max int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer")
	}
	if limit < 1 || limit > max {
		return 0, fmt.Errorf("limit must be between 1 and %d", max)
	}
	return limit, nil
}
