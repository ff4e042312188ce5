package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/solavatzka/sola-backend/internal/catalog"
)

// paymentIntentKind is the catalog kind backing /payments/intent.
const paymentIntentKind = "paymentintent"

// handleCreatePaymentIntent persists a mocked payment intent.
//
// The status is always "created" regardless of what the client sends;
// no payment processor is involved and intents never transition.
func (s *Server) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if payload == nil {
		payload = map[string]any{}
	}
	payload["status"] = "created"

	rec, err := catalog.Validate(paymentIntentKind, payload)
	if err != nil {
		var verr *catalog.ValidationError
		if errors.As(err, &verr) {
			writeValidationError(w, verr)
			return
		}
		writeBadRequest(w, err.Error())
		return
	}

	id, err := s.store.Create(r.Context(), paymentIntentKind, rec)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	if s.telemetry != nil {
		s.telemetry.WriteRecordCreated(paymentIntentKind)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":     id,
		"status": "created",
	})
}
