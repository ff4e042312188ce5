package api

import (
	"encoding/json"
	"net/http"
)

// Assistant identity and canned reply. The assistant is mocked: no
// inference happens, every prompt gets the same optimistic answer.
const (
	assistantName = "solavatzkamax65"

	assistantReply = "SOLA Vatzka Max 65 online. I can route your MIDI to external devices, " +
		"set BPM and key, and configure mixers and futuristic EQs. " +
		"Tell me the vibe and I'll scaffold a project for you."
)

// assistantRequest is the body for POST /assistant/sola.
type assistantRequest struct {
	Prompt *string `json:"prompt"`
}

// handleAssistant echoes the prompt back with the canned assistant reply.
func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Prompt == nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, "prompt is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"assistant": assistantName,
		"prompt":    *req.Prompt,
		"reply":     assistantReply,
	})
}
