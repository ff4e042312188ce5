package api

import (
	"net/http"

	"github.com/solavatzka/sola-backend/internal/catalog"
)

// handleSchema lists the exposed record kinds and their field names, in
// declaration order. Frontend tooling reads this to drive forms and
// document viewers.
func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Exposed())
}
