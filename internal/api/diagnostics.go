package api

import (
	"net/http"
)

// handleDiagnostics reports store reachability and configuration presence.
//
// This endpoint must never fail: the probe folds every failure state into
// its report, so an unconfigured or unreachable store still produces a
// 200 with the details.
func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Probe(r.Context()))
}
