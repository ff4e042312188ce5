package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Per-route list limits. Defaults apply when no limit parameter is given;
// requests outside [1, max] are rejected rather than clamped.
const (
	defaultChannelLimit = 20
	maxChannelLimit     = 100

	defaultMessageLimit = 50
	maxMessageLimit     = 200

	defaultProjectLimit = 20
	maxProjectLimit     = 100

	defaultDeviceLimit = 50
	maxDeviceLimit     = 200
)

// buildRouter creates the HTTP router with all routes and middleware.
// Paths are flat and unversioned; existing frontends depend on them.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.telemetryMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Greetings
	r.Get("/", s.handleRoot)
	r.Get("/api/hello", s.handleHello)

	// Diagnostics and introspection
	r.Get("/test", s.handleDiagnostics)
	r.Get("/schema", s.handleSchema)

	// Channels & messaging (chat modelled as plain persistence)
	r.Get("/channels", s.handleListRecords("channel", defaultChannelLimit, maxChannelLimit))
	r.Post("/channels", s.handleCreateRecord("channel"))
	r.Get("/messages", s.handleListRecords("message", defaultMessageLimit, maxMessageLimit, "channel_id"))
	r.Post("/messages", s.handleCreateRecord("message"))

	// Projects
	r.Get("/projects", s.handleListRecords("project", defaultProjectLimit, maxProjectLimit))
	r.Post("/projects", s.handleCreateRecord("project"))

	// Devices (MIDI/OTG/Bluetooth metadata only)
	r.Get("/devices", s.handleListRecords("device", defaultDeviceLimit, maxDeviceLimit))
	r.Post("/devices", s.handleCreateRecord("device"))

	// Payments (mock intent)
	r.Post("/payments/intent", s.handleCreatePaymentIntent)

	// AI assistant (mocked)
	r.Post("/assistant/sola", s.handleAssistant)

	return r
}

// handleRoot returns the static greeting for the service root.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "SOLA Vatzka Max 65 backend running",
	})
}

// handleHello returns the static API greeting.
func (s *Server) handleHello(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Hello from the backend API!",
	})
}
