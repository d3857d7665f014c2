package handlers

import (
	"net/http"
	"time"
)

// Root reports the service identity.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": ServiceName,
		"version": ServiceVersion,
	})
}

// Test is the liveness/introspection endpoint: backend status, known
// handles, and the current message count.
func (h *Handlers) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"backend":         "✅ Running",
		"users":           h.directory.Handles(),
		"messages_stored": h.store.Count(),
	})
}

// HealthCheck reports service health. All state is in memory, so the
// process being up to serve the request is the health signal.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"version":   ServiceVersion,
	})
}
