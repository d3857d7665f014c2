package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	apperrors "ping-router/internal/common/errors"
	"ping-router/internal/common/logging"
	"ping-router/internal/delivery"
	"ping-router/internal/directory"
	"ping-router/internal/routing"
	"ping-router/internal/storage"
)

// Service identity reported by the root and health endpoints.
const (
	ServiceName    = "Ping"
	ServiceVersion = "0.1.1"
)

// Handlers bundles the HTTP handlers with their dependencies.
type Handlers struct {
	directory *directory.Directory
	rules     *routing.Store
	store     storage.MessageStore
	simulator *delivery.Simulator
	logger    logging.Logger

	// now is injected so routing decisions are testable without touching
	// system time.
	now func() time.Time
}

// New creates the handler set.
func New(dir *directory.Directory, rules *routing.Store, store storage.MessageStore, sim *delivery.Simulator, logger logging.Logger) *Handlers {
	return &Handlers{
		directory: dir,
		rules:     rules,
		store:     store,
		simulator: sim,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (h *Handlers) WithClock(now func() time.Time) *Handlers {
	h.now = now
	return h
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders an error as JSON. AppError types map to their HTTP
// status; anything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	if appErr, ok := err.(*apperrors.AppError); ok {
		status = appErr.HTTPStatus()
		message = appErr.Message
	}

	writeJSON(w, status, map[string]string{"error": message})
}
