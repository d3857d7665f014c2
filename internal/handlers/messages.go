package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "ping-router/internal/common/errors"
	"ping-router/internal/common/logging"
	"ping-router/internal/models"
	"ping-router/internal/routing"
)

// ListMessages returns all processed messages, newest first.
func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// CreateMessage accepts an inbound ping message, routes it, simulates
// delivery and appends the result to the message log. The recipient handle
// must exist in the directory.
func (h *Handlers) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var payload models.MessageIn
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperrors.ValidationError("invalid JSON body"))
		return
	}

	if err := payload.Normalize(); err != nil {
		writeError(w, err)
		return
	}

	if !h.directory.Has(payload.Handle) {
		writeError(w, apperrors.NotFoundError("User").WithContext("handle", payload.Handle))
		return
	}

	// A single rules snapshot covers the whole decision, so a concurrent
	// rules update affects either all of this request or none of it.
	decision := routing.Decide(payload, h.rules.Current(), h.now())
	deliveries := h.simulator.Simulate(decision.Channel, payload, decision.AutoReply)

	stored := h.store.Append(models.Message{
		Handle:         payload.Handle,
		Subject:        payload.Subject,
		Message:        payload.Message,
		Contact:        payload.Contact,
		Priority:       payload.Priority,
		DecidedChannel: decision.Channel,
		Deliveries:     deliveries,
	})

	h.logger.Info("message routed",
		logging.String("id", stored.ID),
		logging.String("handle", stored.Handle),
		logging.String("channel", stored.DecidedChannel),
		logging.String("priority", stored.Priority),
	)

	writeJSON(w, http.StatusCreated, stored)
}

// ClearMessages resets the message log. The next created message receives
// id "1" again.
func (h *Handlers) ClearMessages(w http.ResponseWriter, r *http.Request) {
	removed := h.store.Clear()

	h.logger.Info("message log cleared", logging.Int("removed", removed))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":    true,
		"count": h.store.Count(),
	})
}
