package handlers

import (
	"io"
	"net/http"

	apperrors "ping-router/internal/common/errors"
	"ping-router/internal/routing"
)

// GetRules returns the active routing rule set.
func (h *Handlers) GetRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rules.Current())
}

// UpdateRules replaces the routing rule set wholesale. The payload must be
// a JSON object in the rules shape; unknown keys and mistyped values are
// rejected. An empty object is legal and makes every routing decision fall
// through to its hardcoded default.
func (h *Handlers) UpdateRules(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, apperrors.ValidationError("failed to read request body"))
		return
	}

	rules, err := routing.ParseRules(body)
	if err != nil {
		writeError(w, err)
		return
	}

	h.rules.Replace(rules)

	h.logger.Info("routing rules replaced")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"updated": rules,
	})
}
