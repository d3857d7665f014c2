package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	apperrors "ping-router/internal/common/errors"
)

// GetUser returns the directory entry for a handle, or 404 when the handle
// is unknown.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	handle := vars["handle"]

	user, ok := h.directory.Get(handle)
	if !ok {
		writeError(w, apperrors.NotFoundError("User").WithContext("handle", handle))
		return
	}

	writeJSON(w, http.StatusOK, user)
}
