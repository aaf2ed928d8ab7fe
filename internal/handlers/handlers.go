// Package handlers exposes the store, pricing, menu and lifecycle
// operations over JSON HTTP. Handlers validate input, translate store
// sentinels to status codes, and apply the viewer-role presentation filter;
// business rules live in the inner packages.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/biryaniking52/catering-app/internal/httpx"
)

// parseID reads the id query parameter shared by update/delete/workflow
// endpoints. On failure it writes the error response and returns false.
func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	return uint(id), true
}
