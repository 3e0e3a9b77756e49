package api

import (
	"context"
	"net/http"
)

// RefreshDependencies defines the interface for pipeline rebuilds.
type RefreshDependencies interface {
	Build(ctx context.Context) error
}

// RefreshHandler handles rebuild requests.
type RefreshHandler struct {
	deps RefreshDependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps RefreshDependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

type refreshResponse struct {
	Status string `json:"status"`
}

// HandleRefresh handles POST /refresh requests. The rebuild runs
// synchronously; the previous tables stay served until it completes.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	const op = "api.refresh"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.Build(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "rebuild_failed", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{Status: "rebuilt"})
}
