package api

import (
	"context"
	"net/http"

	"github.com/okian/ohbehave/internal/domain/types"
	"github.com/okian/ohbehave/internal/domain/weekly"
)

// WeeklyDependencies defines the interface for weekly summary reads.
type WeeklyDependencies interface {
	Weekly(ctx context.Context) []weekly.Row
}

// WeeklyHandler handles weekly sleep summary requests.
type WeeklyHandler struct {
	deps WeeklyDependencies
}

// NewWeeklyHandler creates a new weekly summary handler.
func NewWeeklyHandler(deps WeeklyDependencies) *WeeklyHandler {
	return &WeeklyHandler{deps: deps}
}

// HandleGetWeekly handles GET /weekly requests.
func (h *WeeklyHandler) HandleGetWeekly(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_weekly"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows := h.deps.Weekly(r.Context())
	if rows == nil {
		writeError(w, http.StatusServiceUnavailable, "not_built", NewKind(op, ErrNotBuilt))
		return
	}
	out := make([]types.WeeklyRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, types.FromWeeklyRow(row))
	}
	writeJSON(w, http.StatusOK, out)
}
