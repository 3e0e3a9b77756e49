package api

import (
	"context"
	"net/http"
	"time"

	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/internal/domain/types"
)

// DailyDependencies defines the interface for daily table reads.
type DailyDependencies interface {
	Daily(ctx context.Context) []*model.DailyRow
}

// DailyHandler handles daily table requests.
type DailyHandler struct {
	deps DailyDependencies
}

// NewDailyHandler creates a new daily table handler.
func NewDailyHandler(deps DailyDependencies) *DailyHandler {
	return &DailyHandler{deps: deps}
}

// HandleGetDaily handles GET /daily requests, optionally filtered with
// ?from=YYYY-MM-DD&to=YYYY-MM-DD (both bounds inclusive).
func (h *DailyHandler) HandleGetDaily(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_daily"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows := h.deps.Daily(r.Context())
	if rows == nil {
		writeError(w, http.StatusServiceUnavailable, "not_built", NewKind(op, ErrNotBuilt))
		return
	}

	from, to, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	out := make([]types.DailyRecord, 0, len(rows))
	for _, row := range rows {
		if !from.IsZero() && row.Date.Before(from) {
			continue
		}
		if !to.IsZero() && row.Date.After(to) {
			continue
		}
		out = append(out, types.FromDailyRow(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// parseDateRange reads the optional from/to query parameters. A zero time
// means the bound is open.
func parseDateRange(r *http.Request) (from, to time.Time, err error) {
	if v := r.URL.Query().Get("from"); v != "" {
		from, err = time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		to, err = time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}
