package assign

import (
	"context"

	"github.com/okian/ohbehave/internal/domain/frame"
	"github.com/okian/ohbehave/internal/domain/model"
)

// Comments collects the free-text comment of each submission onto the
// row of its submission date. Comments describe the report, not the
// reported moment, so the live timestamp decides the bucket even for
// retro rows. Rows outside the frame are silently skipped; comments are
// best-effort annotations, not data.
func Comments(ctx context.Context, t *frame.Table, rows []model.RawRow, opts ...Option) {
	_ = newOptions(opts...)
	for _, r := range rows {
		if r.Comment == "" {
			continue
		}
		row, ok := t.Row(frame.DateOf(r.Timestamp))
		if !ok {
			continue
		}
		if row.CommentsAll != "" {
			row.CommentsAll += "; "
		}
		row.CommentsAll += r.Comment
	}
}
