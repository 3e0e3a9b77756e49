package assign

import (
	"context"

	"github.com/okian/ohbehave/internal/domain/frame"
	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/pkg/logger"
	"github.com/okian/ohbehave/pkg/metrics"
)

// Drinks counts beverage events per date. A drink logged in the small
// hours, before the earliest plausible daily start, belongs to the
// previous day's session rather than opening a new day, so its bucket is
// shifted back one date. When the shifted date has no row (boundary of
// the built frame) the event falls back to its own unadjusted date;
// failing that too, it is dropped with a diagnostic.
func Drinks(ctx context.Context, t *frame.Table, events []model.Event, opts ...Option) {
	o := newOptions(opts...)
	for _, e := range events {
		if e.Kind != model.KindDrink {
			continue
		}
		date := frame.DateOf(e.TS)
		target := date
		if o.asmp.GamingEarliestDailyStart.Covers(e.TS) {
			target = date.AddDate(0, 0, -1)
		}

		row, ok := t.Row(target)
		if !ok {
			row, ok = t.Row(date)
		}
		if !ok {
			metrics.RecordMissingDailyBucket()
			o.log.Warn(ctx, "no daily bucket for drink event",
				logger.Any("ts", e.TS),
			)
			continue
		}
		row.DrinksTot++
	}
}
