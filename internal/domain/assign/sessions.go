package assign

import (
	"context"

	"github.com/okian/ohbehave/internal/domain/frame"
	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/pkg/logger"
	"github.com/okian/ohbehave/pkg/metrics"
)

// Sessions writes the gaming start/stop times onto the daily table, one
// pair per modality per date. The bucket is simply the date of the
// resolved timestamp. Duplicate markers on the same date overwrite the
// earlier value (last writer wins): the table models at most one session
// per modality per day. Pct/Tot stay reserved and are not derived here.
func Sessions(ctx context.Context, t *frame.Table, events []model.Event, opts ...Option) {
	o := newOptions(opts...)
	for _, e := range events {
		if e.Kind != model.KindGamesFriends && e.Kind != model.KindGamesSolo {
			continue
		}
		row, ok := t.Row(frame.DateOf(e.TS))
		if !ok {
			metrics.RecordMissingDailyBucket()
			o.log.Warn(ctx, "no daily bucket for session event",
				logger.String("kind", e.Kind.String()),
				logger.Any("ts", e.TS),
			)
			continue
		}

		times := &row.GamesFriends
		if e.Kind == model.KindGamesSolo {
			times = &row.GamesSolo
		}
		ts := e.TS
		switch e.Marker {
		case model.MarkerStart:
			times.Start = &ts
		case model.MarkerStop:
			times.Stop = &ts
		default:
			o.log.Warn(ctx, "session event without start/stop marker",
				logger.String("kind", e.Kind.String()),
				logger.Any("ts", e.TS),
			)
		}
	}
}
