// Package sleep groups sleep events into segments per waking day and
// derives the per-day sleep aggregates.
//
// A waking day is the calendar day a sleep episode is attributed to,
// anchored to when the person went to sleep rather than when they woke:
// events earlier than the configured non-nap start hour are pulled back
// to the previous day. Within a waking day a segment is a maximal run of
// start markers terminated by exactly one wake marker; segment 0 is the
// main sleep, later segments are naps.
package sleep

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/okian/ohbehave/internal/domain/frame"
	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/pkg/logger"
	"github.com/okian/ohbehave/pkg/metrics"
)

// Segmenter derives sleep aggregates under a fixed set of assumptions.
type Segmenter struct {
	asmp model.Assumptions
	log  logger.Logger
}

// Option applies a configuration option to the Segmenter.
type Option func(*Segmenter)

// WithAssumptions sets the heuristic constants.
func WithAssumptions(a model.Assumptions) Option {
	return func(s *Segmenter) { s.asmp = a }
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Segmenter) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Segmenter with default assumptions.
func New(opts ...Option) *Segmenter {
	s := &Segmenter{asmp: model.DefaultAssumptions()}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Named("sleep")
	}
	return s
}

// segment is one contiguous sleep interval: zero or more start markers
// followed by the wake marker that terminated it.
type segment struct {
	events []model.Event
}

func (s segment) wake() model.Event { return s.events[len(s.events)-1] }

// Apply fills the sleep columns of the daily table. Waking days are
// processed in ascending date order so repeated runs over the same
// events produce identical tables.
func (s *Segmenter) Apply(ctx context.Context, t *frame.Table, events []model.Event) {
	byDay := make(map[string][]model.Event)
	dates := make(map[string]time.Time)
	for _, e := range events {
		if e.Kind != model.KindSleep {
			continue
		}
		d := frame.DateOf(e.TS)
		if s.asmp.SleepStartHourNonNap.Covers(e.TS) {
			d = d.AddDate(0, 0, -1)
		}
		k := d.Format("2006-01-02")
		byDay[k] = append(byDay[k], e)
		dates[k] = d
	}

	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		evs := byDay[k]
		sort.SliceStable(evs, func(i, j int) bool { return evs[i].TS.Before(evs[j].TS) })

		segments, ok := s.segmentDay(ctx, k, evs)
		if !ok {
			continue
		}

		row, found := t.Row(dates[k])
		if !found {
			metrics.RecordMissingDailyBucket()
			s.log.Warn(ctx, "no daily bucket for waking day", logger.String("wakingDay", k))
			continue
		}
		s.summarize(row, segments)
	}
}

// segmentDay splits one waking day's sorted events into usable segments.
// A day that opens with a wake (missing initial start) or ends with an
// unterminated start yields nothing: no partial credit.
func (s *Segmenter) segmentDay(ctx context.Context, day string, evs []model.Event) ([]segment, bool) {
	if evs[0].Marker == model.MarkerStop {
		metrics.RecordIncompleteSleepSegment()
		s.log.Warn(ctx, "waking day opens with a wake marker, skipping day",
			logger.String("wakingDay", day))
		return nil, false
	}

	var segments []segment
	var current []model.Event
	for _, e := range evs {
		current = append(current, e)
		if e.Marker == model.MarkerStop {
			segments = append(segments, segment{events: current})
			current = nil
		}
	}
	if len(current) > 0 {
		metrics.RecordIncompleteSleepSegment()
		s.log.Warn(ctx, "waking day ends with an unterminated start, skipping day",
			logger.String("wakingDay", day))
		return nil, false
	}

	// A wake with no preceding start inside its segment can occur
	// transiently (two wakes in a row). It carries no duration; drop it
	// and keep going.
	usable := segments[:0]
	for i, seg := range segments {
		if i > 0 && len(seg.events) == 1 {
			metrics.RecordIncompleteSleepSegment()
			s.log.Warn(ctx, "sleep segment has no start marker, skipping segment",
				logger.String("wakingDay", day))
			continue
		}
		usable = append(usable, seg)
	}
	return usable, true
}

// summarize derives the per-day sleep fields from the usable segments.
func (s *Segmenter) summarize(row *model.DailyRow, segments []segment) {
	if len(segments) == 0 {
		return
	}

	main := segments[0]
	mainDelay := s.asmp.AvgDelayIfLoggedOnce
	if len(main.events) > 2 {
		// More than one start before the final wake implies repeated
		// snooze/re-logging; the last log is close to the real onset.
		mainDelay = s.asmp.AvgDelayIfLoggedMultiple
	}

	var total float64
	for i, seg := range segments {
		delay := s.asmp.AvgDelayIfLoggedMultiple
		if i == 0 {
			delay = mainDelay
		}
		n := len(seg.events)
		onset := seg.events[n-2].TS.Add(delay)
		dur := round2(seg.events[n-1].TS.Sub(onset).Hours())
		if dur < 0 {
			dur = 0
		}
		total += dur
	}

	startTS := main.events[0].TS
	endMainTS := main.wake().TS
	endAllTS := segments[len(segments)-1].wake().TS

	row.Sleep.StartTS = &startTS
	row.Sleep.EndMainTS = &endMainTS
	row.Sleep.EndAllTS = &endAllTS
	row.Sleep.StartHr = ptr(hourOfDay(startTS))
	row.Sleep.EndMainHr = ptr(hourOfDay(endMainTS))
	row.Sleep.EndAllHr = ptr(hourOfDay(endAllTS))
	row.Sleep.DurationHrs = round2(total)
	row.Sleep.TimeToFallAsleepHrs = ptr(round2(mainDelay.Hours()))

	// Interruption counts only exist for multi-segment days. The final
	// wake is included even though it is the planned end of the episode;
	// the total deliberately spans all segments.
	if len(segments) > 1 {
		var natural, alarm int
		for _, seg := range segments {
			if s.asmp.WakeAlarmHourThreshold.Covers(seg.wake().TS) {
				natural++
			} else {
				alarm++
			}
		}
		row.Sleep.InterruptionsNatural = natural
		row.Sleep.InterruptionsAlarm = alarm
		row.Sleep.InterruptionsTotal = natural + alarm
	}
}

// hourOfDay returns t's time of day as fractional hours.
func hourOfDay(t time.Time) float64 {
	return round2(float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func ptr(f float64) *float64 { return &f }
