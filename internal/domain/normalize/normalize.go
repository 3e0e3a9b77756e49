// Package normalize turns raw form rows into resolved events.
//
// A row may describe a live event (reported at occurrence time), a retro
// event (reported now about another moment), both, or neither. The
// normalizer emits at most one Event per row and guarantees that every
// emitted Event carries a concrete timestamp; rows whose retro fields
// cannot be resolved are dropped with a logged warning.
package normalize

import (
	"context"
	"time"

	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/pkg/logger"
	"github.com/okian/ohbehave/pkg/metrics"
)

// Normalizer maps raw rows to events under a fixed label set and
// heuristic assumptions.
type Normalizer struct {
	labels Labels
	asmp   model.Assumptions
	log    logger.Logger
}

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithLabels overrides the form label set.
func WithLabels(l Labels) Option {
	return func(n *Normalizer) { n.labels = l }
}

// WithAssumptions sets the heuristic constants.
func WithAssumptions(a model.Assumptions) Option {
	return func(n *Normalizer) { n.asmp = a }
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(n *Normalizer) {
		if l != nil {
			n.log = l
		}
	}
}

// New constructs a Normalizer with the default label set and assumptions.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		labels: DefaultLabels(),
		asmp:   model.DefaultAssumptions(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.log == nil {
		n.log = logger.Named("normalize")
	}
	return n
}

// Normalize converts rows into events, preserving input order. Rows with
// no recognized label on either field are inert and produce nothing.
func (n *Normalizer) Normalize(ctx context.Context, rows []model.RawRow) []model.Event {
	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		if kind, ok := n.labels.Kind(row.Event); ok {
			events = append(events, model.Event{
				Kind:   kind,
				Marker: markerFor(kind, row.StartStop),
				TS:     row.Timestamp,
			})
			metrics.RecordEventNormalized()
			continue
		}

		kind, ok := n.labels.Kind(row.RetroEvent)
		if !ok {
			continue
		}
		ts, err := n.resolveRetroTimestamp(row)
		if err != nil {
			if err == ErrUnclassifiedRetroCase {
				metrics.RecordRetroUnclassified()
				n.log.Error(ctx, "retro decision table hit unreachable branch",
					logger.String("event", row.RetroEvent),
					logger.Any("submitted", row.Timestamp),
					logger.String("retroTime", row.RetroTime),
				)
			} else {
				metrics.RecordRetroUnresolved()
				n.log.Warn(ctx, "dropping unresolvable retro event",
					logger.String("event", row.RetroEvent),
					logger.Any("submitted", row.Timestamp),
				)
			}
			continue
		}
		events = append(events, model.Event{
			Kind:   kind,
			Marker: markerFor(kind, row.RetroStartStop),
			TS:     ts,
			Retro:  true,
		})
		metrics.RecordEventNormalized()
	}
	return events
}

// resolveRetroTimestamp combines the retro date and time fields into one
// concrete timestamp, inferring the date when only the time was entered.
func (n *Normalizer) resolveRetroTimestamp(row model.RawRow) (time.Time, error) {
	loc := row.Timestamp.Location()

	if row.RetroDate != "" {
		date, err := parseDate(row.RetroDate, loc)
		if err != nil {
			return time.Time{}, ErrUnresolvedRetro
		}
		h, m, s, err := parseTimeOfDay(row.RetroTime)
		if err != nil {
			// A date with no time pins the event to midnight of that day.
			return date, nil
		}
		return date.Add(clockDuration(h, m, s)), nil
	}

	h, m, s, err := parseTimeOfDay(row.RetroTime)
	if err != nil {
		return time.Time{}, ErrUnresolvedRetro
	}
	date, err := ResolveRetroDate(row.Timestamp, h, n.asmp)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(clockDuration(h, m, s)), nil
}

func clockDuration(h, m, s int) time.Duration {
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
}

// markerFor parses the start/stop field. Drinks carry no marker; each
// occurrence is one unit.
func markerFor(kind model.Kind, startStop string) model.Marker {
	if kind == model.KindDrink {
		return model.MarkerNone
	}
	switch startStop {
	case "Start":
		return model.MarkerStart
	case "Stop":
		return model.MarkerStop
	default:
		return model.MarkerNone
	}
}

// Accepted layouts for hand-entered retro fields. The form's time picker
// emits 24h times but older rows carry AM/PM strings.
var timeLayouts = []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM"}

var dateLayouts = []string{"2006-01-02", "1/2/2006", "2006/01/02"}

func parseTimeOfDay(s string) (hour, minute, sec int, err error) {
	for _, layout := range timeLayouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			return t.Hour(), t.Minute(), t.Second(), nil
		}
		err = perr
	}
	return 0, 0, 0, err
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		t, perr := time.ParseInLocation(layout, s, loc)
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return time.Time{}, err
}
