// Package model contains domain models passed between layers.
package model

import "time"

// Kind identifies the activity a logged event belongs to.
type Kind int

// Recognized activity kinds. The two gaming kinds are the same activity
// performed socially vs. solo; they are tracked as separate modalities.
const (
	KindUnknown Kind = iota
	KindGamesFriends
	KindGamesSolo
	KindDrink
	KindSleep
)

// String returns the column-friendly name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGamesFriends:
		return "GamesFriends"
	case KindGamesSolo:
		return "GamesSolo"
	case KindDrink:
		return "Drinks"
	case KindSleep:
		return "Sleep"
	default:
		return "Unknown"
	}
}

// Marker distinguishes the boundary a session or sleep event reports.
// Drink events carry MarkerNone; each occurrence is one unit.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerStart
	MarkerStop
)

// String returns the form-facing marker label.
func (m Marker) String() string {
	switch m {
	case MarkerStart:
		return "Start"
	case MarkerStop:
		return "Stop"
	default:
		return ""
	}
}

// RawRow mirrors one submission row of the source form sheet, already
// split into fields but otherwise untyped. The live Timestamp is parsed
// by the acquisition layer; the retro fields stay raw strings because
// either may be blank and their interpretation is the normalizer's job.
type RawRow struct {
	Timestamp      time.Time // submission time, always present
	Event          string    // primary event label, reported live
	StartStop      string    // "Start" or "Stop" for the live event
	RetroEvent     string    // event label reported after the fact
	RetroStartStop string    // "Start" or "Stop" for the retro event
	RetroTime      string    // retro time of day, e.g. "23:45:00", may be blank
	RetroDate      string    // retro calendar date, e.g. "2023-04-01", may be blank
	Comment        string    // free text
}

// Event is one fully resolved occurrence. Every Event carries a concrete
// timestamp; rows whose retro fields cannot be resolved never become
// Events.
type Event struct {
	Kind   Kind
	Marker Marker
	TS     time.Time
	Retro  bool // timestamp derived from the retro fields, not the live one
}

// SessionTimes holds the single daily start/stop pair tracked per gaming
// modality. Pct and Tot are reserved for downstream derivation and stay
// nil here.
type SessionTimes struct {
	Start *time.Time
	Stop  *time.Time
	Pct   *float64
	Tot   *float64
}

// SleepSummary aggregates one waking day's sleep episode. Hour fields are
// fractional hours of day (e.g. 23.5 for 11:30pm) so that weekly means
// stay meaningful.
type SleepSummary struct {
	StartTS   *time.Time
	EndMainTS *time.Time
	EndAllTS  *time.Time

	StartHr   *float64
	EndMainHr *float64
	EndAllHr  *float64

	DurationHrs         float64
	TimeToFallAsleepHrs *float64

	InterruptionsNatural int
	InterruptionsAlarm   int
	InterruptionsTotal   int
}

// DailyRow is one calendar date's aggregate. Rows are created only by the
// frame builder; assigners mutate them in place by date lookup.
type DailyRow struct {
	Date    time.Time // midnight of the calendar date
	Weekday string

	GamesFriends SessionTimes
	GamesSolo    SessionTimes

	DrinksTot int

	Sleep SleepSummary

	CommentsAll string
}
