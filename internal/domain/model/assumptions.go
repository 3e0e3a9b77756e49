package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a time-of-day constant such as "09:30", independent of any
// calendar date.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses "HH:MM" (seconds tolerated and ignored).
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) < 2 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// MinuteOfDay returns the clock time as minutes since midnight.
func (c ClockTime) MinuteOfDay() int { return c.Hour*60 + c.Minute }

// Covers reports whether t's time of day falls in [00:00, c).
func (c ClockTime) Covers(t time.Time) bool {
	return t.Hour()*60+t.Minute() < c.MinuteOfDay()
}

// String renders the clock time as "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Assumptions is the single structure of heuristic constants shared by
// the pipeline components. One instance is built from configuration at
// startup and passed in explicitly, so tests can vary thresholds per
// scenario.
type Assumptions struct {
	// GamingEarliestDailyStart: a drink logged before this time of day is
	// credited to the previous calendar date.
	GamingEarliestDailyStart ClockTime

	// SleepStartHourNonNap: sleep events before this time of day belong
	// to the previous waking day's episode.
	SleepStartHourNonNap ClockTime

	// WakeAlarmHourThreshold: wakes before this time of day count as
	// natural interruptions, later ones as alarm interruptions.
	WakeAlarmHourThreshold ClockTime

	// Estimated delay between logging a sleep start and actually falling
	// asleep. The "multiple" variant applies when the start was re-logged
	// (snoozing) and to every nap segment.
	AvgDelayIfLoggedOnce     time.Duration
	AvgDelayIfLoggedMultiple time.Duration

	// FutureRetroThresholdHours bounds how far ahead of the submission
	// hour a retro time may lie while still counting as a future-leaning
	// report.
	FutureRetroThresholdHours int

	// LatestSleepHour: hours of day strictly below this are considered
	// part of the previous wakeful period when inferring retro dates.
	LatestSleepHour int
}

// DefaultAssumptions returns the operational defaults observed in the
// source log.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		GamingEarliestDailyStart:  ClockTime{Hour: 9, Minute: 30},
		SleepStartHourNonNap:      ClockTime{Hour: 20},
		WakeAlarmHourThreshold:    ClockTime{Hour: 7},
		AvgDelayIfLoggedOnce:      20 * time.Minute,
		AvgDelayIfLoggedMultiple:  5 * time.Minute,
		FutureRetroThresholdHours: 2,
		LatestSleepHour:           7,
	}
}
