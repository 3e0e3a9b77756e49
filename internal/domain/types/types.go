// Package types contains the flat record shapes shared by the HTTP API
// and the exporters. They mirror the domain models with everything
// rendered to strings/numbers, so all consumers serialize the table the
// same way.
package types

import (
	"time"

	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/internal/domain/weekly"
)

// DailyRecord is one daily table row in wire form.
type DailyRecord struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`

	GamesFriendsStart string `json:"games_friends_start,omitempty"`
	GamesFriendsStop  string `json:"games_friends_stop,omitempty"`
	GamesSoloStart    string `json:"games_solo_start,omitempty"`
	GamesSoloStop     string `json:"games_solo_stop,omitempty"`

	DrinksTot int `json:"drinks_tot"`

	SleepStart   string `json:"sleep_start,omitempty"`
	SleepEndMain string `json:"sleep_end_main,omitempty"`
	SleepEndAll  string `json:"sleep_end_all,omitempty"`

	SleepStartHr   *float64 `json:"sleep_start_hr,omitempty"`
	SleepEndMainHr *float64 `json:"sleep_end_main_hr,omitempty"`
	SleepEndAllHr  *float64 `json:"sleep_end_all_hr,omitempty"`

	SleepDurationHrs         float64  `json:"sleep_duration_hrs"`
	SleepTimeToFallAsleepHrs *float64 `json:"sleep_time_to_fall_asleep_hrs,omitempty"`

	SleepInterruptionsNatural int `json:"sleep_interruptions_natural"`
	SleepInterruptionsAlarm   int `json:"sleep_interruptions_alarm"`
	SleepInterruptionsTotal   int `json:"sleep_interruptions_total"`

	Comments string `json:"comments,omitempty"`
}

// WeeklyRecord is one weekly summary row in wire form.
type WeeklyRecord struct {
	Stat    string `json:"stat"`
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`

	SleepDurationHrs     float64 `json:"sleep_duration_hrs"`
	TimeToFallAsleepHrs  float64 `json:"time_to_fall_asleep_hrs"`
	SleepStart           string  `json:"sleep_start"`
	SleepEndMain         string  `json:"sleep_end_main"`
	SleepEndAll          string  `json:"sleep_end_all"`
	InterruptionsNatural float64 `json:"interruptions_natural"`
	InterruptionsAlarm   float64 `json:"interruptions_alarm"`
	InterruptionsTotal   float64 `json:"interruptions_total"`
}

// FromDailyRow flattens a daily row.
func FromDailyRow(r *model.DailyRow) DailyRecord {
	return DailyRecord{
		Date:                      r.Date.Format("2006-01-02"),
		Weekday:                   r.Weekday,
		GamesFriendsStart:         formatTS(r.GamesFriends.Start),
		GamesFriendsStop:          formatTS(r.GamesFriends.Stop),
		GamesSoloStart:            formatTS(r.GamesSolo.Start),
		GamesSoloStop:             formatTS(r.GamesSolo.Stop),
		DrinksTot:                 r.DrinksTot,
		SleepStart:                formatTS(r.Sleep.StartTS),
		SleepEndMain:              formatTS(r.Sleep.EndMainTS),
		SleepEndAll:               formatTS(r.Sleep.EndAllTS),
		SleepStartHr:              r.Sleep.StartHr,
		SleepEndMainHr:            r.Sleep.EndMainHr,
		SleepEndAllHr:             r.Sleep.EndAllHr,
		SleepDurationHrs:          r.Sleep.DurationHrs,
		SleepTimeToFallAsleepHrs:  r.Sleep.TimeToFallAsleepHrs,
		SleepInterruptionsNatural: r.Sleep.InterruptionsNatural,
		SleepInterruptionsAlarm:   r.Sleep.InterruptionsAlarm,
		SleepInterruptionsTotal:   r.Sleep.InterruptionsTotal,
		Comments:                  r.CommentsAll,
	}
}

// FromWeeklyRow flattens a weekly summary row.
func FromWeeklyRow(r weekly.Row) WeeklyRecord {
	return WeeklyRecord{
		Stat:                 r.Stat,
		Weekday:              r.Weekday,
		Count:                r.Count,
		SleepDurationHrs:     r.SleepDurationHrs,
		TimeToFallAsleepHrs:  r.TimeToFallAsleepHrs,
		SleepStart:           r.SleepStart,
		SleepEndMain:         r.SleepEndMain,
		SleepEndAll:          r.SleepEndAll,
		InterruptionsNatural: r.InterruptionsNatural,
		InterruptionsAlarm:   r.InterruptionsAlarm,
		InterruptionsTotal:   r.InterruptionsTotal,
	}
}

func formatTS(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
