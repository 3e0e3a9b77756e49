// Package export writes the completed tables to delimited files for
// downstream analysis. Column names follow the historical exports so
// existing notebooks keep working.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/internal/domain/weekly"
)

// dailyHeader is the historical column order of the daily export.
var dailyHeader = []string{
	"Date", "Weekday",
	"GamesFriends.start", "GamesFriends.stop", "GamesFriends.pct", "GamesFriends.tot",
	"GamesSolo.start", "GamesSolo.stop", "GamesSolo.pct", "GamesSolo.tot",
	"Drinks.tot",
	"Sleep.start", "Sleep.end_main", "Sleep.end_all",
	"Sleep.start_hr", "Sleep.end_main_hr", "Sleep.end_all_hr",
	"Sleep.duration_hrs", "Sleep.time_to_fall_asleep_hrs",
	"Sleep.interruptions_natural", "Sleep.interruptions_alarm", "Sleep.interruptions_total",
	"Comments.all",
}

var weeklyHeader = []string{
	"Stat", "Weekday", "Count",
	"Sleep.duration_hrs", "Sleep.time_to_fall_asleep_hrs",
	"Sleep.start", "Sleep.end_main", "Sleep.end_all",
	"Sleep.interruptions_natural", "Sleep.interruptions_alarm", "Sleep.interruptions_total",
}

// DailyFileName builds the historical export name: "data.csv" plus a
// " - sans_*" stub naming any excluded domain.
func DailyFileName(dir string, excludeGaming, excludeAlcohol, excludeSleep bool, ext string) string {
	stub := ""
	if excludeGaming {
		stub += " sans_gaming"
	}
	if excludeAlcohol {
		stub += " sans_alcohol"
	}
	if excludeSleep {
		stub += " sans_sleep"
	}
	name := "data"
	if stub != "" {
		name += " -" + stub
	}
	return filepath.Join(dir, name+"."+ext)
}

// WeeklyFileName builds the historical sleep summary export name.
func WeeklyFileName(dir string) string {
	return filepath.Join(dir, "summary-stats - sleep.csv")
}

// WriteDailyCSV writes the daily table to path.
func WriteDailyCSV(path string, rows []*model.DailyRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(dailyHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Date.Format("2006-01-02"),
			r.Weekday,
			formatTS(r.GamesFriends.Start),
			formatTS(r.GamesFriends.Stop),
			formatFloatPtr(r.GamesFriends.Pct),
			formatFloatPtr(r.GamesFriends.Tot),
			formatTS(r.GamesSolo.Start),
			formatTS(r.GamesSolo.Stop),
			formatFloatPtr(r.GamesSolo.Pct),
			formatFloatPtr(r.GamesSolo.Tot),
			strconv.Itoa(r.DrinksTot),
			formatTS(r.Sleep.StartTS),
			formatTS(r.Sleep.EndMainTS),
			formatTS(r.Sleep.EndAllTS),
			formatFloatPtr(r.Sleep.StartHr),
			formatFloatPtr(r.Sleep.EndMainHr),
			formatFloatPtr(r.Sleep.EndAllHr),
			formatFloat(r.Sleep.DurationHrs),
			formatFloatPtr(r.Sleep.TimeToFallAsleepHrs),
			strconv.Itoa(r.Sleep.InterruptionsNatural),
			strconv.Itoa(r.Sleep.InterruptionsAlarm),
			strconv.Itoa(r.Sleep.InterruptionsTotal),
			r.CommentsAll,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteWeeklyCSV writes the weekly sleep summary to path.
func WriteWeeklyCSV(path string, rows []weekly.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(weeklyHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Stat,
			r.Weekday,
			strconv.Itoa(r.Count),
			formatFloat(r.SleepDurationHrs),
			formatFloat(r.TimeToFallAsleepHrs),
			r.SleepStart,
			r.SleepEndMain,
			r.SleepEndAll,
			formatFloat(r.InterruptionsNatural),
			formatFloat(r.InterruptionsAlarm),
			formatFloat(r.InterruptionsTotal),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatTS(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
