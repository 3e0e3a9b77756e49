// Package weekly post-processes the completed daily table into
// per-weekday summary statistics for the sleep metrics. It only reads
// the daily rows, never mutates them.
package weekly

import (
	"fmt"
	"math"
	"time"

	"github.com/okian/ohbehave/internal/domain/model"
)

// outlierCapHrs: a day "sleeping" this long or longer is a logging
// error, not an observation, and is excluded from every bucket. This is
// an explicit filter, not a statistical one.
const outlierCapHrs = 16.0

// Aggregation kind labels, in presentation order.
const (
	StatMean = "mean"
	StatStd  = "std"
)

// AllBucket aggregates every weekday together.
const AllBucket = "All"

// weekdayOrder is the Sunday-first presentation ordering of the summary,
// independent of the Monday-first enumeration the daily table derives
// its weekday column from.
var weekdayOrder = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Row is one line of the weekly summary: one aggregation kind applied to
// one weekday bucket. Time-of-day metrics are strings: mean rows render
// them as clock times ("11:45 PM"), std rows as fractional hours.
type Row struct {
	Stat    string
	Weekday string
	Count   int

	SleepDurationHrs     float64
	TimeToFallAsleepHrs  float64
	SleepStart           string
	SleepEndMain         string
	SleepEndAll          string
	InterruptionsNatural float64
	InterruptionsAlarm   float64
	InterruptionsTotal   float64
}

// Summarize computes the weekly summary over the completed daily table.
// Rows without a sleep episode and rows at or above the outlier cap are
// excluded from every metric and bucket. Empty buckets produce no rows.
func Summarize(rows []*model.DailyRow) []Row {
	buckets := make(map[string][]*model.DailyRow)
	for _, r := range rows {
		if r.Sleep.StartTS == nil || r.Sleep.DurationHrs >= outlierCapHrs {
			continue
		}
		buckets[AllBucket] = append(buckets[AllBucket], r)
		buckets[r.Weekday] = append(buckets[r.Weekday], r)
	}

	names := append([]string{AllBucket}, weekdayOrder[:]...)
	var out []Row
	for _, stat := range []string{StatMean, StatStd} {
		for _, name := range names {
			group := buckets[name]
			if len(group) == 0 {
				continue
			}
			out = append(out, summarizeBucket(stat, name, group))
		}
	}
	return out
}

func summarizeBucket(stat, name string, group []*model.DailyRow) Row {
	duration := newSeries()
	delay := newSeries()
	start := newSeries()
	endMain := newSeries()
	endAll := newSeries()
	natural := newSeries()
	alarm := newSeries()
	total := newSeries()

	for _, r := range group {
		duration.add(r.Sleep.DurationHrs)
		if r.Sleep.TimeToFallAsleepHrs != nil {
			delay.add(*r.Sleep.TimeToFallAsleepHrs)
		}
		if r.Sleep.StartHr != nil {
			start.add(*r.Sleep.StartHr)
		}
		if r.Sleep.EndMainHr != nil {
			endMain.add(*r.Sleep.EndMainHr)
		}
		if r.Sleep.EndAllHr != nil {
			endAll.add(*r.Sleep.EndAllHr)
		}
		natural.add(float64(r.Sleep.InterruptionsNatural))
		alarm.add(float64(r.Sleep.InterruptionsAlarm))
		total.add(float64(r.Sleep.InterruptionsTotal))
	}

	row := Row{Stat: stat, Weekday: name, Count: len(group)}
	switch stat {
	case StatMean:
		row.SleepDurationHrs = round2(duration.mean())
		row.TimeToFallAsleepHrs = round2(delay.mean())
		row.SleepStart = formatClock(start.mean())
		row.SleepEndMain = formatClock(endMain.mean())
		row.SleepEndAll = formatClock(endAll.mean())
		row.InterruptionsNatural = round2(natural.mean())
		row.InterruptionsAlarm = round2(alarm.mean())
		row.InterruptionsTotal = round2(total.mean())
	case StatStd:
		row.SleepDurationHrs = round2(duration.std())
		row.TimeToFallAsleepHrs = round2(delay.std())
		row.SleepStart = formatHours(start.std())
		row.SleepEndMain = formatHours(endMain.std())
		row.SleepEndAll = formatHours(endAll.std())
		row.InterruptionsNatural = round2(natural.std())
		row.InterruptionsAlarm = round2(alarm.std())
		row.InterruptionsTotal = round2(total.std())
	}
	return row
}

// series accumulates one metric over a bucket.
type series struct {
	values []float64
}

func newSeries() *series { return &series{} }

func (s *series) add(v float64) { s.values = append(s.values, v) }

func (s *series) mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values))
}

// std is the sample standard deviation; buckets with fewer than two
// observations report zero spread.
func (s *series) std() float64 {
	n := len(s.values)
	if n < 2 {
		return 0
	}
	m := s.mean()
	var sq float64
	for _, v := range s.values {
		sq += (v - m) * (v - m)
	}
	return math.Sqrt(sq / float64(n-1))
}

// formatClock renders a fractional hour of day as "03:04 PM".
func formatClock(frac float64) string {
	totalMin := int(math.Round(frac * 60))
	totalMin = ((totalMin % (24 * 60)) + 24*60) % (24 * 60)
	t := time.Date(2000, 1, 1, totalMin/60, totalMin%60, 0, 0, time.UTC)
	return t.Format("03:04 PM")
}

// formatHours renders a spread in fractional hours.
func formatHours(frac float64) string {
	return fmt.Sprintf("%.2f", frac)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
