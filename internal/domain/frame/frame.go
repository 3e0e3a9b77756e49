// Package frame builds the regular output skeleton: one row per calendar
// date from the first to the last observed date, inclusive. Only this
// package creates rows; assigners mutate existing rows by date lookup.
package frame

import (
	"time"

	"github.com/okian/ohbehave/internal/domain/model"
)

// weekdayNames is the immutable Monday-first weekday enumeration used
// for the daily table. (The weekly summary presents Sunday-first; that
// ordering lives with the aggregator.)
var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayName returns the Monday-first weekday name for t.
func WeekdayName(t time.Time) string {
	return weekdayNames[(int(t.Weekday())+6)%7]
}

// DateOf truncates t to midnight of its calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dateKey is the lookup key for a calendar date, location-insensitive.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Table is the daily table: a contiguous, gapless run of rows keyed by
// calendar date.
type Table struct {
	rows   []*model.DailyRow
	byDate map[string]*model.DailyRow
}

// Build creates the skeleton covering [min, max] of the event timestamps.
// Returns ErrEmptyLog when there are no events to anchor the range.
func Build(events []model.Event) (*Table, error) {
	if len(events) == 0 {
		return nil, ErrEmptyLog
	}

	first := DateOf(events[0].TS)
	last := first
	for _, e := range events[1:] {
		d := DateOf(e.TS)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	t := &Table{byDate: make(map[string]*model.DailyRow)}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		row := &model.DailyRow{Date: d, Weekday: WeekdayName(d)}
		t.rows = append(t.rows, row)
		t.byDate[dateKey(d)] = row
	}
	return t, nil
}

// Row looks up the row for date. The second return is false when date
// falls outside the built range; the caller decides whether that is a
// fallback case or a dropped event.
func (t *Table) Row(date time.Time) (*model.DailyRow, bool) {
	row, ok := t.byDate[dateKey(date)]
	return row, ok
}

// Rows returns the rows in ascending date order. Callers may mutate the
// pointed-to rows; the slice itself is shared.
func (t *Table) Rows() []*model.DailyRow {
	return t.rows
}

// Len returns the number of daily rows.
func (t *Table) Len() int {
	return len(t.rows)
}
