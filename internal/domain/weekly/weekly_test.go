package weekly

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/ohbehave/internal/domain/model"
)

func sleptDay(weekday string, duration, startHr float64) *model.DailyRow {
	start := time.Date(2024, 3, 5, 23, 0, 0, 0, time.Local)
	return &model.DailyRow{
		Weekday: weekday,
		Sleep: model.SleepSummary{
			StartTS:     &start,
			StartHr:     &startHr,
			DurationHrs: duration,
		},
	}
}

func TestSummarize(t *testing.T) {
	Convey("Given a daily table with sleep data", t, func() {
		rows := []*model.DailyRow{
			sleptDay("Monday", 7.0, 23.0),
			sleptDay("Monday", 9.0, 23.5),
			sleptDay("Tuesday", 8.0, 22.0),
		}

		out := Summarize(rows)

		Convey("Then mean rows precede std rows, All bucket first", func() {
			So(out[0].Stat, ShouldEqual, StatMean)
			So(out[0].Weekday, ShouldEqual, AllBucket)
			So(out[0].Count, ShouldEqual, 3)

			var stats []string
			for _, r := range out {
				stats = append(stats, r.Stat+"/"+r.Weekday)
			}
			So(stats, ShouldResemble, []string{
				"mean/All", "mean/Monday", "mean/Tuesday",
				"std/All", "std/Monday", "std/Tuesday",
			})
		})

		Convey("Then the Monday mean and spread are computed over both days", func() {
			var monMean, monStd Row
			for _, r := range out {
				if r.Weekday != "Monday" {
					continue
				}
				if r.Stat == StatMean {
					monMean = r
				} else {
					monStd = r
				}
			}
			So(monMean.SleepDurationHrs, ShouldEqual, 8.0)
			So(monStd.SleepDurationHrs, ShouldEqual, 1.41) // sample std of {7, 9}
		})

		Convey("Then single-day buckets report zero spread", func() {
			for _, r := range out {
				if r.Stat == StatStd && r.Weekday == "Tuesday" {
					So(r.SleepDurationHrs, ShouldEqual, 0)
				}
			}
		})

		Convey("Then mean time-of-day metrics render as clock times", func() {
			for _, r := range out {
				if r.Stat == StatMean && r.Weekday == "Tuesday" {
					So(r.SleepStart, ShouldEqual, "10:00 PM")
				}
				if r.Stat == StatStd && r.Weekday == "Tuesday" {
					So(r.SleepStart, ShouldEqual, "0.00")
				}
			}
		})
	})
}

func TestSummarizeExclusions(t *testing.T) {
	Convey("Given days without sleep or with outlier durations", t, func() {
		noSleep := &model.DailyRow{Weekday: "Monday"}
		outlier := sleptDay("Monday", 16.0, 23.0)
		normal := sleptDay("Monday", 8.0, 23.0)

		out := Summarize([]*model.DailyRow{noSleep, outlier, normal})

		Convey("Then only the normal day is counted anywhere", func() {
			for _, r := range out {
				So(r.Count, ShouldEqual, 1)
			}
		})
	})

	Convey("Given no usable days at all", t, func() {
		out := Summarize([]*model.DailyRow{{Weekday: "Monday"}})
		So(out, ShouldBeEmpty)
	})
}

func TestFormatClock(t *testing.T) {
	Convey("Given fractional hours of day", t, func() {
		So(formatClock(23.5), ShouldEqual, "11:30 PM")
		So(formatClock(0.0), ShouldEqual, "12:00 AM")
		So(formatClock(12.25), ShouldEqual, "12:15 PM")
		So(formatClock(7.0), ShouldEqual, "07:00 AM")

		Convey("And values wrap around the day boundary", func() {
			So(formatClock(24.5), ShouldEqual, "12:30 AM")
		})
	})
}
