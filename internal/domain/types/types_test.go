package types

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/internal/domain/weekly"
)

func TestFromDailyRow(t *testing.T) {
	Convey("Given a populated daily row", t, func() {
		start := time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)
		startHr := 23.0
		row := &model.DailyRow{
			Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Weekday:   "Tuesday",
			DrinksTot: 2,
			Sleep: model.SleepSummary{
				StartTS:     &start,
				StartHr:     &startHr,
				DurationHrs: 7.5,
			},
			CommentsAll: "note",
		}

		rec := FromDailyRow(row)
		So(rec.Date, ShouldEqual, "2024-03-05")
		So(rec.Weekday, ShouldEqual, "Tuesday")
		So(rec.DrinksTot, ShouldEqual, 2)
		So(rec.SleepStart, ShouldEqual, "2024-03-05T23:00:00Z")
		So(*rec.SleepStartHr, ShouldEqual, 23.0)
		So(rec.SleepDurationHrs, ShouldEqual, 7.5)
		So(rec.Comments, ShouldEqual, "note")

		Convey("And absent optionals render empty", func() {
			So(rec.GamesFriendsStart, ShouldBeEmpty)
			So(rec.SleepEndMainHr, ShouldBeNil)
		})
	})
}

func TestFromWeeklyRow(t *testing.T) {
	Convey("Given a weekly summary row", t, func() {
		rec := FromWeeklyRow(weekly.Row{
			Stat:             "mean",
			Weekday:          "All",
			Count:            7,
			SleepDurationHrs: 7.25,
			SleepStart:       "11:30 PM",
		})

		So(rec.Stat, ShouldEqual, "mean")
		So(rec.Weekday, ShouldEqual, "All")
		So(rec.Count, ShouldEqual, 7)
		So(rec.SleepDurationHrs, ShouldEqual, 7.25)
		So(rec.SleepStart, ShouldEqual, "11:30 PM")
	})
}
