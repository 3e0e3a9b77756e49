package frame

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/ohbehave/internal/domain/model"
)

func at(y int, m time.Month, d, hh int) model.Event {
	return model.Event{TS: time.Date(y, m, d, hh, 0, 0, 0, time.Local)}
}

func TestBuild(t *testing.T) {
	Convey("Given events spanning several days", t, func() {
		events := []model.Event{
			at(2024, 3, 7, 12),
			at(2024, 3, 5, 23),
			at(2024, 3, 9, 8),
		}

		Convey("When building the daily frame", func() {
			table, err := Build(events)
			So(err, ShouldBeNil)

			Convey("Then it covers every date in [min, max] contiguously", func() {
				So(table.Len(), ShouldEqual, 5)
				rows := table.Rows()
				for i, r := range rows {
					want := time.Date(2024, 3, 5+i, 0, 0, 0, 0, time.Local)
					So(r.Date, ShouldResemble, want)
				}
			})

			Convey("And gap dates get rows even with no events", func() {
				row, ok := table.Row(time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local))
				So(ok, ShouldBeTrue)
				So(row.DrinksTot, ShouldEqual, 0)
			})

			Convey("And dates outside the range have no row", func() {
				_, ok := table.Row(time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local))
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given no events", t, func() {
		_, err := Build(nil)
		So(err, ShouldEqual, ErrEmptyLog)
	})
}

func TestWeekdayName(t *testing.T) {
	Convey("Given the Monday-first weekday enumeration", t, func() {
		// 2024-03-04 is a Monday.
		cases := []struct {
			day  int
			name string
		}{
			{4, "Monday"}, {5, "Tuesday"}, {6, "Wednesday"}, {7, "Thursday"},
			{8, "Friday"}, {9, "Saturday"}, {10, "Sunday"},
		}
		for _, c := range cases {
			got := WeekdayName(time.Date(2024, 3, c.day, 12, 0, 0, 0, time.Local))
			So(got, ShouldEqual, c.name)
		}
	})
}

func TestDateOf(t *testing.T) {
	Convey("Given a timestamp mid-day", t, func() {
		ts := time.Date(2024, 3, 5, 17, 45, 12, 0, time.Local)
		So(DateOf(ts), ShouldResemble, time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local))
	})
}
