package model

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseClockTime(t *testing.T) {
	Convey("Given clock time strings", t, func() {
		Convey("When parsing a plain HH:MM value", func() {
			c, err := ParseClockTime("09:30")
			So(err, ShouldBeNil)
			So(c.Hour, ShouldEqual, 9)
			So(c.Minute, ShouldEqual, 30)
			So(c.String(), ShouldEqual, "09:30")
		})

		Convey("When parsing a value with seconds", func() {
			c, err := ParseClockTime("20:00:15")
			So(err, ShouldBeNil)
			So(c.Hour, ShouldEqual, 20)
			So(c.Minute, ShouldEqual, 0)
		})

		Convey("When parsing malformed values", func() {
			for _, s := range []string{"", "25:00", "9", "09:61", "abc"} {
				_, err := ParseClockTime(s)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestClockTimeCovers(t *testing.T) {
	Convey("Given the 09:30 boundary", t, func() {
		c := ClockTime{Hour: 9, Minute: 30}

		Convey("Then earlier times of day are covered", func() {
			So(c.Covers(time.Date(2024, 3, 5, 2, 0, 0, 0, time.Local)), ShouldBeTrue)
			So(c.Covers(time.Date(2024, 3, 5, 9, 29, 0, 0, time.Local)), ShouldBeTrue)
		})

		Convey("And the boundary itself and later times are not", func() {
			So(c.Covers(time.Date(2024, 3, 5, 9, 30, 0, 0, time.Local)), ShouldBeFalse)
			So(c.Covers(time.Date(2024, 3, 5, 14, 0, 0, 0, time.Local)), ShouldBeFalse)
		})
	})
}

func TestDefaultAssumptions(t *testing.T) {
	Convey("Given the default assumptions", t, func() {
		a := DefaultAssumptions()

		So(a.GamingEarliestDailyStart.String(), ShouldEqual, "09:30")
		So(a.SleepStartHourNonNap.String(), ShouldEqual, "20:00")
		So(a.WakeAlarmHourThreshold.String(), ShouldEqual, "07:00")
		So(a.AvgDelayIfLoggedOnce, ShouldEqual, 20*time.Minute)
		So(a.AvgDelayIfLoggedMultiple, ShouldEqual, 5*time.Minute)
		So(a.FutureRetroThresholdHours, ShouldEqual, 2)
		So(a.LatestSleepHour, ShouldEqual, 7)
	})
}
