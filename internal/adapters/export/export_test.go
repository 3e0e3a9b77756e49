package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/ohbehave/internal/domain/model"
	"github.com/okian/ohbehave/internal/domain/weekly"
)

func sampleDaily() []*model.DailyRow {
	start := time.Date(2024, 3, 5, 23, 0, 0, 0, time.Local)
	end := time.Date(2024, 3, 6, 7, 0, 0, 0, time.Local)
	startHr := 23.0
	dur := 7.67
	return []*model.DailyRow{
		{
			Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local),
			Weekday:   "Tuesday",
			DrinksTot: 2,
			Sleep: model.SleepSummary{
				StartTS:     &start,
				EndMainTS:   &end,
				EndAllTS:    &end,
				StartHr:     &startHr,
				DurationHrs: dur,
			},
			CommentsAll: "long day",
		},
		{
			Date:    time.Date(2024, 3, 6, 0, 0, 0, 0, time.Local),
			Weekday: "Wednesday",
		},
	}
}

func TestDailyFileName(t *testing.T) {
	Convey("Given exclusion combinations", t, func() {
		So(DailyFileName("out", false, false, false, "csv"),
			ShouldEqual, filepath.Join("out", "data.csv"))
		So(DailyFileName("out", true, false, false, "csv"),
			ShouldEqual, filepath.Join("out", "data - sans_gaming.csv"))
		So(DailyFileName("out", false, true, true, "parquet"),
			ShouldEqual, filepath.Join("out", "data - sans_alcohol sans_sleep.parquet"))
	})
}

func TestWriteDailyCSV(t *testing.T) {
	Convey("Given a daily table written to CSV", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "data.csv")

		So(WriteDailyCSV(path, sampleDaily()), ShouldBeNil)

		f, err := os.Open(path)
		So(err, ShouldBeNil)
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		So(err, ShouldBeNil)

		Convey("Then the header matches the historical export", func() {
			So(records[0][0], ShouldEqual, "Date")
			So(records[0], ShouldHaveLength, 23)
		})

		Convey("And populated fields render, absent ones stay empty", func() {
			So(records, ShouldHaveLength, 3)
			So(records[1][0], ShouldEqual, "2024-03-05")
			So(records[1][1], ShouldEqual, "Tuesday")
			So(records[1][10], ShouldEqual, "2")
			So(records[1][11], ShouldEqual, "2024-03-05 23:00:00")
			So(records[1][17], ShouldEqual, "7.67")
			So(records[1][22], ShouldEqual, "long day")
			So(records[2][11], ShouldBeEmpty)
		})
	})
}

func TestWriteWeeklyCSV(t *testing.T) {
	Convey("Given weekly summary rows written to CSV", t, func() {
		dir := t.TempDir()
		path := WeeklyFileName(dir)
		rows := []weekly.Row{
			{Stat: "mean", Weekday: "All", Count: 5, SleepDurationHrs: 7.5, SleepStart: "11:30 PM"},
			{Stat: "std", Weekday: "All", Count: 5, SleepDurationHrs: 0.8, SleepStart: "0.75"},
		}

		So(WriteWeeklyCSV(path, rows), ShouldBeNil)
		So(filepath.Base(path), ShouldEqual, "summary-stats - sleep.csv")

		f, err := os.Open(path)
		So(err, ShouldBeNil)
		defer f.Close()
		records, err := csv.NewReader(f).ReadAll()
		So(err, ShouldBeNil)

		So(records, ShouldHaveLength, 3)
		So(records[1][0], ShouldEqual, "mean")
		So(records[1][5], ShouldEqual, "11:30 PM")
		So(records[2][3], ShouldEqual, "0.8")
	})
}

func TestWriteDailyDispatch(t *testing.T) {
	Convey("Given the format dispatcher", t, func() {
		dir := t.TempDir()

		Convey("When writing csv", func() {
			So(WriteDaily(filepath.Join(dir, "d.csv"), "csv", sampleDaily()), ShouldBeNil)
		})

		Convey("When writing parquet", func() {
			So(WriteDaily(filepath.Join(dir, "d.parquet"), "parquet", sampleDaily()), ShouldBeNil)
		})

		Convey("When the format is unknown", func() {
			err := WriteDaily(filepath.Join(dir, "d.xlsx"), "xlsx", sampleDaily())
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unsupported export format")
		})
	})
}
