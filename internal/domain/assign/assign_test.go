package assign

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/ohbehave/internal/domain/frame"
	"github.com/okian/ohbehave/internal/domain/model"
)

func ts(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func buildTable(times ...time.Time) *frame.Table {
	events := make([]model.Event, len(times))
	for i, t := range times {
		events[i] = model.Event{TS: t}
	}
	table, err := frame.Build(events)
	if err != nil {
		panic(err)
	}
	return table
}

func TestSessions(t *testing.T) {
	Convey("Given a daily table and gaming events", t, func() {
		ctx := context.Background()
		table := buildTable(ts(2024, 3, 4, 0, 0), ts(2024, 3, 6, 0, 0))

		Convey("When a friends session has start and stop", func() {
			start := ts(2024, 3, 5, 19, 0)
			stop := ts(2024, 3, 5, 21, 30)
			Sessions(ctx, table, []model.Event{
				{Kind: model.KindGamesFriends, Marker: model.MarkerStart, TS: start},
				{Kind: model.KindGamesFriends, Marker: model.MarkerStop, TS: stop},
			})

			row, _ := table.Row(ts(2024, 3, 5, 0, 0))
			So(row.GamesFriends.Start, ShouldNotBeNil)
			So(*row.GamesFriends.Start, ShouldResemble, start)
			So(*row.GamesFriends.Stop, ShouldResemble, stop)
			So(row.GamesSolo.Start, ShouldBeNil)
		})

		Convey("When duplicate markers land on the same date", func() {
			first := ts(2024, 3, 5, 14, 0)
			second := ts(2024, 3, 5, 19, 0)
			Sessions(ctx, table, []model.Event{
				{Kind: model.KindGamesSolo, Marker: model.MarkerStart, TS: first},
				{Kind: model.KindGamesSolo, Marker: model.MarkerStart, TS: second},
			})

			Convey("Then the last writer wins", func() {
				row, _ := table.Row(ts(2024, 3, 5, 0, 0))
				So(*row.GamesSolo.Start, ShouldResemble, second)
			})
		})

		Convey("When a session event falls outside the frame", func() {
			So(func() {
				Sessions(ctx, table, []model.Event{
					{Kind: model.KindGamesSolo, Marker: model.MarkerStart, TS: ts(2024, 3, 20, 19, 0)},
				})
			}, ShouldNotPanic)
		})
	})
}

func TestDrinks(t *testing.T) {
	Convey("Given a daily table and drink events", t, func() {
		ctx := context.Background()

		Convey("When a drink is logged mid-afternoon", func() {
			table := buildTable(ts(2024, 3, 4, 0, 0), ts(2024, 3, 6, 0, 0))
			Drinks(ctx, table, []model.Event{
				{Kind: model.KindDrink, TS: ts(2024, 3, 5, 14, 0)},
			})

			row, _ := table.Row(ts(2024, 3, 5, 0, 0))
			So(row.DrinksTot, ShouldEqual, 1)
		})

		Convey("When a drink is logged in the small hours", func() {
			table := buildTable(ts(2024, 3, 4, 0, 0), ts(2024, 3, 6, 0, 0))
			Drinks(ctx, table, []model.Event{
				{Kind: model.KindDrink, TS: ts(2024, 3, 5, 2, 0)},
			})

			Convey("Then it credits the previous day's session", func() {
				prev, _ := table.Row(ts(2024, 3, 4, 0, 0))
				own, _ := table.Row(ts(2024, 3, 5, 0, 0))
				So(prev.DrinksTot, ShouldEqual, 1)
				So(own.DrinksTot, ShouldEqual, 0)
			})
		})

		Convey("When the shifted date falls before the frame", func() {
			table := buildTable(ts(2024, 3, 4, 0, 0), ts(2024, 3, 6, 0, 0))
			Drinks(ctx, table, []model.Event{
				{Kind: model.KindDrink, TS: ts(2024, 3, 4, 2, 0)},
			})

			Convey("Then it falls back to its own date", func() {
				row, _ := table.Row(ts(2024, 3, 4, 0, 0))
				So(row.DrinksTot, ShouldEqual, 1)
			})
		})

		Convey("When neither date has a row", func() {
			table := buildTable(ts(2024, 3, 4, 0, 0), ts(2024, 3, 6, 0, 0))
			So(func() {
				Drinks(ctx, table, []model.Event{
					{Kind: model.KindDrink, TS: ts(2024, 3, 20, 2, 0)},
				})
			}, ShouldNotPanic)
		})

		Convey("When several drinks land on one date", func() {
			table := buildTable(ts(2024, 3, 4, 0, 0), ts(2024, 3, 6, 0, 0))
			Drinks(ctx, table, []model.Event{
				{Kind: model.KindDrink, TS: ts(2024, 3, 5, 18, 0)},
				{Kind: model.KindDrink, TS: ts(2024, 3, 5, 20, 0)},
				{Kind: model.KindDrink, TS: ts(2024, 3, 6, 1, 30)},
			})

			row, _ := table.Row(ts(2024, 3, 5, 0, 0))
			So(row.DrinksTot, ShouldEqual, 3)
		})
	})
}

func TestComments(t *testing.T) {
	Convey("Given raw rows with comments", t, func() {
		ctx := context.Background()
		table := buildTable(ts(2024, 3, 4, 0, 0), ts(2024, 3, 6, 0, 0))

		rows := []model.RawRow{
			{Timestamp: ts(2024, 3, 5, 9, 0), Comment: "slept badly"},
			{Timestamp: ts(2024, 3, 5, 21, 0), Comment: "long day"},
			{Timestamp: ts(2024, 3, 6, 12, 0)},
			{Timestamp: ts(2024, 3, 20, 12, 0), Comment: "outside the frame"},
		}
		Comments(ctx, table, rows)

		Convey("Then same-day comments join in submission order", func() {
			row, _ := table.Row(ts(2024, 3, 5, 0, 0))
			So(row.CommentsAll, ShouldEqual, "slept badly; long day")
		})

		Convey("And days without comments stay empty", func() {
			row, _ := table.Row(ts(2024, 3, 6, 0, 0))
			So(row.CommentsAll, ShouldBeEmpty)
		})
	})
}
