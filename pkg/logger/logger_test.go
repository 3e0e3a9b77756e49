package logger

import (
	"context"
	"log/slog"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGlobalLogger(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When fetched before Init", func() {
			l := Get()

			Convey("Then it self-initializes", func() {
				So(l, ShouldNotBeNil)
				So(func() {
					l.Info(context.Background(), "hello", String("k", "v"))
				}, ShouldNotPanic)
			})
		})

		Convey("When Init is called", func() {
			So(Init(), ShouldBeNil)
			So(Get(), ShouldNotBeNil)
		})

		Convey("When deriving a named logger", func() {
			l := Named("pipeline")
			So(l, ShouldNotBeNil)
			So(func() {
				l.Debug(context.Background(), "scoped message")
			}, ShouldNotPanic)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		Convey("Then known levels parse", func() {
			for _, s := range []string{"debug", "info", "warn", "warning", "error", "INFO", ""} {
				So(SetLevelString(s), ShouldBeNil)
			}
		})

		Convey("And unknown levels are rejected", func() {
			So(SetLevelString("loud"), ShouldNotBeNil)
		})

		Convey("And the handler honors the level", func() {
			SetLevel(slog.LevelInfo)
			So(func() {
				Get().Debug(context.Background(), "suppressed")
			}, ShouldNotPanic)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		So(String("a", "b").Key, ShouldEqual, "a")
		So(Int("n", 3).Value, ShouldEqual, 3)
		So(Float64("f", 1.5).Value, ShouldEqual, 1.5)
		So(Error(nil).Key, ShouldEqual, "error")
		So(Any("x", []int{1}).Key, ShouldEqual, "x")
	})
}
