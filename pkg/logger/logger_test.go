package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/okian/appello/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGlobalLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When fetching it", func() {
			lg := logger.Get()
			So(lg, ShouldNotBeNil)

			Convey("Then logging at every level should not panic", func() {
				ctx := context.Background()
				So(func() {
					lg.Debug(ctx, "debug message", logger.String("k", "v"))
					lg.Info(ctx, "info message", logger.Int("n", 1))
					lg.Warn(ctx, "warn message", logger.Bool("flag", true))
					lg.Error(ctx, "error message", logger.Error(errors.New("boom")))
				}, ShouldNotPanic)
			})
		})

		Convey("When deriving a named logger", func() {
			named := logger.Named("roster")
			So(named, ShouldNotBeNil)
			So(func() {
				named.Info(context.Background(), "named message", logger.Any("v", 42))
			}, ShouldNotPanic)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		So(logger.String("a", "b"), ShouldResemble, logger.Field{Key: "a", Value: "b"})
		So(logger.Int("n", 7), ShouldResemble, logger.Field{Key: "n", Value: 7})
		So(logger.Bool("ok", true), ShouldResemble, logger.Field{Key: "ok", Value: true})

		err := errors.New("boom")
		So(logger.Error(err), ShouldResemble, logger.Field{Key: "error", Value: err})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When setting recognized levels", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", "DEBUG"} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("When setting an unknown level", func() {
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})

		Convey("When setting a level directly", func() {
			So(func() { logger.SetLevel(slog.LevelWarn) }, ShouldNotPanic)
		})
	})
}
