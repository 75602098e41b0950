package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/appello/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given a clean environment", t, func() {
		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then the defaults should apply", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, "127.0.0.1:9180")
			So(cfg.StorageBackend, ShouldEqual, config.BackendFile)
			So(cfg.DataDir, ShouldEqual, "./data")
			So(cfg.SQLitePath, ShouldEqual, "./data/appello.db")
		})
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APPELLO_ADDR", "0.0.0.0:8080")
	t.Setenv("APPELLO_LOG_LEVEL", "debug")
	t.Setenv("APPELLO_STORAGE_BACKEND", "sqlite")
	t.Setenv("APPELLO_SQLITE_PATH", "/tmp/roster.db")

	Convey("Given APPELLO_ environment overrides", t, func() {
		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)

		Convey("Then env values should win over defaults", func() {
			So(cfg.Addr, ShouldEqual, "0.0.0.0:8080")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.StorageBackend, ShouldEqual, config.BackendSQLite)
			So(cfg.SQLitePath, ShouldEqual, "/tmp/roster.db")

			Convey("And untouched fields should keep their defaults", func() {
				So(cfg.DataDir, ShouldEqual, "./data")
			})
		})
	})
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: 127.0.0.1:9999\nlog_level: warn\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("APPELLO_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		cfg, err := config.Load(context.Background())
		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, "127.0.0.1:9999")
		So(cfg.LogLevel, ShouldEqual, "warn")
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given an unknown storage backend", t, func() {
		t.Setenv("APPELLO_STORAGE_BACKEND", "redis")
		_, err := config.Load(context.Background())
		So(errors.Is(err, config.ErrUnknownBackend), ShouldBeTrue)
	})
}
