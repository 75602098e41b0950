package storage_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/appello/internal/adapters/storage"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFileStore(t *testing.T) {
	Convey("Given a file-backed store", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		store, err := storage.NewFileStore(dir)
		So(err, ShouldBeNil)

		Convey("When loading a key that was never saved", func() {
			_, err := store.Load(ctx, storage.KeyAthletes)

			Convey("Then it should report not found", func() {
				So(errors.Is(err, storage.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When saving and loading a snapshot", func() {
			payload := []byte(`[{"id":"a1"}]`)
			So(store.Save(ctx, storage.KeyAthletes, payload), ShouldBeNil)

			got, err := store.Load(ctx, storage.KeyAthletes)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, payload)

			Convey("And the snapshot should live in a per-key json file", func() {
				_, err := os.Stat(filepath.Join(dir, storage.KeyAthletes+".json"))
				So(err, ShouldBeNil)
			})
		})

		Convey("When saving the same key twice", func() {
			So(store.Save(ctx, storage.KeyTeams, []byte(`[1]`)), ShouldBeNil)
			So(store.Save(ctx, storage.KeyTeams, []byte(`[1,2]`)), ShouldBeNil)

			got, err := store.Load(ctx, storage.KeyTeams)
			So(err, ShouldBeNil)

			Convey("Then the second write should replace the first", func() {
				So(string(got), ShouldEqual, `[1,2]`)
			})
		})

		Convey("When using a key that would escape the data directory", func() {
			for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
				_, err := store.Load(ctx, key)
				So(errors.Is(err, storage.ErrInvalidKey), ShouldBeTrue)
				So(errors.Is(store.Save(ctx, key, []byte(`x`)), storage.ErrInvalidKey), ShouldBeTrue)
			}
		})

		Convey("When closing the store", func() {
			So(store.Close(), ShouldBeNil)
		})
	})

	Convey("Given an empty data directory path", t, func() {
		_, err := storage.NewFileStore("   ")
		So(err, ShouldNotBeNil)
	})
}
