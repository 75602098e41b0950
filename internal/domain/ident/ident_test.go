package ident_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/okian/appello/internal/domain/ident"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUUIDGenerator(t *testing.T) {
	Convey("Given a UUID generator", t, func() {
		g := ident.NewUUID()

		Convey("When generating ids", func() {
			first := g.NewID()
			second := g.NewID()

			Convey("Then each id should be a parseable UUID", func() {
				_, err := uuid.Parse(first)
				So(err, ShouldBeNil)
				_, err = uuid.Parse(second)
				So(err, ShouldBeNil)
			})

			Convey("Then consecutive ids should differ", func() {
				So(first, ShouldNotEqual, second)
			})
		})
	})
}

func TestSequenceGenerator(t *testing.T) {
	Convey("Given a sequence generator", t, func() {
		g := ident.NewSequence("athlete")

		Convey("When generating ids", func() {
			Convey("Then they should be prefixed and count from one", func() {
				So(g.NewID(), ShouldEqual, "athlete-1")
				So(g.NewID(), ShouldEqual, "athlete-2")
				So(g.NewID(), ShouldEqual, "athlete-3")
			})
		})
	})
}
