package model_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/appello/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAttendanceStatus(t *testing.T) {
	Convey("Given the attendance statuses", t, func() {
		Convey("Then the recognized values should validate", func() {
			So(model.StatusPresent.Valid(), ShouldBeTrue)
			So(model.StatusAbsent.Valid(), ShouldBeTrue)
		})

		Convey("Then other values should not validate", func() {
			So(model.AttendanceStatus("").Valid(), ShouldBeFalse)
			So(model.AttendanceStatus("presente").Valid(), ShouldBeFalse)
			So(model.AttendanceStatus("Present").Valid(), ShouldBeFalse)
		})

		Convey("Then the persisted labels should be the Italian ones", func() {
			So(string(model.StatusPresent), ShouldEqual, "Presente")
			So(string(model.StatusAbsent), ShouldEqual, "Assente")
		})
	})
}

func TestTeamRoster(t *testing.T) {
	Convey("Given a team with three members", t, func() {
		team := model.Team{
			ID:         "t1",
			Name:       "Under 14",
			AthleteIDs: []string{"a1", "a2", "a3"},
		}

		Convey("When checking membership", func() {
			So(team.HasAthlete("a2"), ShouldBeTrue)
			So(team.HasAthlete("a9"), ShouldBeFalse)
		})

		Convey("When removing a member", func() {
			removed := team.RemoveAthlete("a2")

			Convey("Then it should report the change and keep the order", func() {
				So(removed, ShouldBeTrue)
				So(team.AthleteIDs, ShouldResemble, []string{"a1", "a3"})
			})
		})

		Convey("When removing an unknown id", func() {
			removed := team.RemoveAthlete("a9")

			Convey("Then nothing should change", func() {
				So(removed, ShouldBeFalse)
				So(team.AthleteIDs, ShouldResemble, []string{"a1", "a2", "a3"})
			})
		})
	})
}

func TestDedupeIDs(t *testing.T) {
	Convey("Given lists of athlete ids", t, func() {
		Convey("When the list has duplicates", func() {
			out := model.DedupeIDs([]string{"a1", "a2", "a1", "a3", "a2"})

			Convey("Then the first occurrence of each should survive in order", func() {
				So(out, ShouldResemble, []string{"a1", "a2", "a3"})
			})
		})

		Convey("When the list is already unique", func() {
			out := model.DedupeIDs([]string{"a1", "a2"})
			So(out, ShouldResemble, []string{"a1", "a2"})
		})

		Convey("When the list is empty", func() {
			So(model.DedupeIDs(nil), ShouldBeNil)
		})
	})
}

func TestDefaultAttendance(t *testing.T) {
	Convey("Given a pair with no stored record", t, func() {
		rec := model.DefaultAttendance("e1", "a1")

		Convey("Then the synthesized record should be Presente with empty notes", func() {
			So(rec.EventID, ShouldEqual, "e1")
			So(rec.AthleteID, ShouldEqual, "a1")
			So(rec.Status, ShouldEqual, model.StatusPresent)
			So(rec.Notes, ShouldEqual, "")
		})

		Convey("Then its key should identify the pair", func() {
			So(rec.Key(), ShouldResemble, model.AttendanceKey{EventID: "e1", AthleteID: "a1"})
		})
	})
}

func TestJSONShape(t *testing.T) {
	Convey("Given the persisted entities", t, func() {
		Convey("When marshaling an athlete", func() {
			data, err := json.Marshal(model.Athlete{
				ID: "a1", FirstName: "Mario", LastName: "Rossi", DateOfBirth: "2010-05-12",
			})
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual,
				`{"id":"a1","firstName":"Mario","lastName":"Rossi","dateOfBirth":"2010-05-12"}`)
		})

		Convey("When marshaling an event", func() {
			data, err := json.Marshal(model.Event{
				ID: "e1", Title: "Allenamento", Date: "2024-03-15", Time: "18:00", TeamID: "t1",
			})
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual,
				`{"id":"e1","title":"Allenamento","date":"2024-03-15","time":"18:00","teamId":"t1"}`)
		})

		Convey("When marshaling an attendance record without notes", func() {
			data, err := json.Marshal(model.AttendanceRecord{
				EventID: "e1", AthleteID: "a1", Status: model.StatusAbsent,
			})
			So(err, ShouldBeNil)

			Convey("Then the notes field should be omitted", func() {
				So(string(data), ShouldEqual, `{"eventId":"e1","athleteId":"a1","status":"Assente"}`)
			})
		})
	})
}
