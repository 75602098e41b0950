package export_test

import (
	"strings"
	"testing"

	"github.com/okian/appello/internal/adapters/export"
	"github.com/okian/appello/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAthletesExport(t *testing.T) {
	Convey("Given the athlete collection", t, func() {
		athletes := []model.Athlete{
			{ID: "a1", FirstName: "Mario", LastName: "Rossi", DateOfBirth: "2010-05-12"},
			{ID: "a2", FirstName: "Anna", LastName: "De Luca, detta Lu", DateOfBirth: "2011-01-30"},
		}

		Convey("When rendering the document", func() {
			doc, rows := export.Athletes(athletes)
			lines := strings.Split(doc, "\n")

			Convey("Then the header should be the Italian one", func() {
				So(lines[0], ShouldEqual, "ID Atleta,Nome,Cognome,Data di Nascita")
			})

			Convey("Then each athlete should be one row", func() {
				So(rows, ShouldEqual, 2)
				So(lines[1], ShouldEqual, "a1,Mario,Rossi,2010-05-12")
			})

			Convey("Then cells containing commas should be quoted", func() {
				So(lines[2], ShouldEqual, `a2,Anna,"De Luca, detta Lu",2011-01-30`)
			})

			Convey("Then there should be no trailing newline", func() {
				So(strings.HasSuffix(doc, "\n"), ShouldBeFalse)
			})
		})

		Convey("When the collection is empty", func() {
			doc, rows := export.Athletes(nil)
			So(rows, ShouldEqual, 0)
			So(doc, ShouldEqual, "ID Atleta,Nome,Cognome,Data di Nascita")
		})
	})
}

func TestTeamsExport(t *testing.T) {
	Convey("Given teams whose rosters partly resolve", t, func() {
		athletes := []model.Athlete{
			{ID: "a1", FirstName: "Mario", LastName: "Rossi"},
			{ID: "a2", FirstName: "Luca", LastName: "Bianchi"},
		}
		teams := []model.Team{
			{ID: "t1", Name: "Under 14", AthleteIDs: []string{"a1", "gone", "a2"}},
			{ID: "t2", Name: "Under 16", AthleteIDs: []string{"gone"}},
		}

		Convey("When rendering the document", func() {
			doc, rows := export.Teams(teams, athletes)
			lines := strings.Split(doc, "\n")

			Convey("Then one row per resolvable member should be emitted", func() {
				So(rows, ShouldEqual, 2)
				So(lines[0], ShouldEqual, "ID Squadra,Nome Squadra,ID Atleta,Nome Atleta,Cognome Atleta")
				So(lines[1], ShouldEqual, "t1,Under 14,a1,Mario,Rossi")
				So(lines[2], ShouldEqual, "t1,Under 14,a2,Luca,Bianchi")
			})

			Convey("Then a team with no resolvable members should produce no rows", func() {
				So(doc, ShouldNotContainSubstring, "Under 16")
			})
		})
	})
}

func TestAttendanceExport(t *testing.T) {
	Convey("Given attendance records with mixed reference health", t, func() {
		athletes := []model.Athlete{{ID: "a1", FirstName: "Mario", LastName: "Rossi"}}
		teams := []model.Team{{ID: "t1", Name: "Under 14", AthleteIDs: []string{"a1"}}}
		events := []model.Event{
			{ID: "e1", Title: "Allenamento", Date: "2024-03-15", Time: "18:00", TeamID: "t1"},
			{ID: "e2", Title: "Partita", Date: "2024-03-16", Time: "15:00", TeamID: "gone-team"},
		}
		records := []model.AttendanceRecord{
			{EventID: "e1", AthleteID: "a1", Status: model.StatusPresent},
			{EventID: "e1", AthleteID: "gone-athlete", Status: model.StatusAbsent},
			{EventID: "gone-event", AthleteID: "a1", Status: model.StatusAbsent},
			{EventID: "e2", AthleteID: "a1", Status: model.StatusAbsent, Notes: "squadra rimossa"},
		}

		Convey("When rendering the document", func() {
			doc, rows := export.Attendance(records, events, athletes, teams)
			lines := strings.Split(doc, "\n")

			Convey("Then only the fully resolvable record should survive", func() {
				So(rows, ShouldEqual, 1)
				So(len(lines), ShouldEqual, 2)
				So(lines[0], ShouldEqual,
					"Data Evento,Orario Evento,Titolo Evento,Nome Squadra,Nome Atleta,Cognome Atleta,Stato,Note")
				So(lines[1], ShouldEqual, "2024-03-15,18:00,Allenamento,Under 14,Mario,Rossi,Presente,")
			})
		})
	})
}
