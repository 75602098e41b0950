// Package export renders roster data as CSV documents.
//
// The formats match the established export contract exactly: a cell
// containing a comma is wrapped in double quotes, and embedded quotes or
// newlines are left unescaped. Downstream consumers depend on this shape,
// so it is preserved as a known limitation rather than fixed.
package export

import (
	"strings"

	"github.com/okian/appello/internal/domain/model"
)

// Document names used for metrics labels and download filenames.
const (
	DocAthletes   = "athletes"
	DocTeams      = "teams"
	DocAttendance = "attendance"
)

// Athletes renders one row per athlete.
// Header: ID Atleta,Nome,Cognome,Data di Nascita.
func Athletes(athletes []model.Athlete) (string, int) {
	rows := make([][]string, 0, len(athletes))
	for _, a := range athletes {
		rows = append(rows, []string{a.ID, a.FirstName, a.LastName, a.DateOfBirth})
	}
	return render([]string{"ID Atleta", "Nome", "Cognome", "Data di Nascita"}, rows), len(rows)
}

// Teams renders one row per (team, member) pair. Members that no longer
// resolve to an athlete are skipped, so a team with zero resolvable members
// produces zero rows.
// Header: ID Squadra,Nome Squadra,ID Atleta,Nome Atleta,Cognome Atleta.
func Teams(teams []model.Team, athletes []model.Athlete) (string, int) {
	byID := athleteIndex(athletes)
	var rows [][]string
	for _, t := range teams {
		for _, id := range t.AthleteIDs {
			a, ok := byID[id]
			if !ok {
				continue
			}
			rows = append(rows, []string{t.ID, t.Name, a.ID, a.FirstName, a.LastName})
		}
	}
	return render([]string{"ID Squadra", "Nome Squadra", "ID Atleta", "Nome Atleta", "Cognome Atleta"}, rows), len(rows)
}

// Attendance renders one row per attendance record whose event, athlete and
// team all still resolve; records with any dangling reference are silently
// dropped.
// Header: Data Evento,Orario Evento,Titolo Evento,Nome Squadra,Nome Atleta,
// Cognome Atleta,Stato,Note.
func Attendance(records []model.AttendanceRecord, events []model.Event, athletes []model.Athlete, teams []model.Team) (string, int) {
	athleteByID := athleteIndex(athletes)
	eventByID := make(map[string]model.Event, len(events))
	for _, e := range events {
		eventByID[e.ID] = e
	}
	teamByID := make(map[string]model.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	var rows [][]string
	for _, r := range records {
		event, ok := eventByID[r.EventID]
		if !ok {
			continue
		}
		athlete, ok := athleteByID[r.AthleteID]
		if !ok {
			continue
		}
		team, ok := teamByID[event.TeamID]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			event.Date,
			event.Time,
			event.Title,
			team.Name,
			athlete.FirstName,
			athlete.LastName,
			string(r.Status),
			r.Notes,
		})
	}
	header := []string{
		"Data Evento", "Orario Evento", "Titolo Evento", "Nome Squadra",
		"Nome Atleta", "Cognome Atleta", "Stato", "Note",
	}
	return render(header, rows), len(rows)
}

func athleteIndex(athletes []model.Athlete) map[string]model.Athlete {
	byID := make(map[string]model.Athlete, len(athletes))
	for _, a := range athletes {
		byID[a.ID] = a
	}
	return byID
}

// render joins header and rows with newlines, escaping each cell.
func render(header []string, rows [][]string) string {
	var b strings.Builder
	writeRow(&b, header)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string) {
	for i, cell := range row {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCell(cell))
	}
}

// escapeCell wraps cells containing a comma in double quotes. Embedded
// quotes and newlines pass through unchanged.
func escapeCell(cell string) string {
	if strings.Contains(cell, ",") {
		return `"` + cell + `"`
	}
	return cell
}
