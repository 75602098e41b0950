// Package seed loads a plausible demo club into a running roster service
// through its HTTP API.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/okian/appello/internal/domain/calendar"
	"github.com/okian/appello/internal/domain/model"
	"github.com/okian/appello/pkg/logger"
)

const (
	minBirthYear = 2006
	maxBirthYear = 2014

	trainingTime = "18:00"
	matchTime    = "15:00"
)

var firstNames = []string{
	"Marco", "Luca", "Giulia", "Sofia", "Alessandro", "Francesca",
	"Matteo", "Chiara", "Davide", "Elena", "Simone", "Martina",
	"Andrea", "Sara", "Lorenzo", "Alice", "Gabriele", "Giorgia",
	"Riccardo", "Aurora",
}

var lastNames = []string{
	"Rossi", "Bianchi", "Ferrari", "Esposito", "Romano", "Colombo",
	"Ricci", "Marino", "Greco", "Bruno", "Gallo", "Conti",
	"De Luca", "Costa", "Giordano", "Mancini", "Rizzo", "Lombardi",
	"Moretti", "Barbieri",
}

var teamNames = []string{
	"Under 10", "Under 12", "Under 14", "Under 16", "Under 18", "Prima Squadra",
}

// Config controls how much demo data is generated and where it is sent.
type Config struct {
	BaseURL  string
	Athletes int
	Teams    int
	// Year and Month select the month events are scheduled in.
	Year  int
	Month time.Month
	// Seed makes generation deterministic when non-zero.
	Seed int64
}

// Runner generates the demo club and posts it to the service.
type Runner struct {
	cfg Config
	cli *client
	rnd *rand.Rand
	lg  logger.Logger
}

func NewRunner(cfg Config, lg logger.Logger) *Runner {
	src := rand.NewSource(cfg.Seed)
	if cfg.Seed == 0 {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Runner{
		cfg: cfg,
		cli: newClient(cfg.BaseURL),
		rnd: rand.New(src),
		lg:  lg,
	}
}

// Run creates athletes, teams and a month of events. Athletes are spread
// round-robin across teams, each team gets two weekly trainings and a
// Saturday match.
func (r *Runner) Run(ctx context.Context) error {
	athletes, err := r.createAthletes(ctx)
	if err != nil {
		return err
	}
	teams, err := r.createTeams(ctx, athletes)
	if err != nil {
		return err
	}
	created, err := r.createEvents(ctx, teams)
	if err != nil {
		return err
	}

	r.lg.Info(ctx, "demo club loaded",
		logger.Int("athletes", len(athletes)),
		logger.Int("teams", len(teams)),
		logger.Int("events", created),
	)
	return nil
}

func (r *Runner) createAthletes(ctx context.Context) ([]model.Athlete, error) {
	out := make([]model.Athlete, 0, r.cfg.Athletes)
	for i := 0; i < r.cfg.Athletes; i++ {
		req := map[string]string{
			"firstName":   firstNames[r.rnd.Intn(len(firstNames))],
			"lastName":    lastNames[r.rnd.Intn(len(lastNames))],
			"dateOfBirth": r.randomBirthDate(),
		}
		var a model.Athlete
		if err := r.cli.postJSON(ctx, "/athletes", req, &a); err != nil {
			return nil, fmt.Errorf("create athlete %d: %w", i+1, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *Runner) createTeams(ctx context.Context, athletes []model.Athlete) ([]model.Team, error) {
	n := r.cfg.Teams
	if n > len(teamNames) {
		n = len(teamNames)
	}

	members := make([][]string, n)
	for i, a := range athletes {
		members[i%n] = append(members[i%n], a.ID)
	}

	out := make([]model.Team, 0, n)
	for i := 0; i < n; i++ {
		req := map[string]any{
			"name":       teamNames[i],
			"athleteIds": members[i],
		}
		var t model.Team
		if err := r.cli.postJSON(ctx, "/teams", req, &t); err != nil {
			return nil, fmt.Errorf("create team %q: %w", teamNames[i], err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *Runner) createEvents(ctx context.Context, teams []model.Team) (int, error) {
	created := 0
	days := calendar.DaysInMonth(r.cfg.Year, r.cfg.Month)
	for day := 1; day <= days; day++ {
		date := time.Date(r.cfg.Year, r.cfg.Month, day, 0, 0, 0, 0, time.Local)
		for _, t := range teams {
			title, at := "", ""
			switch date.Weekday() {
			case time.Tuesday, time.Thursday:
				title, at = "Allenamento "+t.Name, trainingTime
			case time.Saturday:
				title, at = "Partita "+t.Name, matchTime
			default:
				continue
			}
			req := map[string]string{
				"title":  title,
				"date":   calendar.DateKey(date),
				"time":   at,
				"teamId": t.ID,
			}
			if err := r.cli.postJSON(ctx, "/events", req, nil); err != nil {
				return created, fmt.Errorf("create event %q on %s: %w", title, calendar.DateKey(date), err)
			}
			created++
		}
	}
	return created, nil
}

func (r *Runner) randomBirthDate() string {
	year := minBirthYear + r.rnd.Intn(maxBirthYear-minBirthYear+1)
	month := time.Month(1 + r.rnd.Intn(12))
	day := 1 + r.rnd.Intn(calendar.DaysInMonth(year, month))
	return calendar.DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}
