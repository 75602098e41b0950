package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/okian/appello/internal/domain/calendar"
	"github.com/okian/appello/internal/domain/model"
)

// CalendarDependencies defines the service surface for the month view.
type CalendarDependencies interface {
	Events(ctx context.Context) []model.Event
}

// CalendarHandler renders month grids with per-day event counts.
type CalendarHandler struct {
	deps CalendarDependencies
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(deps CalendarDependencies) *CalendarHandler {
	return &CalendarHandler{deps: deps}
}

// calendarCell is one grid position: a leading blank (day 0, no date) or a
// dated cell with its event count.
type calendarCell struct {
	Day    int    `json:"day"`
	Date   string `json:"date,omitempty"`
	Events int    `json:"events,omitempty"`
}

type calendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []calendarCell `json:"cells"`
}

// HandleMonth handles GET /calendar?year=YYYY&month=M. Both parameters
// default to the current local month.
func (h *CalendarHandler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	const op = "api.calendar"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		year = n
	}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		month = n
	}

	events := h.deps.Events(r.Context())
	dates := make([]string, len(events))
	for i, e := range events {
		dates[i] = e.Date
	}
	buckets := calendar.BucketDates(dates)

	grid := calendar.MonthGrid(year, time.Month(month))
	cells := make([]calendarCell, len(grid))
	for i, c := range grid {
		cells[i] = calendarCell{Day: c.Day, Date: c.Date}
		if !c.Blank() {
			cells[i].Events = buckets[c.Date]
		}
	}
	writeJSON(w, http.StatusOK, calendarResponse{Year: year, Month: month, Cells: cells})
}
