// Package api declares HTTP contracts and route registration helpers. The
// handlers are the view/export collaborator of the roster core: they issue
// mutation requests to the service and render its snapshots, degrading
// gracefully whenever a stored reference no longer resolves.
package api

import (
	"encoding/json"
	"net/http"
)

// Dependencies bundles the service surface required by all handlers.
type Dependencies interface {
	AthleteDependencies
	TeamDependencies
	EventDependencies
	CalendarDependencies
	AttendanceDependencies
	ExportDependencies
	WelcomeDependencies
}

// Server wires HTTP routes for the roster API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	athletesHandler   *AthletesHandler
	teamsHandler      *TeamsHandler
	eventsHandler     *EventsHandler
	calendarHandler   *CalendarHandler
	attendanceHandler *AttendanceHandler
	exportHandler     *ExportHandler
	welcomeHandler    *WelcomeHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		athletesHandler:   NewAthletesHandler(deps),
		teamsHandler:      NewTeamsHandler(deps),
		eventsHandler:     NewEventsHandler(deps),
		calendarHandler:   NewCalendarHandler(deps),
		attendanceHandler: NewAttendanceHandler(deps),
		exportHandler:     NewExportHandler(deps),
		welcomeHandler:    NewWelcomeHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/athletes", MetricsMiddleware(s.athletesHandler.HandleCollection, "athletes"))
	mux.HandleFunc("/athletes/", MetricsMiddleware(s.athletesHandler.HandleItem, "athletes"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleCollection, "teams"))
	mux.HandleFunc("/teams/", MetricsMiddleware(s.teamsHandler.HandleItem, "teams"))
	mux.HandleFunc("/events", MetricsMiddleware(s.eventsHandler.HandleCollection, "events"))
	mux.HandleFunc("/events/", MetricsMiddleware(s.eventsHandler.HandleItem, "events"))
	mux.HandleFunc("/calendar", MetricsMiddleware(s.calendarHandler.HandleMonth, "calendar"))
	mux.HandleFunc("/attendance", MetricsMiddleware(s.attendanceHandler.HandleAttendance, "attendance"))
	mux.HandleFunc("/attendance/present", MetricsMiddleware(s.attendanceHandler.HandleMarkAllPresent, "attendance_present"))
	mux.HandleFunc("/export/", MetricsMiddleware(s.exportHandler.HandleExport, "export"))
	mux.HandleFunc("/welcome", MetricsMiddleware(s.welcomeHandler.HandleWelcome, "welcome"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
