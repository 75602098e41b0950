package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/okian/appello/internal/domain/calendar"
	"github.com/okian/appello/internal/domain/model"
)

// Wire format for event times.
const timeFormat = "15:04"

// EventDependencies defines the service surface for event operations.
type EventDependencies interface {
	Events(ctx context.Context) []model.Event
	EventsOn(ctx context.Context, date string) []model.Event
	AddEvent(ctx context.Context, e model.Event) model.Event
	UpdateEvent(ctx context.Context, e model.Event)
}

// EventsHandler handles event requests. Events cannot be deleted; only
// creation and in-place updates are exposed.
type EventsHandler struct {
	deps EventDependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps EventDependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// eventRequest mirrors the event form. A missing team selection is rejected
// here, before any mutation is attempted.
type eventRequest struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	TeamID string `json:"teamId"`
}

func (e eventRequest) validate() error {
	switch {
	case strings.TrimSpace(e.Title) == "":
		return errors.New("missing title")
	case strings.TrimSpace(e.Date) == "":
		return errors.New("missing date")
	case strings.TrimSpace(e.Time) == "":
		return errors.New("missing time")
	case strings.TrimSpace(e.TeamID) == "":
		return errors.New("missing teamId")
	}
	if _, err := calendar.ParseDate(e.Date); err != nil {
		return errors.New("invalid date; must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeFormat, e.Time); err != nil {
		return errors.New("invalid time; must be HH:mm")
	}
	return nil
}

// HandleCollection handles GET /events[?date=YYYY-MM-DD] and POST /events.
func (h *EventsHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	const op = "api.events"
	switch r.Method {
	case http.MethodGet:
		date := r.URL.Query().Get("date")
		if date == "" {
			writeJSON(w, http.StatusOK, h.deps.Events(r.Context()))
			return
		}
		if _, err := calendar.ParseDate(date); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		events := h.deps.EventsOn(r.Context(), date)
		if events == nil {
			events = []model.Event{}
		}
		writeJSON(w, http.StatusOK, events)
	case http.MethodPost:
		var req eventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		created := h.deps.AddEvent(r.Context(), model.Event{
			Title:  req.Title,
			Date:   req.Date,
			Time:   req.Time,
			TeamID: req.TeamID,
		})
		writeJSON(w, http.StatusCreated, created)
	default:
		http.NotFound(w, r)
	}
}

// HandleItem handles PUT /events/{id}.
func (h *EventsHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	const op = "api.events_item"
	id := strings.TrimPrefix(r.URL.Path, "/events/")
	if id == "" || strings.Contains(id, "/") || r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	updated := model.Event{
		ID:     id,
		Title:  req.Title,
		Date:   req.Date,
		Time:   req.Time,
		TeamID: req.TeamID,
	}
	h.deps.UpdateEvent(r.Context(), updated)
	writeJSON(w, http.StatusOK, updated)
}
