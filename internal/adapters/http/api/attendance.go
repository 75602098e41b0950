package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/appello/internal/domain/model"
)

// AttendanceDependencies defines the service surface for attendance
// operations.
type AttendanceDependencies interface {
	Attendance(ctx context.Context, eventID, athleteID string) model.AttendanceRecord
	UpsertAttendance(ctx context.Context, rec model.AttendanceRecord)
	MarkAllPresent(ctx context.Context, eventID string, athleteIDs []string) int
	Event(ctx context.Context, id string) (model.Event, bool)
	Team(ctx context.Context, id string) (model.Team, bool)
}

// AttendanceHandler handles attendance requests.
type AttendanceHandler struct {
	deps AttendanceDependencies
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(deps AttendanceDependencies) *AttendanceHandler {
	return &AttendanceHandler{deps: deps}
}

// attendanceRequest mirrors an attendance record write.
type attendanceRequest struct {
	EventID   string `json:"eventId"`
	AthleteID string `json:"athleteId"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}

func (a attendanceRequest) validate() error {
	switch {
	case strings.TrimSpace(a.EventID) == "":
		return errors.New("missing eventId")
	case strings.TrimSpace(a.AthleteID) == "":
		return errors.New("missing athleteId")
	}
	if !model.AttendanceStatus(a.Status).Valid() {
		return errors.New("invalid status; must be Presente or Assente")
	}
	return nil
}

// HandleAttendance handles GET /attendance?event=&athlete= and
// PUT /attendance. A GET for a pair with no stored record returns the
// synthesized Presente default and stores nothing.
func (h *AttendanceHandler) HandleAttendance(w http.ResponseWriter, r *http.Request) {
	const op = "api.attendance"
	switch r.Method {
	case http.MethodGet:
		eventID := r.URL.Query().Get("event")
		athleteID := r.URL.Query().Get("athlete")
		if eventID == "" || athleteID == "" {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		writeJSON(w, http.StatusOK, h.deps.Attendance(r.Context(), eventID, athleteID))
	case http.MethodPut:
		var req attendanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		rec := model.AttendanceRecord{
			EventID:   req.EventID,
			AthleteID: req.AthleteID,
			Status:    model.AttendanceStatus(req.Status),
			Notes:     req.Notes,
		}
		h.deps.UpsertAttendance(r.Context(), rec)
		writeJSON(w, http.StatusOK, rec)
	default:
		http.NotFound(w, r)
	}
}

type markAllPresentResponse struct {
	Updated int `json:"updated"`
}

// HandleMarkAllPresent handles POST /attendance/present?event=ID: every
// athlete on the event's team roster whose resolved status is not Presente
// gets a Presente record with empty notes. An event or team that no longer
// resolves yields 404 rather than a failure.
func (h *AttendanceHandler) HandleMarkAllPresent(w http.ResponseWriter, r *http.Request) {
	const op = "api.attendance_present"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	eventID := r.URL.Query().Get("event")
	if eventID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	event, ok := h.deps.Event(r.Context(), eventID)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
		return
	}
	team, ok := h.deps.Team(r.Context(), event.TeamID)
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
		return
	}
	updated := h.deps.MarkAllPresent(r.Context(), event.ID, team.AthleteIDs)
	writeJSON(w, http.StatusOK, markAllPresentResponse{Updated: updated})
}
