package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/appello/internal/domain/calendar"
	"github.com/okian/appello/internal/domain/model"
)

// AthleteDependencies defines the service surface for athlete operations.
type AthleteDependencies interface {
	Athletes(ctx context.Context) []model.Athlete
	AddAthlete(ctx context.Context, a model.Athlete) model.Athlete
	UpdateAthlete(ctx context.Context, a model.Athlete)
	DeleteAthlete(ctx context.Context, id string)
}

// AthletesHandler handles athlete requests.
type AthletesHandler struct {
	deps AthleteDependencies
}

// NewAthletesHandler creates a new athletes handler.
func NewAthletesHandler(deps AthleteDependencies) *AthletesHandler {
	return &AthletesHandler{deps: deps}
}

// athleteRequest mirrors the athlete form fields; all three are required.
type athleteRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
}

func (a athleteRequest) validate() error {
	switch {
	case strings.TrimSpace(a.FirstName) == "":
		return errors.New("missing firstName")
	case strings.TrimSpace(a.LastName) == "":
		return errors.New("missing lastName")
	case strings.TrimSpace(a.DateOfBirth) == "":
		return errors.New("missing dateOfBirth")
	}
	if _, err := calendar.ParseDate(a.DateOfBirth); err != nil {
		return errors.New("invalid dateOfBirth; must be YYYY-MM-DD")
	}
	return nil
}

// HandleCollection handles GET /athletes and POST /athletes.
func (h *AthletesHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	const op = "api.athletes"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Athletes(r.Context()))
	case http.MethodPost:
		var req athleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		created := h.deps.AddAthlete(r.Context(), model.Athlete{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: req.DateOfBirth,
		})
		writeJSON(w, http.StatusCreated, created)
	default:
		http.NotFound(w, r)
	}
}

// HandleItem handles PUT /athletes/{id} and DELETE /athletes/{id}. Updating
// an unknown id is a silent no-op, mirroring the service semantics.
func (h *AthletesHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	const op = "api.athletes_item"
	id := strings.TrimPrefix(r.URL.Path, "/athletes/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req athleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		updated := model.Athlete{
			ID:          id,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: req.DateOfBirth,
		}
		h.deps.UpdateAthlete(r.Context(), updated)
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		h.deps.DeleteAthlete(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}
