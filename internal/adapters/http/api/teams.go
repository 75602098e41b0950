package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/appello/internal/domain/model"
)

// TeamDependencies defines the service surface for team operations.
type TeamDependencies interface {
	Teams(ctx context.Context) []model.Team
	AddTeam(ctx context.Context, t model.Team) model.Team
	UpdateTeam(ctx context.Context, t model.Team)
	DeleteTeam(ctx context.Context, id string)
}

// TeamsHandler handles team requests.
type TeamsHandler struct {
	deps TeamDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// teamRequest mirrors the team form; the name is required, the roster may
// be empty. Member ids are not checked against the athlete collection here:
// duplicates are collapsed by the service and dangling ids are tolerated by
// every read path.
type teamRequest struct {
	Name       string   `json:"name"`
	AthleteIDs []string `json:"athleteIds"`
}

func (t teamRequest) validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("missing name")
	}
	return nil
}

// HandleCollection handles GET /teams and POST /teams.
func (h *TeamsHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	const op = "api.teams"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Teams(r.Context()))
	case http.MethodPost:
		var req teamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		created := h.deps.AddTeam(r.Context(), model.Team{
			Name:       req.Name,
			AthleteIDs: req.AthleteIDs,
		})
		writeJSON(w, http.StatusCreated, created)
	default:
		http.NotFound(w, r)
	}
}

// HandleItem handles PUT /teams/{id} and DELETE /teams/{id}.
func (h *TeamsHandler) HandleItem(w http.ResponseWriter, r *http.Request) {
	const op = "api.teams_item"
	id := strings.TrimPrefix(r.URL.Path, "/teams/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		var req teamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := req.validate(); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		updated := model.Team{
			ID:         id,
			Name:       req.Name,
			AthleteIDs: model.DedupeIDs(req.AthleteIDs),
		}
		h.deps.UpdateTeam(r.Context(), updated)
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		h.deps.DeleteTeam(r.Context(), id)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}
