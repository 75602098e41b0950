package api

import (
	"context"
	"net/http"
)

// WelcomeDependencies defines the service surface for the onboarding flag.
type WelcomeDependencies interface {
	WelcomeSeen(ctx context.Context) bool
	MarkWelcomeSeen(ctx context.Context)
}

// WelcomeHandler exposes the hasSeenWelcomePopup flag. The flag is a lone
// boolean in the same durable store, unrelated to the entity collections.
type WelcomeHandler struct {
	deps WelcomeDependencies
}

// NewWelcomeHandler creates a new welcome handler.
func NewWelcomeHandler(deps WelcomeDependencies) *WelcomeHandler {
	return &WelcomeHandler{deps: deps}
}

type welcomeResponse struct {
	Seen bool `json:"seen"`
}

// HandleWelcome handles GET /welcome and PUT /welcome.
func (h *WelcomeHandler) HandleWelcome(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, welcomeResponse{Seen: h.deps.WelcomeSeen(r.Context())})
	case http.MethodPut:
		h.deps.MarkWelcomeSeen(r.Context())
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}
