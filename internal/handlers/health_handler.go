package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teacherhub/course-service/internal/state"
	"go.uber.org/zap"
)

// HealthHandler handles the health-check endpoint
type HealthHandler struct {
	BaseHandler
	state *state.AppState
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(appState *state.AppState, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		state:       appState,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers the health handler route
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Check)
}

// Check handles GET /health
// @Summary Health check
// @Description Report that the service is running and how often it has been visited
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Greeting with the visit count"
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	count := h.state.RecordVisit()
	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("%s %d times", h.state.Greeting, count),
	})
}
