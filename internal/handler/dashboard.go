package handler

import (
	"net/http"

	"github.com/fittrackapp/fittrack/internal/ctxkeys"
	"github.com/fittrackapp/fittrack/internal/service"
)

type DashboardHandler struct {
	goalService *service.GoalService
}

func NewDashboardHandler(goalService *service.GoalService) *DashboardHandler {
	return &DashboardHandler{
		goalService: goalService,
	}
}

func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	summary, err := h.goalService.Summary(user.ID)
	if err != nil {
		respondServiceError(w, err, "failed to load dashboard", "user_id", user.ID)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
