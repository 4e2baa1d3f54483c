package handler

import (
	"net/http"

	"github.com/fittrackapp/fittrack/internal/ctxkeys"
	"github.com/fittrackapp/fittrack/internal/model"
	"github.com/fittrackapp/fittrack/internal/service"
	"github.com/fittrackapp/fittrack/internal/stats"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// goalResponse is a goal with its derived metrics attached. Metrics are
// recomputed on every request; nothing here is read from storage.
type goalResponse struct {
	*model.Goal
	Metrics stats.GoalMetrics `json:"metrics"`
}

func (h *GoalHandler) toResponse(goal *model.Goal) goalResponse {
	return goalResponse{
		Goal:    goal,
		Metrics: h.goalService.Metrics(goal),
	}
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = "recent"
	}

	goals, err := h.goalService.Goals(user.ID, sortBy)
	if err != nil {
		respondServiceError(w, err, "failed to load goals", "user_id", user.ID)
		return
	}

	resp := make([]goalResponse, 0, len(goals))
	for _, goal := range goals {
		resp = append(resp, h.toResponse(goal))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if err != nil {
		respondServiceError(w, err, "failed to load goal", "user_id", user.ID, "goal_id", goalID)
		return
	}

	respondJSON(w, http.StatusOK, h.toResponse(goal))
}

type goalRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Target      float64 `json:"target"`
	Deadline    string  `json:"deadline"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid deadline format")
		return
	}

	goal, err := h.goalService.Create(user.ID, req.Title, req.Description, req.Target, deadline)
	if err != nil {
		respondServiceError(w, err, "failed to create goal", "user_id", user.ID)
		return
	}

	respondJSON(w, http.StatusCreated, h.toResponse(goal))
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid deadline format")
		return
	}

	goal, err := h.goalService.Update(user.ID, goalID, req.Title, req.Description, req.Target, deadline)
	if err != nil {
		respondServiceError(w, err, "failed to update goal", "user_id", user.ID, "goal_id", goalID)
		return
	}

	respondJSON(w, http.StatusOK, h.toResponse(goal))
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(user.ID, goalID)
	if err != nil {
		respondServiceError(w, err, "failed to delete goal", "user_id", user.ID, "goal_id", goalID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
