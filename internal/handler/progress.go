package handler

import (
	"net/http"

	"github.com/fittrackapp/fittrack/internal/ctxkeys"
	"github.com/fittrackapp/fittrack/internal/service"
)

type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

func (h *ProgressHandler) ListForGoal(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	entries, err := h.progressService.EntriesFor(user.ID, goalID)
	if err != nil {
		respondServiceError(w, err, "failed to load progress entries", "user_id", user.ID, "goal_id", goalID)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

type progressRequest struct {
	Value float64 `json:"value"`
	Date  string  `json:"date"`
}

func (h *ProgressHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req progressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid date format")
		return
	}

	entry, err := h.progressService.Log(user.ID, goalID, req.Value, date)
	if err != nil {
		respondServiceError(w, err, "failed to log progress", "user_id", user.ID, "goal_id", goalID)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

func (h *ProgressHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	entryID := r.PathValue("id")

	var req progressRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "invalid date format")
		return
	}

	entry, err := h.progressService.Update(user.ID, entryID, req.Value, date)
	if err != nil {
		respondServiceError(w, err, "failed to update progress entry", "user_id", user.ID, "entry_id", entryID)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

func (h *ProgressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	entryID := r.PathValue("id")

	err := h.progressService.Delete(user.ID, entryID)
	if err != nil {
		respondServiceError(w, err, "failed to delete progress entry", "user_id", user.ID, "entry_id", entryID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
