package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/fittrackapp/fittrack/internal/repository"
	"github.com/fittrackapp/fittrack/internal/service"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// respondServiceError maps the common service error categories onto HTTP
// statuses: validation failures are 422, missing resources 404, everything
// else a logged 500.
func respondServiceError(w http.ResponseWriter, err error, logMsg string, logArgs ...any) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repository.ErrGoalNotFound),
		errors.Is(err, repository.ErrProgressEntryNotFound),
		errors.Is(err, repository.ErrPostNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error(logMsg, append([]any{"error", err}, logArgs...)...)
		respondError(w, http.StatusInternalServerError, logMsg)
	}
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", s)
}
