package handler

import (
	"errors"
	"net/http"

	"github.com/fittrackapp/fittrack/internal/ctxkeys"
	"github.com/fittrackapp/fittrack/internal/service"
)

type AccountHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewAccountHandler(userService *service.UserService, authService *service.AuthService) *AccountHandler {
	return &AccountHandler{
		userService: userService,
		authService: authService,
	}
}

func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	respondJSON(w, http.StatusOK, user)
}

type updateAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // optional; empty keeps the current one
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updateAccountRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.userService.Update(user.ID, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			respondError(w, http.StatusConflict, "email already exists")
			return
		}
		respondServiceError(w, err, "failed to update account", "user_id", user.ID)
		return
	}

	updated.PasswordHash = ""
	respondJSON(w, http.StatusOK, updated)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.userService.Delete(user.ID)
	if err != nil {
		respondServiceError(w, err, "failed to delete account", "user_id", user.ID)
		return
	}

	h.authService.ClearJWTCookie(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
