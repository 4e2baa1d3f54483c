package handler

import (
	"net/http"
	"strconv"

	"github.com/fittrackapp/fittrack/internal/ctxkeys"
	"github.com/fittrackapp/fittrack/internal/service"
)

type CommunityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
	}
}

func (h *CommunityHandler) Feed(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	posts, err := h.communityService.Feed(limit)
	if err != nil {
		respondServiceError(w, err, "failed to load feed")
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

type postRequest struct {
	Content string `json:"content"`
}

func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.communityService.Post(user.ID, req.Content)
	if err != nil {
		respondServiceError(w, err, "failed to create post", "user_id", user.ID)
		return
	}

	post.AuthorName = user.Name
	respondJSON(w, http.StatusCreated, post)
}

func (h *CommunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	postID := r.PathValue("id")

	err := h.communityService.Delete(user.ID, postID)
	if err != nil {
		respondServiceError(w, err, "failed to delete post", "user_id", user.ID, "post_id", postID)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
