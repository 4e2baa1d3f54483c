package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fittrackapp/fittrack/internal/model"
	"github.com/fittrackapp/fittrack/internal/repository"
)

const (
	feedDefaultLimit = 20
	feedMaxLimit     = 100
	postMaxLength    = 500
)

type CommunityService struct {
	repo repository.PostRepository
}

func NewCommunityService(repo repository.PostRepository) *CommunityService {
	return &CommunityService{repo: repo}
}

func (s *CommunityService) Post(userID, content string) (*model.Post, error) {
	content = strings.TrimSpace(content)

	if content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if len(content) > postMaxLength {
		return nil, fmt.Errorf("%w: content is too long (max %d characters)", ErrInvalidInput, postMaxLength)
	}

	post := &model.Post{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	err := s.repo.Create(post)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s *CommunityService) Feed(limit int) ([]*model.Post, error) {
	if limit <= 0 {
		limit = feedDefaultLimit
	}
	if limit > feedMaxLimit {
		limit = feedMaxLimit
	}

	return s.repo.Recent(limit)
}

func (s *CommunityService) Delete(userID, postID string) error {
	return s.repo.Delete(userID, postID)
}
