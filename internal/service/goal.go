package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fittrackapp/fittrack/internal/model"
	"github.com/fittrackapp/fittrack/internal/repository"
	"github.com/fittrackapp/fittrack/internal/stats"
	"github.com/fittrackapp/fittrack/internal/validation"
)

type GoalService struct {
	repo         repository.GoalRepository
	progressRepo repository.ProgressRepository
	now          stats.Clock
}

func NewGoalService(repo repository.GoalRepository, progressRepo repository.ProgressRepository, now stats.Clock) *GoalService {
	if now == nil {
		now = time.Now
	}
	return &GoalService{
		repo:         repo,
		progressRepo: progressRepo,
		now:          now,
	}
}

func (s *GoalService) validate(title, description string, target float64, deadline time.Time) error {
	if err := validation.ValidateGoalTitle(title); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateGoalDescription(description); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateGoalTarget(target); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateGoalDeadline(deadline, s.now()); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return nil
}

func (s *GoalService) Create(userID, title, description string, target float64, deadline time.Time) (*model.Goal, error) {
	err := s.validate(title, description, target, deadline)
	if err != nil {
		return nil, err
	}

	now := s.now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Target:      target,
		Deadline:    deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
		Progress:    []model.ProgressEntry{},
	}

	err = s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

// ByID loads a goal with its full progress ledger attached.
func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	entries, err := s.progressRepo.ForGoal(goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress entries: %w", err)
	}
	goal.Progress = entries

	return goal, nil
}

// Goals loads all of a user's goals with their ledgers attached in a single
// extra round trip.
func (s *GoalService) Goals(userID, sortBy string) ([]*model.Goal, error) {
	goals, err := s.repo.Goals(userID, sortBy)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(goals))
	for _, goal := range goals {
		ids = append(ids, goal.ID)
	}

	byGoal, err := s.progressRepo.ForGoals(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress entries: %w", err)
	}

	for _, goal := range goals {
		entries, ok := byGoal[goal.ID]
		if !ok {
			entries = []model.ProgressEntry{}
		}
		goal.Progress = entries
	}

	return goals, nil
}

func (s *GoalService) Update(userID, goalID, title, description string, target float64, deadline time.Time) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	err = s.validate(title, description, target, deadline)
	if err != nil {
		return nil, err
	}

	goal.Title = title
	goal.Description = description
	goal.Target = target
	goal.Deadline = deadline
	goal.UpdatedAt = s.now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return s.ByID(userID, goalID)
}

func (s *GoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}

// Metrics derives the read-only view of a goal at the current time.
func (s *GoalService) Metrics(goal *model.Goal) stats.GoalMetrics {
	return stats.Metrics(goal, s.now())
}

// Summary rolls the user's whole portfolio up for the dashboard.
func (s *GoalService) Summary(userID string) (stats.Summary, error) {
	goals, err := s.Goals(userID, repository.GoalSortRecent)
	if err != nil {
		return stats.Summary{}, err
	}

	return stats.Summarize(goals), nil
}
