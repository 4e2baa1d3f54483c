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

type ProgressService struct {
	repo     repository.ProgressRepository
	goalRepo repository.GoalRepository
	now      stats.Clock
}

func NewProgressService(repo repository.ProgressRepository, goalRepo repository.GoalRepository, now stats.Clock) *ProgressService {
	if now == nil {
		now = time.Now
	}
	return &ProgressService{
		repo:     repo,
		goalRepo: goalRepo,
		now:      now,
	}
}

// Log appends a new observation to a goal's ledger. The goal must belong to
// the user.
func (s *ProgressService) Log(userID, goalID string, value float64, date time.Time) (*model.ProgressEntry, error) {
	// Verify ownership
	_, err := s.goalRepo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateProgressValue(value); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateProgressDate(date, s.now()); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	entry := &model.ProgressEntry{
		ID:        uuid.New().String(),
		GoalID:    goalID,
		Value:     value,
		Date:      date,
		CreatedAt: s.now(),
	}

	err = s.repo.Create(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress entry: %w", err)
	}

	return entry, nil
}

// EntriesFor returns the complete ledger for a goal the user owns. A goal
// without entries yields an empty slice, never an error.
func (s *ProgressService) EntriesFor(userID, goalID string) ([]model.ProgressEntry, error) {
	// Verify ownership
	_, err := s.goalRepo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	return s.repo.ForGoal(goalID)
}

func (s *ProgressService) Update(userID, entryID string, value float64, date time.Time) (*model.ProgressEntry, error) {
	entry, err := s.owned(userID, entryID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateProgressValue(value); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateProgressDate(date, s.now()); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	entry.Value = value
	entry.Date = date

	err = s.repo.Update(entry)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *ProgressService) Delete(userID, entryID string) error {
	_, err := s.owned(userID, entryID)
	if err != nil {
		return err
	}

	return s.repo.Delete(entryID)
}

// owned resolves an entry and confirms its goal belongs to the user. Entries
// reachable through someone else's goal surface as not found.
func (s *ProgressService) owned(userID, entryID string) (*model.ProgressEntry, error) {
	entry, err := s.repo.ByID(entryID)
	if err != nil {
		return nil, err
	}

	_, err = s.goalRepo.ByID(userID, entry.GoalID)
	if err != nil {
		return nil, repository.ErrProgressEntryNotFound
	}

	return entry, nil
}
