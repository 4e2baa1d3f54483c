package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fittrackapp/fittrack/internal/model"
	"github.com/fittrackapp/fittrack/internal/repository"
	"github.com/fittrackapp/fittrack/internal/validation"
)

type UserService struct {
	userRepository repository.UserRepository
	authService    *AuthService
}

func NewUserService(userRepository repository.UserRepository, authService *AuthService) *UserService {
	return &UserService{
		userRepository: userRepository,
		authService:    authService,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

// Update changes the profile fields from the settings page. An empty
// newPassword leaves the current password in place.
func (s *UserService) Update(userID, name, email, newPassword string) (*model.User, error) {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validation.ValidateName(name); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	if newPassword != "" {
		if err := validation.ValidatePassword(newPassword); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
		}

		hash, err := s.authService.HashPassword(newPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	user.Name = name
	user.Email = email
	user.UpdatedAt = time.Now()

	err = s.userRepository.Update(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Delete removes the account; goals, progress entries, and posts cascade at
// the database level.
func (s *UserService) Delete(userID string) error {
	return s.userRepository.Delete(userID)
}
