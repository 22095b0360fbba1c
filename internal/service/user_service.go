package service

import (
	"context"
	"strings"

	"hobbyverse/internal/models"
	"hobbyverse/internal/repository"
)

// UserService implements profile, stats, hobby, and discovery operations.
type UserService struct {
	users   repository.UserRepository
	hobbies repository.HobbyRepository
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository, hobbies repository.HobbyRepository) *UserService {
	return &UserService{users: users, hobbies: hobbies}
}

// GetUser returns the full user row for the given id.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// PublicProfile returns the restricted public view of a user.
func (s *UserService) PublicProfile(ctx context.Context, id uint) (*models.UserSummary, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := user.Summary()
	return &summary, nil
}

// UpdateProfile updates the editable profile fields. Blank names are
// rejected; the profile picture may be cleared.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, name, profilePicture string) (*models.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, models.NewValidationError("Name is required.")
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.ProfilePicture = profilePicture
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Stats returns the profile counters, freshly derived.
func (s *UserService) Stats(ctx context.Context, id uint) (*models.UserStats, error) {
	return s.users.Stats(ctx, id)
}

// ListHobbies returns the user's hobby names.
func (s *UserService) ListHobbies(ctx context.Context, userID uint) ([]string, error) {
	return s.hobbies.ListNamesForUser(ctx, userID)
}

// AddHobby tags the user with a hobby, creating the hobby on first use.
// Adding a hobby the user already has leaves a single association.
// Returns the updated name list.
func (s *UserService) AddHobby(ctx context.Context, userID uint, name string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, models.NewValidationError("Hobby is required.")
	}

	hobby, err := s.hobbies.Upsert(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.hobbies.AddToUser(ctx, userID, hobby.ID); err != nil {
		return nil, err
	}
	return s.hobbies.ListNamesForUser(ctx, userID)
}

// RemoveHobby deletes the user's association with the hobby. The hobby row
// itself stays so other users' tags survive. A name that exists nowhere in
// the system is a 404; a name the user simply never added is not.
func (s *UserService) RemoveHobby(ctx context.Context, userID uint, name string) ([]string, error) {
	hobby, err := s.hobbies.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if hobby == nil {
		return nil, models.NewNotFoundError("Hobby not found.")
	}
	if err := s.hobbies.RemoveFromUser(ctx, userID, hobby.ID); err != nil {
		return nil, err
	}
	return s.hobbies.ListNamesForUser(ctx, userID)
}

// FindByHobby returns other users tagged with the exact hobby name.
func (s *UserService) FindByHobby(ctx context.Context, hobby string, callerID uint) ([]models.UserSummary, error) {
	if strings.TrimSpace(hobby) == "" {
		return nil, models.NewValidationError("Hobby is required.")
	}
	return s.users.FindByHobby(ctx, hobby, callerID)
}
