package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/user-directory-console/internal/models"
	"github.com/user-directory-console/internal/repository"
)

// userService is the concrete implementation of UserService
type userService struct {
	repo repository.UserRepository
	log  zerolog.Logger
}

func newUserService(repo repository.UserRepository, log zerolog.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With().Str("component", "user_service").Logger(),
	}
}

// Create assigns an id and stores the user
func (s *userService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = uuid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User created")
	return user, nil
}

// List returns all users
func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get returns a user by id, or nil when no such user exists
func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return user, nil
}

// Update replaces the mutable attributes of the user stored under id and
// returns the updated record, or nil when no such user exists
func (s *userService) Update(ctx context.Context, id string, user *models.User) (*models.User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	if existing == nil {
		return nil, nil
	}

	existing.Username = user.Username
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Email = user.Email
	existing.PhoneNumber = user.PhoneNumber
	existing.UpdatedAt = time.Now()

	matched, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	if !matched {
		// Row disappeared between the read and the write.
		return nil, nil
	}

	s.log.Info().Str("user_id", id).Str("username", existing.Username).Msg("User updated")
	return existing, nil
}

// Delete removes the user stored under id; reports whether it existed
func (s *userService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	if deleted {
		s.log.Info().Str("user_id", id).Msg("User deleted")
	}
	return deleted, nil
}

// Count returns the total number of users
func (s *userService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
