package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/user-directory-console/internal/models"
	"github.com/user-directory-console/internal/repository"
)

// UserService defines the interface for user directory operations
type UserService interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Services holds all service interfaces
type Services struct {
	User UserService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		User: newUserService(repos.User, log),
	}
}
