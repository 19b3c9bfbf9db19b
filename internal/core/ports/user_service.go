package ports

import (
	"context"

	"github.com/freelance-directory/api/internal/core/domain"
)

// RegisterInput carries the fields accepted on registration.
type RegisterInput struct {
	Email    string
	Password string
	Role     string
}

// UserService covers registration, login and direct user administration.
type UserService interface {
	// Register creates the user and returns it with a freshly issued token.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// Delete removes a user; a linked freelancer is removed with it.
	Delete(ctx context.Context, id string) (*domain.DeletionReport, error)
}
