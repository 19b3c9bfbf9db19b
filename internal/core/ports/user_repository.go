package ports

import (
	"context"

	"github.com/freelance-directory/api/internal/core/domain"
)

// UserRepository is the credential store. Lookups that match nothing return
// domain.ErrUserNotFound; DeleteByID reports a miss as (false, nil).
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
