package ports

import (
	"context"

	"github.com/freelance-directory/api/internal/core/domain"
)

// FreelancerInput holds every mutable freelancer field.
type FreelancerInput struct {
	UserID string
	Name   string
	Phone  string
	Skill  string
	Hobby  string
}

type FreelancerService interface {
	List(ctx context.Context) ([]*domain.Freelancer, error)
	Get(ctx context.Context, id string) (*domain.Freelancer, error)
	// Create and Update let non-admins touch only their own profile; only an
	// admin may set the owner to someone else.
	Create(ctx context.Context, actor domain.Claims, in FreelancerInput) (*domain.Freelancer, error)
	Update(ctx context.Context, actor domain.Claims, id string, in FreelancerInput) (*domain.Freelancer, error)
	// Delete removes the freelancer together with its owning user. Only an
	// admin or the owner may do so.
	Delete(ctx context.Context, actor domain.Claims, id string) (*domain.DeletionReport, error)
}
