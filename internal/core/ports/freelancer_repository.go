package ports

import (
	"context"

	"github.com/freelance-directory/api/internal/core/domain"
)

// FreelancerRepository persists freelancer profiles. Reads populate
// Freelancer.Owner when the owning user still exists.
type FreelancerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Freelancer, error)
	FindByUserID(ctx context.Context, userID string) (*domain.Freelancer, error)
	// List returns every freelancer sorted by name.
	List(ctx context.Context) ([]*domain.Freelancer, error)
	Create(ctx context.Context, f *domain.Freelancer) (*domain.Freelancer, error)
	// Update replaces all mutable fields of the freelancer with f.ID.
	Update(ctx context.Context, f *domain.Freelancer) (*domain.Freelancer, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
