package ports

import (
	"context"

	"github.com/freelance-directory/api/internal/core/domain"
)

type SkillRepository interface {
	List(ctx context.Context) ([]*domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	Create(ctx context.Context, name string) (*domain.Skill, error)
	Rename(ctx context.Context, id, name string) (*domain.Skill, error)
	// DeleteByID removes the skill and returns it as it was stored.
	DeleteByID(ctx context.Context, id string) (*domain.Skill, error)
}
