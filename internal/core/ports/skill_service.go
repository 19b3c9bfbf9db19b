package ports

import (
	"context"

	"github.com/freelance-directory/api/internal/core/domain"
)

type SkillService interface {
	List(ctx context.Context) ([]*domain.Skill, error)
	Get(ctx context.Context, id string) (*domain.Skill, error)
	Create(ctx context.Context, name string) (*domain.Skill, error)
	Rename(ctx context.Context, id, name string) (*domain.Skill, error)
	Delete(ctx context.Context, id string) (*domain.Skill, error)
}
