package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
)

// SkillService manages the skill catalog. Skills have no integrity coupling
// with users or freelancers.
type SkillService struct {
	repo ports.SkillRepository
	log  zerolog.Logger
}

func NewSkillService(repo ports.SkillRepository, log zerolog.Logger) *SkillService {
	return &SkillService{repo: repo, log: log}
}

func (s *SkillService) List(ctx context.Context) ([]*domain.Skill, error) {
	return s.repo.List(ctx)
}

func (s *SkillService) Get(ctx context.Context, id string) (*domain.Skill, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SkillService) Create(ctx context.Context, name string) (*domain.Skill, error) {
	skill, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("skill_id", skill.ID).Str("name", skill.Name).Msg("skill created")
	return skill, nil
}

func (s *SkillService) Rename(ctx context.Context, id, name string) (*domain.Skill, error) {
	return s.repo.Rename(ctx, id, name)
}

func (s *SkillService) Delete(ctx context.Context, id string) (*domain.Skill, error) {
	skill, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("skill_id", id).Msg("skill deleted")
	return skill, nil
}
