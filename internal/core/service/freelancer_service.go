package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
)

type FreelancerService struct {
	freelancers ports.FreelancerRepository
	users       ports.UserRepository
	cascade     *CascadeDeleter
	log         zerolog.Logger
}

func NewFreelancerService(
	freelancers ports.FreelancerRepository,
	users ports.UserRepository,
	cascade *CascadeDeleter,
	log zerolog.Logger,
) *FreelancerService {
	return &FreelancerService{
		freelancers: freelancers,
		users:       users,
		cascade:     cascade,
		log:         log,
	}
}

func (s *FreelancerService) List(ctx context.Context) ([]*domain.Freelancer, error) {
	return s.freelancers.List(ctx)
}

func (s *FreelancerService) Get(ctx context.Context, id string) (*domain.Freelancer, error) {
	return s.freelancers.FindByID(ctx, id)
}

// Create inserts a profile. A non-empty owner must resolve to an existing
// user that has no other profile yet. Non-admins may only create their own.
func (s *FreelancerService) Create(ctx context.Context, actor domain.Claims, in ports.FreelancerInput) (*domain.Freelancer, error) {
	owner, err := ownerFor(actor, in.UserID)
	if err != nil {
		return nil, err
	}
	in.UserID = owner

	if err := s.checkOwner(ctx, in.UserID, ""); err != nil {
		return nil, err
	}

	created, err := s.freelancers.Create(ctx, toFreelancer("", in))
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("freelancer_id", created.ID).Str("user_id", created.UserID).Msg("freelancer created")
	return created, nil
}

// Update replaces every mutable field. Only an admin or the owner may update
// a profile, and only an admin may move it to another user.
func (s *FreelancerService) Update(ctx context.Context, actor domain.Claims, id string, in ports.FreelancerInput) (*domain.Freelancer, error) {
	current, err := s.freelancers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && !current.OwnedBy(actor.Subject) {
		return nil, domain.ErrForbidden
	}

	owner, err := ownerFor(actor, in.UserID)
	if err != nil {
		return nil, err
	}
	in.UserID = owner

	if err := s.checkOwner(ctx, in.UserID, id); err != nil {
		return nil, err
	}
	return s.freelancers.Update(ctx, toFreelancer(id, in))
}

// Delete resolves the freelancer, checks the actor may remove it, then hands
// over to the cascade deleter. Nothing is deleted when the freelancer does
// not exist or the actor is not allowed.
func (s *FreelancerService) Delete(ctx context.Context, actor domain.Claims, id string) (*domain.DeletionReport, error) {
	f, err := s.freelancers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && !f.OwnedBy(actor.Subject) {
		return nil, domain.ErrForbidden
	}
	return s.cascade.Delete(ctx, f)
}

// ownerFor resolves the owner reference actor may set. Admins may link any
// user or none; everyone else may only link themselves, and an omitted
// owner means the actor.
func ownerFor(actor domain.Claims, requested string) (string, error) {
	if actor.IsAdmin {
		return requested, nil
	}
	if requested == "" || requested == actor.Subject {
		return actor.Subject, nil
	}
	return "", domain.ErrForbidden
}

// checkOwner verifies userID resolves and is not already linked to a profile
// other than selfID.
func (s *FreelancerService) checkOwner(ctx context.Context, userID, selfID string) error {
	if userID == "" {
		return nil
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrOwnerNotFound
		}
		return fmt.Errorf("check owner: %w", err)
	}

	linked, err := s.freelancers.FindByUserID(ctx, userID)
	switch {
	case err == nil && linked.ID != selfID:
		return domain.ErrProfileExists
	case err != nil && !errors.Is(err, domain.ErrFreelancerNotFound):
		return fmt.Errorf("check owner: %w", err)
	}
	return nil
}

func toFreelancer(id string, in ports.FreelancerInput) *domain.Freelancer {
	return &domain.Freelancer{
		ID:     id,
		UserID: in.UserID,
		Name:   in.Name,
		Phone:  in.Phone,
		Skill:  in.Skill,
		Hobby:  in.Hobby,
	}
}
