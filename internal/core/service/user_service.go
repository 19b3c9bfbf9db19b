package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
	"github.com/freelance-directory/api/internal/pkg/requestid"
)

// UserService implements registration, login and user administration.
type UserService struct {
	users       ports.UserRepository
	freelancers ports.FreelancerRepository
	tokens      ports.TokenService
	cascade     *CascadeDeleter
	events      ports.EventSink
	log         zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	freelancers ports.FreelancerRepository,
	tokens ports.TokenService,
	cascade *CascadeDeleter,
	events ports.EventSink,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:       users,
		freelancers: freelancers,
		tokens:      tokens,
		cascade:     cascade,
		events:      events,
		log:         log,
	}
}

func (s *UserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	if in.Email == "" || in.Password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, "", domain.ErrUserExists
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.Claims())
	if err != nil {
		return nil, "", fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	s.emit(ctx, ports.EventUserRegistered, created.ID)

	return created, token, nil
}

// Login does not distinguish an unknown email from a wrong password.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Claims())
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return token, user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Delete removes the user. When a freelancer profile references the user the
// cascade deleter removes both, so no profile is left pointing at a deleted
// identity.
func (s *UserService) Delete(ctx context.Context, id string) (*domain.DeletionReport, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	profile, err := s.freelancers.FindByUserID(ctx, id)
	switch {
	case err == nil:
		return s.cascade.Delete(ctx, profile)
	case !errors.Is(err, domain.ErrFreelancerNotFound):
		return nil, fmt.Errorf("delete user: find profile: %w", err)
	}

	if _, err := s.users.DeleteByID(ctx, id); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	s.emit(ctx, ports.EventUserDeleted, id)

	return &domain.DeletionReport{UserID: id}, nil
}

func (s *UserService) emit(ctx context.Context, eventType, userID string) {
	if s.events == nil {
		return
	}
	s.events.Enqueue(ports.DirectoryEvent{
		Type:       eventType,
		SubjectID:  userID,
		UserID:     userID,
		RequestID:  requestid.From(ctx),
		OccurredAt: time.Now().UTC(),
	})
}
