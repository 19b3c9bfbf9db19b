package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	getFn      func(ctx context.Context, id string) (*domain.User, error)
	deleteFn   func(ctx context.Context, id string) (*domain.DeletionReport, error)
}

func (s *stubUserService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	return s.registerFn(ctx, in)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) Delete(ctx context.Context, id string) (*domain.DeletionReport, error) {
	return s.deleteFn(ctx, id)
}

type stubFreelancerService struct {
	listFn   func(ctx context.Context) ([]*domain.Freelancer, error)
	getFn    func(ctx context.Context, id string) (*domain.Freelancer, error)
	createFn func(ctx context.Context, actor domain.Claims, in ports.FreelancerInput) (*domain.Freelancer, error)
	updateFn func(ctx context.Context, actor domain.Claims, id string, in ports.FreelancerInput) (*domain.Freelancer, error)
	deleteFn func(ctx context.Context, actor domain.Claims, id string) (*domain.DeletionReport, error)
}

func (s *stubFreelancerService) List(ctx context.Context) ([]*domain.Freelancer, error) {
	return s.listFn(ctx)
}

func (s *stubFreelancerService) Get(ctx context.Context, id string) (*domain.Freelancer, error) {
	return s.getFn(ctx, id)
}

func (s *stubFreelancerService) Create(ctx context.Context, actor domain.Claims, in ports.FreelancerInput) (*domain.Freelancer, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubFreelancerService) Update(ctx context.Context, actor domain.Claims, id string, in ports.FreelancerInput) (*domain.Freelancer, error) {
	return s.updateFn(ctx, actor, id, in)
}

func (s *stubFreelancerService) Delete(ctx context.Context, actor domain.Claims, id string) (*domain.DeletionReport, error) {
	return s.deleteFn(ctx, actor, id)
}

// newJSONContext builds an echo context for a JSON request with the
// validator installed, as the router does.
func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
