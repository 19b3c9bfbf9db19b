package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelance-directory/api/internal/api/metrics"
	"github.com/freelance-directory/api/internal/api/middleware"
	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
)

// UserHandler serves registration, the current-user view and admin deletion.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /api/users. The session token is returned in the
// x-auth-token header so the client is signed in right away.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, token, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	metrics.TokensIssuedTotal.WithLabelValues("register").Inc()

	c.Response().Header().Set(middleware.HeaderAuthToken, token)
	return c.JSON(http.StatusCreated, registerResponse{
		ID:      user.ID,
		Role:    user.Role,
		IsAdmin: user.IsAdmin,
	})
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c echo.Context) error {
	actor, err := actorClaims(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), actor.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /api/users/:id. A linked freelancer profile is
// removed in the same operation.
func (h *UserHandler) Delete(c echo.Context) error {
	start := time.Now()
	report, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	observeCascade(report, start)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deletionResponse{
		Message: "User has been removed from the database.",
		State:   report.State(),
	})
}

// observeCascade records metrics for deletions that went through the
// freelancer/user cascade. Rejected requests carry no report.
func observeCascade(report *domain.DeletionReport, start time.Time) {
	if report == nil || report.FreelancerID == "" {
		return
	}
	state := string(report.State())
	metrics.CascadeDeletionsTotal.WithLabelValues(state).Inc()
	metrics.CascadeDeletionDuration.WithLabelValues(state).Observe(time.Since(start).Seconds())
}
