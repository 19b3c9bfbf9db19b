package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelance-directory/api/internal/core/ports"
)

// FreelancerHandler handles HTTP requests for freelancer profiles.
type FreelancerHandler struct {
	service ports.FreelancerService
}

func NewFreelancerHandler(service ports.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{service: service}
}

// List handles GET /api/freelancers.
func (h *FreelancerHandler) List(c echo.Context) error {
	freelancers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, freelancers)
}

// Get handles GET /api/freelancers/:id.
func (h *FreelancerHandler) Get(c echo.Context) error {
	f, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// Create handles POST /api/freelancers.
func (h *FreelancerHandler) Create(c echo.Context) error {
	actor, err := actorClaims(c)
	if err != nil {
		return err
	}

	var req freelancerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	f, err := h.service.Create(c.Request().Context(), actor, toFreelancerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, f)
}

// Update handles PUT /api/freelancers/:id.
func (h *FreelancerHandler) Update(c echo.Context) error {
	actor, err := actorClaims(c)
	if err != nil {
		return err
	}

	var req freelancerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	f, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toFreelancerInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// Delete handles DELETE /api/freelancers/:id. The owning user goes with it;
// anything short of both records being gone surfaces as a partial deletion.
func (h *FreelancerHandler) Delete(c echo.Context) error {
	actor, err := actorClaims(c)
	if err != nil {
		return err
	}

	start := time.Now()
	report, err := h.service.Delete(c.Request().Context(), actor, c.Param("id"))
	observeCascade(report, start)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Freelancer have been removed from the database."})
}

func toFreelancerInput(req freelancerRequest) ports.FreelancerInput {
	return ports.FreelancerInput{
		UserID: req.User,
		Name:   req.Name,
		Phone:  req.Phone,
		Skill:  req.Skill,
		Hobby:  req.Hobby,
	}
}
