package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelance-directory/api/internal/core/ports"
)

type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(service ports.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Get(c echo.Context) error {
	skill, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Create(c echo.Context) error {
	var req skillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skill, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) Rename(c echo.Context) error {
	var req skillRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	skill, err := h.service.Rename(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

// Delete handles DELETE /api/skills/:id and returns the removed entry.
func (h *SkillHandler) Delete(c echo.Context) error {
	skill, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}
