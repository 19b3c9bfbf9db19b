package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelance-directory/api/internal/api/metrics"
	"github.com/freelance-directory/api/internal/api/middleware"
	"github.com/freelance-directory/api/internal/core/ports"
)

type AuthHandler struct {
	service ports.UserService
}

func NewAuthHandler(service ports.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth and exchanges credentials for a session token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, _, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()

	c.Response().Header().Set(middleware.HeaderAuthToken, token)
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
