package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelance-directory/api/internal/api/middleware"
	"github.com/freelance-directory/api/internal/core/domain"
)

// actorClaims returns the claims placed by the Authenticate middleware. A
// route reaching a handler without them was wired without the guard, which
// is reported as an authentication failure rather than served anonymously.
func actorClaims(c echo.Context) (domain.Claims, error) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok || claims.Subject == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	return claims, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
