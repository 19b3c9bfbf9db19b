package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/freelance-directory/api/internal/api/metrics"
	"github.com/freelance-directory/api/internal/core/domain"
	"github.com/freelance-directory/api/internal/core/ports"
)

// HeaderAuthToken carries the session token on every protected request.
const HeaderAuthToken = "x-auth-token"

// ContextKeyClaims is the echo context key Authenticate stores claims under.
const ContextKeyClaims = "claims"

// Authenticate verifies the session token and stores its claims on the
// context. Requests without a valid token never reach next.
//
// The token is read from x-auth-token, falling back to
// "Authorization: Bearer <token>".
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := tokenFromRequest(c)
			if err != nil {
				metrics.GuardRejectionsTotal.WithLabelValues("missing_token").Inc()
				return err
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				metrics.GuardRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			c.Set(ContextKeyClaims, claims)
			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) (string, error) {
	if token := c.Request().Header.Get(HeaderAuthToken); token != "" {
		return token, nil
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domain.ErrMissingToken
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", domain.ErrInvalidToken
	}
	return parts[1], nil
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(ContextKeyClaims).(domain.Claims)
	return claims, ok
}
