package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/freelance-directory/api/internal/api/metrics"
	"github.com/freelance-directory/api/internal/core/domain"
)

// RequireAdmin lets through only requests whose claims carry isAdmin. It must
// be chained after Authenticate: without claims on the context it rejects
// with an authentication error rather than an authorization one.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				metrics.GuardRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrInvalidToken
			}
			if !claims.IsAdmin {
				metrics.GuardRejectionsTotal.WithLabelValues("not_admin").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireRole restricts a route to the given roles. Admins always pass.
// Like RequireAdmin it must run after Authenticate.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFromContext(c)
			if !ok {
				metrics.GuardRejectionsTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrInvalidToken
			}
			if _, ok := allowed[claims.Role]; !ok && !claims.IsAdmin {
				metrics.GuardRejectionsTotal.WithLabelValues("role").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
