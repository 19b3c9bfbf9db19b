package ports

import "github.com/freelance-directory/api/internal/core/domain"

// TokenVerifier is the half of the token service the access guard needs.
type TokenVerifier interface {
	Verify(token string) (domain.Claims, error)
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	TokenVerifier
	Issue(claims domain.Claims) (string, error)
}
