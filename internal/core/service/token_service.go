package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/freelance-directory/api/internal/core/domain"
)

// tokenClaims is the wire shape of a session token. The field names match
// tokens issued by earlier deployments of the directory.
type tokenClaims struct {
	ID      string `json:"_id"`
	Role    string `json:"role,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens with a process-wide
// secret. It holds no mutable state and is safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	parser *jwt.Parser
}

// NewTokenService fails with domain.ErrMissingSigningSecret when secret is
// empty. A zero ttl issues tokens without an expiry, which keeps Issue
// deterministic for a given claim set.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, domain.ErrMissingSigningSecret
	}
	if ttl < 0 {
		ttl = 0
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}, nil
}

func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	tc := tokenClaims{
		ID:      claims.Subject,
		Role:    claims.Role,
		IsAdmin: claims.IsAdmin,
	}
	if s.ttl > 0 {
		now := time.Now()
		tc.IssuedAt = jwt.NewNumericDate(now)
		tc.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify returns domain.ErrInvalidToken for empty, malformed, expired or
// foreign tokens, and for tokens without a subject.
func (s *TokenService) Verify(token string) (domain.Claims, error) {
	if token == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	var tc tokenClaims
	parsed, err := s.parser.ParseWithClaims(token, &tc, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}
	if tc.ID == "" {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	return domain.Claims{Subject: tc.ID, Role: tc.Role, IsAdmin: tc.IsAdmin}, nil
}
