// Package auth is the boundary to the account subsystem: it validates the
// identity tokens that subsystem hands out. Password verification and
// registration live outside this server; the chat core only ever sees an
// already-authenticated identity string.
package auth

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidToken is returned when a token fails validation.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidIdentity is returned when an identity doesn't meet constraints.
	ErrInvalidIdentity = errors.New("invalid identity")
)

// Service provides identity token operations.
type Service struct {
	jwtConfig *JWTConfig
}

// NewService creates a new token service.
func NewService(jwtConfig *JWTConfig) *Service {
	return &Service{jwtConfig: jwtConfig}
}

// IssueToken mints an identity token for the given user handle. Used by the
// token CLI command and by tests; in production tokens come from the account
// subsystem sharing the same secret.
func (s *Service) IssueToken(identity string) (string, error) {
	identity = strings.TrimSpace(identity)
	if len(identity) < 1 || len(identity) > 50 {
		return "", ErrInvalidIdentity
	}
	return GenerateToken(s.jwtConfig, identity)
}

// ValidateToken validates a token and returns the authenticated identity.
func (s *Service) ValidateToken(tokenString string) (string, error) {
	claims, err := ValidateToken(s.jwtConfig, tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.Identity, nil
}
