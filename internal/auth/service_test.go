package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestService(secret string) *Service {
	return NewService(&JWTConfig{
		Secret:   []byte(secret),
		Issuer:   "test",
		Audience: "test",
		TTL:      time.Hour,
	})
}

func TestIssueAndValidateToken(t *testing.T) {
	svc := newTestService("test-secret-change-me")

	token, err := svc.IssueToken("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	identity, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if identity != "alice" {
		t.Fatalf("expected identity alice, got %q", identity)
	}
}

func TestIssueToken_TrimsIdentity(t *testing.T) {
	svc := newTestService("secret")

	token, err := svc.IssueToken(" alice ")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	identity, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if identity != "alice" {
		t.Fatalf("expected trimmed identity, got %q", identity)
	}
}

func TestIssueToken_RejectsInvalidIdentity(t *testing.T) {
	svc := newTestService("secret")

	if _, err := svc.IssueToken("  "); !errors.Is(err, ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity, got %v", err)
	}
	if _, err := svc.IssueToken(strings.Repeat("x", 51)); !errors.Is(err, ErrInvalidIdentity) {
		t.Fatalf("expected ErrInvalidIdentity, got %v", err)
	}
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	token, err := newTestService("secret-a").IssueToken("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := newTestService("secret-b").ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_RejectsWrongIssuer(t *testing.T) {
	issuing := NewService(&JWTConfig{
		Secret: []byte("secret"),
		Issuer: "someone-else",
		TTL:    time.Hour,
	})
	token, err := issuing.IssueToken("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	validating := NewService(&JWTConfig{
		Secret: []byte("secret"),
		Issuer: "parley",
		TTL:    time.Hour,
	})
	if _, err := validating.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	expired := NewService(&JWTConfig{
		Secret: []byte("secret"),
		TTL:    -time.Minute,
	})
	token, err := expired.IssueToken("alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := expired.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
