package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"parley/internal/auth"
	"parley/internal/config"
	"parley/internal/core"
	"parley/internal/log"
	"parley/internal/store"
	"parley/internal/store/sqlite"
)

const testJWTSecret = "test-secret-change-me"

// createTestStore creates an in-memory SQLite store with the schema applied.
func createTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// createTestAuthService creates a token service for testing.
func createTestAuthService() *auth.Service {
	return auth.NewService(&auth.JWTConfig{
		Secret:   []byte(testJWTSecret),
		Issuer:   "test",
		Audience: "test",
		TTL:      time.Hour,
	})
}

// startTestServer spins up a hub and the full HTTP surface over an in-memory
// store. The returned cancel stops the hub.
func startTestServer(t *testing.T) (*httptest.Server, store.Store, *auth.Service) {
	t.Helper()

	st := createTestStore(t)
	authService := createTestAuthService()

	hub := core.NewHub(st, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	cfg := config.Default()
	cfg.Addr = ":0"
	cfg.JWTSecret = testJWTSecret

	server := NewServer(hub, authService, st, &cfg, log.Nop())

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts, st, authService
}
