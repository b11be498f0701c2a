package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parley/internal/auth"
	"parley/internal/config"
	"parley/internal/core"
	"parley/internal/store"
)

// NewServer builds the HTTP server: health check, WebSocket endpoint, and the
// authenticated REST surface (history query, roster snapshot).
//
// The WebSocket handler is mounted on the top-level mux, not through gin:
// the upgrade hijacks the connection, and gin's response writer refuses to
// hijack once anything has been written.
func NewServer(hub *core.Hub, authService *auth.Service, st store.MessageStore, cfg *config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", healthHandler)

	historyHandlers := NewHistoryHandlers(st, logger)
	userHandlers := NewUserHandlers(hub.Presence(), logger)

	authed := router.Group("/", AuthMiddleware(authService, logger))
	authed.GET("/private_messages/:username", historyHandlers.PrivateMessages)
	authed.GET("/api/users/active", userHandlers.ActiveUsers)

	mux := stdhttp.NewServeMux()
	mux.Handle("/ws", NewWSHandler(hub, authService, logger))
	mux.Handle("/", router)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
