package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parley/internal/core"
)

// UserHandlers provides HTTP handlers for user presence queries.
type UserHandlers struct {
	presence *core.Presence
	log      *zerolog.Logger
}

// NewUserHandlers creates a new user handlers instance.
func NewUserHandlers(presence *core.Presence, logger *zerolog.Logger) *UserHandlers {
	return &UserHandlers{
		presence: presence,
		log:      logger,
	}
}

// ActiveUsers returns a snapshot of currently online identities.
// GET /api/users/active
func (h *UserHandlers) ActiveUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.presence.ListActive())
}
