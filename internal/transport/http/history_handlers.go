package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"parley/internal/proto"
	"parley/internal/store"
)

// HistoryHandlers provides HTTP handlers for message history queries.
type HistoryHandlers struct {
	store store.MessageStore
	log   *zerolog.Logger
}

// NewHistoryHandlers creates a new history handlers instance.
func NewHistoryHandlers(st store.MessageStore, logger *zerolog.Logger) *HistoryHandlers {
	return &HistoryHandlers{
		store: st,
		log:   logger,
	}
}

// PrivateMessages returns the private conversation between the authenticated
// user and :username, oldest first. Public messages have no history endpoint.
// GET /private_messages/:username
func (h *HistoryHandlers) PrivateMessages(c *gin.Context) {
	identity := c.GetString(ContextKeyIdentity)
	if identity == "" {
		h.log.Error().Msg("identity not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	peer := c.Param("username")
	messages, err := h.store.History(c.Request.Context(), identity, peer)
	if err != nil {
		h.log.Error().Err(err).Str("identity", identity).Str("peer", peer).Msg("failed to query history")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	response := make([]proto.MessageEvent, 0, len(messages))
	for _, msg := range messages {
		response = append(response, proto.MessageEvent{
			Sender:  msg.Sender,
			Message: msg.Text,
			Time:    msg.CreatedAt.Format(proto.TimeLayout),
		})
	}

	c.JSON(http.StatusOK, response)
}
