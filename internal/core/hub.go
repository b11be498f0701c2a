// Package core implements the real-time messaging and presence subsystem:
// connection lifecycle, room derivation for pairwise conversations, event
// routing, and the persist-before-deliver contract.
package core

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"parley/internal/log"
	"parley/internal/store"
)

// Hub routes inbound client events to the right recipient set. A single Run
// goroutine owns the connection table and the room map, which serializes all
// deliveries: events reach a room's members in the order the hub processed
// them.
type Hub struct {
	store    store.MessageStore
	presence *Presence
	log      *zerolog.Logger

	register   chan *Client
	unregister chan *Client
	inbound    chan inbound
	done       chan struct{}

	clients map[*Client]struct{}
	rooms   map[string]*Room
}

type inbound struct {
	client *Client
	cmd    *Command
}

// NewHub creates a new chat hub instance.
func NewHub(st store.MessageStore, logger *zerolog.Logger) *Hub {
	if logger == nil {
		logger = log.Nop()
	}
	return &Hub{
		store:      st,
		presence:   NewPresence(),
		log:        logger,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan inbound),
		done:       make(chan struct{}),
		clients:    make(map[*Client]struct{}),
		rooms:      make(map[string]*Room),
	}
}

// Presence exposes the registry for read-only roster snapshots.
func (h *Hub) Presence() *Presence {
	return h.presence
}

// RegisterClient hands a new authenticated connection to the hub.
// A no-op once the hub has stopped.
func (h *Hub) RegisterClient(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

// UnregisterClient removes a connection from the hub. Safe to call more than
// once; commands still in flight after removal are dropped.
func (h *Hub) UnregisterClient(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Run processes registrations and client commands until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return
		case client := <-h.register:
			h.handleRegister(ctx, client)
		case client := <-h.unregister:
			h.handleUnregister(client)
		case in := <-h.inbound:
			h.dispatch(ctx, in.client, in.cmd)
		}
	}
}

func (h *Hub) handleRegister(ctx context.Context, client *Client) {
	h.clients[client] = struct{}{}
	go h.forward(ctx, client)

	if client.Identity == "" {
		// Transport should never let this through. Keep the connection
		// silent rather than echoing an error event.
		h.log.Warn().Str("client_id", client.ID).Str("code", ErrCodeNotAuthenticated).
			Msg("registered connection without identity")
		return
	}

	h.presence.MarkActive(client.Identity)
	h.log.Info().Str("client_id", client.ID).Str("identity", client.Identity).Msg("client connected")
	h.broadcastRoster()
}

func (h *Hub) handleUnregister(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)

	for key := range client.Rooms {
		if room, ok := h.rooms[key]; ok {
			room.RemoveClient(client)
			if room.Empty() {
				delete(h.rooms, key)
			}
		}
	}

	// Safe to close here: every delivery happens on this goroutine, after the
	// client has already left the connection table and all rooms.
	close(client.Events)

	if client.Identity == "" {
		return
	}
	h.presence.MarkInactive(client.Identity)
	h.log.Info().Str("client_id", client.ID).Str("identity", client.Identity).Msg("client disconnected")
	h.broadcastRoster()
}

// forward pumps one client's commands into the hub loop.
func (h *Hub) forward(ctx context.Context, client *Client) {
	for {
		select {
		case cmd, ok := <-client.Commands:
			if !ok {
				return
			}
			select {
			case h.inbound <- inbound{client: client, cmd: cmd}:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) dispatch(ctx context.Context, client *Client, cmd *Command) {
	if _, ok := h.clients[client]; !ok {
		// The session is closed; the transport is already gone, so this is a
		// protocol violation worth logging, never a fatal error.
		h.log.Warn().Str("client_id", client.ID).Msg("dropped command on closed session")
		return
	}
	if client.Identity == "" {
		h.log.Warn().Str("client_id", client.ID).Str("code", ErrCodeNotAuthenticated).
			Msg("dropped command without identity")
		return
	}

	switch cmd.Kind {
	case CommandPublicMessage:
		h.handlePublicMessage(ctx, client, cmd)
	case CommandPrivateMessage:
		h.handlePrivateMessage(ctx, client, cmd)
	case CommandJoinPrivate:
		h.handleJoinPrivate(client, cmd)
	case CommandTyping:
		h.handleTyping(client, cmd)
	default:
		h.log.Warn().Str("client_id", client.ID).Int("kind", int(cmd.Kind)).Msg("unknown command kind")
	}
}

// handlePublicMessage persists the message, then delivers it to every
// connected session regardless of room membership.
func (h *Hub) handlePublicMessage(ctx context.Context, client *Client, cmd *Command) {
	msg, err := h.store.Append(ctx, client.Identity, "", cmd.Text)
	if err != nil {
		h.reject(client, err, "public message")
		return
	}

	h.broadcastAll(&Event{Kind: EventPublicMessage, Message: fromStore(msg)})
}

// handlePrivateMessage persists the message, then delivers it only to the
// sessions that joined the conversation room. If neither participant joined,
// the message is persisted but not delivered in real time.
func (h *Hub) handlePrivateMessage(ctx context.Context, client *Client, cmd *Command) {
	key, err := CanonicalRoom(client.Identity, cmd.Peer)
	if err != nil {
		h.reject(client, err, "private message")
		return
	}

	msg, err := h.store.Append(ctx, client.Identity, cmd.Peer, cmd.Text)
	if err != nil {
		h.reject(client, err, "private message")
		return
	}

	if room, ok := h.rooms[key]; ok {
		room.Broadcast(&Event{Kind: EventPrivateMessage, Message: fromStore(msg)})
	}
}

// handleJoinPrivate adds the conversation room to the session. Silent
// bookkeeping: nobody is notified.
func (h *Hub) handleJoinPrivate(client *Client, cmd *Command) {
	key, err := CanonicalRoom(client.Identity, cmd.Peer)
	if err != nil {
		h.reject(client, err, "join private")
		return
	}

	room, ok := h.rooms[key]
	if !ok {
		room = NewRoom(key)
		h.rooms[key] = room
	}
	room.AddClient(client)
	client.Rooms[key] = struct{}{}
}

// handleTyping relays a transient typing notification to the conversation
// room. Never persisted.
func (h *Hub) handleTyping(client *Client, cmd *Command) {
	key, err := CanonicalRoom(client.Identity, cmd.Peer)
	if err != nil {
		h.reject(client, err, "typing")
		return
	}

	if room, ok := h.rooms[key]; ok {
		room.Broadcast(&Event{Kind: EventTyping, User: client.Identity})
	}
}

// broadcastRoster sends a full refresh of the online roster to every
// connected session.
func (h *Hub) broadcastRoster() {
	h.broadcastAll(&Event{Kind: EventActiveUsers, Users: h.presence.ListActive()})
}

func (h *Hub) broadcastAll(event *Event) {
	for client := range h.clients {
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}

// reject drops an invalid event. The client gets no error echo; rejection is
// silent on the wire and loud in the logs.
func (h *Hub) reject(client *Client, err error, op string) {
	cerr := classify(err)
	evt := h.log.Warn()
	if cerr.Code == ErrCodeStorage {
		evt = h.log.Error()
	}
	evt.Str("client_id", client.ID).Str("identity", client.Identity).
		Str("code", cerr.Code).Str("op", op).Msg(cerr.Message)
}

func (h *Hub) shutdown() {
	for client := range h.clients {
		delete(h.clients, client)
		close(client.Events)
	}
	h.rooms = make(map[string]*Room)
}

func classify(err error) *CoreError {
	switch {
	case errors.Is(err, store.ErrEmptyText), errors.Is(err, store.ErrTextTooLong):
		return coreError(ErrCodeValidation, err.Error())
	case errors.Is(err, ErrSelfRoom), errors.Is(err, ErrEmptyIdentity):
		return coreError(ErrCodeInvalidRoom, err.Error())
	default:
		return coreError(ErrCodeStorage, err.Error())
	}
}

func fromStore(msg *store.Message) Message {
	return Message{
		ID:        msg.ID,
		Sender:    msg.Sender,
		Receiver:  msg.Receiver,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}
