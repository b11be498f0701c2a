// Package store defines the persistence contract for chat messages.
// Message durability is the delivery contract's foundation: the router never
// hands a message to recipients before the store has accepted it.
package store

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"
)

// MaxTextLen is the upper bound on message text, in Unicode code points.
const MaxTextLen = 500

var (
	// ErrEmptyText is returned when a message has no text.
	ErrEmptyText = errors.New("empty message text")
	// ErrTextTooLong is returned when message text exceeds MaxTextLen.
	ErrTextTooLong = errors.New("message text too long")
)

// Message represents a persisted chat message. Messages are immutable once
// created; the store never updates or deletes them.
type Message struct {
	ID        int64
	Sender    string
	Receiver  string // empty for public broadcast messages
	Text      string
	CreatedAt time.Time
}

// Public reports whether the message was addressed to everyone.
func (m *Message) Public() bool {
	return m.Receiver == ""
}

// MessageStore handles message persistence.
type MessageStore interface {
	// Append validates and durably persists a message, assigning its id and
	// timestamp. An empty receiver marks the message public. Returns
	// ErrEmptyText or ErrTextTooLong on invalid text; any other error is a
	// storage failure and must not be swallowed.
	Append(ctx context.Context, sender, receiver, text string) (*Message, error)

	// History returns the private conversation between two users: messages
	// sent from a to b or from b to a, ordered by (created_at, id) ascending.
	// Public messages are never included.
	History(ctx context.Context, userA, userB string) ([]*Message, error)
}

// Store aggregates all storage interfaces.
type Store interface {
	MessageStore

	// Close closes the underlying database connection.
	Close() error
}

// ValidateText checks message text against the store bounds.
func ValidateText(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	if utf8.RuneCountInString(text) > MaxTextLen {
		return ErrTextTooLong
	}
	return nil
}
