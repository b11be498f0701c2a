package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventActiveUsers delivers a full refresh of the online roster.
	EventActiveUsers EventKind = iota
	// EventPublicMessage notifies clients about a broadcast chat message.
	EventPublicMessage
	// EventPrivateMessage notifies room members about a pairwise chat message.
	EventPrivateMessage
	// EventTyping notifies room members that a user is typing. Transient,
	// never persisted.
	EventTyping
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	Users   []string // for EventActiveUsers
	User    string   // for EventTyping
	Message Message
}
