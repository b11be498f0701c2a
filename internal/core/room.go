package core

// CanonicalRoom derives the stable routing key for a private conversation
// between two identities: the pair sorted and joined with "-". Both argument
// orders produce the same key. Self-pairing is rejected.
func CanonicalRoom(a, b string) (string, error) {
	if a == "" || b == "" {
		return "", ErrEmptyIdentity
	}
	if a == b {
		return "", ErrSelfRoom
	}
	if b < a {
		a, b = b, a
	}
	return a + "-" + b, nil
}

// Room groups the sessions that joined the same private conversation. Rooms
// are routing scope only, never persisted; the hub goroutine owns them.
type Room struct {
	Key     string
	clients map[*Client]struct{}
}

// NewRoom constructs a room with no clients.
func NewRoom(key string) *Room {
	return &Room{
		Key:     key,
		clients: make(map[*Client]struct{}),
	}
}

// AddClient inserts a client into the room. Returns true if newly added;
// joining twice is a no-op.
func (r *Room) AddClient(c *Client) bool {
	if _, exists := r.clients[c]; exists {
		return false
	}
	r.clients[c] = struct{}{}
	return true
}

// RemoveClient deletes a client from the room. Returns true if removed.
func (r *Room) RemoveClient(c *Client) bool {
	if _, exists := r.clients[c]; !exists {
		return false
	}
	delete(r.clients, c)
	return true
}

// Broadcast sends an event to all clients in the room.
func (r *Room) Broadcast(event *Event) {
	for client := range r.clients {
		select {
		case client.Events <- event:
		default:
			// Drop if slow consumer.
		}
	}
}

// Empty returns true if no clients are in the room.
func (r *Room) Empty() bool {
	return len(r.clients) == 0
}
