package core

import "time"

// Message is the domain model for a chat message. An empty Receiver means the
// message was addressed to everyone.
type Message struct {
	ID        int64
	Sender    string
	Receiver  string
	Text      string
	CreatedAt time.Time
}
