// Package proto defines the JSON wire contract between clients and the
// server. Field names are the contract; types are semantic.
package proto

import "encoding/json"

// TimeLayout is how message timestamps appear on the wire,
// e.g. "04 Jul 2025, 09:30 PM".
const TimeLayout = "02 Jan 2006, 03:04 PM"

const (
	InboundTypeJoinPrivate    = "join_private"
	InboundTypeMessage        = "message"
	InboundTypePrivateMessage = "private_message"
	InboundTypeTyping         = "typing"

	OutboundTypeActiveUsers    = "active_users"
	OutboundTypeMessage        = "message"
	OutboundTypePrivateMessage = "private_message"
	OutboundTypeTyping         = "typing"
)

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// JoinPrivateData requests to join the private conversation with a peer.
type JoinPrivateData struct {
	User string `json:"user"`
}

// MessageData is a public chat message from the client.
type MessageData struct {
	Message string `json:"message"`
}

// PrivateMessageData is a pairwise chat message from the client.
type PrivateMessageData struct {
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
}

// TypingData signals that the client is typing to a peer.
type TypingData struct {
	Receiver string `json:"receiver"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// MessageEvent is a delivered public message. Also the shape of history
// query entries.
type MessageEvent struct {
	Sender  string `json:"sender"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

// PrivateMessageEvent is a delivered pairwise message.
type PrivateMessageEvent struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
	Time     string `json:"time"`
}

// TypingEvent is a transient typing notification.
type TypingEvent struct {
	Sender string `json:"sender"`
}
