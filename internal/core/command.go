package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandPublicMessage delivers a chat message to every connected client.
	CommandPublicMessage CommandKind = iota
	// CommandPrivateMessage delivers a chat message to one conversation room.
	CommandPrivateMessage
	// CommandJoinPrivate subscribes the client to a private conversation room.
	CommandJoinPrivate
	// CommandTyping notifies a conversation room that the client is typing.
	CommandTyping
)

// Command represents an action requested by a client.
type Command struct {
	Kind CommandKind
	Peer string // the other participant, for private commands
	Text string
}
