package core

// Client is one live connection as seen by the core layer, bound to an
// authenticated identity for its whole lifetime. A reconnect is a brand-new
// client: joined rooms do not survive the transport closing.
type Client struct {
	ID       string
	Identity string
	Commands chan *Command
	Events   chan *Event
	Rooms    map[string]struct{}
}

// NewClient constructs a client with initialized channels.
func NewClient(id, identity string) *Client {
	return &Client{
		ID:       id,
		Identity: identity,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 32),
		Rooms:    make(map[string]struct{}),
	}
}
