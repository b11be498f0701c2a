package http

import (
	"encoding/json"
	"testing"

	"parley/internal/core"
	"parley/internal/proto"
)

func TestInboundToCommand(t *testing.T) {
	tests := []struct {
		name     string
		typ      string
		data     string
		wantKind core.CommandKind
		wantPeer string
		wantText string
		wantErr  bool
	}{
		{
			name:     "join private",
			typ:      proto.InboundTypeJoinPrivate,
			data:     `{"user":"bob"}`,
			wantKind: core.CommandJoinPrivate,
			wantPeer: "bob",
		},
		{
			name:    "join private without user",
			typ:     proto.InboundTypeJoinPrivate,
			data:    `{}`,
			wantErr: true,
		},
		{
			name:     "public message",
			typ:      proto.InboundTypeMessage,
			data:     `{"message":"hi"}`,
			wantKind: core.CommandPublicMessage,
			wantText: "hi",
		},
		{
			name:     "private message",
			typ:      proto.InboundTypePrivateMessage,
			data:     `{"receiver":"bob","message":"secret"}`,
			wantKind: core.CommandPrivateMessage,
			wantPeer: "bob",
			wantText: "secret",
		},
		{
			name:    "private message without receiver",
			typ:     proto.InboundTypePrivateMessage,
			data:    `{"message":"secret"}`,
			wantErr: true,
		},
		{
			name:     "typing",
			typ:      proto.InboundTypeTyping,
			data:     `{"receiver":"bob"}`,
			wantKind: core.CommandTyping,
			wantPeer: "bob",
		},
		{
			name:    "typing without receiver",
			typ:     proto.InboundTypeTyping,
			data:    `{}`,
			wantErr: true,
		},
		{
			name:    "unknown type",
			typ:     "bogus",
			data:    `{}`,
			wantErr: true,
		},
		{
			name:    "malformed payload",
			typ:     proto.InboundTypeMessage,
			data:    `"not an object"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := inboundToCommand(proto.Inbound{
				Type: tt.typ,
				Data: json.RawMessage(tt.data),
			})

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got command %+v", cmd)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cmd.Kind != tt.wantKind || cmd.Peer != tt.wantPeer || cmd.Text != tt.wantText {
				t.Fatalf("unexpected command: %+v", cmd)
			}
		})
	}
}

func TestOutboundFromEvent(t *testing.T) {
	roster := outboundFromEvent(&core.Event{Kind: core.EventActiveUsers, Users: []string{"alice", "bob"}})
	if roster.Type != proto.OutboundTypeActiveUsers {
		t.Fatalf("unexpected type: %s", roster.Type)
	}

	typing := outboundFromEvent(&core.Event{Kind: core.EventTyping, User: "alice"})
	data, ok := typing.Data.(proto.TypingEvent)
	if !ok || data.Sender != "alice" {
		t.Fatalf("unexpected typing payload: %+v", typing.Data)
	}
}
