package http

import (
	"encoding/json"
	"fmt"

	"parley/internal/core"
	"parley/internal/proto"
)

// inboundToCommand maps a client event onto a core command. A non-nil error
// means the event is malformed and must be dropped without an echo.
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeJoinPrivate:
		var join proto.JoinPrivateData
		if err := json.Unmarshal(inbound.Data, &join); err != nil {
			return nil, err
		}
		if join.User == "" {
			return nil, fmt.Errorf("join_private: user is required")
		}
		return &core.Command{
			Kind: core.CommandJoinPrivate,
			Peer: join.User,
		}, nil
	case proto.InboundTypeMessage:
		var msg proto.MessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, err
		}
		return &core.Command{
			Kind: core.CommandPublicMessage,
			Text: msg.Message,
		}, nil
	case proto.InboundTypePrivateMessage:
		var msg proto.PrivateMessageData
		if err := json.Unmarshal(inbound.Data, &msg); err != nil {
			return nil, err
		}
		if msg.Receiver == "" {
			return nil, fmt.Errorf("private_message: receiver is required")
		}
		return &core.Command{
			Kind: core.CommandPrivateMessage,
			Peer: msg.Receiver,
			Text: msg.Message,
		}, nil
	case proto.InboundTypeTyping:
		var typing proto.TypingData
		if err := json.Unmarshal(inbound.Data, &typing); err != nil {
			return nil, err
		}
		if typing.Receiver == "" {
			return nil, fmt.Errorf("typing: receiver is required")
		}
		return &core.Command{
			Kind: core.CommandTyping,
			Peer: typing.Receiver,
		}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", inbound.Type)
	}
}

// outboundFromEvent maps a core event onto its wire shape.
func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventActiveUsers:
		return proto.Outbound{
			Type: proto.OutboundTypeActiveUsers,
			Data: event.Users,
		}
	case core.EventPublicMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeMessage,
			Data: proto.MessageEvent{
				Sender:  event.Message.Sender,
				Message: event.Message.Text,
				Time:    event.Message.CreatedAt.Format(proto.TimeLayout),
			},
		}
	case core.EventPrivateMessage:
		return proto.Outbound{
			Type: proto.OutboundTypePrivateMessage,
			Data: proto.PrivateMessageEvent{
				Sender:   event.Message.Sender,
				Receiver: event.Message.Receiver,
				Message:  event.Message.Text,
				Time:     event.Message.CreatedAt.Format(proto.TimeLayout),
			},
		}
	case core.EventTyping:
		return proto.Outbound{
			Type: proto.OutboundTypeTyping,
			Data: proto.TypingEvent{Sender: event.User},
		}
	default:
		return proto.Outbound{}
	}
}
