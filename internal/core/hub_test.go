package core

import (
	"context"
	"testing"
	"time"
)

func TestHubChatScenario(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st := &fakeStore{}
	hub := NewHub(st, nil)
	go hub.Run(ctx)

	alice := NewClient("a", "alice")
	bob := NewClient("b", "bob")
	carol := NewClient("c", "carol")

	hub.RegisterClient(alice)
	hub.RegisterClient(bob)
	hub.RegisterClient(carol)

	// Everyone sees the full roster refresh.
	roster := mustEvent(t, carol.Events, EventActiveUsers)
	if len(roster.Users) != 3 {
		t.Fatalf("expected 3 active users, got %v", roster.Users)
	}

	// Public messages reach every connection, room membership irrelevant.
	alice.Commands <- &Command{Kind: CommandPublicMessage, Text: "hi"}

	for _, c := range []*Client{alice, bob, carol} {
		ev := mustEvent(t, c.Events, EventPublicMessage)
		if ev.Message.Sender != "alice" || ev.Message.Text != "hi" {
			t.Fatalf("unexpected public message: %+v", ev.Message)
		}
	}

	// Both participants join the pair room; carol does not.
	alice.Commands <- &Command{Kind: CommandJoinPrivate, Peer: "bob"}
	bob.Commands <- &Command{Kind: CommandJoinPrivate, Peer: "alice"}

	// Bob's public message after his join doubles as a sync point: once alice
	// sees it, the hub has processed bob's join.
	bob.Commands <- &Command{Kind: CommandPublicMessage, Text: "sync"}
	if ev := mustEvent(t, alice.Events, EventPublicMessage); ev.Message.Text != "sync" {
		t.Fatalf("unexpected sync message: %+v", ev.Message)
	}

	alice.Commands <- &Command{Kind: CommandPrivateMessage, Peer: "bob", Text: "secret"}

	for _, c := range []*Client{alice, bob} {
		ev := mustEvent(t, c.Events, EventPrivateMessage)
		if ev.Message.Sender != "alice" || ev.Message.Receiver != "bob" || ev.Message.Text != "secret" {
			t.Fatalf("unexpected private message: %+v", ev.Message)
		}
	}

	// Typing is room-scoped and transient.
	persisted := st.count()
	alice.Commands <- &Command{Kind: CommandTyping, Peer: "bob"}
	if ev := mustEvent(t, bob.Events, EventTyping); ev.User != "alice" {
		t.Fatalf("unexpected typing event: %+v", ev)
	}
	if st.count() != persisted {
		t.Fatal("typing must never be persisted")
	}

	// Carol never joined the room: no private traffic for her.
	noEvent(t, carol.Events, EventPrivateMessage)
	noEvent(t, carol.Events, EventTyping)

	// Disconnect refreshes the roster for the remaining connections.
	hub.UnregisterClient(alice)
	roster = mustEvent(t, bob.Events, EventActiveUsers)
	for len(roster.Users) != 2 {
		roster = mustEvent(t, bob.Events, EventActiveUsers)
	}
	if contains(roster.Users, "alice") {
		t.Fatalf("alice should be gone from the roster, got %v", roster.Users)
	}
}

func TestHubRejectsEmptyPublicMessage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	st := &fakeStore{}
	hub := NewHub(st, nil)
	go hub.Run(ctx)

	alice := NewClient("a", "alice")
	bob := NewClient("b", "bob")
	hub.RegisterClient(alice)
	hub.RegisterClient(bob)

	alice.Commands <- &Command{Kind: CommandPublicMessage, Text: ""}

	noEvent(t, bob.Events, EventPublicMessage)
	if st.count() != 0 {
		t.Fatalf("rejected message must not be stored, got %d messages", st.count())
	}
}

func TestHubRejectsSelfPairing(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	st := &fakeStore{}
	hub := NewHub(st, nil)
	go hub.Run(ctx)

	alice := NewClient("a", "alice")
	hub.RegisterClient(alice)

	alice.Commands <- &Command{Kind: CommandJoinPrivate, Peer: "alice"}
	alice.Commands <- &Command{Kind: CommandPrivateMessage, Peer: "alice", Text: "note to self"}

	noEvent(t, alice.Events, EventPrivateMessage)
	if st.count() != 0 {
		t.Fatalf("self-pair message must not be stored, got %d messages", st.count())
	}
}

func TestHubPersistsPrivateMessageWithoutJoin(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	st := &fakeStore{}
	hub := NewHub(st, nil)
	go hub.Run(ctx)

	alice := NewClient("a", "alice")
	bob := NewClient("b", "bob")
	hub.RegisterClient(alice)
	hub.RegisterClient(bob)

	// Neither side joined the room: the message is durable but not delivered.
	alice.Commands <- &Command{Kind: CommandPrivateMessage, Peer: "bob", Text: "missed"}

	noEvent(t, bob.Events, EventPrivateMessage)

	history, err := st.History(ctx, "alice", "bob")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].Text != "missed" {
		t.Fatalf("expected the message in history, got %+v", history)
	}
}

func TestHubDropsCommandsAfterClose(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	st := &fakeStore{}
	hub := NewHub(st, nil)
	go hub.Run(ctx)

	alice := NewClient("a", "alice")
	bob := NewClient("b", "bob")
	hub.RegisterClient(alice)
	hub.RegisterClient(bob)
	hub.UnregisterClient(alice)

	alice.Commands <- &Command{Kind: CommandPublicMessage, Text: "too late"}

	noEvent(t, bob.Events, EventPublicMessage)
	if st.count() != 0 {
		t.Fatalf("command on closed session must be dropped, got %d messages", st.count())
	}
}
