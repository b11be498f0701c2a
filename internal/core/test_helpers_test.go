package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"parley/internal/store"
)

// fakeStore is an in-memory store.MessageStore for hub tests.
type fakeStore struct {
	mu     sync.Mutex
	nextID int64
	msgs   []*store.Message
}

func (f *fakeStore) Append(_ context.Context, sender, receiver, text string) (*store.Message, error) {
	if err := store.ValidateText(text); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	msg := &store.Message{
		ID:        f.nextID,
		Sender:    sender,
		Receiver:  receiver,
		Text:      text,
		CreatedAt: time.Now(),
	}
	f.msgs = append(f.msgs, msg)
	return msg, nil
}

func (f *fakeStore) History(_ context.Context, userA, userB string) ([]*store.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*store.Message
	for _, m := range f.msgs {
		if (m.Sender == userA && m.Receiver == userB) || (m.Sender == userB && m.Receiver == userA) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.msgs)
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// noEvent asserts that no event of the given kind arrives within the window.
func noEvent(t *testing.T, ch <-chan *Event, kind EventKind) {
	t.Helper()

	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event of kind %v: %+v", kind, ev)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
