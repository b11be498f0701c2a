package core

import (
	"sort"
	"sync"
)

// Presence tracks which identities currently have a live connection. An entry
// is kept for every identity that has ever connected, flipping between active
// and inactive, mirroring how the account table keeps its active flag.
//
// There is no reference counting: any disconnect marks the identity inactive,
// so a second simultaneous connection for the same identity is not supported.
type Presence struct {
	mu     sync.RWMutex
	active map[string]bool
}

// NewPresence constructs an empty presence registry.
func NewPresence() *Presence {
	return &Presence{active: make(map[string]bool)}
}

// MarkActive records the identity as online. Idempotent.
func (p *Presence) MarkActive(identity string) {
	if identity == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active[identity] = true
}

// MarkInactive records the identity as offline. Idempotent; a no-op for
// identities that never connected.
func (p *Presence) MarkInactive(identity string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.active[identity]; ok {
		p.active[identity] = false
	}
}

// ListActive returns a sorted snapshot of online identities. The snapshot is
// taken under the lock, so it never observes a partially-applied mark.
func (p *Presence) ListActive() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	users := make([]string, 0, len(p.active))
	for identity, active := range p.active {
		if active {
			users = append(users, identity)
		}
	}
	sort.Strings(users)
	return users
}
