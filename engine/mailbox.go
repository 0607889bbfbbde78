package engine

import (
	"sync"
	"sync/atomic"
)

// Mailbox is the single-slot hand-off between the input listener and the clock
// Post overwrites any pending command, Take consumes it; neither blocks
// Commands posted between two ticks coalesce, only the latest survives
type Mailbox struct {
	mu      sync.Mutex
	pending Direction

	posted      atomic.Uint64
	overwritten atomic.Uint64
}

// NewMailbox creates an empty mailbox
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Post stores d, replacing an unconsumed command; DirNone is ignored
func (m *Mailbox) Post(d Direction) {
	if d == DirNone {
		return
	}

	m.mu.Lock()
	if m.pending != DirNone {
		m.overwritten.Add(1)
	}
	m.pending = d
	m.mu.Unlock()

	m.posted.Add(1)
}

// Take returns and clears the pending command, ok is false when the slot was empty
func (m *Mailbox) Take() (Direction, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d := m.pending
	m.pending = DirNone
	return d, d != DirNone
}

// Stats returns how many commands were posted and how many were overwritten before a Take
func (m *Mailbox) Stats() (posted, overwritten uint64) {
	return m.posted.Load(), m.overwritten.Load()
}
