package pipeline

import "sync"

// ticketLocks serializes in-process work per ticket number. Entries are
// reference-counted and removed when the last holder releases, so the map
// does not grow with ticket cardinality.
type ticketLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// lock blocks until the per-ticket lock is held and returns the release
// function.
func (l *ticketLocks) lock(ticketNumber string) func() {
	l.mu.Lock()
	if l.entries == nil {
		l.entries = make(map[string]*lockEntry)
	}
	e, ok := l.entries[ticketNumber]
	if !ok {
		e = &lockEntry{}
		l.entries[ticketNumber] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, ticketNumber)
		}
		l.mu.Unlock()
	}
}
