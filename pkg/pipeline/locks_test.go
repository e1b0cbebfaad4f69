package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketLocksSerialize(t *testing.T) {
	var locks ticketLocks

	const workers = 8
	const iterations = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				unlock := locks.lock("T-1001")
				counter++ // safe only if the lock serializes
				unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*iterations, counter)
}

func TestTicketLocksIndependentTickets(t *testing.T) {
	var locks ticketLocks

	unlockA := locks.lock("T-A")
	// A lock on a different ticket must not block.
	unlockB := locks.lock("T-B")
	unlockB()
	unlockA()
}

func TestTicketLocksEntriesAreReclaimed(t *testing.T) {
	var locks ticketLocks

	unlock := locks.lock("T-1001")
	locks.mu.Lock()
	assert.Len(t, locks.entries, 1)
	locks.mu.Unlock()
	unlock()

	locks.mu.Lock()
	assert.Empty(t, locks.entries)
	locks.mu.Unlock()
}
