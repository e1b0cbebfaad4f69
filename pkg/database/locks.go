package database

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/shipdesk/shipdesk/ent"
)

// Per-ticket serialization uses Postgres advisory locks keyed by a hash of
// the ticket number. The transaction-scoped form releases on commit or
// rollback; the session-scoped form (LockTicket) pins a pool connection and
// releases through the returned func. Both share one keyspace, so a
// critical section held by any process blocks the others.

// ticketLockKey maps a ticket number onto the advisory lock keyspace.
func ticketLockKey(ticketNumber string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(ticketNumber))
	return int64(h.Sum64())
}

// LockTicket blocks until the session-scoped per-ticket advisory lock is
// held on a dedicated connection, and returns the release func. Long
// critical sections that span several transactions (analyze plus dispatch,
// an approval send) hold this lock so that replicas never interleave work
// on one ticket.
func (c *Client) LockTicket(ctx context.Context, ticketNumber string) (func(), error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve lock connection for %s: %w", ticketNumber, err)
	}
	if _, err := conn.ExecContext(ctx, "SELECT pg_advisory_lock($1)", ticketLockKey(ticketNumber)); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to acquire ticket lock for %s: %w", ticketNumber, err)
	}
	release := func() {
		// Unlock on a fresh context: the caller's may already be canceled.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, _ = conn.ExecContext(ctx, "SELECT pg_advisory_unlock($1)", ticketLockKey(ticketNumber))
		_ = conn.Close()
	}
	return release, nil
}

// AcquireTicketLock blocks until the per-ticket advisory lock is held by
// the given transaction. Pipeline and dispatcher steps that mutate the same
// TicketState must run under this lock.
func AcquireTicketLock(ctx context.Context, tx *ent.Tx, ticketNumber string) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", ticketLockKey(ticketNumber)); err != nil {
		return fmt.Errorf("failed to acquire ticket lock for %s: %w", ticketNumber, err)
	}
	return nil
}

// TryTicketLock attempts the per-ticket advisory lock without blocking.
func TryTicketLock(ctx context.Context, tx *ent.Tx, ticketNumber string) (bool, error) {
	rows, err := tx.QueryContext(ctx, "SELECT pg_try_advisory_xact_lock($1)", ticketLockKey(ticketNumber))
	if err != nil {
		return false, fmt.Errorf("failed to try ticket lock for %s: %w", ticketNumber, err)
	}
	defer func() { _ = rows.Close() }()

	var acquired bool
	if rows.Next() {
		if err := rows.Scan(&acquired); err != nil {
			return false, fmt.Errorf("failed to scan ticket lock result: %w", err)
		}
	}
	return acquired, rows.Err()
}
