package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/pkg/database"
	testdb "github.com/shipdesk/shipdesk/test/database"
)

func TestLockTicketBlocksOtherAcquirers(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	release, err := db.LockTicket(ctx, "T-1001")
	require.NoError(t, err)

	tx, err := db.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	// The session lock and the transaction lock share one keyspace.
	held, err := database.TryTicketLock(ctx, tx, "T-1001")
	require.NoError(t, err)
	assert.False(t, held)

	// Other tickets are independent.
	held, err = database.TryTicketLock(ctx, tx, "T-2002")
	require.NoError(t, err)
	assert.True(t, held)

	release()
	held, err = database.TryTicketLock(ctx, tx, "T-1001")
	require.NoError(t, err)
	assert.True(t, held)
}

func TestLockTicketReentersAfterRelease(t *testing.T) {
	db := testdb.NewTestClient(t)
	ctx := context.Background()

	release, err := db.LockTicket(ctx, "T-3003")
	require.NoError(t, err)
	release()

	release, err = db.LockTicket(ctx, "T-3003")
	require.NoError(t, err)
	release()
}
