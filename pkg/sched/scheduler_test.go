package sched

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/processedemail"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/services"
	testdb "github.com/shipdesk/shipdesk/test/database"
)

type fakeRetryer struct {
	calls []string
	err   error
}

func (f *fakeRetryer) Retry(ctx context.Context, id, actor string) (*ent.PendingMessage, error) {
	f.calls = append(f.calls, id)
	return nil, f.err
}

type fixture struct {
	db      *database.Client
	s       *Scheduler
	retryer *fakeRetryer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	retryer := &fakeRetryer{}
	cfg := &config.Config{
		MaxIngestRetries: 5,
		MaxSendRetries:   9,
		Queue:            &config.QueueConfig{JobTimeout: 5 * time.Minute},
	}
	return &fixture{db: db, s: New(db, cfg, retryer, nil), retryer: retryer}
}

func (f *fixture) failedJob(t *testing.T, attempts int, due bool) *ent.IngestJob {
	t.Helper()
	nextAt := time.Now().Add(time.Hour)
	if due {
		nextAt = time.Now().Add(-time.Minute)
	}
	job, err := f.db.IngestJob.Create().
		SetID(uuid.New().String()).
		SetSourceMessageID("gm-" + uuid.New().String()[:8]).
		SetStatus(ingestjob.StatusFailed).
		SetPayload(models.InboundEmail{
			SourceMessageID: "gm-1",
			ThreadID:        "th-1",
			From:            "jane@customer.example",
			Subject:         "Where is my order?",
			BodyPlain:       "Order 44556677 has not arrived.",
			ReceivedAt:      time.Now(),
		}).
		SetAttempts(attempts).
		SetNextAttemptAt(nextAt).
		SetLastError("backend unavailable").
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func (f *fixture) claimedJob(t *testing.T, attempts int, age time.Duration) *ent.IngestJob {
	t.Helper()
	job, err := f.db.IngestJob.Create().
		SetID(uuid.New().String()).
		SetSourceMessageID("gm-" + uuid.New().String()[:8]).
		SetStatus(ingestjob.StatusInProgress).
		SetClaimedBy("worker-gone").
		SetPayload(models.InboundEmail{
			SourceMessageID: "gm-2",
			From:            "jane@customer.example",
			Subject:         "Where is my order?",
			BodyPlain:       "Order 44556677 has not arrived.",
			ReceivedAt:      time.Now(),
		}).
		SetAttempts(attempts).
		SetNextAttemptAt(time.Now().Add(-age)).
		SetUpdatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func (f *fixture) failedSend(t *testing.T, retryCount int, due bool) *ent.PendingMessage {
	t.Helper()
	ts, err := f.db.TicketState.Create().
		SetID(fmt.Sprintf("T-%s", uuid.New().String()[:8])).
		SetCustomerEmail("jane@customer.example").
		Save(context.Background())
	require.NoError(t, err)

	nextAt := time.Now().Add(time.Hour)
	if due {
		nextAt = time.Now().Add(-time.Minute)
	}
	pm, err := f.db.PendingMessage.Create().
		SetID(uuid.New().String()).
		SetTicketNumber(ts.ID).
		SetKind(pendingmessage.KindCustomer).
		SetTo("jane@customer.example").
		SetBody("draft").
		SetStatus(pendingmessage.StatusFailed).
		SetRetryCount(retryCount).
		SetLastError("backend unavailable").
		SetNextAttemptAt(nextAt).
		Save(context.Background())
	require.NoError(t, err)
	return pm
}

func TestSweepReopensDueIngestJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.failedJob(t, 2, true)

	require.NoError(t, f.s.Sweep(ctx))

	got, err := f.db.IngestJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, ingestjob.StatusPending, got.Status)
}

func TestSweepLeavesNotYetDueJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.failedJob(t, 2, false)

	require.NoError(t, f.s.Sweep(ctx))

	got, err := f.db.IngestJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, ingestjob.StatusFailed, got.Status)
}

func TestSweepReclaimsOrphanedJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.claimedJob(t, 1, time.Hour)

	require.NoError(t, f.s.Sweep(ctx))

	// A job whose worker died mid-claim goes back to the workers.
	got, err := f.db.IngestJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, ingestjob.StatusPending, got.Status)
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "worker lost")
}

func TestSweepLeavesLiveClaimedJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.claimedJob(t, 1, time.Minute)

	require.NoError(t, f.s.Sweep(ctx))

	got, err := f.db.IngestJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, ingestjob.StatusInProgress, got.Status)
}

func TestSweepExhaustsOrphansPastCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.claimedJob(t, 5, time.Hour)

	require.NoError(t, f.s.Sweep(ctx))

	got, err := f.db.IngestJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, ingestjob.StatusExhausted, got.Status)
}

func TestSweepExhaustsJobsPastCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.failedJob(t, 5, true)

	require.NoError(t, f.s.Sweep(ctx))

	got, err := f.db.IngestJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, ingestjob.StatusExhausted, got.Status)

	// The idempotency ledger records the permanent failure so the message
	// is never re-admitted.
	pe, err := f.db.ProcessedEmail.Query().
		Where(processedemail.SourceMessageIDEQ(job.SourceMessageID)).
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, pe.Success)
	require.NotNil(t, pe.ErrorMessage)
	assert.Contains(t, *pe.ErrorMessage, "exhausted after 5 attempts")
	assert.Contains(t, *pe.ErrorMessage, "backend unavailable")
}

func TestExhaustKeepsExistingLedgerEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	job := f.failedJob(t, 5, true)

	_, err := f.db.ProcessedEmail.Create().
		SetID(uuid.New().String()).
		SetSourceMessageID(job.SourceMessageID).
		SetSuccess(false).
		SetErrorMessage("earlier failure").
		SetProcessedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.s.Sweep(ctx))

	pe, err := f.db.ProcessedEmail.Query().
		Where(processedemail.SourceMessageIDEQ(job.SourceMessageID)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, pe.ErrorMessage)
	assert.Equal(t, "earlier failure", *pe.ErrorMessage)
}

func TestSweepRetriesDueSends(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.failedSend(t, 3, true)
	f.failedSend(t, 3, false)

	require.NoError(t, f.s.Sweep(ctx))

	assert.Equal(t, []string{pm.ID}, f.retryer.calls)
}

func TestSweepParksExhaustedSends(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.failedSend(t, 9, true)

	require.NoError(t, f.s.Sweep(ctx))

	assert.Empty(t, f.retryer.calls)
	got, err := f.db.PendingMessage.Get(ctx, pm.ID)
	require.NoError(t, err)
	// Parked: still failed, but no deadline so the sweep stops matching it.
	assert.Equal(t, pendingmessage.StatusFailed, got.Status)
	assert.Nil(t, got.NextAttemptAt)
}

func TestSweepIgnoresLostRaces(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.failedSend(t, 3, true)
	f.retryer.err = fmt.Errorf("message is sent, only failed messages retry: %w", services.ErrConflict)

	require.NoError(t, f.s.Sweep(ctx))
	assert.Len(t, f.retryer.calls, 1)
}
