package approval

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/auditlogentry"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/services"
	"github.com/shipdesk/shipdesk/pkg/ticket"
	testdb "github.com/shipdesk/shipdesk/test/database"
)

type fakeSender struct {
	mu      sync.Mutex
	sendErr error
	sent    []ticket.OutboundMessage
	notes   []string
}

func (f *fakeSender) SendCustomer(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent = append(f.sent, msg)
	return "msg-" + uuid.New().String()[:8], nil
}

func (f *fakeSender) SendSupplier(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error) {
	return f.SendCustomer(ctx, ticketID, msg)
}

func (f *fakeSender) SendInternal(ctx context.Context, ticketID, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, body)
	return "note-1", nil
}

type fakeTracker struct {
	recorded []string
}

func (f *fakeTracker) RecordSent(ctx context.Context, supplierEmail, ticketNumber string) error {
	f.recorded = append(f.recorded, supplierEmail+"|"+ticketNumber)
	return nil
}

type fixture struct {
	db      *database.Client
	q       *Queue
	sender  *fakeSender
	tracker *fakeTracker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	sender := &fakeSender{}
	tracker := &fakeTracker{}
	cfg := &config.Config{MaxSendRetries: 9}
	q := New(db, cfg, sender, tracker)

	_, err := db.TicketState.Create().
		SetID("T-1001").
		SetTicketID("backend-42").
		SetCustomerEmail("jane@customer.example").
		Save(context.Background())
	require.NoError(t, err)

	return &fixture{db: db, q: q, sender: sender, tracker: tracker}
}

func (f *fixture) pending(t *testing.T, kind pendingmessage.Kind, status pendingmessage.Status) *ent.PendingMessage {
	t.Helper()
	create := f.db.PendingMessage.Create().
		SetID(uuid.New().String()).
		SetTicketNumber("T-1001").
		SetKind(kind).
		SetTo("jane@customer.example").
		SetBody("Your parcel ships tomorrow.").
		SetConfidence(0.9).
		SetStatus(status)
	if status == pendingmessage.StatusFailed {
		create.SetRetryCount(3).
			SetLastError("backend unavailable").
			SetNextAttemptAt(time.Now().Add(-time.Minute))
	}
	pm, err := create.Save(context.Background())
	require.NoError(t, err)
	return pm
}

func TestApproveSends(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)

	got, err := f.q.Approve(ctx, pm.ID, "alex@shipdesk.example", nil)
	require.NoError(t, err)

	assert.Equal(t, pendingmessage.StatusSent, got.Status)
	require.NotNil(t, got.SentAt)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "alex@shipdesk.example", *got.ReviewedBy)
	assert.NotEmpty(t, got.UpstreamMessageID)
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, "Your parcel ships tomorrow.", f.sender.sent[0].Body)

	// Both transitions audited.
	n, err := f.db.AuditLogEntry.Query().
		Where(auditlogentry.EntityID(pm.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestApproveAdvancesTicketStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)

	_, err := f.q.Approve(ctx, pm.ID, "alex", nil)
	require.NoError(t, err)

	// An approved customer send means the ball is in the customer's court.
	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.Equal(t, ticketstate.StatusAwaitingCustomer, ts.Status)
}

func TestApproveSupplierAdvancesTicketStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.pending(t, pendingmessage.KindSupplier, pendingmessage.StatusPending)

	_, err := f.q.Approve(ctx, pm.ID, "alex", nil)
	require.NoError(t, err)

	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.Equal(t, ticketstate.StatusAwaitingSupplier, ts.Status)
}

func TestApproveKeepsEscalatedStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.db.TicketState.UpdateOneID("T-1001").
		SetEscalated(true).
		SetStatus(ticketstate.StatusEscalated).
		Exec(ctx))
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)

	_, err := f.q.Approve(ctx, pm.ID, "alex", nil)
	require.NoError(t, err)

	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.Equal(t, ticketstate.StatusEscalated, ts.Status)
}

func TestConcurrentApprovalsSendOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)

	// Double-click: both requests pass the read check, but the conditional
	// status update lets only one of them reach the send.
	errs := make(chan error, 2)
	for range 2 {
		go func() {
			_, err := f.q.Approve(ctx, pm.ID, "alex", nil)
			errs <- err
		}()
	}

	var oks, conflicts int
	for range 2 {
		switch err := <-errs; {
		case err == nil:
			oks++
		case errors.Is(err, services.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected approve error: %v", err)
		}
	}
	assert.Equal(t, 1, oks)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, f.sender.sent, 1)
}

func TestApproveAppliesEdits(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)

	body := "Edited: your parcel ships today."
	subject := "Shipping update"
	got, err := f.q.Approve(ctx, pm.ID, "alex", &models.MessageEdits{Body: &body, Subject: &subject})
	require.NoError(t, err)

	assert.Equal(t, body, got.Body)
	assert.Equal(t, subject, got.Subject)
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, body, f.sender.sent[0].Body)
}

func TestApproveRejectsEmptyBodyEdit(t *testing.T) {
	f := newFixture(t)
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)

	empty := "   "
	_, err := f.q.Approve(context.Background(), pm.ID, "alex", &models.MessageEdits{Body: &empty})
	assert.True(t, services.IsValidation(err))
}

func TestApproveOnlyFromPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, status := range []pendingmessage.Status{
		pendingmessage.StatusSent,
		pendingmessage.StatusRejected,
		pendingmessage.StatusFailed,
	} {
		pm := f.pending(t, pendingmessage.KindCustomer, status)
		_, err := f.q.Approve(ctx, pm.ID, "alex", nil)
		assert.ErrorIs(t, err, services.ErrConflict, "approve from %s must conflict", status)
	}
}

func TestApproveSendFailureMarksFailed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)
	f.sender.sendErr = &ticket.TransientError{Err: context.DeadlineExceeded, Attempts: 3}

	got, err := f.q.Approve(ctx, pm.ID, "alex", nil)
	require.NoError(t, err)

	assert.Equal(t, pendingmessage.StatusFailed, got.Status)
	assert.Equal(t, 3, got.RetryCount)
	require.NotNil(t, got.LastError)
	require.NotNil(t, got.NextAttemptAt)
	assert.True(t, got.NextAttemptAt.After(time.Now()))

	// Nothing went out, so the ticket does not wait on anyone.
	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.NotEqual(t, ticketstate.StatusAwaitingCustomer, ts.Status)
}

func TestRejectRequiresReason(t *testing.T) {
	f := newFixture(t)
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)
	_, err := f.q.Reject(context.Background(), pm.ID, "alex", "  ")
	assert.True(t, services.IsValidation(err))
}

func TestRejectFromPendingAndFailed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, status := range []pendingmessage.Status{
		pendingmessage.StatusPending,
		pendingmessage.StatusFailed,
	} {
		pm := f.pending(t, pendingmessage.KindCustomer, status)
		got, err := f.q.Reject(ctx, pm.ID, "alex", "draft is wrong")
		require.NoError(t, err)
		assert.Equal(t, pendingmessage.StatusRejected, got.Status)
		require.NotNil(t, got.RejectionReason)
		assert.Equal(t, "draft is wrong", *got.RejectionReason)
	}

	// Terminal: rejected cannot be rejected again.
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)
	_, err := f.q.Reject(ctx, pm.ID, "alex", "first")
	require.NoError(t, err)
	_, err = f.q.Reject(ctx, pm.ID, "alex", "second")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestRetrySendsAgain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusFailed)

	got, err := f.q.Retry(ctx, pm.ID, "retry-sweep")
	require.NoError(t, err)

	assert.Equal(t, pendingmessage.StatusSent, got.Status)
	assert.Nil(t, got.NextAttemptAt)
	require.Len(t, f.sender.sent, 1)
}

func TestRetryOnlyFromFailed(t *testing.T) {
	f := newFixture(t)
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)
	_, err := f.q.Retry(context.Background(), pm.ID, "retry-sweep")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestRetryExhaustedCap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusFailed)
	require.NoError(t, pm.Update().SetRetryCount(9).Exec(ctx))

	_, err := f.q.Retry(ctx, pm.ID, "retry-sweep")
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestRetryFailureBacksOffByCycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm := f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusFailed)
	f.sender.sendErr = &ticket.TransientError{Err: context.DeadlineExceeded, Attempts: 3}

	got, err := f.q.Retry(ctx, pm.ID, "retry-sweep")
	require.NoError(t, err)

	// 3 attempts already burned plus 3 more: second backoff step.
	assert.Equal(t, pendingmessage.StatusFailed, got.Status)
	assert.Equal(t, 6, got.RetryCount)
	require.NotNil(t, got.NextAttemptAt)
	wantDelay := config.BackoffAt(config.SendBackoff, 2)
	assert.WithinDuration(t, time.Now().Add(wantDelay), *got.NextAttemptAt, 10*time.Second)
}

func TestApproveSupplierRecordsObligation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pm, err := f.db.PendingMessage.Create().
		SetID(uuid.New().String()).
		SetTicketNumber("T-1001").
		SetKind(pendingmessage.KindSupplier).
		SetTo("warehouse@acme.example").
		SetBody("Please confirm the ETA.").
		SetConfidence(0.9).
		SetStatus(pendingmessage.StatusPending).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.q.Approve(ctx, pm.ID, "alex", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"warehouse@acme.example|T-1001"}, f.tracker.recorded)
}

func TestGetAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.pending(t, pendingmessage.KindCustomer, pendingmessage.StatusPending)
	f.pending(t, pendingmessage.KindSupplier, pendingmessage.StatusFailed)

	t.Run("filter by status", func(t *testing.T) {
		msgs, err := f.q.List(ctx, models.PendingListParams{Status: "failed"})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, pendingmessage.KindSupplier, msgs[0].Kind)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := f.q.List(ctx, models.PendingListParams{Status: "bogus"})
		assert.True(t, services.IsValidation(err))
	})

	t.Run("filter by ticket", func(t *testing.T) {
		msgs, err := f.q.List(ctx, models.PendingListParams{Ticket: "T-1001"})
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := f.q.Get(ctx, "nope")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
