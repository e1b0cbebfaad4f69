package supplier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/format"
	"github.com/shipdesk/shipdesk/pkg/ticket"
	testdb "github.com/shipdesk/shipdesk/test/database"
)

type fakeSender struct {
	sends []ticket.OutboundMessage
	notes []string
}

func (f *fakeSender) SendSupplier(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error) {
	f.sends = append(f.sends, msg)
	return "msg-1", nil
}

func (f *fakeSender) SendInternal(ctx context.Context, ticketID, body string) (string, error) {
	f.notes = append(f.notes, body)
	return "note-1", nil
}

type fixture struct {
	db     *database.Client
	tr     *Tracker
	sender *fakeSender
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	cfg := &config.Config{
		SupplierReminderHours: 24,
		SignatureLines:        []string{"Shipdesk Support Team"},
	}
	sender := &fakeSender{}
	tr := New(db, cfg, format.NewFormatter(cfg), sender, nil)

	po := "PO-9911"
	_, err := db.TicketState.Create().
		SetID("T-1001").
		SetTicketID("backend-42").
		SetCustomerEmail("jane@customer.example").
		SetSupplierEmail("warehouse@acme.example").
		SetPurchaseOrderNumber(po).
		Save(context.Background())
	require.NoError(t, err)

	return &fixture{db: db, tr: tr, sender: sender}
}

func (f *fixture) openObligations(t *testing.T) int {
	t.Helper()
	n, err := f.db.SupplierMessage.Query().
		Where(suppliermessage.ResponseReceived(false)).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestRecordSentOpensObligation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tr.RecordSent(ctx, "warehouse@acme.example", "T-1001"))

	sm, err := f.db.SupplierMessage.Query().Only(ctx)
	require.NoError(t, err)
	assert.False(t, sm.ResponseReceived)
	assert.Nil(t, sm.ReminderSentAt)
	assert.WithinDuration(t, sm.SentAt.Add(24*time.Hour), sm.NextCheckAt, time.Second)
}

func TestRecordSentDuplicateIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tr.RecordSent(ctx, "warehouse@acme.example", "T-1001"))
	// Second send while the obligation is open hits the partial unique
	// index and is swallowed.
	require.NoError(t, f.tr.RecordSent(ctx, "warehouse@acme.example", "T-1001"))
	assert.Equal(t, 1, f.openObligations(t))
}

func TestRecordSentReopensAfterResponse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tr.RecordSent(ctx, "warehouse@acme.example", "T-1001"))
	require.NoError(t, f.tr.MarkResponseReceived(ctx, "T-1001"))
	require.NoError(t, f.tr.RecordSent(ctx, "warehouse@acme.example", "T-1001"))

	total, err := f.db.SupplierMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, f.openObligations(t))
}

func TestRecordSentRequiresIdentifiers(t *testing.T) {
	f := newFixture(t)
	assert.Error(t, f.tr.RecordSent(context.Background(), "", "T-1001"))
	assert.Error(t, f.tr.RecordSent(context.Background(), "warehouse@acme.example", ""))
}

func TestMarkResponseReceivedClosesAllOnTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tr.RecordSent(ctx, "warehouse@acme.example", "T-1001"))
	require.NoError(t, f.tr.RecordSent(ctx, "returns@acme.example", "T-1001"))
	require.Equal(t, 2, f.openObligations(t))

	require.NoError(t, f.tr.MarkResponseReceived(ctx, "T-1001"))
	assert.Zero(t, f.openObligations(t))
}

func overdue(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.tr.RecordSent(ctx, "warehouse@acme.example", "T-1001"))
	n, err := f.db.SupplierMessage.Update().
		SetNextCheckAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSweepSendsSingleReminder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	overdue(t, f)

	require.NoError(t, f.tr.Sweep(ctx))

	require.Len(t, f.sender.sends, 1)
	msg := f.sender.sends[0]
	assert.Equal(t, "warehouse@acme.example", msg.To)
	assert.Contains(t, msg.Body, "T-1001")
	assert.Contains(t, msg.Body, "We have not yet received a reply")
	assert.Contains(t, msg.Body, "PO-9911")

	sm, err := f.db.SupplierMessage.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, sm.ReminderSentAt)

	// Internal note documents the reminder.
	require.Len(t, f.sender.notes, 1)
	assert.Contains(t, f.sender.notes[0], "warehouse@acme.example")

	// A second sweep finds nothing to claim.
	require.NoError(t, f.tr.Sweep(ctx))
	assert.Len(t, f.sender.sends, 1)
}

func TestSweepIgnoresNotYetDue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.tr.RecordSent(ctx, "warehouse@acme.example", "T-1001"))

	require.NoError(t, f.tr.Sweep(ctx))
	assert.Empty(t, f.sender.sends)
}

func TestSweepIgnoresAnsweredObligations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	overdue(t, f)
	require.NoError(t, f.tr.MarkResponseReceived(ctx, "T-1001"))

	require.NoError(t, f.tr.Sweep(ctx))
	assert.Empty(t, f.sender.sends)
}

func TestSweepSkipsTicketsWithoutBackendID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.db.TicketState.Create().
		SetID("LOCAL-1").
		SetCustomerEmail("joe@customer.example").
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, f.tr.RecordSent(ctx, "warehouse@acme.example", "LOCAL-1"))
	_, err = f.db.SupplierMessage.Update().
		Where(suppliermessage.TicketNumberEQ("LOCAL-1")).
		SetNextCheckAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.tr.Sweep(ctx))
	assert.Empty(t, f.sender.sends)
}
