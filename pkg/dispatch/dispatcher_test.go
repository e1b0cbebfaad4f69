package dispatch

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/format"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/prompt"
	"github.com/shipdesk/shipdesk/pkg/ticket"
	testdb "github.com/shipdesk/shipdesk/test/database"
)

type sentCall struct {
	channel  string
	ticketID string
	msg      ticket.OutboundMessage
}

type fakeSender struct {
	calls   []sentCall
	sendErr error // returned by SendCustomer/SendSupplier when set
	notes   []string
}

func (f *fakeSender) send(channel, ticketID string, msg ticket.OutboundMessage) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.calls = append(f.calls, sentCall{channel: channel, ticketID: ticketID, msg: msg})
	return uuid.New().String()[:8], nil
}

func (f *fakeSender) SendCustomer(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error) {
	return f.send("customer", ticketID, msg)
}

func (f *fakeSender) SendSupplier(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error) {
	return f.send("supplier", ticketID, msg)
}

func (f *fakeSender) SendInternal(ctx context.Context, ticketID, body string) (string, error) {
	f.notes = append(f.notes, body)
	return "note-1", nil
}

type fakeTracker struct {
	recorded []string // "supplier|ticket"
}

func (f *fakeTracker) RecordSent(ctx context.Context, supplierEmail, ticketNumber string) error {
	f.recorded = append(f.recorded, supplierEmail+"|"+ticketNumber)
	return nil
}

func testConfig(phase config.Phase) *config.Config {
	return &config.Config{
		Phase:               phase,
		ConfidenceThreshold: 0.75,
		SignatureLines:      []string{"Shipdesk Support Team"},
		AIDisclaimer:        map[string]string{"en": "Drafted with AI assistance."},
	}
}

type fixture struct {
	db      *database.Client
	d       *Dispatcher
	sender  *fakeSender
	tracker *fakeTracker
	ticket  *ent.TicketState
}

func newFixture(t *testing.T, phase config.Phase) *fixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	sender := &fakeSender{}
	tracker := &fakeTracker{}
	cfg := testConfig(phase)
	d := New(db, cfg, format.NewFormatter(cfg), sender, tracker, nil)

	ts, err := db.TicketState.Create().
		SetID("T-1001").
		SetTicketID("backend-42").
		SetCustomerEmail("jane@customer.example").
		SetSupplierEmail("warehouse@acme.example").
		SetOrderNumber("44556677").
		Save(context.Background())
	require.NoError(t, err)

	return &fixture{db: db, d: d, sender: sender, tracker: tracker, ticket: ts}
}

func (f *fixture) decision(t *testing.T, confidence float64) *ent.AIDecision {
	t.Helper()
	d, err := f.db.AIDecision.Create().
		SetID(uuid.New().String()).
		SetTicketNumber(f.ticket.ID).
		SetDetectedLanguage("en").
		SetDetectedIntent("delivery_delay").
		SetConfidence(confidence).
		SetCustomerDraft("draft").
		SetPhase("shadow").
		Save(context.Background())
	require.NoError(t, err)
	return d
}

func analysis(confidence float64) *models.AnalysisResult {
	return &models.AnalysisResult{
		Intent:           "delivery_delay",
		Confidence:       confidence,
		CustomerResponse: "We checked with the carrier and your parcel ships tomorrow.",
		SupplierAction:   &models.SupplierAction{Action: "request_eta", Message: "Please confirm the reshipment ETA."},
		Summary:          "Late delivery, reshipment requested.",
	}
}

func emptyRoster() *prompt.Output {
	return &prompt.Output{Roster: prompt.Roster{}}
}

func TestShadowNeverSends(t *testing.T) {
	f := newFixture(t, config.PhaseShadow)
	ctx := context.Background()

	err := f.d.Dispatch(ctx, f.ticket, f.decision(t, 0.95), analysis(0.95), emptyRoster())
	require.NoError(t, err)

	// Both drafts queued, nothing sent, one summary note.
	assert.Empty(t, f.sender.calls)
	require.Len(t, f.sender.notes, 1)
	assert.Contains(t, f.sender.notes[0], "AI triage (shadow)")

	pending, err := f.db.PendingMessage.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	for _, pm := range pending {
		assert.Equal(t, pendingmessage.StatusPending, pm.Status)
	}

	// Ticket status untouched in shadow.
	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.Equal(t, ticketstate.StatusNew, ts.Status)
}

func TestAssistedQueuesWithoutEscalationWhenConfident(t *testing.T) {
	f := newFixture(t, config.PhaseAssisted)
	ctx := context.Background()

	err := f.d.Dispatch(ctx, f.ticket, f.decision(t, 0.9), analysis(0.9), emptyRoster())
	require.NoError(t, err)

	assert.Empty(t, f.sender.calls)
	n, err := f.db.PendingMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.False(t, ts.Escalated)
}

func TestAssistedEscalatesOnLowConfidence(t *testing.T) {
	f := newFixture(t, config.PhaseAssisted)
	ctx := context.Background()

	err := f.d.Dispatch(ctx, f.ticket, f.decision(t, 0.4), analysis(0.4), emptyRoster())
	require.NoError(t, err)

	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.True(t, ts.Escalated)
	assert.Equal(t, ticketstate.StatusEscalated, ts.Status)
	require.NotEmpty(t, f.sender.notes)
	assert.Contains(t, f.sender.notes[len(f.sender.notes)-1], "escalation")
}

func TestAutonomousSendsAndAdvances(t *testing.T) {
	f := newFixture(t, config.PhaseAutonomous)
	ctx := context.Background()

	err := f.d.Dispatch(ctx, f.ticket, f.decision(t, 0.95), analysis(0.95), emptyRoster())
	require.NoError(t, err)

	require.Len(t, f.sender.calls, 2)
	assert.Equal(t, "customer", f.sender.calls[0].channel)
	assert.Equal(t, "jane@customer.example", f.sender.calls[0].msg.To)
	assert.Equal(t, "supplier", f.sender.calls[1].channel)

	// Supplier obligation tracked.
	assert.Equal(t, []string{"warehouse@acme.example|T-1001"}, f.tracker.recorded)

	// Outbound history rows recorded.
	n, err := f.db.TicketMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// Supplier draft was sent last; ticket awaits the supplier.
	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.Equal(t, ticketstate.StatusAwaitingSupplier, ts.Status)

	// Nothing queued for approval.
	pending, err := f.db.PendingMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
}

func TestAutonomousFallsBackToAssistedOnLowConfidence(t *testing.T) {
	f := newFixture(t, config.PhaseAutonomous)
	ctx := context.Background()

	err := f.d.Dispatch(ctx, f.ticket, f.decision(t, 0.5), analysis(0.5), emptyRoster())
	require.NoError(t, err)

	assert.Empty(t, f.sender.calls, "low confidence must never send directly")
	n, err := f.db.PendingMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.True(t, ts.Escalated)
}

func TestAutonomousSendFailureFilesFailedDraft(t *testing.T) {
	f := newFixture(t, config.PhaseAutonomous)
	ctx := context.Background()
	f.sender.sendErr = &ticket.TransientError{Err: context.DeadlineExceeded, Attempts: 3}

	err := f.d.Dispatch(ctx, f.ticket, f.decision(t, 0.95), analysis(0.95), emptyRoster())
	require.NoError(t, err)

	failed, err := f.db.PendingMessage.Query().
		Where(pendingmessage.StatusEQ(pendingmessage.StatusFailed)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, failed, 2)
	for _, pm := range failed {
		assert.Equal(t, 3, pm.RetryCount, "transport attempts carry into the retry budget")
		require.NotNil(t, pm.LastError)
		require.NotNil(t, pm.NextAttemptAt)
	}

	// No outbound history, no status advance.
	n, err := f.db.TicketMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.Equal(t, ticketstate.StatusNew, ts.Status)
}

func TestSupplierLeakBlocksCustomerDraft(t *testing.T) {
	f := newFixture(t, config.PhaseShadow)
	ctx := context.Background()

	result := analysis(0.9)
	result.CustomerResponse = "We asked warehouse@acme.example to reship your parcel."
	built := &prompt.Output{Roster: prompt.Roster{Participants: []prompt.Participant{
		{Address: "warehouse@acme.example", Role: prompt.RoleSupplier},
	}}}

	err := f.d.Dispatch(ctx, f.ticket, f.decision(t, 0.9), result, built)
	require.NoError(t, err)

	// Customer draft blocked; only the supplier draft queued.
	pending, err := f.db.PendingMessage.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, pendingmessage.KindSupplier, pending[0].Kind)

	// The block is reported as an internal note.
	require.NotEmpty(t, f.sender.notes)
	assert.Contains(t, f.sender.notes[0], "AI draft blocked")
}

func TestNoDraftSentinelQueuesNothing(t *testing.T) {
	f := newFixture(t, config.PhaseShadow)
	ctx := context.Background()

	result := analysis(0.9)
	result.CustomerResponse = models.NoDraft("Customer requested human contact")
	result.SupplierAction = nil

	err := f.d.Dispatch(ctx, f.ticket, f.decision(t, 0.9), result, emptyRoster())
	require.NoError(t, err)

	n, err := f.db.PendingMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
