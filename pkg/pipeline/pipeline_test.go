package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/processedemail"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/llm"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/prompt"
	"github.com/shipdesk/shipdesk/pkg/ticket"
	testdb "github.com/shipdesk/shipdesk/test/database"
)

type fakeAnalyzer struct {
	mu     sync.Mutex
	result *models.AnalysisResult
	err    error
	calls  int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, systemPrompt, userPrompt string) (*models.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeBackend struct {
	mu        sync.Mutex
	views     map[string]*ticket.View // keyed by lookup value
	upserts   []ticket.Header
	notes     []string
	lookupErr error
}

func (f *fakeBackend) get(key string) (*ticket.View, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if v, ok := f.views[key]; ok {
		return v, nil
	}
	return nil, ticket.ErrNotFound
}

func (f *fakeBackend) GetByTicket(ctx context.Context, ticketNumber string) (*ticket.View, error) {
	return f.get(ticketNumber)
}

func (f *fakeBackend) GetByOrder(ctx context.Context, orderNumber string) (*ticket.View, error) {
	return f.get(orderNumber)
}

func (f *fakeBackend) GetByPurchaseOrder(ctx context.Context, po string) (*ticket.View, error) {
	return f.get(po)
}

func (f *fakeBackend) Upsert(ctx context.Context, header ticket.Header) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, header)
	// The backend indexes the new ticket so a follow-up order lookup finds it.
	header.TicketID = "backend-42"
	if header.TicketNumber == "" {
		header.TicketNumber = "T-NEW-" + header.OrderNumber
	}
	f.views[header.OrderNumber] = &ticket.View{Header: header}
	return header.TicketID, nil
}

func (f *fakeBackend) SendInternal(ctx context.Context, ticketID, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, body)
	return "note-" + uuid.New().String()[:8], nil
}

type fakeDispatcher struct {
	mu    sync.Mutex
	calls int
	last  *models.AnalysisResult
	err   error
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, t *ent.TicketState, decision *ent.AIDecision, result *models.AnalysisResult, built *prompt.Output) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = result
	return f.err
}

type fakeResponseTracker struct {
	mu     sync.Mutex
	closed []string
}

func (f *fakeResponseTracker) MarkResponseReceived(ctx context.Context, ticketNumber string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, ticketNumber)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Phase:               config.PhaseShadow,
		ConfidenceThreshold: 0.75,
		MaxIngestRetries:    4,
		MaxSendRetries:      9,
		InternalAgents:      []string{"ops@shipdesk.example"},
	}
}

type pipelineFixture struct {
	db       *database.Client
	pipe     *Pipeline
	analyzer *fakeAnalyzer
	backend  *fakeBackend
	dispatch *fakeDispatcher
	tracker  *fakeResponseTracker
}

func newFixture(t *testing.T) *pipelineFixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	cfg := testConfig()
	analyzer := &fakeAnalyzer{result: &models.AnalysisResult{
		Intent:           "delivery_delay",
		Confidence:       0.9,
		CustomerResponse: "Your parcel is on its way.",
		Summary:          "Customer asks about a late delivery.",
	}}
	backend := &fakeBackend{views: map[string]*ticket.View{}}
	dispatcher := &fakeDispatcher{}
	tracker := &fakeResponseTracker{}
	pipe := New(db, cfg, prompt.NewBuilder(cfg), analyzer, backend, dispatcher, tracker, nil)
	return &pipelineFixture{db: db, pipe: pipe, analyzer: analyzer, backend: backend, dispatch: dispatcher, tracker: tracker}
}

func (f *pipelineFixture) seedTicket(t *testing.T, ticketNumber string) *ent.TicketState {
	t.Helper()
	ts, err := f.db.TicketState.Create().
		SetID(ticketNumber).
		SetTicketID("backend-42").
		SetCustomerEmail("jane@customer.example").
		Save(context.Background())
	require.NoError(t, err)
	return ts
}

func inboundFromJane(subject string) *models.InboundEmail {
	return &models.InboundEmail{
		SourceMessageID: "gm-" + uuid.New().String()[:8],
		ThreadID:        "thread-1",
		From:            "jane@customer.example",
		Subject:         subject,
		BodyPlain:       "Guten Tag, meine Bestellung ist nicht angekommen. Bitte prüfen Sie das.",
		ReceivedAt:      time.Now(),
	}
}

func TestProcessHappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")

	inbound := inboundFromJane("Re: Ticket T-1001")
	result, err := f.pipe.Process(ctx, inbound)
	require.NoError(t, err)

	assert.Equal(t, OutcomeOK, result.Outcome)
	assert.Equal(t, "T-1001", result.TicketNumber)
	assert.NotEmpty(t, result.DecisionID)
	assert.Equal(t, 1, f.analyzer.calls)
	assert.Equal(t, 1, f.dispatch.calls)

	// The decision is persisted with the detected language stuck on the ticket.
	decision, err := f.db.AIDecision.Get(ctx, result.DecisionID)
	require.NoError(t, err)
	assert.Equal(t, "delivery_delay", decision.DetectedIntent)
	assert.Equal(t, "de", decision.DetectedLanguage)

	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.Equal(t, "de", ts.Language)

	// Inbound message recorded in local history.
	n, err := ts.QueryMessages().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Terminal ledger entry.
	pe, err := f.db.ProcessedEmail.Query().
		Where(processedemail.SourceMessageIDEQ(inbound.SourceMessageID)).
		Only(ctx)
	require.NoError(t, err)
	assert.True(t, pe.Success)
}

func TestProcessIdempotencyGate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")

	inbound := inboundFromJane("Re: Ticket T-1001")
	first, err := f.pipe.Process(ctx, inbound)
	require.NoError(t, err)
	require.Equal(t, OutcomeOK, first.Outcome)

	// Same source message id again: skipped without any analysis.
	second, err := f.pipe.Process(ctx, inbound)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, second.Outcome)
	assert.Equal(t, 1, f.analyzer.calls)

	n, err := f.db.AIDecision.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestProcessPolicyBlockOnUnknownSender(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")

	inbound := &models.InboundEmail{
		SourceMessageID: "gm-stranger",
		From:            "stranger@nowhere.example",
		Subject:         "Ticket T-1001",
		BodyPlain:       "Hello, what is the status?",
	}
	result, err := f.pipe.Process(ctx, inbound)
	require.NoError(t, err)
	assert.Equal(t, OutcomeOK, result.Outcome)

	// No analysis ran; a NO_DRAFT decision was recorded instead.
	assert.Equal(t, 0, f.analyzer.calls)
	assert.Equal(t, 0, f.dispatch.calls)

	decision, err := f.db.AIDecision.Get(ctx, result.DecisionID)
	require.NoError(t, err)
	assert.Equal(t, "identity_unresolved", decision.DetectedIntent)
	assert.True(t, models.IsNoDraft(decision.CustomerDraft))

	// The clarification note reached the backend.
	require.Len(t, f.backend.notes, 1)
	assert.Contains(t, f.backend.notes[0], "stranger@nowhere.example")

	// The message is settled on the ledger; a retry skips it.
	again, err := f.pipe.Process(ctx, inbound)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, again.Outcome)
}

func TestProcessEscalationIsSticky(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")
	f.analyzer.result.RequiresEscalation = true
	f.analyzer.result.Summary = "Customer demands a refund and threatens chargeback."

	_, err := f.pipe.Process(ctx, inboundFromJane("Ticket T-1001"))
	require.NoError(t, err)

	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.True(t, ts.Escalated)
	assert.Equal(t, ticketstate.StatusEscalated, ts.Status)
	require.NotNil(t, ts.EscalationReason)
	firstAt := ts.EscalationAt

	// A second escalating message does not rewrite the escalation.
	_, err = f.pipe.Process(ctx, inboundFromJane("Ticket T-1001 again"))
	require.NoError(t, err)
	ts, err = f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	assert.Equal(t, firstAt, ts.EscalationAt)
}

func TestProcessRetryableLeavesNoLedgerEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")
	f.analyzer.err = llm.ErrUnavailable

	inbound := inboundFromJane("Ticket T-1001")
	_, err := f.pipe.Process(ctx, inbound)
	require.Error(t, err)
	assert.True(t, IsRetryable(err))

	exists, err := f.db.ProcessedEmail.Query().
		Where(processedemail.SourceMessageIDEQ(inbound.SourceMessageID)).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists, "retryable failures must not settle the idempotency ledger")
}

func TestProcessSchemaErrorIsPermanent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")
	f.analyzer.err = &models.SchemaError{Field: "intent", Reason: "is required"}

	inbound := inboundFromJane("Ticket T-1001")
	_, err := f.pipe.Process(ctx, inbound)
	require.Error(t, err)
	assert.False(t, IsRetryable(err))

	pe, err := f.db.ProcessedEmail.Query().
		Where(processedemail.SourceMessageIDEQ(inbound.SourceMessageID)).
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, pe.Success)
	require.NotNil(t, pe.ErrorMessage)
	assert.Contains(t, *pe.ErrorMessage, "intent")
}

func TestProcessMirrorsUpstreamTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.backend.views["T-2002"] = &ticket.View{
		Header: ticket.Header{
			TicketID:      "backend-77",
			TicketNumber:  "T-2002",
			CustomerEmail: "jane@customer.example",
			SupplierEmail: "warehouse@acme.example",
			OrderNumber:   "99887766",
		},
		History: []ticket.HistoryMessage{
			{MessageID: "up-1", Direction: "inbound", Role: "customer",
				Sender: "jane@customer.example", Body: "Where is order 99887766?", At: time.Now().Add(-time.Hour)},
		},
	}

	result, err := f.pipe.Process(ctx, inboundFromJane("Re: Ticket T-2002"))
	require.NoError(t, err)
	assert.Equal(t, "T-2002", result.TicketNumber)

	ts, err := f.db.TicketState.Get(ctx, "T-2002")
	require.NoError(t, err)
	assert.Equal(t, "backend-77", ts.TicketID)
	assert.Equal(t, "warehouse@acme.example", ts.SupplierEmail)
	require.NotNil(t, ts.OrderNumber)
	assert.Equal(t, "99887766", *ts.OrderNumber)

	// Upstream history plus the new inbound.
	n, err := ts.QueryMessages().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// A second message hits the local shadow and adds only itself.
	_, err = f.pipe.Process(ctx, inboundFromJane("Ticket T-2002 nochmal"))
	require.NoError(t, err)
	n, err = ts.QueryMessages().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestProcessFilesLocalTicketWithoutReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inbound := &models.InboundEmail{
		SourceMessageID: "gm-noref",
		From:            "jane@customer.example",
		Subject:         "General question",
		BodyPlain:       "Do you ship to Austria?",
	}
	result, err := f.pipe.Process(ctx, inbound)
	require.NoError(t, err)

	ts, err := f.db.TicketState.Get(ctx, result.TicketNumber)
	require.NoError(t, err)
	assert.Contains(t, ts.ID, localTicketPrefix)
	assert.Equal(t, ticketstate.StatusImported, ts.Status)
	assert.Equal(t, "jane@customer.example", ts.CustomerEmail)

	// Content is preserved even without correlation.
	n, err := ts.QueryMessages().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAnalyzeTicketPreview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")

	built, decision, err := f.pipe.AnalyzeTicket(ctx, "T-1001", nil, true)
	require.NoError(t, err)
	assert.Nil(t, decision)
	require.NotNil(t, built)
	assert.NotEmpty(t, built.UserPrompt)
	assert.Equal(t, 0, f.analyzer.calls)

	// Preview persists nothing.
	n, err := f.db.AIDecision.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAnalyzeTicketRun(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")

	built, decision, err := f.pipe.AnalyzeTicket(ctx, "T-1001", nil, false)
	require.NoError(t, err)
	require.NotNil(t, built)
	require.NotNil(t, decision)
	assert.Equal(t, "delivery_delay", decision.DetectedIntent)
	assert.Equal(t, aidecision.PhaseShadow, decision.Phase)
	assert.Equal(t, 1, f.dispatch.calls)
}

func TestAnalyzeTicketNotFound(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.pipe.AnalyzeTicket(context.Background(), "T-MISSING", nil, false)
	require.Error(t, err)
	assert.True(t, ent.IsNotFound(err))
}

func TestProcessSupplierReplyClosesObligation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.db.TicketState.Create().
		SetID("T-1001").
		SetTicketID("backend-42").
		SetCustomerEmail("jane@customer.example").
		SetSupplierEmail("warehouse@acme.example").
		Save(ctx)
	require.NoError(t, err)

	inbound := &models.InboundEmail{
		SourceMessageID: "gm-supplier-1",
		From:            "warehouse@acme.example",
		Subject:         "Re: Ticket T-1001",
		BodyPlain:       "Replacement ships tomorrow, tracking number follows.",
	}
	result, err := f.pipe.Process(ctx, inbound)
	require.NoError(t, err)
	assert.Equal(t, OutcomeOK, result.Outcome)
	assert.Equal(t, []string{"T-1001"}, f.tracker.closed)

	// A customer message on the same ticket does not touch obligations.
	_, err = f.pipe.Process(ctx, inboundFromJane("Re: Ticket T-1001"))
	require.NoError(t, err)
	assert.Equal(t, []string{"T-1001"}, f.tracker.closed)
}

func TestProcessDispatchFailureSettlesLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")
	f.dispatch.err = &RetryableError{Err: errors.New("backend returned 502")}

	inbound := inboundFromJane("Ticket T-1001")
	result, err := f.pipe.Process(ctx, inbound)
	require.Error(t, err)
	assert.False(t, IsRetryable(err), "a failure after the decision is persisted must not re-admit the message")
	require.NotNil(t, result)
	assert.Equal(t, OutcomeFailed, result.Outcome)

	pe, err := f.db.ProcessedEmail.Query().
		Where(processedemail.SourceMessageIDEQ(inbound.SourceMessageID)).
		Only(ctx)
	require.NoError(t, err)
	assert.False(t, pe.Success)

	// A redelivery skips instead of appending a second decision.
	again, err := f.pipe.Process(ctx, inbound)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, again.Outcome)
	assert.Equal(t, 1, f.analyzer.calls)

	n, err := f.db.AIDecision.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestProcessConcurrentSameOrderYieldsOneTicket(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	errCh := make(chan error, 2)
	var wg sync.WaitGroup
	for i := range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inbound := &models.InboundEmail{
				SourceMessageID: fmt.Sprintf("gm-race-%d", i),
				From:            "jane@customer.example",
				Subject:         "Order 55667788 missing",
				BodyPlain:       "My order never arrived.",
			}
			_, err := f.pipe.Process(ctx, inbound)
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}

	n, err := f.db.TicketState.Query().
		Where(ticketstate.OrderNumberEQ("55667788")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "both deliveries must land on one ticket")

	pn, err := f.db.ProcessedEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pn)
}

func TestProcessDuplicateDeliveryRace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedTicket(t, "T-1001")

	inbound := inboundFromJane("Re: Ticket T-1001")
	type processed struct {
		result *Result
		err    error
	}
	outCh := make(chan processed, 2)
	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := f.pipe.Process(ctx, inbound)
			outCh <- processed{result: r, err: err}
		}()
	}
	wg.Wait()
	close(outCh)

	var outcomes []Outcome
	for out := range outCh {
		require.NoError(t, out.err)
		outcomes = append(outcomes, out.result.Outcome)
	}
	assert.ElementsMatch(t, []Outcome{OutcomeOK, OutcomeSkipped}, outcomes)

	// Exactly one decision, one ledger row, one history row, one dispatch.
	n, err := f.db.AIDecision.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pn, err := f.db.ProcessedEmail.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pn)

	ts, err := f.db.TicketState.Get(ctx, "T-1001")
	require.NoError(t, err)
	mn, err := ts.QueryMessages().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, mn)

	assert.Equal(t, 1, f.dispatch.calls)
}
