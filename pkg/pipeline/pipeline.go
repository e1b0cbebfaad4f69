// Package pipeline turns one inbound e-mail into a persisted decision and a
// phase-gated dispatch. Every step is idempotent or guarded so that a crash
// mid-message never double-sends and never loses content.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/processedemail"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/alerts"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/langdetect"
	"github.com/shipdesk/shipdesk/pkg/metrics"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/prompt"
	"github.com/shipdesk/shipdesk/pkg/ticket"
)

// Analyzer runs one LLM analysis. Satisfied by *llm.Client.
type Analyzer interface {
	Analyze(ctx context.Context, systemPrompt, userPrompt string) (*models.AnalysisResult, error)
}

// TicketBackend is the slice of the ticketing client the pipeline needs.
// Satisfied by *ticket.Client.
type TicketBackend interface {
	GetByTicket(ctx context.Context, ticketNumber string) (*ticket.View, error)
	GetByOrder(ctx context.Context, orderNumber string) (*ticket.View, error)
	GetByPurchaseOrder(ctx context.Context, po string) (*ticket.View, error)
	Upsert(ctx context.Context, header ticket.Header) (string, error)
	SendInternal(ctx context.Context, ticketID, body string) (string, error)
}

// Dispatcher routes a persisted decision according to the deployment phase.
// Satisfied by *dispatch.Dispatcher.
type Dispatcher interface {
	Dispatch(ctx context.Context, t *ent.TicketState, decision *ent.AIDecision, result *models.AnalysisResult, built *prompt.Output) error
}

// ResponseTracker closes supplier response obligations. Satisfied by
// *supplier.Tracker.
type ResponseTracker interface {
	MarkResponseReceived(ctx context.Context, ticketNumber string) error
}

// Outcome is the terminal result of processing one inbound message.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Result reports what processing one message produced.
type Result struct {
	Outcome      Outcome
	TicketNumber string
	DecisionID   string
}

// Pipeline is the per-message workflow. Safe for concurrent use; messages
// for the same ticket are serialized on an in-process lock plus the
// session-scoped Postgres advisory lock, so replicas never interleave work
// on one ticket either.
type Pipeline struct {
	db       *database.Client
	builder  *prompt.Builder
	analyzer Analyzer
	tickets  TicketBackend
	dispatch Dispatcher
	tracker  ResponseTracker
	alerts   *alerts.Service
	cfg      *config.Config
	log      *slog.Logger

	locks ticketLocks
	now   func() time.Time
}

// New wires the pipeline.
func New(db *database.Client, cfg *config.Config, builder *prompt.Builder, analyzer Analyzer, tickets TicketBackend, dispatcher Dispatcher, tracker ResponseTracker, alertSvc *alerts.Service) *Pipeline {
	return &Pipeline{
		db:       db,
		builder:  builder,
		analyzer: analyzer,
		tickets:  tickets,
		dispatch: dispatcher,
		tracker:  tracker,
		alerts:   alertSvc,
		cfg:      cfg,
		log:      slog.Default().With("component", "pipeline"),
		now:      time.Now,
	}
}

// Process runs the full workflow for one inbound message:
// idempotency gate, reference extraction, correlation, history persistence,
// prompt build, analysis, decision persistence, escalation, dispatch, and
// the terminal ProcessedEmail record.
//
// A RetryableError means no ProcessedEmail was written; the caller should
// reschedule. Any other error is permanent and already recorded.
func (p *Pipeline) Process(ctx context.Context, inbound *models.InboundEmail) (*Result, error) {
	if inbound == nil || inbound.SourceMessageID == "" {
		return nil, fmt.Errorf("inbound message requires a source message id")
	}
	log := p.log.With("source_message_id", inbound.SourceMessageID)

	done, err := p.db.ProcessedEmail.Query().
		Where(processedemail.SourceMessageIDEQ(inbound.SourceMessageID)).
		Exist(ctx)
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("idempotency check: %w", err)}
	}
	if done {
		log.Info("Message already processed, skipping")
		metrics.EmailsProcessed.WithLabelValues("skipped").Inc()
		return &Result{Outcome: OutcomeSkipped}, nil
	}

	refs := ExtractRefs(inbound.Subject, inbound.BodyPlain)
	t, err := p.correlate(ctx, refs, inbound)
	if err != nil {
		return p.finish(ctx, inbound, "", err)
	}
	log = log.With("ticket_number", t.ID)

	unlock := p.locks.lock(t.ID)
	defer unlock()

	release, err := p.db.LockTicket(ctx, t.ID)
	if err != nil {
		return nil, &RetryableError{Err: err}
	}
	defer release()

	// Re-check under the lock: a concurrent delivery of the same message on
	// another replica may have settled the ledger during correlation.
	done, err = p.db.ProcessedEmail.Query().
		Where(processedemail.SourceMessageIDEQ(inbound.SourceMessageID)).
		Exist(ctx)
	if err != nil {
		return nil, &RetryableError{Err: fmt.Errorf("idempotency re-check: %w", err)}
	}
	if done {
		log.Info("Message settled by a concurrent worker, skipping")
		metrics.EmailsProcessed.WithLabelValues("skipped").Inc()
		return &Result{Outcome: OutcomeSkipped, TicketNumber: t.ID}, nil
	}

	if err := p.persistInbound(ctx, t, inbound); err != nil {
		return p.finish(ctx, inbound, t.ID, err)
	}

	history, err := t.QueryMessages().
		Order(ent.Asc(ticketmessage.FieldAt)).
		All(ctx)
	if err != nil {
		return p.finish(ctx, inbound, t.ID, &RetryableError{Err: fmt.Errorf("load history: %w", err)})
	}

	directory, err := p.db.Supplier.Query().All(ctx)
	if err != nil {
		return p.finish(ctx, inbound, t.ID, &RetryableError{Err: fmt.Errorf("load supplier directory: %w", err)})
	}

	built, err := p.builder.Build(prompt.Input{Ticket: t, History: history, Inbound: inbound, Directory: directory})
	if err != nil {
		var ambiguous *prompt.AmbiguousIdentityError
		if errors.As(err, &ambiguous) {
			return p.policyBlock(ctx, t, inbound, ambiguous)
		}
		return p.finish(ctx, inbound, t.ID, err)
	}

	// A supplier reply closes the reminder obligation, whatever the
	// analysis later decides.
	if p.tracker != nil && built.Roster.Lookup(inbound.From) == prompt.RoleSupplier {
		if err := p.tracker.MarkResponseReceived(ctx, t.ID); err != nil {
			log.Warn("Failed to close supplier obligations", "error", err)
		}
	}

	start := p.now()
	result, err := p.analyzer.Analyze(ctx, built.SystemPrompt, built.UserPrompt)
	p.observeAnalyze(start)
	if err != nil {
		return p.finish(ctx, inbound, t.ID, classify(err))
	}

	decision, err := p.persistDecision(ctx, t, inbound, result)
	if err != nil {
		return p.finish(ctx, inbound, t.ID, &RetryableError{Err: err})
	}
	log.Info("Decision persisted",
		"decision_id", decision.ID, "intent", result.Intent,
		"confidence", result.Confidence, "requires_escalation", result.RequiresEscalation)

	if result.RequiresEscalation {
		if t, err = p.escalate(ctx, t, result); err != nil {
			return p.settle(inbound, t, decision, err)
		}
	}

	if err := p.dispatch.Dispatch(ctx, t, decision, result, built); err != nil {
		return p.settle(inbound, t, decision, err)
	}

	if _, err := p.finish(ctx, inbound, t.ID, nil); err != nil {
		return nil, err
	}
	return &Result{Outcome: OutcomeOK, TicketNumber: t.ID, DecisionID: decision.ID}, nil
}

// persistInbound records the triggering message into local history, keyed by
// source message id so a retried message never duplicates a row.
func (p *Pipeline) persistInbound(ctx context.Context, t *ent.TicketState, inbound *models.InboundEmail) error {
	exists, err := p.db.TicketMessage.Query().
		Where(ticketmessage.SourceMessageIDEQ(inbound.SourceMessageID)).
		Exist(ctx)
	if err != nil {
		return &RetryableError{Err: fmt.Errorf("inbound dedup check: %w", err)}
	}
	if exists {
		return nil
	}

	at := inbound.ReceivedAt
	if at.IsZero() {
		at = p.now()
	}
	create := p.db.TicketMessage.Create().
		SetID(uuid.New().String()).
		SetTicketNumber(t.ID).
		SetDirection(ticketmessage.DirectionInbound).
		SetSender(strings.ToLower(inbound.From)).
		SetSubject(inbound.Subject).
		SetBody(inbound.BodyPlain).
		SetSourceMessageID(inbound.SourceMessageID).
		SetAt(at)
	if len(inbound.To) > 0 {
		create.SetRecipient(strings.ToLower(inbound.To[0]))
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return &RetryableError{Err: fmt.Errorf("persist inbound message: %w", err)}
	}
	return nil
}

// policyBlock handles an inbound whose sender no rule can classify: no
// analysis runs, a NO_DRAFT decision is recorded, and an internal
// clarification note asks an operator to resolve the identity.
func (p *Pipeline) policyBlock(ctx context.Context, t *ent.TicketState, inbound *models.InboundEmail, ambiguous *prompt.AmbiguousIdentityError) (*Result, error) {
	reason := fmt.Sprintf("Sender identity for %s could not be resolved", ambiguous.Address)

	decision, err := p.db.AIDecision.Create().
		SetID(uuid.New().String()).
		SetTicketNumber(t.ID).
		SetAt(p.now()).
		SetDetectedIntent("identity_unresolved").
		SetConfidence(0).
		SetRecommendedAction("clarify_identity").
		SetCustomerDraft(models.NoDraft(reason)).
		SetPhase(aidecision.Phase(p.cfg.Phase)).
		SetSummary(reason).
		Save(ctx)
	if err != nil {
		return p.finish(ctx, inbound, t.ID, &RetryableError{Err: fmt.Errorf("persist policy-block decision: %w", err)})
	}
	metrics.Decisions.WithLabelValues("identity_unresolved").Inc()

	note := fmt.Sprintf("Identity check needed: a message from %s on ticket %s matched no known customer, supplier, or agent. Please classify the sender and re-run the analysis.",
		ambiguous.Address, t.ID)
	if t.TicketID != "" {
		if _, err := p.tickets.SendInternal(ctx, t.TicketID, note); err != nil {
			p.log.Warn("Failed to post clarification note", "ticket_number", t.ID, "error", err)
		}
	}

	if _, err := p.finish(ctx, inbound, t.ID, nil); err != nil {
		return nil, err
	}
	return &Result{Outcome: OutcomeOK, TicketNumber: t.ID, DecisionID: decision.ID}, nil
}

// persistDecision appends the analysis as an immutable AIDecision row,
// detecting and sticking the ticket language on first contact.
func (p *Pipeline) persistDecision(ctx context.Context, t *ent.TicketState, inbound *models.InboundEmail, result *models.AnalysisResult) (*ent.AIDecision, error) {
	if t.Language == "" {
		lang := langdetect.Detect(inbound.Subject + "\n" + inbound.BodyPlain).String()
		if err := t.Update().SetLanguage(lang).Exec(ctx); err != nil {
			return nil, fmt.Errorf("persist detected language: %w", err)
		}
		t.Language = lang
	}
	return p.persistDecisionForTicket(ctx, t, result)
}

// persistDecisionForTicket appends the decision using the ticket's known
// language.
func (p *Pipeline) persistDecisionForTicket(ctx context.Context, t *ent.TicketState, result *models.AnalysisResult) (*ent.AIDecision, error) {
	lang := t.Language
	if lang == "" {
		lang = langdetect.Fallback.String()
	}

	create := p.db.AIDecision.Create().
		SetID(uuid.New().String()).
		SetTicketNumber(t.ID).
		SetAt(p.now()).
		SetDetectedLanguage(lang).
		SetDetectedIntent(result.Intent).
		SetConfidence(result.Confidence).
		SetCustomerDraft(result.CustomerResponse).
		SetRequiresEscalation(result.RequiresEscalation).
		SetPhase(aidecision.Phase(p.cfg.Phase)).
		SetSummary(result.Summary)
	if result.SupplierAction != nil {
		create.SetRecommendedAction(result.SupplierAction.Action)
		create.SetSupplierDraft(result.SupplierAction.Message)
	}
	decision, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("persist decision: %w", err)
	}
	metrics.Decisions.WithLabelValues(result.Intent).Inc()
	return decision, nil
}

// escalate flags the ticket, writes the audit entry, and alerts operators.
// Escalation is sticky: once set it is never cleared by the pipeline.
func (p *Pipeline) escalate(ctx context.Context, t *ent.TicketState, result *models.AnalysisResult) (*ent.TicketState, error) {
	if t.Escalated {
		return t, nil
	}
	reason := result.Summary
	if reason == "" {
		reason = "analysis flagged escalation"
	}

	updated, err := t.Update().
		SetEscalated(true).
		SetEscalationReason(reason).
		SetEscalationAt(p.now()).
		SetStatus(ticketstate.StatusEscalated).
		Save(ctx)
	if err != nil {
		return t, fmt.Errorf("escalate ticket %s: %w", t.ID, err)
	}

	if _, err := p.db.AuditLogEntry.Create().
		SetID(uuid.New().String()).
		SetAt(p.now()).
		SetActor("system").
		SetTicketNumber(t.ID).
		SetField("escalated").
		SetOldValue("false").
		SetNewValue("true").
		SetDescription(reason).
		Save(ctx); err != nil {
		p.log.Warn("Failed to write escalation audit entry", "ticket_number", t.ID, "error", err)
	}

	p.alerts.Escalation(ctx, t.ID, reason)
	return updated, nil
}

// settle records a failure after the decision row is already durable.
// Re-running the pipeline for the same message would append a duplicate
// decision and duplicate drafts, so the ledger is settled permanently and
// the failure surfaced to operators; any filed drafts stay on the
// send-retry path. The write runs on a detached context so a canceled run
// still settles.
func (p *Pipeline) settle(inbound *models.InboundEmail, t *ent.TicketState, decision *ent.AIDecision, cause error) (*Result, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p.log.Error("Dispatch failed after decision persisted, operator action required",
		"source_message_id", inbound.SourceMessageID, "ticket_number", t.ID,
		"decision_id", decision.ID, "error", cause)
	p.alerts.DispatchFailed(ctx, t.ID, cause.Error())

	// Flattened with %v so the retry classification of the cause cannot
	// leak through and re-admit the message.
	return p.finish(ctx, inbound, t.ID, fmt.Errorf("dispatch after decision %s: %v", decision.ID, cause))
}

// finish writes the terminal ProcessedEmail record. Retryable failures are
// passed through without a record so a later attempt can run; everything
// else becomes a permanent success or failure row.
func (p *Pipeline) finish(ctx context.Context, inbound *models.InboundEmail, ticketNumber string, cause error) (*Result, error) {
	if cause != nil && (IsRetryable(cause) || errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded)) {
		metrics.EmailsProcessed.WithLabelValues("retryable").Inc()
		return nil, cause
	}

	create := p.db.ProcessedEmail.Create().
		SetID(uuid.New().String()).
		SetSourceMessageID(inbound.SourceMessageID).
		SetThreadID(inbound.ThreadID).
		SetSubject(inbound.Subject).
		SetFromAddress(strings.ToLower(inbound.From)).
		SetSuccess(cause == nil).
		SetProcessedAt(p.now())
	if !inbound.ReceivedAt.IsZero() {
		create.SetReceivedAt(inbound.ReceivedAt)
	}
	if ticketNumber != "" {
		create.SetTicketNumber(ticketNumber)
	}
	if cause != nil {
		create.SetErrorMessage(cause.Error())
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// Lost a race with another worker on the same message.
			metrics.EmailsProcessed.WithLabelValues("skipped").Inc()
			return &Result{Outcome: OutcomeSkipped, TicketNumber: ticketNumber}, nil
		}
		return nil, &RetryableError{Err: fmt.Errorf("record processed email: %w", err)}
	}

	if cause != nil {
		p.log.Error("Message failed permanently",
			"source_message_id", inbound.SourceMessageID, "ticket_number", ticketNumber, "error", cause)
		metrics.EmailsProcessed.WithLabelValues("failed").Inc()
		return &Result{Outcome: OutcomeFailed, TicketNumber: ticketNumber}, cause
	}
	metrics.EmailsProcessed.WithLabelValues("ok").Inc()
	return &Result{Outcome: OutcomeOK, TicketNumber: ticketNumber}, nil
}

func (p *Pipeline) observeAnalyze(start time.Time) {
	metrics.AnalyzeDuration.Observe(p.now().Sub(start).Seconds())
}

func roleOf(s string) (ticketmessage.Role, bool) {
	switch strings.ToLower(s) {
	case "customer":
		return ticketmessage.RoleCustomer, true
	case "supplier":
		return ticketmessage.RoleSupplier, true
	case "agent", "internal":
		return ticketmessage.RoleAgent, true
	case "system":
		return ticketmessage.RoleSystem, true
	default:
		return "", false
	}
}

func directionOf(s string) ticketmessage.Direction {
	switch strings.ToLower(s) {
	case "outbound":
		return ticketmessage.DirectionOutbound
	case "internal":
		return ticketmessage.DirectionInternal
	default:
		return ticketmessage.DirectionInbound
	}
}
