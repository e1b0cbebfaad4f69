// Package dispatch routes a persisted AI decision according to the
// deployment phase: shadow files drafts and notes, assisted queues for
// approval, autonomous sends when confident and falls back to the queue
// when it cannot.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/alerts"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/format"
	"github.com/shipdesk/shipdesk/pkg/langdetect"
	"github.com/shipdesk/shipdesk/pkg/metrics"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/prompt"
	"github.com/shipdesk/shipdesk/pkg/ticket"
)

// Sender is the outbound slice of the ticketing client.
type Sender interface {
	SendCustomer(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error)
	SendSupplier(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error)
	SendInternal(ctx context.Context, ticketID, body string) (string, error)
}

// SupplierTracker records supplier sends so the reminder sweep can watch
// for missing responses.
type SupplierTracker interface {
	RecordSent(ctx context.Context, supplierEmail, ticketNumber string) error
}

// Dispatcher executes phase-gated dispatch for one decision at a time.
// Stateless between calls; the pipeline holds the per-ticket lock while
// Dispatch runs.
type Dispatcher struct {
	db      *database.Client
	cfg     *config.Config
	fmtr    *format.Formatter
	sender  Sender
	tracker SupplierTracker
	alerts  *alerts.Service
	log     *slog.Logger
	now     func() time.Time
}

// New wires a Dispatcher.
func New(db *database.Client, cfg *config.Config, fmtr *format.Formatter, sender Sender, tracker SupplierTracker, alertSvc *alerts.Service) *Dispatcher {
	return &Dispatcher{
		db:      db,
		cfg:     cfg,
		fmtr:    fmtr,
		sender:  sender,
		tracker: tracker,
		alerts:  alertSvc,
		log:     slog.Default().With("component", "dispatcher"),
		now:     time.Now,
	}
}

// draft is one rendered outbound candidate.
type draft struct {
	kind pendingmessage.Kind
	to   string
	body string
}

// Dispatch renders the decision's drafts and routes them per the phase.
// Rendering failures (policy blocks) never abort the other draft; each is
// reported as an internal note.
func (d *Dispatcher) Dispatch(ctx context.Context, t *ent.TicketState, decision *ent.AIDecision, result *models.AnalysisResult, built *prompt.Output) error {
	lang := d.language(t, decision)
	drafts := d.render(ctx, t, result, built, lang)

	phase := d.cfg.Phase
	switch phase {
	case config.PhaseShadow:
		return d.shadow(ctx, t, decision, result, drafts)
	case config.PhaseAssisted:
		return d.assisted(ctx, t, decision, result, drafts)
	case config.PhaseAutonomous:
		if result.RequiresEscalation || result.Confidence < d.cfg.ConfidenceThreshold {
			return d.assisted(ctx, t, decision, result, drafts)
		}
		return d.autonomous(ctx, t, decision, result, drafts)
	default:
		return fmt.Errorf("unknown phase %q", phase)
	}
}

// render produces the customer and supplier drafts that passed formatting
// policy. A blocked draft becomes an internal note instead of output.
func (d *Dispatcher) render(ctx context.Context, t *ent.TicketState, result *models.AnalysisResult, built *prompt.Output, lang language.Tag) []draft {
	var out []draft

	if !models.IsNoDraft(result.CustomerResponse) {
		body, err := d.fmtr.Customer(format.CustomerInput{
			Language:            lang,
			Draft:               result.CustomerResponse,
			TicketNumber:        t.ID,
			OrderNumber:         deref(t.OrderNumber),
			SupplierIdentifiers: built.Roster.ExternalSupplierIdentifiers(),
		})
		if err != nil {
			d.policyNote(ctx, t, "customer", err)
		} else {
			out = append(out, draft{kind: pendingmessage.KindCustomer, to: t.CustomerEmail, body: body})
		}
	}

	if sup := result.SupplierDraft(); sup != "" && !models.IsNoDraft(sup) {
		body, err := d.fmtr.Supplier(format.SupplierInput{
			Language:            langdetect.Fallback,
			Draft:               sup,
			PurchaseOrderNumber: deref(t.PurchaseOrderNumber),
			TicketNumber:        t.ID,
		})
		if err != nil {
			d.policyNote(ctx, t, "supplier", err)
		} else {
			out = append(out, draft{kind: pendingmessage.KindSupplier, to: t.SupplierEmail, body: body})
		}
	}

	return out
}

// shadow queues every draft and posts a summary note. Never sends.
func (d *Dispatcher) shadow(ctx context.Context, t *ent.TicketState, decision *ent.AIDecision, result *models.AnalysisResult, drafts []draft) error {
	for _, dr := range drafts {
		if _, err := d.queue(ctx, t, decision, dr); err != nil {
			return err
		}
	}
	note := d.fmtr.InternalNote("AI triage (shadow)", []string{
		fmt.Sprintf("intent: %s", result.Intent),
		fmt.Sprintf("confidence: %.2f", result.Confidence),
		fmt.Sprintf("requires_escalation: %t", result.RequiresEscalation),
		fmt.Sprintf("drafts queued: %d", len(drafts)),
		result.Summary,
	})
	d.note(ctx, t, note)
	metrics.Dispatches.WithLabelValues(string(d.cfg.Phase), "internal_note").Inc()
	return nil
}

// assisted queues every draft for approval; escalation or low confidence
// additionally flags the ticket and posts an escalation note.
func (d *Dispatcher) assisted(ctx context.Context, t *ent.TicketState, decision *ent.AIDecision, result *models.AnalysisResult, drafts []draft) error {
	for _, dr := range drafts {
		if _, err := d.queue(ctx, t, decision, dr); err != nil {
			return err
		}
	}

	if result.RequiresEscalation || result.Confidence < d.cfg.ConfidenceThreshold {
		if err := d.flagEscalated(ctx, t, result); err != nil {
			return err
		}
		note := d.fmtr.InternalNote("AI triage escalation", []string{
			fmt.Sprintf("intent: %s", result.Intent),
			fmt.Sprintf("confidence: %.2f (threshold %.2f)", result.Confidence, d.cfg.ConfidenceThreshold),
			result.Summary,
		})
		d.note(ctx, t, note)
		metrics.Dispatches.WithLabelValues(string(d.cfg.Phase), "escalated").Inc()
	}
	return nil
}

// autonomous sends each draft directly. A send failure files the draft as
// a failed pending message for the retry sweep; it does not escalate and
// does not abort the remaining drafts.
func (d *Dispatcher) autonomous(ctx context.Context, t *ent.TicketState, decision *ent.AIDecision, result *models.AnalysisResult, drafts []draft) error {
	for _, dr := range drafts {
		msgID, err := d.send(ctx, t, dr)
		if err != nil {
			if err := d.queueFailed(ctx, t, decision, dr, err); err != nil {
				return err
			}
			continue
		}

		if err := d.recordOutbound(ctx, t, dr, msgID); err != nil {
			return err
		}
		if dr.kind == pendingmessage.KindSupplier && d.tracker != nil {
			if err := d.tracker.RecordSent(ctx, dr.to, t.ID); err != nil {
				d.log.Warn("Failed to record supplier obligation", "ticket_number", t.ID, "error", err)
			}
		}
		if err := d.advance(ctx, t, dr.kind); err != nil {
			return err
		}
		metrics.Dispatches.WithLabelValues(string(d.cfg.Phase), "sent").Inc()
	}
	return nil
}

func (d *Dispatcher) send(ctx context.Context, t *ent.TicketState, dr draft) (string, error) {
	if t.TicketID == "" {
		return "", fmt.Errorf("ticket %s has no backend id", t.ID)
	}
	msg := ticket.OutboundMessage{To: dr.to, Body: dr.body}
	switch dr.kind {
	case pendingmessage.KindSupplier:
		return d.sender.SendSupplier(ctx, t.TicketID, msg)
	default:
		return d.sender.SendCustomer(ctx, t.TicketID, msg)
	}
}

// queue creates a pending-approval draft.
func (d *Dispatcher) queue(ctx context.Context, t *ent.TicketState, decision *ent.AIDecision, dr draft) (*ent.PendingMessage, error) {
	pm, err := d.db.PendingMessage.Create().
		SetID(uuid.New().String()).
		SetTicketNumber(t.ID).
		SetKind(dr.kind).
		SetTo(dr.to).
		SetBody(dr.body).
		SetConfidence(decision.Confidence).
		SetDecisionID(decision.ID).
		SetStatus(pendingmessage.StatusPending).
		SetCreatedAt(d.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("queue %s draft for ticket %s: %w", dr.kind, t.ID, err)
	}
	metrics.PendingTransitions.WithLabelValues(string(pendingmessage.StatusPending)).Inc()
	metrics.Dispatches.WithLabelValues(string(d.cfg.Phase), "queued").Inc()
	return pm, nil
}

// queueFailed files a draft whose direct send failed. retry_count carries
// the transport attempts already burned; the retry sweep owns it from here.
func (d *Dispatcher) queueFailed(ctx context.Context, t *ent.TicketState, decision *ent.AIDecision, dr draft, sendErr error) error {
	attempts := 1
	var te *ticket.TransientError
	if errors.As(sendErr, &te) && te.Attempts > 0 {
		attempts = te.Attempts
	}

	_, err := d.db.PendingMessage.Create().
		SetID(uuid.New().String()).
		SetTicketNumber(t.ID).
		SetKind(dr.kind).
		SetTo(dr.to).
		SetBody(dr.body).
		SetConfidence(decision.Confidence).
		SetDecisionID(decision.ID).
		SetStatus(pendingmessage.StatusFailed).
		SetRetryCount(attempts).
		SetLastError(sendErr.Error()).
		SetNextAttemptAt(d.now().Add(config.BackoffAt(config.SendBackoff, 0))).
		SetCreatedAt(d.now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("file failed %s draft for ticket %s: %w", dr.kind, t.ID, err)
	}
	d.log.Warn("Autonomous send failed, draft filed for retry",
		"ticket_number", t.ID, "kind", dr.kind, "attempts", attempts, "error", sendErr)
	metrics.PendingTransitions.WithLabelValues(string(pendingmessage.StatusFailed)).Inc()
	metrics.Dispatches.WithLabelValues(string(d.cfg.Phase), "send_failed").Inc()
	return nil
}

// recordOutbound appends a sent message to local history.
func (d *Dispatcher) recordOutbound(ctx context.Context, t *ent.TicketState, dr draft, msgID string) error {
	role := ticketmessage.RoleCustomer
	if dr.kind == pendingmessage.KindSupplier {
		role = ticketmessage.RoleSupplier
	}
	_, err := d.db.TicketMessage.Create().
		SetID(uuid.New().String()).
		SetTicketNumber(t.ID).
		SetDirection(ticketmessage.DirectionOutbound).
		SetRole(role).
		SetRecipient(dr.to).
		SetBody(dr.body).
		SetUpstreamMessageID(msgID).
		SetAt(d.now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("record outbound message for ticket %s: %w", t.ID, err)
	}
	return nil
}

// advance moves the ticket to the waiting state implied by what was sent.
// Escalated tickets keep their status.
func (d *Dispatcher) advance(ctx context.Context, t *ent.TicketState, kind pendingmessage.Kind) error {
	if t.Escalated {
		return nil
	}
	status := ticketstate.StatusAwaitingCustomer
	if kind == pendingmessage.KindSupplier {
		status = ticketstate.StatusAwaitingSupplier
	}
	if err := d.db.TicketState.UpdateOneID(t.ID).
		SetStatus(status).
		SetLastSeenAt(d.now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("advance ticket %s: %w", t.ID, err)
	}
	t.Status = status
	return nil
}

// flagEscalated marks the ticket escalated if the pipeline has not already.
func (d *Dispatcher) flagEscalated(ctx context.Context, t *ent.TicketState, result *models.AnalysisResult) error {
	if t.Escalated {
		return nil
	}
	reason := fmt.Sprintf("confidence %.2f below threshold %.2f", result.Confidence, d.cfg.ConfidenceThreshold)
	if result.RequiresEscalation && result.Summary != "" {
		reason = result.Summary
	}
	if err := d.db.TicketState.UpdateOneID(t.ID).
		SetEscalated(true).
		SetEscalationReason(reason).
		SetEscalationAt(d.now()).
		SetStatus(ticketstate.StatusEscalated).
		Exec(ctx); err != nil {
		return fmt.Errorf("flag ticket %s escalated: %w", t.ID, err)
	}
	t.Escalated = true
	d.alerts.Escalation(ctx, t.ID, reason)
	return nil
}

// policyNote reports a draft the formatter refused.
func (d *Dispatcher) policyNote(ctx context.Context, t *ent.TicketState, side string, cause error) {
	d.log.Warn("Draft blocked by formatting policy", "ticket_number", t.ID, "side", side, "error", cause)
	note := d.fmtr.InternalNote("AI draft blocked", []string{
		fmt.Sprintf("side: %s", side),
		fmt.Sprintf("reason: %v", cause),
	})
	d.note(ctx, t, note)
	metrics.Dispatches.WithLabelValues(string(d.cfg.Phase), "policy_blocked").Inc()
}

// note posts an internal note; failures are logged, never fatal.
func (d *Dispatcher) note(ctx context.Context, t *ent.TicketState, body string) {
	if t.TicketID == "" {
		d.log.Info("Skipping internal note, ticket has no backend id", "ticket_number", t.ID)
		return
	}
	if _, err := d.sender.SendInternal(ctx, t.TicketID, body); err != nil {
		d.log.Warn("Failed to post internal note", "ticket_number", t.ID, "error", err)
	}
}

func (d *Dispatcher) language(t *ent.TicketState, decision *ent.AIDecision) language.Tag {
	if decision.DetectedLanguage != "" {
		return langdetect.Normalize(decision.DetectedLanguage)
	}
	if t.Language != "" {
		return langdetect.Normalize(t.Language)
	}
	return langdetect.Fallback
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
