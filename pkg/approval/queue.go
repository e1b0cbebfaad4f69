// Package approval is the pending-message state machine. Legal
// transitions: pending→approved→sent, pending→rejected, approved→failed,
// failed→approved (retry), failed→rejected. sent and rejected are
// terminal. Every transition appends an audit entry.
package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/metrics"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/services"
	"github.com/shipdesk/shipdesk/pkg/ticket"
)

// Sender is the outbound slice of the ticketing client.
type Sender interface {
	SendCustomer(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error)
	SendSupplier(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error)
	SendInternal(ctx context.Context, ticketID, body string) (string, error)
}

// SupplierTracker records supplier sends for the reminder sweep.
type SupplierTracker interface {
	RecordSent(ctx context.Context, supplierEmail, ticketNumber string) error
}

// Queue drives pending-message transitions on behalf of operators and the
// retry sweep.
type Queue struct {
	db      *database.Client
	cfg     *config.Config
	sender  Sender
	tracker SupplierTracker
	log     *slog.Logger
	now     func() time.Time
}

// New wires a Queue.
func New(db *database.Client, cfg *config.Config, sender Sender, tracker SupplierTracker) *Queue {
	return &Queue{
		db:      db,
		cfg:     cfg,
		sender:  sender,
		tracker: tracker,
		log:     slog.Default().With("component", "approval-queue"),
		now:     time.Now,
	}
}

// List returns pending messages matching the filter, newest first.
func (q *Queue) List(ctx context.Context, params models.PendingListParams) ([]*ent.PendingMessage, error) {
	query := q.db.PendingMessage.Query()
	if params.Status != "" {
		status := pendingmessage.Status(params.Status)
		if err := pendingmessage.StatusValidator(status); err != nil {
			return nil, services.NewValidationError("status", "unknown status "+params.Status)
		}
		query.Where(pendingmessage.StatusEQ(status))
	}
	if params.Kind != "" {
		kind := pendingmessage.Kind(params.Kind)
		if err := pendingmessage.KindValidator(kind); err != nil {
			return nil, services.NewValidationError("kind", "unknown kind "+params.Kind)
		}
		query.Where(pendingmessage.KindEQ(kind))
	}
	if params.Ticket != "" {
		query.Where(pendingmessage.TicketNumberEQ(params.Ticket))
	}
	limit := params.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	msgs, err := query.
		Order(ent.Desc(pendingmessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending messages: %w", err)
	}
	return msgs, nil
}

// Get returns one pending message.
func (q *Queue) Get(ctx context.Context, id string) (*ent.PendingMessage, error) {
	pm, err := q.db.PendingMessage.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("pending message %s: %w", id, services.ErrNotFound)
		}
		return nil, fmt.Errorf("get pending message %s: %w", id, err)
	}
	return pm, nil
}

// Approve applies operator edits, marks the message approved, and attempts
// the send. A send failure leaves the message failed with the error
// attached; the retry sweep or another Approve picks it up.
func (q *Queue) Approve(ctx context.Context, id, reviewer string, edits *models.MessageEdits) (*ent.PendingMessage, error) {
	pm, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if pm.Status != pendingmessage.StatusPending {
		return nil, fmt.Errorf("message %s is %s, not pending: %w", id, pm.Status, services.ErrConflict)
	}

	// Conditional on the status so two concurrent approvals can never both
	// reach the send; the loser matches zero rows.
	upd := q.db.PendingMessage.Update().
		Where(
			pendingmessage.IDEQ(id),
			pendingmessage.StatusEQ(pendingmessage.StatusPending),
		).
		SetStatus(pendingmessage.StatusApproved).
		SetReviewedAt(q.now()).
		SetReviewedBy(reviewer)
	if edits != nil {
		if edits.Subject != nil {
			upd.SetSubject(*edits.Subject)
		}
		if edits.Body != nil {
			if strings.TrimSpace(*edits.Body) == "" {
				return nil, services.NewValidationError("body", "must not be empty")
			}
			upd.SetBody(*edits.Body)
		}
		if edits.To != nil {
			upd.SetTo(*edits.To)
		}
		if edits.Cc != nil {
			upd.SetCc(edits.Cc)
		}
		if edits.Bcc != nil {
			upd.SetBcc(edits.Bcc)
		}
		if edits.Attachments != nil {
			upd.SetAttachments(edits.Attachments)
		}
	}
	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("approve message %s: %w", id, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("message %s is no longer pending: %w", id, services.ErrConflict)
	}
	if pm, err = q.Get(ctx, id); err != nil {
		return nil, err
	}
	q.audit(ctx, pm, reviewer, "status", "pending", "approved", "operator approved")
	metrics.PendingTransitions.WithLabelValues(string(pendingmessage.StatusApproved)).Inc()

	return q.attemptSend(ctx, pm, reviewer)
}

// Reject terminally rejects a pending or failed message.
func (q *Queue) Reject(ctx context.Context, id, reviewer, reason string) (*ent.PendingMessage, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, services.NewValidationError("reason", "is required")
	}
	pm, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if pm.Status != pendingmessage.StatusPending && pm.Status != pendingmessage.StatusFailed {
		return nil, fmt.Errorf("message %s is %s, cannot reject: %w", id, pm.Status, services.ErrConflict)
	}
	from := pm.Status

	n, err := q.db.PendingMessage.Update().
		Where(
			pendingmessage.IDEQ(id),
			pendingmessage.StatusIn(pendingmessage.StatusPending, pendingmessage.StatusFailed),
		).
		SetStatus(pendingmessage.StatusRejected).
		SetReviewedAt(q.now()).
		SetReviewedBy(reviewer).
		SetRejectionReason(reason).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reject message %s: %w", id, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("message %s is no longer rejectable: %w", id, services.ErrConflict)
	}
	if pm, err = q.Get(ctx, id); err != nil {
		return nil, err
	}
	q.audit(ctx, pm, reviewer, "status", string(from), "rejected", reason)
	metrics.PendingTransitions.WithLabelValues(string(pendingmessage.StatusRejected)).Inc()
	return pm, nil
}

// Retry re-attempts a failed message. The cumulative transport-attempt cap
// and the backoff deadline both gate it; operators can force an attempt by
// retrying after the deadline.
func (q *Queue) Retry(ctx context.Context, id, actor string) (*ent.PendingMessage, error) {
	pm, err := q.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if pm.Status != pendingmessage.StatusFailed {
		return nil, fmt.Errorf("message %s is %s, only failed messages retry: %w", id, pm.Status, services.ErrConflict)
	}
	if pm.RetryCount >= q.cfg.MaxSendRetries {
		return nil, fmt.Errorf("message %s exhausted its %d send attempts: %w", id, q.cfg.MaxSendRetries, services.ErrConflict)
	}

	n, err := q.db.PendingMessage.Update().
		Where(
			pendingmessage.IDEQ(id),
			pendingmessage.StatusEQ(pendingmessage.StatusFailed),
		).
		SetStatus(pendingmessage.StatusApproved).
		ClearNextAttemptAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reopen message %s: %w", id, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("message %s is no longer failed: %w", id, services.ErrConflict)
	}
	if pm, err = q.Get(ctx, id); err != nil {
		return nil, err
	}
	q.audit(ctx, pm, actor, "status", "failed", "approved", "retry")
	metrics.PendingTransitions.WithLabelValues(string(pendingmessage.StatusApproved)).Inc()

	return q.attemptSend(ctx, pm, actor)
}

// attemptSend sends an approved message and records the outcome:
// approved→sent on success, approved→failed with backoff on failure. The
// per-ticket advisory lock keeps the send from interleaving with a pipeline
// run or another sender on the same ticket.
func (q *Queue) attemptSend(ctx context.Context, pm *ent.PendingMessage, actor string) (*ent.PendingMessage, error) {
	release, err := q.db.LockTicket(ctx, pm.TicketNumber)
	if err != nil {
		return nil, err
	}
	defer release()

	ts, err := q.db.TicketState.Get(ctx, pm.TicketNumber)
	if err != nil {
		return nil, fmt.Errorf("load ticket %s: %w", pm.TicketNumber, err)
	}

	msgID, sendErr := q.send(ctx, ts, pm)
	if sendErr != nil {
		return q.markFailed(ctx, pm, actor, sendErr)
	}

	pm, err = pm.Update().
		SetStatus(pendingmessage.StatusSent).
		SetSentAt(q.now()).
		SetUpstreamMessageID(msgID).
		ClearLastError().
		ClearNextAttemptAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark message %s sent: %w", pm.ID, err)
	}
	q.audit(ctx, pm, actor, "status", "approved", "sent", "")
	metrics.PendingTransitions.WithLabelValues(string(pendingmessage.StatusSent)).Inc()

	if err := q.advance(ctx, ts, pm.Kind); err != nil {
		return nil, err
	}
	if pm.Kind == pendingmessage.KindSupplier && q.tracker != nil {
		if err := q.tracker.RecordSent(ctx, pm.To, pm.TicketNumber); err != nil {
			q.log.Warn("Failed to record supplier obligation", "ticket_number", pm.TicketNumber, "error", err)
		}
	}
	q.log.Info("Pending message sent", "id", pm.ID, "ticket_number", pm.TicketNumber, "kind", pm.Kind)
	return pm, nil
}

// advance moves the ticket to the waiting state implied by what was sent.
// Internal notes and escalated tickets leave the status alone.
func (q *Queue) advance(ctx context.Context, ts *ent.TicketState, kind pendingmessage.Kind) error {
	if ts.Escalated || kind == pendingmessage.KindInternal {
		return nil
	}
	status := ticketstate.StatusAwaitingCustomer
	if kind == pendingmessage.KindSupplier {
		status = ticketstate.StatusAwaitingSupplier
	}
	if err := q.db.TicketState.UpdateOneID(ts.ID).
		SetStatus(status).
		SetLastSeenAt(q.now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("advance ticket %s: %w", ts.ID, err)
	}
	return nil
}

func (q *Queue) send(ctx context.Context, ts *ent.TicketState, pm *ent.PendingMessage) (string, error) {
	if ts.TicketID == "" {
		return "", fmt.Errorf("ticket %s has no backend id", ts.ID)
	}
	switch pm.Kind {
	case pendingmessage.KindInternal:
		return q.sender.SendInternal(ctx, ts.TicketID, pm.Body)
	case pendingmessage.KindSupplier:
		return q.sender.SendSupplier(ctx, ts.TicketID, q.outbound(pm))
	default:
		return q.sender.SendCustomer(ctx, ts.TicketID, q.outbound(pm))
	}
}

func (q *Queue) outbound(pm *ent.PendingMessage) ticket.OutboundMessage {
	return ticket.OutboundMessage{
		To:          pm.To,
		Cc:          pm.Cc,
		Bcc:         pm.Bcc,
		Subject:     pm.Subject,
		Body:        pm.Body,
		Attachments: pm.Attachments,
	}
}

func (q *Queue) markFailed(ctx context.Context, pm *ent.PendingMessage, actor string, sendErr error) (*ent.PendingMessage, error) {
	attempts := 1
	var te *ticket.TransientError
	if errors.As(sendErr, &te) && te.Attempts > 0 {
		attempts = te.Attempts
	}
	cycle := (pm.RetryCount + attempts) / 3

	pm, err := pm.Update().
		SetStatus(pendingmessage.StatusFailed).
		AddRetryCount(attempts).
		SetLastError(sendErr.Error()).
		SetNextAttemptAt(q.now().Add(config.BackoffAt(config.SendBackoff, cycle))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("mark message %s failed: %w", pm.ID, err)
	}
	q.audit(ctx, pm, actor, "status", "approved", "failed", sendErr.Error())
	metrics.PendingTransitions.WithLabelValues(string(pendingmessage.StatusFailed)).Inc()
	q.log.Warn("Pending message send failed",
		"id", pm.ID, "ticket_number", pm.TicketNumber, "retry_count", pm.RetryCount, "error", sendErr)
	return pm, nil
}

func (q *Queue) audit(ctx context.Context, pm *ent.PendingMessage, actor, field, oldV, newV, description string) {
	if actor == "" {
		actor = "system"
	}
	if _, err := q.db.AuditLogEntry.Create().
		SetID(uuid.New().String()).
		SetAt(q.now()).
		SetActor(actor).
		SetTicketNumber(pm.TicketNumber).
		SetEntityID(pm.ID).
		SetField(field).
		SetOldValue(oldV).
		SetNewValue(newV).
		SetDescription(description).
		Save(ctx); err != nil {
		q.log.Warn("Failed to write audit entry", "pending_message", pm.ID, "error", err)
	}
}
