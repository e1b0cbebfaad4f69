// Package supplier tracks outbound supplier communications and raises a
// reminder when a supplier stays silent past the configured window.
package supplier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/pkg/alerts"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/format"
	"github.com/shipdesk/shipdesk/pkg/langdetect"
	"github.com/shipdesk/shipdesk/pkg/metrics"
	"github.com/shipdesk/shipdesk/pkg/ticket"
)

// Sender is the outbound slice of the ticketing client the tracker needs.
type Sender interface {
	SendSupplier(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error)
	SendInternal(ctx context.Context, ticketID, body string) (string, error)
}

// Tracker owns the supplier obligation ledger. At most one row per
// (supplier, ticket) may be awaiting a response; the partial unique index
// created by the migrations enforces that even across processes.
type Tracker struct {
	db     *database.Client
	cfg    *config.Config
	fmtr   *format.Formatter
	sender Sender
	alerts *alerts.Service
	log    *slog.Logger
	now    func() time.Time
}

// New wires a Tracker.
func New(db *database.Client, cfg *config.Config, fmtr *format.Formatter, sender Sender, alertSvc *alerts.Service) *Tracker {
	return &Tracker{
		db:     db,
		cfg:    cfg,
		fmtr:   fmtr,
		sender: sender,
		alerts: alertSvc,
		log:    slog.Default().With("component", "supplier-tracker"),
		now:    time.Now,
	}
}

// RecordSent opens (or keeps) the response obligation for a supplier send.
// A second send while one obligation is active is a no-op: the existing
// next_check_at keeps counting from the first unanswered message.
func (t *Tracker) RecordSent(ctx context.Context, supplierEmail, ticketNumber string) error {
	if supplierEmail == "" || ticketNumber == "" {
		return fmt.Errorf("supplier email and ticket number are required")
	}
	now := t.now()
	_, err := t.db.SupplierMessage.Create().
		SetID(uuid.New().String()).
		SetSupplierEmail(supplierEmail).
		SetTicketNumber(ticketNumber).
		SetSentAt(now).
		SetNextCheckAt(now.Add(t.cfg.SupplierReminderWindow())).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			t.log.Debug("Supplier obligation already active",
				"supplier", supplierEmail, "ticket_number", ticketNumber)
			return nil
		}
		return fmt.Errorf("record supplier send: %w", err)
	}
	return nil
}

// MarkResponseReceived closes every open obligation on the ticket.
func (t *Tracker) MarkResponseReceived(ctx context.Context, ticketNumber string) error {
	n, err := t.db.SupplierMessage.Update().
		Where(
			suppliermessage.TicketNumberEQ(ticketNumber),
			suppliermessage.ResponseReceived(false),
		).
		SetResponseReceived(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark supplier response for ticket %s: %w", ticketNumber, err)
	}
	if n > 0 {
		t.log.Info("Supplier response received", "ticket_number", ticketNumber, "closed", n)
	}
	return nil
}

// Sweep sends at most one reminder per overdue obligation. The row is
// claimed by a conditional update before the send, so a concurrent sweep
// or a crash mid-send can never produce a second reminder.
func (t *Tracker) Sweep(ctx context.Context) error {
	now := t.now()
	due, err := t.db.SupplierMessage.Query().
		Where(
			suppliermessage.ResponseReceived(false),
			suppliermessage.ReminderSentAtIsNil(),
			suppliermessage.NextCheckAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query overdue supplier messages: %w", err)
	}

	for _, sm := range due {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := t.remind(ctx, sm); err != nil {
			t.log.Warn("Supplier reminder failed",
				"ticket_number", sm.TicketNumber, "supplier", sm.SupplierEmail, "error", err)
		}
	}
	return nil
}

func (t *Tracker) remind(ctx context.Context, sm *ent.SupplierMessage) error {
	claimed, err := t.db.SupplierMessage.Update().
		Where(
			suppliermessage.IDEQ(sm.ID),
			suppliermessage.ReminderSentAtIsNil(),
		).
		SetReminderSentAt(t.now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("claim reminder: %w", err)
	}
	if claimed == 0 {
		return nil
	}

	ts, err := t.db.TicketState.Get(ctx, sm.TicketNumber)
	if err != nil {
		return fmt.Errorf("load ticket %s: %w", sm.TicketNumber, err)
	}
	if ts.TicketID == "" {
		t.log.Info("Skipping reminder, ticket has no backend id", "ticket_number", ts.ID)
		return nil
	}

	draft := fmt.Sprintf(
		"We have not yet received a reply to our message from %s regarding ticket %s. Could you give us an update?",
		format.FormatDate(langdetect.Fallback, sm.SentAt), sm.TicketNumber)
	body, err := t.fmtr.Supplier(format.SupplierInput{
		Language:            langdetect.Fallback,
		Draft:               draft,
		PurchaseOrderNumber: derefString(ts.PurchaseOrderNumber),
		TicketNumber:        ts.ID,
	})
	if err != nil {
		return fmt.Errorf("render reminder: %w", err)
	}

	if _, err := t.sender.SendSupplier(ctx, ts.TicketID, ticket.OutboundMessage{
		To:   sm.SupplierEmail,
		Body: body,
	}); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	note := t.fmtr.InternalNote("Supplier reminder sent", []string{
		fmt.Sprintf("supplier: %s", sm.SupplierEmail),
		fmt.Sprintf("first sent: %s", sm.SentAt.UTC().Format(time.RFC3339)),
	})
	if _, err := t.sender.SendInternal(ctx, ts.TicketID, note); err != nil {
		t.log.Warn("Failed to post reminder note", "ticket_number", ts.ID, "error", err)
	}

	metrics.SupplierReminders.Inc()
	t.log.Info("Supplier reminder sent", "ticket_number", ts.ID, "supplier", sm.SupplierEmail)
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
