package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/ticket"
)

// localTicketPrefix marks tickets created locally because the inbound could
// not be correlated or filed upstream. Operators re-file these by hand.
const localTicketPrefix = "LOCAL-"

// correlate maps the inbound message to a TicketState: local lookup first,
// then upstream by ticket number, order number, and PO number, then
// creation when the inbound carries enough to open a case.
//
// After an upstream upsert the ticket is re-resolved via order number, not
// the freshly returned id; a new ticket may not be indexed yet.
func (p *Pipeline) correlate(ctx context.Context, refs Refs, inbound *models.InboundEmail) (*ent.TicketState, error) {
	// 1. Local shadow.
	if t, err := p.lookupLocal(ctx, refs); err != nil {
		return nil, err
	} else if t != nil {
		return t, nil
	}

	// 2. Upstream, in correlation order.
	view, err := p.lookupUpstream(ctx, refs)
	if err != nil {
		return nil, err
	}
	if view != nil {
		return p.mirror(ctx, view, inbound)
	}

	// 3. Create upstream when the inbound carries enough to open a case.
	if refs.OrderNumber != "" && inbound.From != "" {
		return p.createUpstream(ctx, refs, inbound)
	}

	// 4. Local-only fallback so no content is lost.
	return p.createLocal(ctx, inbound)
}

func (p *Pipeline) lookupLocal(ctx context.Context, refs Refs) (*ent.TicketState, error) {
	if refs.TicketNumber != "" {
		t, err := p.db.TicketState.Get(ctx, refs.TicketNumber)
		if err == nil {
			return t, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("local ticket lookup: %w", err)
		}
	}
	if refs.OrderNumber != "" {
		t, err := p.db.TicketState.Query().
			Where(ticketstate.OrderNumberEQ(refs.OrderNumber)).
			Only(ctx)
		if err == nil {
			return t, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("local order lookup: %w", err)
		}
	}
	if refs.PurchaseOrderNumber != "" {
		t, err := p.db.TicketState.Query().
			Where(ticketstate.PurchaseOrderNumberEQ(refs.PurchaseOrderNumber)).
			Only(ctx)
		if err == nil {
			return t, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("local po lookup: %w", err)
		}
	}
	return nil, nil
}

func (p *Pipeline) lookupUpstream(ctx context.Context, refs Refs) (*ticket.View, error) {
	lookups := []struct {
		key string
		fn  func(context.Context, string) (*ticket.View, error)
	}{
		{refs.TicketNumber, p.tickets.GetByTicket},
		{refs.OrderNumber, p.tickets.GetByOrder},
		{refs.PurchaseOrderNumber, p.tickets.GetByPurchaseOrder},
	}
	for _, l := range lookups {
		if l.key == "" {
			continue
		}
		view, err := l.fn(ctx, l.key)
		if err == nil {
			return view, nil
		}
		if errors.Is(err, ticket.ErrNotFound) {
			continue
		}
		return nil, classify(err)
	}
	return nil, nil
}

// mirror upserts the upstream view into the local shadow under the
// per-ticket lock. A unique conflict on order or PO number is an invariant
// violation: the transaction aborts, the conflict is alerted, nothing is
// half-written.
func (p *Pipeline) mirror(ctx context.Context, view *ticket.View, inbound *models.InboundEmail) (*ent.TicketState, error) {
	h := view.Header
	if h.TicketNumber == "" {
		return nil, fmt.Errorf("upstream view missing ticket number")
	}

	tx, err := p.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start mirror transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := database.AcquireTicketLock(ctx, tx, h.TicketNumber); err != nil {
		return nil, err
	}

	existing, err := tx.TicketState.Get(ctx, h.TicketNumber)
	switch {
	case err == nil:
		upd := existing.Update().SetLastSeenAt(p.now())
		if h.TicketID != "" {
			upd.SetTicketID(h.TicketID)
		}
		if h.CustomerEmail != "" {
			upd.SetCustomerEmail(h.CustomerEmail)
		}
		if h.SupplierEmail != "" {
			upd.SetSupplierEmail(h.SupplierEmail)
		}
		if h.OrderNumber != "" {
			upd.SetOrderNumber(h.OrderNumber)
		}
		if h.PurchaseOrderNumber != "" {
			upd.SetPurchaseOrderNumber(h.PurchaseOrderNumber)
		}
		if h.Language != "" {
			upd.SetLanguage(h.Language)
		}
		if inbound != nil && inbound.ThreadID != "" {
			upd.SetGmailThreadID(inbound.ThreadID)
		}
		updated, err := upd.Save(ctx)
		if err != nil {
			return nil, p.constraintOrErr(ctx, err, h.TicketNumber)
		}
		if err := p.mirrorHistory(ctx, tx, h.TicketNumber, view.History); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit mirror: %w", err)
		}
		return updated, nil

	case ent.IsNotFound(err):
		create := tx.TicketState.Create().
			SetID(h.TicketNumber).
			SetTicketID(h.TicketID).
			SetStatus(ticketstate.StatusNew).
			SetLastSeenAt(p.now())
		if h.CustomerEmail != "" {
			create.SetCustomerEmail(h.CustomerEmail)
		}
		if h.SupplierEmail != "" {
			create.SetSupplierEmail(h.SupplierEmail)
		}
		if h.OrderNumber != "" {
			create.SetOrderNumber(h.OrderNumber)
		}
		if h.PurchaseOrderNumber != "" {
			create.SetPurchaseOrderNumber(h.PurchaseOrderNumber)
		}
		if h.Language != "" {
			create.SetLanguage(h.Language)
		}
		if inbound != nil && inbound.ThreadID != "" {
			create.SetGmailThreadID(inbound.ThreadID)
		}
		created, err := create.Save(ctx)
		if err != nil {
			return nil, p.constraintOrErr(ctx, err, h.TicketNumber)
		}
		if err := p.mirrorHistory(ctx, tx, h.TicketNumber, view.History); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit mirror: %w", err)
		}
		return created, nil

	default:
		return nil, fmt.Errorf("mirror lookup: %w", err)
	}
}

// mirrorHistory copies upstream history rows not yet present locally.
func (p *Pipeline) mirrorHistory(ctx context.Context, tx *ent.Tx, ticketNumber string, history []ticket.HistoryMessage) error {
	for _, msg := range history {
		if msg.MessageID == "" {
			continue
		}
		exists, err := tx.TicketMessage.Query().
			Where(ticketmessage.UpstreamMessageIDEQ(msg.MessageID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("history lookup: %w", err)
		}
		if exists {
			continue
		}
		create := tx.TicketMessage.Create().
			SetID(uuid.New().String()).
			SetTicketNumber(ticketNumber).
			SetDirection(directionOf(msg.Direction)).
			SetSender(msg.Sender).
			SetRecipient(msg.Recipient).
			SetSubject(msg.Subject).
			SetBody(msg.Body).
			SetUpstreamMessageID(msg.MessageID).
			SetAt(msg.At)
		if r, ok := roleOf(msg.Role); ok {
			create.SetRole(r)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to mirror history message: %w", err)
		}
	}
	return nil
}

// createUpstream opens the case in the backend and re-resolves via order
// number. Indexing lag on the fresh ticket is a retryable condition.
func (p *Pipeline) createUpstream(ctx context.Context, refs Refs, inbound *models.InboundEmail) (*ent.TicketState, error) {
	header := ticket.Header{
		Subject:             inbound.Subject,
		CustomerEmail:       strings.ToLower(inbound.From),
		OrderNumber:         refs.OrderNumber,
		PurchaseOrderNumber: refs.PurchaseOrderNumber,
	}
	if _, err := p.tickets.Upsert(ctx, header); err != nil {
		return nil, classify(err)
	}

	view, err := p.tickets.GetByOrder(ctx, refs.OrderNumber)
	if err != nil {
		if errors.Is(err, ticket.ErrNotFound) {
			return nil, &RetryableError{Err: fmt.Errorf("ticket for order %s not yet indexed after upsert", refs.OrderNumber)}
		}
		return nil, classify(err)
	}
	return p.mirror(ctx, view, inbound)
}

// createLocal files a local-only imported ticket so the inbound content is
// never lost even without any correlation reference.
func (p *Pipeline) createLocal(ctx context.Context, inbound *models.InboundEmail) (*ent.TicketState, error) {
	number := localTicketPrefix + strings.ToUpper(uuid.New().String()[:8])
	t, err := p.db.TicketState.Create().
		SetID(number).
		SetStatus(ticketstate.StatusImported).
		SetCustomerEmail(strings.ToLower(inbound.From)).
		SetGmailThreadID(inbound.ThreadID).
		SetLastSeenAt(p.now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create local ticket: %w", err)
	}
	p.log.Warn("Inbound message could not be correlated, filed locally",
		"ticket_number", number, "source_message_id", inbound.SourceMessageID)
	return t, nil
}

// constraintOrErr translates a unique-constraint conflict into an operator
// alert plus a permanent error, and passes everything else through.
func (p *Pipeline) constraintOrErr(ctx context.Context, err error, ticketNumber string) error {
	if ent.IsConstraintError(err) {
		detail := fmt.Sprintf("ticket %s: %v", ticketNumber, err)
		p.alerts.InvariantViolation(ctx, detail)
		return fmt.Errorf("invariant violation on ticket %s: %w", ticketNumber, err)
	}
	return fmt.Errorf("failed to write ticket %s: %w", ticketNumber, err)
}
