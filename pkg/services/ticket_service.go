package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/database"
)

// TicketService is the operator read surface over the local ticket shadow.
type TicketService struct {
	db  *database.Client
	log *slog.Logger
}

// NewTicketService creates a TicketService.
func NewTicketService(db *database.Client) *TicketService {
	return &TicketService{
		db:  db,
		log: slog.Default().With("component", "ticket-service"),
	}
}

// TicketDetail is a ticket with its local history and recent decisions.
type TicketDetail struct {
	Ticket    *ent.TicketState     `json:"ticket"`
	Messages  []*ent.TicketMessage `json:"messages"`
	Decisions []*ent.AIDecision    `json:"decisions"`
	Pending   int                  `json:"pending_count"`
}

// Get loads one ticket with context.
func (s *TicketService) Get(ctx context.Context, ticketNumber string) (*TicketDetail, error) {
	t, err := s.db.TicketState.Get(ctx, ticketNumber)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %s: %w", ticketNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("get ticket %s: %w", ticketNumber, err)
	}

	messages, err := t.QueryMessages().
		Order(ent.Asc(ticketmessage.FieldAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load messages for %s: %w", ticketNumber, err)
	}
	decisions, err := t.QueryDecisions().
		Order(ent.Desc(aidecision.FieldAt)).
		Limit(20).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load decisions for %s: %w", ticketNumber, err)
	}
	pending, err := t.QueryPendingMessages().
		Where(pendingmessage.StatusIn(pendingmessage.StatusPending, pendingmessage.StatusFailed)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pending for %s: %w", ticketNumber, err)
	}

	return &TicketDetail{Ticket: t, Messages: messages, Decisions: decisions, Pending: pending}, nil
}

// TicketListParams filters the ticket listing.
type TicketListParams struct {
	Status    string
	Escalated *bool
	Limit     int
}

// List returns tickets by most recent activity.
func (s *TicketService) List(ctx context.Context, params TicketListParams) ([]*ent.TicketState, error) {
	query := s.db.TicketState.Query()
	if params.Status != "" {
		status := ticketstate.Status(params.Status)
		if err := ticketstate.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", "unknown status "+params.Status)
		}
		query.Where(ticketstate.StatusEQ(status))
	}
	if params.Escalated != nil {
		query.Where(ticketstate.EscalatedEQ(*params.Escalated))
	}
	limit := params.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	tickets, err := query.
		Order(ent.Desc(ticketstate.FieldLastSeenAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}
