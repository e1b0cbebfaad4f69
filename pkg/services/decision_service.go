package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
)

// DecisionService reads AI decisions and records operator feedback.
// Decisions are append-only; feedback and notes are the only mutable
// fields.
type DecisionService struct {
	db  *database.Client
	log *slog.Logger
	now func() time.Time
}

// NewDecisionService creates a DecisionService.
func NewDecisionService(db *database.Client) *DecisionService {
	return &DecisionService{
		db:  db,
		log: slog.Default().With("component", "decision-service"),
		now: time.Now,
	}
}

// List returns decisions, optionally scoped to a ticket, newest first.
func (s *DecisionService) List(ctx context.Context, ticketNumber string, limit int) ([]*ent.AIDecision, error) {
	query := s.db.AIDecision.Query()
	if ticketNumber != "" {
		query.Where(aidecision.TicketNumberEQ(ticketNumber))
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	decisions, err := query.
		Order(ent.Desc(aidecision.FieldAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	return decisions, nil
}

// Get returns one decision.
func (s *DecisionService) Get(ctx context.Context, id string) (*ent.AIDecision, error) {
	d, err := s.db.AIDecision.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("decision %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get decision %s: %w", id, err)
	}
	return d, nil
}

// Feedback records operator feedback on a decision. Re-submitting replaces
// the previous feedback; the audit log keeps the old value.
func (s *DecisionService) Feedback(ctx context.Context, id, actor, feedback, notes string) (*ent.AIDecision, error) {
	if !config.ValidFeedback(feedback) {
		return nil, NewValidationError("feedback", "must be one of correct, incorrect, partial")
	}
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldValue := ""
	if d.OperatorFeedback != nil {
		oldValue = string(*d.OperatorFeedback)
	}

	upd := d.Update().SetOperatorFeedback(aidecision.OperatorFeedback(feedback))
	if notes != "" {
		upd.SetFeedbackNotes(notes)
	}
	d, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("record feedback on decision %s: %w", id, err)
	}

	if actor == "" {
		actor = "operator"
	}
	if err := s.db.AuditLogEntry.Create().
		SetID(uuid.New().String()).
		SetAt(s.now()).
		SetActor(actor).
		SetTicketNumber(d.TicketNumber).
		SetEntityID(d.ID).
		SetField("operator_feedback").
		SetOldValue(oldValue).
		SetNewValue(feedback).
		SetDescription(notes).
		Exec(ctx); err != nil {
		s.log.Warn("Failed to write feedback audit entry", "decision_id", d.ID, "error", err)
	}
	return d, nil
}
