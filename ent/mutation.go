// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/auditlogentry"
	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/predicate"
	"github.com/shipdesk/shipdesk/ent/processedemail"
	"github.com/shipdesk/shipdesk/ent/supplier"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
	"github.com/shipdesk/shipdesk/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAIDecision      = "AIDecision"
	TypeAuditLogEntry   = "AuditLogEntry"
	TypeIngestJob       = "IngestJob"
	TypePendingMessage  = "PendingMessage"
	TypeProcessedEmail  = "ProcessedEmail"
	TypeSupplier        = "Supplier"
	TypeSupplierMessage = "SupplierMessage"
	TypeTicketMessage   = "TicketMessage"
	TypeTicketState     = "TicketState"
)

// AIDecisionMutation represents an operation that mutates the AIDecision nodes in the graph.
type AIDecisionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	at                  *time.Time
	detected_language   *string
	detected_intent     *string
	confidence          *float64
	addconfidence       *float64
	recommended_action  *string
	customer_draft      *string
	supplier_draft      *string
	requires_escalation *bool
	phase               *aidecision.Phase
	summary             *string
	operator_feedback   *aidecision.OperatorFeedback
	feedback_notes      *string
	clearedFields       map[string]struct{}
	ticket              *string
	clearedticket       bool
	done                bool
	oldValue            func(context.Context) (*AIDecision, error)
	predicates          []predicate.AIDecision
}

var _ ent.Mutation = (*AIDecisionMutation)(nil)

// aidecisionOption allows management of the mutation configuration using functional options.
type aidecisionOption func(*AIDecisionMutation)

// newAIDecisionMutation creates new mutation for the AIDecision entity.
func newAIDecisionMutation(c config, op Op, opts ...aidecisionOption) *AIDecisionMutation {
	m := &AIDecisionMutation{
		config:        c,
		op:            op,
		typ:           TypeAIDecision,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAIDecisionID sets the ID field of the mutation.
func withAIDecisionID(id string) aidecisionOption {
	return func(m *AIDecisionMutation) {
		var (
			err   error
			once  sync.Once
			value *AIDecision
		)
		m.oldValue = func(ctx context.Context) (*AIDecision, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AIDecision.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAIDecision sets the old AIDecision of the mutation.
func withAIDecision(node *AIDecision) aidecisionOption {
	return func(m *AIDecisionMutation) {
		m.oldValue = func(context.Context) (*AIDecision, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AIDecisionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AIDecisionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AIDecision entities.
func (m *AIDecisionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AIDecisionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AIDecisionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AIDecision.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketNumber sets the "ticket_number" field.
func (m *AIDecisionMutation) SetTicketNumber(s string) {
	m.ticket = &s
}

// TicketNumber returns the value of the "ticket_number" field in the mutation.
func (m *AIDecisionMutation) TicketNumber() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketNumber returns the old "ticket_number" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldTicketNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketNumber: %w", err)
	}
	return oldValue.TicketNumber, nil
}

// ResetTicketNumber resets all changes to the "ticket_number" field.
func (m *AIDecisionMutation) ResetTicketNumber() {
	m.ticket = nil
}

// SetAt sets the "at" field.
func (m *AIDecisionMutation) SetAt(t time.Time) {
	m.at = &t
}

// At returns the value of the "at" field in the mutation.
func (m *AIDecisionMutation) At() (r time.Time, exists bool) {
	v := m.at
	if v == nil {
		return
	}
	return *v, true
}

// OldAt returns the old "at" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAt: %w", err)
	}
	return oldValue.At, nil
}

// ResetAt resets all changes to the "at" field.
func (m *AIDecisionMutation) ResetAt() {
	m.at = nil
}

// SetDetectedLanguage sets the "detected_language" field.
func (m *AIDecisionMutation) SetDetectedLanguage(s string) {
	m.detected_language = &s
}

// DetectedLanguage returns the value of the "detected_language" field in the mutation.
func (m *AIDecisionMutation) DetectedLanguage() (r string, exists bool) {
	v := m.detected_language
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedLanguage returns the old "detected_language" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldDetectedLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedLanguage: %w", err)
	}
	return oldValue.DetectedLanguage, nil
}

// ClearDetectedLanguage clears the value of the "detected_language" field.
func (m *AIDecisionMutation) ClearDetectedLanguage() {
	m.detected_language = nil
	m.clearedFields[aidecision.FieldDetectedLanguage] = struct{}{}
}

// DetectedLanguageCleared returns if the "detected_language" field was cleared in this mutation.
func (m *AIDecisionMutation) DetectedLanguageCleared() bool {
	_, ok := m.clearedFields[aidecision.FieldDetectedLanguage]
	return ok
}

// ResetDetectedLanguage resets all changes to the "detected_language" field.
func (m *AIDecisionMutation) ResetDetectedLanguage() {
	m.detected_language = nil
	delete(m.clearedFields, aidecision.FieldDetectedLanguage)
}

// SetDetectedIntent sets the "detected_intent" field.
func (m *AIDecisionMutation) SetDetectedIntent(s string) {
	m.detected_intent = &s
}

// DetectedIntent returns the value of the "detected_intent" field in the mutation.
func (m *AIDecisionMutation) DetectedIntent() (r string, exists bool) {
	v := m.detected_intent
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedIntent returns the old "detected_intent" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldDetectedIntent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedIntent: %w", err)
	}
	return oldValue.DetectedIntent, nil
}

// ClearDetectedIntent clears the value of the "detected_intent" field.
func (m *AIDecisionMutation) ClearDetectedIntent() {
	m.detected_intent = nil
	m.clearedFields[aidecision.FieldDetectedIntent] = struct{}{}
}

// DetectedIntentCleared returns if the "detected_intent" field was cleared in this mutation.
func (m *AIDecisionMutation) DetectedIntentCleared() bool {
	_, ok := m.clearedFields[aidecision.FieldDetectedIntent]
	return ok
}

// ResetDetectedIntent resets all changes to the "detected_intent" field.
func (m *AIDecisionMutation) ResetDetectedIntent() {
	m.detected_intent = nil
	delete(m.clearedFields, aidecision.FieldDetectedIntent)
}

// SetConfidence sets the "confidence" field.
func (m *AIDecisionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AIDecisionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AIDecisionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AIDecisionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AIDecisionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetRecommendedAction sets the "recommended_action" field.
func (m *AIDecisionMutation) SetRecommendedAction(s string) {
	m.recommended_action = &s
}

// RecommendedAction returns the value of the "recommended_action" field in the mutation.
func (m *AIDecisionMutation) RecommendedAction() (r string, exists bool) {
	v := m.recommended_action
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedAction returns the old "recommended_action" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldRecommendedAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedAction: %w", err)
	}
	return oldValue.RecommendedAction, nil
}

// ClearRecommendedAction clears the value of the "recommended_action" field.
func (m *AIDecisionMutation) ClearRecommendedAction() {
	m.recommended_action = nil
	m.clearedFields[aidecision.FieldRecommendedAction] = struct{}{}
}

// RecommendedActionCleared returns if the "recommended_action" field was cleared in this mutation.
func (m *AIDecisionMutation) RecommendedActionCleared() bool {
	_, ok := m.clearedFields[aidecision.FieldRecommendedAction]
	return ok
}

// ResetRecommendedAction resets all changes to the "recommended_action" field.
func (m *AIDecisionMutation) ResetRecommendedAction() {
	m.recommended_action = nil
	delete(m.clearedFields, aidecision.FieldRecommendedAction)
}

// SetCustomerDraft sets the "customer_draft" field.
func (m *AIDecisionMutation) SetCustomerDraft(s string) {
	m.customer_draft = &s
}

// CustomerDraft returns the value of the "customer_draft" field in the mutation.
func (m *AIDecisionMutation) CustomerDraft() (r string, exists bool) {
	v := m.customer_draft
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerDraft returns the old "customer_draft" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldCustomerDraft(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerDraft: %w", err)
	}
	return oldValue.CustomerDraft, nil
}

// ClearCustomerDraft clears the value of the "customer_draft" field.
func (m *AIDecisionMutation) ClearCustomerDraft() {
	m.customer_draft = nil
	m.clearedFields[aidecision.FieldCustomerDraft] = struct{}{}
}

// CustomerDraftCleared returns if the "customer_draft" field was cleared in this mutation.
func (m *AIDecisionMutation) CustomerDraftCleared() bool {
	_, ok := m.clearedFields[aidecision.FieldCustomerDraft]
	return ok
}

// ResetCustomerDraft resets all changes to the "customer_draft" field.
func (m *AIDecisionMutation) ResetCustomerDraft() {
	m.customer_draft = nil
	delete(m.clearedFields, aidecision.FieldCustomerDraft)
}

// SetSupplierDraft sets the "supplier_draft" field.
func (m *AIDecisionMutation) SetSupplierDraft(s string) {
	m.supplier_draft = &s
}

// SupplierDraft returns the value of the "supplier_draft" field in the mutation.
func (m *AIDecisionMutation) SupplierDraft() (r string, exists bool) {
	v := m.supplier_draft
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierDraft returns the old "supplier_draft" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldSupplierDraft(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierDraft: %w", err)
	}
	return oldValue.SupplierDraft, nil
}

// ClearSupplierDraft clears the value of the "supplier_draft" field.
func (m *AIDecisionMutation) ClearSupplierDraft() {
	m.supplier_draft = nil
	m.clearedFields[aidecision.FieldSupplierDraft] = struct{}{}
}

// SupplierDraftCleared returns if the "supplier_draft" field was cleared in this mutation.
func (m *AIDecisionMutation) SupplierDraftCleared() bool {
	_, ok := m.clearedFields[aidecision.FieldSupplierDraft]
	return ok
}

// ResetSupplierDraft resets all changes to the "supplier_draft" field.
func (m *AIDecisionMutation) ResetSupplierDraft() {
	m.supplier_draft = nil
	delete(m.clearedFields, aidecision.FieldSupplierDraft)
}

// SetRequiresEscalation sets the "requires_escalation" field.
func (m *AIDecisionMutation) SetRequiresEscalation(b bool) {
	m.requires_escalation = &b
}

// RequiresEscalation returns the value of the "requires_escalation" field in the mutation.
func (m *AIDecisionMutation) RequiresEscalation() (r bool, exists bool) {
	v := m.requires_escalation
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresEscalation returns the old "requires_escalation" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldRequiresEscalation(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresEscalation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresEscalation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresEscalation: %w", err)
	}
	return oldValue.RequiresEscalation, nil
}

// ResetRequiresEscalation resets all changes to the "requires_escalation" field.
func (m *AIDecisionMutation) ResetRequiresEscalation() {
	m.requires_escalation = nil
}

// SetPhase sets the "phase" field.
func (m *AIDecisionMutation) SetPhase(a aidecision.Phase) {
	m.phase = &a
}

// Phase returns the value of the "phase" field in the mutation.
func (m *AIDecisionMutation) Phase() (r aidecision.Phase, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldPhase(ctx context.Context) (v aidecision.Phase, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *AIDecisionMutation) ResetPhase() {
	m.phase = nil
}

// SetSummary sets the "summary" field.
func (m *AIDecisionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *AIDecisionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *AIDecisionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[aidecision.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *AIDecisionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[aidecision.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *AIDecisionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, aidecision.FieldSummary)
}

// SetOperatorFeedback sets the "operator_feedback" field.
func (m *AIDecisionMutation) SetOperatorFeedback(af aidecision.OperatorFeedback) {
	m.operator_feedback = &af
}

// OperatorFeedback returns the value of the "operator_feedback" field in the mutation.
func (m *AIDecisionMutation) OperatorFeedback() (r aidecision.OperatorFeedback, exists bool) {
	v := m.operator_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatorFeedback returns the old "operator_feedback" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldOperatorFeedback(ctx context.Context) (v *aidecision.OperatorFeedback, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatorFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatorFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatorFeedback: %w", err)
	}
	return oldValue.OperatorFeedback, nil
}

// ClearOperatorFeedback clears the value of the "operator_feedback" field.
func (m *AIDecisionMutation) ClearOperatorFeedback() {
	m.operator_feedback = nil
	m.clearedFields[aidecision.FieldOperatorFeedback] = struct{}{}
}

// OperatorFeedbackCleared returns if the "operator_feedback" field was cleared in this mutation.
func (m *AIDecisionMutation) OperatorFeedbackCleared() bool {
	_, ok := m.clearedFields[aidecision.FieldOperatorFeedback]
	return ok
}

// ResetOperatorFeedback resets all changes to the "operator_feedback" field.
func (m *AIDecisionMutation) ResetOperatorFeedback() {
	m.operator_feedback = nil
	delete(m.clearedFields, aidecision.FieldOperatorFeedback)
}

// SetFeedbackNotes sets the "feedback_notes" field.
func (m *AIDecisionMutation) SetFeedbackNotes(s string) {
	m.feedback_notes = &s
}

// FeedbackNotes returns the value of the "feedback_notes" field in the mutation.
func (m *AIDecisionMutation) FeedbackNotes() (r string, exists bool) {
	v := m.feedback_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackNotes returns the old "feedback_notes" field's value of the AIDecision entity.
// If the AIDecision object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AIDecisionMutation) OldFeedbackNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackNotes: %w", err)
	}
	return oldValue.FeedbackNotes, nil
}

// ClearFeedbackNotes clears the value of the "feedback_notes" field.
func (m *AIDecisionMutation) ClearFeedbackNotes() {
	m.feedback_notes = nil
	m.clearedFields[aidecision.FieldFeedbackNotes] = struct{}{}
}

// FeedbackNotesCleared returns if the "feedback_notes" field was cleared in this mutation.
func (m *AIDecisionMutation) FeedbackNotesCleared() bool {
	_, ok := m.clearedFields[aidecision.FieldFeedbackNotes]
	return ok
}

// ResetFeedbackNotes resets all changes to the "feedback_notes" field.
func (m *AIDecisionMutation) ResetFeedbackNotes() {
	m.feedback_notes = nil
	delete(m.clearedFields, aidecision.FieldFeedbackNotes)
}

// SetTicketID sets the "ticket" edge to the TicketState entity by id.
func (m *AIDecisionMutation) SetTicketID(id string) {
	m.ticket = &id
}

// ClearTicket clears the "ticket" edge to the TicketState entity.
func (m *AIDecisionMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[aidecision.FieldTicketNumber] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the TicketState entity was cleared.
func (m *AIDecisionMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketID returns the "ticket" edge ID in the mutation.
func (m *AIDecisionMutation) TicketID() (id string, exists bool) {
	if m.ticket != nil {
		return *m.ticket, true
	}
	return
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *AIDecisionMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *AIDecisionMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the AIDecisionMutation builder.
func (m *AIDecisionMutation) Where(ps ...predicate.AIDecision) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AIDecisionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AIDecisionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AIDecision, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AIDecisionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AIDecisionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AIDecision).
func (m *AIDecisionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AIDecisionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.ticket != nil {
		fields = append(fields, aidecision.FieldTicketNumber)
	}
	if m.at != nil {
		fields = append(fields, aidecision.FieldAt)
	}
	if m.detected_language != nil {
		fields = append(fields, aidecision.FieldDetectedLanguage)
	}
	if m.detected_intent != nil {
		fields = append(fields, aidecision.FieldDetectedIntent)
	}
	if m.confidence != nil {
		fields = append(fields, aidecision.FieldConfidence)
	}
	if m.recommended_action != nil {
		fields = append(fields, aidecision.FieldRecommendedAction)
	}
	if m.customer_draft != nil {
		fields = append(fields, aidecision.FieldCustomerDraft)
	}
	if m.supplier_draft != nil {
		fields = append(fields, aidecision.FieldSupplierDraft)
	}
	if m.requires_escalation != nil {
		fields = append(fields, aidecision.FieldRequiresEscalation)
	}
	if m.phase != nil {
		fields = append(fields, aidecision.FieldPhase)
	}
	if m.summary != nil {
		fields = append(fields, aidecision.FieldSummary)
	}
	if m.operator_feedback != nil {
		fields = append(fields, aidecision.FieldOperatorFeedback)
	}
	if m.feedback_notes != nil {
		fields = append(fields, aidecision.FieldFeedbackNotes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AIDecisionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case aidecision.FieldTicketNumber:
		return m.TicketNumber()
	case aidecision.FieldAt:
		return m.At()
	case aidecision.FieldDetectedLanguage:
		return m.DetectedLanguage()
	case aidecision.FieldDetectedIntent:
		return m.DetectedIntent()
	case aidecision.FieldConfidence:
		return m.Confidence()
	case aidecision.FieldRecommendedAction:
		return m.RecommendedAction()
	case aidecision.FieldCustomerDraft:
		return m.CustomerDraft()
	case aidecision.FieldSupplierDraft:
		return m.SupplierDraft()
	case aidecision.FieldRequiresEscalation:
		return m.RequiresEscalation()
	case aidecision.FieldPhase:
		return m.Phase()
	case aidecision.FieldSummary:
		return m.Summary()
	case aidecision.FieldOperatorFeedback:
		return m.OperatorFeedback()
	case aidecision.FieldFeedbackNotes:
		return m.FeedbackNotes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AIDecisionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case aidecision.FieldTicketNumber:
		return m.OldTicketNumber(ctx)
	case aidecision.FieldAt:
		return m.OldAt(ctx)
	case aidecision.FieldDetectedLanguage:
		return m.OldDetectedLanguage(ctx)
	case aidecision.FieldDetectedIntent:
		return m.OldDetectedIntent(ctx)
	case aidecision.FieldConfidence:
		return m.OldConfidence(ctx)
	case aidecision.FieldRecommendedAction:
		return m.OldRecommendedAction(ctx)
	case aidecision.FieldCustomerDraft:
		return m.OldCustomerDraft(ctx)
	case aidecision.FieldSupplierDraft:
		return m.OldSupplierDraft(ctx)
	case aidecision.FieldRequiresEscalation:
		return m.OldRequiresEscalation(ctx)
	case aidecision.FieldPhase:
		return m.OldPhase(ctx)
	case aidecision.FieldSummary:
		return m.OldSummary(ctx)
	case aidecision.FieldOperatorFeedback:
		return m.OldOperatorFeedback(ctx)
	case aidecision.FieldFeedbackNotes:
		return m.OldFeedbackNotes(ctx)
	}
	return nil, fmt.Errorf("unknown AIDecision field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIDecisionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case aidecision.FieldTicketNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketNumber(v)
		return nil
	case aidecision.FieldAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAt(v)
		return nil
	case aidecision.FieldDetectedLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedLanguage(v)
		return nil
	case aidecision.FieldDetectedIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedIntent(v)
		return nil
	case aidecision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case aidecision.FieldRecommendedAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedAction(v)
		return nil
	case aidecision.FieldCustomerDraft:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerDraft(v)
		return nil
	case aidecision.FieldSupplierDraft:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierDraft(v)
		return nil
	case aidecision.FieldRequiresEscalation:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresEscalation(v)
		return nil
	case aidecision.FieldPhase:
		v, ok := value.(aidecision.Phase)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case aidecision.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case aidecision.FieldOperatorFeedback:
		v, ok := value.(aidecision.OperatorFeedback)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatorFeedback(v)
		return nil
	case aidecision.FieldFeedbackNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackNotes(v)
		return nil
	}
	return fmt.Errorf("unknown AIDecision field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AIDecisionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, aidecision.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AIDecisionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case aidecision.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AIDecisionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case aidecision.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown AIDecision numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AIDecisionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(aidecision.FieldDetectedLanguage) {
		fields = append(fields, aidecision.FieldDetectedLanguage)
	}
	if m.FieldCleared(aidecision.FieldDetectedIntent) {
		fields = append(fields, aidecision.FieldDetectedIntent)
	}
	if m.FieldCleared(aidecision.FieldRecommendedAction) {
		fields = append(fields, aidecision.FieldRecommendedAction)
	}
	if m.FieldCleared(aidecision.FieldCustomerDraft) {
		fields = append(fields, aidecision.FieldCustomerDraft)
	}
	if m.FieldCleared(aidecision.FieldSupplierDraft) {
		fields = append(fields, aidecision.FieldSupplierDraft)
	}
	if m.FieldCleared(aidecision.FieldSummary) {
		fields = append(fields, aidecision.FieldSummary)
	}
	if m.FieldCleared(aidecision.FieldOperatorFeedback) {
		fields = append(fields, aidecision.FieldOperatorFeedback)
	}
	if m.FieldCleared(aidecision.FieldFeedbackNotes) {
		fields = append(fields, aidecision.FieldFeedbackNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AIDecisionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AIDecisionMutation) ClearField(name string) error {
	switch name {
	case aidecision.FieldDetectedLanguage:
		m.ClearDetectedLanguage()
		return nil
	case aidecision.FieldDetectedIntent:
		m.ClearDetectedIntent()
		return nil
	case aidecision.FieldRecommendedAction:
		m.ClearRecommendedAction()
		return nil
	case aidecision.FieldCustomerDraft:
		m.ClearCustomerDraft()
		return nil
	case aidecision.FieldSupplierDraft:
		m.ClearSupplierDraft()
		return nil
	case aidecision.FieldSummary:
		m.ClearSummary()
		return nil
	case aidecision.FieldOperatorFeedback:
		m.ClearOperatorFeedback()
		return nil
	case aidecision.FieldFeedbackNotes:
		m.ClearFeedbackNotes()
		return nil
	}
	return fmt.Errorf("unknown AIDecision nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AIDecisionMutation) ResetField(name string) error {
	switch name {
	case aidecision.FieldTicketNumber:
		m.ResetTicketNumber()
		return nil
	case aidecision.FieldAt:
		m.ResetAt()
		return nil
	case aidecision.FieldDetectedLanguage:
		m.ResetDetectedLanguage()
		return nil
	case aidecision.FieldDetectedIntent:
		m.ResetDetectedIntent()
		return nil
	case aidecision.FieldConfidence:
		m.ResetConfidence()
		return nil
	case aidecision.FieldRecommendedAction:
		m.ResetRecommendedAction()
		return nil
	case aidecision.FieldCustomerDraft:
		m.ResetCustomerDraft()
		return nil
	case aidecision.FieldSupplierDraft:
		m.ResetSupplierDraft()
		return nil
	case aidecision.FieldRequiresEscalation:
		m.ResetRequiresEscalation()
		return nil
	case aidecision.FieldPhase:
		m.ResetPhase()
		return nil
	case aidecision.FieldSummary:
		m.ResetSummary()
		return nil
	case aidecision.FieldOperatorFeedback:
		m.ResetOperatorFeedback()
		return nil
	case aidecision.FieldFeedbackNotes:
		m.ResetFeedbackNotes()
		return nil
	}
	return fmt.Errorf("unknown AIDecision field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AIDecisionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, aidecision.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AIDecisionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case aidecision.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AIDecisionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AIDecisionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AIDecisionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, aidecision.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AIDecisionMutation) EdgeCleared(name string) bool {
	switch name {
	case aidecision.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AIDecisionMutation) ClearEdge(name string) error {
	switch name {
	case aidecision.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown AIDecision unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AIDecisionMutation) ResetEdge(name string) error {
	switch name {
	case aidecision.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown AIDecision edge %s", name)
}

// AuditLogEntryMutation represents an operation that mutates the AuditLogEntry nodes in the graph.
type AuditLogEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	at            *time.Time
	actor         *string
	ticket_number *string
	entity_id     *string
	field         *string
	old_value     *string
	new_value     *string
	description   *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditLogEntry, error)
	predicates    []predicate.AuditLogEntry
}

var _ ent.Mutation = (*AuditLogEntryMutation)(nil)

// auditlogentryOption allows management of the mutation configuration using functional options.
type auditlogentryOption func(*AuditLogEntryMutation)

// newAuditLogEntryMutation creates new mutation for the AuditLogEntry entity.
func newAuditLogEntryMutation(c config, op Op, opts ...auditlogentryOption) *AuditLogEntryMutation {
	m := &AuditLogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogEntryID sets the ID field of the mutation.
func withAuditLogEntryID(id string) auditlogentryOption {
	return func(m *AuditLogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLogEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditLogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLogEntry sets the old AuditLogEntry of the mutation.
func withAuditLogEntry(node *AuditLogEntry) auditlogentryOption {
	return func(m *AuditLogEntryMutation) {
		m.oldValue = func(context.Context) (*AuditLogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLogEntry entities.
func (m *AuditLogEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAt sets the "at" field.
func (m *AuditLogEntryMutation) SetAt(t time.Time) {
	m.at = &t
}

// At returns the value of the "at" field in the mutation.
func (m *AuditLogEntryMutation) At() (r time.Time, exists bool) {
	v := m.at
	if v == nil {
		return
	}
	return *v, true
}

// OldAt returns the old "at" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAt: %w", err)
	}
	return oldValue.At, nil
}

// ResetAt resets all changes to the "at" field.
func (m *AuditLogEntryMutation) ResetAt() {
	m.at = nil
}

// SetActor sets the "actor" field.
func (m *AuditLogEntryMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditLogEntryMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditLogEntryMutation) ResetActor() {
	m.actor = nil
}

// SetTicketNumber sets the "ticket_number" field.
func (m *AuditLogEntryMutation) SetTicketNumber(s string) {
	m.ticket_number = &s
}

// TicketNumber returns the value of the "ticket_number" field in the mutation.
func (m *AuditLogEntryMutation) TicketNumber() (r string, exists bool) {
	v := m.ticket_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketNumber returns the old "ticket_number" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldTicketNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketNumber: %w", err)
	}
	return oldValue.TicketNumber, nil
}

// ClearTicketNumber clears the value of the "ticket_number" field.
func (m *AuditLogEntryMutation) ClearTicketNumber() {
	m.ticket_number = nil
	m.clearedFields[auditlogentry.FieldTicketNumber] = struct{}{}
}

// TicketNumberCleared returns if the "ticket_number" field was cleared in this mutation.
func (m *AuditLogEntryMutation) TicketNumberCleared() bool {
	_, ok := m.clearedFields[auditlogentry.FieldTicketNumber]
	return ok
}

// ResetTicketNumber resets all changes to the "ticket_number" field.
func (m *AuditLogEntryMutation) ResetTicketNumber() {
	m.ticket_number = nil
	delete(m.clearedFields, auditlogentry.FieldTicketNumber)
}

// SetEntityID sets the "entity_id" field.
func (m *AuditLogEntryMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditLogEntryMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *AuditLogEntryMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[auditlogentry.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *AuditLogEntryMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[auditlogentry.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditLogEntryMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, auditlogentry.FieldEntityID)
}

// SetFieldField sets the "field" field.
func (m *AuditLogEntryMutation) SetFieldField(s string) {
	m.field = &s
}

// GetField returns the value of the "field" field in the mutation.
func (m *AuditLogEntryMutation) GetField() (r string, exists bool) {
	v := m.field
	if v == nil {
		return
	}
	return *v, true
}

// GetOldField returns the old "field" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) GetOldField(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("GetOldField is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("GetOldField requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for GetOldField: %w", err)
	}
	return oldValue.Field, nil
}

// ClearFieldField clears the value of the "field" field.
func (m *AuditLogEntryMutation) ClearFieldField() {
	m.field = nil
	m.clearedFields[auditlogentry.FieldField] = struct{}{}
}

// FieldFieldCleared returns if the "field" field was cleared in this mutation.
func (m *AuditLogEntryMutation) FieldFieldCleared() bool {
	_, ok := m.clearedFields[auditlogentry.FieldField]
	return ok
}

// ResetFieldField resets all changes to the "field" field.
func (m *AuditLogEntryMutation) ResetFieldField() {
	m.field = nil
	delete(m.clearedFields, auditlogentry.FieldField)
}

// SetOldValue sets the "old_value" field.
func (m *AuditLogEntryMutation) SetOldValue(s string) {
	m.old_value = &s
}

// OldValue returns the value of the "old_value" field in the mutation.
func (m *AuditLogEntryMutation) OldValue() (r string, exists bool) {
	v := m.old_value
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValue returns the old "old_value" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldOldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValue: %w", err)
	}
	return oldValue.OldValue, nil
}

// ClearOldValue clears the value of the "old_value" field.
func (m *AuditLogEntryMutation) ClearOldValue() {
	m.old_value = nil
	m.clearedFields[auditlogentry.FieldOldValue] = struct{}{}
}

// OldValueCleared returns if the "old_value" field was cleared in this mutation.
func (m *AuditLogEntryMutation) OldValueCleared() bool {
	_, ok := m.clearedFields[auditlogentry.FieldOldValue]
	return ok
}

// ResetOldValue resets all changes to the "old_value" field.
func (m *AuditLogEntryMutation) ResetOldValue() {
	m.old_value = nil
	delete(m.clearedFields, auditlogentry.FieldOldValue)
}

// SetNewValue sets the "new_value" field.
func (m *AuditLogEntryMutation) SetNewValue(s string) {
	m.new_value = &s
}

// NewValue returns the value of the "new_value" field in the mutation.
func (m *AuditLogEntryMutation) NewValue() (r string, exists bool) {
	v := m.new_value
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValue returns the old "new_value" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldNewValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValue: %w", err)
	}
	return oldValue.NewValue, nil
}

// ClearNewValue clears the value of the "new_value" field.
func (m *AuditLogEntryMutation) ClearNewValue() {
	m.new_value = nil
	m.clearedFields[auditlogentry.FieldNewValue] = struct{}{}
}

// NewValueCleared returns if the "new_value" field was cleared in this mutation.
func (m *AuditLogEntryMutation) NewValueCleared() bool {
	_, ok := m.clearedFields[auditlogentry.FieldNewValue]
	return ok
}

// ResetNewValue resets all changes to the "new_value" field.
func (m *AuditLogEntryMutation) ResetNewValue() {
	m.new_value = nil
	delete(m.clearedFields, auditlogentry.FieldNewValue)
}

// SetDescription sets the "description" field.
func (m *AuditLogEntryMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AuditLogEntryMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AuditLogEntry entity.
// If the AuditLogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogEntryMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AuditLogEntryMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[auditlogentry.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AuditLogEntryMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[auditlogentry.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AuditLogEntryMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, auditlogentry.FieldDescription)
}

// Where appends a list predicates to the AuditLogEntryMutation builder.
func (m *AuditLogEntryMutation) Where(ps ...predicate.AuditLogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLogEntry).
func (m *AuditLogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogEntryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.at != nil {
		fields = append(fields, auditlogentry.FieldAt)
	}
	if m.actor != nil {
		fields = append(fields, auditlogentry.FieldActor)
	}
	if m.ticket_number != nil {
		fields = append(fields, auditlogentry.FieldTicketNumber)
	}
	if m.entity_id != nil {
		fields = append(fields, auditlogentry.FieldEntityID)
	}
	if m.field != nil {
		fields = append(fields, auditlogentry.FieldField)
	}
	if m.old_value != nil {
		fields = append(fields, auditlogentry.FieldOldValue)
	}
	if m.new_value != nil {
		fields = append(fields, auditlogentry.FieldNewValue)
	}
	if m.description != nil {
		fields = append(fields, auditlogentry.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlogentry.FieldAt:
		return m.At()
	case auditlogentry.FieldActor:
		return m.Actor()
	case auditlogentry.FieldTicketNumber:
		return m.TicketNumber()
	case auditlogentry.FieldEntityID:
		return m.EntityID()
	case auditlogentry.FieldField:
		return m.GetField()
	case auditlogentry.FieldOldValue:
		return m.OldValue()
	case auditlogentry.FieldNewValue:
		return m.NewValue()
	case auditlogentry.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlogentry.FieldAt:
		return m.OldAt(ctx)
	case auditlogentry.FieldActor:
		return m.OldActor(ctx)
	case auditlogentry.FieldTicketNumber:
		return m.OldTicketNumber(ctx)
	case auditlogentry.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditlogentry.FieldField:
		return m.GetOldField(ctx)
	case auditlogentry.FieldOldValue:
		return m.OldOldValue(ctx)
	case auditlogentry.FieldNewValue:
		return m.OldNewValue(ctx)
	case auditlogentry.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlogentry.FieldAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAt(v)
		return nil
	case auditlogentry.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditlogentry.FieldTicketNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketNumber(v)
		return nil
	case auditlogentry.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditlogentry.FieldField:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFieldField(v)
		return nil
	case auditlogentry.FieldOldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValue(v)
		return nil
	case auditlogentry.FieldNewValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValue(v)
		return nil
	case auditlogentry.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlogentry.FieldTicketNumber) {
		fields = append(fields, auditlogentry.FieldTicketNumber)
	}
	if m.FieldCleared(auditlogentry.FieldEntityID) {
		fields = append(fields, auditlogentry.FieldEntityID)
	}
	if m.FieldCleared(auditlogentry.FieldField) {
		fields = append(fields, auditlogentry.FieldField)
	}
	if m.FieldCleared(auditlogentry.FieldOldValue) {
		fields = append(fields, auditlogentry.FieldOldValue)
	}
	if m.FieldCleared(auditlogentry.FieldNewValue) {
		fields = append(fields, auditlogentry.FieldNewValue)
	}
	if m.FieldCleared(auditlogentry.FieldDescription) {
		fields = append(fields, auditlogentry.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogEntryMutation) ClearField(name string) error {
	switch name {
	case auditlogentry.FieldTicketNumber:
		m.ClearTicketNumber()
		return nil
	case auditlogentry.FieldEntityID:
		m.ClearEntityID()
		return nil
	case auditlogentry.FieldField:
		m.ClearFieldField()
		return nil
	case auditlogentry.FieldOldValue:
		m.ClearOldValue()
		return nil
	case auditlogentry.FieldNewValue:
		m.ClearNewValue()
		return nil
	case auditlogentry.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown AuditLogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogEntryMutation) ResetField(name string) error {
	switch name {
	case auditlogentry.FieldAt:
		m.ResetAt()
		return nil
	case auditlogentry.FieldActor:
		m.ResetActor()
		return nil
	case auditlogentry.FieldTicketNumber:
		m.ResetTicketNumber()
		return nil
	case auditlogentry.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditlogentry.FieldField:
		m.ResetFieldField()
		return nil
	case auditlogentry.FieldOldValue:
		m.ResetOldValue()
		return nil
	case auditlogentry.FieldNewValue:
		m.ResetNewValue()
		return nil
	case auditlogentry.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown AuditLogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditLogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditLogEntry edge %s", name)
}

// IngestJobMutation represents an operation that mutates the IngestJob nodes in the graph.
type IngestJobMutation struct {
	config
	op                Op
	typ               string
	id                *string
	source_message_id *string
	status            *ingestjob.Status
	payload           *models.InboundEmail
	attempts          *int
	addattempts       *int
	next_attempt_at   *time.Time
	last_error        *string
	claimed_by        *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*IngestJob, error)
	predicates        []predicate.IngestJob
}

var _ ent.Mutation = (*IngestJobMutation)(nil)

// ingestjobOption allows management of the mutation configuration using functional options.
type ingestjobOption func(*IngestJobMutation)

// newIngestJobMutation creates new mutation for the IngestJob entity.
func newIngestJobMutation(c config, op Op, opts ...ingestjobOption) *IngestJobMutation {
	m := &IngestJobMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestJobID sets the ID field of the mutation.
func withIngestJobID(id string) ingestjobOption {
	return func(m *IngestJobMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestJob
		)
		m.oldValue = func(ctx context.Context) (*IngestJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestJob sets the old IngestJob of the mutation.
func withIngestJob(node *IngestJob) ingestjobOption {
	return func(m *IngestJobMutation) {
		m.oldValue = func(context.Context) (*IngestJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestJob entities.
func (m *IngestJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceMessageID sets the "source_message_id" field.
func (m *IngestJobMutation) SetSourceMessageID(s string) {
	m.source_message_id = &s
}

// SourceMessageID returns the value of the "source_message_id" field in the mutation.
func (m *IngestJobMutation) SourceMessageID() (r string, exists bool) {
	v := m.source_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMessageID returns the old "source_message_id" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldSourceMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMessageID: %w", err)
	}
	return oldValue.SourceMessageID, nil
}

// ResetSourceMessageID resets all changes to the "source_message_id" field.
func (m *IngestJobMutation) ResetSourceMessageID() {
	m.source_message_id = nil
}

// SetStatus sets the "status" field.
func (m *IngestJobMutation) SetStatus(i ingestjob.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IngestJobMutation) Status() (r ingestjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldStatus(ctx context.Context) (v ingestjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IngestJobMutation) ResetStatus() {
	m.status = nil
}

// SetPayload sets the "payload" field.
func (m *IngestJobMutation) SetPayload(me models.InboundEmail) {
	m.payload = &me
}

// Payload returns the value of the "payload" field in the mutation.
func (m *IngestJobMutation) Payload() (r models.InboundEmail, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldPayload(ctx context.Context) (v models.InboundEmail, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *IngestJobMutation) ResetPayload() {
	m.payload = nil
}

// SetAttempts sets the "attempts" field.
func (m *IngestJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *IngestJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *IngestJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *IngestJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *IngestJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *IngestJobMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *IngestJobMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *IngestJobMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetLastError sets the "last_error" field.
func (m *IngestJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *IngestJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *IngestJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[ingestjob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *IngestJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *IngestJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, ingestjob.FieldLastError)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *IngestJobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *IngestJobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldClaimedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *IngestJobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[ingestjob.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *IngestJobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *IngestJobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, ingestjob.FieldClaimedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *IngestJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IngestJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IngestJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IngestJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IngestJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *IngestJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IngestJobMutation builder.
func (m *IngestJobMutation) Where(ps ...predicate.IngestJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestJob).
func (m *IngestJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestJobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source_message_id != nil {
		fields = append(fields, ingestjob.FieldSourceMessageID)
	}
	if m.status != nil {
		fields = append(fields, ingestjob.FieldStatus)
	}
	if m.payload != nil {
		fields = append(fields, ingestjob.FieldPayload)
	}
	if m.attempts != nil {
		fields = append(fields, ingestjob.FieldAttempts)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, ingestjob.FieldNextAttemptAt)
	}
	if m.last_error != nil {
		fields = append(fields, ingestjob.FieldLastError)
	}
	if m.claimed_by != nil {
		fields = append(fields, ingestjob.FieldClaimedBy)
	}
	if m.created_at != nil {
		fields = append(fields, ingestjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, ingestjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestjob.FieldSourceMessageID:
		return m.SourceMessageID()
	case ingestjob.FieldStatus:
		return m.Status()
	case ingestjob.FieldPayload:
		return m.Payload()
	case ingestjob.FieldAttempts:
		return m.Attempts()
	case ingestjob.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case ingestjob.FieldLastError:
		return m.LastError()
	case ingestjob.FieldClaimedBy:
		return m.ClaimedBy()
	case ingestjob.FieldCreatedAt:
		return m.CreatedAt()
	case ingestjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestjob.FieldSourceMessageID:
		return m.OldSourceMessageID(ctx)
	case ingestjob.FieldStatus:
		return m.OldStatus(ctx)
	case ingestjob.FieldPayload:
		return m.OldPayload(ctx)
	case ingestjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case ingestjob.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case ingestjob.FieldLastError:
		return m.OldLastError(ctx)
	case ingestjob.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case ingestjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case ingestjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IngestJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestjob.FieldSourceMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMessageID(v)
		return nil
	case ingestjob.FieldStatus:
		v, ok := value.(ingestjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ingestjob.FieldPayload:
		v, ok := value.(models.InboundEmail)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case ingestjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case ingestjob.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case ingestjob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case ingestjob.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case ingestjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case ingestjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IngestJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, ingestjob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingestjob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingestjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown IngestJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestjob.FieldLastError) {
		fields = append(fields, ingestjob.FieldLastError)
	}
	if m.FieldCleared(ingestjob.FieldClaimedBy) {
		fields = append(fields, ingestjob.FieldClaimedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestJobMutation) ClearField(name string) error {
	switch name {
	case ingestjob.FieldLastError:
		m.ClearLastError()
		return nil
	case ingestjob.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	}
	return fmt.Errorf("unknown IngestJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestJobMutation) ResetField(name string) error {
	switch name {
	case ingestjob.FieldSourceMessageID:
		m.ResetSourceMessageID()
		return nil
	case ingestjob.FieldStatus:
		m.ResetStatus()
		return nil
	case ingestjob.FieldPayload:
		m.ResetPayload()
		return nil
	case ingestjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case ingestjob.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case ingestjob.FieldLastError:
		m.ResetLastError()
		return nil
	case ingestjob.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case ingestjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case ingestjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IngestJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IngestJob edge %s", name)
}

// PendingMessageMutation represents an operation that mutates the PendingMessage nodes in the graph.
type PendingMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kind                *pendingmessage.Kind
	to                  *string
	cc                  *[]string
	appendcc            []string
	bcc                 *[]string
	appendbcc           []string
	subject             *string
	body                *string
	attachments         *[]models.Attachment
	appendattachments   []models.Attachment
	confidence          *float64
	addconfidence       *float64
	decision_id         *string
	status              *pendingmessage.Status
	retry_count         *int
	addretry_count      *int
	last_error          *string
	next_attempt_at     *time.Time
	created_at          *time.Time
	reviewed_at         *time.Time
	reviewed_by         *string
	sent_at             *time.Time
	upstream_message_id *string
	rejection_reason    *string
	clearedFields       map[string]struct{}
	ticket              *string
	clearedticket       bool
	done                bool
	oldValue            func(context.Context) (*PendingMessage, error)
	predicates          []predicate.PendingMessage
}

var _ ent.Mutation = (*PendingMessageMutation)(nil)

// pendingmessageOption allows management of the mutation configuration using functional options.
type pendingmessageOption func(*PendingMessageMutation)

// newPendingMessageMutation creates new mutation for the PendingMessage entity.
func newPendingMessageMutation(c config, op Op, opts ...pendingmessageOption) *PendingMessageMutation {
	m := &PendingMessageMutation{
		config:        c,
		op:            op,
		typ:           TypePendingMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPendingMessageID sets the ID field of the mutation.
func withPendingMessageID(id string) pendingmessageOption {
	return func(m *PendingMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *PendingMessage
		)
		m.oldValue = func(ctx context.Context) (*PendingMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PendingMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPendingMessage sets the old PendingMessage of the mutation.
func withPendingMessage(node *PendingMessage) pendingmessageOption {
	return func(m *PendingMessageMutation) {
		m.oldValue = func(context.Context) (*PendingMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PendingMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PendingMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PendingMessage entities.
func (m *PendingMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PendingMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PendingMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PendingMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketNumber sets the "ticket_number" field.
func (m *PendingMessageMutation) SetTicketNumber(s string) {
	m.ticket = &s
}

// TicketNumber returns the value of the "ticket_number" field in the mutation.
func (m *PendingMessageMutation) TicketNumber() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketNumber returns the old "ticket_number" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldTicketNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketNumber: %w", err)
	}
	return oldValue.TicketNumber, nil
}

// ResetTicketNumber resets all changes to the "ticket_number" field.
func (m *PendingMessageMutation) ResetTicketNumber() {
	m.ticket = nil
}

// SetKind sets the "kind" field.
func (m *PendingMessageMutation) SetKind(pe pendingmessage.Kind) {
	m.kind = &pe
}

// Kind returns the value of the "kind" field in the mutation.
func (m *PendingMessageMutation) Kind() (r pendingmessage.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldKind(ctx context.Context) (v pendingmessage.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *PendingMessageMutation) ResetKind() {
	m.kind = nil
}

// SetTo sets the "to" field.
func (m *PendingMessageMutation) SetTo(s string) {
	m.to = &s
}

// To returns the value of the "to" field in the mutation.
func (m *PendingMessageMutation) To() (r string, exists bool) {
	v := m.to
	if v == nil {
		return
	}
	return *v, true
}

// OldTo returns the old "to" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldTo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTo: %w", err)
	}
	return oldValue.To, nil
}

// ClearTo clears the value of the "to" field.
func (m *PendingMessageMutation) ClearTo() {
	m.to = nil
	m.clearedFields[pendingmessage.FieldTo] = struct{}{}
}

// ToCleared returns if the "to" field was cleared in this mutation.
func (m *PendingMessageMutation) ToCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldTo]
	return ok
}

// ResetTo resets all changes to the "to" field.
func (m *PendingMessageMutation) ResetTo() {
	m.to = nil
	delete(m.clearedFields, pendingmessage.FieldTo)
}

// SetCc sets the "cc" field.
func (m *PendingMessageMutation) SetCc(s []string) {
	m.cc = &s
	m.appendcc = nil
}

// Cc returns the value of the "cc" field in the mutation.
func (m *PendingMessageMutation) Cc() (r []string, exists bool) {
	v := m.cc
	if v == nil {
		return
	}
	return *v, true
}

// OldCc returns the old "cc" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldCc(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCc: %w", err)
	}
	return oldValue.Cc, nil
}

// AppendCc adds s to the "cc" field.
func (m *PendingMessageMutation) AppendCc(s []string) {
	m.appendcc = append(m.appendcc, s...)
}

// AppendedCc returns the list of values that were appended to the "cc" field in this mutation.
func (m *PendingMessageMutation) AppendedCc() ([]string, bool) {
	if len(m.appendcc) == 0 {
		return nil, false
	}
	return m.appendcc, true
}

// ClearCc clears the value of the "cc" field.
func (m *PendingMessageMutation) ClearCc() {
	m.cc = nil
	m.appendcc = nil
	m.clearedFields[pendingmessage.FieldCc] = struct{}{}
}

// CcCleared returns if the "cc" field was cleared in this mutation.
func (m *PendingMessageMutation) CcCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldCc]
	return ok
}

// ResetCc resets all changes to the "cc" field.
func (m *PendingMessageMutation) ResetCc() {
	m.cc = nil
	m.appendcc = nil
	delete(m.clearedFields, pendingmessage.FieldCc)
}

// SetBcc sets the "bcc" field.
func (m *PendingMessageMutation) SetBcc(s []string) {
	m.bcc = &s
	m.appendbcc = nil
}

// Bcc returns the value of the "bcc" field in the mutation.
func (m *PendingMessageMutation) Bcc() (r []string, exists bool) {
	v := m.bcc
	if v == nil {
		return
	}
	return *v, true
}

// OldBcc returns the old "bcc" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldBcc(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBcc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBcc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBcc: %w", err)
	}
	return oldValue.Bcc, nil
}

// AppendBcc adds s to the "bcc" field.
func (m *PendingMessageMutation) AppendBcc(s []string) {
	m.appendbcc = append(m.appendbcc, s...)
}

// AppendedBcc returns the list of values that were appended to the "bcc" field in this mutation.
func (m *PendingMessageMutation) AppendedBcc() ([]string, bool) {
	if len(m.appendbcc) == 0 {
		return nil, false
	}
	return m.appendbcc, true
}

// ClearBcc clears the value of the "bcc" field.
func (m *PendingMessageMutation) ClearBcc() {
	m.bcc = nil
	m.appendbcc = nil
	m.clearedFields[pendingmessage.FieldBcc] = struct{}{}
}

// BccCleared returns if the "bcc" field was cleared in this mutation.
func (m *PendingMessageMutation) BccCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldBcc]
	return ok
}

// ResetBcc resets all changes to the "bcc" field.
func (m *PendingMessageMutation) ResetBcc() {
	m.bcc = nil
	m.appendbcc = nil
	delete(m.clearedFields, pendingmessage.FieldBcc)
}

// SetSubject sets the "subject" field.
func (m *PendingMessageMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *PendingMessageMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *PendingMessageMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[pendingmessage.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *PendingMessageMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *PendingMessageMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, pendingmessage.FieldSubject)
}

// SetBody sets the "body" field.
func (m *PendingMessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *PendingMessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *PendingMessageMutation) ResetBody() {
	m.body = nil
}

// SetAttachments sets the "attachments" field.
func (m *PendingMessageMutation) SetAttachments(value []models.Attachment) {
	m.attachments = &value
	m.appendattachments = nil
}

// Attachments returns the value of the "attachments" field in the mutation.
func (m *PendingMessageMutation) Attachments() (r []models.Attachment, exists bool) {
	v := m.attachments
	if v == nil {
		return
	}
	return *v, true
}

// OldAttachments returns the old "attachments" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldAttachments(ctx context.Context) (v []models.Attachment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttachments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttachments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttachments: %w", err)
	}
	return oldValue.Attachments, nil
}

// AppendAttachments adds value to the "attachments" field.
func (m *PendingMessageMutation) AppendAttachments(value []models.Attachment) {
	m.appendattachments = append(m.appendattachments, value...)
}

// AppendedAttachments returns the list of values that were appended to the "attachments" field in this mutation.
func (m *PendingMessageMutation) AppendedAttachments() ([]models.Attachment, bool) {
	if len(m.appendattachments) == 0 {
		return nil, false
	}
	return m.appendattachments, true
}

// ClearAttachments clears the value of the "attachments" field.
func (m *PendingMessageMutation) ClearAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	m.clearedFields[pendingmessage.FieldAttachments] = struct{}{}
}

// AttachmentsCleared returns if the "attachments" field was cleared in this mutation.
func (m *PendingMessageMutation) AttachmentsCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldAttachments]
	return ok
}

// ResetAttachments resets all changes to the "attachments" field.
func (m *PendingMessageMutation) ResetAttachments() {
	m.attachments = nil
	m.appendattachments = nil
	delete(m.clearedFields, pendingmessage.FieldAttachments)
}

// SetConfidence sets the "confidence" field.
func (m *PendingMessageMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PendingMessageMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *PendingMessageMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PendingMessageMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PendingMessageMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetDecisionID sets the "decision_id" field.
func (m *PendingMessageMutation) SetDecisionID(s string) {
	m.decision_id = &s
}

// DecisionID returns the value of the "decision_id" field in the mutation.
func (m *PendingMessageMutation) DecisionID() (r string, exists bool) {
	v := m.decision_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionID returns the old "decision_id" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldDecisionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionID: %w", err)
	}
	return oldValue.DecisionID, nil
}

// ClearDecisionID clears the value of the "decision_id" field.
func (m *PendingMessageMutation) ClearDecisionID() {
	m.decision_id = nil
	m.clearedFields[pendingmessage.FieldDecisionID] = struct{}{}
}

// DecisionIDCleared returns if the "decision_id" field was cleared in this mutation.
func (m *PendingMessageMutation) DecisionIDCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldDecisionID]
	return ok
}

// ResetDecisionID resets all changes to the "decision_id" field.
func (m *PendingMessageMutation) ResetDecisionID() {
	m.decision_id = nil
	delete(m.clearedFields, pendingmessage.FieldDecisionID)
}

// SetStatus sets the "status" field.
func (m *PendingMessageMutation) SetStatus(pe pendingmessage.Status) {
	m.status = &pe
}

// Status returns the value of the "status" field in the mutation.
func (m *PendingMessageMutation) Status() (r pendingmessage.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldStatus(ctx context.Context) (v pendingmessage.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PendingMessageMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *PendingMessageMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *PendingMessageMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *PendingMessageMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *PendingMessageMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *PendingMessageMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastError sets the "last_error" field.
func (m *PendingMessageMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PendingMessageMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *PendingMessageMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[pendingmessage.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *PendingMessageMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PendingMessageMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, pendingmessage.FieldLastError)
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *PendingMessageMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *PendingMessageMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (m *PendingMessageMutation) ClearNextAttemptAt() {
	m.next_attempt_at = nil
	m.clearedFields[pendingmessage.FieldNextAttemptAt] = struct{}{}
}

// NextAttemptAtCleared returns if the "next_attempt_at" field was cleared in this mutation.
func (m *PendingMessageMutation) NextAttemptAtCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldNextAttemptAt]
	return ok
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *PendingMessageMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
	delete(m.clearedFields, pendingmessage.FieldNextAttemptAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *PendingMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PendingMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PendingMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReviewedAt sets the "reviewed_at" field.
func (m *PendingMessageMutation) SetReviewedAt(t time.Time) {
	m.reviewed_at = &t
}

// ReviewedAt returns the value of the "reviewed_at" field in the mutation.
func (m *PendingMessageMutation) ReviewedAt() (r time.Time, exists bool) {
	v := m.reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedAt returns the old "reviewed_at" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldReviewedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedAt: %w", err)
	}
	return oldValue.ReviewedAt, nil
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (m *PendingMessageMutation) ClearReviewedAt() {
	m.reviewed_at = nil
	m.clearedFields[pendingmessage.FieldReviewedAt] = struct{}{}
}

// ReviewedAtCleared returns if the "reviewed_at" field was cleared in this mutation.
func (m *PendingMessageMutation) ReviewedAtCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldReviewedAt]
	return ok
}

// ResetReviewedAt resets all changes to the "reviewed_at" field.
func (m *PendingMessageMutation) ResetReviewedAt() {
	m.reviewed_at = nil
	delete(m.clearedFields, pendingmessage.FieldReviewedAt)
}

// SetReviewedBy sets the "reviewed_by" field.
func (m *PendingMessageMutation) SetReviewedBy(s string) {
	m.reviewed_by = &s
}

// ReviewedBy returns the value of the "reviewed_by" field in the mutation.
func (m *PendingMessageMutation) ReviewedBy() (r string, exists bool) {
	v := m.reviewed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewedBy returns the old "reviewed_by" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldReviewedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewedBy: %w", err)
	}
	return oldValue.ReviewedBy, nil
}

// ClearReviewedBy clears the value of the "reviewed_by" field.
func (m *PendingMessageMutation) ClearReviewedBy() {
	m.reviewed_by = nil
	m.clearedFields[pendingmessage.FieldReviewedBy] = struct{}{}
}

// ReviewedByCleared returns if the "reviewed_by" field was cleared in this mutation.
func (m *PendingMessageMutation) ReviewedByCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldReviewedBy]
	return ok
}

// ResetReviewedBy resets all changes to the "reviewed_by" field.
func (m *PendingMessageMutation) ResetReviewedBy() {
	m.reviewed_by = nil
	delete(m.clearedFields, pendingmessage.FieldReviewedBy)
}

// SetSentAt sets the "sent_at" field.
func (m *PendingMessageMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *PendingMessageMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ClearSentAt clears the value of the "sent_at" field.
func (m *PendingMessageMutation) ClearSentAt() {
	m.sent_at = nil
	m.clearedFields[pendingmessage.FieldSentAt] = struct{}{}
}

// SentAtCleared returns if the "sent_at" field was cleared in this mutation.
func (m *PendingMessageMutation) SentAtCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldSentAt]
	return ok
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *PendingMessageMutation) ResetSentAt() {
	m.sent_at = nil
	delete(m.clearedFields, pendingmessage.FieldSentAt)
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (m *PendingMessageMutation) SetUpstreamMessageID(s string) {
	m.upstream_message_id = &s
}

// UpstreamMessageID returns the value of the "upstream_message_id" field in the mutation.
func (m *PendingMessageMutation) UpstreamMessageID() (r string, exists bool) {
	v := m.upstream_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpstreamMessageID returns the old "upstream_message_id" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldUpstreamMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpstreamMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpstreamMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpstreamMessageID: %w", err)
	}
	return oldValue.UpstreamMessageID, nil
}

// ClearUpstreamMessageID clears the value of the "upstream_message_id" field.
func (m *PendingMessageMutation) ClearUpstreamMessageID() {
	m.upstream_message_id = nil
	m.clearedFields[pendingmessage.FieldUpstreamMessageID] = struct{}{}
}

// UpstreamMessageIDCleared returns if the "upstream_message_id" field was cleared in this mutation.
func (m *PendingMessageMutation) UpstreamMessageIDCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldUpstreamMessageID]
	return ok
}

// ResetUpstreamMessageID resets all changes to the "upstream_message_id" field.
func (m *PendingMessageMutation) ResetUpstreamMessageID() {
	m.upstream_message_id = nil
	delete(m.clearedFields, pendingmessage.FieldUpstreamMessageID)
}

// SetRejectionReason sets the "rejection_reason" field.
func (m *PendingMessageMutation) SetRejectionReason(s string) {
	m.rejection_reason = &s
}

// RejectionReason returns the value of the "rejection_reason" field in the mutation.
func (m *PendingMessageMutation) RejectionReason() (r string, exists bool) {
	v := m.rejection_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRejectionReason returns the old "rejection_reason" field's value of the PendingMessage entity.
// If the PendingMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PendingMessageMutation) OldRejectionReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejectionReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejectionReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejectionReason: %w", err)
	}
	return oldValue.RejectionReason, nil
}

// ClearRejectionReason clears the value of the "rejection_reason" field.
func (m *PendingMessageMutation) ClearRejectionReason() {
	m.rejection_reason = nil
	m.clearedFields[pendingmessage.FieldRejectionReason] = struct{}{}
}

// RejectionReasonCleared returns if the "rejection_reason" field was cleared in this mutation.
func (m *PendingMessageMutation) RejectionReasonCleared() bool {
	_, ok := m.clearedFields[pendingmessage.FieldRejectionReason]
	return ok
}

// ResetRejectionReason resets all changes to the "rejection_reason" field.
func (m *PendingMessageMutation) ResetRejectionReason() {
	m.rejection_reason = nil
	delete(m.clearedFields, pendingmessage.FieldRejectionReason)
}

// SetTicketID sets the "ticket" edge to the TicketState entity by id.
func (m *PendingMessageMutation) SetTicketID(id string) {
	m.ticket = &id
}

// ClearTicket clears the "ticket" edge to the TicketState entity.
func (m *PendingMessageMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[pendingmessage.FieldTicketNumber] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the TicketState entity was cleared.
func (m *PendingMessageMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketID returns the "ticket" edge ID in the mutation.
func (m *PendingMessageMutation) TicketID() (id string, exists bool) {
	if m.ticket != nil {
		return *m.ticket, true
	}
	return
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *PendingMessageMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *PendingMessageMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the PendingMessageMutation builder.
func (m *PendingMessageMutation) Where(ps ...predicate.PendingMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PendingMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PendingMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PendingMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PendingMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PendingMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PendingMessage).
func (m *PendingMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PendingMessageMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.ticket != nil {
		fields = append(fields, pendingmessage.FieldTicketNumber)
	}
	if m.kind != nil {
		fields = append(fields, pendingmessage.FieldKind)
	}
	if m.to != nil {
		fields = append(fields, pendingmessage.FieldTo)
	}
	if m.cc != nil {
		fields = append(fields, pendingmessage.FieldCc)
	}
	if m.bcc != nil {
		fields = append(fields, pendingmessage.FieldBcc)
	}
	if m.subject != nil {
		fields = append(fields, pendingmessage.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, pendingmessage.FieldBody)
	}
	if m.attachments != nil {
		fields = append(fields, pendingmessage.FieldAttachments)
	}
	if m.confidence != nil {
		fields = append(fields, pendingmessage.FieldConfidence)
	}
	if m.decision_id != nil {
		fields = append(fields, pendingmessage.FieldDecisionID)
	}
	if m.status != nil {
		fields = append(fields, pendingmessage.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, pendingmessage.FieldRetryCount)
	}
	if m.last_error != nil {
		fields = append(fields, pendingmessage.FieldLastError)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, pendingmessage.FieldNextAttemptAt)
	}
	if m.created_at != nil {
		fields = append(fields, pendingmessage.FieldCreatedAt)
	}
	if m.reviewed_at != nil {
		fields = append(fields, pendingmessage.FieldReviewedAt)
	}
	if m.reviewed_by != nil {
		fields = append(fields, pendingmessage.FieldReviewedBy)
	}
	if m.sent_at != nil {
		fields = append(fields, pendingmessage.FieldSentAt)
	}
	if m.upstream_message_id != nil {
		fields = append(fields, pendingmessage.FieldUpstreamMessageID)
	}
	if m.rejection_reason != nil {
		fields = append(fields, pendingmessage.FieldRejectionReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PendingMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pendingmessage.FieldTicketNumber:
		return m.TicketNumber()
	case pendingmessage.FieldKind:
		return m.Kind()
	case pendingmessage.FieldTo:
		return m.To()
	case pendingmessage.FieldCc:
		return m.Cc()
	case pendingmessage.FieldBcc:
		return m.Bcc()
	case pendingmessage.FieldSubject:
		return m.Subject()
	case pendingmessage.FieldBody:
		return m.Body()
	case pendingmessage.FieldAttachments:
		return m.Attachments()
	case pendingmessage.FieldConfidence:
		return m.Confidence()
	case pendingmessage.FieldDecisionID:
		return m.DecisionID()
	case pendingmessage.FieldStatus:
		return m.Status()
	case pendingmessage.FieldRetryCount:
		return m.RetryCount()
	case pendingmessage.FieldLastError:
		return m.LastError()
	case pendingmessage.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case pendingmessage.FieldCreatedAt:
		return m.CreatedAt()
	case pendingmessage.FieldReviewedAt:
		return m.ReviewedAt()
	case pendingmessage.FieldReviewedBy:
		return m.ReviewedBy()
	case pendingmessage.FieldSentAt:
		return m.SentAt()
	case pendingmessage.FieldUpstreamMessageID:
		return m.UpstreamMessageID()
	case pendingmessage.FieldRejectionReason:
		return m.RejectionReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PendingMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pendingmessage.FieldTicketNumber:
		return m.OldTicketNumber(ctx)
	case pendingmessage.FieldKind:
		return m.OldKind(ctx)
	case pendingmessage.FieldTo:
		return m.OldTo(ctx)
	case pendingmessage.FieldCc:
		return m.OldCc(ctx)
	case pendingmessage.FieldBcc:
		return m.OldBcc(ctx)
	case pendingmessage.FieldSubject:
		return m.OldSubject(ctx)
	case pendingmessage.FieldBody:
		return m.OldBody(ctx)
	case pendingmessage.FieldAttachments:
		return m.OldAttachments(ctx)
	case pendingmessage.FieldConfidence:
		return m.OldConfidence(ctx)
	case pendingmessage.FieldDecisionID:
		return m.OldDecisionID(ctx)
	case pendingmessage.FieldStatus:
		return m.OldStatus(ctx)
	case pendingmessage.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case pendingmessage.FieldLastError:
		return m.OldLastError(ctx)
	case pendingmessage.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case pendingmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pendingmessage.FieldReviewedAt:
		return m.OldReviewedAt(ctx)
	case pendingmessage.FieldReviewedBy:
		return m.OldReviewedBy(ctx)
	case pendingmessage.FieldSentAt:
		return m.OldSentAt(ctx)
	case pendingmessage.FieldUpstreamMessageID:
		return m.OldUpstreamMessageID(ctx)
	case pendingmessage.FieldRejectionReason:
		return m.OldRejectionReason(ctx)
	}
	return nil, fmt.Errorf("unknown PendingMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pendingmessage.FieldTicketNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketNumber(v)
		return nil
	case pendingmessage.FieldKind:
		v, ok := value.(pendingmessage.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case pendingmessage.FieldTo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTo(v)
		return nil
	case pendingmessage.FieldCc:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCc(v)
		return nil
	case pendingmessage.FieldBcc:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBcc(v)
		return nil
	case pendingmessage.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case pendingmessage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case pendingmessage.FieldAttachments:
		v, ok := value.([]models.Attachment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttachments(v)
		return nil
	case pendingmessage.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case pendingmessage.FieldDecisionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionID(v)
		return nil
	case pendingmessage.FieldStatus:
		v, ok := value.(pendingmessage.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pendingmessage.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case pendingmessage.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case pendingmessage.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case pendingmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pendingmessage.FieldReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedAt(v)
		return nil
	case pendingmessage.FieldReviewedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewedBy(v)
		return nil
	case pendingmessage.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case pendingmessage.FieldUpstreamMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpstreamMessageID(v)
		return nil
	case pendingmessage.FieldRejectionReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejectionReason(v)
		return nil
	}
	return fmt.Errorf("unknown PendingMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PendingMessageMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, pendingmessage.FieldConfidence)
	}
	if m.addretry_count != nil {
		fields = append(fields, pendingmessage.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PendingMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pendingmessage.FieldConfidence:
		return m.AddedConfidence()
	case pendingmessage.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PendingMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pendingmessage.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case pendingmessage.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown PendingMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PendingMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pendingmessage.FieldTo) {
		fields = append(fields, pendingmessage.FieldTo)
	}
	if m.FieldCleared(pendingmessage.FieldCc) {
		fields = append(fields, pendingmessage.FieldCc)
	}
	if m.FieldCleared(pendingmessage.FieldBcc) {
		fields = append(fields, pendingmessage.FieldBcc)
	}
	if m.FieldCleared(pendingmessage.FieldSubject) {
		fields = append(fields, pendingmessage.FieldSubject)
	}
	if m.FieldCleared(pendingmessage.FieldAttachments) {
		fields = append(fields, pendingmessage.FieldAttachments)
	}
	if m.FieldCleared(pendingmessage.FieldDecisionID) {
		fields = append(fields, pendingmessage.FieldDecisionID)
	}
	if m.FieldCleared(pendingmessage.FieldLastError) {
		fields = append(fields, pendingmessage.FieldLastError)
	}
	if m.FieldCleared(pendingmessage.FieldNextAttemptAt) {
		fields = append(fields, pendingmessage.FieldNextAttemptAt)
	}
	if m.FieldCleared(pendingmessage.FieldReviewedAt) {
		fields = append(fields, pendingmessage.FieldReviewedAt)
	}
	if m.FieldCleared(pendingmessage.FieldReviewedBy) {
		fields = append(fields, pendingmessage.FieldReviewedBy)
	}
	if m.FieldCleared(pendingmessage.FieldSentAt) {
		fields = append(fields, pendingmessage.FieldSentAt)
	}
	if m.FieldCleared(pendingmessage.FieldUpstreamMessageID) {
		fields = append(fields, pendingmessage.FieldUpstreamMessageID)
	}
	if m.FieldCleared(pendingmessage.FieldRejectionReason) {
		fields = append(fields, pendingmessage.FieldRejectionReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PendingMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PendingMessageMutation) ClearField(name string) error {
	switch name {
	case pendingmessage.FieldTo:
		m.ClearTo()
		return nil
	case pendingmessage.FieldCc:
		m.ClearCc()
		return nil
	case pendingmessage.FieldBcc:
		m.ClearBcc()
		return nil
	case pendingmessage.FieldSubject:
		m.ClearSubject()
		return nil
	case pendingmessage.FieldAttachments:
		m.ClearAttachments()
		return nil
	case pendingmessage.FieldDecisionID:
		m.ClearDecisionID()
		return nil
	case pendingmessage.FieldLastError:
		m.ClearLastError()
		return nil
	case pendingmessage.FieldNextAttemptAt:
		m.ClearNextAttemptAt()
		return nil
	case pendingmessage.FieldReviewedAt:
		m.ClearReviewedAt()
		return nil
	case pendingmessage.FieldReviewedBy:
		m.ClearReviewedBy()
		return nil
	case pendingmessage.FieldSentAt:
		m.ClearSentAt()
		return nil
	case pendingmessage.FieldUpstreamMessageID:
		m.ClearUpstreamMessageID()
		return nil
	case pendingmessage.FieldRejectionReason:
		m.ClearRejectionReason()
		return nil
	}
	return fmt.Errorf("unknown PendingMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PendingMessageMutation) ResetField(name string) error {
	switch name {
	case pendingmessage.FieldTicketNumber:
		m.ResetTicketNumber()
		return nil
	case pendingmessage.FieldKind:
		m.ResetKind()
		return nil
	case pendingmessage.FieldTo:
		m.ResetTo()
		return nil
	case pendingmessage.FieldCc:
		m.ResetCc()
		return nil
	case pendingmessage.FieldBcc:
		m.ResetBcc()
		return nil
	case pendingmessage.FieldSubject:
		m.ResetSubject()
		return nil
	case pendingmessage.FieldBody:
		m.ResetBody()
		return nil
	case pendingmessage.FieldAttachments:
		m.ResetAttachments()
		return nil
	case pendingmessage.FieldConfidence:
		m.ResetConfidence()
		return nil
	case pendingmessage.FieldDecisionID:
		m.ResetDecisionID()
		return nil
	case pendingmessage.FieldStatus:
		m.ResetStatus()
		return nil
	case pendingmessage.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case pendingmessage.FieldLastError:
		m.ResetLastError()
		return nil
	case pendingmessage.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case pendingmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pendingmessage.FieldReviewedAt:
		m.ResetReviewedAt()
		return nil
	case pendingmessage.FieldReviewedBy:
		m.ResetReviewedBy()
		return nil
	case pendingmessage.FieldSentAt:
		m.ResetSentAt()
		return nil
	case pendingmessage.FieldUpstreamMessageID:
		m.ResetUpstreamMessageID()
		return nil
	case pendingmessage.FieldRejectionReason:
		m.ResetRejectionReason()
		return nil
	}
	return fmt.Errorf("unknown PendingMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PendingMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, pendingmessage.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PendingMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pendingmessage.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PendingMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PendingMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PendingMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, pendingmessage.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PendingMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case pendingmessage.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PendingMessageMutation) ClearEdge(name string) error {
	switch name {
	case pendingmessage.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown PendingMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PendingMessageMutation) ResetEdge(name string) error {
	switch name {
	case pendingmessage.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown PendingMessage edge %s", name)
}

// ProcessedEmailMutation represents an operation that mutates the ProcessedEmail nodes in the graph.
type ProcessedEmailMutation struct {
	config
	op                Op
	typ               string
	id                *string
	source_message_id *string
	thread_id         *string
	subject           *string
	from_address      *string
	received_at       *time.Time
	ticket_number     *string
	success           *bool
	error_message     *string
	processed_at      *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ProcessedEmail, error)
	predicates        []predicate.ProcessedEmail
}

var _ ent.Mutation = (*ProcessedEmailMutation)(nil)

// processedemailOption allows management of the mutation configuration using functional options.
type processedemailOption func(*ProcessedEmailMutation)

// newProcessedEmailMutation creates new mutation for the ProcessedEmail entity.
func newProcessedEmailMutation(c config, op Op, opts ...processedemailOption) *ProcessedEmailMutation {
	m := &ProcessedEmailMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessedEmail,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessedEmailID sets the ID field of the mutation.
func withProcessedEmailID(id string) processedemailOption {
	return func(m *ProcessedEmailMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessedEmail
		)
		m.oldValue = func(ctx context.Context) (*ProcessedEmail, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessedEmail.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessedEmail sets the old ProcessedEmail of the mutation.
func withProcessedEmail(node *ProcessedEmail) processedemailOption {
	return func(m *ProcessedEmailMutation) {
		m.oldValue = func(context.Context) (*ProcessedEmail, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessedEmailMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessedEmailMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessedEmail entities.
func (m *ProcessedEmailMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessedEmailMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessedEmailMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessedEmail.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceMessageID sets the "source_message_id" field.
func (m *ProcessedEmailMutation) SetSourceMessageID(s string) {
	m.source_message_id = &s
}

// SourceMessageID returns the value of the "source_message_id" field in the mutation.
func (m *ProcessedEmailMutation) SourceMessageID() (r string, exists bool) {
	v := m.source_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMessageID returns the old "source_message_id" field's value of the ProcessedEmail entity.
// If the ProcessedEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEmailMutation) OldSourceMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMessageID: %w", err)
	}
	return oldValue.SourceMessageID, nil
}

// ResetSourceMessageID resets all changes to the "source_message_id" field.
func (m *ProcessedEmailMutation) ResetSourceMessageID() {
	m.source_message_id = nil
}

// SetThreadID sets the "thread_id" field.
func (m *ProcessedEmailMutation) SetThreadID(s string) {
	m.thread_id = &s
}

// ThreadID returns the value of the "thread_id" field in the mutation.
func (m *ProcessedEmailMutation) ThreadID() (r string, exists bool) {
	v := m.thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldThreadID returns the old "thread_id" field's value of the ProcessedEmail entity.
// If the ProcessedEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEmailMutation) OldThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreadID: %w", err)
	}
	return oldValue.ThreadID, nil
}

// ClearThreadID clears the value of the "thread_id" field.
func (m *ProcessedEmailMutation) ClearThreadID() {
	m.thread_id = nil
	m.clearedFields[processedemail.FieldThreadID] = struct{}{}
}

// ThreadIDCleared returns if the "thread_id" field was cleared in this mutation.
func (m *ProcessedEmailMutation) ThreadIDCleared() bool {
	_, ok := m.clearedFields[processedemail.FieldThreadID]
	return ok
}

// ResetThreadID resets all changes to the "thread_id" field.
func (m *ProcessedEmailMutation) ResetThreadID() {
	m.thread_id = nil
	delete(m.clearedFields, processedemail.FieldThreadID)
}

// SetSubject sets the "subject" field.
func (m *ProcessedEmailMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *ProcessedEmailMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the ProcessedEmail entity.
// If the ProcessedEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEmailMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *ProcessedEmailMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[processedemail.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *ProcessedEmailMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[processedemail.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *ProcessedEmailMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, processedemail.FieldSubject)
}

// SetFromAddress sets the "from_address" field.
func (m *ProcessedEmailMutation) SetFromAddress(s string) {
	m.from_address = &s
}

// FromAddress returns the value of the "from_address" field in the mutation.
func (m *ProcessedEmailMutation) FromAddress() (r string, exists bool) {
	v := m.from_address
	if v == nil {
		return
	}
	return *v, true
}

// OldFromAddress returns the old "from_address" field's value of the ProcessedEmail entity.
// If the ProcessedEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEmailMutation) OldFromAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromAddress: %w", err)
	}
	return oldValue.FromAddress, nil
}

// ClearFromAddress clears the value of the "from_address" field.
func (m *ProcessedEmailMutation) ClearFromAddress() {
	m.from_address = nil
	m.clearedFields[processedemail.FieldFromAddress] = struct{}{}
}

// FromAddressCleared returns if the "from_address" field was cleared in this mutation.
func (m *ProcessedEmailMutation) FromAddressCleared() bool {
	_, ok := m.clearedFields[processedemail.FieldFromAddress]
	return ok
}

// ResetFromAddress resets all changes to the "from_address" field.
func (m *ProcessedEmailMutation) ResetFromAddress() {
	m.from_address = nil
	delete(m.clearedFields, processedemail.FieldFromAddress)
}

// SetReceivedAt sets the "received_at" field.
func (m *ProcessedEmailMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *ProcessedEmailMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the ProcessedEmail entity.
// If the ProcessedEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEmailMutation) OldReceivedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ClearReceivedAt clears the value of the "received_at" field.
func (m *ProcessedEmailMutation) ClearReceivedAt() {
	m.received_at = nil
	m.clearedFields[processedemail.FieldReceivedAt] = struct{}{}
}

// ReceivedAtCleared returns if the "received_at" field was cleared in this mutation.
func (m *ProcessedEmailMutation) ReceivedAtCleared() bool {
	_, ok := m.clearedFields[processedemail.FieldReceivedAt]
	return ok
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *ProcessedEmailMutation) ResetReceivedAt() {
	m.received_at = nil
	delete(m.clearedFields, processedemail.FieldReceivedAt)
}

// SetTicketNumber sets the "ticket_number" field.
func (m *ProcessedEmailMutation) SetTicketNumber(s string) {
	m.ticket_number = &s
}

// TicketNumber returns the value of the "ticket_number" field in the mutation.
func (m *ProcessedEmailMutation) TicketNumber() (r string, exists bool) {
	v := m.ticket_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketNumber returns the old "ticket_number" field's value of the ProcessedEmail entity.
// If the ProcessedEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEmailMutation) OldTicketNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketNumber: %w", err)
	}
	return oldValue.TicketNumber, nil
}

// ClearTicketNumber clears the value of the "ticket_number" field.
func (m *ProcessedEmailMutation) ClearTicketNumber() {
	m.ticket_number = nil
	m.clearedFields[processedemail.FieldTicketNumber] = struct{}{}
}

// TicketNumberCleared returns if the "ticket_number" field was cleared in this mutation.
func (m *ProcessedEmailMutation) TicketNumberCleared() bool {
	_, ok := m.clearedFields[processedemail.FieldTicketNumber]
	return ok
}

// ResetTicketNumber resets all changes to the "ticket_number" field.
func (m *ProcessedEmailMutation) ResetTicketNumber() {
	m.ticket_number = nil
	delete(m.clearedFields, processedemail.FieldTicketNumber)
}

// SetSuccess sets the "success" field.
func (m *ProcessedEmailMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *ProcessedEmailMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the ProcessedEmail entity.
// If the ProcessedEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEmailMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *ProcessedEmailMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessedEmailMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessedEmailMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessedEmail entity.
// If the ProcessedEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEmailMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessedEmailMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processedemail.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessedEmailMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processedemail.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessedEmailMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processedemail.FieldErrorMessage)
}

// SetProcessedAt sets the "processed_at" field.
func (m *ProcessedEmailMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *ProcessedEmailMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the ProcessedEmail entity.
// If the ProcessedEmail object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEmailMutation) OldProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *ProcessedEmailMutation) ResetProcessedAt() {
	m.processed_at = nil
}

// Where appends a list predicates to the ProcessedEmailMutation builder.
func (m *ProcessedEmailMutation) Where(ps ...predicate.ProcessedEmail) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessedEmailMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessedEmailMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessedEmail, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessedEmailMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessedEmailMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessedEmail).
func (m *ProcessedEmailMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessedEmailMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source_message_id != nil {
		fields = append(fields, processedemail.FieldSourceMessageID)
	}
	if m.thread_id != nil {
		fields = append(fields, processedemail.FieldThreadID)
	}
	if m.subject != nil {
		fields = append(fields, processedemail.FieldSubject)
	}
	if m.from_address != nil {
		fields = append(fields, processedemail.FieldFromAddress)
	}
	if m.received_at != nil {
		fields = append(fields, processedemail.FieldReceivedAt)
	}
	if m.ticket_number != nil {
		fields = append(fields, processedemail.FieldTicketNumber)
	}
	if m.success != nil {
		fields = append(fields, processedemail.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, processedemail.FieldErrorMessage)
	}
	if m.processed_at != nil {
		fields = append(fields, processedemail.FieldProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessedEmailMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processedemail.FieldSourceMessageID:
		return m.SourceMessageID()
	case processedemail.FieldThreadID:
		return m.ThreadID()
	case processedemail.FieldSubject:
		return m.Subject()
	case processedemail.FieldFromAddress:
		return m.FromAddress()
	case processedemail.FieldReceivedAt:
		return m.ReceivedAt()
	case processedemail.FieldTicketNumber:
		return m.TicketNumber()
	case processedemail.FieldSuccess:
		return m.Success()
	case processedemail.FieldErrorMessage:
		return m.ErrorMessage()
	case processedemail.FieldProcessedAt:
		return m.ProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessedEmailMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processedemail.FieldSourceMessageID:
		return m.OldSourceMessageID(ctx)
	case processedemail.FieldThreadID:
		return m.OldThreadID(ctx)
	case processedemail.FieldSubject:
		return m.OldSubject(ctx)
	case processedemail.FieldFromAddress:
		return m.OldFromAddress(ctx)
	case processedemail.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case processedemail.FieldTicketNumber:
		return m.OldTicketNumber(ctx)
	case processedemail.FieldSuccess:
		return m.OldSuccess(ctx)
	case processedemail.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case processedemail.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessedEmail field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedEmailMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processedemail.FieldSourceMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMessageID(v)
		return nil
	case processedemail.FieldThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreadID(v)
		return nil
	case processedemail.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case processedemail.FieldFromAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromAddress(v)
		return nil
	case processedemail.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case processedemail.FieldTicketNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketNumber(v)
		return nil
	case processedemail.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case processedemail.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case processedemail.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedEmail field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessedEmailMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessedEmailMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedEmailMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessedEmail numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessedEmailMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processedemail.FieldThreadID) {
		fields = append(fields, processedemail.FieldThreadID)
	}
	if m.FieldCleared(processedemail.FieldSubject) {
		fields = append(fields, processedemail.FieldSubject)
	}
	if m.FieldCleared(processedemail.FieldFromAddress) {
		fields = append(fields, processedemail.FieldFromAddress)
	}
	if m.FieldCleared(processedemail.FieldReceivedAt) {
		fields = append(fields, processedemail.FieldReceivedAt)
	}
	if m.FieldCleared(processedemail.FieldTicketNumber) {
		fields = append(fields, processedemail.FieldTicketNumber)
	}
	if m.FieldCleared(processedemail.FieldErrorMessage) {
		fields = append(fields, processedemail.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessedEmailMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessedEmailMutation) ClearField(name string) error {
	switch name {
	case processedemail.FieldThreadID:
		m.ClearThreadID()
		return nil
	case processedemail.FieldSubject:
		m.ClearSubject()
		return nil
	case processedemail.FieldFromAddress:
		m.ClearFromAddress()
		return nil
	case processedemail.FieldReceivedAt:
		m.ClearReceivedAt()
		return nil
	case processedemail.FieldTicketNumber:
		m.ClearTicketNumber()
		return nil
	case processedemail.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ProcessedEmail nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessedEmailMutation) ResetField(name string) error {
	switch name {
	case processedemail.FieldSourceMessageID:
		m.ResetSourceMessageID()
		return nil
	case processedemail.FieldThreadID:
		m.ResetThreadID()
		return nil
	case processedemail.FieldSubject:
		m.ResetSubject()
		return nil
	case processedemail.FieldFromAddress:
		m.ResetFromAddress()
		return nil
	case processedemail.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case processedemail.FieldTicketNumber:
		m.ResetTicketNumber()
		return nil
	case processedemail.FieldSuccess:
		m.ResetSuccess()
		return nil
	case processedemail.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case processedemail.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessedEmail field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessedEmailMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessedEmailMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessedEmailMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessedEmailMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessedEmailMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessedEmailMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessedEmailMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessedEmail unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessedEmailMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessedEmail edge %s", name)
}

// SupplierMutation represents an operation that mutates the Supplier nodes in the graph.
type SupplierMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	default_email *string
	contacts      *map[string]string
	language      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Supplier, error)
	predicates    []predicate.Supplier
}

var _ ent.Mutation = (*SupplierMutation)(nil)

// supplierOption allows management of the mutation configuration using functional options.
type supplierOption func(*SupplierMutation)

// newSupplierMutation creates new mutation for the Supplier entity.
func newSupplierMutation(c config, op Op, opts ...supplierOption) *SupplierMutation {
	m := &SupplierMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplier,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierID sets the ID field of the mutation.
func withSupplierID(id string) supplierOption {
	return func(m *SupplierMutation) {
		var (
			err   error
			once  sync.Once
			value *Supplier
		)
		m.oldValue = func(ctx context.Context) (*Supplier, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Supplier.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplier sets the old Supplier of the mutation.
func withSupplier(node *Supplier) supplierOption {
	return func(m *SupplierMutation) {
		m.oldValue = func(context.Context) (*Supplier, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Supplier entities.
func (m *SupplierMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Supplier.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SupplierMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SupplierMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SupplierMutation) ResetName() {
	m.name = nil
}

// SetDefaultEmail sets the "default_email" field.
func (m *SupplierMutation) SetDefaultEmail(s string) {
	m.default_email = &s
}

// DefaultEmail returns the value of the "default_email" field in the mutation.
func (m *SupplierMutation) DefaultEmail() (r string, exists bool) {
	v := m.default_email
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultEmail returns the old "default_email" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldDefaultEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultEmail: %w", err)
	}
	return oldValue.DefaultEmail, nil
}

// ResetDefaultEmail resets all changes to the "default_email" field.
func (m *SupplierMutation) ResetDefaultEmail() {
	m.default_email = nil
}

// SetContacts sets the "contacts" field.
func (m *SupplierMutation) SetContacts(value map[string]string) {
	m.contacts = &value
}

// Contacts returns the value of the "contacts" field in the mutation.
func (m *SupplierMutation) Contacts() (r map[string]string, exists bool) {
	v := m.contacts
	if v == nil {
		return
	}
	return *v, true
}

// OldContacts returns the old "contacts" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldContacts(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContacts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContacts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContacts: %w", err)
	}
	return oldValue.Contacts, nil
}

// ClearContacts clears the value of the "contacts" field.
func (m *SupplierMutation) ClearContacts() {
	m.contacts = nil
	m.clearedFields[supplier.FieldContacts] = struct{}{}
}

// ContactsCleared returns if the "contacts" field was cleared in this mutation.
func (m *SupplierMutation) ContactsCleared() bool {
	_, ok := m.clearedFields[supplier.FieldContacts]
	return ok
}

// ResetContacts resets all changes to the "contacts" field.
func (m *SupplierMutation) ResetContacts() {
	m.contacts = nil
	delete(m.clearedFields, supplier.FieldContacts)
}

// SetLanguage sets the "language" field.
func (m *SupplierMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *SupplierMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *SupplierMutation) ResetLanguage() {
	m.language = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SupplierMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SupplierMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Supplier entity.
// If the Supplier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SupplierMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SupplierMutation builder.
func (m *SupplierMutation) Where(ps ...predicate.Supplier) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Supplier, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Supplier).
func (m *SupplierMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, supplier.FieldName)
	}
	if m.default_email != nil {
		fields = append(fields, supplier.FieldDefaultEmail)
	}
	if m.contacts != nil {
		fields = append(fields, supplier.FieldContacts)
	}
	if m.language != nil {
		fields = append(fields, supplier.FieldLanguage)
	}
	if m.created_at != nil {
		fields = append(fields, supplier.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case supplier.FieldName:
		return m.Name()
	case supplier.FieldDefaultEmail:
		return m.DefaultEmail()
	case supplier.FieldContacts:
		return m.Contacts()
	case supplier.FieldLanguage:
		return m.Language()
	case supplier.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case supplier.FieldName:
		return m.OldName(ctx)
	case supplier.FieldDefaultEmail:
		return m.OldDefaultEmail(ctx)
	case supplier.FieldContacts:
		return m.OldContacts(ctx)
	case supplier.FieldLanguage:
		return m.OldLanguage(ctx)
	case supplier.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Supplier field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMutation) SetField(name string, value ent.Value) error {
	switch name {
	case supplier.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case supplier.FieldDefaultEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultEmail(v)
		return nil
	case supplier.FieldContacts:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContacts(v)
		return nil
	case supplier.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case supplier.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Supplier field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Supplier numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(supplier.FieldContacts) {
		fields = append(fields, supplier.FieldContacts)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierMutation) ClearField(name string) error {
	switch name {
	case supplier.FieldContacts:
		m.ClearContacts()
		return nil
	}
	return fmt.Errorf("unknown Supplier nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierMutation) ResetField(name string) error {
	switch name {
	case supplier.FieldName:
		m.ResetName()
		return nil
	case supplier.FieldDefaultEmail:
		m.ResetDefaultEmail()
		return nil
	case supplier.FieldContacts:
		m.ResetContacts()
		return nil
	case supplier.FieldLanguage:
		m.ResetLanguage()
		return nil
	case supplier.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Supplier field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Supplier unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Supplier edge %s", name)
}

// SupplierMessageMutation represents an operation that mutates the SupplierMessage nodes in the graph.
type SupplierMessageMutation struct {
	config
	op                Op
	typ               string
	id                *string
	supplier_email    *string
	sent_at           *time.Time
	reminder_sent_at  *time.Time
	response_received *bool
	next_check_at     *time.Time
	clearedFields     map[string]struct{}
	ticket            *string
	clearedticket     bool
	done              bool
	oldValue          func(context.Context) (*SupplierMessage, error)
	predicates        []predicate.SupplierMessage
}

var _ ent.Mutation = (*SupplierMessageMutation)(nil)

// suppliermessageOption allows management of the mutation configuration using functional options.
type suppliermessageOption func(*SupplierMessageMutation)

// newSupplierMessageMutation creates new mutation for the SupplierMessage entity.
func newSupplierMessageMutation(c config, op Op, opts ...suppliermessageOption) *SupplierMessageMutation {
	m := &SupplierMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeSupplierMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSupplierMessageID sets the ID field of the mutation.
func withSupplierMessageID(id string) suppliermessageOption {
	return func(m *SupplierMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *SupplierMessage
		)
		m.oldValue = func(ctx context.Context) (*SupplierMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SupplierMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSupplierMessage sets the old SupplierMessage of the mutation.
func withSupplierMessage(node *SupplierMessage) suppliermessageOption {
	return func(m *SupplierMessageMutation) {
		m.oldValue = func(context.Context) (*SupplierMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SupplierMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SupplierMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SupplierMessage entities.
func (m *SupplierMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SupplierMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SupplierMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SupplierMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSupplierEmail sets the "supplier_email" field.
func (m *SupplierMessageMutation) SetSupplierEmail(s string) {
	m.supplier_email = &s
}

// SupplierEmail returns the value of the "supplier_email" field in the mutation.
func (m *SupplierMessageMutation) SupplierEmail() (r string, exists bool) {
	v := m.supplier_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierEmail returns the old "supplier_email" field's value of the SupplierMessage entity.
// If the SupplierMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMessageMutation) OldSupplierEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierEmail: %w", err)
	}
	return oldValue.SupplierEmail, nil
}

// ResetSupplierEmail resets all changes to the "supplier_email" field.
func (m *SupplierMessageMutation) ResetSupplierEmail() {
	m.supplier_email = nil
}

// SetTicketNumber sets the "ticket_number" field.
func (m *SupplierMessageMutation) SetTicketNumber(s string) {
	m.ticket = &s
}

// TicketNumber returns the value of the "ticket_number" field in the mutation.
func (m *SupplierMessageMutation) TicketNumber() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketNumber returns the old "ticket_number" field's value of the SupplierMessage entity.
// If the SupplierMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMessageMutation) OldTicketNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketNumber: %w", err)
	}
	return oldValue.TicketNumber, nil
}

// ResetTicketNumber resets all changes to the "ticket_number" field.
func (m *SupplierMessageMutation) ResetTicketNumber() {
	m.ticket = nil
}

// SetSentAt sets the "sent_at" field.
func (m *SupplierMessageMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *SupplierMessageMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the SupplierMessage entity.
// If the SupplierMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMessageMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *SupplierMessageMutation) ResetSentAt() {
	m.sent_at = nil
}

// SetReminderSentAt sets the "reminder_sent_at" field.
func (m *SupplierMessageMutation) SetReminderSentAt(t time.Time) {
	m.reminder_sent_at = &t
}

// ReminderSentAt returns the value of the "reminder_sent_at" field in the mutation.
func (m *SupplierMessageMutation) ReminderSentAt() (r time.Time, exists bool) {
	v := m.reminder_sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReminderSentAt returns the old "reminder_sent_at" field's value of the SupplierMessage entity.
// If the SupplierMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMessageMutation) OldReminderSentAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReminderSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReminderSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReminderSentAt: %w", err)
	}
	return oldValue.ReminderSentAt, nil
}

// ClearReminderSentAt clears the value of the "reminder_sent_at" field.
func (m *SupplierMessageMutation) ClearReminderSentAt() {
	m.reminder_sent_at = nil
	m.clearedFields[suppliermessage.FieldReminderSentAt] = struct{}{}
}

// ReminderSentAtCleared returns if the "reminder_sent_at" field was cleared in this mutation.
func (m *SupplierMessageMutation) ReminderSentAtCleared() bool {
	_, ok := m.clearedFields[suppliermessage.FieldReminderSentAt]
	return ok
}

// ResetReminderSentAt resets all changes to the "reminder_sent_at" field.
func (m *SupplierMessageMutation) ResetReminderSentAt() {
	m.reminder_sent_at = nil
	delete(m.clearedFields, suppliermessage.FieldReminderSentAt)
}

// SetResponseReceived sets the "response_received" field.
func (m *SupplierMessageMutation) SetResponseReceived(b bool) {
	m.response_received = &b
}

// ResponseReceived returns the value of the "response_received" field in the mutation.
func (m *SupplierMessageMutation) ResponseReceived() (r bool, exists bool) {
	v := m.response_received
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseReceived returns the old "response_received" field's value of the SupplierMessage entity.
// If the SupplierMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMessageMutation) OldResponseReceived(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseReceived is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseReceived requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseReceived: %w", err)
	}
	return oldValue.ResponseReceived, nil
}

// ResetResponseReceived resets all changes to the "response_received" field.
func (m *SupplierMessageMutation) ResetResponseReceived() {
	m.response_received = nil
}

// SetNextCheckAt sets the "next_check_at" field.
func (m *SupplierMessageMutation) SetNextCheckAt(t time.Time) {
	m.next_check_at = &t
}

// NextCheckAt returns the value of the "next_check_at" field in the mutation.
func (m *SupplierMessageMutation) NextCheckAt() (r time.Time, exists bool) {
	v := m.next_check_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextCheckAt returns the old "next_check_at" field's value of the SupplierMessage entity.
// If the SupplierMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SupplierMessageMutation) OldNextCheckAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextCheckAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextCheckAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextCheckAt: %w", err)
	}
	return oldValue.NextCheckAt, nil
}

// ResetNextCheckAt resets all changes to the "next_check_at" field.
func (m *SupplierMessageMutation) ResetNextCheckAt() {
	m.next_check_at = nil
}

// SetTicketID sets the "ticket" edge to the TicketState entity by id.
func (m *SupplierMessageMutation) SetTicketID(id string) {
	m.ticket = &id
}

// ClearTicket clears the "ticket" edge to the TicketState entity.
func (m *SupplierMessageMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[suppliermessage.FieldTicketNumber] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the TicketState entity was cleared.
func (m *SupplierMessageMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketID returns the "ticket" edge ID in the mutation.
func (m *SupplierMessageMutation) TicketID() (id string, exists bool) {
	if m.ticket != nil {
		return *m.ticket, true
	}
	return
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *SupplierMessageMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *SupplierMessageMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the SupplierMessageMutation builder.
func (m *SupplierMessageMutation) Where(ps ...predicate.SupplierMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SupplierMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SupplierMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SupplierMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SupplierMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SupplierMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SupplierMessage).
func (m *SupplierMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SupplierMessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.supplier_email != nil {
		fields = append(fields, suppliermessage.FieldSupplierEmail)
	}
	if m.ticket != nil {
		fields = append(fields, suppliermessage.FieldTicketNumber)
	}
	if m.sent_at != nil {
		fields = append(fields, suppliermessage.FieldSentAt)
	}
	if m.reminder_sent_at != nil {
		fields = append(fields, suppliermessage.FieldReminderSentAt)
	}
	if m.response_received != nil {
		fields = append(fields, suppliermessage.FieldResponseReceived)
	}
	if m.next_check_at != nil {
		fields = append(fields, suppliermessage.FieldNextCheckAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SupplierMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case suppliermessage.FieldSupplierEmail:
		return m.SupplierEmail()
	case suppliermessage.FieldTicketNumber:
		return m.TicketNumber()
	case suppliermessage.FieldSentAt:
		return m.SentAt()
	case suppliermessage.FieldReminderSentAt:
		return m.ReminderSentAt()
	case suppliermessage.FieldResponseReceived:
		return m.ResponseReceived()
	case suppliermessage.FieldNextCheckAt:
		return m.NextCheckAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SupplierMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case suppliermessage.FieldSupplierEmail:
		return m.OldSupplierEmail(ctx)
	case suppliermessage.FieldTicketNumber:
		return m.OldTicketNumber(ctx)
	case suppliermessage.FieldSentAt:
		return m.OldSentAt(ctx)
	case suppliermessage.FieldReminderSentAt:
		return m.OldReminderSentAt(ctx)
	case suppliermessage.FieldResponseReceived:
		return m.OldResponseReceived(ctx)
	case suppliermessage.FieldNextCheckAt:
		return m.OldNextCheckAt(ctx)
	}
	return nil, fmt.Errorf("unknown SupplierMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case suppliermessage.FieldSupplierEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierEmail(v)
		return nil
	case suppliermessage.FieldTicketNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketNumber(v)
		return nil
	case suppliermessage.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case suppliermessage.FieldReminderSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReminderSentAt(v)
		return nil
	case suppliermessage.FieldResponseReceived:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseReceived(v)
		return nil
	case suppliermessage.FieldNextCheckAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextCheckAt(v)
		return nil
	}
	return fmt.Errorf("unknown SupplierMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SupplierMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SupplierMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SupplierMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SupplierMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SupplierMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(suppliermessage.FieldReminderSentAt) {
		fields = append(fields, suppliermessage.FieldReminderSentAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SupplierMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SupplierMessageMutation) ClearField(name string) error {
	switch name {
	case suppliermessage.FieldReminderSentAt:
		m.ClearReminderSentAt()
		return nil
	}
	return fmt.Errorf("unknown SupplierMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SupplierMessageMutation) ResetField(name string) error {
	switch name {
	case suppliermessage.FieldSupplierEmail:
		m.ResetSupplierEmail()
		return nil
	case suppliermessage.FieldTicketNumber:
		m.ResetTicketNumber()
		return nil
	case suppliermessage.FieldSentAt:
		m.ResetSentAt()
		return nil
	case suppliermessage.FieldReminderSentAt:
		m.ResetReminderSentAt()
		return nil
	case suppliermessage.FieldResponseReceived:
		m.ResetResponseReceived()
		return nil
	case suppliermessage.FieldNextCheckAt:
		m.ResetNextCheckAt()
		return nil
	}
	return fmt.Errorf("unknown SupplierMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SupplierMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, suppliermessage.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SupplierMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case suppliermessage.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SupplierMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SupplierMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SupplierMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, suppliermessage.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SupplierMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case suppliermessage.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SupplierMessageMutation) ClearEdge(name string) error {
	switch name {
	case suppliermessage.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown SupplierMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SupplierMessageMutation) ResetEdge(name string) error {
	switch name {
	case suppliermessage.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown SupplierMessage edge %s", name)
}

// TicketMessageMutation represents an operation that mutates the TicketMessage nodes in the graph.
type TicketMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	direction           *ticketmessage.Direction
	role                *ticketmessage.Role
	sender              *string
	recipient           *string
	subject             *string
	body                *string
	source_message_id   *string
	upstream_message_id *string
	at                  *time.Time
	clearedFields       map[string]struct{}
	ticket              *string
	clearedticket       bool
	done                bool
	oldValue            func(context.Context) (*TicketMessage, error)
	predicates          []predicate.TicketMessage
}

var _ ent.Mutation = (*TicketMessageMutation)(nil)

// ticketmessageOption allows management of the mutation configuration using functional options.
type ticketmessageOption func(*TicketMessageMutation)

// newTicketMessageMutation creates new mutation for the TicketMessage entity.
func newTicketMessageMutation(c config, op Op, opts ...ticketmessageOption) *TicketMessageMutation {
	m := &TicketMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeTicketMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketMessageID sets the ID field of the mutation.
func withTicketMessageID(id string) ticketmessageOption {
	return func(m *TicketMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *TicketMessage
		)
		m.oldValue = func(ctx context.Context) (*TicketMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TicketMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicketMessage sets the old TicketMessage of the mutation.
func withTicketMessage(node *TicketMessage) ticketmessageOption {
	return func(m *TicketMessageMutation) {
		m.oldValue = func(context.Context) (*TicketMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TicketMessage entities.
func (m *TicketMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TicketMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketNumber sets the "ticket_number" field.
func (m *TicketMessageMutation) SetTicketNumber(s string) {
	m.ticket = &s
}

// TicketNumber returns the value of the "ticket_number" field in the mutation.
func (m *TicketMessageMutation) TicketNumber() (r string, exists bool) {
	v := m.ticket
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketNumber returns the old "ticket_number" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldTicketNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketNumber: %w", err)
	}
	return oldValue.TicketNumber, nil
}

// ResetTicketNumber resets all changes to the "ticket_number" field.
func (m *TicketMessageMutation) ResetTicketNumber() {
	m.ticket = nil
}

// SetDirection sets the "direction" field.
func (m *TicketMessageMutation) SetDirection(t ticketmessage.Direction) {
	m.direction = &t
}

// Direction returns the value of the "direction" field in the mutation.
func (m *TicketMessageMutation) Direction() (r ticketmessage.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldDirection(ctx context.Context) (v ticketmessage.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *TicketMessageMutation) ResetDirection() {
	m.direction = nil
}

// SetRole sets the "role" field.
func (m *TicketMessageMutation) SetRole(t ticketmessage.Role) {
	m.role = &t
}

// Role returns the value of the "role" field in the mutation.
func (m *TicketMessageMutation) Role() (r ticketmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldRole(ctx context.Context) (v ticketmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *TicketMessageMutation) ResetRole() {
	m.role = nil
}

// SetSender sets the "sender" field.
func (m *TicketMessageMutation) SetSender(s string) {
	m.sender = &s
}

// Sender returns the value of the "sender" field in the mutation.
func (m *TicketMessageMutation) Sender() (r string, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldSender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ClearSender clears the value of the "sender" field.
func (m *TicketMessageMutation) ClearSender() {
	m.sender = nil
	m.clearedFields[ticketmessage.FieldSender] = struct{}{}
}

// SenderCleared returns if the "sender" field was cleared in this mutation.
func (m *TicketMessageMutation) SenderCleared() bool {
	_, ok := m.clearedFields[ticketmessage.FieldSender]
	return ok
}

// ResetSender resets all changes to the "sender" field.
func (m *TicketMessageMutation) ResetSender() {
	m.sender = nil
	delete(m.clearedFields, ticketmessage.FieldSender)
}

// SetRecipient sets the "recipient" field.
func (m *TicketMessageMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *TicketMessageMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ClearRecipient clears the value of the "recipient" field.
func (m *TicketMessageMutation) ClearRecipient() {
	m.recipient = nil
	m.clearedFields[ticketmessage.FieldRecipient] = struct{}{}
}

// RecipientCleared returns if the "recipient" field was cleared in this mutation.
func (m *TicketMessageMutation) RecipientCleared() bool {
	_, ok := m.clearedFields[ticketmessage.FieldRecipient]
	return ok
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *TicketMessageMutation) ResetRecipient() {
	m.recipient = nil
	delete(m.clearedFields, ticketmessage.FieldRecipient)
}

// SetSubject sets the "subject" field.
func (m *TicketMessageMutation) SetSubject(s string) {
	m.subject = &s
}

// Subject returns the value of the "subject" field in the mutation.
func (m *TicketMessageMutation) Subject() (r string, exists bool) {
	v := m.subject
	if v == nil {
		return
	}
	return *v, true
}

// OldSubject returns the old "subject" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubject: %w", err)
	}
	return oldValue.Subject, nil
}

// ClearSubject clears the value of the "subject" field.
func (m *TicketMessageMutation) ClearSubject() {
	m.subject = nil
	m.clearedFields[ticketmessage.FieldSubject] = struct{}{}
}

// SubjectCleared returns if the "subject" field was cleared in this mutation.
func (m *TicketMessageMutation) SubjectCleared() bool {
	_, ok := m.clearedFields[ticketmessage.FieldSubject]
	return ok
}

// ResetSubject resets all changes to the "subject" field.
func (m *TicketMessageMutation) ResetSubject() {
	m.subject = nil
	delete(m.clearedFields, ticketmessage.FieldSubject)
}

// SetBody sets the "body" field.
func (m *TicketMessageMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *TicketMessageMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ResetBody resets all changes to the "body" field.
func (m *TicketMessageMutation) ResetBody() {
	m.body = nil
}

// SetSourceMessageID sets the "source_message_id" field.
func (m *TicketMessageMutation) SetSourceMessageID(s string) {
	m.source_message_id = &s
}

// SourceMessageID returns the value of the "source_message_id" field in the mutation.
func (m *TicketMessageMutation) SourceMessageID() (r string, exists bool) {
	v := m.source_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMessageID returns the old "source_message_id" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldSourceMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMessageID: %w", err)
	}
	return oldValue.SourceMessageID, nil
}

// ClearSourceMessageID clears the value of the "source_message_id" field.
func (m *TicketMessageMutation) ClearSourceMessageID() {
	m.source_message_id = nil
	m.clearedFields[ticketmessage.FieldSourceMessageID] = struct{}{}
}

// SourceMessageIDCleared returns if the "source_message_id" field was cleared in this mutation.
func (m *TicketMessageMutation) SourceMessageIDCleared() bool {
	_, ok := m.clearedFields[ticketmessage.FieldSourceMessageID]
	return ok
}

// ResetSourceMessageID resets all changes to the "source_message_id" field.
func (m *TicketMessageMutation) ResetSourceMessageID() {
	m.source_message_id = nil
	delete(m.clearedFields, ticketmessage.FieldSourceMessageID)
}

// SetUpstreamMessageID sets the "upstream_message_id" field.
func (m *TicketMessageMutation) SetUpstreamMessageID(s string) {
	m.upstream_message_id = &s
}

// UpstreamMessageID returns the value of the "upstream_message_id" field in the mutation.
func (m *TicketMessageMutation) UpstreamMessageID() (r string, exists bool) {
	v := m.upstream_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUpstreamMessageID returns the old "upstream_message_id" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldUpstreamMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpstreamMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpstreamMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpstreamMessageID: %w", err)
	}
	return oldValue.UpstreamMessageID, nil
}

// ClearUpstreamMessageID clears the value of the "upstream_message_id" field.
func (m *TicketMessageMutation) ClearUpstreamMessageID() {
	m.upstream_message_id = nil
	m.clearedFields[ticketmessage.FieldUpstreamMessageID] = struct{}{}
}

// UpstreamMessageIDCleared returns if the "upstream_message_id" field was cleared in this mutation.
func (m *TicketMessageMutation) UpstreamMessageIDCleared() bool {
	_, ok := m.clearedFields[ticketmessage.FieldUpstreamMessageID]
	return ok
}

// ResetUpstreamMessageID resets all changes to the "upstream_message_id" field.
func (m *TicketMessageMutation) ResetUpstreamMessageID() {
	m.upstream_message_id = nil
	delete(m.clearedFields, ticketmessage.FieldUpstreamMessageID)
}

// SetAt sets the "at" field.
func (m *TicketMessageMutation) SetAt(t time.Time) {
	m.at = &t
}

// At returns the value of the "at" field in the mutation.
func (m *TicketMessageMutation) At() (r time.Time, exists bool) {
	v := m.at
	if v == nil {
		return
	}
	return *v, true
}

// OldAt returns the old "at" field's value of the TicketMessage entity.
// If the TicketMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketMessageMutation) OldAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAt: %w", err)
	}
	return oldValue.At, nil
}

// ResetAt resets all changes to the "at" field.
func (m *TicketMessageMutation) ResetAt() {
	m.at = nil
}

// SetTicketID sets the "ticket" edge to the TicketState entity by id.
func (m *TicketMessageMutation) SetTicketID(id string) {
	m.ticket = &id
}

// ClearTicket clears the "ticket" edge to the TicketState entity.
func (m *TicketMessageMutation) ClearTicket() {
	m.clearedticket = true
	m.clearedFields[ticketmessage.FieldTicketNumber] = struct{}{}
}

// TicketCleared reports if the "ticket" edge to the TicketState entity was cleared.
func (m *TicketMessageMutation) TicketCleared() bool {
	return m.clearedticket
}

// TicketID returns the "ticket" edge ID in the mutation.
func (m *TicketMessageMutation) TicketID() (id string, exists bool) {
	if m.ticket != nil {
		return *m.ticket, true
	}
	return
}

// TicketIDs returns the "ticket" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TicketID instead. It exists only for internal usage by the builders.
func (m *TicketMessageMutation) TicketIDs() (ids []string) {
	if id := m.ticket; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTicket resets all changes to the "ticket" edge.
func (m *TicketMessageMutation) ResetTicket() {
	m.ticket = nil
	m.clearedticket = false
}

// Where appends a list predicates to the TicketMessageMutation builder.
func (m *TicketMessageMutation) Where(ps ...predicate.TicketMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TicketMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TicketMessage).
func (m *TicketMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketMessageMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.ticket != nil {
		fields = append(fields, ticketmessage.FieldTicketNumber)
	}
	if m.direction != nil {
		fields = append(fields, ticketmessage.FieldDirection)
	}
	if m.role != nil {
		fields = append(fields, ticketmessage.FieldRole)
	}
	if m.sender != nil {
		fields = append(fields, ticketmessage.FieldSender)
	}
	if m.recipient != nil {
		fields = append(fields, ticketmessage.FieldRecipient)
	}
	if m.subject != nil {
		fields = append(fields, ticketmessage.FieldSubject)
	}
	if m.body != nil {
		fields = append(fields, ticketmessage.FieldBody)
	}
	if m.source_message_id != nil {
		fields = append(fields, ticketmessage.FieldSourceMessageID)
	}
	if m.upstream_message_id != nil {
		fields = append(fields, ticketmessage.FieldUpstreamMessageID)
	}
	if m.at != nil {
		fields = append(fields, ticketmessage.FieldAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticketmessage.FieldTicketNumber:
		return m.TicketNumber()
	case ticketmessage.FieldDirection:
		return m.Direction()
	case ticketmessage.FieldRole:
		return m.Role()
	case ticketmessage.FieldSender:
		return m.Sender()
	case ticketmessage.FieldRecipient:
		return m.Recipient()
	case ticketmessage.FieldSubject:
		return m.Subject()
	case ticketmessage.FieldBody:
		return m.Body()
	case ticketmessage.FieldSourceMessageID:
		return m.SourceMessageID()
	case ticketmessage.FieldUpstreamMessageID:
		return m.UpstreamMessageID()
	case ticketmessage.FieldAt:
		return m.At()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticketmessage.FieldTicketNumber:
		return m.OldTicketNumber(ctx)
	case ticketmessage.FieldDirection:
		return m.OldDirection(ctx)
	case ticketmessage.FieldRole:
		return m.OldRole(ctx)
	case ticketmessage.FieldSender:
		return m.OldSender(ctx)
	case ticketmessage.FieldRecipient:
		return m.OldRecipient(ctx)
	case ticketmessage.FieldSubject:
		return m.OldSubject(ctx)
	case ticketmessage.FieldBody:
		return m.OldBody(ctx)
	case ticketmessage.FieldSourceMessageID:
		return m.OldSourceMessageID(ctx)
	case ticketmessage.FieldUpstreamMessageID:
		return m.OldUpstreamMessageID(ctx)
	case ticketmessage.FieldAt:
		return m.OldAt(ctx)
	}
	return nil, fmt.Errorf("unknown TicketMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticketmessage.FieldTicketNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketNumber(v)
		return nil
	case ticketmessage.FieldDirection:
		v, ok := value.(ticketmessage.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case ticketmessage.FieldRole:
		v, ok := value.(ticketmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case ticketmessage.FieldSender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case ticketmessage.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case ticketmessage.FieldSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubject(v)
		return nil
	case ticketmessage.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case ticketmessage.FieldSourceMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMessageID(v)
		return nil
	case ticketmessage.FieldUpstreamMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpstreamMessageID(v)
		return nil
	case ticketmessage.FieldAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAt(v)
		return nil
	}
	return fmt.Errorf("unknown TicketMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TicketMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticketmessage.FieldSender) {
		fields = append(fields, ticketmessage.FieldSender)
	}
	if m.FieldCleared(ticketmessage.FieldRecipient) {
		fields = append(fields, ticketmessage.FieldRecipient)
	}
	if m.FieldCleared(ticketmessage.FieldSubject) {
		fields = append(fields, ticketmessage.FieldSubject)
	}
	if m.FieldCleared(ticketmessage.FieldSourceMessageID) {
		fields = append(fields, ticketmessage.FieldSourceMessageID)
	}
	if m.FieldCleared(ticketmessage.FieldUpstreamMessageID) {
		fields = append(fields, ticketmessage.FieldUpstreamMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketMessageMutation) ClearField(name string) error {
	switch name {
	case ticketmessage.FieldSender:
		m.ClearSender()
		return nil
	case ticketmessage.FieldRecipient:
		m.ClearRecipient()
		return nil
	case ticketmessage.FieldSubject:
		m.ClearSubject()
		return nil
	case ticketmessage.FieldSourceMessageID:
		m.ClearSourceMessageID()
		return nil
	case ticketmessage.FieldUpstreamMessageID:
		m.ClearUpstreamMessageID()
		return nil
	}
	return fmt.Errorf("unknown TicketMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketMessageMutation) ResetField(name string) error {
	switch name {
	case ticketmessage.FieldTicketNumber:
		m.ResetTicketNumber()
		return nil
	case ticketmessage.FieldDirection:
		m.ResetDirection()
		return nil
	case ticketmessage.FieldRole:
		m.ResetRole()
		return nil
	case ticketmessage.FieldSender:
		m.ResetSender()
		return nil
	case ticketmessage.FieldRecipient:
		m.ResetRecipient()
		return nil
	case ticketmessage.FieldSubject:
		m.ResetSubject()
		return nil
	case ticketmessage.FieldBody:
		m.ResetBody()
		return nil
	case ticketmessage.FieldSourceMessageID:
		m.ResetSourceMessageID()
		return nil
	case ticketmessage.FieldUpstreamMessageID:
		m.ResetUpstreamMessageID()
		return nil
	case ticketmessage.FieldAt:
		m.ResetAt()
		return nil
	}
	return fmt.Errorf("unknown TicketMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ticket != nil {
		edges = append(edges, ticketmessage.EdgeTicket)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticketmessage.EdgeTicket:
		if id := m.ticket; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedticket {
		edges = append(edges, ticketmessage.EdgeTicket)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case ticketmessage.EdgeTicket:
		return m.clearedticket
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketMessageMutation) ClearEdge(name string) error {
	switch name {
	case ticketmessage.EdgeTicket:
		m.ClearTicket()
		return nil
	}
	return fmt.Errorf("unknown TicketMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketMessageMutation) ResetEdge(name string) error {
	switch name {
	case ticketmessage.EdgeTicket:
		m.ResetTicket()
		return nil
	}
	return fmt.Errorf("unknown TicketMessage edge %s", name)
}

// TicketStateMutation represents an operation that mutates the TicketState nodes in the graph.
type TicketStateMutation struct {
	config
	op                               Op
	typ                              string
	id                               *string
	ticket_id                        *string
	status                           *ticketstate.Status
	custom_status_id                 *int
	addcustom_status_id              *int
	customer_email                   *string
	language                         *string
	order_number                     *string
	purchase_order_number            *string
	supplier_email                   *string
	supplier_ticket_references       *[]string
	appendsupplier_ticket_references []string
	escalated                        *bool
	escalation_reason                *string
	escalation_at                    *time.Time
	last_seen_at                     *time.Time
	gmail_thread_id                  *string
	created_at                       *time.Time
	clearedFields                    map[string]struct{}
	messages                         map[string]struct{}
	removedmessages                  map[string]struct{}
	clearedmessages                  bool
	decisions                        map[string]struct{}
	removeddecisions                 map[string]struct{}
	cleareddecisions                 bool
	pending_messages                 map[string]struct{}
	removedpending_messages          map[string]struct{}
	clearedpending_messages          bool
	supplier_messages                map[string]struct{}
	removedsupplier_messages         map[string]struct{}
	clearedsupplier_messages         bool
	done                             bool
	oldValue                         func(context.Context) (*TicketState, error)
	predicates                       []predicate.TicketState
}

var _ ent.Mutation = (*TicketStateMutation)(nil)

// ticketstateOption allows management of the mutation configuration using functional options.
type ticketstateOption func(*TicketStateMutation)

// newTicketStateMutation creates new mutation for the TicketState entity.
func newTicketStateMutation(c config, op Op, opts ...ticketstateOption) *TicketStateMutation {
	m := &TicketStateMutation{
		config:        c,
		op:            op,
		typ:           TypeTicketState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTicketStateID sets the ID field of the mutation.
func withTicketStateID(id string) ticketstateOption {
	return func(m *TicketStateMutation) {
		var (
			err   error
			once  sync.Once
			value *TicketState
		)
		m.oldValue = func(ctx context.Context) (*TicketState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TicketState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTicketState sets the old TicketState of the mutation.
func withTicketState(node *TicketState) ticketstateOption {
	return func(m *TicketStateMutation) {
		m.oldValue = func(context.Context) (*TicketState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TicketStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TicketStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TicketState entities.
func (m *TicketStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TicketStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TicketStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TicketState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTicketID sets the "ticket_id" field.
func (m *TicketStateMutation) SetTicketID(s string) {
	m.ticket_id = &s
}

// TicketID returns the value of the "ticket_id" field in the mutation.
func (m *TicketStateMutation) TicketID() (r string, exists bool) {
	v := m.ticket_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTicketID returns the old "ticket_id" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldTicketID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTicketID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTicketID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTicketID: %w", err)
	}
	return oldValue.TicketID, nil
}

// ClearTicketID clears the value of the "ticket_id" field.
func (m *TicketStateMutation) ClearTicketID() {
	m.ticket_id = nil
	m.clearedFields[ticketstate.FieldTicketID] = struct{}{}
}

// TicketIDCleared returns if the "ticket_id" field was cleared in this mutation.
func (m *TicketStateMutation) TicketIDCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldTicketID]
	return ok
}

// ResetTicketID resets all changes to the "ticket_id" field.
func (m *TicketStateMutation) ResetTicketID() {
	m.ticket_id = nil
	delete(m.clearedFields, ticketstate.FieldTicketID)
}

// SetStatus sets the "status" field.
func (m *TicketStateMutation) SetStatus(t ticketstate.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TicketStateMutation) Status() (r ticketstate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldStatus(ctx context.Context) (v ticketstate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TicketStateMutation) ResetStatus() {
	m.status = nil
}

// SetCustomStatusID sets the "custom_status_id" field.
func (m *TicketStateMutation) SetCustomStatusID(i int) {
	m.custom_status_id = &i
	m.addcustom_status_id = nil
}

// CustomStatusID returns the value of the "custom_status_id" field in the mutation.
func (m *TicketStateMutation) CustomStatusID() (r int, exists bool) {
	v := m.custom_status_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomStatusID returns the old "custom_status_id" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldCustomStatusID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomStatusID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomStatusID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomStatusID: %w", err)
	}
	return oldValue.CustomStatusID, nil
}

// AddCustomStatusID adds i to the "custom_status_id" field.
func (m *TicketStateMutation) AddCustomStatusID(i int) {
	if m.addcustom_status_id != nil {
		*m.addcustom_status_id += i
	} else {
		m.addcustom_status_id = &i
	}
}

// AddedCustomStatusID returns the value that was added to the "custom_status_id" field in this mutation.
func (m *TicketStateMutation) AddedCustomStatusID() (r int, exists bool) {
	v := m.addcustom_status_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearCustomStatusID clears the value of the "custom_status_id" field.
func (m *TicketStateMutation) ClearCustomStatusID() {
	m.custom_status_id = nil
	m.addcustom_status_id = nil
	m.clearedFields[ticketstate.FieldCustomStatusID] = struct{}{}
}

// CustomStatusIDCleared returns if the "custom_status_id" field was cleared in this mutation.
func (m *TicketStateMutation) CustomStatusIDCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldCustomStatusID]
	return ok
}

// ResetCustomStatusID resets all changes to the "custom_status_id" field.
func (m *TicketStateMutation) ResetCustomStatusID() {
	m.custom_status_id = nil
	m.addcustom_status_id = nil
	delete(m.clearedFields, ticketstate.FieldCustomStatusID)
}

// SetCustomerEmail sets the "customer_email" field.
func (m *TicketStateMutation) SetCustomerEmail(s string) {
	m.customer_email = &s
}

// CustomerEmail returns the value of the "customer_email" field in the mutation.
func (m *TicketStateMutation) CustomerEmail() (r string, exists bool) {
	v := m.customer_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerEmail returns the old "customer_email" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldCustomerEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerEmail: %w", err)
	}
	return oldValue.CustomerEmail, nil
}

// ClearCustomerEmail clears the value of the "customer_email" field.
func (m *TicketStateMutation) ClearCustomerEmail() {
	m.customer_email = nil
	m.clearedFields[ticketstate.FieldCustomerEmail] = struct{}{}
}

// CustomerEmailCleared returns if the "customer_email" field was cleared in this mutation.
func (m *TicketStateMutation) CustomerEmailCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldCustomerEmail]
	return ok
}

// ResetCustomerEmail resets all changes to the "customer_email" field.
func (m *TicketStateMutation) ResetCustomerEmail() {
	m.customer_email = nil
	delete(m.clearedFields, ticketstate.FieldCustomerEmail)
}

// SetLanguage sets the "language" field.
func (m *TicketStateMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *TicketStateMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *TicketStateMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[ticketstate.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *TicketStateMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *TicketStateMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, ticketstate.FieldLanguage)
}

// SetOrderNumber sets the "order_number" field.
func (m *TicketStateMutation) SetOrderNumber(s string) {
	m.order_number = &s
}

// OrderNumber returns the value of the "order_number" field in the mutation.
func (m *TicketStateMutation) OrderNumber() (r string, exists bool) {
	v := m.order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderNumber returns the old "order_number" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldOrderNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderNumber: %w", err)
	}
	return oldValue.OrderNumber, nil
}

// ClearOrderNumber clears the value of the "order_number" field.
func (m *TicketStateMutation) ClearOrderNumber() {
	m.order_number = nil
	m.clearedFields[ticketstate.FieldOrderNumber] = struct{}{}
}

// OrderNumberCleared returns if the "order_number" field was cleared in this mutation.
func (m *TicketStateMutation) OrderNumberCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldOrderNumber]
	return ok
}

// ResetOrderNumber resets all changes to the "order_number" field.
func (m *TicketStateMutation) ResetOrderNumber() {
	m.order_number = nil
	delete(m.clearedFields, ticketstate.FieldOrderNumber)
}

// SetPurchaseOrderNumber sets the "purchase_order_number" field.
func (m *TicketStateMutation) SetPurchaseOrderNumber(s string) {
	m.purchase_order_number = &s
}

// PurchaseOrderNumber returns the value of the "purchase_order_number" field in the mutation.
func (m *TicketStateMutation) PurchaseOrderNumber() (r string, exists bool) {
	v := m.purchase_order_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchaseOrderNumber returns the old "purchase_order_number" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldPurchaseOrderNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchaseOrderNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchaseOrderNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchaseOrderNumber: %w", err)
	}
	return oldValue.PurchaseOrderNumber, nil
}

// ClearPurchaseOrderNumber clears the value of the "purchase_order_number" field.
func (m *TicketStateMutation) ClearPurchaseOrderNumber() {
	m.purchase_order_number = nil
	m.clearedFields[ticketstate.FieldPurchaseOrderNumber] = struct{}{}
}

// PurchaseOrderNumberCleared returns if the "purchase_order_number" field was cleared in this mutation.
func (m *TicketStateMutation) PurchaseOrderNumberCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldPurchaseOrderNumber]
	return ok
}

// ResetPurchaseOrderNumber resets all changes to the "purchase_order_number" field.
func (m *TicketStateMutation) ResetPurchaseOrderNumber() {
	m.purchase_order_number = nil
	delete(m.clearedFields, ticketstate.FieldPurchaseOrderNumber)
}

// SetSupplierEmail sets the "supplier_email" field.
func (m *TicketStateMutation) SetSupplierEmail(s string) {
	m.supplier_email = &s
}

// SupplierEmail returns the value of the "supplier_email" field in the mutation.
func (m *TicketStateMutation) SupplierEmail() (r string, exists bool) {
	v := m.supplier_email
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierEmail returns the old "supplier_email" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldSupplierEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierEmail: %w", err)
	}
	return oldValue.SupplierEmail, nil
}

// ClearSupplierEmail clears the value of the "supplier_email" field.
func (m *TicketStateMutation) ClearSupplierEmail() {
	m.supplier_email = nil
	m.clearedFields[ticketstate.FieldSupplierEmail] = struct{}{}
}

// SupplierEmailCleared returns if the "supplier_email" field was cleared in this mutation.
func (m *TicketStateMutation) SupplierEmailCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldSupplierEmail]
	return ok
}

// ResetSupplierEmail resets all changes to the "supplier_email" field.
func (m *TicketStateMutation) ResetSupplierEmail() {
	m.supplier_email = nil
	delete(m.clearedFields, ticketstate.FieldSupplierEmail)
}

// SetSupplierTicketReferences sets the "supplier_ticket_references" field.
func (m *TicketStateMutation) SetSupplierTicketReferences(s []string) {
	m.supplier_ticket_references = &s
	m.appendsupplier_ticket_references = nil
}

// SupplierTicketReferences returns the value of the "supplier_ticket_references" field in the mutation.
func (m *TicketStateMutation) SupplierTicketReferences() (r []string, exists bool) {
	v := m.supplier_ticket_references
	if v == nil {
		return
	}
	return *v, true
}

// OldSupplierTicketReferences returns the old "supplier_ticket_references" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldSupplierTicketReferences(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupplierTicketReferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupplierTicketReferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupplierTicketReferences: %w", err)
	}
	return oldValue.SupplierTicketReferences, nil
}

// AppendSupplierTicketReferences adds s to the "supplier_ticket_references" field.
func (m *TicketStateMutation) AppendSupplierTicketReferences(s []string) {
	m.appendsupplier_ticket_references = append(m.appendsupplier_ticket_references, s...)
}

// AppendedSupplierTicketReferences returns the list of values that were appended to the "supplier_ticket_references" field in this mutation.
func (m *TicketStateMutation) AppendedSupplierTicketReferences() ([]string, bool) {
	if len(m.appendsupplier_ticket_references) == 0 {
		return nil, false
	}
	return m.appendsupplier_ticket_references, true
}

// ClearSupplierTicketReferences clears the value of the "supplier_ticket_references" field.
func (m *TicketStateMutation) ClearSupplierTicketReferences() {
	m.supplier_ticket_references = nil
	m.appendsupplier_ticket_references = nil
	m.clearedFields[ticketstate.FieldSupplierTicketReferences] = struct{}{}
}

// SupplierTicketReferencesCleared returns if the "supplier_ticket_references" field was cleared in this mutation.
func (m *TicketStateMutation) SupplierTicketReferencesCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldSupplierTicketReferences]
	return ok
}

// ResetSupplierTicketReferences resets all changes to the "supplier_ticket_references" field.
func (m *TicketStateMutation) ResetSupplierTicketReferences() {
	m.supplier_ticket_references = nil
	m.appendsupplier_ticket_references = nil
	delete(m.clearedFields, ticketstate.FieldSupplierTicketReferences)
}

// SetEscalated sets the "escalated" field.
func (m *TicketStateMutation) SetEscalated(b bool) {
	m.escalated = &b
}

// Escalated returns the value of the "escalated" field in the mutation.
func (m *TicketStateMutation) Escalated() (r bool, exists bool) {
	v := m.escalated
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalated returns the old "escalated" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldEscalated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalated: %w", err)
	}
	return oldValue.Escalated, nil
}

// ResetEscalated resets all changes to the "escalated" field.
func (m *TicketStateMutation) ResetEscalated() {
	m.escalated = nil
}

// SetEscalationReason sets the "escalation_reason" field.
func (m *TicketStateMutation) SetEscalationReason(s string) {
	m.escalation_reason = &s
}

// EscalationReason returns the value of the "escalation_reason" field in the mutation.
func (m *TicketStateMutation) EscalationReason() (r string, exists bool) {
	v := m.escalation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationReason returns the old "escalation_reason" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldEscalationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationReason: %w", err)
	}
	return oldValue.EscalationReason, nil
}

// ClearEscalationReason clears the value of the "escalation_reason" field.
func (m *TicketStateMutation) ClearEscalationReason() {
	m.escalation_reason = nil
	m.clearedFields[ticketstate.FieldEscalationReason] = struct{}{}
}

// EscalationReasonCleared returns if the "escalation_reason" field was cleared in this mutation.
func (m *TicketStateMutation) EscalationReasonCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldEscalationReason]
	return ok
}

// ResetEscalationReason resets all changes to the "escalation_reason" field.
func (m *TicketStateMutation) ResetEscalationReason() {
	m.escalation_reason = nil
	delete(m.clearedFields, ticketstate.FieldEscalationReason)
}

// SetEscalationAt sets the "escalation_at" field.
func (m *TicketStateMutation) SetEscalationAt(t time.Time) {
	m.escalation_at = &t
}

// EscalationAt returns the value of the "escalation_at" field in the mutation.
func (m *TicketStateMutation) EscalationAt() (r time.Time, exists bool) {
	v := m.escalation_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationAt returns the old "escalation_at" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldEscalationAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationAt: %w", err)
	}
	return oldValue.EscalationAt, nil
}

// ClearEscalationAt clears the value of the "escalation_at" field.
func (m *TicketStateMutation) ClearEscalationAt() {
	m.escalation_at = nil
	m.clearedFields[ticketstate.FieldEscalationAt] = struct{}{}
}

// EscalationAtCleared returns if the "escalation_at" field was cleared in this mutation.
func (m *TicketStateMutation) EscalationAtCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldEscalationAt]
	return ok
}

// ResetEscalationAt resets all changes to the "escalation_at" field.
func (m *TicketStateMutation) ResetEscalationAt() {
	m.escalation_at = nil
	delete(m.clearedFields, ticketstate.FieldEscalationAt)
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *TicketStateMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *TicketStateMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *TicketStateMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// SetGmailThreadID sets the "gmail_thread_id" field.
func (m *TicketStateMutation) SetGmailThreadID(s string) {
	m.gmail_thread_id = &s
}

// GmailThreadID returns the value of the "gmail_thread_id" field in the mutation.
func (m *TicketStateMutation) GmailThreadID() (r string, exists bool) {
	v := m.gmail_thread_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGmailThreadID returns the old "gmail_thread_id" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldGmailThreadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGmailThreadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGmailThreadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGmailThreadID: %w", err)
	}
	return oldValue.GmailThreadID, nil
}

// ClearGmailThreadID clears the value of the "gmail_thread_id" field.
func (m *TicketStateMutation) ClearGmailThreadID() {
	m.gmail_thread_id = nil
	m.clearedFields[ticketstate.FieldGmailThreadID] = struct{}{}
}

// GmailThreadIDCleared returns if the "gmail_thread_id" field was cleared in this mutation.
func (m *TicketStateMutation) GmailThreadIDCleared() bool {
	_, ok := m.clearedFields[ticketstate.FieldGmailThreadID]
	return ok
}

// ResetGmailThreadID resets all changes to the "gmail_thread_id" field.
func (m *TicketStateMutation) ResetGmailThreadID() {
	m.gmail_thread_id = nil
	delete(m.clearedFields, ticketstate.FieldGmailThreadID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TicketStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TicketStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TicketState entity.
// If the TicketState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TicketStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TicketStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddMessageIDs adds the "messages" edge to the TicketMessage entity by ids.
func (m *TicketStateMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the TicketMessage entity.
func (m *TicketStateMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the TicketMessage entity was cleared.
func (m *TicketStateMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the TicketMessage entity by IDs.
func (m *TicketStateMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the TicketMessage entity.
func (m *TicketStateMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *TicketStateMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *TicketStateMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddDecisionIDs adds the "decisions" edge to the AIDecision entity by ids.
func (m *TicketStateMutation) AddDecisionIDs(ids ...string) {
	if m.decisions == nil {
		m.decisions = make(map[string]struct{})
	}
	for i := range ids {
		m.decisions[ids[i]] = struct{}{}
	}
}

// ClearDecisions clears the "decisions" edge to the AIDecision entity.
func (m *TicketStateMutation) ClearDecisions() {
	m.cleareddecisions = true
}

// DecisionsCleared reports if the "decisions" edge to the AIDecision entity was cleared.
func (m *TicketStateMutation) DecisionsCleared() bool {
	return m.cleareddecisions
}

// RemoveDecisionIDs removes the "decisions" edge to the AIDecision entity by IDs.
func (m *TicketStateMutation) RemoveDecisionIDs(ids ...string) {
	if m.removeddecisions == nil {
		m.removeddecisions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.decisions, ids[i])
		m.removeddecisions[ids[i]] = struct{}{}
	}
}

// RemovedDecisions returns the removed IDs of the "decisions" edge to the AIDecision entity.
func (m *TicketStateMutation) RemovedDecisionsIDs() (ids []string) {
	for id := range m.removeddecisions {
		ids = append(ids, id)
	}
	return
}

// DecisionsIDs returns the "decisions" edge IDs in the mutation.
func (m *TicketStateMutation) DecisionsIDs() (ids []string) {
	for id := range m.decisions {
		ids = append(ids, id)
	}
	return
}

// ResetDecisions resets all changes to the "decisions" edge.
func (m *TicketStateMutation) ResetDecisions() {
	m.decisions = nil
	m.cleareddecisions = false
	m.removeddecisions = nil
}

// AddPendingMessageIDs adds the "pending_messages" edge to the PendingMessage entity by ids.
func (m *TicketStateMutation) AddPendingMessageIDs(ids ...string) {
	if m.pending_messages == nil {
		m.pending_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.pending_messages[ids[i]] = struct{}{}
	}
}

// ClearPendingMessages clears the "pending_messages" edge to the PendingMessage entity.
func (m *TicketStateMutation) ClearPendingMessages() {
	m.clearedpending_messages = true
}

// PendingMessagesCleared reports if the "pending_messages" edge to the PendingMessage entity was cleared.
func (m *TicketStateMutation) PendingMessagesCleared() bool {
	return m.clearedpending_messages
}

// RemovePendingMessageIDs removes the "pending_messages" edge to the PendingMessage entity by IDs.
func (m *TicketStateMutation) RemovePendingMessageIDs(ids ...string) {
	if m.removedpending_messages == nil {
		m.removedpending_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.pending_messages, ids[i])
		m.removedpending_messages[ids[i]] = struct{}{}
	}
}

// RemovedPendingMessages returns the removed IDs of the "pending_messages" edge to the PendingMessage entity.
func (m *TicketStateMutation) RemovedPendingMessagesIDs() (ids []string) {
	for id := range m.removedpending_messages {
		ids = append(ids, id)
	}
	return
}

// PendingMessagesIDs returns the "pending_messages" edge IDs in the mutation.
func (m *TicketStateMutation) PendingMessagesIDs() (ids []string) {
	for id := range m.pending_messages {
		ids = append(ids, id)
	}
	return
}

// ResetPendingMessages resets all changes to the "pending_messages" edge.
func (m *TicketStateMutation) ResetPendingMessages() {
	m.pending_messages = nil
	m.clearedpending_messages = false
	m.removedpending_messages = nil
}

// AddSupplierMessageIDs adds the "supplier_messages" edge to the SupplierMessage entity by ids.
func (m *TicketStateMutation) AddSupplierMessageIDs(ids ...string) {
	if m.supplier_messages == nil {
		m.supplier_messages = make(map[string]struct{})
	}
	for i := range ids {
		m.supplier_messages[ids[i]] = struct{}{}
	}
}

// ClearSupplierMessages clears the "supplier_messages" edge to the SupplierMessage entity.
func (m *TicketStateMutation) ClearSupplierMessages() {
	m.clearedsupplier_messages = true
}

// SupplierMessagesCleared reports if the "supplier_messages" edge to the SupplierMessage entity was cleared.
func (m *TicketStateMutation) SupplierMessagesCleared() bool {
	return m.clearedsupplier_messages
}

// RemoveSupplierMessageIDs removes the "supplier_messages" edge to the SupplierMessage entity by IDs.
func (m *TicketStateMutation) RemoveSupplierMessageIDs(ids ...string) {
	if m.removedsupplier_messages == nil {
		m.removedsupplier_messages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.supplier_messages, ids[i])
		m.removedsupplier_messages[ids[i]] = struct{}{}
	}
}

// RemovedSupplierMessages returns the removed IDs of the "supplier_messages" edge to the SupplierMessage entity.
func (m *TicketStateMutation) RemovedSupplierMessagesIDs() (ids []string) {
	for id := range m.removedsupplier_messages {
		ids = append(ids, id)
	}
	return
}

// SupplierMessagesIDs returns the "supplier_messages" edge IDs in the mutation.
func (m *TicketStateMutation) SupplierMessagesIDs() (ids []string) {
	for id := range m.supplier_messages {
		ids = append(ids, id)
	}
	return
}

// ResetSupplierMessages resets all changes to the "supplier_messages" edge.
func (m *TicketStateMutation) ResetSupplierMessages() {
	m.supplier_messages = nil
	m.clearedsupplier_messages = false
	m.removedsupplier_messages = nil
}

// Where appends a list predicates to the TicketStateMutation builder.
func (m *TicketStateMutation) Where(ps ...predicate.TicketState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TicketStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TicketStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TicketState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TicketStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TicketStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TicketState).
func (m *TicketStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TicketStateMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.ticket_id != nil {
		fields = append(fields, ticketstate.FieldTicketID)
	}
	if m.status != nil {
		fields = append(fields, ticketstate.FieldStatus)
	}
	if m.custom_status_id != nil {
		fields = append(fields, ticketstate.FieldCustomStatusID)
	}
	if m.customer_email != nil {
		fields = append(fields, ticketstate.FieldCustomerEmail)
	}
	if m.language != nil {
		fields = append(fields, ticketstate.FieldLanguage)
	}
	if m.order_number != nil {
		fields = append(fields, ticketstate.FieldOrderNumber)
	}
	if m.purchase_order_number != nil {
		fields = append(fields, ticketstate.FieldPurchaseOrderNumber)
	}
	if m.supplier_email != nil {
		fields = append(fields, ticketstate.FieldSupplierEmail)
	}
	if m.supplier_ticket_references != nil {
		fields = append(fields, ticketstate.FieldSupplierTicketReferences)
	}
	if m.escalated != nil {
		fields = append(fields, ticketstate.FieldEscalated)
	}
	if m.escalation_reason != nil {
		fields = append(fields, ticketstate.FieldEscalationReason)
	}
	if m.escalation_at != nil {
		fields = append(fields, ticketstate.FieldEscalationAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, ticketstate.FieldLastSeenAt)
	}
	if m.gmail_thread_id != nil {
		fields = append(fields, ticketstate.FieldGmailThreadID)
	}
	if m.created_at != nil {
		fields = append(fields, ticketstate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TicketStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ticketstate.FieldTicketID:
		return m.TicketID()
	case ticketstate.FieldStatus:
		return m.Status()
	case ticketstate.FieldCustomStatusID:
		return m.CustomStatusID()
	case ticketstate.FieldCustomerEmail:
		return m.CustomerEmail()
	case ticketstate.FieldLanguage:
		return m.Language()
	case ticketstate.FieldOrderNumber:
		return m.OrderNumber()
	case ticketstate.FieldPurchaseOrderNumber:
		return m.PurchaseOrderNumber()
	case ticketstate.FieldSupplierEmail:
		return m.SupplierEmail()
	case ticketstate.FieldSupplierTicketReferences:
		return m.SupplierTicketReferences()
	case ticketstate.FieldEscalated:
		return m.Escalated()
	case ticketstate.FieldEscalationReason:
		return m.EscalationReason()
	case ticketstate.FieldEscalationAt:
		return m.EscalationAt()
	case ticketstate.FieldLastSeenAt:
		return m.LastSeenAt()
	case ticketstate.FieldGmailThreadID:
		return m.GmailThreadID()
	case ticketstate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TicketStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ticketstate.FieldTicketID:
		return m.OldTicketID(ctx)
	case ticketstate.FieldStatus:
		return m.OldStatus(ctx)
	case ticketstate.FieldCustomStatusID:
		return m.OldCustomStatusID(ctx)
	case ticketstate.FieldCustomerEmail:
		return m.OldCustomerEmail(ctx)
	case ticketstate.FieldLanguage:
		return m.OldLanguage(ctx)
	case ticketstate.FieldOrderNumber:
		return m.OldOrderNumber(ctx)
	case ticketstate.FieldPurchaseOrderNumber:
		return m.OldPurchaseOrderNumber(ctx)
	case ticketstate.FieldSupplierEmail:
		return m.OldSupplierEmail(ctx)
	case ticketstate.FieldSupplierTicketReferences:
		return m.OldSupplierTicketReferences(ctx)
	case ticketstate.FieldEscalated:
		return m.OldEscalated(ctx)
	case ticketstate.FieldEscalationReason:
		return m.OldEscalationReason(ctx)
	case ticketstate.FieldEscalationAt:
		return m.OldEscalationAt(ctx)
	case ticketstate.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case ticketstate.FieldGmailThreadID:
		return m.OldGmailThreadID(ctx)
	case ticketstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TicketState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ticketstate.FieldTicketID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTicketID(v)
		return nil
	case ticketstate.FieldStatus:
		v, ok := value.(ticketstate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ticketstate.FieldCustomStatusID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomStatusID(v)
		return nil
	case ticketstate.FieldCustomerEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerEmail(v)
		return nil
	case ticketstate.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case ticketstate.FieldOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderNumber(v)
		return nil
	case ticketstate.FieldPurchaseOrderNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchaseOrderNumber(v)
		return nil
	case ticketstate.FieldSupplierEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierEmail(v)
		return nil
	case ticketstate.FieldSupplierTicketReferences:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupplierTicketReferences(v)
		return nil
	case ticketstate.FieldEscalated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalated(v)
		return nil
	case ticketstate.FieldEscalationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationReason(v)
		return nil
	case ticketstate.FieldEscalationAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationAt(v)
		return nil
	case ticketstate.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case ticketstate.FieldGmailThreadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGmailThreadID(v)
		return nil
	case ticketstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TicketState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TicketStateMutation) AddedFields() []string {
	var fields []string
	if m.addcustom_status_id != nil {
		fields = append(fields, ticketstate.FieldCustomStatusID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TicketStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ticketstate.FieldCustomStatusID:
		return m.AddedCustomStatusID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TicketStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ticketstate.FieldCustomStatusID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCustomStatusID(v)
		return nil
	}
	return fmt.Errorf("unknown TicketState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TicketStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ticketstate.FieldTicketID) {
		fields = append(fields, ticketstate.FieldTicketID)
	}
	if m.FieldCleared(ticketstate.FieldCustomStatusID) {
		fields = append(fields, ticketstate.FieldCustomStatusID)
	}
	if m.FieldCleared(ticketstate.FieldCustomerEmail) {
		fields = append(fields, ticketstate.FieldCustomerEmail)
	}
	if m.FieldCleared(ticketstate.FieldLanguage) {
		fields = append(fields, ticketstate.FieldLanguage)
	}
	if m.FieldCleared(ticketstate.FieldOrderNumber) {
		fields = append(fields, ticketstate.FieldOrderNumber)
	}
	if m.FieldCleared(ticketstate.FieldPurchaseOrderNumber) {
		fields = append(fields, ticketstate.FieldPurchaseOrderNumber)
	}
	if m.FieldCleared(ticketstate.FieldSupplierEmail) {
		fields = append(fields, ticketstate.FieldSupplierEmail)
	}
	if m.FieldCleared(ticketstate.FieldSupplierTicketReferences) {
		fields = append(fields, ticketstate.FieldSupplierTicketReferences)
	}
	if m.FieldCleared(ticketstate.FieldEscalationReason) {
		fields = append(fields, ticketstate.FieldEscalationReason)
	}
	if m.FieldCleared(ticketstate.FieldEscalationAt) {
		fields = append(fields, ticketstate.FieldEscalationAt)
	}
	if m.FieldCleared(ticketstate.FieldGmailThreadID) {
		fields = append(fields, ticketstate.FieldGmailThreadID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TicketStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TicketStateMutation) ClearField(name string) error {
	switch name {
	case ticketstate.FieldTicketID:
		m.ClearTicketID()
		return nil
	case ticketstate.FieldCustomStatusID:
		m.ClearCustomStatusID()
		return nil
	case ticketstate.FieldCustomerEmail:
		m.ClearCustomerEmail()
		return nil
	case ticketstate.FieldLanguage:
		m.ClearLanguage()
		return nil
	case ticketstate.FieldOrderNumber:
		m.ClearOrderNumber()
		return nil
	case ticketstate.FieldPurchaseOrderNumber:
		m.ClearPurchaseOrderNumber()
		return nil
	case ticketstate.FieldSupplierEmail:
		m.ClearSupplierEmail()
		return nil
	case ticketstate.FieldSupplierTicketReferences:
		m.ClearSupplierTicketReferences()
		return nil
	case ticketstate.FieldEscalationReason:
		m.ClearEscalationReason()
		return nil
	case ticketstate.FieldEscalationAt:
		m.ClearEscalationAt()
		return nil
	case ticketstate.FieldGmailThreadID:
		m.ClearGmailThreadID()
		return nil
	}
	return fmt.Errorf("unknown TicketState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TicketStateMutation) ResetField(name string) error {
	switch name {
	case ticketstate.FieldTicketID:
		m.ResetTicketID()
		return nil
	case ticketstate.FieldStatus:
		m.ResetStatus()
		return nil
	case ticketstate.FieldCustomStatusID:
		m.ResetCustomStatusID()
		return nil
	case ticketstate.FieldCustomerEmail:
		m.ResetCustomerEmail()
		return nil
	case ticketstate.FieldLanguage:
		m.ResetLanguage()
		return nil
	case ticketstate.FieldOrderNumber:
		m.ResetOrderNumber()
		return nil
	case ticketstate.FieldPurchaseOrderNumber:
		m.ResetPurchaseOrderNumber()
		return nil
	case ticketstate.FieldSupplierEmail:
		m.ResetSupplierEmail()
		return nil
	case ticketstate.FieldSupplierTicketReferences:
		m.ResetSupplierTicketReferences()
		return nil
	case ticketstate.FieldEscalated:
		m.ResetEscalated()
		return nil
	case ticketstate.FieldEscalationReason:
		m.ResetEscalationReason()
		return nil
	case ticketstate.FieldEscalationAt:
		m.ResetEscalationAt()
		return nil
	case ticketstate.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case ticketstate.FieldGmailThreadID:
		m.ResetGmailThreadID()
		return nil
	case ticketstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TicketState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TicketStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.messages != nil {
		edges = append(edges, ticketstate.EdgeMessages)
	}
	if m.decisions != nil {
		edges = append(edges, ticketstate.EdgeDecisions)
	}
	if m.pending_messages != nil {
		edges = append(edges, ticketstate.EdgePendingMessages)
	}
	if m.supplier_messages != nil {
		edges = append(edges, ticketstate.EdgeSupplierMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TicketStateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ticketstate.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case ticketstate.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.decisions))
		for id := range m.decisions {
			ids = append(ids, id)
		}
		return ids
	case ticketstate.EdgePendingMessages:
		ids := make([]ent.Value, 0, len(m.pending_messages))
		for id := range m.pending_messages {
			ids = append(ids, id)
		}
		return ids
	case ticketstate.EdgeSupplierMessages:
		ids := make([]ent.Value, 0, len(m.supplier_messages))
		for id := range m.supplier_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TicketStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedmessages != nil {
		edges = append(edges, ticketstate.EdgeMessages)
	}
	if m.removeddecisions != nil {
		edges = append(edges, ticketstate.EdgeDecisions)
	}
	if m.removedpending_messages != nil {
		edges = append(edges, ticketstate.EdgePendingMessages)
	}
	if m.removedsupplier_messages != nil {
		edges = append(edges, ticketstate.EdgeSupplierMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TicketStateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ticketstate.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case ticketstate.EdgeDecisions:
		ids := make([]ent.Value, 0, len(m.removeddecisions))
		for id := range m.removeddecisions {
			ids = append(ids, id)
		}
		return ids
	case ticketstate.EdgePendingMessages:
		ids := make([]ent.Value, 0, len(m.removedpending_messages))
		for id := range m.removedpending_messages {
			ids = append(ids, id)
		}
		return ids
	case ticketstate.EdgeSupplierMessages:
		ids := make([]ent.Value, 0, len(m.removedsupplier_messages))
		for id := range m.removedsupplier_messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TicketStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedmessages {
		edges = append(edges, ticketstate.EdgeMessages)
	}
	if m.cleareddecisions {
		edges = append(edges, ticketstate.EdgeDecisions)
	}
	if m.clearedpending_messages {
		edges = append(edges, ticketstate.EdgePendingMessages)
	}
	if m.clearedsupplier_messages {
		edges = append(edges, ticketstate.EdgeSupplierMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TicketStateMutation) EdgeCleared(name string) bool {
	switch name {
	case ticketstate.EdgeMessages:
		return m.clearedmessages
	case ticketstate.EdgeDecisions:
		return m.cleareddecisions
	case ticketstate.EdgePendingMessages:
		return m.clearedpending_messages
	case ticketstate.EdgeSupplierMessages:
		return m.clearedsupplier_messages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TicketStateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TicketState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TicketStateMutation) ResetEdge(name string) error {
	switch name {
	case ticketstate.EdgeMessages:
		m.ResetMessages()
		return nil
	case ticketstate.EdgeDecisions:
		m.ResetDecisions()
		return nil
	case ticketstate.EdgePendingMessages:
		m.ResetPendingMessages()
		return nil
	case ticketstate.EdgeSupplierMessages:
		m.ResetSupplierMessages()
		return nil
	}
	return fmt.Errorf("unknown TicketState edge %s", name)
}
