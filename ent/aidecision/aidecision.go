// Code generated by ent, DO NOT EDIT.

package aidecision

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the aidecision type in the database.
	Label = "ai_decision"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "decision_id"
	// FieldTicketNumber holds the string denoting the ticket_number field in the database.
	FieldTicketNumber = "ticket_number"
	// FieldAt holds the string denoting the at field in the database.
	FieldAt = "at"
	// FieldDetectedLanguage holds the string denoting the detected_language field in the database.
	FieldDetectedLanguage = "detected_language"
	// FieldDetectedIntent holds the string denoting the detected_intent field in the database.
	FieldDetectedIntent = "detected_intent"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldRecommendedAction holds the string denoting the recommended_action field in the database.
	FieldRecommendedAction = "recommended_action"
	// FieldCustomerDraft holds the string denoting the customer_draft field in the database.
	FieldCustomerDraft = "customer_draft"
	// FieldSupplierDraft holds the string denoting the supplier_draft field in the database.
	FieldSupplierDraft = "supplier_draft"
	// FieldRequiresEscalation holds the string denoting the requires_escalation field in the database.
	FieldRequiresEscalation = "requires_escalation"
	// FieldPhase holds the string denoting the phase field in the database.
	FieldPhase = "phase"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldOperatorFeedback holds the string denoting the operator_feedback field in the database.
	FieldOperatorFeedback = "operator_feedback"
	// FieldFeedbackNotes holds the string denoting the feedback_notes field in the database.
	FieldFeedbackNotes = "feedback_notes"
	// EdgeTicket holds the string denoting the ticket edge name in mutations.
	EdgeTicket = "ticket"
	// TicketStateFieldID holds the string denoting the ID field of the TicketState.
	TicketStateFieldID = "ticket_number"
	// Table holds the table name of the aidecision in the database.
	Table = "ai_decisions"
	// TicketTable is the table that holds the ticket relation/edge.
	TicketTable = "ai_decisions"
	// TicketInverseTable is the table name for the TicketState entity.
	// It exists in this package in order to avoid circular dependency with the "ticketstate" package.
	TicketInverseTable = "ticket_states"
	// TicketColumn is the table column denoting the ticket relation/edge.
	TicketColumn = "ticket_number"
)

// Columns holds all SQL columns for aidecision fields.
var Columns = []string{
	FieldID,
	FieldTicketNumber,
	FieldAt,
	FieldDetectedLanguage,
	FieldDetectedIntent,
	FieldConfidence,
	FieldRecommendedAction,
	FieldCustomerDraft,
	FieldSupplierDraft,
	FieldRequiresEscalation,
	FieldPhase,
	FieldSummary,
	FieldOperatorFeedback,
	FieldFeedbackNotes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAt holds the default value on creation for the "at" field.
	DefaultAt func() time.Time
	// DefaultRequiresEscalation holds the default value on creation for the "requires_escalation" field.
	DefaultRequiresEscalation bool
)

// Phase defines the type for the "phase" enum field.
type Phase string

// Phase values.
const (
	PhaseShadow     Phase = "shadow"
	PhaseAssisted   Phase = "assisted"
	PhaseAutonomous Phase = "autonomous"
)

func (ph Phase) String() string {
	return string(ph)
}

// PhaseValidator is a validator for the "phase" field enum values. It is called by the builders before save.
func PhaseValidator(ph Phase) error {
	switch ph {
	case PhaseShadow, PhaseAssisted, PhaseAutonomous:
		return nil
	default:
		return fmt.Errorf("aidecision: invalid enum value for phase field: %q", ph)
	}
}

// OperatorFeedback defines the type for the "operator_feedback" enum field.
type OperatorFeedback string

// OperatorFeedback values.
const (
	OperatorFeedbackCorrect   OperatorFeedback = "correct"
	OperatorFeedbackIncorrect OperatorFeedback = "incorrect"
	OperatorFeedbackPartial   OperatorFeedback = "partial"
)

func (of OperatorFeedback) String() string {
	return string(of)
}

// OperatorFeedbackValidator is a validator for the "operator_feedback" field enum values. It is called by the builders before save.
func OperatorFeedbackValidator(of OperatorFeedback) error {
	switch of {
	case OperatorFeedbackCorrect, OperatorFeedbackIncorrect, OperatorFeedbackPartial:
		return nil
	default:
		return fmt.Errorf("aidecision: invalid enum value for operator_feedback field: %q", of)
	}
}

// OrderOption defines the ordering options for the AIDecision queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTicketNumber orders the results by the ticket_number field.
func ByTicketNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketNumber, opts...).ToFunc()
}

// ByAt orders the results by the at field.
func ByAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAt, opts...).ToFunc()
}

// ByDetectedLanguage orders the results by the detected_language field.
func ByDetectedLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedLanguage, opts...).ToFunc()
}

// ByDetectedIntent orders the results by the detected_intent field.
func ByDetectedIntent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedIntent, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByRecommendedAction orders the results by the recommended_action field.
func ByRecommendedAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedAction, opts...).ToFunc()
}

// ByCustomerDraft orders the results by the customer_draft field.
func ByCustomerDraft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerDraft, opts...).ToFunc()
}

// BySupplierDraft orders the results by the supplier_draft field.
func BySupplierDraft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierDraft, opts...).ToFunc()
}

// ByRequiresEscalation orders the results by the requires_escalation field.
func ByRequiresEscalation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresEscalation, opts...).ToFunc()
}

// ByPhase orders the results by the phase field.
func ByPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhase, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByOperatorFeedback orders the results by the operator_feedback field.
func ByOperatorFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperatorFeedback, opts...).ToFunc()
}

// ByFeedbackNotes orders the results by the feedback_notes field.
func ByFeedbackNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedbackNotes, opts...).ToFunc()
}

// ByTicketField orders the results by ticket field.
func ByTicketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTicketStep(), sql.OrderByField(field, opts...))
	}
}
func newTicketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TicketInverseTable, TicketStateFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
	)
}
