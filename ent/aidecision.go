// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/aidecision"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// AIDecision is the model entity for the AIDecision schema.
type AIDecision struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TicketNumber holds the value of the "ticket_number" field.
	TicketNumber string `json:"ticket_number,omitempty"`
	// At holds the value of the "at" field.
	At time.Time `json:"at,omitempty"`
	// DetectedLanguage holds the value of the "detected_language" field.
	DetectedLanguage string `json:"detected_language,omitempty"`
	// DetectedIntent holds the value of the "detected_intent" field.
	DetectedIntent string `json:"detected_intent,omitempty"`
	// In [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// RecommendedAction holds the value of the "recommended_action" field.
	RecommendedAction string `json:"recommended_action,omitempty"`
	// May carry a NO_DRAFT sentinel with reason
	CustomerDraft string `json:"customer_draft,omitempty"`
	// SupplierDraft holds the value of the "supplier_draft" field.
	SupplierDraft string `json:"supplier_draft,omitempty"`
	// RequiresEscalation holds the value of the "requires_escalation" field.
	RequiresEscalation bool `json:"requires_escalation,omitempty"`
	// Deployment phase at decision time
	Phase aidecision.Phase `json:"phase,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// OperatorFeedback holds the value of the "operator_feedback" field.
	OperatorFeedback *aidecision.OperatorFeedback `json:"operator_feedback,omitempty"`
	// FeedbackNotes holds the value of the "feedback_notes" field.
	FeedbackNotes *string `json:"feedback_notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AIDecisionQuery when eager-loading is set.
	Edges        AIDecisionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AIDecisionEdges holds the relations/edges for other nodes in the graph.
type AIDecisionEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *TicketState `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AIDecisionEdges) TicketOrErr() (*TicketState, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticketstate.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AIDecision) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case aidecision.FieldRequiresEscalation:
			values[i] = new(sql.NullBool)
		case aidecision.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case aidecision.FieldID, aidecision.FieldTicketNumber, aidecision.FieldDetectedLanguage, aidecision.FieldDetectedIntent, aidecision.FieldRecommendedAction, aidecision.FieldCustomerDraft, aidecision.FieldSupplierDraft, aidecision.FieldPhase, aidecision.FieldSummary, aidecision.FieldOperatorFeedback, aidecision.FieldFeedbackNotes:
			values[i] = new(sql.NullString)
		case aidecision.FieldAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AIDecision fields.
func (_m *AIDecision) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case aidecision.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case aidecision.FieldTicketNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_number", values[i])
			} else if value.Valid {
				_m.TicketNumber = value.String
			}
		case aidecision.FieldAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field at", values[i])
			} else if value.Valid {
				_m.At = value.Time
			}
		case aidecision.FieldDetectedLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detected_language", values[i])
			} else if value.Valid {
				_m.DetectedLanguage = value.String
			}
		case aidecision.FieldDetectedIntent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detected_intent", values[i])
			} else if value.Valid {
				_m.DetectedIntent = value.String
			}
		case aidecision.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case aidecision.FieldRecommendedAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_action", values[i])
			} else if value.Valid {
				_m.RecommendedAction = value.String
			}
		case aidecision.FieldCustomerDraft:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_draft", values[i])
			} else if value.Valid {
				_m.CustomerDraft = value.String
			}
		case aidecision.FieldSupplierDraft:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_draft", values[i])
			} else if value.Valid {
				_m.SupplierDraft = value.String
			}
		case aidecision.FieldRequiresEscalation:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_escalation", values[i])
			} else if value.Valid {
				_m.RequiresEscalation = value.Bool
			}
		case aidecision.FieldPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase", values[i])
			} else if value.Valid {
				_m.Phase = aidecision.Phase(value.String)
			}
		case aidecision.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case aidecision.FieldOperatorFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operator_feedback", values[i])
			} else if value.Valid {
				_m.OperatorFeedback = new(aidecision.OperatorFeedback)
				*_m.OperatorFeedback = aidecision.OperatorFeedback(value.String)
			}
		case aidecision.FieldFeedbackNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_notes", values[i])
			} else if value.Valid {
				_m.FeedbackNotes = new(string)
				*_m.FeedbackNotes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AIDecision.
// This includes values selected through modifiers, order, etc.
func (_m *AIDecision) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the AIDecision entity.
func (_m *AIDecision) QueryTicket() *TicketStateQuery {
	return NewAIDecisionClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this AIDecision.
// Note that you need to call AIDecision.Unwrap() before calling this method if this AIDecision
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AIDecision) Update() *AIDecisionUpdateOne {
	return NewAIDecisionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AIDecision entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AIDecision) Unwrap() *AIDecision {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AIDecision is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AIDecision) String() string {
	var builder strings.Builder
	builder.WriteString("AIDecision(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_number=")
	builder.WriteString(_m.TicketNumber)
	builder.WriteString(", ")
	builder.WriteString("at=")
	builder.WriteString(_m.At.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("detected_language=")
	builder.WriteString(_m.DetectedLanguage)
	builder.WriteString(", ")
	builder.WriteString("detected_intent=")
	builder.WriteString(_m.DetectedIntent)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("recommended_action=")
	builder.WriteString(_m.RecommendedAction)
	builder.WriteString(", ")
	builder.WriteString("customer_draft=")
	builder.WriteString(_m.CustomerDraft)
	builder.WriteString(", ")
	builder.WriteString("supplier_draft=")
	builder.WriteString(_m.SupplierDraft)
	builder.WriteString(", ")
	builder.WriteString("requires_escalation=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresEscalation))
	builder.WriteString(", ")
	builder.WriteString("phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	if v := _m.OperatorFeedback; v != nil {
		builder.WriteString("operator_feedback=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FeedbackNotes; v != nil {
		builder.WriteString("feedback_notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// AIDecisions is a parsable slice of AIDecision.
type AIDecisions []*AIDecision
