// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// TicketState is the model entity for the TicketState schema.
type TicketState struct {
	config `json:"-"`
	// ID of the ent.
	// Human-facing ticket number; natural key
	ID string `json:"id,omitempty"`
	// Upstream backend id
	TicketID string `json:"ticket_id,omitempty"`
	// Status holds the value of the "status" field.
	Status ticketstate.Status `json:"status,omitempty"`
	// Operator-defined status in the ticketing backend
	CustomStatusID *int `json:"custom_status_id,omitempty"`
	// CustomerEmail holds the value of the "customer_email" field.
	CustomerEmail string `json:"customer_email,omitempty"`
	// BCP-47 tag, e.g. de, en
	Language string `json:"language,omitempty"`
	// Unique when present
	OrderNumber *string `json:"order_number,omitempty"`
	// Unique when present
	PurchaseOrderNumber *string `json:"purchase_order_number,omitempty"`
	// SupplierEmail holds the value of the "supplier_email" field.
	SupplierEmail string `json:"supplier_email,omitempty"`
	// SupplierTicketReferences holds the value of the "supplier_ticket_references" field.
	SupplierTicketReferences []string `json:"supplier_ticket_references,omitempty"`
	// Escalated holds the value of the "escalated" field.
	Escalated bool `json:"escalated,omitempty"`
	// EscalationReason holds the value of the "escalation_reason" field.
	EscalationReason *string `json:"escalation_reason,omitempty"`
	// EscalationAt holds the value of the "escalation_at" field.
	EscalationAt *time.Time `json:"escalation_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// GmailThreadID holds the value of the "gmail_thread_id" field.
	GmailThreadID string `json:"gmail_thread_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TicketStateQuery when eager-loading is set.
	Edges        TicketStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TicketStateEdges holds the relations/edges for other nodes in the graph.
type TicketStateEdges struct {
	// Messages holds the value of the messages edge.
	Messages []*TicketMessage `json:"messages,omitempty"`
	// Decisions holds the value of the decisions edge.
	Decisions []*AIDecision `json:"decisions,omitempty"`
	// PendingMessages holds the value of the pending_messages edge.
	PendingMessages []*PendingMessage `json:"pending_messages,omitempty"`
	// SupplierMessages holds the value of the supplier_messages edge.
	SupplierMessages []*SupplierMessage `json:"supplier_messages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e TicketStateEdges) MessagesOrErr() ([]*TicketMessage, error) {
	if e.loadedTypes[0] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// DecisionsOrErr returns the Decisions value or an error if the edge
// was not loaded in eager-loading.
func (e TicketStateEdges) DecisionsOrErr() ([]*AIDecision, error) {
	if e.loadedTypes[1] {
		return e.Decisions, nil
	}
	return nil, &NotLoadedError{edge: "decisions"}
}

// PendingMessagesOrErr returns the PendingMessages value or an error if the edge
// was not loaded in eager-loading.
func (e TicketStateEdges) PendingMessagesOrErr() ([]*PendingMessage, error) {
	if e.loadedTypes[2] {
		return e.PendingMessages, nil
	}
	return nil, &NotLoadedError{edge: "pending_messages"}
}

// SupplierMessagesOrErr returns the SupplierMessages value or an error if the edge
// was not loaded in eager-loading.
func (e TicketStateEdges) SupplierMessagesOrErr() ([]*SupplierMessage, error) {
	if e.loadedTypes[3] {
		return e.SupplierMessages, nil
	}
	return nil, &NotLoadedError{edge: "supplier_messages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TicketState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticketstate.FieldSupplierTicketReferences:
			values[i] = new([]byte)
		case ticketstate.FieldEscalated:
			values[i] = new(sql.NullBool)
		case ticketstate.FieldCustomStatusID:
			values[i] = new(sql.NullInt64)
		case ticketstate.FieldID, ticketstate.FieldTicketID, ticketstate.FieldStatus, ticketstate.FieldCustomerEmail, ticketstate.FieldLanguage, ticketstate.FieldOrderNumber, ticketstate.FieldPurchaseOrderNumber, ticketstate.FieldSupplierEmail, ticketstate.FieldEscalationReason, ticketstate.FieldGmailThreadID:
			values[i] = new(sql.NullString)
		case ticketstate.FieldEscalationAt, ticketstate.FieldLastSeenAt, ticketstate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TicketState fields.
func (_m *TicketState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticketstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ticketstate.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = value.String
			}
		case ticketstate.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = ticketstate.Status(value.String)
			}
		case ticketstate.FieldCustomStatusID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field custom_status_id", values[i])
			} else if value.Valid {
				_m.CustomStatusID = new(int)
				*_m.CustomStatusID = int(value.Int64)
			}
		case ticketstate.FieldCustomerEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field customer_email", values[i])
			} else if value.Valid {
				_m.CustomerEmail = value.String
			}
		case ticketstate.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case ticketstate.FieldOrderNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field order_number", values[i])
			} else if value.Valid {
				_m.OrderNumber = new(string)
				*_m.OrderNumber = value.String
			}
		case ticketstate.FieldPurchaseOrderNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purchase_order_number", values[i])
			} else if value.Valid {
				_m.PurchaseOrderNumber = new(string)
				*_m.PurchaseOrderNumber = value.String
			}
		case ticketstate.FieldSupplierEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_email", values[i])
			} else if value.Valid {
				_m.SupplierEmail = value.String
			}
		case ticketstate.FieldSupplierTicketReferences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_ticket_references", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SupplierTicketReferences); err != nil {
					return fmt.Errorf("unmarshal field supplier_ticket_references: %w", err)
				}
			}
		case ticketstate.FieldEscalated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field escalated", values[i])
			} else if value.Valid {
				_m.Escalated = value.Bool
			}
		case ticketstate.FieldEscalationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_reason", values[i])
			} else if value.Valid {
				_m.EscalationReason = new(string)
				*_m.EscalationReason = value.String
			}
		case ticketstate.FieldEscalationAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_at", values[i])
			} else if value.Valid {
				_m.EscalationAt = new(time.Time)
				*_m.EscalationAt = value.Time
			}
		case ticketstate.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		case ticketstate.FieldGmailThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gmail_thread_id", values[i])
			} else if value.Valid {
				_m.GmailThreadID = value.String
			}
		case ticketstate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TicketState.
// This includes values selected through modifiers, order, etc.
func (_m *TicketState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMessages queries the "messages" edge of the TicketState entity.
func (_m *TicketState) QueryMessages() *TicketMessageQuery {
	return NewTicketStateClient(_m.config).QueryMessages(_m)
}

// QueryDecisions queries the "decisions" edge of the TicketState entity.
func (_m *TicketState) QueryDecisions() *AIDecisionQuery {
	return NewTicketStateClient(_m.config).QueryDecisions(_m)
}

// QueryPendingMessages queries the "pending_messages" edge of the TicketState entity.
func (_m *TicketState) QueryPendingMessages() *PendingMessageQuery {
	return NewTicketStateClient(_m.config).QueryPendingMessages(_m)
}

// QuerySupplierMessages queries the "supplier_messages" edge of the TicketState entity.
func (_m *TicketState) QuerySupplierMessages() *SupplierMessageQuery {
	return NewTicketStateClient(_m.config).QuerySupplierMessages(_m)
}

// Update returns a builder for updating this TicketState.
// Note that you need to call TicketState.Unwrap() before calling this method if this TicketState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TicketState) Update() *TicketStateUpdateOne {
	return NewTicketStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TicketState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TicketState) Unwrap() *TicketState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TicketState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TicketState) String() string {
	var builder strings.Builder
	builder.WriteString("TicketState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(_m.TicketID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CustomStatusID; v != nil {
		builder.WriteString("custom_status_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("customer_email=")
	builder.WriteString(_m.CustomerEmail)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	if v := _m.OrderNumber; v != nil {
		builder.WriteString("order_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PurchaseOrderNumber; v != nil {
		builder.WriteString("purchase_order_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("supplier_email=")
	builder.WriteString(_m.SupplierEmail)
	builder.WriteString(", ")
	builder.WriteString("supplier_ticket_references=")
	builder.WriteString(fmt.Sprintf("%v", _m.SupplierTicketReferences))
	builder.WriteString(", ")
	builder.WriteString("escalated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Escalated))
	builder.WriteString(", ")
	if v := _m.EscalationReason; v != nil {
		builder.WriteString("escalation_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EscalationAt; v != nil {
		builder.WriteString("escalation_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("gmail_thread_id=")
	builder.WriteString(_m.GmailThreadID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TicketStates is a parsable slice of TicketState.
type TicketStates []*TicketState
