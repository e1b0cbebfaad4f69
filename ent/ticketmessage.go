// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// TicketMessage is the model entity for the TicketMessage schema.
type TicketMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TicketNumber holds the value of the "ticket_number" field.
	TicketNumber string `json:"ticket_number,omitempty"`
	// Direction holds the value of the "direction" field.
	Direction ticketmessage.Direction `json:"direction,omitempty"`
	// Role holds the value of the "role" field.
	Role ticketmessage.Role `json:"role,omitempty"`
	// Sender holds the value of the "sender" field.
	Sender string `json:"sender,omitempty"`
	// Recipient holds the value of the "recipient" field.
	Recipient string `json:"recipient,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Mail source id when the message originated from inbound mail
	SourceMessageID string `json:"source_message_id,omitempty"`
	// Backend-assigned id for sent messages
	UpstreamMessageID string `json:"upstream_message_id,omitempty"`
	// At holds the value of the "at" field.
	At time.Time `json:"at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TicketMessageQuery when eager-loading is set.
	Edges        TicketMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TicketMessageEdges holds the relations/edges for other nodes in the graph.
type TicketMessageEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *TicketState `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketMessageEdges) TicketOrErr() (*TicketState, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticketstate.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TicketMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticketmessage.FieldID, ticketmessage.FieldTicketNumber, ticketmessage.FieldDirection, ticketmessage.FieldRole, ticketmessage.FieldSender, ticketmessage.FieldRecipient, ticketmessage.FieldSubject, ticketmessage.FieldBody, ticketmessage.FieldSourceMessageID, ticketmessage.FieldUpstreamMessageID:
			values[i] = new(sql.NullString)
		case ticketmessage.FieldAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TicketMessage fields.
func (_m *TicketMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticketmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ticketmessage.FieldTicketNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_number", values[i])
			} else if value.Valid {
				_m.TicketNumber = value.String
			}
		case ticketmessage.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = ticketmessage.Direction(value.String)
			}
		case ticketmessage.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = ticketmessage.Role(value.String)
			}
		case ticketmessage.FieldSender:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sender", values[i])
			} else if value.Valid {
				_m.Sender = value.String
			}
		case ticketmessage.FieldRecipient:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient", values[i])
			} else if value.Valid {
				_m.Recipient = value.String
			}
		case ticketmessage.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case ticketmessage.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case ticketmessage.FieldSourceMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_message_id", values[i])
			} else if value.Valid {
				_m.SourceMessageID = value.String
			}
		case ticketmessage.FieldUpstreamMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field upstream_message_id", values[i])
			} else if value.Valid {
				_m.UpstreamMessageID = value.String
			}
		case ticketmessage.FieldAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field at", values[i])
			} else if value.Valid {
				_m.At = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TicketMessage.
// This includes values selected through modifiers, order, etc.
func (_m *TicketMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the TicketMessage entity.
func (_m *TicketMessage) QueryTicket() *TicketStateQuery {
	return NewTicketMessageClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this TicketMessage.
// Note that you need to call TicketMessage.Unwrap() before calling this method if this TicketMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TicketMessage) Update() *TicketMessageUpdateOne {
	return NewTicketMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TicketMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TicketMessage) Unwrap() *TicketMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TicketMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TicketMessage) String() string {
	var builder strings.Builder
	builder.WriteString("TicketMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_number=")
	builder.WriteString(_m.TicketNumber)
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Direction))
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("sender=")
	builder.WriteString(_m.Sender)
	builder.WriteString(", ")
	builder.WriteString("recipient=")
	builder.WriteString(_m.Recipient)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("source_message_id=")
	builder.WriteString(_m.SourceMessageID)
	builder.WriteString(", ")
	builder.WriteString("upstream_message_id=")
	builder.WriteString(_m.UpstreamMessageID)
	builder.WriteString(", ")
	builder.WriteString("at=")
	builder.WriteString(_m.At.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TicketMessages is a parsable slice of TicketMessage.
type TicketMessages []*TicketMessage
