// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/suppliermessage"
	"github.com/shipdesk/shipdesk/ent/ticketstate"
)

// SupplierMessage is the model entity for the SupplierMessage schema.
type SupplierMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SupplierEmail holds the value of the "supplier_email" field.
	SupplierEmail string `json:"supplier_email,omitempty"`
	// TicketNumber holds the value of the "ticket_number" field.
	TicketNumber string `json:"ticket_number,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt time.Time `json:"sent_at,omitempty"`
	// ReminderSentAt holds the value of the "reminder_sent_at" field.
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
	// ResponseReceived holds the value of the "response_received" field.
	ResponseReceived bool `json:"response_received,omitempty"`
	// sent_at + reminder window
	NextCheckAt time.Time `json:"next_check_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SupplierMessageQuery when eager-loading is set.
	Edges        SupplierMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SupplierMessageEdges holds the relations/edges for other nodes in the graph.
type SupplierMessageEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *TicketState `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SupplierMessageEdges) TicketOrErr() (*TicketState, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticketstate.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SupplierMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suppliermessage.FieldResponseReceived:
			values[i] = new(sql.NullBool)
		case suppliermessage.FieldID, suppliermessage.FieldSupplierEmail, suppliermessage.FieldTicketNumber:
			values[i] = new(sql.NullString)
		case suppliermessage.FieldSentAt, suppliermessage.FieldReminderSentAt, suppliermessage.FieldNextCheckAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SupplierMessage fields.
func (_m *SupplierMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suppliermessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case suppliermessage.FieldSupplierEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_email", values[i])
			} else if value.Valid {
				_m.SupplierEmail = value.String
			}
		case suppliermessage.FieldTicketNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_number", values[i])
			} else if value.Valid {
				_m.TicketNumber = value.String
			}
		case suppliermessage.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = value.Time
			}
		case suppliermessage.FieldReminderSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field reminder_sent_at", values[i])
			} else if value.Valid {
				_m.ReminderSentAt = new(time.Time)
				*_m.ReminderSentAt = value.Time
			}
		case suppliermessage.FieldResponseReceived:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field response_received", values[i])
			} else if value.Valid {
				_m.ResponseReceived = value.Bool
			}
		case suppliermessage.FieldNextCheckAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_check_at", values[i])
			} else if value.Valid {
				_m.NextCheckAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SupplierMessage.
// This includes values selected through modifiers, order, etc.
func (_m *SupplierMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the SupplierMessage entity.
func (_m *SupplierMessage) QueryTicket() *TicketStateQuery {
	return NewSupplierMessageClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this SupplierMessage.
// Note that you need to call SupplierMessage.Unwrap() before calling this method if this SupplierMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SupplierMessage) Update() *SupplierMessageUpdateOne {
	return NewSupplierMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SupplierMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SupplierMessage) Unwrap() *SupplierMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SupplierMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SupplierMessage) String() string {
	var builder strings.Builder
	builder.WriteString("SupplierMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("supplier_email=")
	builder.WriteString(_m.SupplierEmail)
	builder.WriteString(", ")
	builder.WriteString("ticket_number=")
	builder.WriteString(_m.TicketNumber)
	builder.WriteString(", ")
	builder.WriteString("sent_at=")
	builder.WriteString(_m.SentAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReminderSentAt; v != nil {
		builder.WriteString("reminder_sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("response_received=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseReceived))
	builder.WriteString(", ")
	builder.WriteString("next_check_at=")
	builder.WriteString(_m.NextCheckAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SupplierMessages is a parsable slice of SupplierMessage.
type SupplierMessages []*SupplierMessage
