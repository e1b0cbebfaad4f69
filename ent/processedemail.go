// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/shipdesk/shipdesk/ent/processedemail"
)

// ProcessedEmail is the model entity for the ProcessedEmail schema.
type ProcessedEmail struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Globally unique mail source id; idempotency key
	SourceMessageID string `json:"source_message_id,omitempty"`
	// ThreadID holds the value of the "thread_id" field.
	ThreadID string `json:"thread_id,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// FromAddress holds the value of the "from_address" field.
	FromAddress string `json:"from_address,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt *time.Time `json:"received_at,omitempty"`
	// Null until correlated
	TicketNumber *string `json:"ticket_number,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ProcessedAt holds the value of the "processed_at" field.
	ProcessedAt  time.Time `json:"processed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessedEmail) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processedemail.FieldSuccess:
			values[i] = new(sql.NullBool)
		case processedemail.FieldID, processedemail.FieldSourceMessageID, processedemail.FieldThreadID, processedemail.FieldSubject, processedemail.FieldFromAddress, processedemail.FieldTicketNumber, processedemail.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case processedemail.FieldReceivedAt, processedemail.FieldProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessedEmail fields.
func (_m *ProcessedEmail) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processedemail.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case processedemail.FieldSourceMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_message_id", values[i])
			} else if value.Valid {
				_m.SourceMessageID = value.String
			}
		case processedemail.FieldThreadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field thread_id", values[i])
			} else if value.Valid {
				_m.ThreadID = value.String
			}
		case processedemail.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case processedemail.FieldFromAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_address", values[i])
			} else if value.Valid {
				_m.FromAddress = value.String
			}
		case processedemail.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = new(time.Time)
				*_m.ReceivedAt = value.Time
			}
		case processedemail.FieldTicketNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_number", values[i])
			} else if value.Valid {
				_m.TicketNumber = new(string)
				*_m.TicketNumber = value.String
			}
		case processedemail.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case processedemail.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case processedemail.FieldProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processed_at", values[i])
			} else if value.Valid {
				_m.ProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessedEmail.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessedEmail) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessedEmail.
// Note that you need to call ProcessedEmail.Unwrap() before calling this method if this ProcessedEmail
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessedEmail) Update() *ProcessedEmailUpdateOne {
	return NewProcessedEmailClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessedEmail entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessedEmail) Unwrap() *ProcessedEmail {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessedEmail is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessedEmail) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessedEmail(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_message_id=")
	builder.WriteString(_m.SourceMessageID)
	builder.WriteString(", ")
	builder.WriteString("thread_id=")
	builder.WriteString(_m.ThreadID)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("from_address=")
	builder.WriteString(_m.FromAddress)
	builder.WriteString(", ")
	if v := _m.ReceivedAt; v != nil {
		builder.WriteString("received_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.TicketNumber; v != nil {
		builder.WriteString("ticket_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processed_at=")
	builder.WriteString(_m.ProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProcessedEmails is a parsable slice of ProcessedEmail.
type ProcessedEmails []*ProcessedEmail
