// Code generated by ent, DO NOT EDIT.

package suppliermessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the suppliermessage type in the database.
	Label = "supplier_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "supplier_message_id"
	// FieldSupplierEmail holds the string denoting the supplier_email field in the database.
	FieldSupplierEmail = "supplier_email"
	// FieldTicketNumber holds the string denoting the ticket_number field in the database.
	FieldTicketNumber = "ticket_number"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// FieldReminderSentAt holds the string denoting the reminder_sent_at field in the database.
	FieldReminderSentAt = "reminder_sent_at"
	// FieldResponseReceived holds the string denoting the response_received field in the database.
	FieldResponseReceived = "response_received"
	// FieldNextCheckAt holds the string denoting the next_check_at field in the database.
	FieldNextCheckAt = "next_check_at"
	// EdgeTicket holds the string denoting the ticket edge name in mutations.
	EdgeTicket = "ticket"
	// TicketStateFieldID holds the string denoting the ID field of the TicketState.
	TicketStateFieldID = "ticket_number"
	// Table holds the table name of the suppliermessage in the database.
	Table = "supplier_messages"
	// TicketTable is the table that holds the ticket relation/edge.
	TicketTable = "supplier_messages"
	// TicketInverseTable is the table name for the TicketState entity.
	// It exists in this package in order to avoid circular dependency with the "ticketstate" package.
	TicketInverseTable = "ticket_states"
	// TicketColumn is the table column denoting the ticket relation/edge.
	TicketColumn = "ticket_number"
)

// Columns holds all SQL columns for suppliermessage fields.
var Columns = []string{
	FieldID,
	FieldSupplierEmail,
	FieldTicketNumber,
	FieldSentAt,
	FieldReminderSentAt,
	FieldResponseReceived,
	FieldNextCheckAt,
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
	// DefaultSentAt holds the default value on creation for the "sent_at" field.
	DefaultSentAt func() time.Time
	// DefaultResponseReceived holds the default value on creation for the "response_received" field.
	DefaultResponseReceived bool
)

// OrderOption defines the ordering options for the SupplierMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySupplierEmail orders the results by the supplier_email field.
func BySupplierEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierEmail, opts...).ToFunc()
}

// ByTicketNumber orders the results by the ticket_number field.
func ByTicketNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketNumber, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}

// ByReminderSentAt orders the results by the reminder_sent_at field.
func ByReminderSentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReminderSentAt, opts...).ToFunc()
}

// ByResponseReceived orders the results by the response_received field.
func ByResponseReceived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseReceived, opts...).ToFunc()
}

// ByNextCheckAt orders the results by the next_check_at field.
func ByNextCheckAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextCheckAt, opts...).ToFunc()
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
