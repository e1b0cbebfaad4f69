// Code generated by ent, DO NOT EDIT.

package ticketmessage

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ticketmessage type in the database.
	Label = "ticket_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ticket_message_id"
	// FieldTicketNumber holds the string denoting the ticket_number field in the database.
	FieldTicketNumber = "ticket_number"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldSender holds the string denoting the sender field in the database.
	FieldSender = "sender"
	// FieldRecipient holds the string denoting the recipient field in the database.
	FieldRecipient = "recipient"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldSourceMessageID holds the string denoting the source_message_id field in the database.
	FieldSourceMessageID = "source_message_id"
	// FieldUpstreamMessageID holds the string denoting the upstream_message_id field in the database.
	FieldUpstreamMessageID = "upstream_message_id"
	// FieldAt holds the string denoting the at field in the database.
	FieldAt = "at"
	// EdgeTicket holds the string denoting the ticket edge name in mutations.
	EdgeTicket = "ticket"
	// TicketStateFieldID holds the string denoting the ID field of the TicketState.
	TicketStateFieldID = "ticket_number"
	// Table holds the table name of the ticketmessage in the database.
	Table = "ticket_messages"
	// TicketTable is the table that holds the ticket relation/edge.
	TicketTable = "ticket_messages"
	// TicketInverseTable is the table name for the TicketState entity.
	// It exists in this package in order to avoid circular dependency with the "ticketstate" package.
	TicketInverseTable = "ticket_states"
	// TicketColumn is the table column denoting the ticket relation/edge.
	TicketColumn = "ticket_number"
)

// Columns holds all SQL columns for ticketmessage fields.
var Columns = []string{
	FieldID,
	FieldTicketNumber,
	FieldDirection,
	FieldRole,
	FieldSender,
	FieldRecipient,
	FieldSubject,
	FieldBody,
	FieldSourceMessageID,
	FieldUpstreamMessageID,
	FieldAt,
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
)

// Direction defines the type for the "direction" enum field.
type Direction string

// Direction values.
const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
	DirectionInternal Direction = "internal"
)

func (d Direction) String() string {
	return string(d)
}

// DirectionValidator is a validator for the "direction" field enum values. It is called by the builders before save.
func DirectionValidator(d Direction) error {
	switch d {
	case DirectionInbound, DirectionOutbound, DirectionInternal:
		return nil
	default:
		return fmt.Errorf("ticketmessage: invalid enum value for direction field: %q", d)
	}
}

// Role defines the type for the "role" enum field.
type Role string

// RoleCustomer is the default value of the Role enum.
const DefaultRole = RoleCustomer

// Role values.
const (
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
	RoleAgent    Role = "agent"
	RoleSystem   Role = "system"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleCustomer, RoleSupplier, RoleAgent, RoleSystem:
		return nil
	default:
		return fmt.Errorf("ticketmessage: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the TicketMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTicketNumber orders the results by the ticket_number field.
func ByTicketNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketNumber, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// BySender orders the results by the sender field.
func BySender(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSender, opts...).ToFunc()
}

// ByRecipient orders the results by the recipient field.
func ByRecipient(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipient, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// BySourceMessageID orders the results by the source_message_id field.
func BySourceMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceMessageID, opts...).ToFunc()
}

// ByUpstreamMessageID orders the results by the upstream_message_id field.
func ByUpstreamMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpstreamMessageID, opts...).ToFunc()
}

// ByAt orders the results by the at field.
func ByAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAt, opts...).ToFunc()
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
