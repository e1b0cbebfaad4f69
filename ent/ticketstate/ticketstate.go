// Code generated by ent, DO NOT EDIT.

package ticketstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ticketstate type in the database.
	Label = "ticket_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ticket_number"
	// FieldTicketID holds the string denoting the ticket_id field in the database.
	FieldTicketID = "ticket_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCustomStatusID holds the string denoting the custom_status_id field in the database.
	FieldCustomStatusID = "custom_status_id"
	// FieldCustomerEmail holds the string denoting the customer_email field in the database.
	FieldCustomerEmail = "customer_email"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldOrderNumber holds the string denoting the order_number field in the database.
	FieldOrderNumber = "order_number"
	// FieldPurchaseOrderNumber holds the string denoting the purchase_order_number field in the database.
	FieldPurchaseOrderNumber = "purchase_order_number"
	// FieldSupplierEmail holds the string denoting the supplier_email field in the database.
	FieldSupplierEmail = "supplier_email"
	// FieldSupplierTicketReferences holds the string denoting the supplier_ticket_references field in the database.
	FieldSupplierTicketReferences = "supplier_ticket_references"
	// FieldEscalated holds the string denoting the escalated field in the database.
	FieldEscalated = "escalated"
	// FieldEscalationReason holds the string denoting the escalation_reason field in the database.
	FieldEscalationReason = "escalation_reason"
	// FieldEscalationAt holds the string denoting the escalation_at field in the database.
	FieldEscalationAt = "escalation_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldGmailThreadID holds the string denoting the gmail_thread_id field in the database.
	FieldGmailThreadID = "gmail_thread_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeDecisions holds the string denoting the decisions edge name in mutations.
	EdgeDecisions = "decisions"
	// EdgePendingMessages holds the string denoting the pending_messages edge name in mutations.
	EdgePendingMessages = "pending_messages"
	// EdgeSupplierMessages holds the string denoting the supplier_messages edge name in mutations.
	EdgeSupplierMessages = "supplier_messages"
	// TicketMessageFieldID holds the string denoting the ID field of the TicketMessage.
	TicketMessageFieldID = "ticket_message_id"
	// AIDecisionFieldID holds the string denoting the ID field of the AIDecision.
	AIDecisionFieldID = "decision_id"
	// PendingMessageFieldID holds the string denoting the ID field of the PendingMessage.
	PendingMessageFieldID = "pending_message_id"
	// SupplierMessageFieldID holds the string denoting the ID field of the SupplierMessage.
	SupplierMessageFieldID = "supplier_message_id"
	// Table holds the table name of the ticketstate in the database.
	Table = "ticket_states"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "ticket_messages"
	// MessagesInverseTable is the table name for the TicketMessage entity.
	// It exists in this package in order to avoid circular dependency with the "ticketmessage" package.
	MessagesInverseTable = "ticket_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "ticket_number"
	// DecisionsTable is the table that holds the decisions relation/edge.
	DecisionsTable = "ai_decisions"
	// DecisionsInverseTable is the table name for the AIDecision entity.
	// It exists in this package in order to avoid circular dependency with the "aidecision" package.
	DecisionsInverseTable = "ai_decisions"
	// DecisionsColumn is the table column denoting the decisions relation/edge.
	DecisionsColumn = "ticket_number"
	// PendingMessagesTable is the table that holds the pending_messages relation/edge.
	PendingMessagesTable = "pending_messages"
	// PendingMessagesInverseTable is the table name for the PendingMessage entity.
	// It exists in this package in order to avoid circular dependency with the "pendingmessage" package.
	PendingMessagesInverseTable = "pending_messages"
	// PendingMessagesColumn is the table column denoting the pending_messages relation/edge.
	PendingMessagesColumn = "ticket_number"
	// SupplierMessagesTable is the table that holds the supplier_messages relation/edge.
	SupplierMessagesTable = "supplier_messages"
	// SupplierMessagesInverseTable is the table name for the SupplierMessage entity.
	// It exists in this package in order to avoid circular dependency with the "suppliermessage" package.
	SupplierMessagesInverseTable = "supplier_messages"
	// SupplierMessagesColumn is the table column denoting the supplier_messages relation/edge.
	SupplierMessagesColumn = "ticket_number"
)

// Columns holds all SQL columns for ticketstate fields.
var Columns = []string{
	FieldID,
	FieldTicketID,
	FieldStatus,
	FieldCustomStatusID,
	FieldCustomerEmail,
	FieldLanguage,
	FieldOrderNumber,
	FieldPurchaseOrderNumber,
	FieldSupplierEmail,
	FieldSupplierTicketReferences,
	FieldEscalated,
	FieldEscalationReason,
	FieldEscalationAt,
	FieldLastSeenAt,
	FieldGmailThreadID,
	FieldCreatedAt,
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
	// DefaultEscalated holds the default value on creation for the "escalated" field.
	DefaultEscalated bool
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusNew is the default value of the Status enum.
const DefaultStatus = StatusNew

// Status values.
const (
	StatusNew              Status = "new"
	StatusAwaitingCustomer Status = "awaiting_customer"
	StatusAwaitingSupplier Status = "awaiting_supplier"
	StatusEscalated        Status = "escalated"
	StatusImported         Status = "imported"
	StatusClosed           Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusNew, StatusAwaitingCustomer, StatusAwaitingSupplier, StatusEscalated, StatusImported, StatusClosed:
		return nil
	default:
		return fmt.Errorf("ticketstate: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the TicketState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTicketID orders the results by the ticket_id field.
func ByTicketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCustomStatusID orders the results by the custom_status_id field.
func ByCustomStatusID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomStatusID, opts...).ToFunc()
}

// ByCustomerEmail orders the results by the customer_email field.
func ByCustomerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomerEmail, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByOrderNumber orders the results by the order_number field.
func ByOrderNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderNumber, opts...).ToFunc()
}

// ByPurchaseOrderNumber orders the results by the purchase_order_number field.
func ByPurchaseOrderNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPurchaseOrderNumber, opts...).ToFunc()
}

// BySupplierEmail orders the results by the supplier_email field.
func BySupplierEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierEmail, opts...).ToFunc()
}

// ByEscalated orders the results by the escalated field.
func ByEscalated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalated, opts...).ToFunc()
}

// ByEscalationReason orders the results by the escalation_reason field.
func ByEscalationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationReason, opts...).ToFunc()
}

// ByEscalationAt orders the results by the escalation_at field.
func ByEscalationAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEscalationAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByGmailThreadID orders the results by the gmail_thread_id field.
func ByGmailThreadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGmailThreadID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDecisionsCount orders the results by decisions count.
func ByDecisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDecisionsStep(), opts...)
	}
}

// ByDecisions orders the results by decisions terms.
func ByDecisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDecisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPendingMessagesCount orders the results by pending_messages count.
func ByPendingMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPendingMessagesStep(), opts...)
	}
}

// ByPendingMessages orders the results by pending_messages terms.
func ByPendingMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPendingMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySupplierMessagesCount orders the results by supplier_messages count.
func BySupplierMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSupplierMessagesStep(), opts...)
	}
}

// BySupplierMessages orders the results by supplier_messages terms.
func BySupplierMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSupplierMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, TicketMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newDecisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DecisionsInverseTable, AIDecisionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DecisionsTable, DecisionsColumn),
	)
}
func newPendingMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PendingMessagesInverseTable, PendingMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PendingMessagesTable, PendingMessagesColumn),
	)
}
func newSupplierMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SupplierMessagesInverseTable, SupplierMessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SupplierMessagesTable, SupplierMessagesColumn),
	)
}
