// Code generated by ent, DO NOT EDIT.

package auditlogentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the auditlogentry type in the database.
	Label = "audit_log_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "audit_entry_id"
	// FieldAt holds the string denoting the at field in the database.
	FieldAt = "at"
	// FieldActor holds the string denoting the actor field in the database.
	FieldActor = "actor"
	// FieldTicketNumber holds the string denoting the ticket_number field in the database.
	FieldTicketNumber = "ticket_number"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldField holds the string denoting the field field in the database.
	FieldField = "field"
	// FieldOldValue holds the string denoting the old_value field in the database.
	FieldOldValue = "old_value"
	// FieldNewValue holds the string denoting the new_value field in the database.
	FieldNewValue = "new_value"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// Table holds the table name of the auditlogentry in the database.
	Table = "audit_log_entries"
)

// Columns holds all SQL columns for auditlogentry fields.
var Columns = []string{
	FieldID,
	FieldAt,
	FieldActor,
	FieldTicketNumber,
	FieldEntityID,
	FieldField,
	FieldOldValue,
	FieldNewValue,
	FieldDescription,
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

// OrderOption defines the ordering options for the AuditLogEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAt orders the results by the at field.
func ByAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAt, opts...).ToFunc()
}

// ByActor orders the results by the actor field.
func ByActor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActor, opts...).ToFunc()
}

// ByTicketNumber orders the results by the ticket_number field.
func ByTicketNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketNumber, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByField orders the results by the field field.
func ByField(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldField, opts...).ToFunc()
}

// ByOldValue orders the results by the old_value field.
func ByOldValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOldValue, opts...).ToFunc()
}

// ByNewValue orders the results by the new_value field.
func ByNewValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewValue, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}
