// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AIDecision is the predicate function for aidecision builders.
type AIDecision func(*sql.Selector)

// AuditLogEntry is the predicate function for auditlogentry builders.
type AuditLogEntry func(*sql.Selector)

// IngestJob is the predicate function for ingestjob builders.
type IngestJob func(*sql.Selector)

// PendingMessage is the predicate function for pendingmessage builders.
type PendingMessage func(*sql.Selector)

// ProcessedEmail is the predicate function for processedemail builders.
type ProcessedEmail func(*sql.Selector)

// Supplier is the predicate function for supplier builders.
type Supplier func(*sql.Selector)

// SupplierMessage is the predicate function for suppliermessage builders.
type SupplierMessage func(*sql.Selector)

// TicketMessage is the predicate function for ticketmessage builders.
type TicketMessage func(*sql.Selector)

// TicketState is the predicate function for ticketstate builders.
type TicketState func(*sql.Selector)
