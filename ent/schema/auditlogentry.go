package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLogEntry is an append-only record of operator-visible mutations:
// pending-message transitions, escalations, feedback, invariant conflicts.
type AuditLogEntry struct {
	ent.Schema
}

// Fields of the AuditLogEntry.
func (AuditLogEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("audit_entry_id").
			Unique().
			Immutable(),
		field.Time("at").
			Default(time.Now).
			Immutable(),
		field.String("actor").
			Immutable().
			Comment("Operator identity or 'system'"),
		field.String("ticket_number").
			Optional().
			Immutable(),
		field.String("entity_id").
			Optional().
			Immutable().
			Comment("Id of the mutated entity, e.g. a pending message"),
		field.String("field").
			Optional().
			Immutable(),
		field.Text("old_value").
			Optional().
			Immutable(),
		field.Text("new_value").
			Optional().
			Immutable(),
		field.Text("description").
			Optional().
			Immutable(),
	}
}

// Indexes of the AuditLogEntry.
func (AuditLogEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_number", "at"),
		index.Fields("entity_id"),
	}
}
