package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessedEmail is the idempotency ledger: one row per inbound message
// admitted to the pipeline. The unique source_message_id is the gate that
// prevents double processing across workers and restarts.
type ProcessedEmail struct {
	ent.Schema
}

// Fields of the ProcessedEmail.
func (ProcessedEmail) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("processed_email_id").
			Unique().
			Immutable(),
		field.String("source_message_id").
			Unique().
			Immutable().
			Comment("Globally unique mail source id; idempotency key"),
		field.String("thread_id").
			Optional(),
		field.String("subject").
			Optional(),
		field.String("from_address").
			Optional(),
		field.Time("received_at").
			Optional().
			Nillable(),
		field.String("ticket_number").
			Optional().
			Nillable().
			Comment("Null until correlated"),
		field.Bool("success").
			Default(false),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("processed_at").
			Default(time.Now),
	}
}

// Indexes of the ProcessedEmail.
func (ProcessedEmail) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_number"),
		index.Fields("success", "processed_at"),
	}
}
