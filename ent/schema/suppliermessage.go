package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SupplierMessage tracks one outbound supplier communication and the
// reminder obligation it creates. At most one row per (supplier, ticket)
// may be awaiting a response; the partial unique index enforcing that is
// created via migration SQL (Ent cannot express it).
type SupplierMessage struct {
	ent.Schema
}

// Fields of the SupplierMessage.
func (SupplierMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("supplier_message_id").
			Unique().
			Immutable(),
		field.String("supplier_email").
			Immutable(),
		field.String("ticket_number").
			Immutable(),
		field.Time("sent_at").
			Default(time.Now).
			Immutable(),
		field.Time("reminder_sent_at").
			Optional().
			Nillable(),
		field.Bool("response_received").
			Default(false),
		field.Time("next_check_at").
			Comment("sent_at + reminder window"),
	}
}

// Edges of the SupplierMessage.
func (SupplierMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", TicketState.Type).
			Ref("supplier_messages").
			Field("ticket_number").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the SupplierMessage.
func (SupplierMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("response_received", "next_check_at"),
		index.Fields("supplier_email", "ticket_number"),
	}
}
