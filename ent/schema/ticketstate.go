package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketState is the local shadow of an upstream ticket. It is created on
// first correlation or import and never deleted by the core.
type TicketState struct {
	ent.Schema
}

// Fields of the TicketState.
func (TicketState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_number").
			Unique().
			Immutable().
			Comment("Human-facing ticket number; natural key"),
		field.String("ticket_id").
			Optional().
			Comment("Upstream backend id"),
		field.Enum("status").
			Values("new", "awaiting_customer", "awaiting_supplier", "escalated", "imported", "closed").
			Default("new"),
		field.Int("custom_status_id").
			Optional().
			Nillable().
			Comment("Operator-defined status in the ticketing backend"),
		field.String("customer_email").
			Optional(),
		field.String("language").
			Optional().
			Comment("BCP-47 tag, e.g. de, en"),
		field.String("order_number").
			Optional().
			Nillable().
			Unique().
			Comment("Unique when present"),
		field.String("purchase_order_number").
			Optional().
			Nillable().
			Unique().
			Comment("Unique when present"),
		field.String("supplier_email").
			Optional(),
		field.JSON("supplier_ticket_references", []string{}).
			Optional(),
		field.Bool("escalated").
			Default(false),
		field.String("escalation_reason").
			Optional().
			Nillable(),
		field.Time("escalation_at").
			Optional().
			Nillable(),
		field.Time("last_seen_at").
			Default(time.Now),
		field.String("gmail_thread_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketState.
func (TicketState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", TicketMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("decisions", AIDecision.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("pending_messages", PendingMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("supplier_messages", SupplierMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TicketState.
func (TicketState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("customer_email"),
		index.Fields("escalated"),
		index.Fields("status", "last_seen_at"),
	}
}
