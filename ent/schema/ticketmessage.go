package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketMessage mirrors one message of a ticket's history locally so that
// context building never depends on upstream availability. Inbound mail is
// recorded here even when correlation fails, so no content is lost.
type TicketMessage struct {
	ent.Schema
}

// Fields of the TicketMessage.
func (TicketMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_message_id").
			Unique().
			Immutable(),
		field.String("ticket_number").
			Immutable(),
		field.Enum("direction").
			Values("inbound", "outbound", "internal"),
		field.Enum("role").
			Values("customer", "supplier", "agent", "system").
			Default("customer"),
		field.String("sender").
			Optional(),
		field.String("recipient").
			Optional(),
		field.String("subject").
			Optional(),
		field.Text("body"),
		field.String("source_message_id").
			Optional().
			Comment("Mail source id when the message originated from inbound mail"),
		field.String("upstream_message_id").
			Optional().
			Comment("Backend-assigned id for sent messages"),
		field.Time("at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketMessage.
func (TicketMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", TicketState.Type).
			Ref("messages").
			Field("ticket_number").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TicketMessage.
func (TicketMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_number", "at"),
		index.Fields("source_message_id"),
	}
}
