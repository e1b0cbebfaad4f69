package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/shipdesk/shipdesk/pkg/models"
)

// PendingMessage is a draft awaiting (or past) human approval.
// Legal transitions: pending→approved→sent, pending→rejected,
// approved→failed→approved (retry), failed→rejected. sent and rejected
// are terminal and never reopened.
type PendingMessage struct {
	ent.Schema
}

// Fields of the PendingMessage.
func (PendingMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pending_message_id").
			Unique().
			Immutable(),
		field.String("ticket_number").
			Immutable(),
		field.Enum("kind").
			Values("customer", "supplier", "internal").
			Immutable(),
		field.String("to").
			Optional(),
		field.JSON("cc", []string{}).
			Optional(),
		field.JSON("bcc", []string{}).
			Optional(),
		field.String("subject").
			Optional(),
		field.Text("body"),
		field.JSON("attachments", []models.Attachment{}).
			Optional(),
		field.Float("confidence").
			Default(0),
		field.String("decision_id").
			Optional().
			Comment("AIDecision that produced this draft"),
		field.Enum("status").
			Values("pending", "approved", "rejected", "sent", "failed").
			Default("pending"),
		field.Int("retry_count").
			Default(0),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("next_attempt_at").
			Optional().
			Nillable().
			Comment("Earliest time the retry sweep may re-send a failed message"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
		field.String("reviewed_by").
			Optional().
			Nillable(),
		field.Time("sent_at").
			Optional().
			Nillable(),
		field.String("upstream_message_id").
			Optional().
			Comment("Backend-assigned id once sent"),
		field.String("rejection_reason").
			Optional().
			Nillable(),
	}
}

// Edges of the PendingMessage.
func (PendingMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", TicketState.Type).
			Ref("pending_messages").
			Field("ticket_number").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PendingMessage.
func (PendingMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("ticket_number", "status"),
		index.Fields("status", "next_attempt_at"),
	}
}
