package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AIDecision records one LLM analysis. Append-only: after insert the only
// mutable fields are operator_feedback and feedback_notes.
type AIDecision struct {
	ent.Schema
}

// Fields of the AIDecision.
func (AIDecision) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("decision_id").
			Unique().
			Immutable(),
		field.String("ticket_number").
			Immutable(),
		field.Time("at").
			Default(time.Now).
			Immutable(),
		field.String("detected_language").
			Optional().
			Immutable(),
		field.String("detected_intent").
			Optional().
			Immutable(),
		field.Float("confidence").
			Immutable().
			Comment("In [0,1]"),
		field.String("recommended_action").
			Optional().
			Immutable(),
		field.Text("customer_draft").
			Optional().
			Immutable().
			Comment("May carry a NO_DRAFT sentinel with reason"),
		field.Text("supplier_draft").
			Optional().
			Immutable(),
		field.Bool("requires_escalation").
			Default(false).
			Immutable(),
		field.Enum("phase").
			Values("shadow", "assisted", "autonomous").
			Immutable().
			Comment("Deployment phase at decision time"),
		field.Text("summary").
			Optional().
			Immutable(),
		field.Enum("operator_feedback").
			Values("correct", "incorrect", "partial").
			Optional().
			Nillable(),
		field.Text("feedback_notes").
			Optional().
			Nillable(),
	}
}

// Edges of the AIDecision.
func (AIDecision) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", TicketState.Type).
			Ref("decisions").
			Field("ticket_number").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AIDecision.
func (AIDecision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_number", "at"),
	}
}
