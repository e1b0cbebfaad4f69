package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/shipdesk/shipdesk/pkg/models"
)

// IngestJob is the durable work queue feeding the pipeline. The mail poller
// inserts one job per inbound message; workers claim jobs with
// FOR UPDATE SKIP LOCKED. Transient failures set status=failed with a
// next_attempt_at backoff; the retry sweep re-opens due jobs until the
// attempt cap, after which the job is exhausted.
type IngestJob struct {
	ent.Schema
}

// Fields of the IngestJob.
func (IngestJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ingest_job_id").
			Unique().
			Immutable(),
		field.String("source_message_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "failed", "exhausted", "done").
			Default("pending"),
		field.JSON("payload", models.InboundEmail{}).
			Comment("Enough to re-ingest without refetching from the mail source"),
		field.Int("attempts").
			Default(0),
		field.Time("next_attempt_at").
			Default(time.Now),
		field.String("last_error").
			Optional().
			Nillable(),
		field.String("claimed_by").
			Optional().
			Comment("Pod id of the worker that claimed the job"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the IngestJob.
func (IngestJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_attempt_at"),
		index.Fields("status", "created_at"),
	}
}
