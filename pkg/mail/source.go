// Package mail ingests inbound support e-mail. A Source lists new
// messages; the Poller turns each into a durable ingest job and then marks
// it consumed at the source, in that order, so a crash duplicates work
// (absorbed by the idempotency gate) rather than losing it.
package mail

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/models"
)

// Source is an inbound mailbox.
type Source interface {
	// ListNew returns messages not yet consumed, oldest first. Messages
	// already consumed may reappear after a crash; callers must dedupe.
	ListNew(ctx context.Context) ([]models.InboundEmail, error)

	// MarkConsumed prevents the message from appearing in later ListNew
	// calls.
	MarkConsumed(ctx context.Context, sourceMessageID string) error

	// FetchAttachment downloads one attachment body.
	FetchAttachment(ctx context.Context, sourceMessageID, attachmentID string) ([]byte, error)
}

// Poller drains the source into the ingest job queue on a fixed interval.
type Poller struct {
	db       *database.Client
	source   Source
	interval time.Duration
	log      *slog.Logger
}

// NewPoller creates a Poller.
func NewPoller(db *database.Client, source Source, interval time.Duration) *Poller {
	return &Poller{
		db:       db,
		source:   source,
		interval: interval,
		log:      slog.Default().With("component", "mail-poller"),
	}
}

// Run polls until the context ends. One failed cycle is logged and the
// next tick tries again.
func (p *Poller) Run(ctx context.Context) {
	p.log.Info("Mail poller started", "interval", p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.poll(ctx); err != nil && ctx.Err() == nil {
			p.log.Error("Mail poll failed", "error", err)
		}
		select {
		case <-ctx.Done():
			p.log.Info("Mail poller stopping")
			return
		case <-ticker.C:
		}
	}
}

func (p *Poller) poll(ctx context.Context) error {
	msgs, err := p.source.ListNew(ctx)
	if err != nil {
		return err
	}
	for i := range msgs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.enqueue(ctx, &msgs[i]); err != nil {
			p.log.Warn("Failed to enqueue inbound message",
				"source_message_id", msgs[i].SourceMessageID, "error", err)
			continue
		}
		if err := p.source.MarkConsumed(ctx, msgs[i].SourceMessageID); err != nil {
			// The job exists; the message will reappear and hit the
			// unique source_message_id on the next cycle.
			p.log.Warn("Failed to mark message consumed",
				"source_message_id", msgs[i].SourceMessageID, "error", err)
		}
	}
	return nil
}

// enqueue inserts one ingest job. A duplicate source message id means the
// job (or a finished run) already exists; that is a success.
func (p *Poller) enqueue(ctx context.Context, msg *models.InboundEmail) error {
	err := p.db.IngestJob.Create().
		SetID(uuid.New().String()).
		SetSourceMessageID(msg.SourceMessageID).
		SetPayload(*msg).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return err
	}
	p.log.Info("Enqueued inbound message", "source_message_id", msg.SourceMessageID)
	return nil
}
