// Package sched is the retry scheduler: one sweep loop that re-opens due
// failed ingest jobs for the workers and re-sends due failed pending
// messages, each under an exponential backoff with a hard cap.
package sched

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/ent/processedemail"
	"github.com/shipdesk/shipdesk/pkg/alerts"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/services"
)

// Retryer re-attempts a failed pending message. Satisfied by
// *approval.Queue.
type Retryer interface {
	Retry(ctx context.Context, id, actor string) (*ent.PendingMessage, error)
}

// Scheduler owns the retry sweep.
type Scheduler struct {
	db      *database.Client
	cfg     *config.Config
	retryer Retryer
	alerts  *alerts.Service
	log     *slog.Logger
	now     func() time.Time
}

// New wires a Scheduler.
func New(db *database.Client, cfg *config.Config, retryer Retryer, alertSvc *alerts.Service) *Scheduler {
	return &Scheduler{
		db:      db,
		cfg:     cfg,
		retryer: retryer,
		alerts:  alertSvc,
		log:     slog.Default().With("component", "retry-scheduler"),
		now:     time.Now,
	}
}

// Sweep processes everything whose next_attempt_at has passed.
func (s *Scheduler) Sweep(ctx context.Context) error {
	if err := s.sweepOrphans(ctx); err != nil {
		return err
	}
	if err := s.sweepIngest(ctx); err != nil {
		return err
	}
	return s.sweepSends(ctx)
}

// sweepOrphans reclaims in-progress jobs whose worker died before writing a
// terminal status. A live worker finishes or fails within the job timeout
// plus the terminal-write grace, so anything older is an orphan; it goes
// back through the failed path where sweepIngest re-opens or exhausts it.
func (s *Scheduler) sweepOrphans(ctx context.Context) error {
	timeout := s.cfg.Queue.JobTimeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	cutoff := s.now().Add(-2 * timeout)

	n, err := s.db.IngestJob.Update().
		Where(
			ingestjob.StatusEQ(ingestjob.StatusInProgress),
			ingestjob.UpdatedAtLTE(cutoff),
		).
		SetStatus(ingestjob.StatusFailed).
		SetLastError("worker lost before finishing the job").
		SetNextAttemptAt(s.now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reclaim orphaned ingest jobs: %w", err)
	}
	if n > 0 {
		s.log.Warn("Reclaimed orphaned ingest jobs", "count", n)
	}
	return nil
}

// sweepIngest re-opens due failed ingest jobs so a worker can claim them,
// and exhausts jobs past the attempt cap with a permanent failure record.
func (s *Scheduler) sweepIngest(ctx context.Context) error {
	due, err := s.db.IngestJob.Query().
		Where(
			ingestjob.StatusEQ(ingestjob.StatusFailed),
			ingestjob.NextAttemptAtLTE(s.now()),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query due ingest jobs: %w", err)
	}

	for _, job := range due {
		if err := ctx.Err(); err != nil {
			return err
		}
		if job.Attempts >= s.cfg.MaxIngestRetries {
			if err := s.exhaust(ctx, job); err != nil {
				s.log.Warn("Failed to exhaust ingest job", "job_id", job.ID, "error", err)
			}
			continue
		}
		if err := job.Update().
			SetStatus(ingestjob.StatusPending).
			Exec(ctx); err != nil {
			s.log.Warn("Failed to re-open ingest job", "job_id", job.ID, "error", err)
			continue
		}
		s.log.Info("Re-opened ingest job for retry",
			"job_id", job.ID, "source_message_id", job.SourceMessageID, "attempts", job.Attempts)
	}
	return nil
}

// exhaust terminally fails an ingest job and records the permanent failure
// on the idempotency ledger so the message is never re-admitted.
func (s *Scheduler) exhaust(ctx context.Context, job *ent.IngestJob) error {
	lastErr := ""
	if job.LastError != nil {
		lastErr = *job.LastError
	}
	if err := job.Update().
		SetStatus(ingestjob.StatusExhausted).
		Exec(ctx); err != nil {
		return fmt.Errorf("mark job exhausted: %w", err)
	}

	exists, err := s.db.ProcessedEmail.Query().
		Where(processedemail.SourceMessageIDEQ(job.SourceMessageID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check idempotency ledger: %w", err)
	}
	if !exists {
		create := s.db.ProcessedEmail.Create().
			SetID(uuid.New().String()).
			SetSourceMessageID(job.SourceMessageID).
			SetSubject(job.Payload.Subject).
			SetFromAddress(job.Payload.From).
			SetThreadID(job.Payload.ThreadID).
			SetSuccess(false).
			SetErrorMessage(fmt.Sprintf("ingest retries exhausted after %d attempts: %s", job.Attempts, lastErr)).
			SetProcessedAt(s.now())
		if err := create.Exec(ctx); err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("record permanent ingest failure: %w", err)
		}
	}

	s.alerts.RetriesExhausted(ctx, "ingest", job.SourceMessageID, lastErr)
	s.log.Error("Ingest retries exhausted",
		"job_id", job.ID, "source_message_id", job.SourceMessageID, "attempts", job.Attempts, "last_error", lastErr)
	return nil
}

// sweepSends re-attempts due failed pending messages through the approval
// queue's retry path, and parks exhausted ones so they stop matching.
func (s *Scheduler) sweepSends(ctx context.Context) error {
	due, err := s.db.PendingMessage.Query().
		Where(
			pendingmessage.StatusEQ(pendingmessage.StatusFailed),
			pendingmessage.NextAttemptAtNotNil(),
			pendingmessage.NextAttemptAtLTE(s.now()),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query due pending messages: %w", err)
	}

	for _, pm := range due {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pm.RetryCount >= s.cfg.MaxSendRetries {
			if err := s.park(ctx, pm); err != nil {
				s.log.Warn("Failed to park exhausted message", "id", pm.ID, "error", err)
			}
			continue
		}
		if _, err := s.retryer.Retry(ctx, pm.ID, "retry-sweep"); err != nil {
			if errors.Is(err, services.ErrConflict) {
				// Lost a race with an operator action; nothing to do.
				continue
			}
			s.log.Warn("Scheduled retry failed", "id", pm.ID, "error", err)
		}
	}
	return nil
}

// park clears the retry deadline of an exhausted message. It stays failed
// and visible in the queue; only an operator reject closes it.
func (s *Scheduler) park(ctx context.Context, pm *ent.PendingMessage) error {
	lastErr := ""
	if pm.LastError != nil {
		lastErr = *pm.LastError
	}
	if err := pm.Update().
		ClearNextAttemptAt().
		Exec(ctx); err != nil {
		return err
	}
	s.alerts.RetriesExhausted(ctx, "pending message", pm.ID, lastErr)
	s.log.Error("Send retries exhausted, operator action required",
		"id", pm.ID, "ticket_number", pm.TicketNumber, "retry_count", pm.RetryCount)
	return nil
}
