package queue

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/metrics"
	"github.com/shipdesk/shipdesk/pkg/pipeline"
)

// worker polls for claimable ingest jobs and runs the pipeline on each.
type worker struct {
	id   string
	pool *Pool
	log  *slog.Logger
}

// run is the worker loop. It polls on a jittered interval until the pool
// stops, draining one job per wakeup plus any immediately claimable ones.
func (w *worker) run(ctx context.Context) {
	defer w.pool.wg.Done()
	w.log.Info("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Worker stopping")
			return
		case <-time.After(w.pollInterval()):
		}

		for {
			claimed, err := w.pollAndProcess(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					w.log.Error("Worker poll failed", "error", err)
				}
				break
			}
			if !claimed {
				break
			}
		}
	}
}

// pollAndProcess claims at most one job and processes it. Returns whether
// a job was claimed so the loop can drain a backlog without waiting.
func (w *worker) pollAndProcess(ctx context.Context) (bool, error) {
	job, err := w.claim(ctx)
	if err != nil || job == nil {
		return false, err
	}

	w.log.Info("Claimed ingest job",
		"job_id", job.ID, "source_message_id", job.SourceMessageID, "attempt", job.Attempts)

	jobCtx, cancel := context.WithTimeout(ctx, w.pool.cfg.JobTimeout)
	_, procErr := w.pool.pipe.Process(jobCtx, &job.Payload)
	cancel()

	// The terminal status must land even when the run context is gone.
	finishCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return true, w.finish(finishCtx, job, procErr)
}

// claim picks the oldest due pending job with FOR UPDATE SKIP LOCKED so
// concurrent workers never double-claim.
func (w *worker) claim(ctx context.Context) (*ent.IngestJob, error) {
	tx, err := w.pool.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var jobID string
	err = tx.QueryRowContext(ctx, `
		SELECT ingest_job_id FROM ingest_jobs
		WHERE status = 'pending' AND next_attempt_at <= now()
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED`,
	).Scan(&jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select claimable job: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE ingest_jobs
		SET status = 'in_progress', claimed_by = $1, attempts = attempts + 1, updated_at = now()
		WHERE ingest_job_id = $2`,
		w.id, jobID,
	); err != nil {
		return nil, fmt.Errorf("mark job in progress: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit claim: %w", err)
	}

	return w.pool.db.IngestJob.Get(ctx, jobID)
}

// finish writes the job's terminal status for this attempt.
func (w *worker) finish(ctx context.Context, job *ent.IngestJob, procErr error) error {
	switch {
	case procErr == nil:
		return job.Update().
			SetStatus(ingestjob.StatusDone).
			ClearLastError().
			Exec(ctx)

	case pipeline.IsRetryable(procErr) || errors.Is(procErr, context.DeadlineExceeded) || errors.Is(procErr, context.Canceled):
		backoff := config.BackoffAt(config.IngestBackoff, job.Attempts-1)
		w.log.Warn("Ingest job failed transiently",
			"job_id", job.ID, "attempt", job.Attempts, "retry_in", backoff, "error", procErr)
		return job.Update().
			SetStatus(ingestjob.StatusFailed).
			SetLastError(procErr.Error()).
			SetNextAttemptAt(time.Now().Add(backoff)).
			Exec(ctx)

	default:
		// Permanent: the pipeline already recorded the failure on the
		// idempotency ledger.
		w.log.Error("Ingest job failed permanently", "job_id", job.ID, "error", procErr)
		return job.Update().
			SetStatus(ingestjob.StatusDone).
			SetLastError(procErr.Error()).
			Exec(ctx)
	}
}

func (w *worker) pollInterval() time.Duration {
	base := w.pool.cfg.PollInterval
	jitter := w.pool.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	d := base - jitter + time.Duration(rand.Int64N(int64(2*jitter)))
	if d <= 0 {
		return base
	}
	return d
}

// observeDepth refreshes the queue depth gauge. Called by the pool's
// housekeeping tick, not per claim.
func observeDepth(ctx context.Context, pool *Pool) {
	n, err := pool.db.IngestJob.Query().
		Where(ingestjob.StatusEQ(ingestjob.StatusPending)).
		Count(ctx)
	if err != nil {
		return
	}
	metrics.QueueDepth.Set(float64(n))
}
