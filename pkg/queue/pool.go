// Package queue runs the ingest worker pool: a fixed set of workers that
// claim jobs from the durable ingest_jobs table and feed them through the
// pipeline. Claiming uses row locks, so any number of replicas can run the
// pool against the same database.
package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/pipeline"
)

// Processor runs the per-message workflow. Satisfied by *pipeline.Pipeline.
type Processor interface {
	Process(ctx context.Context, inbound *models.InboundEmail) (*pipeline.Result, error)
}

// Pool manages the ingest workers.
type Pool struct {
	db   *database.Client
	cfg  *config.QueueConfig
	pipe Processor
	log  *slog.Logger

	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPool creates a worker pool.
func NewPool(db *database.Client, cfg *config.QueueConfig, pipe Processor) *Pool {
	return &Pool{
		db:   db,
		cfg:  cfg,
		pipe: pipe,
		log:  slog.Default().With("component", "worker-pool"),
	}
}

// Start launches the workers and the housekeeping tick. Non-blocking.
func (p *Pool) Start(ctx context.Context) error {
	if p.cfg.WorkerCount <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", p.cfg.WorkerCount)
	}
	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.cfg.WorkerCount; i++ {
		w := &worker{
			id:   fmt.Sprintf("worker-%s", uuid.New().String()[:8]),
			pool: p,
		}
		w.log = p.log.With("worker_id", w.id)
		p.wg.Add(1)
		go w.run(runCtx)
	}

	p.wg.Add(1)
	go p.housekeeping(runCtx)

	p.log.Info("Worker pool started", "workers", p.cfg.WorkerCount)
	return nil
}

// Stop signals the workers and waits up to the graceful shutdown timeout
// for in-flight jobs.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			p.log.Info("Worker pool stopped")
		case <-time.After(p.cfg.GracefulShutdownTimeout):
			p.log.Warn("Worker pool shutdown timed out with jobs in flight")
		}
	})
}

// housekeeping refreshes the queue depth gauge.
func (p *Pool) housekeeping(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			observeDepth(ctx, p)
		}
	}
}
