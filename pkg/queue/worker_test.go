package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/pipeline"
	testdb "github.com/shipdesk/shipdesk/test/database"
)

type fakeProcessor struct {
	mu    sync.Mutex
	err   error
	calls []string
}

func (f *fakeProcessor) Process(ctx context.Context, inbound *models.InboundEmail) (*pipeline.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, inbound.SourceMessageID)
	if f.err != nil {
		return nil, f.err
	}
	return &pipeline.Result{Outcome: pipeline.OutcomeOK}, nil
}

func (f *fakeProcessor) processed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type fixture struct {
	db   *database.Client
	pool *Pool
	proc *fakeProcessor
	w    *worker
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	proc := &fakeProcessor{}
	cfg := &config.QueueConfig{
		WorkerCount:             1,
		PollInterval:            10 * time.Millisecond,
		JobTimeout:              5 * time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
	}
	pool := NewPool(db, cfg, proc)
	w := &worker{id: "worker-test", pool: pool}
	w.log = pool.log.With("worker_id", w.id)
	return &fixture{db: db, pool: pool, proc: proc, w: w}
}

func (f *fixture) job(t *testing.T, id string, createdAt time.Time) *ent.IngestJob {
	t.Helper()
	job, err := f.db.IngestJob.Create().
		SetID(uuid.New().String()).
		SetSourceMessageID(id).
		SetPayload(models.InboundEmail{
			SourceMessageID: id,
			From:            "jane@customer.example",
			Subject:         "Order status",
			BodyPlain:       "Where is order 44556677?",
			ReceivedAt:      time.Now(),
		}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func TestClaimMarksInProgress(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.job(t, "gm-1", time.Now())

	job, err := f.w.claim(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.Equal(t, ingestjob.StatusInProgress, job.Status)
	assert.Equal(t, 1, job.Attempts)
	assert.Equal(t, "worker-test", job.ClaimedBy)
}

func TestClaimReturnsNilWhenEmpty(t *testing.T) {
	f := newFixture(t)
	job, err := f.w.claim(context.Background())
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestClaimSkipsFutureJobs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := f.job(t, "gm-1", time.Now())
	require.NoError(t, created.Update().
		SetNextAttemptAt(time.Now().Add(time.Hour)).
		Exec(ctx))

	job, err := f.w.claim(ctx)
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestClaimOldestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.job(t, "gm-new", time.Now())
	f.job(t, "gm-old", time.Now().Add(-time.Hour))

	job, err := f.w.claim(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "gm-old", job.SourceMessageID)
}

func TestClaimedJobsAreInvisibleToOthers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.job(t, "gm-1", time.Now())

	first, err := f.w.claim(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	other := &worker{id: "worker-other", pool: f.pool}
	other.log = f.pool.log.With("worker_id", other.id)
	second, err := other.claim(ctx)
	require.NoError(t, err)
	assert.Nil(t, second)
}

func TestPollAndProcessSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.job(t, "gm-1", time.Now())

	claimed, err := f.w.pollAndProcess(ctx)
	require.NoError(t, err)
	assert.True(t, claimed)
	assert.Equal(t, []string{"gm-1"}, f.proc.processed())

	job, err := f.db.IngestJob.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, ingestjob.StatusDone, job.Status)
	assert.Nil(t, job.LastError)
}

func TestPollAndProcessRetryableFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.job(t, "gm-1", time.Now())
	f.proc.err = &pipeline.RetryableError{Err: errors.New("backend unavailable")}

	claimed, err := f.w.pollAndProcess(ctx)
	require.NoError(t, err)
	assert.True(t, claimed)

	job, err := f.db.IngestJob.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, ingestjob.StatusFailed, job.Status)
	require.NotNil(t, job.LastError)
	assert.Contains(t, *job.LastError, "backend unavailable")
	assert.True(t, job.NextAttemptAt.After(time.Now()))

	// Failed jobs belong to the retry sweep, not the claim query.
	next, err := f.w.claim(ctx)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestPollAndProcessPermanentFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.job(t, "gm-1", time.Now())
	f.proc.err = errors.New("malformed payload")

	claimed, err := f.w.pollAndProcess(ctx)
	require.NoError(t, err)
	assert.True(t, claimed)

	// Permanent failures are terminal for the queue; the ledger row written
	// by the pipeline is what blocks re-admission.
	job, err := f.db.IngestJob.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, ingestjob.StatusDone, job.Status)
	require.NotNil(t, job.LastError)
}

func TestPoolDrainsBacklog(t *testing.T) {
	f := newFixture(t)
	f.job(t, "gm-1", time.Now())
	f.job(t, "gm-2", time.Now())
	f.job(t, "gm-3", time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, f.pool.Start(ctx))

	require.Eventually(t, func() bool {
		return len(f.proc.processed()) == 3
	}, 10*time.Second, 20*time.Millisecond)

	cancel()
	f.pool.Stop()
}

func TestPoolRejectsZeroWorkers(t *testing.T) {
	f := newFixture(t)
	f.pool.cfg.WorkerCount = 0
	assert.Error(t, f.pool.Start(context.Background()))
}

func TestPollIntervalJitterBounds(t *testing.T) {
	f := newFixture(t)
	f.pool.cfg.PollInterval = 100 * time.Millisecond
	f.pool.cfg.PollIntervalJitter = 20 * time.Millisecond

	for i := 0; i < 100; i++ {
		d := f.w.pollInterval()
		assert.GreaterOrEqual(t, d, 80*time.Millisecond)
		assert.Less(t, d, 120*time.Millisecond)
	}
}
