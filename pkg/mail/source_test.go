package mail

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/ent/ingestjob"
	"github.com/shipdesk/shipdesk/pkg/models"
	testdb "github.com/shipdesk/shipdesk/test/database"
)

type fakeSource struct {
	inbox      []models.InboundEmail
	consumed   []string
	listErr    error
	consumeErr error
	listCalls  atomic.Int32
}

func (f *fakeSource) ListNew(ctx context.Context) ([]models.InboundEmail, error) {
	f.listCalls.Add(1)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.inbox, nil
}

func (f *fakeSource) MarkConsumed(ctx context.Context, sourceMessageID string) error {
	if f.consumeErr != nil {
		return f.consumeErr
	}
	f.consumed = append(f.consumed, sourceMessageID)
	for i := range f.inbox {
		if f.inbox[i].SourceMessageID == sourceMessageID {
			f.inbox = append(f.inbox[:i], f.inbox[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeSource) FetchAttachment(ctx context.Context, sourceMessageID, attachmentID string) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func inbound(id string) models.InboundEmail {
	return models.InboundEmail{
		SourceMessageID: id,
		ThreadID:        "th-1",
		From:            "jane@customer.example",
		Subject:         "Order status",
		BodyPlain:       "Where is order 44556677?",
		ReceivedAt:      time.Now(),
	}
}

func TestPollEnqueuesAndConsumes(t *testing.T) {
	db := testdb.NewTestClient(t)
	src := &fakeSource{inbox: []models.InboundEmail{inbound("gm-1"), inbound("gm-2")}}
	p := NewPoller(db, src, time.Minute)
	ctx := context.Background()

	require.NoError(t, p.poll(ctx))

	jobs, err := db.IngestJob.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.Equal(t, ingestjob.StatusPending, job.Status)
		assert.Equal(t, "jane@customer.example", job.Payload.From)
	}
	assert.Equal(t, []string{"gm-1", "gm-2"}, src.consumed)
}

func TestPollRedeliveryIsDeduped(t *testing.T) {
	db := testdb.NewTestClient(t)
	src := &fakeSource{inbox: []models.InboundEmail{inbound("gm-1")}, consumeErr: errors.New("gmail 500")}
	p := NewPoller(db, src, time.Minute)
	ctx := context.Background()

	// First cycle enqueues but cannot mark consumed.
	require.NoError(t, p.poll(ctx))
	// The message reappears; the unique source id absorbs the duplicate.
	src.consumeErr = nil
	require.NoError(t, p.poll(ctx))

	n, err := db.IngestJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"gm-1"}, src.consumed)
}

func TestPollPropagatesListError(t *testing.T) {
	db := testdb.NewTestClient(t)
	src := &fakeSource{listErr: errors.New("gmail unavailable")}
	p := NewPoller(db, src, time.Minute)

	assert.Error(t, p.poll(context.Background()))
}

func TestPollEmptyInbox(t *testing.T) {
	db := testdb.NewTestClient(t)
	src := &fakeSource{}
	p := NewPoller(db, src, time.Minute)

	require.NoError(t, p.poll(context.Background()))
	n, err := db.IngestJob.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	db := testdb.NewTestClient(t)
	src := &fakeSource{}
	p := NewPoller(db, src, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return src.listCalls.Load() >= 2 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("poller did not stop")
	}
}
