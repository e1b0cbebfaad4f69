package ticket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/pkg/config"
)

// fastRetries shrinks the backoff so failure paths run in milliseconds.
func fastRetries(t *testing.T) {
	t.Helper()
	orig := retrySchedule
	retrySchedule = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retrySchedule = orig })
}

type backend struct {
	t            *testing.T
	tokenCalls   atomic.Int32
	tickets      map[string]View // keyed by order number
	failSends    atomic.Int32    // remaining sends to fail with 503
	rejectToken  bool
	expiredToken string
}

func (b *backend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/token", func(w http.ResponseWriter, r *http.Request) {
		b.tokenCalls.Add(1)
		if b.rejectToken {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-1", "expires_in": 3600})
	})
	mux.HandleFunc("/api/v1/tickets", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(w, r) {
			return
		}
		if r.Method == http.MethodPost {
			_ = json.NewEncoder(w).Encode(map[string]string{"ticket_id": "backend-42"})
			return
		}
		order := r.URL.Query().Get("order_number")
		view, ok := b.tickets[order]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(view)
	})
	mux.HandleFunc("/api/v1/tickets/backend-42/messages/customer", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(w, r) {
			return
		}
		if b.failSends.Load() > 0 {
			b.failSends.Add(-1)
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message_id": "msg-7"})
	})
	return mux
}

func (b *backend) authorized(w http.ResponseWriter, r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	if auth == "Bearer "+b.expiredToken {
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}
	if auth != "Bearer tok-1" {
		b.t.Errorf("unexpected Authorization header %q", auth)
		w.WriteHeader(http.StatusUnauthorized)
		return false
	}
	return true
}

func newTestClient(t *testing.T, b *backend) *Client {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return NewClient(&config.TicketingConfig{
		BaseURL:  srv.URL,
		ClientID: "shipdesk",
		Timeout:  5 * time.Second,
	})
}

func TestLookup(t *testing.T) {
	ctx := context.Background()
	b := &backend{t: t, tickets: map[string]View{
		"44556677": {Header: Header{TicketID: "backend-42", TicketNumber: "T-1001", OrderNumber: "44556677"}},
	}}
	c := newTestClient(t, b)

	t.Run("found by order", func(t *testing.T) {
		view, err := c.GetByOrder(ctx, "44556677")
		require.NoError(t, err)
		assert.Equal(t, "T-1001", view.Header.TicketNumber)
	})

	t.Run("404 maps to ErrNotFound", func(t *testing.T) {
		_, err := c.GetByOrder(ctx, "00000000")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty key short-circuits", func(t *testing.T) {
		_, err := c.GetByOrder(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("token is fetched once and cached", func(t *testing.T) {
		assert.Equal(t, int32(1), b.tokenCalls.Load())
	})
}

func TestTokenRefreshOn401(t *testing.T) {
	ctx := context.Background()
	b := &backend{t: t, tickets: map[string]View{
		"44556677": {Header: Header{TicketID: "backend-42", TicketNumber: "T-1001"}},
	}}
	c := newTestClient(t, b)

	// Seed an expired token; the first request 401s and forces one refresh.
	c.mu.Lock()
	c.token = "stale"
	c.tokenExpiry = time.Now().Add(time.Hour)
	c.mu.Unlock()
	b.expiredToken = "stale"

	view, err := c.GetByOrder(ctx, "44556677")
	require.NoError(t, err)
	assert.Equal(t, "T-1001", view.Header.TicketNumber)
	assert.Equal(t, int32(1), b.tokenCalls.Load())
}

func TestUpsert(t *testing.T) {
	c := newTestClient(t, &backend{t: t})
	id, err := c.Upsert(context.Background(), Header{OrderNumber: "44556677", CustomerEmail: "jane@customer.example"})
	require.NoError(t, err)
	assert.Equal(t, "backend-42", id)
}

func TestSendRetriesExhaustTransient(t *testing.T) {
	fastRetries(t)
	b := &backend{t: t}
	b.failSends.Store(10) // more failures than the schedule allows
	c := newTestClient(t, b)

	_, err := c.SendCustomer(context.Background(), "backend-42", OutboundMessage{To: "jane@customer.example", Body: "hi"})
	var te *TransientError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, len(retrySchedule), te.Attempts)
	assert.True(t, IsTransient(err))
}

func TestSendRecoversWithinSchedule(t *testing.T) {
	fastRetries(t)
	b := &backend{t: t}
	b.failSends.Store(2) // two 503s, third attempt succeeds
	c := newTestClient(t, b)

	msgID, err := c.SendCustomer(context.Background(), "backend-42", OutboundMessage{Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "msg-7", msgID)
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	b := &backend{t: t}
	c := newTestClient(t, b)

	_, err := c.SendCustomer(context.Background(), "no-such-ticket", OutboundMessage{Body: "hi"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.False(t, IsTransient(err))
}

func TestSendRequiresTicketID(t *testing.T) {
	c := newTestClient(t, &backend{t: t})
	_, err := c.SendInternal(context.Background(), "", "note")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestTokenFailureSurfaces(t *testing.T) {
	c := newTestClient(t, &backend{t: t, rejectToken: true})
	_, err := c.GetByOrder(context.Background(), "44556677")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestContextCancelDuringBackoff(t *testing.T) {
	orig := retrySchedule
	retrySchedule = []time.Duration{time.Hour, time.Hour, time.Hour}
	t.Cleanup(func() { retrySchedule = orig })

	b := &backend{t: t}
	b.failSends.Store(10)
	c := newTestClient(t, b)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.SendCustomer(ctx, "backend-42", OutboundMessage{Body: "hi"})
	var te *TransientError
	require.ErrorAs(t, err, &te)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
