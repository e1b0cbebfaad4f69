package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/pendingmessage"
	"github.com/shipdesk/shipdesk/pkg/approval"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/models"
	"github.com/shipdesk/shipdesk/pkg/prompt"
	"github.com/shipdesk/shipdesk/pkg/services"
	"github.com/shipdesk/shipdesk/pkg/ticket"
	testdb "github.com/shipdesk/shipdesk/test/database"
)

type fakeSender struct {
	sent []ticket.OutboundMessage
}

func (f *fakeSender) SendCustomer(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error) {
	f.sent = append(f.sent, msg)
	return "msg-1", nil
}

func (f *fakeSender) SendSupplier(ctx context.Context, ticketID string, msg ticket.OutboundMessage) (string, error) {
	return f.SendCustomer(ctx, ticketID, msg)
}

func (f *fakeSender) SendInternal(ctx context.Context, ticketID, body string) (string, error) {
	return "note-1", nil
}

type fakeTracker struct{}

func (fakeTracker) RecordSent(ctx context.Context, supplierEmail, ticketNumber string) error {
	return nil
}

type fakeAnalyzer struct {
	preview  *prompt.Output
	decision *ent.AIDecision
	err      error
}

func (f *fakeAnalyzer) AnalyzeTicket(ctx context.Context, ticketNumber string, ignored []string, preview bool) (*prompt.Output, *ent.AIDecision, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.preview, f.decision, nil
}

type fixture struct {
	db       *database.Client
	srv      *Server
	sender   *fakeSender
	analyzer *fakeAnalyzer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.NewTestClient(t)
	cfg := &config.Config{MaxSendRetries: 9}
	sender := &fakeSender{}
	analyzer := &fakeAnalyzer{}
	pending := approval.New(db, cfg, sender, fakeTracker{})
	srv := NewServer(cfg, db, pending,
		services.NewTicketService(db),
		services.NewDecisionService(db),
		services.NewAnalyzeService(analyzer),
		services.NewDirectoryService(db))
	return &fixture{db: db, srv: srv, sender: sender, analyzer: analyzer}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func (f *fixture) seedTicket(t *testing.T) *ent.TicketState {
	t.Helper()
	ts, err := f.db.TicketState.Create().
		SetID("T-1001").
		SetTicketID("backend-42").
		SetCustomerEmail("jane@customer.example").
		Save(context.Background())
	require.NoError(t, err)
	return ts
}

func (f *fixture) seedPending(t *testing.T) *ent.PendingMessage {
	t.Helper()
	pm, err := f.db.PendingMessage.Create().
		SetID(uuid.New().String()).
		SetTicketNumber("T-1001").
		SetKind(pendingmessage.KindCustomer).
		SetTo("jane@customer.example").
		SetBody("Your parcel ships tomorrow.").
		Save(context.Background())
	require.NoError(t, err)
	return pm
}

func (f *fixture) seedDecision(t *testing.T) *ent.AIDecision {
	t.Helper()
	d, err := f.db.AIDecision.Create().
		SetID(uuid.New().String()).
		SetTicketNumber("T-1001").
		SetDetectedLanguage("en").
		SetDetectedIntent("delivery_delay").
		SetConfidence(0.9).
		SetPhase("shadow").
		Save(context.Background())
	require.NoError(t, err)
	return d
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestListPending(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	f.seedPending(t)

	t.Run("all", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/messages/pending", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp PendingListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("status filter", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/messages/pending?status=sent", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp PendingListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Zero(t, resp.Count)
	})

	t.Run("invalid status", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/messages/pending?status=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetPendingDetail(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	pm := f.seedPending(t)

	rec := f.do(t, http.MethodGet, "/api/v1/messages/pending/"+pm.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PendingDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, pm.ID, resp.Message.ID)
	require.NotNil(t, resp.Ticket)
	assert.Equal(t, "T-1001", resp.Ticket.TicketNumber)
	assert.Equal(t, "jane@customer.example", resp.Ticket.CustomerEmail)
}

func TestGetPendingNotFound(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/messages/pending/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApprovePending(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	pm := f.seedPending(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages/pending/"+pm.ID+"/approve", nil)
	req.Header.Set("X-Forwarded-User", "alex@shipdesk.example")
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got ent.PendingMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, pendingmessage.StatusSent, got.Status)
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, "alex@shipdesk.example", *got.ReviewedBy)
	assert.Len(t, f.sender.sent, 1)

	// A second approval conflicts.
	rec2 := f.do(t, http.MethodPost, "/api/v1/messages/pending/"+pm.ID+"/approve", nil)
	assert.Equal(t, http.StatusConflict, rec2.Code)
}

func TestApproveWithEdits(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	pm := f.seedPending(t)

	body := "Edited body."
	rec := f.do(t, http.MethodPost, "/api/v1/messages/pending/"+pm.ID+"/approve",
		ApproveRequest{Edits: &models.MessageEdits{Body: &body}})
	require.Equal(t, http.StatusOK, rec.Code)

	var got ent.PendingMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, body, got.Body)
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, body, f.sender.sent[0].Body)
}

func TestRejectPending(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	pm := f.seedPending(t)

	t.Run("missing reason", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/messages/pending/"+pm.ID+"/reject", RejectRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/messages/pending/"+pm.ID+"/reject",
			RejectRequest{Reason: "draft is wrong"})
		require.Equal(t, http.StatusOK, rec.Code)
		var got ent.PendingMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, pendingmessage.StatusRejected, got.Status)
	})
}

func TestRetryPendingConflict(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	pm := f.seedPending(t)

	rec := f.do(t, http.MethodPost, "/api/v1/messages/pending/"+pm.ID+"/retry", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetTicket(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	f.seedDecision(t)

	rec := f.do(t, http.MethodGet, "/api/v1/tickets/T-1001", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail services.TicketDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "T-1001", detail.Ticket.ID)
	assert.Len(t, detail.Decisions, 1)
}

func TestGetTicketNotFound(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/tickets/T-9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTickets(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)

	t.Run("all", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tickets", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp TicketListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("invalid escalated", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tickets?escalated=maybe", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("escalated filter", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tickets?escalated=true", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp TicketListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Zero(t, resp.Count)
	})
}

func TestAnalyzePreview(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	f.analyzer.preview = &prompt.Output{SystemPrompt: "triage"}

	rec := f.do(t, http.MethodPost, "/api/v1/tickets/T-1001/analyze",
		AnalyzeRequest{PreviewOnly: true})
	require.Equal(t, http.StatusOK, rec.Code)

	var result services.AnalyzeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotNil(t, result.Preview)
	assert.Equal(t, "triage", result.Preview.SystemPrompt)
	assert.Nil(t, result.Decision)
}

func TestAnalyzeNotFound(t *testing.T) {
	f := newFixture(t)
	f.analyzer.err = &ent.NotFoundError{}

	rec := f.do(t, http.MethodPost, "/api/v1/tickets/T-9999/analyze", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDecisionFeedback(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	d := f.seedDecision(t)

	t.Run("invalid value", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/ai-decisions/"+d.ID+"/feedback",
			FeedbackRequest{Feedback: "great"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("records", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/ai-decisions/"+d.ID+"/feedback",
			FeedbackRequest{Feedback: "incorrect", Notes: "wrong intent"})
		require.Equal(t, http.StatusOK, rec.Code)
		var got ent.AIDecision
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.NotNil(t, got.OperatorFeedback)
		assert.Equal(t, "incorrect", string(*got.OperatorFeedback))
	})
}

func TestListDecisionsScopedToTicket(t *testing.T) {
	f := newFixture(t)
	f.seedTicket(t)
	f.seedDecision(t)

	rec := f.do(t, http.MethodGet, "/api/v1/ai-decisions?ticket=T-1001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp DecisionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)

	rec = f.do(t, http.MethodGet, "/api/v1/ai-decisions?ticket=T-2002", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = DecisionListResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}

func TestGetDecisionNotFound(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/ai-decisions/%s", uuid.New()), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSupplierDirectory(t *testing.T) {
	f := newFixture(t)

	t.Run("invalid email", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/suppliers",
			services.SupplierUpsert{Name: "Acme Fulfillment GmbH", DefaultEmail: "not-an-address"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/suppliers", services.SupplierUpsert{
			Name:         "Acme Fulfillment GmbH",
			DefaultEmail: "Warehouse@ACME.example",
			Contacts:     map[string]string{"returns": "returns@acme.example"},
			Language:     "de",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		var got ent.Supplier
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "warehouse@acme.example", got.DefaultEmail)
		assert.Equal(t, "de", got.Language)
	})

	t.Run("update by name", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/suppliers", services.SupplierUpsert{
			Name:         "Acme Fulfillment GmbH",
			DefaultEmail: "dispatch@acme.example",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(t, http.MethodGet, "/api/v1/suppliers", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp SupplierListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, 1, resp.Count)
		assert.Equal(t, "dispatch@acme.example", resp.Suppliers[0].DefaultEmail)
	})
}
