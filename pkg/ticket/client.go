package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/shipdesk/shipdesk/pkg/config"
)

// tokenSkew renews the token this long before its reported expiry.
const tokenSkew = 30 * time.Second

// retrySchedule is the per-call backoff for network errors and 5xx. Three
// transport attempts total; anything longer belongs to the retry queue.
var retrySchedule = []time.Duration{
	500 * time.Millisecond,
	1 * time.Second,
	2 * time.Second,
}

// Client talks to the ticketing backend. The token cache is the only
// mutable state; it is guarded and single-writer.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	log          *slog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a ticketing backend client from configuration.
func NewClient(cfg *config.TicketingConfig) *Client {
	secret := ""
	if cfg.ClientSecretEnv != "" {
		secret = os.Getenv(cfg.ClientSecretEnv)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		clientID:     cfg.ClientID,
		clientSecret: secret,
		httpClient:   &http.Client{Timeout: timeout},
		log:          slog.Default().With("component", "ticket-client"),
	}
}

// SetHTTPClient replaces the HTTP client (used by tests).
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// GetByOrder looks a ticket up by order number. Returns ErrNotFound when
// no ticket matches.
func (c *Client) GetByOrder(ctx context.Context, orderNumber string) (*View, error) {
	return c.lookup(ctx, "order_number", orderNumber)
}

// GetByTicket looks a ticket up by ticket number.
//
// A freshly upserted ticket may not be indexed yet; callers verifying
// creation must correlate via GetByOrder or GetByPurchaseOrder instead.
func (c *Client) GetByTicket(ctx context.Context, ticketNumber string) (*View, error) {
	return c.lookup(ctx, "ticket_number", ticketNumber)
}

// GetByPurchaseOrder looks a ticket up by purchase order number.
func (c *Client) GetByPurchaseOrder(ctx context.Context, po string) (*View, error) {
	return c.lookup(ctx, "purchase_order_number", po)
}

func (c *Client) lookup(ctx context.Context, key, value string) (*View, error) {
	if value == "" {
		return nil, ErrNotFound
	}
	q := url.Values{key: {value}}
	body, err := c.doRequest(ctx, http.MethodGet, "/api/v1/tickets?"+q.Encode(), nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var view View
	if err := json.Unmarshal(body, &view); err != nil {
		return nil, fmt.Errorf("failed to decode ticket view: %w", err)
	}
	if view.Header.TicketID == "" && view.Header.TicketNumber == "" {
		return nil, ErrNotFound
	}
	return &view, nil
}

// Upsert creates the ticket when not found, else updates it, and returns
// the backend-assigned ticket id.
func (c *Client) Upsert(ctx context.Context, header Header) (string, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/v1/tickets", header)
	if err != nil {
		return "", err
	}
	var resp upsertResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode upsert response: %w", err)
	}
	if resp.TicketID == "" {
		return "", fmt.Errorf("upsert response missing ticket_id")
	}
	return resp.TicketID, nil
}

// SendCustomer sends a customer-facing message and returns the backend
// message id.
func (c *Client) SendCustomer(ctx context.Context, ticketID string, msg OutboundMessage) (string, error) {
	return c.send(ctx, ticketID, "customer", msg)
}

// SendSupplier sends a supplier-facing message.
func (c *Client) SendSupplier(ctx context.Context, ticketID string, msg OutboundMessage) (string, error) {
	return c.send(ctx, ticketID, "supplier", msg)
}

// SendInternal posts an internal note visible only to operators.
func (c *Client) SendInternal(ctx context.Context, ticketID, body string) (string, error) {
	return c.send(ctx, ticketID, "internal", OutboundMessage{Body: body})
}

func (c *Client) send(ctx context.Context, ticketID, channel string, msg OutboundMessage) (string, error) {
	if ticketID == "" {
		return "", &APIError{StatusCode: http.StatusBadRequest, Body: "ticket id is required"}
	}
	path := fmt.Sprintf("/api/v1/tickets/%s/messages/%s", url.PathEscape(ticketID), channel)
	body, err := c.doRequest(ctx, http.MethodPost, path, msg)
	if err != nil {
		return "", err
	}
	var resp sendResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode send response: %w", err)
	}
	if resp.MessageID == "" {
		return "", fmt.Errorf("send response missing message_id")
	}
	return resp.MessageID, nil
}

// doRequest performs an authenticated request with bounded retries.
// Network errors and 5xx retry with exponential backoff and jitter; a 401
// forces one token refresh; other 4xx surface as APIError immediately.
func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var lastErr error
	refreshed := false

	for attempt := 0; ; attempt++ {
		body, status, err := c.doOnce(ctx, method, path, payload)
		switch {
		case err != nil:
			lastErr = err
		case status == http.StatusUnauthorized && !refreshed:
			refreshed = true
			c.invalidateToken()
			continue // immediate retry with a fresh token, does not consume an attempt
		case status >= 200 && status < 300:
			return body, nil
		case status >= 500:
			lastErr = fmt.Errorf("backend returned status %d", status)
		default:
			return nil, &APIError{StatusCode: status, Body: string(body)}
		}

		if attempt >= len(retrySchedule)-1 {
			return nil, &TransientError{Err: lastErr, Attempts: attempt + 1}
		}
		if err := sleepCtx(ctx, withJitter(retrySchedule[attempt])); err != nil {
			return nil, &TransientError{Err: err, Attempts: attempt + 1}
		}
	}
}

func (c *Client) doOnce(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	token, err := c.currentToken(ctx)
	if err != nil {
		return nil, 0, err
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// currentToken returns a valid token, renewing near expiry.
func (c *Client) currentToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry.Add(-tokenSkew)) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/auth/token", bytes.NewBufferString(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	c.token = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	c.log.Debug("Refreshed backend token", "expires_in_s", tr.ExpiresIn)
	return c.token, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func withJitter(d time.Duration) time.Duration {
	// ±25% jitter so concurrent workers do not retry in lockstep.
	quarter := int64(d) / 4
	if quarter <= 0 {
		return d
	}
	return d - time.Duration(quarter) + time.Duration(rand.Int64N(2*quarter))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
