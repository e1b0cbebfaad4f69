// Package llm is the client for the LLM gateway sidecar.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/models"
	pb "github.com/shipdesk/shipdesk/proto"
)

// ErrUnavailable is returned when the gateway could not produce an analysis
// within the bounded retries. Callers treat it as transient.
var ErrUnavailable = errors.New("llm gateway unavailable")

// maxAttempts bounds analyze retries per call.
const maxAttempts = 3

// Client wraps the gRPC connection to the LLM gateway.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.AnalyzeServiceClient
	cfg     *config.LLMConfig
	log     *slog.Logger
	backoff time.Duration
}

// NewClient creates an LLM client. grpc.NewClient dials lazily; the actual
// connection happens on the first Analyze call.
func NewClient(cfg *config.LLMConfig) (*Client, error) {
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM gateway: %w", err)
	}
	return &Client{
		conn:    conn,
		client:  pb.NewAnalyzeServiceClient(conn),
		cfg:     cfg,
		log:     slog.Default().With("component", "llm-client"),
		backoff: 2 * time.Second,
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Analyze runs one analysis call and validates the returned payload against
// the analysis schema.
//
// Failure semantics: transport errors retry up to maxAttempts and then
// surface as ErrUnavailable (retryable upstream); a payload that fails
// schema validation is a permanent error and is never retried.
func (c *Client) Analyze(ctx context.Context, systemPrompt, userPrompt string) (*models.AnalysisResult, error) {
	req := &pb.AnalyzeRequest{
		Provider:     c.cfg.Provider,
		Model:        c.cfg.Model,
		Temperature:  c.cfg.Temperature,
		MaxTokens:    c.cfg.MaxTokens,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	}

	timeout := c.cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		resp, err := c.client.Analyze(callCtx, req)
		cancel()

		if err == nil {
			result, perr := models.ParseAnalysisResult([]byte(resp.GetPayloadJson()))
			if perr != nil {
				// Schema violations are permanent: re-asking the model is a
				// policy decision for the operator, not the transport layer.
				return nil, perr
			}
			return result, nil
		}

		lastErr = err
		c.log.Warn("Analyze call failed", "attempt", attempt, "model", c.cfg.Model, "error", err)

		if ctx.Err() != nil {
			break
		}
		if attempt < maxAttempts {
			t := time.NewTimer(c.backoff * time.Duration(attempt))
			select {
			case <-ctx.Done():
				t.Stop()
				return nil, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
			case <-t.C:
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}
