// Package alerts posts operator alerts to Slack. Everything here is
// best-effort: a failed alert is logged, never propagated, and never
// blocks the pipeline.
package alerts

import (
	"context"
	"log/slog"
	"os"

	goslack "github.com/slack-go/slack"

	"github.com/shipdesk/shipdesk/pkg/config"
)

// Service posts operator alerts. A nil *Service is valid and does nothing,
// so callers never nil-check.
type Service struct {
	api     *goslack.Client
	channel string
	log     *slog.Logger
}

// NewService creates the alert service from configuration. Returns nil
// (alerts disabled) when Slack is not enabled or the token is missing.
func NewService(cfg *config.SlackConfig) *Service {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	token := os.Getenv(cfg.TokenEnv)
	if token == "" {
		slog.Warn("Slack alerts enabled but token env is empty, disabling", "token_env", cfg.TokenEnv)
		return nil
	}
	return &Service{
		api:     goslack.New(token),
		channel: cfg.Channel,
		log:     slog.Default().With("component", "alerts"),
	}
}

// Escalation announces an escalated ticket.
func (s *Service) Escalation(ctx context.Context, ticketNumber, reason string) {
	s.post(ctx, ":rotating_light: Ticket "+ticketNumber+" escalated: "+reason)
}

// InvariantViolation announces a storage-level conflict (duplicate order
// number, duplicate ticket) that aborted a transaction.
func (s *Service) InvariantViolation(ctx context.Context, detail string) {
	s.post(ctx, ":x: Invariant violation: "+detail)
}

// DispatchFailed announces a persisted decision whose dispatch could not
// complete; the ticket needs operator attention.
func (s *Service) DispatchFailed(ctx context.Context, ticketNumber, detail string) {
	s.post(ctx, ":warning: Dispatch failed for ticket "+ticketNumber+": "+detail)
}

// RetriesExhausted announces an ingest or send that ran out of retries.
func (s *Service) RetriesExhausted(ctx context.Context, what, id, lastErr string) {
	s.post(ctx, ":warning: Retries exhausted for "+what+" "+id+": "+lastErr)
}

func (s *Service) post(ctx context.Context, text string) {
	if s == nil {
		return
	}
	_, _, err := s.api.PostMessageContext(ctx, s.channel, goslack.MsgOptionText(text, false))
	if err != nil {
		s.log.Warn("Failed to post Slack alert", "error", err)
	}
}
