package services

import (
	"context"
	"fmt"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/pkg/prompt"
)

// TicketAnalyzer runs an on-demand analysis. Satisfied by
// *pipeline.Pipeline.
type TicketAnalyzer interface {
	AnalyzeTicket(ctx context.Context, ticketNumber string, ignored []string, preview bool) (*prompt.Output, *ent.AIDecision, error)
}

// AnalyzeService exposes operator-triggered analysis: either a preview of
// the exact prompts a run would use, or a full run that appends a decision
// and dispatches it.
type AnalyzeService struct {
	analyzer TicketAnalyzer
}

// NewAnalyzeService creates an AnalyzeService.
func NewAnalyzeService(analyzer TicketAnalyzer) *AnalyzeService {
	return &AnalyzeService{analyzer: analyzer}
}

// AnalyzeResult is the service-level outcome.
type AnalyzeResult struct {
	Preview  *prompt.Output  `json:"preview,omitempty"`
	Decision *ent.AIDecision `json:"decision,omitempty"`
}

// Analyze previews or runs an analysis on the ticket.
func (s *AnalyzeService) Analyze(ctx context.Context, ticketNumber string, ignored []string, previewOnly bool) (*AnalyzeResult, error) {
	built, decision, err := s.analyzer.AnalyzeTicket(ctx, ticketNumber, ignored, previewOnly)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("ticket %s: %w", ticketNumber, ErrNotFound)
		}
		return nil, err
	}
	if previewOnly {
		return &AnalyzeResult{Preview: built}, nil
	}
	return &AnalyzeResult{Decision: decision}, nil
}
