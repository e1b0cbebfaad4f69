package pipeline

import (
	"context"
	"fmt"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/ent/ticketmessage"
	"github.com/shipdesk/shipdesk/pkg/prompt"
)

// AnalyzeTicket runs an operator-triggered analysis on an existing ticket,
// without a triggering inbound message. With preview set, only the prompts
// are built and returned; nothing is called and nothing is persisted. The
// prompt build is deterministic, so a preview always shows exactly what a
// subsequent run will send.
func (p *Pipeline) AnalyzeTicket(ctx context.Context, ticketNumber string, ignored []string, preview bool) (*prompt.Output, *ent.AIDecision, error) {
	t, err := p.db.TicketState.Get(ctx, ticketNumber)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("load ticket %s: %w", ticketNumber, err)
	}

	unlock := p.locks.lock(t.ID)
	defer unlock()

	release, err := p.db.LockTicket(ctx, t.ID)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	history, err := t.QueryMessages().
		Order(ent.Asc(ticketmessage.FieldAt)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load history for ticket %s: %w", ticketNumber, err)
	}

	directory, err := p.db.Supplier.Query().All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load supplier directory: %w", err)
	}

	built, err := p.builder.Build(prompt.Input{
		Ticket:            t,
		History:           history,
		IgnoredMessageIDs: ignored,
		Directory:         directory,
	})
	if err != nil {
		return nil, nil, err
	}
	if preview {
		return built, nil, nil
	}

	start := p.now()
	result, err := p.analyzer.Analyze(ctx, built.SystemPrompt, built.UserPrompt)
	p.observeAnalyze(start)
	if err != nil {
		return built, nil, classify(err)
	}

	decision, err := p.persistDecisionForTicket(ctx, t, result)
	if err != nil {
		return built, nil, err
	}

	if result.RequiresEscalation {
		if t, err = p.escalate(ctx, t, result); err != nil {
			return built, decision, err
		}
	}

	if err := p.dispatch.Dispatch(ctx, t, decision, result, built); err != nil {
		return built, decision, classify(err)
	}
	return built, decision, nil
}
