// Package prompt composes the LLM prompts from ticket history, the
// identity roster, and configuration. Stateless and deterministic: the
// same input yields byte-identical prompts, so an operator preview always
// matches the subsequent run.
package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/models"
)

// Builder builds analysis prompts. All state comes from parameters;
// thread-safe.
type Builder struct {
	cfg *config.Config
}

// NewBuilder creates a Builder. Panics if cfg is nil; callers must
// provide loaded configuration.
func NewBuilder(cfg *config.Config) *Builder {
	if cfg == nil {
		panic("prompt.NewBuilder: cfg must not be nil")
	}
	return &Builder{cfg: cfg}
}

// Input is everything one analysis needs.
type Input struct {
	Ticket  *ent.TicketState
	History []*ent.TicketMessage
	// IgnoredMessageIDs filters history rows by id (operator override).
	IgnoredMessageIDs []string
	// Inbound is the message that triggered this analysis, when any.
	Inbound *models.InboundEmail
	// Directory is the supplier directory; it resolves contact aliases to
	// the supplier role and supplies company names for leak checking.
	Directory []*ent.Supplier
}

// Output carries the prompts plus the derived artifacts the dispatcher and
// formatter need.
type Output struct {
	SystemPrompt string        `json:"system_prompt"`
	UserPrompt   string        `json:"user_prompt"`
	Roster       Roster        `json:"roster"`
	State        RedactedState `json:"state"`
}

const systemPromptHeader = `You are the support triage assistant of a drop-shipping retailer.
You classify customer intent, decide the next action, and draft replies in the customer's language.

Rules you must never break:
- Never reveal supplier names, supplier e-mail addresses, or purchase prices to customers.
- Never address internal agents as if they were customers or suppliers.
- If facts are missing, say so in the draft or decline with "NO_DRAFT — <reason>"; never invent order data, ETAs, or tracking numbers.
- If the customer asks for a human, decline the customer draft with "NO_DRAFT — Customer requested human contact" and set requires_escalation.

Respond with a single JSON object:
{"intent": string, "ticket_type_id": int|null, "confidence": number in [0,1],
 "requires_escalation": bool, "customer_response": string or "NO_DRAFT — <reason>",
 "supplier_action": {"action": string, "message": string} or null,
 "summary": string, "state": object}`

// Build resolves the roster, filters history, derives the redacted state,
// and renders both prompts.
//
// A sender of the triggering inbound that no rule can classify is an
// AmbiguousIdentityError: a policy block, handled by the pipeline.
func (b *Builder) Build(in Input) (*Output, error) {
	if in.Ticket == nil {
		return nil, fmt.Errorf("prompt build requires a ticket")
	}

	history := filterHistory(in.History, in.IgnoredMessageIDs)
	roster := resolveRoster(b.cfg.InternalAgents, in.Ticket, history, in.Directory)

	if in.Inbound != nil {
		if role := roster.Lookup(in.Inbound.From); role == RoleUnknown {
			return nil, &AmbiguousIdentityError{Address: canonicalAddress(in.Inbound.From)}
		}
	}

	state := buildRedactedState(in.Ticket, history, roster)

	out := &Output{
		SystemPrompt: systemPromptHeader,
		Roster:       roster,
		State:        state,
	}

	var user strings.Builder
	user.WriteString("## Ticket state\n")
	stateJSON, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal redacted state: %w", err)
	}
	user.Write(stateJSON)
	user.WriteString("\n\n## Conversation history (oldest first)\n")
	if len(history) == 0 {
		user.WriteString("(no prior messages)\n")
	}
	for _, msg := range history {
		role := roster.Lookup(msg.Sender)
		fmt.Fprintf(&user, "[%s | %s | %s]\n%s\n\n",
			msg.At.UTC().Format("2006-01-02 15:04"), role, msg.Direction, strings.TrimSpace(msg.Body))
	}

	if in.Inbound != nil {
		user.WriteString("## New inbound message\n")
		fmt.Fprintf(&user, "From: %s\nSubject: %s\n\n%s\n",
			canonicalAddress(in.Inbound.From), in.Inbound.Subject, strings.TrimSpace(in.Inbound.BodyPlain))
	}

	if override, ok := b.languageOverride(in, roster); ok {
		fmt.Fprintf(&user, "\n## Language requirement\nRespond to the customer in %q regardless of the message language.\n", override)
	}

	out.UserPrompt = user.String()
	return out, nil
}

// languageOverride applies the configured participant → language map.
func (b *Builder) languageOverride(in Input, roster Roster) (string, bool) {
	if len(b.cfg.LanguageOverrides) == 0 {
		return "", false
	}
	// Deterministic iteration: check the inbound sender first, then roster
	// participants in order.
	var candidates []string
	if in.Inbound != nil {
		candidates = append(candidates, canonicalAddress(in.Inbound.From))
	}
	for _, p := range roster.Participants {
		if p.Role == RoleCustomer {
			candidates = append(candidates, p.Address)
		}
	}
	overrides := make(map[string]string, len(b.cfg.LanguageOverrides))
	for k, v := range b.cfg.LanguageOverrides {
		overrides[canonicalAddress(k)] = v
	}
	for _, c := range candidates {
		if lang, ok := overrides[c]; ok {
			return lang, true
		}
	}
	return "", false
}

// filterHistory drops ignored messages and orders the rest oldest-first.
func filterHistory(history []*ent.TicketMessage, ignored []string) []*ent.TicketMessage {
	skip := make(map[string]struct{}, len(ignored))
	for _, id := range ignored {
		skip[id] = struct{}{}
	}
	out := make([]*ent.TicketMessage, 0, len(history))
	for _, msg := range history {
		if _, ok := skip[msg.ID]; ok {
			continue
		}
		out = append(out, msg)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}
