package prompt

import (
	"fmt"
	"strings"

	"github.com/shipdesk/shipdesk/ent"
)

// Role classifies a ticket participant.
type Role string

// Participant roles.
const (
	RoleInternal Role = "internal"
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
	RoleUnknown  Role = "unknown"
)

// Participant is one resolved identity in the roster.
type Participant struct {
	Address string `json:"address"`
	Role    Role   `json:"role"`
	// Source records which rule resolved the role: config, ticket,
	// directory, history, or salutation.
	Source string `json:"source"`
}

// Roster is the canonicalized identity set for one ticket. Internal agents
// are never greeted externally; ambiguity on the active sender is a policy
// block, never a guess.
type Roster struct {
	Participants []Participant `json:"participants"`
	// SupplierNames are company names from the supplier directory. They
	// never appear in prompts; the formatter uses them for leak checking.
	SupplierNames []string `json:"-"`
}

// AmbiguousIdentityError is raised when the active sender cannot be
// resolved by any rule. It is a policy block: the pipeline records a
// NO_DRAFT decision and asks the operator to clarify.
type AmbiguousIdentityError struct {
	Address string
}

func (e *AmbiguousIdentityError) Error() string {
	return fmt.Sprintf("cannot resolve role of participant %q", e.Address)
}

// Lookup returns the resolved role for an address.
func (r *Roster) Lookup(address string) Role {
	address = canonicalAddress(address)
	for _, p := range r.Participants {
		if p.Address == address {
			return p.Role
		}
	}
	return RoleUnknown
}

// ExternalSupplierIdentifiers lists supplier addresses and directory names
// for leak checking of customer drafts.
func (r *Roster) ExternalSupplierIdentifiers() []string {
	var out []string
	for _, p := range r.Participants {
		if p.Role == RoleSupplier {
			out = append(out, p.Address)
		}
	}
	return append(out, r.SupplierNames...)
}

// resolveRoster builds the roster for a ticket. Resolution order per
// address: (1) configured internal agents, exact match; (2) ticket state
// fields; (3) the supplier directory; (4) history role metadata;
// (5) salutation heuristics as a last resort.
func resolveRoster(internalAgents []string, t *ent.TicketState, history []*ent.TicketMessage, directory []*ent.Supplier) Roster {
	internal := make(map[string]struct{}, len(internalAgents))
	for _, a := range internalAgents {
		internal[canonicalAddress(a)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var roster Roster

	directoryAddrs := make(map[string]struct{})
	for _, s := range directory {
		if ca := canonicalAddress(s.DefaultEmail); ca != "" {
			directoryAddrs[ca] = struct{}{}
		}
		for _, contact := range s.Contacts {
			if ca := canonicalAddress(contact); ca != "" {
				directoryAddrs[ca] = struct{}{}
			}
		}
		if s.Name != "" {
			roster.SupplierNames = append(roster.SupplierNames, s.Name)
		}
	}

	add := func(address string, role Role, source string) {
		address = canonicalAddress(address)
		if address == "" {
			return
		}
		if _, ok := seen[address]; ok {
			return
		}
		seen[address] = struct{}{}
		roster.Participants = append(roster.Participants, Participant{Address: address, Role: role, Source: source})
	}

	resolve := func(address string) (Role, string) {
		ca := canonicalAddress(address)
		if _, ok := internal[ca]; ok {
			return RoleInternal, "config"
		}
		if ca != "" && ca == canonicalAddress(t.CustomerEmail) {
			return RoleCustomer, "ticket"
		}
		if ca != "" && ca == canonicalAddress(t.SupplierEmail) {
			return RoleSupplier, "ticket"
		}
		if _, ok := directoryAddrs[ca]; ok {
			return RoleSupplier, "directory"
		}
		return RoleUnknown, ""
	}

	// Ticket state fields first: they are operator-curated.
	if t.CustomerEmail != "" {
		add(t.CustomerEmail, RoleCustomer, "ticket")
	}
	if t.SupplierEmail != "" {
		add(t.SupplierEmail, RoleSupplier, "ticket")
	}

	for _, msg := range history {
		for _, address := range []string{msg.Sender, msg.Recipient} {
			if address == "" {
				continue
			}
			if role, source := resolve(address); role != RoleUnknown {
				add(address, role, source)
				continue
			}
			// History role metadata, trusted only on rows mirrored from the
			// backend. Locally ingested rows carry the schema default role,
			// which says nothing about the sender.
			if msg.UpstreamMessageID == "" {
				if role := salutationRole(msg.Body); role != RoleUnknown {
					add(address, role, "salutation")
					continue
				}
				add(address, RoleUnknown, "")
				continue
			}
			switch msg.Role {
			case "customer":
				if address == msg.Sender && msg.Direction == "inbound" {
					add(address, RoleCustomer, "history")
					continue
				}
			case "supplier":
				add(address, RoleSupplier, "history")
				continue
			case "agent", "system":
				add(address, RoleInternal, "history")
				continue
			}
			// Salutation heuristic, last resort: a body opening with a
			// trade greeting towards a PO suggests a supplier thread.
			if role := salutationRole(msg.Body); role != RoleUnknown {
				add(address, role, "salutation")
				continue
			}
			add(address, RoleUnknown, "")
		}
	}

	return roster
}

// salutationRole guesses a role from the opening line of a message.
// Deliberately weak: only unambiguous trade phrasing counts.
func salutationRole(body string) Role {
	firstLine := body
	if idx := strings.IndexByte(body, '\n'); idx > 0 {
		firstLine = body[:idx]
	}
	firstLine = strings.ToLower(strings.TrimSpace(firstLine))

	switch {
	case strings.HasPrefix(firstLine, "dear supplier"),
		strings.HasPrefix(firstLine, "dear vendor"),
		strings.Contains(firstLine, "purchase order"):
		return RoleSupplier
	case strings.HasPrefix(firstLine, "dear customer"),
		strings.HasPrefix(firstLine, "sehr geehrte kundin"),
		strings.HasPrefix(firstLine, "sehr geehrter kunde"):
		return RoleCustomer
	default:
		return RoleUnknown
	}
}

func canonicalAddress(address string) string {
	address = strings.TrimSpace(strings.ToLower(address))
	// Strip display names: "Jane Doe <jane@example.com>" -> jane@example.com
	if start := strings.LastIndexByte(address, '<'); start >= 0 {
		if end := strings.LastIndexByte(address, '>'); end > start {
			address = address[start+1 : end]
		}
	}
	return address
}
