package prompt

import (
	"strings"

	"github.com/shipdesk/shipdesk/ent"
)

// RedactedState is the operator- and LLM-facing summary of a ticket.
// It enumerates only vetted facts; anything uncertain lands in
// RisksOrGaps instead of being guessed.
type RedactedState struct {
	TicketNumber        string        `json:"ticket_number"`
	OrderNumber         string        `json:"order_number,omitempty"`
	PurchaseOrderNumber string        `json:"purchase_order_number,omitempty"`
	Status              string        `json:"status"`
	Language            string        `json:"language,omitempty"`
	Participants        []Participant `json:"participants"`
	Resolution          string        `json:"resolution,omitempty"`
	NextETA             string        `json:"next_eta,omitempty"`
	Tracking            string        `json:"tracking,omitempty"`
	ReturnRequired      *bool         `json:"return_required,omitempty"`
	DisposalAllowed     *bool         `json:"disposal_allowed,omitempty"`
	LastCustomerMessage string        `json:"last_customer_message,omitempty"`
	LastSupplierMessage string        `json:"last_supplier_message,omitempty"`
	RisksOrGaps         []string      `json:"risks_or_gaps"`
}

// summaryLimit truncates last-message summaries.
const summaryLimit = 280

// buildRedactedState derives the redacted state from local ticket data.
func buildRedactedState(t *ent.TicketState, history []*ent.TicketMessage, roster Roster) RedactedState {
	st := RedactedState{
		TicketNumber: t.ID,
		Status:       string(t.Status),
		Language:     t.Language,
		Participants: roster.Participants,
	}
	if t.OrderNumber != nil {
		st.OrderNumber = *t.OrderNumber
	}
	if t.PurchaseOrderNumber != nil {
		st.PurchaseOrderNumber = *t.PurchaseOrderNumber
	}

	for i := len(history) - 1; i >= 0; i-- {
		msg := history[i]
		switch roster.Lookup(msg.Sender) {
		case RoleCustomer:
			if st.LastCustomerMessage == "" {
				st.LastCustomerMessage = truncate(msg.Body, summaryLimit)
			}
		case RoleSupplier:
			if st.LastSupplierMessage == "" {
				st.LastSupplierMessage = truncate(msg.Body, summaryLimit)
			}
		}
		if st.LastCustomerMessage != "" && st.LastSupplierMessage != "" {
			break
		}
	}

	if st.OrderNumber == "" && st.PurchaseOrderNumber == "" {
		st.RisksOrGaps = append(st.RisksOrGaps, "no order or purchase order reference on file")
	}
	if t.CustomerEmail == "" {
		st.RisksOrGaps = append(st.RisksOrGaps, "customer address unknown")
	}
	if t.Escalated {
		reason := ""
		if t.EscalationReason != nil {
			reason = ": " + *t.EscalationReason
		}
		st.RisksOrGaps = append(st.RisksOrGaps, "ticket is escalated"+reason)
	}
	for _, p := range roster.Participants {
		if p.Role == RoleUnknown {
			st.RisksOrGaps = append(st.RisksOrGaps, "unresolved participant "+p.Address)
		}
	}
	if st.RisksOrGaps == nil {
		st.RisksOrGaps = []string{}
	}
	return st
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
