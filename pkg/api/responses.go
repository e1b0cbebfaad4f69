package api

import (
	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/pkg/database"
)

// HealthCheck is one component's health in the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Checks   map[string]HealthCheck `json:"checks"`
}

// PendingListResponse is returned by GET /api/v1/messages/pending.
type PendingListResponse struct {
	Messages []*ent.PendingMessage `json:"messages"`
	Count    int                   `json:"count"`
}

// PendingDetailResponse is returned by GET /api/v1/messages/pending/:id.
// The ticket context is redacted to what an approver needs.
type PendingDetailResponse struct {
	Message  *ent.PendingMessage `json:"message"`
	Ticket   *TicketContext      `json:"ticket,omitempty"`
	Decision *ent.AIDecision     `json:"decision,omitempty"`
}

// TicketContext is the redacted ticket summary shown with a pending draft.
type TicketContext struct {
	TicketNumber  string `json:"ticket_number"`
	Status        string `json:"status"`
	CustomerEmail string `json:"customer_email,omitempty"`
	OrderNumber   string `json:"order_number,omitempty"`
	Language      string `json:"language,omitempty"`
	Escalated     bool   `json:"escalated"`
}

// TicketListResponse is returned by GET /api/v1/tickets.
type TicketListResponse struct {
	Tickets []*ent.TicketState `json:"tickets"`
	Count   int                `json:"count"`
}

// DecisionListResponse is returned by GET /api/v1/ai-decisions.
type DecisionListResponse struct {
	Decisions []*ent.AIDecision `json:"decisions"`
	Count     int               `json:"count"`
}

// SupplierListResponse is returned by GET /api/v1/suppliers.
type SupplierListResponse struct {
	Suppliers []*ent.Supplier `json:"suppliers"`
	Count     int             `json:"count"`
}
