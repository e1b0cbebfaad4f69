// Package ticket is the client for the external ticketing backend.
// All customer-, supplier-, and internal-facing messages go through it;
// the backend is the source of truth for sent mail.
package ticket

import (
	"time"

	"github.com/shipdesk/shipdesk/pkg/models"
)

// Header is the upsertable part of a ticket.
type Header struct {
	TicketID            string `json:"ticket_id,omitempty"`
	TicketNumber        string `json:"ticket_number,omitempty"`
	Subject             string `json:"subject,omitempty"`
	CustomerEmail       string `json:"customer_email,omitempty"`
	OrderNumber         string `json:"order_number,omitempty"`
	PurchaseOrderNumber string `json:"purchase_order_number,omitempty"`
	SupplierEmail       string `json:"supplier_email,omitempty"`
	CustomStatusID      *int   `json:"custom_status_id,omitempty"`
	Language            string `json:"language,omitempty"`
}

// HistoryMessage is one message of the upstream ticket history. Role
// metadata, when the backend provides it, feeds identity resolution.
type HistoryMessage struct {
	MessageID string    `json:"message_id"`
	Direction string    `json:"direction"` // inbound, outbound, internal
	Role      string    `json:"role,omitempty"`
	Sender    string    `json:"sender,omitempty"`
	Recipient string    `json:"recipient,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Body      string    `json:"body"`
	At        time.Time `json:"at"`
}

// View is a ticket header plus its history as returned by lookups.
type View struct {
	Header  Header           `json:"header"`
	History []HistoryMessage `json:"history"`
}

// OutboundMessage is the payload for the send operations.
type OutboundMessage struct {
	To          string              `json:"to,omitempty"`
	Cc          []string            `json:"cc,omitempty"`
	Bcc         []string            `json:"bcc,omitempty"`
	Subject     string              `json:"subject,omitempty"`
	Body        string              `json:"body"`
	Attachments []models.Attachment `json:"attachments,omitempty"`
}

// tokenResponse is the backend's auth response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// sendResponse carries the backend-assigned message id. The id is opaque;
// nothing may assume it is numeric or ordered.
type sendResponse struct {
	MessageID string `json:"message_id"`
}

// upsertResponse carries the backend-assigned ticket id.
type upsertResponse struct {
	TicketID string `json:"ticket_id"`
}
