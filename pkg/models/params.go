package models

// PendingListParams filters the approval queue listing.
type PendingListParams struct {
	Status string
	Kind   string
	Ticket string
	Limit  int
}

// MessageEdits are the optional operator edits applied on approval.
// Nil pointers leave the stored value untouched.
type MessageEdits struct {
	Subject     *string      `json:"subject,omitempty"`
	Body        *string      `json:"body,omitempty"`
	To          *string      `json:"to,omitempty"`
	Cc          []string     `json:"cc,omitempty"`
	Bcc         []string     `json:"bcc,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}
