// Package models contains the wire- and queue-level types shared between
// the mail source, the pipeline, and the operator API.
package models

import "time"

// Attachment is a reference to a stored attachment. Byte storage lives
// outside the core; the pipeline only moves references around.
type Attachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size,omitempty"`
}

// InboundEmail is one message pulled from the mail source. It is persisted
// verbatim as the IngestJob payload so a failed ingest can be replayed
// without refetching.
type InboundEmail struct {
	SourceMessageID string       `json:"source_message_id"`
	ThreadID        string       `json:"thread_id,omitempty"`
	From            string       `json:"from"`
	To              []string     `json:"to,omitempty"`
	Cc              []string     `json:"cc,omitempty"`
	Subject         string       `json:"subject"`
	ReceivedAt      time.Time    `json:"received_at"`
	BodyPlain       string       `json:"body_plain"`
	BodyHTML        string       `json:"body_html,omitempty"`
	Attachments     []Attachment `json:"attachments,omitempty"`
}
