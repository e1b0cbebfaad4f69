package api

import (
	"github.com/shipdesk/shipdesk/pkg/models"
)

// ApproveRequest is the body of POST /api/v1/messages/pending/:id/approve.
type ApproveRequest struct {
	Edits *models.MessageEdits `json:"edits,omitempty"`
}

// RejectRequest is the body of POST /api/v1/messages/pending/:id/reject.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// AnalyzeRequest is the body of POST /api/v1/tickets/:ticket_number/analyze.
type AnalyzeRequest struct {
	IgnoredMessageIDs []string `json:"ignored_message_ids,omitempty"`
	PreviewOnly       bool     `json:"preview_only,omitempty"`
}

// FeedbackRequest is the body of POST /api/v1/ai-decisions/:id/feedback.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
	Notes    string `json:"notes,omitempty"`
}
