package config

// Phase is the operator-selected deployment phase governing how far the
// dispatcher may go with AI-generated drafts.
type Phase string

const (
	// PhaseShadow never sends external mail; drafts are queued and an
	// internal note records the recommendation.
	PhaseShadow Phase = "shadow"
	// PhaseAssisted queues every draft for human approval.
	PhaseAssisted Phase = "assisted"
	// PhaseAutonomous sends directly when confidence clears the threshold
	// and no escalation is required; otherwise behaves as assisted.
	PhaseAutonomous Phase = "autonomous"
)

// IsValid checks if the phase is a recognized value.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseShadow, PhaseAssisted, PhaseAutonomous:
		return true
	default:
		return false
	}
}

// Feedback values an operator may attach to an AI decision.
const (
	FeedbackCorrect   = "correct"
	FeedbackIncorrect = "incorrect"
	FeedbackPartial   = "partial"
)

// ValidFeedback checks an operator feedback value.
func ValidFeedback(v string) bool {
	return v == FeedbackCorrect || v == FeedbackIncorrect || v == FeedbackPartial
}
