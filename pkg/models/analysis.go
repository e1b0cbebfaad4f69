package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NoDraftPrefix marks a draft slot the model (or a policy block) declined to
// fill. The text after the prefix is the reason shown to the operator.
const NoDraftPrefix = "NO_DRAFT"

// NoDraft builds a NO_DRAFT sentinel with a reason.
func NoDraft(reason string) string {
	return NoDraftPrefix + " — " + reason
}

// IsNoDraft reports whether a draft slot carries the NO_DRAFT sentinel.
func IsNoDraft(draft string) bool {
	return draft == "" || strings.HasPrefix(draft, NoDraftPrefix)
}

// SupplierAction is the supplier-side instruction of an analysis.
type SupplierAction struct {
	Action  string `json:"action"`
	Message string `json:"message"`
}

// AnalysisResult is the schema-validated LLM output consumed by the
// dispatcher. Unknown fields are dropped at the boundary; missing required
// fields are a permanent schema error.
type AnalysisResult struct {
	Intent             string          `json:"intent"`
	TicketTypeID       *int            `json:"ticket_type_id"`
	Confidence         float64         `json:"confidence"`
	RequiresEscalation bool            `json:"requires_escalation"`
	CustomerResponse   string          `json:"customer_response"`
	SupplierAction     *SupplierAction `json:"supplier_action"`
	Summary            string          `json:"summary"`
	State              json.RawMessage `json:"state"`
}

// SchemaError describes an LLM payload that failed schema validation.
// It is a permanent error: the payload is recorded and never retried.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("analysis payload rejected: field %q %s", e.Field, e.Reason)
}

// ParseAnalysisResult decodes and validates a raw LLM payload against the
// analysis schema.
func ParseAnalysisResult(raw []byte) (*AnalysisResult, error) {
	var r AnalysisResult
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, &SchemaError{Field: "(root)", Reason: "is not valid JSON: " + err.Error()}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the required fields and value ranges of the schema.
func (r *AnalysisResult) Validate() error {
	if r.Intent == "" {
		return &SchemaError{Field: "intent", Reason: "is required"}
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return &SchemaError{Field: "confidence", Reason: "must be in [0,1]"}
	}
	if r.CustomerResponse == "" {
		return &SchemaError{Field: "customer_response", Reason: "is required (use the NO_DRAFT sentinel to decline)"}
	}
	if r.SupplierAction != nil && r.SupplierAction.Action == "" {
		return &SchemaError{Field: "supplier_action.action", Reason: "is required when supplier_action is present"}
	}
	return nil
}

// SupplierDraft returns the supplier-side draft body, or the empty string
// when the analysis produced none.
func (r *AnalysisResult) SupplierDraft() string {
	if r.SupplierAction == nil {
		return ""
	}
	return r.SupplierAction.Message
}
