package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysisResult(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		raw := []byte(`{
			"intent": "delivery_delay",
			"ticket_type_id": 7,
			"confidence": 0.88,
			"requires_escalation": false,
			"customer_response": "We checked with the carrier and your parcel is on its way.",
			"supplier_action": {"action": "request_eta", "message": "Please confirm the ETA for PO-1."},
			"summary": "Customer asks about a late delivery.",
			"state": {"next_eta": "2026-09-01"}
		}`)
		r, err := ParseAnalysisResult(raw)
		require.NoError(t, err)
		assert.Equal(t, "delivery_delay", r.Intent)
		require.NotNil(t, r.TicketTypeID)
		assert.Equal(t, 7, *r.TicketTypeID)
		assert.InDelta(t, 0.88, r.Confidence, 1e-9)
		assert.Equal(t, "request_eta", r.SupplierAction.Action)
		assert.Equal(t, "Please confirm the ETA for PO-1.", r.SupplierDraft())
	})

	t.Run("unknown fields are dropped", func(t *testing.T) {
		raw := []byte(`{"intent": "other", "confidence": 0.5, "customer_response": "NO_DRAFT — nothing to say", "made_up_field": 42}`)
		r, err := ParseAnalysisResult(raw)
		require.NoError(t, err)
		assert.Equal(t, "other", r.Intent)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseAnalysisResult([]byte(`{"intent": `))
		var se *SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "(root)", se.Field)
	})

	t.Run("missing intent", func(t *testing.T) {
		_, err := ParseAnalysisResult([]byte(`{"confidence": 0.5, "customer_response": "x"}`))
		var se *SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "intent", se.Field)
	})

	t.Run("confidence out of range", func(t *testing.T) {
		_, err := ParseAnalysisResult([]byte(`{"intent": "x", "confidence": 1.2, "customer_response": "x"}`))
		var se *SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "confidence", se.Field)
	})

	t.Run("empty customer_response", func(t *testing.T) {
		_, err := ParseAnalysisResult([]byte(`{"intent": "x", "confidence": 0.5, "customer_response": ""}`))
		var se *SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "customer_response", se.Field)
	})

	t.Run("supplier_action without action", func(t *testing.T) {
		_, err := ParseAnalysisResult([]byte(`{"intent": "x", "confidence": 0.5, "customer_response": "x", "supplier_action": {"message": "hi"}}`))
		var se *SchemaError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "supplier_action.action", se.Field)
	})
}

func TestNoDraftSentinel(t *testing.T) {
	assert.True(t, IsNoDraft(""))
	assert.True(t, IsNoDraft("NO_DRAFT — Customer requested human contact"))
	assert.True(t, IsNoDraft(NoDraft("identity unresolved")))
	assert.False(t, IsNoDraft("Dear customer, your parcel shipped."))
	assert.Equal(t, "NO_DRAFT — because", NoDraft("because"))
}

func TestSupplierDraft(t *testing.T) {
	r := &AnalysisResult{}
	assert.Empty(t, r.SupplierDraft())
	r.SupplierAction = &SupplierAction{Action: "request_eta", Message: "Please advise."}
	assert.Equal(t, "Please advise.", r.SupplierDraft())
}
