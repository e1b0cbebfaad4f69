package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/shipdesk/shipdesk/pkg/config"
)

func testFormatter() *Formatter {
	return NewFormatter(&config.Config{
		SignatureLines: []string{"Shipdesk Support Team", "support@shipdesk.example"},
		AIDisclaimer: map[string]string{
			"en": "This reply was drafted with AI assistance.",
			"de": "Diese Antwort wurde mit KI-Unterstützung erstellt.",
		},
	})
}

func TestCustomerRendering(t *testing.T) {
	f := testFormatter()

	t.Run("german body carries greeting, references, signature, disclaimer", func(t *testing.T) {
		body, err := f.Customer(CustomerInput{
			Language:     language.German,
			CustomerName: "Frau Schmidt",
			Draft:        "Ihre Bestellung wurde erneut versendet.",
			TicketNumber: "T-1001",
			OrderNumber:  "44556677",
		})
		require.NoError(t, err)

		assert.Contains(t, body, "Guten Tag Frau Schmidt,")
		assert.Contains(t, body, "Ihre Bestellung wurde erneut versendet.")
		assert.Contains(t, body, "Bestellnummer: 44556677")
		assert.Contains(t, body, "Vorgangsnummer: T-1001")
		assert.Contains(t, body, "Mit freundlichen Grüßen")
		assert.Contains(t, body, "Shipdesk Support Team")
		assert.Contains(t, body, "Diese Antwort wurde mit KI-Unterstützung erstellt.")
	})

	t.Run("unknown locale falls back to english", func(t *testing.T) {
		body, err := f.Customer(CustomerInput{
			Language: language.Polish,
			Draft:    "Your order has been reshipped.",
		})
		require.NoError(t, err)
		assert.Contains(t, body, "Hello,")
		assert.Contains(t, body, "Kind regards")
		assert.Contains(t, body, "This reply was drafted with AI assistance.")
	})

	t.Run("deterministic", func(t *testing.T) {
		in := CustomerInput{Language: language.English, Draft: "Same draft.", TicketNumber: "T-1"}
		a, err := f.Customer(in)
		require.NoError(t, err)
		b, err := f.Customer(in)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestCustomerPolicyBlocks(t *testing.T) {
	f := testFormatter()

	t.Run("supplier identifier in draft", func(t *testing.T) {
		_, err := f.Customer(CustomerInput{
			Language:            language.English,
			Draft:               "We asked ACME Trading Ltd to reship your parcel.",
			SupplierIdentifiers: []string{"acme trading ltd"},
		})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, pe.Reason, "acme trading ltd")
	})

	t.Run("supplier email in draft", func(t *testing.T) {
		_, err := f.Customer(CustomerInput{
			Language:            language.English,
			Draft:               "Please contact warehouse@acme.example directly.",
			SupplierIdentifiers: []string{"warehouse@acme.example"},
		})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
	})

	t.Run("empty draft", func(t *testing.T) {
		_, err := f.Customer(CustomerInput{Language: language.English, Draft: "   "})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
	})

	t.Run("no whitelisted signature", func(t *testing.T) {
		bare := NewFormatter(&config.Config{})
		_, err := bare.Customer(CustomerInput{Language: language.English, Draft: "Hi."})
		var pe *PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Contains(t, pe.Reason, "signature")
	})
}

func TestSupplierRendering(t *testing.T) {
	f := testFormatter()

	body, err := f.Supplier(SupplierInput{
		Language:            language.English,
		Draft:               "Please confirm the reshipment ETA.",
		PurchaseOrderNumber: "PO-2024-0815",
		TicketNumber:        "T-1001",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hello,")
	assert.Contains(t, body, "PO number: PO-2024-0815")
	assert.Contains(t, body, "Ticket number: T-1001")
	assert.Contains(t, body, "Shipdesk Support Team")
	// Suppliers never get the customer AI disclaimer.
	assert.NotContains(t, body, "AI assistance")
}

func TestInternalNote(t *testing.T) {
	f := testFormatter()
	note := f.InternalNote("AI triage (shadow)", []string{"intent: delivery_delay", "confidence: 0.91"})
	assert.Equal(t, "AI triage (shadow)\n- intent: delivery_delay\n- confidence: 0.91", note)
}

func TestCheckNoSupplierLeak(t *testing.T) {
	assert.NoError(t, CheckNoSupplierLeak("We will update you soon.", []string{"acme"}))
	assert.Error(t, CheckNoSupplierLeak("ACME will ship it.", []string{"acme"}))
	assert.NoError(t, CheckNoSupplierLeak("anything", []string{"", "  "}))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "24.08.2026", FormatDate(language.German, d))
	assert.Equal(t, "Aug 24, 2026", FormatDate(language.English, d))
	assert.Equal(t, "Aug 24, 2026", FormatDate(language.Polish, d))
}
