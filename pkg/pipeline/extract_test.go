package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRefs(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		body    string
		want    Refs
	}{
		{
			name:    "marketplace order number",
			subject: "Where is my package?",
			body:    "I ordered two weeks ago, order 123-4567890-1234567, still nothing.",
			want:    Refs{OrderNumber: "123-4567890-1234567"},
		},
		{
			name:    "prefixed order number",
			subject: "Order ORD-12345678 damaged",
			body:    "The box arrived crushed.",
			want:    Refs{OrderNumber: "12345678"},
		},
		{
			name:    "order keyword with hash",
			subject: "Problem with order #87654321",
			body:    "",
			want:    Refs{OrderNumber: "87654321"},
		},
		{
			name:    "german bestellnummer",
			subject: "Frage zu meiner Bestellung",
			body:    "Meine Bestellnummer: 44556677. Wann kommt das Paket?",
			want:    Refs{OrderNumber: "44556677"},
		},
		{
			name:    "ticket number",
			subject: "Re: Ticket #T-20240101",
			body:    "any update?",
			want:    Refs{TicketNumber: "T-20240101"},
		},
		{
			name:    "german vorgang",
			subject: "Vorgang Nr. 12345678",
			body:    "",
			want:    Refs{TicketNumber: "12345678"},
		},
		{
			name:    "purchase order",
			subject: "PO-2024-0815 shipment delay",
			body:    "Dear supplier, regarding PO PO-2024-0815 please confirm the ETA.",
			want:    Refs{PurchaseOrderNumber: "PO-2024-0815"},
		},
		{
			name:    "ticket and order together",
			subject: "Ticket 55001122",
			body:    "It concerns order number 99887766.",
			want:    Refs{TicketNumber: "55001122", OrderNumber: "99887766"},
		},
		{
			name:    "subject beats body",
			subject: "order #11112222",
			body:    "previously this was order #33334444",
			want:    Refs{OrderNumber: "11112222"},
		},
		{
			name:    "nothing extractable",
			subject: "Hello",
			body:    "I have a question about your return policy.",
			want:    Refs{},
		},
		{
			name:    "short digit runs ignored",
			subject: "order 123",
			body:    "see invoice 45",
			want:    Refs{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractRefs(tt.subject, tt.body)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRefsEmpty(t *testing.T) {
	assert.True(t, Refs{}.Empty())
	assert.False(t, Refs{OrderNumber: "12345678"}.Empty())
	assert.False(t, Refs{TicketNumber: "T-1234"}.Empty())
	assert.False(t, Refs{PurchaseOrderNumber: "PO-1"}.Empty())
}
