package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipdesk/shipdesk/ent"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/models"
)

func testBuilder() *Builder {
	return NewBuilder(&config.Config{
		InternalAgents: []string{"ops@shipdesk.example"},
	})
}

func strPtr(s string) *string { return &s }

func testTicket() *ent.TicketState {
	return &ent.TicketState{
		ID:            "T-1001",
		TicketID:      "backend-42",
		Status:        "awaiting_supplier",
		CustomerEmail: "jane@customer.example",
		SupplierEmail: "warehouse@acme.example",
		OrderNumber:   strPtr("44556677"),
	}
}

func msg(id, sender, body string, at time.Time) *ent.TicketMessage {
	return &ent.TicketMessage{
		ID:        id,
		Direction: "inbound",
		Sender:    sender,
		Body:      body,
		At:        at,
	}
}

func TestBuildDeterminism(t *testing.T) {
	b := testBuilder()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	in := Input{
		Ticket: testTicket(),
		History: []*ent.TicketMessage{
			msg("m1", "jane@customer.example", "Where is my order 44556677?", base),
			msg("m2", "warehouse@acme.example", "Purchase order confirmed, reshipping.", base.Add(time.Hour)),
		},
		Inbound: &models.InboundEmail{
			From:      "jane@customer.example",
			Subject:   "Still waiting",
			BodyPlain: "Any news?",
		},
	}

	first, err := b.Build(in)
	require.NoError(t, err)
	second, err := b.Build(in)
	require.NoError(t, err)

	assert.Equal(t, first.SystemPrompt, second.SystemPrompt)
	assert.Equal(t, first.UserPrompt, second.UserPrompt)
	assert.Equal(t, first.Roster, second.Roster)
}

func TestBuildPromptContent(t *testing.T) {
	b := testBuilder()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	out, err := b.Build(Input{
		Ticket: testTicket(),
		History: []*ent.TicketMessage{
			// Deliberately newest first; Build must reorder oldest first.
			msg("m2", "warehouse@acme.example", "Reshipment booked.", base.Add(time.Hour)),
			msg("m1", "jane@customer.example", "My parcel never arrived.", base),
		},
		Inbound: &models.InboundEmail{
			From:      "Jane Doe <jane@customer.example>",
			Subject:   "Still waiting",
			BodyPlain: "Any news on my parcel?",
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out.SystemPrompt, "NO_DRAFT")
	assert.Contains(t, out.UserPrompt, "## Ticket state")
	assert.Contains(t, out.UserPrompt, "## New inbound message")
	assert.Contains(t, out.UserPrompt, "From: jane@customer.example")

	// History is rendered oldest first.
	older := "My parcel never arrived."
	newer := "Reshipment booked."
	assert.Less(t,
		indexOf(t, out.UserPrompt, older),
		indexOf(t, out.UserPrompt, newer))

	assert.Equal(t, RoleCustomer, out.Roster.Lookup("jane@customer.example"))
	assert.Equal(t, RoleSupplier, out.Roster.Lookup("warehouse@acme.example"))
	assert.Equal(t, []string{"warehouse@acme.example"}, out.Roster.ExternalSupplierIdentifiers())
}

func TestBuildIgnoredMessages(t *testing.T) {
	b := testBuilder()
	base := time.Now()
	out, err := b.Build(Input{
		Ticket: testTicket(),
		History: []*ent.TicketMessage{
			msg("keep", "jane@customer.example", "keep this message", base),
			msg("drop", "jane@customer.example", "drop this message", base.Add(time.Minute)),
		},
		IgnoredMessageIDs: []string{"drop"},
	})
	require.NoError(t, err)
	assert.Contains(t, out.UserPrompt, "keep this message")
	assert.NotContains(t, out.UserPrompt, "drop this message")
}

func TestBuildAmbiguousIdentity(t *testing.T) {
	b := testBuilder()
	_, err := b.Build(Input{
		Ticket: testTicket(),
		Inbound: &models.InboundEmail{
			From:      "stranger@nowhere.example",
			Subject:   "hi",
			BodyPlain: "who am I?",
		},
	})
	var ambiguous *AmbiguousIdentityError
	require.ErrorAs(t, err, &ambiguous)
	assert.Equal(t, "stranger@nowhere.example", ambiguous.Address)
}

func TestBuildLanguageOverride(t *testing.T) {
	b := NewBuilder(&config.Config{
		LanguageOverrides: map[string]string{"jane@customer.example": "de"},
	})
	out, err := b.Build(Input{
		Ticket: testTicket(),
		Inbound: &models.InboundEmail{
			From:      "jane@customer.example",
			Subject:   "hello",
			BodyPlain: "written in english",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out.UserPrompt, "## Language requirement")
	assert.Contains(t, out.UserPrompt, `"de"`)
}

func TestBuildRequiresTicket(t *testing.T) {
	_, err := testBuilder().Build(Input{})
	require.Error(t, err)
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "expected %q in prompt", needle)
	return idx
}
