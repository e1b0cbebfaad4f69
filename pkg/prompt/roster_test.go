package prompt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shipdesk/shipdesk/ent"
)

func TestResolveRosterPrecedence(t *testing.T) {
	ticket := &ent.TicketState{
		ID:            "T-1",
		CustomerEmail: "jane@customer.example",
		SupplierEmail: "warehouse@acme.example",
	}
	at := time.Now()
	history := []*ent.TicketMessage{
		{ID: "m1", Direction: "inbound", Role: "customer", Sender: "jane@customer.example", Body: "hi", At: at, UpstreamMessageID: "up-1"},
		{ID: "m2", Direction: "internal", Role: "agent", Sender: "ops@shipdesk.example", Body: "note", At: at, UpstreamMessageID: "up-2"},
		{ID: "m3", Direction: "inbound", Role: "supplier", Sender: "returns@acme.example", Body: "update", At: at, UpstreamMessageID: "up-3"},
	}

	roster := resolveRoster([]string{"ops@shipdesk.example"}, ticket, history, nil)

	// Config beats history metadata for the agent address.
	assert.Equal(t, RoleInternal, roster.Lookup("ops@shipdesk.example"))
	assert.Equal(t, RoleCustomer, roster.Lookup("jane@customer.example"))
	assert.Equal(t, RoleSupplier, roster.Lookup("warehouse@acme.example"))
	// Second supplier address resolved from history role metadata.
	assert.Equal(t, RoleSupplier, roster.Lookup("returns@acme.example"))
	assert.ElementsMatch(t,
		[]string{"warehouse@acme.example", "returns@acme.example"},
		roster.ExternalSupplierIdentifiers())
}

func TestResolveRosterIgnoresLocalRoleDefaults(t *testing.T) {
	// A locally ingested message carries the schema default role; that must
	// not promote an unknown sender to customer.
	ticket := &ent.TicketState{ID: "T-3", CustomerEmail: "jane@customer.example"}
	history := []*ent.TicketMessage{
		{ID: "m1", Direction: "inbound", Role: "customer", Sender: "stranger@nowhere.example",
			Body: "Hello, any update?", At: time.Now(), SourceMessageID: "gm-1"},
	}
	roster := resolveRoster(nil, ticket, history, nil)
	assert.Equal(t, RoleUnknown, roster.Lookup("stranger@nowhere.example"))
}

func TestResolveRosterSalutation(t *testing.T) {
	ticket := &ent.TicketState{ID: "T-2"}
	history := []*ent.TicketMessage{
		{ID: "m1", Direction: "outbound", Sender: "unknown@somewhere.example",
			Body: "Dear supplier,\nplease confirm purchase order PO-1.", At: time.Now()},
	}
	roster := resolveRoster(nil, ticket, history, nil)
	assert.Equal(t, RoleSupplier, roster.Lookup("unknown@somewhere.example"))
}

func TestResolveRosterDirectory(t *testing.T) {
	ticket := &ent.TicketState{
		ID:            "T-4",
		CustomerEmail: "jane@customer.example",
		SupplierEmail: "warehouse@acme.example",
	}
	history := []*ent.TicketMessage{
		{ID: "m1", Direction: "inbound", Sender: "returns@acme.example",
			Body: "The unit is back in stock.", At: time.Now(), SourceMessageID: "gm-7"},
	}
	directory := []*ent.Supplier{{
		Name:         "Acme Fulfillment GmbH",
		DefaultEmail: "warehouse@acme.example",
		Contacts:     map[string]string{"returns": "returns@acme.example"},
	}}

	roster := resolveRoster(nil, ticket, history, directory)

	// Contact aliases from the directory resolve to the supplier role even
	// though the ticket only carries the default address.
	assert.Equal(t, RoleSupplier, roster.Lookup("returns@acme.example"))
	// The registered company name joins the leak-check identifiers.
	assert.Contains(t, roster.ExternalSupplierIdentifiers(), "Acme Fulfillment GmbH")
	assert.Contains(t, roster.ExternalSupplierIdentifiers(), "returns@acme.example")
}

func TestRosterLookupCanonicalizes(t *testing.T) {
	roster := Roster{Participants: []Participant{
		{Address: "jane@customer.example", Role: RoleCustomer},
	}}
	assert.Equal(t, RoleCustomer, roster.Lookup("Jane Doe <JANE@customer.example>"))
	assert.Equal(t, RoleUnknown, roster.Lookup("other@customer.example"))
}

func TestCanonicalAddress(t *testing.T) {
	assert.Equal(t, "jane@x.example", canonicalAddress("  Jane <jane@x.example> "))
	assert.Equal(t, "jane@x.example", canonicalAddress("JANE@X.EXAMPLE"))
	assert.Equal(t, "", canonicalAddress(""))
}
