// Package format builds outbound message bodies deterministically:
// greeting, body, signature, disclaimer, and ticket references. It never
// invents facts: every line either comes from the draft, the configured
// whitelist, or the ticket itself.
package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/shipdesk/shipdesk/pkg/config"
)

// PolicyError is a refusal to produce an output because a policy
// precondition is not met (supplier leakage, empty signature whitelist).
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return "formatter policy block: " + e.Reason
}

// Formatter renders outbound bodies from configured content.
type Formatter struct {
	signatureLines []string
	disclaimers    map[string]string
}

// NewFormatter creates a formatter from configuration. Signature lines are
// the whitelist; nothing else may be used to sign outbound mail.
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		signatureLines: cfg.SignatureLines,
		disclaimers:    cfg.AIDisclaimer,
	}
}

// greetings per base language; the generic form is used when no addressee
// name is trusted.
var greetings = map[language.Tag]string{
	language.German:  "Guten Tag",
	language.English: "Hello",
	language.French:  "Bonjour",
	language.Spanish: "Hola",
	language.Italian: "Buongiorno",
	language.Dutch:   "Goedendag",
}

var closings = map[language.Tag]string{
	language.German:  "Mit freundlichen Grüßen",
	language.English: "Kind regards",
	language.French:  "Cordialement",
	language.Spanish: "Saludos cordiales",
	language.Italian: "Cordiali saluti",
	language.Dutch:   "Met vriendelijke groet",
}

// dateLayouts per base language.
var dateLayouts = map[language.Tag]string{
	language.German:  "02.01.2006",
	language.English: "Jan 2, 2006",
	language.French:  "02/01/2006",
	language.Spanish: "02/01/2006",
	language.Italian: "02/01/2006",
	language.Dutch:   "02-01-2006",
}

// Greeting returns the locale-appropriate salutation line.
func Greeting(lang language.Tag, name string) string {
	g, ok := greetings[lang]
	if !ok {
		g = greetings[language.English]
	}
	if name == "" {
		return g + ","
	}
	return g + " " + name + ","
}

// FormatDate renders a date per locale.
func FormatDate(lang language.Tag, t time.Time) string {
	layout, ok := dateLayouts[lang]
	if !ok {
		layout = dateLayouts[language.English]
	}
	return t.Format(layout)
}

// CustomerInput is everything the customer renderer needs.
type CustomerInput struct {
	Language     language.Tag
	CustomerName string
	Draft        string
	TicketNumber string
	OrderNumber  string
	// SupplierIdentifiers are names/addresses that must never reach the
	// customer; any occurrence in the draft is a policy block.
	SupplierIdentifiers []string
}

// Customer renders a customer-facing body: greeting, draft, references,
// signature, AI disclaimer.
func (f *Formatter) Customer(in CustomerInput) (string, error) {
	if strings.TrimSpace(in.Draft) == "" {
		return "", &PolicyError{Reason: "empty customer draft"}
	}
	if err := CheckNoSupplierLeak(in.Draft, in.SupplierIdentifiers); err != nil {
		return "", err
	}
	if len(f.signatureLines) == 0 {
		return "", &PolicyError{Reason: "no whitelisted signature configured"}
	}

	var b strings.Builder
	b.WriteString(Greeting(in.Language, in.CustomerName))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(in.Draft))
	b.WriteString("\n")

	if in.OrderNumber != "" {
		b.WriteString("\n")
		b.WriteString(referenceLine(in.Language, "order", in.OrderNumber))
	}
	if in.TicketNumber != "" {
		b.WriteString("\n")
		b.WriteString(referenceLine(in.Language, "ticket", in.TicketNumber))
	}

	b.WriteString("\n\n")
	b.WriteString(closing(in.Language))
	b.WriteString("\n")
	b.WriteString(strings.Join(f.signatureLines, "\n"))

	if d := f.disclaimer(in.Language); d != "" {
		b.WriteString("\n\n")
		b.WriteString(d)
	}

	return b.String(), nil
}

// SupplierInput is everything the supplier renderer needs.
type SupplierInput struct {
	Language            language.Tag
	Draft               string
	PurchaseOrderNumber string
	TicketNumber        string
}

// Supplier renders a supplier-facing body. Suppliers get PO and ticket
// references but never internal fields or customer personal data beyond
// what the draft carries.
func (f *Formatter) Supplier(in SupplierInput) (string, error) {
	if strings.TrimSpace(in.Draft) == "" {
		return "", &PolicyError{Reason: "empty supplier draft"}
	}
	if len(f.signatureLines) == 0 {
		return "", &PolicyError{Reason: "no whitelisted signature configured"}
	}

	var b strings.Builder
	b.WriteString(Greeting(in.Language, ""))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(in.Draft))
	b.WriteString("\n")
	if in.PurchaseOrderNumber != "" {
		b.WriteString("\n")
		b.WriteString(referenceLine(in.Language, "po", in.PurchaseOrderNumber))
	}
	if in.TicketNumber != "" {
		b.WriteString("\n")
		b.WriteString(referenceLine(in.Language, "ticket", in.TicketNumber))
	}
	b.WriteString("\n\n")
	b.WriteString(closing(in.Language))
	b.WriteString("\n")
	b.WriteString(strings.Join(f.signatureLines, "\n"))
	return b.String(), nil
}

// InternalNote renders an internal note. No greeting, no signature; internal
// notes carry facts for operators, not correspondence.
func (f *Formatter) InternalNote(title string, lines []string) string {
	var b strings.Builder
	b.WriteString(title)
	for _, line := range lines {
		b.WriteString("\n- ")
		b.WriteString(line)
	}
	return b.String()
}

// CheckNoSupplierLeak rejects customer-facing content containing any
// supplier identifier (case-insensitive substring match).
func CheckNoSupplierLeak(body string, identifiers []string) error {
	lower := strings.ToLower(body)
	for _, ident := range identifiers {
		ident = strings.TrimSpace(ident)
		if ident == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(ident)) {
			return &PolicyError{Reason: fmt.Sprintf("customer draft names supplier %q", ident)}
		}
	}
	return nil
}

func (f *Formatter) disclaimer(lang language.Tag) string {
	base, _ := lang.Base()
	if d, ok := f.disclaimers[base.String()]; ok {
		return d
	}
	return f.disclaimers["en"]
}

func closing(lang language.Tag) string {
	if cl, ok := closings[lang]; ok {
		return cl
	}
	return closings[language.English]
}

var referenceLabels = map[language.Tag]map[string]string{
	language.German: {
		"order":  "Bestellnummer",
		"ticket": "Vorgangsnummer",
		"po":     "PO-Nummer",
	},
	language.English: {
		"order":  "Order number",
		"ticket": "Ticket number",
		"po":     "PO number",
	},
}

func referenceLine(lang language.Tag, kind, value string) string {
	labels, ok := referenceLabels[lang]
	if !ok {
		labels = referenceLabels[language.English]
	}
	label, ok := labels[kind]
	if !ok {
		label = referenceLabels[language.English][kind]
	}
	return label + ": " + value
}
