package pipeline

import (
	"regexp"
	"strings"
)

// Refs are the correlation hints extracted from an inbound message.
type Refs struct {
	TicketNumber        string
	OrderNumber         string
	PurchaseOrderNumber string
}

// Order numbers appear in several shapes depending on the storefront:
// marketplace style (123-4567890-1234567), prefixed (ORD-12345678 / #12345678)
// and bare long digits near an "order" keyword.
var (
	reMarketplaceOrder = regexp.MustCompile(`\b(\d{3}-\d{7}-\d{7})\b`)
	rePrefixedOrder    = regexp.MustCompile(`(?i)\b(?:ORD[-_ ]?|order\s*(?:no\.?|number|nr\.?|#)?\s*[:#]?\s*)(\d{6,12})\b`)
	reBestellung       = regexp.MustCompile(`(?i)\bbestell(?:ung|nummer|nr\.?)\s*[:#]?\s*(\d{6,12})\b`)

	reTicketNumber = regexp.MustCompile(`(?i)\b(?:ticket|vorgang|case)\s*(?:no\.?|number|nr\.?|#)?\s*[:#]?\s*([A-Z]{0,4}-?\d{4,10})\b`)
	rePONumber     = regexp.MustCompile(`(?i)\b(?:PO|purchase\s+order)\s*(?:no\.?|number|nr\.?|#)?\s*[:#]?\s*([A-Z0-9][A-Z0-9-]{3,19})\b`)
)

// ExtractRefs scans subject and body for ticket, order, and purchase-order
// references. First match of each kind wins; subject beats body.
func ExtractRefs(subject, body string) Refs {
	text := subject + "\n" + body
	refs := Refs{}

	if m := reTicketNumber.FindStringSubmatch(text); m != nil {
		refs.TicketNumber = strings.ToUpper(m[1])
	}
	if m := reMarketplaceOrder.FindStringSubmatch(text); m != nil {
		refs.OrderNumber = m[1]
	} else if m := rePrefixedOrder.FindStringSubmatch(text); m != nil {
		refs.OrderNumber = m[1]
	} else if m := reBestellung.FindStringSubmatch(text); m != nil {
		refs.OrderNumber = m[1]
	}
	if m := rePONumber.FindStringSubmatch(text); m != nil {
		refs.PurchaseOrderNumber = strings.ToUpper(m[1])
	}

	return refs
}

// Empty reports whether no reference was found at all.
func (r Refs) Empty() bool {
	return r.TicketNumber == "" && r.OrderNumber == "" && r.PurchaseOrderNumber == ""
}
