// internal/billing/receipt.go
//
// A Receipt is the confirmed record of a successfully created bill. It pairs
// the server-assigned id and total with a snapshot of what the client
// submitted, so the follow-up actions (PDF, share message) can render without
// another fetch.

package billing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

const shareBaseURL = "https://wa.me/"

// Receipt holds the outcome of one successful submission. It is only
// meaningful together with the customer that was selected at submission time.
type Receipt struct {
	BillID      int64
	Customer    Customer
	Lines       []Line
	Total       decimal.Decimal // client-computed at submission time
	ServerTotal decimal.Decimal // reported by the backend
}

// ShareMessage renders the submitted items line by line, ending with the
// total. The currency symbol is configurable; the backend only deals in
// amounts.
func (r Receipt) ShareMessage(currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bill #%d for %s\n", r.BillID, r.Customer.Name)
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%s x%d @ %s%s = %s%s\n",
			line.Name, line.Quantity,
			currency, line.Price.StringFixed(2),
			currency, line.Subtotal().StringFixed(2),
		)
	}
	fmt.Fprintf(&b, "Total: %s%s", currency, r.ServerTotal.StringFixed(2))
	return b.String()
}

// ShareLink builds a prefilled WhatsApp link carrying ShareMessage. When the
// customer has a usable phone number the link targets it directly; otherwise
// it falls back to the generic share target.
func (r Receipt) ShareLink(currency string) string {
	target := shareBaseURL
	if digits := phoneDigits(r.Customer.Phone); digits != "" {
		target += digits
	}
	return target + "?text=" + url.QueryEscape(r.ShareMessage(currency))
}

func phoneDigits(phone string) string {
	var b strings.Builder
	for _, ch := range phone {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
