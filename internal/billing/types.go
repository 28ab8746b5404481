// internal/billing/types.go
//
// Shared read models for the bill composer. Customers and catalog items are
// snapshots fetched from the backend; the composer never mutates them locally.

package billing

import "github.com/shopspring/decimal"

// Customer is one entry from the customer directory.
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Item is one catalog entry with its stock on hand. The backend serializes
// price as a decimal string ("10.00"); shopspring handles both forms.
type Item struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}
