// internal/api/types.go
//
// Wire types for the IBMS backend. Money travels as decimal strings; the
// backend coerces them on its side.

package api

import (
	"github.com/shopspring/decimal"

	"billdesk/internal/billing"
)

// RegisterCustomerRequest is the POST /customers/add/ body.
type RegisterCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BillItem is one submitted line of POST /bill/create/.
type BillItem struct {
	InventoryID int64           `json:"inventory_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// CreateBillRequest is the POST /bill/create/ body.
type CreateBillRequest struct {
	CustomerID int64      `json:"customer_id"`
	Items      []BillItem `json:"items"`
}

// CreateBillResponse is the successful POST /bill/create/ reply.
type CreateBillResponse struct {
	BillID int64           `json:"bill_id"`
	Total  decimal.Decimal `json:"total"`
}

// BillSummary is one entry of a customer's purchase history. Date is kept as
// the backend's raw timestamp string.
type BillSummary struct {
	ID    int64           `json:"id"`
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// BillDetails is the GET /bill/{id}/details/ reply.
type BillDetails struct {
	ID       int64            `json:"id"`
	Date     string           `json:"date"`
	Total    decimal.Decimal  `json:"total"`
	Customer billing.Customer `json:"customer"`
	Items    []BillDetailItem `json:"items"`
}

// BillDetailItem is one line of a persisted bill.
type BillDetailItem struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}
