package models

import "fmt"

// Invoice statuses. Records saved without a status count as unpaid.
const (
	StatusUnpaid = "unpaid"
	StatusPaid   = "paid"
)

// LineItem is one row of an invoice. Quantity and rate are never negative in
// persisted data; the totals calculator coerces anything invalid to zero.
type LineItem struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Rate float64 `json:"rate"`
}

// Blank reports whether the row is an untouched editor row: no name, zero
// quantity, zero rate. Blank rows are excluded from totals and persistence.
func (it LineItem) Blank() bool {
	return it.Name == "" && it.Qty == 0 && it.Rate == 0
}

// Totals is the derived money breakdown of an invoice. It is recomputed from
// the line items on every change, never mutated in place.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"disc"`
	Tax      float64 `json:"tax"`
	Grand    float64 `json:"grand"`
}

// Invoice is a persisted invoice record. Dates are YYYY-MM-DD strings;
// CreatedAt/UpdatedAt are unix milliseconds. ID is immutable once assigned.
type Invoice struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	DueDate     string     `json:"dueDate,omitempty"`
	ClientName  string     `json:"clientName"`
	ClientPhone string     `json:"clientPhone,omitempty"`
	Items       []LineItem `json:"items"`
	Discount    float64    `json:"discount"`
	TaxRate     float64    `json:"tax"`
	Totals      Totals     `json:"totals"`
	Currency    string     `json:"currency"`
	Status      string     `json:"status"`
	CreatedAt   int64      `json:"createdAt"`
	UpdatedAt   int64      `json:"updatedAt"`
}

// NormalizedStatus returns StatusUnpaid for records saved without a status.
func (inv Invoice) NormalizedStatus() string {
	if inv.Status == "" {
		return StatusUnpaid
	}
	return inv.Status
}

// FormatMoney renders an amount as "<currency> <amount>" with two decimals,
// the format used in lists, share messages and the PDF.
func FormatMoney(currency string, amount float64) string {
	return fmt.Sprintf("%s %.2f", currency, amount)
}
