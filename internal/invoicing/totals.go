package invoicing

import (
	"math"

	"github.com/diewo77/invoice-lite/internal/models"
)

// ComputeTotals derives the money breakdown for a set of line items.
// It is pure and never fails: NaN, infinite and negative inputs count as
// zero, the discount is floored so the taxable amount can't go negative,
// and the grand total is always >= 0.
func ComputeTotals(items []models.LineItem, discount, taxPct float64) models.Totals {
	var subtotal float64
	for _, it := range items {
		if it.Blank() {
			continue
		}
		subtotal += nonNeg(it.Qty) * nonNeg(it.Rate)
	}
	disc := nonNeg(discount)
	taxable := subtotal - disc
	if taxable < 0 {
		taxable = 0
	}
	tax := taxable * nonNeg(taxPct) / 100
	return models.Totals{Subtotal: subtotal, Discount: disc, Tax: tax, Grand: taxable + tax}
}

// LineAmount is the qty*rate amount for a single row, with the same coercion
// rules as ComputeTotals. Shown next to each row in previews.
func LineAmount(it models.LineItem) float64 {
	return nonNeg(it.Qty) * nonNeg(it.Rate)
}

func nonNeg(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
