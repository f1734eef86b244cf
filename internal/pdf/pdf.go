// Package pdf renders a saved invoice as a printable A4 document.
package pdf

import (
	"bytes"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/diewo77/invoice-lite/internal/invoicing"
	"github.com/diewo77/invoice-lite/internal/models"
)

// Render produces the printable PDF for a persisted invoice.
func Render(inv models.Invoice, biz models.BusinessProfile) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	// Business header
	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 9, biz.Name)
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 10)
	if biz.Phone != "" {
		doc.Cell(0, 5, "Phone: "+biz.Phone)
		doc.Ln(5)
	}
	if biz.Address != "" {
		doc.MultiCell(0, 5, biz.Address, "", "L", false)
	}
	doc.Ln(6)

	// Invoice meta
	doc.SetFont("Helvetica", "B", 13)
	doc.Cell(0, 7, "Invoice "+inv.ID)
	doc.Ln(7)
	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 5, "Date: "+inv.Date)
	doc.Ln(5)
	if inv.DueDate != "" {
		doc.Cell(0, 5, "Due: "+inv.DueDate)
		doc.Ln(5)
	}
	doc.Cell(0, 5, "Status: "+inv.NormalizedStatus())
	doc.Ln(5)
	doc.Cell(0, 5, "Bill to: "+inv.ClientName)
	doc.Ln(5)
	if inv.ClientPhone != "" {
		doc.Cell(0, 5, "Phone: "+inv.ClientPhone)
		doc.Ln(5)
	}
	doc.Ln(4)

	// Items table
	colW := []float64{95.0, 20.0, 35.0, 40.0}
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(235, 235, 235)
	doc.CellFormat(colW[0], 7, "Item", "1", 0, "L", true, 0, "")
	doc.CellFormat(colW[1], 7, "Qty", "1", 0, "R", true, 0, "")
	doc.CellFormat(colW[2], 7, "Rate", "1", 0, "R", true, 0, "")
	doc.CellFormat(colW[3], 7, "Amount", "1", 1, "R", true, 0, "")
	doc.SetFont("Helvetica", "", 10)
	for _, it := range inv.Items {
		doc.CellFormat(colW[0], 6, it.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(colW[1], 6, trimFloat(it.Qty), "1", 0, "R", false, 0, "")
		doc.CellFormat(colW[2], 6, models.FormatMoney(inv.Currency, it.Rate), "1", 0, "R", false, 0, "")
		doc.CellFormat(colW[3], 6, models.FormatMoney(inv.Currency, invoicing.LineAmount(it)), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	// Totals block, right-aligned
	labelW, valueW := 150.0, 40.0
	totalLine := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 10)
		doc.CellFormat(labelW, 6, label, "", 0, "R", false, 0, "")
		doc.CellFormat(valueW, 6, value, "", 1, "R", false, 0, "")
	}
	t := inv.Totals
	totalLine("Subtotal", models.FormatMoney(inv.Currency, t.Subtotal), false)
	totalLine("Discount", models.FormatMoney(inv.Currency, t.Discount), false)
	totalLine("Tax", models.FormatMoney(inv.Currency, t.Tax), false)
	totalLine("Grand Total", models.FormatMoney(inv.Currency, t.Grand), true)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// trimFloat renders a quantity without trailing zeros (2 stays "2", 1.5
// stays "1.5").
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
