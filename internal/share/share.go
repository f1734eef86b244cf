// Package share builds the plain-text summary of a saved invoice and the
// WhatsApp deep link that carries it. Both work on persisted invoices only;
// an uncommitted draft has no id to reference.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/diewo77/invoice-lite/internal/models"
)

const signOff = "Sent via Invoice Lite"

// Message renders the shareable text summary of an invoice.
func Message(inv models.Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Invoice %s\n", inv.ID)
	fmt.Fprintf(&b, "Client: %s\n", inv.ClientName)
	fmt.Fprintf(&b, "Total: %s\n", models.FormatMoney(inv.Currency, inv.Totals.Grand))
	fmt.Fprintf(&b, "Date: %s", inv.Date)
	if inv.DueDate != "" {
		fmt.Fprintf(&b, " | Due: %s", inv.DueDate)
	}
	b.WriteString("\n\n")
	b.WriteString(signOff)
	return b.String()
}

// WhatsAppURL returns a wa.me link carrying msg. When the invoice has a
// client phone the link opens a direct chat (non-digits stripped); otherwise
// it opens the share chooser.
func WhatsAppURL(inv models.Invoice, msg string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	phone := digitsOnly(inv.ClientPhone)
	if phone != "" {
		return "https://wa.me/" + phone + "?text=" + encoded
	}
	return "https://wa.me/?text=" + encoded
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
