package invoicing

import (
	"strings"
	"time"

	"github.com/diewo77/invoice-lite/internal/models"
)

// Committer persists a validated draft. Implemented by store.Store.
type Committer interface {
	Upsert(draft models.Invoice) (models.Invoice, error)
}

// Session is the transient working state for one invoice being composed.
// It always keeps at least one visible row so the editor never shows an
// empty item table; blank rows are dropped again at commit time.
// Abandoning a session is free: the store is only touched by Commit.
type Session struct {
	InvoiceID   string // empty until the first successful commit
	Date        string
	DueDate     string
	ClientName  string
	ClientPhone string
	Items       []models.LineItem
	Discount    float64
	TaxRate     float64
}

// NewSession starts a fresh draft: today's date, empty client fields,
// zero discount and tax, one blank row.
func NewSession() *Session {
	return &Session{
		Date:  time.Now().Format("2006-01-02"),
		Items: []models.LineItem{{}},
	}
}

// SessionFor starts a draft pre-filled from an existing invoice.
func SessionFor(inv models.Invoice) *Session {
	s := &Session{
		InvoiceID:   inv.ID,
		Date:        inv.Date,
		DueDate:     inv.DueDate,
		ClientName:  inv.ClientName,
		ClientPhone: inv.ClientPhone,
		Items:       append([]models.LineItem(nil), inv.Items...),
		Discount:    inv.Discount,
		TaxRate:     inv.TaxRate,
	}
	if s.Date == "" {
		s.Date = time.Now().Format("2006-01-02")
	}
	if len(s.Items) == 0 {
		s.Items = []models.LineItem{{}}
	}
	return s
}

// AddRow appends a blank row.
func (s *Session) AddRow() {
	s.Items = append(s.Items, models.LineItem{})
}

// RemoveRow deletes the row at i. Removing the last remaining row reseeds a
// blank one; out-of-range indexes are ignored.
func (s *Session) RemoveRow(i int) {
	if i < 0 || i >= len(s.Items) {
		return
	}
	s.Items = append(s.Items[:i], s.Items[i+1:]...)
	if len(s.Items) == 0 {
		s.Items = []models.LineItem{{}}
	}
}

// SetRow replaces the row at i in place. Out-of-range indexes are ignored.
func (s *Session) SetRow(i int, it models.LineItem) {
	if i < 0 || i >= len(s.Items) {
		return
	}
	s.Items[i] = it
}

// Totals recomputes the preview totals from the current draft state. Call it
// after every mutation; blank rows contribute nothing.
func (s *Session) Totals() models.Totals {
	return ComputeTotals(s.Items, s.Discount, s.TaxRate)
}

// Draft assembles the invoice payload for the store: blank rows filtered,
// client fields trimmed. Totals, id, currency, status and timestamps are the
// store's job.
func (s *Session) Draft() models.Invoice {
	items := make([]models.LineItem, 0, len(s.Items))
	for _, it := range s.Items {
		if it.Blank() {
			continue
		}
		items = append(items, it)
	}
	return models.Invoice{
		ID:          s.InvoiceID,
		Date:        s.Date,
		DueDate:     s.DueDate,
		ClientName:  strings.TrimSpace(s.ClientName),
		ClientPhone: strings.TrimSpace(s.ClientPhone),
		Items:       items,
		Discount:    s.Discount,
		TaxRate:     s.TaxRate,
	}
}

// Commit validates and persists the draft. On success the session adopts the
// assigned invoice id so subsequent commits update the same record; on
// validation failure the draft is left untouched for correction.
func (s *Session) Commit(store Committer) (models.Invoice, error) {
	saved, err := store.Upsert(s.Draft())
	if err != nil {
		return models.Invoice{}, err
	}
	s.InvoiceID = saved.ID
	return saved, nil
}
