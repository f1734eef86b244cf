package invoicing

import (
	"regexp"
	"testing"

	"github.com/diewo77/invoice-lite/internal/models"
)

// fakeStore implements Committer and mimics the store's validation so commit
// behaviour can be tested without real persistence.
type fakeStore struct {
	saved  []models.Invoice
	reject error
}

func (f *fakeStore) Upsert(draft models.Invoice) (models.Invoice, error) {
	if f.reject != nil {
		return models.Invoice{}, f.reject
	}
	if draft.ID == "" {
		draft.ID = "ABC123-00001"
	}
	f.saved = append(f.saved, draft)
	return draft, nil
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(s.Date) {
		t.Fatalf("expected today's date, got %q", s.Date)
	}
	if len(s.Items) != 1 || !s.Items[0].Blank() {
		t.Fatalf("expected one blank row, got %#v", s.Items)
	}
	if s.Discount != 0 || s.TaxRate != 0 || s.ClientName != "" {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestSessionForSeedsBlankRow(t *testing.T) {
	s := SessionFor(models.Invoice{ID: "X", ClientName: "Acme"})
	if len(s.Items) != 1 || !s.Items[0].Blank() {
		t.Fatalf("expected seeded blank row, got %#v", s.Items)
	}
	if s.InvoiceID != "X" || s.ClientName != "Acme" {
		t.Fatalf("fields not populated: %+v", s)
	}
}

func TestRemoveRowReseedsBlank(t *testing.T) {
	s := NewSession()
	s.SetRow(0, models.LineItem{Name: "A", Qty: 1, Rate: 5})
	s.RemoveRow(0)
	if len(s.Items) != 1 || !s.Items[0].Blank() {
		t.Fatalf("expected fresh blank row after removing last, got %#v", s.Items)
	}
	s.RemoveRow(5) // out of range, ignored
	if len(s.Items) != 1 {
		t.Fatalf("out-of-range remove should be a no-op")
	}
}

func TestSessionTotalsIgnoreBlankRows(t *testing.T) {
	s := NewSession()
	s.SetRow(0, models.LineItem{Name: "A", Qty: 2, Rate: 50})
	s.AddRow() // stays blank
	s.Discount = 10
	s.TaxRate = 10
	got := s.Totals()
	want := models.Totals{Subtotal: 100, Discount: 10, Tax: 9, Grand: 99}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestCommitAdoptsAssignedID(t *testing.T) {
	fs := &fakeStore{}
	s := NewSession()
	s.ClientName = "Acme"
	s.SetRow(0, models.LineItem{Name: "Design", Qty: 1, Rate: 100})
	inv, err := s.Commit(fs)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if inv.ID == "" || s.InvoiceID != inv.ID {
		t.Fatalf("session should adopt the assigned id, got %q / %q", inv.ID, s.InvoiceID)
	}
	if len(fs.saved) != 1 || len(fs.saved[0].Items) != 1 {
		t.Fatalf("unexpected persisted draft: %#v", fs.saved)
	}
}

func TestCommitFailureLeavesDraftIntact(t *testing.T) {
	fs := &fakeStore{reject: ErrClientNameRequired}
	s := NewSession()
	s.SetRow(0, models.LineItem{Name: "Design", Qty: 1, Rate: 100})
	s.AddRow()
	before := len(s.Items)
	if _, err := s.Commit(fs); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(s.Items) != before || s.InvoiceID != "" {
		t.Fatalf("draft changed on failed commit: %+v", s)
	}
}

func TestDraftFiltersBlankRowsAndTrims(t *testing.T) {
	s := NewSession()
	s.ClientName = "  Acme  "
	s.SetRow(0, models.LineItem{Name: "A", Qty: 1, Rate: 10})
	s.AddRow()
	d := s.Draft()
	if len(d.Items) != 1 {
		t.Fatalf("blank rows must not survive into the draft: %#v", d.Items)
	}
	if d.ClientName != "Acme" {
		t.Fatalf("client name not trimmed: %q", d.ClientName)
	}
	if len(s.Items) != 2 {
		t.Fatalf("building a draft must not mutate the session")
	}
}
