package storage

import (
	"fmt"
	"testing"

	"github.com/diewo77/invoice-lite/internal/models"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return s
}

func TestInvoicesRoundTrip(t *testing.T) {
	s := openTestDB(t)

	invs, err := s.ReadInvoices()
	if err != nil {
		t.Fatalf("read empty: %v", err)
	}
	if len(invs) != 0 {
		t.Fatalf("expected empty collection, got %d", len(invs))
	}

	in := []models.Invoice{{
		ID:         "A1B2C3-00001",
		Date:       "2025-06-01",
		ClientName: "Acme",
		Items:      []models.LineItem{{Name: "Design", Qty: 2, Rate: 50}},
		Totals:     models.Totals{Subtotal: 100, Grand: 100},
		Currency:   "PKR",
		Status:     models.StatusUnpaid,
		CreatedAt:  1748779200000,
		UpdatedAt:  1748779200000,
	}}
	if err := s.WriteInvoices(in); err != nil {
		t.Fatalf("write: %v", err)
	}
	// Overwrite under the same key must not duplicate.
	if err := s.WriteInvoices(in); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	out, err := s.ReadInvoices()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 || out[0].ID != in[0].ID || out[0].Totals != in[0].Totals || out[0].Items[0] != in[0].Items[0] {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestCorruptInvoicePayloadYieldsEmpty(t *testing.T) {
	s := openTestDB(t)
	if err := s.db.Create(&Record{Key: keyInvoices, Value: []byte("{definitely not json")}).Error; err != nil {
		t.Fatalf("seed corrupt: %v", err)
	}
	invs, err := s.ReadInvoices()
	if err != nil {
		t.Fatalf("corrupt payload must not error: %v", err)
	}
	if len(invs) != 0 {
		t.Fatalf("expected empty collection, got %+v", invs)
	}
}

func TestProfileRoundTripAndCorruption(t *testing.T) {
	s := openTestDB(t)

	p, err := s.ReadProfile()
	if err != nil {
		t.Fatalf("read default: %v", err)
	}
	if p.Name != models.DefaultBusinessName || p.Currency != models.DefaultCurrency {
		t.Fatalf("expected defaults, got %+v", p)
	}

	if err := s.WriteProfile(models.BusinessProfile{Name: "Crafts Co", Phone: "0300", Currency: "USD"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err = s.ReadProfile()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if p.Name != "Crafts Co" || p.Currency != "USD" {
		t.Fatalf("round trip mismatch: %+v", p)
	}

	if err := s.db.Save(&Record{Key: keyBusiness, Value: []byte("][")}).Error; err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	p, err = s.ReadProfile()
	if err != nil {
		t.Fatalf("corrupt payload must not error: %v", err)
	}
	if p.Name != models.DefaultBusinessName {
		t.Fatalf("expected defaults after corruption, got %+v", p)
	}
}

func TestClearAll(t *testing.T) {
	s := openTestDB(t)
	if err := s.WriteInvoices([]models.Invoice{{ID: "X-00001", ClientName: "Acme"}}); err != nil {
		t.Fatalf("write invoices: %v", err)
	}
	if err := s.WriteProfile(models.BusinessProfile{Name: "Crafts Co"}); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	if err := s.ClearAll(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	invs, _ := s.ReadInvoices()
	if len(invs) != 0 {
		t.Fatalf("invoices survived clear: %+v", invs)
	}
	p, _ := s.ReadProfile()
	if p.Name != models.DefaultBusinessName {
		t.Fatalf("profile survived clear: %+v", p)
	}
}
