package models

import "testing"

func TestLineItemBlank(t *testing.T) {
	tests := []struct {
		item LineItem
		want bool
	}{
		{LineItem{}, true},
		{LineItem{Name: "x"}, false},
		{LineItem{Qty: 1}, false},
		{LineItem{Rate: 0.01}, false},
		{LineItem{Name: "x", Qty: 2, Rate: 50}, false},
	}
	for _, tt := range tests {
		if got := tt.item.Blank(); got != tt.want {
			t.Fatalf("Blank(%+v) = %v, want %v", tt.item, got, tt.want)
		}
	}
}

func TestNormalizedStatus(t *testing.T) {
	if got := (Invoice{}).NormalizedStatus(); got != StatusUnpaid {
		t.Fatalf("missing status should read as unpaid, got %q", got)
	}
	if got := (Invoice{Status: StatusPaid}).NormalizedStatus(); got != StatusPaid {
		t.Fatalf("got %q", got)
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney("PKR", 99); got != "PKR 99.00" {
		t.Fatalf("got %q", got)
	}
	if got := FormatMoney("USD", 1234.567); got != "USD 1234.57" {
		t.Fatalf("got %q", got)
	}
}

func TestBusinessProfileNormalized(t *testing.T) {
	p := BusinessProfile{Name: "  ", Phone: " 0300 ", Currency: ""}.Normalized()
	if p.Name != DefaultBusinessName || p.Currency != DefaultCurrency || p.Phone != "0300" {
		t.Fatalf("unexpected normalization: %+v", p)
	}
	p = BusinessProfile{Name: "Crafts Co", Currency: "USD"}.Normalized()
	if p.Name != "Crafts Co" || p.Currency != "USD" {
		t.Fatalf("configured fields must survive: %+v", p)
	}
}
