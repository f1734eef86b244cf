package store

import (
	"regexp"
	"testing"
	"time"
)

func TestNewIDFormat(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	re := regexp.MustCompile(`^[0-9A-F]{6}-\d{5}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID(now)
		if !re.MatchString(id) {
			t.Fatalf("unexpected id format: %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id within same millisecond: %q", id)
		}
		seen[id] = true
	}
}

func TestNewIDTimeSuffix(t *testing.T) {
	now := time.UnixMilli(1748779200123)
	id := NewID(now)
	if id[7:] != "00123" {
		t.Fatalf("expected last five millis digits, got %q", id)
	}
}
