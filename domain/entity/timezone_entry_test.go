package entity

import (
	"testing"

	"github.com/zoneboard/zoneboard/domain"
)

func TestBuiltinEntries(t *testing.T) {
	entries := BuiltinEntries()

	if len(entries) != 4 {
		t.Fatalf("Expected 4 builtin entries, got %d", len(entries))
	}

	expected := []struct {
		id   string
		zone string
		name string
	}{
		{"est", "America/New_York", "New York"},
		{"pst", "America/Los_Angeles", "Los Angeles"},
		{"brazil", "America/Sao_Paulo", "São Paulo"},
		{"italy", "Europe/Rome", "Rome"},
	}

	for i, want := range expected {
		entry := entries[i]
		if entry.ID != want.id {
			t.Errorf("Entry %d: expected id %q, got %q", i, want.id, entry.ID)
		}
		if entry.IANAZone != want.zone {
			t.Errorf("Entry %d: expected zone %q, got %q", i, want.zone, entry.IANAZone)
		}
		if entry.DisplayName != want.name {
			t.Errorf("Entry %d: expected name %q, got %q", i, want.name, entry.DisplayName)
		}
		if !entry.IsBuiltin() {
			t.Errorf("Entry %d: expected builtin origin", i)
		}
	}
}

func TestBuiltinEntriesReturnsCopies(t *testing.T) {
	first := BuiltinEntries()
	first[0].DisplayName = "Mutated"

	second := BuiltinEntries()
	if second[0].DisplayName != "New York" {
		t.Error("BuiltinEntries should return fresh copies")
	}
}

func TestNewCustomEntry(t *testing.T) {
	t.Run("generates id and defaults name to zone", func(t *testing.T) {
		entry, err := NewCustomEntry("Asia/Tokyo", "", "🇯🇵")
		if err != nil {
			t.Fatalf("NewCustomEntry failed: %v", err)
		}
		if entry.ID == "" {
			t.Error("Expected a generated id")
		}
		if entry.DisplayName != "Asia/Tokyo" {
			t.Errorf("Expected display name to default to zone, got %q", entry.DisplayName)
		}
		if entry.IsBuiltin() {
			t.Error("Expected custom origin")
		}
	})

	t.Run("trims the zone", func(t *testing.T) {
		entry, err := NewCustomEntry("  Europe/London  ", "London", "")
		if err != nil {
			t.Fatalf("NewCustomEntry failed: %v", err)
		}
		if entry.IANAZone != "Europe/London" {
			t.Errorf("Expected trimmed zone, got %q", entry.IANAZone)
		}
	})

	t.Run("rejects empty zone", func(t *testing.T) {
		_, err := NewCustomEntry("   ", "Nowhere", "")
		if err == nil {
			t.Fatal("Expected an error for empty zone")
		}
		if !domain.IsErrorCode(err, domain.ErrCodeInvalidInput) {
			t.Errorf("Expected INVALID_INPUT, got %v", domain.GetErrorCode(err))
		}
	})

	t.Run("distinct ids per entry", func(t *testing.T) {
		a, _ := NewCustomEntry("Asia/Tokyo", "", "")
		b, _ := NewCustomEntry("Asia/Tokyo", "", "")
		if a.ID == b.ID {
			t.Error("Expected distinct generated ids")
		}
	})
}

func TestTimezoneEntryLabel(t *testing.T) {
	entry := &TimezoneEntry{IANAZone: "Asia/Tokyo"}
	if entry.Label() != "Asia/Tokyo" {
		t.Errorf("Expected zone fallback, got %q", entry.Label())
	}

	entry.DisplayName = "Tokyo"
	if entry.Label() != "Tokyo" {
		t.Errorf("Expected display name, got %q", entry.Label())
	}
}
