package valueobject

import (
	"testing"

	"github.com/zoneboard/zoneboard/domain"
)

func TestNewBusinessHours(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		window, err := NewBusinessHours(9, 17)
		if err != nil {
			t.Fatalf("NewBusinessHours failed: %v", err)
		}
		if window.Start != 9 || window.End != 17 {
			t.Errorf("Expected 9-17, got %d-%d", window.Start, window.End)
		}
	})

	t.Run("invalid windows", func(t *testing.T) {
		cases := [][2]int{{-1, 17}, {9, 24}, {17, 9}, {9, 9}}
		for _, c := range cases {
			_, err := NewBusinessHours(c[0], c[1])
			if err == nil {
				t.Errorf("Expected error for window %d-%d", c[0], c[1])
			}
			if !domain.IsErrorCode(err, domain.ErrCodeInvalidInput) {
				t.Errorf("Expected INVALID_INPUT for window %d-%d", c[0], c[1])
			}
		}
	})
}

func TestBusinessHoursContains(t *testing.T) {
	window := BusinessHours{Start: 9, End: 17}

	// Half-open: the start hour is in, the end hour is out
	if !window.Contains(9) {
		t.Error("Expected hour 9 inside a 9-17 window")
	}
	if !window.Contains(16) {
		t.Error("Expected hour 16 inside a 9-17 window")
	}
	if window.Contains(17) {
		t.Error("Expected hour 17 outside a 9-17 window")
	}
	if window.Contains(8) {
		t.Error("Expected hour 8 outside a 9-17 window")
	}
	if window.Contains(23) {
		t.Error("Expected hour 23 outside a 9-17 window")
	}
}
