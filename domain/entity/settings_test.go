package entity

import (
	"testing"

	"github.com/zoneboard/zoneboard/domain"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Use24HourClock {
		t.Error("Expected 12-hour clock by default")
	}
	if !s.ShowSeconds {
		t.Error("Expected seconds shown by default")
	}
	if s.ShowUTCOffset {
		t.Error("Expected UTC offset hidden by default")
	}
	if s.ViewMode != ViewModeGrid {
		t.Errorf("Expected grid view by default, got %q", s.ViewMode)
	}
	if s.BusinessHoursStart != 9 || s.BusinessHoursEnd != 17 {
		t.Errorf("Expected business hours 9-17, got %d-%d", s.BusinessHoursStart, s.BusinessHoursEnd)
	}

	if err := s.Validate(); err != nil {
		t.Errorf("Default settings should validate, got %v", err)
	}
}

func TestSettingsRecordValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SettingsRecord)
		valid  bool
	}{
		{"defaults", func(s *SettingsRecord) {}, true},
		{"table view", func(s *SettingsRecord) { s.ViewMode = ViewModeTable }, true},
		{"unknown view mode", func(s *SettingsRecord) { s.ViewMode = "carousel" }, false},
		{"start out of range", func(s *SettingsRecord) { s.BusinessHoursStart = 24 }, false},
		{"end out of range", func(s *SettingsRecord) { s.BusinessHoursEnd = -1 }, false},
		{"start equals end", func(s *SettingsRecord) { s.BusinessHoursStart = 17 }, false},
		{"start after end", func(s *SettingsRecord) { s.BusinessHoursStart = 20 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(s)
			err := s.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("Expected validation error")
				}
				if !domain.IsErrorCode(err, domain.ErrCodeInvalidInput) {
					t.Errorf("Expected INVALID_INPUT, got %v", domain.GetErrorCode(err))
				}
			}
		})
	}
}

func TestSettingsRecordClone(t *testing.T) {
	original := DefaultSettings()
	clone := original.Clone()

	clone.Use24HourClock = true
	clone.BusinessHoursStart = 8

	if original.Use24HourClock {
		t.Error("Mutating the clone changed the original")
	}
	if original.BusinessHoursStart != 9 {
		t.Error("Mutating the clone changed the original business hours")
	}
}
