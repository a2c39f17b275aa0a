package entity

import (
	"github.com/zoneboard/zoneboard/domain"
)

// ViewMode selects how the board is laid out
type ViewMode string

const (
	ViewModeGrid  ViewMode = "grid"
	ViewModeList  ViewMode = "list"
	ViewModeTable ViewMode = "table"
)

// Valid reports whether the view mode is one of the known layouts
func (m ViewMode) Valid() bool {
	switch m {
	case ViewModeGrid, ViewModeList, ViewModeTable:
		return true
	}
	return false
}

// SettingsRecord holds the user-facing display settings. It is persisted as a
// single flat record and mutated only through the settings service.
type SettingsRecord struct {
	Use24HourClock             bool     `json:"use_24_hour_clock"`
	ShowSeconds                bool     `json:"show_seconds"`
	ShowUTCOffset              bool     `json:"show_utc_offset"`
	ShowHourDelta              bool     `json:"show_hour_delta"`
	DarkMode                   bool     `json:"dark_mode"`
	CompactMode                bool     `json:"compact_mode"`
	ShowBusinessHoursHighlight bool     `json:"show_business_hours_highlight"`
	ShowNextHourCountdown      bool     `json:"show_next_hour_countdown"`
	ViewMode                   ViewMode `json:"view_mode"`
	BusinessHoursStart         int      `json:"business_hours_start"`
	BusinessHoursEnd           int      `json:"business_hours_end"`
}

// DefaultSettings returns the documented first-run defaults: 12-hour clock,
// seconds shown, UTC offset hidden, business hours 9-17, grid view.
func DefaultSettings() *SettingsRecord {
	return &SettingsRecord{
		Use24HourClock:             false,
		ShowSeconds:                true,
		ShowUTCOffset:              false,
		ShowHourDelta:              true,
		DarkMode:                   false,
		CompactMode:                false,
		ShowBusinessHoursHighlight: true,
		ShowNextHourCountdown:      false,
		ViewMode:                   ViewModeGrid,
		BusinessHoursStart:         9,
		BusinessHoursEnd:           17,
	}
}

// Validate checks the record's internal consistency
func (s *SettingsRecord) Validate() error {
	if !s.ViewMode.Valid() {
		return domain.ErrInvalidInput("viewMode", "must be grid, list or table")
	}
	if s.BusinessHoursStart < 0 || s.BusinessHoursStart > 23 {
		return domain.ErrInvalidInput("businessHoursStart", "must be between 0 and 23")
	}
	if s.BusinessHoursEnd < 0 || s.BusinessHoursEnd > 23 {
		return domain.ErrInvalidInput("businessHoursEnd", "must be between 0 and 23")
	}
	if s.BusinessHoursStart >= s.BusinessHoursEnd {
		return domain.ErrInvalidInput("businessHours", "start must be before end")
	}
	return nil
}

// Clone returns a copy of the record
func (s *SettingsRecord) Clone() *SettingsRecord {
	copied := *s
	return &copied
}
