package usecase

import (
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/valueobject"
)

// Setting keys accepted by SettingsService.Update
const (
	SettingUse24HourClock             = "use24HourClock"
	SettingShowSeconds                = "showSeconds"
	SettingShowUTCOffset              = "showUtcOffset"
	SettingShowHourDelta              = "showHourDelta"
	SettingDarkMode                   = "darkMode"
	SettingCompactMode                = "compactMode"
	SettingShowBusinessHoursHighlight = "showBusinessHoursHighlight"
	SettingShowNextHourCountdown      = "showNextHourCountdown"
	SettingViewMode                   = "viewMode"
	SettingBusinessHoursStart         = "businessHoursStart"
	SettingBusinessHoursEnd           = "businessHoursEnd"
)

// SettingsService owns the settings record. Update is the only mutation
// path: it validates the candidate record, persists it and triggers a
// display refresh so the change shows on the next render.
type SettingsService interface {
	// Current returns a copy of the active settings record
	Current() *entity.SettingsRecord

	// Update sets one setting by key. Boolean keys take bool values,
	// businessHoursStart/End take int, viewMode takes a string or ViewMode.
	// A persistence failure is returned but the in-memory change is kept.
	Update(key string, value interface{}) error

	// BusinessHours returns the validated business-hours window from the
	// current record
	BusinessHours() valueobject.BusinessHours
}
