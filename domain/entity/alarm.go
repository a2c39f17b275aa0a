package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/zoneboard/zoneboard/domain"
)

// Alarm is a one-shot alarm tied to a wall-clock time in a specific zone.
// Once triggered it is disabled, not deleted; it stays in storage until the
// user removes it.
type Alarm struct {
	ID string `json:"id"`

	// IANAZone is the zone whose wall clock the trigger time refers to
	IANAZone string `json:"iana_zone"`

	// TriggerTime is the wall-clock trigger in "HH:MM" (24-hour) form
	TriggerTime string `json:"trigger_time"`

	Label   string `json:"label,omitempty"`
	Enabled bool   `json:"enabled"`
}

// NewAlarm creates an enabled alarm with a generated id
func NewAlarm(ianaZone, triggerTime, label string) (*Alarm, error) {
	if ianaZone == "" {
		return nil, domain.ErrInvalidInput("ianaZone", "must not be empty")
	}
	if _, err := time.Parse("15:04", triggerTime); err != nil {
		return nil, domain.ErrInvalidInput("triggerTime", "must be HH:MM in 24-hour form")
	}
	return &Alarm{
		ID:          uuid.NewString(),
		IANAZone:    ianaZone,
		TriggerTime: triggerTime,
		Label:       label,
		Enabled:     true,
	}, nil
}

// HourMinute returns the parsed trigger hour and minute
func (a *Alarm) HourMinute() (hour, minute int) {
	t, err := time.Parse("15:04", a.TriggerTime)
	if err != nil {
		return 0, 0
	}
	return t.Hour(), t.Minute()
}
