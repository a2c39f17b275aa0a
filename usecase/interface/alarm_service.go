package usecase

import (
	"time"

	"github.com/zoneboard/zoneboard/domain/entity"
)

// AlarmEvent is published when an alarm fires
type AlarmEvent struct {
	Alarm   entity.Alarm
	FiredAt time.Time
}

// AlarmListener receives alarm events
type AlarmListener func(event AlarmEvent)

// AlarmService manages one-shot alarms tied to a wall-clock time in a
// specific zone. A triggered alarm is disabled, not deleted; it stays listed
// until explicitly removed.
type AlarmService interface {
	// Add creates and schedules an enabled alarm
	Add(ianaZone, triggerTime, label string) (*entity.Alarm, error)

	// Remove deletes an alarm permanently
	Remove(id string) error

	// SetEnabled enables or disables an alarm. Re-enabling a fired alarm
	// arms it again.
	SetEnabled(id string, enabled bool) error

	// List returns all alarms, triggered-and-disabled ones included
	List() []*entity.Alarm

	// Subscribe registers a listener for alarm events and returns a
	// function that removes it again
	Subscribe(listener AlarmListener) (unsubscribe func())

	// Start loads persisted alarms and begins scheduling
	Start() error

	// Stop halts scheduling; stored alarms are untouched
	Stop()
}
