package repository

import (
	"github.com/zoneboard/zoneboard/domain/entity"
)

// RegistryState is the persisted portion of the timezone registry: custom
// entries, hidden builtin ids and the per-entry label/note overrides.
type RegistryState struct {
	CustomEntries     []*entity.TimezoneEntry `json:"custom_entries"`
	RemovedBuiltinIDs []string                `json:"removed_builtin_ids"`
	Labels            map[string]string       `json:"labels"`
	Notes             map[string]string       `json:"notes"`
}

// SettingsRepository is the persistence boundary for settings, registry state
// and alarms. Load methods return (nil, nil) on first run; callers apply the
// documented defaults. Saves are atomic or near-atomic per record.
type SettingsRepository interface {
	// LoadSettings loads the settings record, nil when none was saved yet
	LoadSettings() (*entity.SettingsRecord, error)

	// SaveSettings persists the settings record
	SaveSettings(record *entity.SettingsRecord) error

	// LoadRegistryState loads the registry state, nil when none was saved yet
	LoadRegistryState() (*RegistryState, error)

	// SaveRegistryState persists the registry state
	SaveRegistryState(state *RegistryState) error

	// LoadAlarms loads all stored alarms
	LoadAlarms() ([]*entity.Alarm, error)

	// SaveAlarms persists all alarms
	SaveAlarms(alarms []*entity.Alarm) error
}
