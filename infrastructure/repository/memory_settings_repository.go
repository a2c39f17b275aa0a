package repository

import (
	"sync"

	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
)

// MemorySettingsRepository is an in-memory settings repository. It backs
// tests and serves as the fallback store when the configured backend cannot
// be opened, keeping the board usable without persistence.
type MemorySettingsRepository struct {
	mu       sync.Mutex
	settings *entity.SettingsRecord
	registry *repository.RegistryState
	alarms   []*entity.Alarm
}

// NewMemorySettingsRepository creates an empty in-memory repository
func NewMemorySettingsRepository() *MemorySettingsRepository {
	return &MemorySettingsRepository{}
}

// LoadSettings loads the settings record, nil when none was saved yet
func (r *MemorySettingsRepository) LoadSettings() (*entity.SettingsRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return nil, nil
	}
	return r.settings.Clone(), nil
}

// SaveSettings persists the settings record
func (r *MemorySettingsRepository) SaveSettings(record *entity.SettingsRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = record.Clone()
	return nil
}

// LoadRegistryState loads the registry state, nil when none was saved yet
func (r *MemorySettingsRepository) LoadRegistryState() (*repository.RegistryState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.registry == nil {
		return nil, nil
	}
	return cloneRegistryState(r.registry), nil
}

// SaveRegistryState persists the registry state
func (r *MemorySettingsRepository) SaveRegistryState(state *repository.RegistryState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registry = cloneRegistryState(state)
	return nil
}

// LoadAlarms loads all stored alarms
func (r *MemorySettingsRepository) LoadAlarms() ([]*entity.Alarm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.alarms == nil {
		return nil, nil
	}
	out := make([]*entity.Alarm, len(r.alarms))
	for i, alarm := range r.alarms {
		copied := *alarm
		out[i] = &copied
	}
	return out, nil
}

// SaveAlarms persists all alarms
func (r *MemorySettingsRepository) SaveAlarms(alarms []*entity.Alarm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alarms = make([]*entity.Alarm, len(alarms))
	for i, alarm := range alarms {
		copied := *alarm
		r.alarms[i] = &copied
	}
	return nil
}

func cloneRegistryState(state *repository.RegistryState) *repository.RegistryState {
	if state == nil {
		return nil
	}
	cloned := &repository.RegistryState{
		CustomEntries:     make([]*entity.TimezoneEntry, len(state.CustomEntries)),
		RemovedBuiltinIDs: append([]string(nil), state.RemovedBuiltinIDs...),
		Labels:            make(map[string]string, len(state.Labels)),
		Notes:             make(map[string]string, len(state.Notes)),
	}
	for i, entry := range state.CustomEntries {
		copied := *entry
		cloned.CustomEntries[i] = &copied
	}
	for k, v := range state.Labels {
		cloned.Labels[k] = v
	}
	for k, v := range state.Notes {
		cloned.Notes[k] = v
	}
	return cloned
}
