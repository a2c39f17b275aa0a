package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
)

// settingsDocument is the on-disk shape of the settings store: one JSON file
// holding the settings record, the registry state and the alarms so a save
// replaces the whole document in one rename.
type settingsDocument struct {
	Settings *entity.SettingsRecord    `json:"settings,omitempty"`
	Registry *repository.RegistryState `json:"registry,omitempty"`
	Alarms   []*entity.Alarm           `json:"alarms,omitempty"`
}

// JSONSettingsRepository persists settings, registry state and alarms in a
// single JSON file with write-then-rename semantics.
type JSONSettingsRepository struct {
	path string
	mu   sync.Mutex
}

// NewJSONSettingsRepository creates a JSON-file settings repository. An empty
// path defaults to ~/.config/zoneboard/settings.json.
func NewJSONSettingsRepository(path string) *JSONSettingsRepository {
	if path == "" {
		homeDir, _ := os.UserHomeDir()
		path = filepath.Join(homeDir, ".config", "zoneboard", "settings.json")
	}
	return &JSONSettingsRepository{path: path}
}

// LoadSettings loads the settings record, nil when none was saved yet
func (r *JSONSettingsRepository) LoadSettings() (*entity.SettingsRecord, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return doc.Settings, nil
}

// SaveSettings persists the settings record
func (r *JSONSettingsRepository) SaveSettings(record *entity.SettingsRecord) error {
	return r.update(func(doc *settingsDocument) {
		doc.Settings = record
	})
}

// LoadRegistryState loads the registry state, nil when none was saved yet
func (r *JSONSettingsRepository) LoadRegistryState() (*repository.RegistryState, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return doc.Registry, nil
}

// SaveRegistryState persists the registry state
func (r *JSONSettingsRepository) SaveRegistryState(state *repository.RegistryState) error {
	return r.update(func(doc *settingsDocument) {
		doc.Registry = state
	})
}

// LoadAlarms loads all stored alarms
func (r *JSONSettingsRepository) LoadAlarms() ([]*entity.Alarm, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return doc.Alarms, nil
}

// SaveAlarms persists all alarms
func (r *JSONSettingsRepository) SaveAlarms(alarms []*entity.Alarm) error {
	return r.update(func(doc *settingsDocument) {
		doc.Alarms = alarms
	})
}

func (r *JSONSettingsRepository) load() (*settingsDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *JSONSettingsRepository) loadLocked() (*settingsDocument, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.ErrRepository("load settings", err)
	}

	var doc settingsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.ErrRepository("parse settings", err)
	}
	return &doc, nil
}

// update applies a mutation to the current document and writes the whole
// document back atomically
func (r *JSONSettingsRepository) update(mutate func(*settingsDocument)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.loadLocked()
	if err != nil {
		return err
	}
	if doc == nil {
		doc = &settingsDocument{}
	}
	mutate(doc)

	if err := os.MkdirAll(filepath.Dir(r.path), 0700); err != nil {
		return domain.ErrRepository("create settings directory", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.ErrRepository("marshal settings", err)
	}

	tmpFile := r.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		return domain.ErrRepository("write settings", err)
	}
	if err := os.Rename(tmpFile, r.path); err != nil {
		_ = os.Remove(tmpFile)
		return domain.ErrRepository("save settings", fmt.Errorf("rename: %w", err))
	}
	return nil
}
