package repository

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"

	// sqlite3 driver registration
	_ "github.com/mattn/go-sqlite3"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
)

const (
	sectionSettings = "settings"
	sectionRegistry = "registry"
	sectionAlarms   = "alarms"
)

// SQLiteSettingsRepository persists settings, registry state and alarms as
// JSON payloads in a single-table SQLite database. Each save runs in its own
// transaction, giving the near-atomic write the persistence boundary asks for.
type SQLiteSettingsRepository struct {
	db *sql.DB
}

// NewSQLiteSettingsRepository opens (and if needed creates) the settings
// database. An empty path defaults to ~/.config/zoneboard/settings.db.
func NewSQLiteSettingsRepository(path string) (*SQLiteSettingsRepository, error) {
	if path == "" {
		homeDir, _ := os.UserHomeDir()
		path = filepath.Join(homeDir, ".config", "zoneboard", "settings.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, domain.ErrRepository("create settings directory", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, domain.ErrRepository("open settings database", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS store (
		section TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, domain.ErrRepository("initialize settings database", err)
	}

	return &SQLiteSettingsRepository{db: db}, nil
}

// Close closes the underlying database
func (r *SQLiteSettingsRepository) Close() error {
	return r.db.Close()
}

// LoadSettings loads the settings record, nil when none was saved yet
func (r *SQLiteSettingsRepository) LoadSettings() (*entity.SettingsRecord, error) {
	var record entity.SettingsRecord
	found, err := r.loadSection(sectionSettings, &record)
	if err != nil || !found {
		return nil, err
	}
	return &record, nil
}

// SaveSettings persists the settings record
func (r *SQLiteSettingsRepository) SaveSettings(record *entity.SettingsRecord) error {
	return r.saveSection(sectionSettings, record)
}

// LoadRegistryState loads the registry state, nil when none was saved yet
func (r *SQLiteSettingsRepository) LoadRegistryState() (*repository.RegistryState, error) {
	var state repository.RegistryState
	found, err := r.loadSection(sectionRegistry, &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

// SaveRegistryState persists the registry state
func (r *SQLiteSettingsRepository) SaveRegistryState(state *repository.RegistryState) error {
	return r.saveSection(sectionRegistry, state)
}

// LoadAlarms loads all stored alarms
func (r *SQLiteSettingsRepository) LoadAlarms() ([]*entity.Alarm, error) {
	var alarms []*entity.Alarm
	found, err := r.loadSection(sectionAlarms, &alarms)
	if err != nil || !found {
		return nil, err
	}
	return alarms, nil
}

// SaveAlarms persists all alarms
func (r *SQLiteSettingsRepository) SaveAlarms(alarms []*entity.Alarm) error {
	return r.saveSection(sectionAlarms, alarms)
}

func (r *SQLiteSettingsRepository) loadSection(section string, out interface{}) (bool, error) {
	var payload string
	err := r.db.QueryRow(`SELECT payload FROM store WHERE section = ?`, section).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, domain.ErrRepository("load "+section, err)
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, domain.ErrRepository("parse "+section, err)
	}
	return true, nil
}

func (r *SQLiteSettingsRepository) saveSection(section string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return domain.ErrRepository("marshal "+section, err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return domain.ErrRepository("save "+section, err)
	}
	if _, err := tx.Exec(
		`INSERT INTO store (section, payload) VALUES (?, ?)
		 ON CONFLICT(section) DO UPDATE SET payload = excluded.payload`,
		section, string(payload),
	); err != nil {
		_ = tx.Rollback()
		return domain.ErrRepository("save "+section, err)
	}
	if err := tx.Commit(); err != nil {
		return domain.ErrRepository("save "+section, err)
	}
	return nil
}
