package impl

import (
	"context"
	"errors"
	"time"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
	"github.com/zoneboard/zoneboard/domain/valueobject"
)

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {}
func (nopLogger) Info(ctx context.Context, msg string, fields ...domain.Field)  {}
func (nopLogger) Warn(ctx context.Context, msg string, fields ...domain.Field)  {}
func (nopLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {}
func (l nopLogger) WithFields(fields ...domain.Field) domain.Logger             { return l }

// memRepo is a minimal in-memory settings repository for service tests
type memRepo struct {
	settings *entity.SettingsRecord
	state    *repository.RegistryState
	alarms   []*entity.Alarm
}

func (r *memRepo) LoadSettings() (*entity.SettingsRecord, error) {
	if r.settings == nil {
		return nil, nil
	}
	return r.settings.Clone(), nil
}

func (r *memRepo) SaveSettings(record *entity.SettingsRecord) error {
	r.settings = record.Clone()
	return nil
}

func (r *memRepo) LoadRegistryState() (*repository.RegistryState, error) {
	return r.state, nil
}

func (r *memRepo) SaveRegistryState(state *repository.RegistryState) error {
	r.state = state
	return nil
}

func (r *memRepo) LoadAlarms() ([]*entity.Alarm, error) {
	return r.alarms, nil
}

func (r *memRepo) SaveAlarms(alarms []*entity.Alarm) error {
	r.alarms = alarms
	return nil
}

// failingRepo fails every save but loads cleanly
type failingRepo struct {
	memRepo
}

func (r *failingRepo) SaveSettings(*entity.SettingsRecord) error {
	return errors.New("disk full")
}

func (r *failingRepo) SaveRegistryState(*repository.RegistryState) error {
	return errors.New("disk full")
}

func (r *failingRepo) SaveAlarms([]*entity.Alarm) error {
	return errors.New("disk full")
}

// stubTimeSource resolves zones through the real timezone database without
// the caching layer
type stubTimeSource struct{}

func (stubTimeSource) Read(ianaZone string, instant time.Time, opts repository.ReadOptions) (valueobject.ClockReading, error) {
	loc, err := time.LoadLocation(ianaZone)
	if err != nil {
		return valueobject.ClockReading{}, domain.ErrUnknownZone(ianaZone, err)
	}

	local := instant.In(loc)
	reading := valueobject.ClockReading{
		Minute:   local.Minute(),
		DateText: local.Format("Mon, Jan 2"),
	}
	if opts.ShowSeconds {
		reading.Second = local.Second()
	}
	if opts.Use24Hour {
		reading.Hour = local.Hour()
	} else {
		hour := local.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		reading.Hour = hour
		if local.Hour() < 12 {
			reading.DayPeriod = "AM"
		} else {
			reading.DayPeriod = "PM"
		}
	}
	return reading, nil
}

func (stubTimeSource) Location(ianaZone string) (*time.Location, error) {
	loc, err := time.LoadLocation(ianaZone)
	if err != nil {
		return nil, domain.ErrUnknownZone(ianaZone, err)
	}
	return loc, nil
}

func (stubTimeSource) DetectLocalZone() string {
	return "UTC"
}

// stubCatalog serves a fixed entry list
type stubCatalog struct {
	entries []repository.CatalogEntry
}

func (c *stubCatalog) All() []repository.CatalogEntry {
	return append([]repository.CatalogEntry(nil), c.entries...)
}
