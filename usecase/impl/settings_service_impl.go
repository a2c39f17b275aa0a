package impl

import (
	"context"
	"sync"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
	"github.com/zoneboard/zoneboard/domain/valueobject"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// SettingsServiceImpl implements SettingsService. The record is validated as
// a whole before a key takes effect, then persisted; a save failure keeps the
// in-memory change and is reported to the caller.
type SettingsServiceImpl struct {
	repo   repository.SettingsRepository
	logger domain.Logger

	mu      sync.Mutex
	record  *entity.SettingsRecord
	refresh func()
}

// NewSettingsService loads the persisted record, applying the documented
// defaults on first run or when the store cannot be read
func NewSettingsService(repo repository.SettingsRepository, logger domain.Logger) *SettingsServiceImpl {
	s := &SettingsServiceImpl{
		repo:   repo,
		logger: logger,
	}

	record, err := repo.LoadSettings()
	if err != nil {
		logger.Warn(context.Background(), "Failed to load settings, using defaults",
			domain.NewField("error", err.Error()))
	}
	if record == nil {
		record = entity.DefaultSettings()
	}
	s.record = record
	return s
}

// SetRefreshHook registers the callback invoked after a successful update so
// the board re-renders without waiting for the next tick
func (s *SettingsServiceImpl) SetRefreshHook(refresh func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = refresh
}

// Current returns a copy of the active settings record
func (s *SettingsServiceImpl) Current() *entity.SettingsRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

// BusinessHours returns the validated business-hours window from the current
// record, falling back to 9-17 should the stored values be inconsistent
func (s *SettingsServiceImpl) BusinessHours() valueobject.BusinessHours {
	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := valueobject.NewBusinessHours(s.record.BusinessHoursStart, s.record.BusinessHoursEnd)
	if err != nil {
		window = valueobject.BusinessHours{Start: 9, End: 17}
	}
	return window
}

// Update sets one setting by key, persists the record and triggers a refresh
func (s *SettingsServiceImpl) Update(key string, value interface{}) error {
	s.mu.Lock()

	candidate := s.record.Clone()
	if err := applySetting(candidate, key, value); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := candidate.Validate(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.record = candidate

	var persistErr error
	if err := s.repo.SaveSettings(candidate.Clone()); err != nil {
		s.logger.Warn(context.Background(), "Failed to persist settings, keeping in-memory change",
			domain.NewField("key", key),
			domain.NewField("error", err.Error()))
		persistErr = domain.ErrPersistence("settings", err)
	}
	refresh := s.refresh
	s.mu.Unlock()

	if refresh != nil {
		refresh()
	}
	return persistErr
}

func applySetting(record *entity.SettingsRecord, key string, value interface{}) error {
	switch key {
	case usecase.SettingUse24HourClock:
		return applyBool(key, value, &record.Use24HourClock)
	case usecase.SettingShowSeconds:
		return applyBool(key, value, &record.ShowSeconds)
	case usecase.SettingShowUTCOffset:
		return applyBool(key, value, &record.ShowUTCOffset)
	case usecase.SettingShowHourDelta:
		return applyBool(key, value, &record.ShowHourDelta)
	case usecase.SettingDarkMode:
		return applyBool(key, value, &record.DarkMode)
	case usecase.SettingCompactMode:
		return applyBool(key, value, &record.CompactMode)
	case usecase.SettingShowBusinessHoursHighlight:
		return applyBool(key, value, &record.ShowBusinessHoursHighlight)
	case usecase.SettingShowNextHourCountdown:
		return applyBool(key, value, &record.ShowNextHourCountdown)
	case usecase.SettingViewMode:
		switch v := value.(type) {
		case entity.ViewMode:
			record.ViewMode = v
		case string:
			record.ViewMode = entity.ViewMode(v)
		default:
			return domain.ErrInvalidInput(key, "expected a view mode string")
		}
		return nil
	case usecase.SettingBusinessHoursStart:
		return applyInt(key, value, &record.BusinessHoursStart)
	case usecase.SettingBusinessHoursEnd:
		return applyInt(key, value, &record.BusinessHoursEnd)
	default:
		return domain.ErrNotFound("setting", key)
	}
}

func applyBool(key string, value interface{}, target *bool) error {
	v, ok := value.(bool)
	if !ok {
		return domain.ErrInvalidInput(key, "expected a bool")
	}
	*target = v
	return nil
}

func applyInt(key string, value interface{}, target *int) error {
	v, ok := value.(int)
	if !ok {
		return domain.ErrInvalidInput(key, "expected an int")
	}
	*target = v
	return nil
}
