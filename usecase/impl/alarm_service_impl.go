package impl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// AlarmServiceImpl implements AlarmService on top of a cron scheduler. Each
// enabled alarm maps to one cron entry whose spec carries the alarm's zone,
// so DST transitions are handled by the timezone database rather than by us.
type AlarmServiceImpl struct {
	repo       repository.SettingsRepository
	timeSource repository.TimeSource
	logger     domain.Logger

	mu        sync.Mutex
	cron      *cron.Cron
	alarms    []*entity.Alarm
	entryIDs  map[string]cron.EntryID
	listeners map[int]usecase.AlarmListener
	nextID    int
	started   bool
}

// NewAlarmService creates a stopped alarm service
func NewAlarmService(repo repository.SettingsRepository, timeSource repository.TimeSource, logger domain.Logger) *AlarmServiceImpl {
	return &AlarmServiceImpl{
		repo:       repo,
		timeSource: timeSource,
		logger:     logger,
		cron:       cron.New(),
		entryIDs:   make(map[string]cron.EntryID),
		listeners:  make(map[int]usecase.AlarmListener),
	}
}

// Start loads persisted alarms, schedules the enabled ones and starts the
// scheduler. No-op when already started.
func (s *AlarmServiceImpl) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	alarms, err := s.repo.LoadAlarms()
	if err != nil {
		s.logger.Warn(context.Background(), "Failed to load alarms, starting empty",
			domain.NewField("error", err.Error()))
	}
	s.alarms = alarms

	for _, alarm := range s.alarms {
		if !alarm.Enabled {
			continue
		}
		if err := s.scheduleLocked(alarm); err != nil {
			s.logger.Warn(context.Background(), "Failed to schedule stored alarm",
				domain.NewField("alarm_id", alarm.ID),
				domain.NewField("zone", alarm.IANAZone),
				domain.NewField("error", err.Error()))
		}
	}

	s.cron.Start()
	s.started = true
	s.logger.Info(context.Background(), "Alarm scheduler started",
		domain.NewField("alarm_count", len(s.alarms)))
	return nil
}

// Stop halts the scheduler. Stored alarms are untouched.
func (s *AlarmServiceImpl) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.cron.Stop()
	s.started = false
	s.logger.Info(context.Background(), "Alarm scheduler stopped")
}

// Add creates, persists and schedules an enabled alarm
func (s *AlarmServiceImpl) Add(ianaZone, triggerTime, label string) (*entity.Alarm, error) {
	if _, err := s.timeSource.Location(ianaZone); err != nil {
		return nil, err
	}

	alarm, err := entity.NewAlarm(ianaZone, triggerTime, label)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.alarms = append(s.alarms, alarm)
	if s.started {
		if err := s.scheduleLocked(alarm); err != nil {
			return nil, err
		}
	}
	if err := s.persistLocked(); err != nil {
		return alarm, err
	}
	return alarm, nil
}

// Remove deletes an alarm permanently
func (s *AlarmServiceImpl) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(id)
	if index < 0 {
		return domain.ErrNotFound("alarm", id)
	}

	s.unscheduleLocked(id)
	s.alarms = append(s.alarms[:index], s.alarms[index+1:]...)
	return s.persistLocked()
}

// SetEnabled toggles an alarm. Re-enabling a fired alarm arms it again.
func (s *AlarmServiceImpl) SetEnabled(id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(id)
	if index < 0 {
		return domain.ErrNotFound("alarm", id)
	}

	alarm := s.alarms[index]
	if alarm.Enabled == enabled {
		return nil
	}
	alarm.Enabled = enabled

	if enabled {
		if s.started {
			if err := s.scheduleLocked(alarm); err != nil {
				alarm.Enabled = false
				return err
			}
		}
	} else {
		s.unscheduleLocked(id)
	}
	return s.persistLocked()
}

// List returns copies of all alarms, disabled ones included
func (s *AlarmServiceImpl) List() []*entity.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	alarms := make([]*entity.Alarm, 0, len(s.alarms))
	for _, alarm := range s.alarms {
		copied := *alarm
		alarms = append(alarms, &copied)
	}
	return alarms
}

// Subscribe registers an alarm event listener
func (s *AlarmServiceImpl) Subscribe(listener usecase.AlarmListener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// scheduleLocked registers the alarm with the cron scheduler. Must be called
// with the mutex held.
func (s *AlarmServiceImpl) scheduleLocked(alarm *entity.Alarm) error {
	hour, minute := alarm.HourMinute()
	spec := fmt.Sprintf("CRON_TZ=%s %d %d * * *", alarm.IANAZone, minute, hour)

	alarmID := alarm.ID
	entryID, err := s.cron.AddFunc(spec, func() {
		s.fire(alarmID)
	})
	if err != nil {
		return domain.ErrInvalidInput("triggerTime", err.Error())
	}
	s.entryIDs[alarm.ID] = entryID
	return nil
}

func (s *AlarmServiceImpl) unscheduleLocked(id string) {
	if entryID, ok := s.entryIDs[id]; ok {
		s.cron.Remove(entryID)
		delete(s.entryIDs, id)
	}
}

// fire handles a triggered alarm: disable it, persist, notify listeners
func (s *AlarmServiceImpl) fire(id string) {
	s.mu.Lock()

	index := s.indexOfLocked(id)
	if index < 0 {
		s.mu.Unlock()
		return
	}

	alarm := s.alarms[index]
	alarm.Enabled = false
	s.unscheduleLocked(id)
	if err := s.persistLocked(); err != nil {
		s.logger.Warn(context.Background(), "Failed to persist fired alarm state",
			domain.NewField("alarm_id", id),
			domain.NewField("error", err.Error()))
	}

	event := usecase.AlarmEvent{Alarm: *alarm, FiredAt: time.Now()}
	listeners := make([]usecase.AlarmListener, 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.mu.Unlock()

	s.logger.Info(context.Background(), "Alarm fired",
		domain.NewField("alarm_id", id),
		domain.NewField("zone", event.Alarm.IANAZone),
		domain.NewField("trigger_time", event.Alarm.TriggerTime))

	for _, listener := range listeners {
		listener(event)
	}
}

func (s *AlarmServiceImpl) indexOfLocked(id string) int {
	for i, alarm := range s.alarms {
		if alarm.ID == id {
			return i
		}
	}
	return -1
}

func (s *AlarmServiceImpl) persistLocked() error {
	if err := s.repo.SaveAlarms(s.alarms); err != nil {
		s.logger.Warn(context.Background(), "Failed to persist alarms, keeping in-memory change",
			domain.NewField("error", err.Error()))
		return domain.ErrPersistence("alarms", err)
	}
	return nil
}
