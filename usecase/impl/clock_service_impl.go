package impl

import (
	"context"
	"sync"
	"time"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
	"github.com/zoneboard/zoneboard/domain/valueobject"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// placeholderTimeText is shown for entries whose zone cannot be formatted
const placeholderTimeText = "Error"

// ClockServiceImpl implements ClockService. A single goroutine owns the
// ticker; ticks run synchronously inside it, so a slow tick delays the next
// one instead of overlapping it.
type ClockServiceImpl struct {
	registry      usecase.RegistryService
	metrics       usecase.ClockMetricsService
	settings      usecase.SettingsService
	timeSource    repository.TimeSource
	logger        domain.Logger
	referenceZone string
	tickInterval  time.Duration

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	wg        sync.WaitGroup
	listeners map[int]usecase.SnapshotListener
	nextID    int
}

// NewClockService creates a stopped clock service. referenceZone is the IANA
// zone hour deltas are computed against, normally the detected system zone.
func NewClockService(
	registry usecase.RegistryService,
	metrics usecase.ClockMetricsService,
	settings usecase.SettingsService,
	timeSource repository.TimeSource,
	referenceZone string,
	tickInterval time.Duration,
	logger domain.Logger,
) *ClockServiceImpl {
	if tickInterval <= 0 {
		tickInterval = time.Second
	}
	return &ClockServiceImpl{
		registry:      registry,
		metrics:       metrics,
		settings:      settings,
		timeSource:    timeSource,
		logger:        logger,
		referenceZone: referenceZone,
		tickInterval:  tickInterval,
		listeners:     make(map[int]usecase.SnapshotListener),
	}
}

// Start begins ticking. No-op when already running.
func (s *ClockServiceImpl) Start() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.stopCh = make(chan struct{})
	stopCh := s.stopCh
	s.mu.Unlock()

	s.logger.Info(context.Background(), "Starting clock updates",
		domain.NewField("interval", s.tickInterval.String()),
		domain.NewField("reference_zone", s.referenceZone))

	s.wg.Add(1)
	go s.run(stopCh)
	return nil
}

// Stop cancels the pending timer. Idempotent.
func (s *ClockServiceImpl) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info(context.Background(), "Clock updates stopped")
}

// IsRunning reports whether the scheduler is ticking
func (s *ClockServiceImpl) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *ClockServiceImpl) run(stopCh chan struct{}) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	// Publish immediately so the board never shows a blank second
	s.Tick(time.Now())

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			s.Tick(now)
		}
	}
}

// Tick recomputes snapshots for every visible entry and publishes the list.
// Snapshots are rebuilt from scratch each call; nothing carries over.
func (s *ClockServiceImpl) Tick(now time.Time) []entity.DisplaySnapshot {
	entries := s.registry.ListVisible()
	record := s.settings.Current()
	window := s.settings.BusinessHours()

	snapshots := make([]entity.DisplaySnapshot, 0, len(entries))
	for _, entry := range entries {
		snapshots = append(snapshots, s.buildSnapshot(entry, now, record, window))
	}

	s.publish(snapshots)
	return snapshots
}

// RefreshNow triggers an out-of-cadence tick without touching the schedule
func (s *ClockServiceImpl) RefreshNow() {
	s.Tick(time.Now())
}

// Subscribe registers a snapshot listener
func (s *ClockServiceImpl) Subscribe(listener usecase.SnapshotListener) func() {
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

func (s *ClockServiceImpl) publish(snapshots []entity.DisplaySnapshot) {
	s.mu.Lock()
	listeners := make([]usecase.SnapshotListener, 0, len(s.listeners))
	for _, listener := range s.listeners {
		listeners = append(listeners, listener)
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshots)
	}
}

// buildSnapshot computes the display snapshot for one entry. An unresolvable
// zone yields a placeholder so the other entries keep updating.
func (s *ClockServiceImpl) buildSnapshot(
	entry *entity.TimezoneEntry,
	now time.Time,
	record *entity.SettingsRecord,
	window valueobject.BusinessHours,
) entity.DisplaySnapshot {
	snapshot := entity.DisplaySnapshot{
		EntryID:     entry.ID,
		DisplayName: entry.Label(),
		FlagGlyph:   entry.FlagGlyph,
	}

	reading, err := s.timeSource.Read(entry.IANAZone, now, repository.ReadOptions{
		Use24Hour:   record.Use24HourClock,
		ShowSeconds: record.ShowSeconds,
	})
	if err != nil {
		s.logger.Warn(context.Background(), "Failed to format timezone entry",
			domain.NewField("entry_id", entry.ID),
			domain.NewField("zone", entry.IANAZone),
			domain.NewField("error", err.Error()))
		snapshot.TimeText = placeholderTimeText
		snapshot.Failed = true
		return snapshot
	}

	snapshot.TimeText = reading.TimeText(record.ShowSeconds)
	snapshot.DateText = reading.DateText
	snapshot.UTCOffsetText = s.metrics.UTCOffset(entry.IANAZone, now)
	snapshot.HourDeltaFromReference = s.metrics.HourDelta(entry.IANAZone, s.referenceZone, now)
	snapshot.IsDaytime = s.metrics.IsDaytime(entry.IANAZone, now)

	if loc, locErr := s.timeSource.Location(entry.IANAZone); locErr == nil {
		local := now.In(loc)
		snapshot.InBusinessHours = window.Contains(local.Hour())
		snapshot.SecondsToNextHour = 3600 - 60*local.Minute() - local.Second()
	}

	return snapshot
}
