package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoneboard/zoneboard/domain/entity"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

func newTestClockService() (*ClockServiceImpl, usecase.RegistryService) {
	repo := &memRepo{}
	registry := NewRegistryService(repo, nopLogger{})
	settings := NewSettingsService(repo, nopLogger{})
	metrics := NewClockMetricsService(stubTimeSource{})
	clock := NewClockService(registry, metrics, settings, stubTimeSource{}, "UTC", time.Second, nopLogger{})
	return clock, registry
}

func TestClockServiceTick(t *testing.T) {
	clock, _ := newTestClockService()

	snapshots := clock.Tick(winterInstant)
	require.Len(t, snapshots, 4)

	ny := snapshots[0]
	assert.Equal(t, "est", ny.EntryID)
	assert.Equal(t, "New York", ny.DisplayName)
	assert.False(t, ny.Failed)
	// 12:00 UTC is 07:00 in New York during winter, 12-hour default
	assert.Equal(t, "7:00:00 AM", ny.TimeText)
	assert.Equal(t, "UTC-5", ny.UTCOffsetText)
	assert.Equal(t, -5, ny.HourDeltaFromReference)
	assert.True(t, ny.IsDaytime)
	assert.False(t, ny.InBusinessHours)
	assert.Equal(t, 3600, ny.SecondsToNextHour)

	rome := snapshots[3]
	assert.Equal(t, "italy", rome.EntryID)
	// 13:00 in Rome sits inside the default 9-17 window
	assert.True(t, rome.InBusinessHours)
}

func TestClockServiceTickIsolatesFailures(t *testing.T) {
	clock, registry := newTestClockService()

	bad, err := registry.AddCustom(usecase.AddCustomInput{IANAZone: "Mars/Olympus", DisplayName: "Nowhere"})
	require.NoError(t, err)

	snapshots := clock.Tick(winterInstant)
	require.Len(t, snapshots, 5, "a broken entry must not suppress the others")

	failed := snapshots[4]
	assert.Equal(t, bad.ID, failed.EntryID)
	assert.True(t, failed.Failed)
	assert.Equal(t, "Error", failed.TimeText)
	assert.Empty(t, failed.UTCOffsetText)

	for _, snapshot := range snapshots[:4] {
		assert.False(t, snapshot.Failed)
		assert.NotEqual(t, "Error", snapshot.TimeText)
	}
}

func TestClockServiceSecondsToNextHour(t *testing.T) {
	clock, _ := newTestClockService()

	// 12:59:30 UTC leaves 30 seconds in the hour everywhere on whole-hour zones
	instant := time.Date(2024, 1, 15, 12, 59, 30, 0, time.UTC)
	snapshots := clock.Tick(instant)
	assert.Equal(t, 30, snapshots[0].SecondsToNextHour)
}

func TestClockServiceSubscribe(t *testing.T) {
	clock, _ := newTestClockService()

	var received [][]entity.DisplaySnapshot
	unsubscribe := clock.Subscribe(func(snapshots []entity.DisplaySnapshot) {
		received = append(received, snapshots)
	})

	clock.Tick(winterInstant)
	require.Len(t, received, 1)
	assert.Len(t, received[0], 4)

	unsubscribe()
	clock.Tick(winterInstant)
	assert.Len(t, received, 1, "unsubscribed listeners must not be called")
}

func TestClockServiceStartStop(t *testing.T) {
	clock, _ := newTestClockService()

	assert.False(t, clock.IsRunning())

	require.NoError(t, clock.Start())
	assert.True(t, clock.IsRunning())

	// Starting again is a no-op
	require.NoError(t, clock.Start())

	clock.Stop()
	assert.False(t, clock.IsRunning())

	// Stopping again is a no-op
	clock.Stop()

	// The service can be restarted after a stop
	require.NoError(t, clock.Start())
	assert.True(t, clock.IsRunning())
	clock.Stop()
}
