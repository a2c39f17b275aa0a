package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/repository"
	"github.com/zoneboard/zoneboard/infrastructure/logging"
)

func newTestTimeSource() *SystemTimeSource {
	return NewSystemTimeSource(&logging.NoOpLogger{})
}

func TestSystemTimeSourceRead(t *testing.T) {
	source := newTestTimeSource()

	// 2024-01-15 18:30:45 UTC is 13:30:45 in New York (UTC-5, winter)
	instant := time.Date(2024, 1, 15, 18, 30, 45, 0, time.UTC)

	t.Run("24-hour with seconds", func(t *testing.T) {
		reading, err := source.Read("America/New_York", instant, repository.ReadOptions{
			Use24Hour:   true,
			ShowSeconds: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, 13, reading.Hour)
		assert.Equal(t, 30, reading.Minute)
		assert.Equal(t, 45, reading.Second)
		assert.Empty(t, reading.DayPeriod)
		assert.Equal(t, "Mon, Jan 15", reading.DateText)
		assert.Equal(t, "13:30:45", reading.TimeText(true))
	})

	t.Run("12-hour afternoon", func(t *testing.T) {
		reading, err := source.Read("America/New_York", instant, repository.ReadOptions{
			ShowSeconds: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, reading.Hour)
		assert.Equal(t, "PM", reading.DayPeriod)
		assert.Equal(t, "1:30:45 PM", reading.TimeText(true))
	})

	t.Run("12-hour midnight reads as 12 AM", func(t *testing.T) {
		midnight := time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC)
		reading, err := source.Read("America/New_York", midnight, repository.ReadOptions{})
		assert.NoError(t, err)
		assert.Equal(t, 12, reading.Hour)
		assert.Equal(t, "AM", reading.DayPeriod)
	})

	t.Run("seconds omitted when hidden", func(t *testing.T) {
		reading, err := source.Read("America/New_York", instant, repository.ReadOptions{
			Use24Hour: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, 0, reading.Second)
	})
}

func TestSystemTimeSourceLocation(t *testing.T) {
	source := newTestTimeSource()

	t.Run("resolves and caches", func(t *testing.T) {
		first, err := source.Location("Asia/Tokyo")
		assert.NoError(t, err)

		second, err := source.Location("Asia/Tokyo")
		assert.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("unknown zone", func(t *testing.T) {
		_, err := source.Location("Mars/Olympus")
		assert.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnknownZone))
	})
}

func TestSystemTimeSourceReadUnknownZone(t *testing.T) {
	source := newTestTimeSource()

	_, err := source.Read("Not/AZone", time.Now(), repository.ReadOptions{})
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnknownZone))
}

func TestDetectLocalZone(t *testing.T) {
	source := newTestTimeSource()

	zone := source.DetectLocalZone()
	if zone == "" {
		t.Fatal("Expected a non-empty zone name")
	}
	if _, err := time.LoadLocation(zone); err != nil {
		t.Errorf("Detected zone %q does not resolve: %v", zone, err)
	}

	// Detection is memoized
	if again := source.DetectLocalZone(); again != zone {
		t.Errorf("Expected stable detection, got %q then %q", zone, again)
	}
}
