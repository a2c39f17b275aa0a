package impl

import (
	"fmt"
	"math"
	"time"

	"github.com/zoneboard/zoneboard/domain/repository"
	"github.com/zoneboard/zoneboard/domain/valueobject"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// ClockMetricsServiceImpl implements ClockMetricsService on top of the time
// source's location resolution. Every method degrades to a zero value when a
// zone cannot be resolved; the tick loop relies on that.
type ClockMetricsServiceImpl struct {
	timeSource repository.TimeSource
}

// NewClockMetricsService creates a new ClockMetricsServiceImpl
func NewClockMetricsService(timeSource repository.TimeSource) usecase.ClockMetricsService {
	return &ClockMetricsServiceImpl{timeSource: timeSource}
}

// UTCOffset formats the zone's offset as "UTC±N" rounded to the nearest
// whole hour
func (s *ClockMetricsServiceImpl) UTCOffset(ianaZone string, instant time.Time) string {
	offsetSeconds, ok := s.offsetSeconds(ianaZone, instant)
	if !ok {
		return ""
	}
	hours := int(math.Round(float64(offsetSeconds) / 3600))
	return fmt.Sprintf("UTC%+d", hours)
}

// HourDelta is the rounded hour difference between the zone and the
// reference zone. Sub-half-hour differences round to zero.
func (s *ClockMetricsServiceImpl) HourDelta(ianaZone, referenceZone string, instant time.Time) int {
	zoneOffset, ok := s.offsetSeconds(ianaZone, instant)
	if !ok {
		return 0
	}
	refOffset, ok := s.offsetSeconds(referenceZone, instant)
	if !ok {
		return 0
	}
	return int(math.Round(float64(zoneOffset-refOffset) / 3600))
}

// IsDaytime reports whether the local hour falls in [6, 20)
func (s *ClockMetricsServiceImpl) IsDaytime(ianaZone string, instant time.Time) bool {
	hour, ok := s.localHour(ianaZone, instant)
	if !ok {
		return false
	}
	return hour >= 6 && hour < 20
}

// InBusinessHours reports whether the local hour falls inside the window
func (s *ClockMetricsServiceImpl) InBusinessHours(ianaZone string, instant time.Time, window valueobject.BusinessHours) bool {
	hour, ok := s.localHour(ianaZone, instant)
	if !ok {
		return false
	}
	return window.Contains(hour)
}

func (s *ClockMetricsServiceImpl) offsetSeconds(ianaZone string, instant time.Time) (int, bool) {
	loc, err := s.timeSource.Location(ianaZone)
	if err != nil {
		return 0, false
	}
	_, offset := instant.In(loc).Zone()
	return offset, true
}

func (s *ClockMetricsServiceImpl) localHour(ianaZone string, instant time.Time) (int, bool) {
	loc, err := s.timeSource.Location(ianaZone)
	if err != nil {
		return 0, false
	}
	return instant.In(loc).Hour(), true
}
