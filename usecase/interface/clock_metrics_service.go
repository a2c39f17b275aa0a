package usecase

import (
	"time"

	"github.com/zoneboard/zoneboard/domain/valueobject"
)

// ClockMetricsService computes the derived display values for one timezone
// at one instant. All methods are pure and degrade to zero values (empty
// string, 0, false) when the zone cannot be resolved; they never panic or
// propagate errors into the tick loop.
type ClockMetricsService interface {
	// UTCOffset formats the zone's offset as "UTC±N", rounded to the nearest
	// whole hour. Half-hour zones round; Asia/Kolkata reports UTC+6.
	UTCOffset(ianaZone string, instant time.Time) string

	// HourDelta is the rounded signed hour difference between the zone and
	// the reference zone. Differences under half an hour round to zero and
	// are treated as no difference.
	HourDelta(ianaZone, referenceZone string, instant time.Time) int

	// IsDaytime reports whether the local hour falls in [6, 20). A fixed
	// heuristic, not sunrise/sunset-accurate.
	IsDaytime(ianaZone string, instant time.Time) bool

	// InBusinessHours reports whether the local hour falls inside the window
	InBusinessHours(ianaZone string, instant time.Time, window valueobject.BusinessHours) bool
}
