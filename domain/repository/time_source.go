package repository

import (
	"time"

	"github.com/zoneboard/zoneboard/domain/valueobject"
)

// ReadOptions controls how a clock reading is produced
type ReadOptions struct {
	// Use24Hour selects the 24-hour convention; otherwise the reading is
	// 12-hour with a day period
	Use24Hour bool

	// ShowSeconds requests the seconds component
	ShowSeconds bool
}

// TimeSource adapts the platform's timezone database and formatting. Read is
// a pure function of (zone, instant, opts); it fails with an UNKNOWN_ZONE
// domain error for unresolvable identifiers and callers substitute a
// placeholder rather than aborting the tick.
type TimeSource interface {
	// Read returns the wall-clock reading for the instant in the given zone
	Read(ianaZone string, instant time.Time, opts ReadOptions) (valueobject.ClockReading, error)

	// Location resolves an IANA identifier to a *time.Location
	Location(ianaZone string) (*time.Location, error)

	// DetectLocalZone returns the IANA name of the system timezone, used as
	// the reference zone for hour deltas. Falls back to "UTC".
	DetectLocalZone() string
}
