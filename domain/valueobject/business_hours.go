package valueobject

import (
	"github.com/zoneboard/zoneboard/domain"
)

// BusinessHours is a validated half-open working window [Start, End) in
// whole local hours.
type BusinessHours struct {
	Start int
	End   int
}

// NewBusinessHours validates and creates a business-hours window
func NewBusinessHours(start, end int) (BusinessHours, error) {
	if start < 0 || start > 23 {
		return BusinessHours{}, domain.ErrInvalidInput("start", "must be between 0 and 23")
	}
	if end < 0 || end > 23 {
		return BusinessHours{}, domain.ErrInvalidInput("end", "must be between 0 and 23")
	}
	if start >= end {
		return BusinessHours{}, domain.ErrInvalidInput("businessHours", "start must be before end")
	}
	return BusinessHours{Start: start, End: end}, nil
}

// Contains reports whether the local hour falls inside the window. The end
// hour itself is outside: Contains(17) is false for a 9-17 window.
func (b BusinessHours) Contains(hour int) bool {
	return hour >= b.Start && hour < b.End
}
