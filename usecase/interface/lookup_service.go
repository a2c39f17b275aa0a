package usecase

import (
	"time"

	"github.com/zoneboard/zoneboard/domain/repository"
	"github.com/zoneboard/zoneboard/domain/valueobject"
)

// MeetingSlot is one candidate meeting hour where every requested zone sits
// inside its business-hours window
type MeetingSlot struct {
	// StartUTC is the slot's start instant
	StartUTC time.Time

	// ZoneHours maps each zone to its local hour at the slot start
	ZoneHours map[string]int

	// ZoneTimes maps each zone to formatted local display text
	ZoneTimes map[string]string
}

// LookupService bundles the on-demand utilities layered over the catalog and
// the timezone database: search, cross-zone conversion and the meeting-time
// finder.
type LookupService interface {
	// Search returns catalog entries whose name or zone identifier contains
	// the query, case-insensitively. An empty query returns the full
	// catalog. Recomputed per call; no hidden state.
	Search(query string) []repository.CatalogEntry

	// Convert interprets timeOfDay ("HH:MM", 24-hour) as occurring today in
	// fromZone and formats the same instant in every target zone. Target
	// zones that cannot be resolved map to the "Error" placeholder.
	Convert(timeOfDay, fromZone string, toZones []string) (map[string]string, error)

	// FindMeetingTimes scans hourly slots over the rolling search window and
	// returns the earliest slots (at most five) where every zone is inside
	// the business-hours window simultaneously.
	FindMeetingTimes(zones []string, window valueobject.BusinessHours) ([]MeetingSlot, error)
}
