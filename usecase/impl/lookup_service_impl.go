package impl

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/repository"
	"github.com/zoneboard/zoneboard/domain/valueobject"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// maxMeetingSlots caps the meeting finder's result list
const maxMeetingSlots = 5

// LookupServiceImpl implements LookupService. All three operations are
// stateless; each call works from the catalog and the timezone database.
type LookupServiceImpl struct {
	catalog    repository.CatalogRepository
	timeSource repository.TimeSource
	settings   usecase.SettingsService
	searchDays int
}

// NewLookupService creates a new LookupServiceImpl. searchDays is the length
// of the meeting finder's rolling window.
func NewLookupService(
	catalog repository.CatalogRepository,
	timeSource repository.TimeSource,
	settings usecase.SettingsService,
	searchDays int,
) usecase.LookupService {
	if searchDays <= 0 {
		searchDays = 7
	}
	return &LookupServiceImpl{
		catalog:    catalog,
		timeSource: timeSource,
		settings:   settings,
		searchDays: searchDays,
	}
}

// Search returns catalog entries matching the query case-insensitively on
// either the city name or the zone identifier. An empty query returns the
// full catalog.
func (s *LookupServiceImpl) Search(query string) []repository.CatalogEntry {
	entries := s.catalog.All()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return entries
	}
	return lo.Filter(entries, func(entry repository.CatalogEntry, _ int) bool {
		return strings.Contains(strings.ToLower(entry.Name), query) ||
			strings.Contains(strings.ToLower(entry.IANAZone), query)
	})
}

// Convert interprets timeOfDay as today's wall clock in fromZone and formats
// the same instant in each target zone
func (s *LookupServiceImpl) Convert(timeOfDay, fromZone string, toZones []string) (map[string]string, error) {
	return s.convertAt(time.Now(), timeOfDay, fromZone, toZones)
}

func (s *LookupServiceImpl) convertAt(now time.Time, timeOfDay, fromZone string, toZones []string) (map[string]string, error) {
	parsed, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return nil, domain.ErrInvalidInput("timeOfDay", "must be HH:MM in 24-hour form")
	}

	fromLoc, err := s.timeSource.Location(fromZone)
	if err != nil {
		return nil, err
	}

	today := now.In(fromLoc)
	instant := time.Date(today.Year(), today.Month(), today.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, fromLoc)

	layout := s.timeLayout()
	results := make(map[string]string, len(toZones))
	for _, zone := range toZones {
		loc, locErr := s.timeSource.Location(zone)
		if locErr != nil {
			results[zone] = placeholderTimeText
			continue
		}
		results[zone] = instant.In(loc).Format(layout)
	}
	return results, nil
}

// FindMeetingTimes scans hourly slots over the rolling window and returns
// the earliest slots where every zone sits inside the business-hours window
func (s *LookupServiceImpl) FindMeetingTimes(zones []string, window valueobject.BusinessHours) ([]usecase.MeetingSlot, error) {
	return s.findMeetingTimesFrom(time.Now(), zones, window)
}

func (s *LookupServiceImpl) findMeetingTimesFrom(start time.Time, zones []string, window valueobject.BusinessHours) ([]usecase.MeetingSlot, error) {
	if len(zones) == 0 {
		return nil, domain.ErrInvalidInput("zones", "must not be empty")
	}

	locations := make(map[string]*time.Location, len(zones))
	for _, zone := range zones {
		loc, err := s.timeSource.Location(zone)
		if err != nil {
			return nil, err
		}
		locations[zone] = loc
	}

	layout := s.timeLayout()

	// Begin at the next full hour so every candidate is a round slot
	slot := start.UTC().Truncate(time.Hour).Add(time.Hour)
	end := slot.Add(time.Duration(s.searchDays) * 24 * time.Hour)

	var slots []usecase.MeetingSlot
	for ; slot.Before(end) && len(slots) < maxMeetingSlots; slot = slot.Add(time.Hour) {
		candidate := usecase.MeetingSlot{
			StartUTC:  slot,
			ZoneHours: make(map[string]int, len(zones)),
			ZoneTimes: make(map[string]string, len(zones)),
		}

		fits := true
		for _, zone := range zones {
			local := slot.In(locations[zone])
			if !window.Contains(local.Hour()) {
				fits = false
				break
			}
			candidate.ZoneHours[zone] = local.Hour()
			candidate.ZoneTimes[zone] = local.Format(layout)
		}
		if fits {
			slots = append(slots, candidate)
		}
	}
	return slots, nil
}

func (s *LookupServiceImpl) timeLayout() string {
	if s.settings.Current().Use24HourClock {
		return "15:04"
	}
	return "3:04 PM"
}
