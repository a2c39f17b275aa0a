package service

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/repository"
	"github.com/zoneboard/zoneboard/domain/valueobject"
)

// SystemTimeSource implements the TimeSource interface on top of the
// platform timezone database. Resolved locations are cached for the process
// lifetime since zone data never changes while running.
type SystemTimeSource struct {
	logger domain.Logger

	locationMu sync.RWMutex
	locations  map[string]*time.Location

	localOnce sync.Once
	localZone string
}

// NewSystemTimeSource creates a new SystemTimeSource
func NewSystemTimeSource(logger domain.Logger) *SystemTimeSource {
	return &SystemTimeSource{
		logger:    logger,
		locations: make(map[string]*time.Location),
	}
}

// Read returns the wall-clock reading for the instant in the given zone.
// Pure with respect to its inputs; the only internal state is the location
// cache.
func (s *SystemTimeSource) Read(ianaZone string, instant time.Time, opts repository.ReadOptions) (valueobject.ClockReading, error) {
	loc, err := s.Location(ianaZone)
	if err != nil {
		return valueobject.ClockReading{}, err
	}

	local := instant.In(loc)

	reading := valueobject.ClockReading{
		Minute:   local.Minute(),
		DateText: local.Format("Mon, Jan 2"),
	}
	if opts.ShowSeconds {
		reading.Second = local.Second()
	}

	if opts.Use24Hour {
		reading.Hour = local.Hour()
	} else {
		hour := local.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		reading.Hour = hour
		if local.Hour() < 12 {
			reading.DayPeriod = "AM"
		} else {
			reading.DayPeriod = "PM"
		}
	}

	return reading, nil
}

// Location resolves an IANA identifier, consulting the cache first
func (s *SystemTimeSource) Location(ianaZone string) (*time.Location, error) {
	s.locationMu.RLock()
	loc, ok := s.locations[ianaZone]
	s.locationMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(ianaZone)
	if err != nil {
		return nil, domain.ErrUnknownZone(ianaZone, err)
	}

	s.locationMu.Lock()
	s.locations[ianaZone] = loc
	s.locationMu.Unlock()
	return loc, nil
}

// DetectLocalZone returns the IANA name of the system timezone. Detection
// runs once; failures fall back to UTC.
func (s *SystemTimeSource) DetectLocalZone() string {
	s.localOnce.Do(func() {
		s.localZone = s.detectSystemTimezone()
	})
	return s.localZone
}

// detectSystemTimezone tries the usual detection methods in order
func (s *SystemTimeSource) detectSystemTimezone() string {
	ctx := context.Background()

	// Method 1: time.Local carries a real name on most systems
	if loc := time.Local; loc != nil && loc.String() != "Local" {
		s.logger.Debug(ctx, "Detected timezone using time.Local",
			domain.NewField("timezone", loc.String()))
		return loc.String()
	}

	// Method 2: TZ environment variable
	if tzEnv := os.Getenv("TZ"); tzEnv != "" {
		if loc, err := time.LoadLocation(tzEnv); err == nil {
			s.logger.Debug(ctx, "Detected timezone from TZ environment variable",
				domain.NewField("timezone", loc.String()))
			return loc.String()
		}
		s.logger.Warn(ctx, "Failed to load timezone from TZ environment variable",
			domain.NewField("TZ", tzEnv))
	}

	// Method 3: /etc/localtime symlink (Unix/Linux)
	if linkPath, err := os.Readlink("/etc/localtime"); err == nil {
		parts := strings.Split(linkPath, "/zoneinfo/")
		if len(parts) > 1 {
			if loc, err := time.LoadLocation(parts[1]); err == nil {
				s.logger.Debug(ctx, "Detected timezone from /etc/localtime",
					domain.NewField("timezone", loc.String()))
				return loc.String()
			}
		}
	}

	s.logger.Warn(ctx, "Failed to detect system timezone, using UTC as fallback")
	return "UTC"
}
