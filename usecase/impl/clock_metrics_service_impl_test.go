package impl

import (
	"testing"
	"time"

	"github.com/zoneboard/zoneboard/domain/valueobject"
)

var (
	winterInstant = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	summerInstant = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
)

func TestClockMetricsUTCOffset(t *testing.T) {
	metrics := NewClockMetricsService(stubTimeSource{})

	tests := []struct {
		name    string
		zone    string
		instant time.Time
		want    string
	}{
		{"New York winter", "America/New_York", winterInstant, "UTC-5"},
		{"New York summer follows DST", "America/New_York", summerInstant, "UTC-4"},
		{"Rome winter", "Europe/Rome", winterInstant, "UTC+1"},
		{"UTC itself", "UTC", winterInstant, "UTC+0"},
		{"Kolkata rounds the half hour up", "Asia/Kolkata", winterInstant, "UTC+6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.UTCOffset(tt.zone, tt.instant); got != tt.want {
				t.Errorf("UTCOffset(%s) = %q, want %q", tt.zone, got, tt.want)
			}
		})
	}

	t.Run("unknown zone yields empty text", func(t *testing.T) {
		if got := metrics.UTCOffset("Mars/Olympus", winterInstant); got != "" {
			t.Errorf("Expected empty offset, got %q", got)
		}
	})
}

func TestClockMetricsHourDelta(t *testing.T) {
	metrics := NewClockMetricsService(stubTimeSource{})

	tests := []struct {
		name      string
		zone      string
		reference string
		instant   time.Time
		want      int
	}{
		{"NY ahead of LA", "America/New_York", "America/Los_Angeles", winterInstant, 3},
		{"LA behind NY", "America/Los_Angeles", "America/New_York", winterInstant, -3},
		{"same zone", "Europe/Rome", "Europe/Rome", winterInstant, 0},
		{"Kolkata vs UTC rounds up", "Asia/Kolkata", "UTC", winterInstant, 6},
		{"Rome vs NY winter", "Europe/Rome", "America/New_York", winterInstant, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.HourDelta(tt.zone, tt.reference, tt.instant); got != tt.want {
				t.Errorf("HourDelta(%s, %s) = %d, want %d", tt.zone, tt.reference, got, tt.want)
			}
		})
	}

	t.Run("unknown zone yields zero", func(t *testing.T) {
		if got := metrics.HourDelta("Mars/Olympus", "UTC", winterInstant); got != 0 {
			t.Errorf("Expected 0 delta, got %d", got)
		}
	})
}

func TestClockMetricsIsDaytime(t *testing.T) {
	metrics := NewClockMetricsService(stubTimeSource{})

	// Daytime window is [6, 20) local
	tests := []struct {
		name    string
		instant time.Time
		want    bool
	}{
		{"06:00 is daytime", time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC), true},
		{"12:00 is daytime", time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), true},
		{"19:59 is daytime", time.Date(2024, 1, 15, 19, 59, 0, 0, time.UTC), true},
		{"20:00 is night", time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC), false},
		{"05:59 is night", time.Date(2024, 1, 15, 5, 59, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.IsDaytime("UTC", tt.instant); got != tt.want {
				t.Errorf("IsDaytime = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestClockMetricsInBusinessHours(t *testing.T) {
	metrics := NewClockMetricsService(stubTimeSource{})
	window := valueobject.BusinessHours{Start: 9, End: 17}

	// 14:00 UTC is 09:00 in New York during winter
	inside := time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)
	if !metrics.InBusinessHours("America/New_York", inside, window) {
		t.Error("Expected 09:00 New York inside a 9-17 window")
	}

	// 22:00 UTC is 17:00 in New York; the end hour is outside
	boundary := time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)
	if metrics.InBusinessHours("America/New_York", boundary, window) {
		t.Error("Expected 17:00 New York outside a 9-17 window")
	}

	if metrics.InBusinessHours("Mars/Olympus", inside, window) {
		t.Error("Expected unknown zone outside any window")
	}
}
