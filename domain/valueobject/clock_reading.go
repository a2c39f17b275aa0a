package valueobject

import (
	"fmt"
)

// ClockReading is the wall-clock view of one instant in one timezone, as
// produced by the time source. Hour already follows the requested 12- or
// 24-hour convention; DayPeriod is set only in 12-hour mode.
type ClockReading struct {
	Hour      int
	Minute    int
	Second    int
	DayPeriod string
	DateText  string
}

// TimeText renders the reading as display text. Twelve-hour readings carry
// their day period ("3:04:05 PM"), twenty-four-hour readings are zero-padded
// ("15:04:05").
func (r ClockReading) TimeText(showSeconds bool) string {
	if r.DayPeriod != "" {
		if showSeconds {
			return fmt.Sprintf("%d:%02d:%02d %s", r.Hour, r.Minute, r.Second, r.DayPeriod)
		}
		return fmt.Sprintf("%d:%02d %s", r.Hour, r.Minute, r.DayPeriod)
	}
	if showSeconds {
		return fmt.Sprintf("%02d:%02d:%02d", r.Hour, r.Minute, r.Second)
	}
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}
