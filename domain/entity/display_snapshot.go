package entity

// DisplaySnapshot is the fully recomputed per-tick view of one board entry.
// Snapshots are ephemeral: the scheduler rebuilds the whole list every tick
// and nothing retains them in between.
type DisplaySnapshot struct {
	EntryID     string
	DisplayName string
	FlagGlyph   string

	// TimeText and DateText are formatted per the current settings. A failed
	// zone carries the "Error" placeholder in TimeText and Failed set.
	TimeText string
	DateText string

	// UTCOffsetText is "UTC±N" rounded to the nearest whole hour
	UTCOffsetText string

	// HourDeltaFromReference is the rounded hour difference to the reference
	// zone. Zero means no meaningful difference and is suppressed in display.
	HourDeltaFromReference int

	IsDaytime       bool
	InBusinessHours bool

	// SecondsToNextHour drives the optional next-hour countdown
	SecondsToNextHour int

	// Failed marks a snapshot whose zone could not be formatted. The entry
	// still occupies its slot so one bad zone never blanks the board.
	Failed bool
}
