package valueobject

import "testing"

func TestClockReadingTimeText(t *testing.T) {
	tests := []struct {
		name        string
		reading     ClockReading
		showSeconds bool
		want        string
	}{
		{
			name:        "12-hour with seconds",
			reading:     ClockReading{Hour: 3, Minute: 4, Second: 5, DayPeriod: "PM"},
			showSeconds: true,
			want:        "3:04:05 PM",
		},
		{
			name:        "12-hour without seconds",
			reading:     ClockReading{Hour: 12, Minute: 0, DayPeriod: "AM"},
			showSeconds: false,
			want:        "12:00 AM",
		},
		{
			name:        "24-hour with seconds",
			reading:     ClockReading{Hour: 15, Minute: 4, Second: 5},
			showSeconds: true,
			want:        "15:04:05",
		},
		{
			name:        "24-hour zero-padded",
			reading:     ClockReading{Hour: 7, Minute: 9},
			showSeconds: false,
			want:        "07:09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.reading.TimeText(tt.showSeconds); got != tt.want {
				t.Errorf("TimeText() = %q, want %q", got, tt.want)
			}
		})
	}
}
