// Package timeutil provides the minute-of-day arithmetic shared by the
// scheduling engine. All scheduling math is integer minutes; hours are only
// produced for display and report aggregation.
package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 24 * 60

// ErrInvalidFormat is returned when a clock string is not of the form "HH:MM".
var ErrInvalidFormat = errors.New("timeutil: invalid time format")

// DateKeyLayout is the canonical layout for per-day keys.
const DateKeyLayout = "2006-01-02"

// ToMinutes converts a "HH:MM" clock string into minutes since midnight.
func ToMinutes(value string) (int, error) {
	if len(value) != 5 || value[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if value[i] < '0' || value[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
		}
	}
	hours := int(value[0]-'0')*10 + int(value[1]-'0')
	minutes := int(value[3]-'0')*10 + int(value[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
	return hours*60 + minutes, nil
}

// ToTimeString converts minutes since midnight into a "HH:MM" clock string.
// Inputs outside [0, 1440) wrap modulo one day, so negative values and values
// past midnight render as the equivalent clock time.
func ToTimeString(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SpanDuration returns the length in minutes of the span from start to end.
// An end before its start means the span crosses midnight into the next day.
func SpanDuration(start, end int) int {
	if end < start {
		return end + MinutesPerDay - start
	}
	return end - start
}

// MinutesToHours converts a minute count to fractional hours. Display only;
// scheduling arithmetic stays in integer minutes.
func MinutesToHours(minutes int) float64 {
	return float64(minutes) / 60.0
}

// SpanDurationHours returns the span length in fractional hours.
func SpanDurationHours(start, end int) float64 {
	return MinutesToHours(SpanDuration(start, end))
}

// DateKey formats a timestamp as its "YYYY-MM-DD" day key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a "YYYY-MM-DD" day key into a timestamp at midnight in
// the supplied location. A nil location falls back to UTC.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, key)
	}
	return t, nil
}

// MinuteOfDay returns the minutes elapsed since midnight for the timestamp.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// FixedOffsetLocation builds the single fixed-offset location used for
// "current time" comparisons. No timezone database lookups are involved.
func FixedOffsetLocation(offsetMinutes int) *time.Location {
	if offsetMinutes == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+d", offsetMinutes/60), offsetMinutes*60)
}
