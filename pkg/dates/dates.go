// Package dates holds the calendar date helpers shared by the store, CLI,
// and TUI. All day keys are derived from local wall-clock components, never
// UTC, so entries captured late at night land on the day the dreamer slept.
package dates

import (
	"fmt"
	"time"
)

const (
	// DayKeyLayout is the wire form of a day key.
	DayKeyLayout = "2006-01-02"

	layoutUS = "January 2, 2006"
)

// DayKey returns the zero-padded YYYY-MM-DD key for t using t's own local
// year/month/day components.
func DayKey(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// DaysInMonth returns the day count for the month identified by a zero-based
// month index. It asks for the 0th day of the following month and lets
// time.Date normalize. Indexes outside 0–11 roll into adjacent years, which
// the month navigation relies on.
func DaysInMonth(year, month0 int) int {
	return time.Date(year, time.Month(month0+2), 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday returns the weekday of the first of the month, 0 = Sunday.
// This is the count of leading blank cells in a Sunday-aligned grid.
func FirstWeekday(year, month0 int) int {
	return int(time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.Local).Weekday())
}

// ParseDayKey parses a YYYY-MM-DD key into a local midnight time.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, time.Local)
}

// Format renders a day key as "January 2, 2006". Unparsable keys are
// returned as-is.
func Format(key string) string {
	t, err := ParseDayKey(key)
	if err != nil {
		return key
	}
	return t.Format(layoutUS)
}
