// Package calendar computes the month grid the calendar views render.
package calendar

import (
	"strconv"
	"time"

	"tableflip.dev/dreamlog/pkg/dates"
	"tableflip.dev/dreamlog/pkg/entry"
)

// Month identifies a calendar month as a (year, zero-based month) pair.
type Month struct {
	Year   int
	Month0 int
}

// ThisMonth returns the month containing now.
func ThisMonth(now time.Time) Month {
	return Month{Year: now.Year(), Month0: int(now.Month()) - 1}
}

// shift builds the first-of-month shifted by delta months and lets calendar
// rollover produce the adjacent year across December/January boundaries.
func (m Month) shift(delta int) Month {
	t := time.Date(m.Year, time.Month(m.Month0+1+delta), 1, 0, 0, 0, 0, time.Local)
	return Month{Year: t.Year(), Month0: int(t.Month()) - 1}
}

// Prev returns the previous month.
func (m Month) Prev() Month {
	return m.shift(-1)
}

// Next returns the following month.
func (m Month) Next() Month {
	return m.shift(1)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return dates.DaysInMonth(m.Year, m.Month0)
}

// Lead returns the count of leading blank cells in a Sunday-aligned grid.
func (m Month) Lead() int {
	return dates.FirstWeekday(m.Year, m.Month0)
}

// DayKey returns the date key for a day of this month.
func (m Month) DayKey(day int) string {
	return dates.DayKey(time.Date(m.Year, time.Month(m.Month0+1), day, 0, 0, 0, 0, time.Local))
}

// Title renders the month as "January 2006".
func (m Month) Title() string {
	return time.Date(m.Year, time.Month(m.Month0+1), 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}

// Cell is one day of the grid.
type Cell struct {
	Day    int
	Key    string
	Count  int
	Symbol string // symbol of the day's newest entry, empty when Count == 0
	Today  bool
}

// HasEntries reports whether the day is selectable for detail inspection.
func (c Cell) HasEntries() bool {
	return c.Count > 0
}

// Badge returns the "+N" overflow marker, empty unless more than one entry
// exists for the day.
func (c Cell) Badge() string {
	if c.Count <= 1 {
		return ""
	}
	return "+" + strconv.Itoa(c.Count-1)
}

// Grid builds one cell per day of the month from the date-key buckets.
// Buckets are expected to be newest first, so the symbol shown is the day's
// most recent capture.
func (m Month) Grid(buckets map[string][]*entry.Entry, now time.Time) []Cell {
	today := dates.DayKey(now)
	cells := make([]Cell, 0, m.Days())
	for day := 1; day <= m.Days(); day++ {
		key := m.DayKey(day)
		cell := Cell{
			Day:   day,
			Key:   key,
			Today: key == today,
		}
		if bucket := buckets[key]; len(bucket) > 0 {
			cell.Count = len(bucket)
			cell.Symbol = bucket[0].Symbol
		}
		cells = append(cells, cell)
	}
	return cells
}
