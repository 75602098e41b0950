// Package calendar implements the date keying and month-grid logic used to
// bucket events by day.
package calendar

import (
	"fmt"
	"time"
)

// DateFormat is the canonical wire format for calendar dates.
const DateFormat = "2006-01-02"

// DateKey formats t as YYYY-MM-DD using its calendar fields in t's own
// location. It deliberately avoids converting through UTC: near midnight in
// a negative-offset zone a UTC-based conversion shifts the key by one day.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a strict YYYY-MM-DD string into a local-time date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DaysInMonth returns the number of days in the given month, using the
// day-zero-of-next-month rule.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// DayCell is one position in a month grid: either a leading blank used to
// align day 1 under its weekday column, or a cell bound to a calendar date.
type DayCell struct {
	Day  int    `json:"day"`            // 1-based day of month, 0 for a blank
	Date string `json:"date,omitempty"` // YYYY-MM-DD, empty for a blank
}

// Blank reports whether the cell is alignment padding.
func (c DayCell) Blank() bool {
	return c.Day == 0
}

// MonthGrid produces the ordered cells of a month view whose weeks start on
// Monday: first the blanks that push day 1 under its weekday column, then
// one dated cell per day of the month.
func MonthGrid(year int, month time.Month) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	blanks := int(first.Weekday()) - 1
	if first.Weekday() == time.Sunday {
		blanks = 6
	}
	days := DaysInMonth(year, month)

	cells := make([]DayCell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, DayCell{})
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, DayCell{
			Day:  day,
			Date: DateKey(time.Date(year, month, day, 0, 0, 0, 0, time.Local)),
		})
	}
	return cells
}

// BucketDates counts occurrences per date key. Events are assigned to grid
// cells by exact string equality of their date against the cell's key.
func BucketDates(dates []string) map[string]int {
	buckets := make(map[string]int, len(dates))
	for _, d := range dates {
		buckets[d]++
	}
	return buckets
}
