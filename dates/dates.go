// Package dates provides small calendar helpers for formatting dates and
// shifting them by whole days.
package dates

import (
	"fmt"
	"time"
)

// FormatDate formats t as "YYYY-MM-DD" using the calendar fields of t in its
// own location. The year is written without padding, so years before 1000
// have fewer than four digits and years after 9999 have more.
//
// Example:
//
//	input:  2023-05-07 14:30:00
//	output: "2023-05-07"
func FormatDate(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%d-%02d-%02d", year, int(month), day)
}

// AddDays returns t shifted by days calendar days. The shift happens in t's
// location with the wall clock preserved, and day overflow carries into the
// month and year (Jan 31 + 1 is Feb 1, Mar 1 - 1 is the last day of Feb).
// t itself is not modified.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// Range returns count dates beginning at start, each step days after the
// previous one. A count of zero or less yields an empty slice.
func Range(start time.Time, count, step int) []time.Time {
	if count <= 0 {
		return []time.Time{}
	}
	out := make([]time.Time, count)
	for i := range out {
		out[i] = AddDays(start, i*step)
	}
	return out
}
