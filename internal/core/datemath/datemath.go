// Package datemath provides month-granular calendar arithmetic for the
// layout core. All functions are pure and total over valid calendar dates;
// day-of-month overflow follows time.Date normalization.
package datemath

import "time"

// StartOfMonth returns midnight on the first day of d's month.
func StartOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
}

// StartOfNextMonth returns midnight on the first day of the month after d's.
func StartOfNextMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, d.Location())
}

// StartOfYear returns midnight on January 1 of d's year.
func StartOfYear(d time.Time) time.Time {
	return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, d.Location())
}

// EndOfYear returns the last representable instant of December 31 of d's year.
func EndOfYear(d time.Time) time.Time {
	return time.Date(d.Year()+1, time.January, 1, 0, 0, 0, 0, d.Location()).Add(-time.Nanosecond)
}

// AddMonths shifts d by n months. n may be negative; year rollover is
// handled by time.Date normalization.
func AddMonths(d time.Time, n int) time.Time {
	return time.Date(d.Year(), d.Month()+time.Month(n), d.Day(),
		d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

// MonthsBetween returns the integer month count from a to b, ignoring
// day-of-month: (b.year-a.year)*12 + (b.month-a.month). Negative when b
// precedes a's month.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
