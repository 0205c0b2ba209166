// Package scale maps calendar dates to horizontal pixel offsets. A TimeScale
// is a pure value object of its domain and the pixels-per-month constant;
// rebuild it whenever either changes.
package scale

import (
	"time"

	"github.com/lanekit/lanechart/internal/core/datemath"
	"github.com/lanekit/lanechart/internal/core/domain"
)

// TimeScale converts dates into x offsets at whole-month granularity with
// within-month linear interpolation. Project is monotonically non-decreasing
// across the domain, so interval bars can never come out with negative width.
type TimeScale struct {
	domain         domain.Domain
	pixelsPerMonth float64
	origin         time.Time
}

// Tick marks a year boundary gridline.
type Tick struct {
	Year int
	X    float64
}

// New builds a scale from a resolved domain and the pixels-per-month
// constant.
func New(dom domain.Domain, pixelsPerMonth float64) TimeScale {
	return TimeScale{
		domain:         dom,
		pixelsPerMonth: pixelsPerMonth,
		origin:         datemath.StartOfMonth(dom.Min),
	}
}

// Domain returns the domain the scale was built from.
func (s TimeScale) Domain() domain.Domain {
	return s.domain
}

// Project returns the horizontal offset of d relative to the month-aligned
// domain origin. Whole months contribute exact multiples of pixelsPerMonth;
// the day within the month contributes a fraction of one month's width, so
// the same day-of-month lands slightly differently in February than in July.
func (s TimeScale) Project(d time.Time) float64 {
	som := datemath.StartOfMonth(d)
	months := datemath.MonthsBetween(s.origin, som)
	monthLen := datemath.StartOfNextMonth(d).Sub(som)
	frac := float64(d.Sub(som)) / float64(monthLen)
	return (float64(months) + frac) * s.pixelsPerMonth
}

// TotalMonths is the number of month columns spanned by the domain,
// inclusive of the partial last month.
func (s TimeScale) TotalMonths() int {
	return datemath.MonthsBetween(s.origin, datemath.StartOfMonth(s.domain.Max)) + 1
}

// YearTicks returns one tick per calendar year from the domain's first year
// through its last, each positioned at the projection of January 1.
func (s TimeScale) YearTicks() []Tick {
	first := s.domain.Min.Year()
	last := s.domain.Max.Year()
	ticks := make([]Tick, 0, last-first+1)
	for year := first; year <= last; year++ {
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, s.domain.Min.Location())
		ticks = append(ticks, Tick{Year: year, X: s.Project(jan1)})
	}
	return ticks
}
