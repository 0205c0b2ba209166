// Package domain resolves the display time-domain from a set of items: the
// earliest start and latest end, expanded to full-year boundaries, then
// padded by a configurable number of months on each side.
package domain

import (
	"errors"
	"time"

	"github.com/lanekit/lanechart/internal/core/datemath"
	"github.com/lanekit/lanechart/internal/core/model"
)

// ErrEmptyDataset is returned when no item carries a usable date. Resolution
// fails fast instead of handing sentinel dates to the scale.
var ErrEmptyDataset = errors.New("cannot compute domain: dataset has no dated items")

// Domain is the resolved [Min, Max] calendar interval the chart displays.
// It is derived, never stored: recompute it whenever the item set changes.
type Domain struct {
	Min time.Time
	Max time.Time
}

// Resolve scans every item's start and effective end, aligns the extremes to
// year boundaries and applies symmetric month padding.
func Resolve(items []model.TimelineItem, padMonths int) (Domain, error) {
	var (
		rawMin, rawMax time.Time
		seen           bool
	)
	for _, it := range items {
		if !it.Start.Valid() {
			continue
		}
		end := it.EffectiveEnd()
		if !end.Valid() {
			end = it.Start
		}
		if !seen {
			rawMin, rawMax = it.Start.Time, end.Time
			seen = true
			continue
		}
		if it.Start.Time.Before(rawMin) {
			rawMin = it.Start.Time
		}
		if end.Time.After(rawMax) {
			rawMax = end.Time
		}
	}
	if !seen {
		return Domain{}, ErrEmptyDataset
	}

	min := datemath.AddMonths(datemath.StartOfYear(rawMin), -padMonths)
	max := datemath.AddMonths(datemath.EndOfYear(rawMax), padMonths)
	return Domain{Min: min, Max: max}, nil
}

// Contains reports whether d lies within the resolved interval.
func (dm Domain) Contains(d time.Time) bool {
	return !d.Before(dm.Min) && !d.After(dm.Max)
}
