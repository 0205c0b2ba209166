// Package lane stacks lanes vertically and positions rails within each lane
// band. Rail assignment is a property of the item, supplied by the dataset
// author: the engine performs no collision detection or rail inference, so
// two items sharing a lane and rail may visually overlap. That is a
// deliberate property of manually curated datasets, not a defect.
package lane

import (
	"github.com/lanekit/lanechart/internal/core/model"
)

// Band is a lane's computed vertical placement.
type Band struct {
	Lane   model.Lane
	Top    float64
	Height float64

	rowHeight  float64
	railOffset float64
}

// Stack computes each lane's top offset (cumulative sum of prior lane
// heights plus the configured gap) and returns the bands together with the
// summed height of the stack.
func Stack(lanes []model.Lane, cfg model.ScaleConfig) ([]Band, float64) {
	bands := make([]Band, 0, len(lanes))
	top := 0.0
	for i, l := range lanes {
		if i > 0 {
			top += cfg.LaneGap
		}
		b := Band{
			Lane:       l,
			Top:        top,
			Height:     bandHeight(l.RailCount(), cfg),
			rowHeight:  cfg.RowHeight,
			railOffset: cfg.RailOffset,
		}
		bands = append(bands, b)
		top += b.Height
	}
	return bands, top
}

// CenterY returns the vertical center for an item on the given rail. Rail 0
// sits in the middle of the first row; rail 1 is a second sub-track rendered
// lower within the same band. Rails beyond the lane's declared count clamp
// to the last rail.
func (b Band) CenterY(rail int) float64 {
	if rail >= 1 && b.Lane.RailCount() > 1 {
		return b.Top + b.rowHeight + b.railOffset
	}
	return b.Top + b.rowHeight/2
}

// bandHeight derives a lane's vertical extent from its rail count: one row,
// plus a lowered half-row holding the second rail.
func bandHeight(rails int, cfg model.ScaleConfig) float64 {
	h := cfg.RowHeight
	if rails > 1 {
		h += cfg.RailOffset + cfg.RowHeight/2
	}
	return h
}
