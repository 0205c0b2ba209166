// Package layout assembles the date math, domain resolution, time scale and
// lane stacking into a flat list of drawable primitives. The builder is a
// deterministic function of its inputs: the same dataset and config always
// produce an identical model.
package layout

import (
	"github.com/lanekit/lanechart/internal/core/domain"
	"github.com/lanekit/lanechart/internal/core/lane"
	"github.com/lanekit/lanechart/internal/core/model"
	"github.com/lanekit/lanechart/internal/core/scale"
)

const (
	// barHeightRatio sizes a bar relative to its row.
	barHeightRatio = 0.6
	// labelInset pushes the label anchor just inside a bar's left edge, or
	// just past a point marker.
	labelInset = 4.0
)

// Build runs a full layout pass over the dataset. Items with invalid dates
// are expected to have been rejected at ingestion; any that remain are
// skipped here. An empty or fully-invalid dataset returns
// domain.ErrEmptyDataset.
func Build(ds *model.Dataset, cfg model.ScaleConfig) (*Model, error) {
	dom, err := domain.Resolve(ds.Items(), cfg.PadMonths)
	if err != nil {
		return nil, err
	}
	sc := scale.New(dom, cfg.PixelsPerMonth)
	bands, stackHeight := lane.Stack(ds.Lanes, cfg)

	m := &Model{
		Height: stackHeight + cfg.RulerHeight,
		Width:  max(cfg.MinCanvasWidth, float64(sc.TotalMonths())*cfg.PixelsPerMonth),
	}

	for _, tick := range sc.YearTicks() {
		m.Gridlines = append(m.Gridlines, Gridline{Year: tick.Year, X: tick.X})
	}

	for _, band := range bands {
		m.Bands = append(m.Bands, LaneBand{
			ID:     band.Lane.ID,
			Title:  band.Lane.Title,
			Top:    band.Top + cfg.RulerHeight,
			Height: band.Height,
		})
		for _, it := range band.Lane.Items {
			if !it.Start.Valid() {
				continue
			}
			placeItem(m, it, band, sc, cfg)
		}
	}

	return m, nil
}

// placeItem resolves one item's horizontal span through the scale and its
// vertical center through the lane band, then appends the primitive and its
// label.
func placeItem(m *Model, it model.TimelineItem, band lane.Band, sc scale.TimeScale, cfg model.ScaleConfig) {
	xStart := sc.Project(it.Start.Time)
	centerY := band.CenterY(it.Rail) + cfg.RulerHeight
	tone := ToneLight
	if it.Invert {
		tone = ToneDark
	}

	if it.IsPoint() {
		m.Points = append(m.Points, Point{
			Title:  it.Title,
			LaneID: band.Lane.ID,
			Rail:   it.Rail,
			X:      xStart,
			Y:      centerY,
			Radius: cfg.PointRadius,
			Fill:   it.Color,
		})
		m.Labels = append(m.Labels, Label{
			Text: it.Title,
			X:    xStart + cfg.PointRadius + labelInset,
			Y:    centerY,
			Tone: tone,
		})
		return
	}

	xEnd := sc.Project(it.EffectiveEnd().Time)
	width := xEnd - xStart
	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	h := cfg.RowHeight * barHeightRatio

	m.Bars = append(m.Bars, Bar{
		Title:  it.Title,
		LaneID: band.Lane.ID,
		Rail:   it.Rail,
		X:      xStart,
		Y:      centerY - h/2,
		Width:  width,
		Height: h,
		Fill:   it.Color,
	})
	m.Labels = append(m.Labels, Label{
		Text: it.Title,
		X:    xStart + labelInset,
		Y:    centerY,
		Tone: tone,
	})
}
