package model

// ScaleConfig carries every tunable the layout core consumes. A single
// config value is injected into each pass; components never redefine their
// own constants.
type ScaleConfig struct {
	// PixelsPerMonth is the single horizontal scale parameter.
	PixelsPerMonth float64 `json:"pixels_per_month" yaml:"pixels_per_month"`
	// PadMonths is the symmetric month padding applied on both sides of the
	// year-aligned domain.
	PadMonths int `json:"pad_months" yaml:"pad_months"`
	// RowHeight is the vertical extent of a single rail row.
	RowHeight float64 `json:"row_height" yaml:"row_height"`
	// RailOffset lowers the second rail's center below the first row.
	RailOffset float64 `json:"rail_offset" yaml:"rail_offset"`
	// MinWidth is the floor applied to bar widths so same-day intervals
	// never collapse to zero.
	MinWidth float64 `json:"min_width" yaml:"min_width"`
	// LaneGap is the fixed vertical gap inserted between lane bands.
	LaneGap float64 `json:"lane_gap" yaml:"lane_gap"`
	// RulerHeight reserves room at the top of the canvas for year labels.
	RulerHeight float64 `json:"ruler_height" yaml:"ruler_height"`
	// MinCanvasWidth is the floor applied to total canvas width.
	MinCanvasWidth float64 `json:"min_canvas_width" yaml:"min_canvas_width"`
	// PointRadius is the radius of point-event markers.
	PointRadius float64 `json:"point_radius" yaml:"point_radius"`
}

// DefaultScaleConfig returns the defaults used when no config file overrides
// them.
func DefaultScaleConfig() ScaleConfig {
	return ScaleConfig{
		PixelsPerMonth: 14,
		PadMonths:      2,
		RowHeight:      28,
		RailOffset:     10,
		MinWidth:       2,
		LaneGap:        6,
		RulerHeight:    24,
		MinCanvasWidth: 640,
		PointRadius:    4,
	}
}
