package layout

// LabelTone is the contrast hint for a label over its fill. The dataset
// author supplies it through the item's invert flag; the core never computes
// contrast ratios.
type LabelTone string

const (
	// ToneLight is a light label for dark fills (invert false, the default).
	ToneLight LabelTone = "light"
	// ToneDark is a dark label for light fills (invert true).
	ToneDark LabelTone = "dark"
)

// Bar is a drawable interval rectangle with absolute coordinates.
type Bar struct {
	Title  string  `json:"title"`
	LaneID string  `json:"lane"`
	Rail   int     `json:"rail"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   string  `json:"fill,omitempty"`
}

// Point is a drawable point-event marker.
type Point struct {
	Title  string  `json:"title"`
	LaneID string  `json:"lane"`
	Rail   int     `json:"rail"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Fill   string  `json:"fill,omitempty"`
}

// Label is a drawable text anchor. Y is the vertical center of the row the
// label belongs to; baseline placement is the renderer's concern.
type Label struct {
	Text string    `json:"text"`
	X    float64   `json:"x"`
	Y    float64   `json:"y"`
	Tone LabelTone `json:"tone"`
}

// Gridline is a vertical year-boundary tick spanning the canvas.
type Gridline struct {
	Year int     `json:"year"`
	X    float64 `json:"x"`
}

// LaneBand records where a lane's band sits on the canvas, for renderers
// that draw band backgrounds or lane captions.
type LaneBand struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Model is the rendering-ready output of a layout pass: total canvas size
// plus a flat list of primitives with absolute coordinates. It is built
// wholesale per pass and never mutated afterwards; rebuild it when the
// inputs change.
type Model struct {
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Gridlines []Gridline `json:"gridlines"`
	Bands     []LaneBand `json:"bands"`
	Bars      []Bar      `json:"bars"`
	Points    []Point    `json:"points"`
	Labels    []Label    `json:"labels"`
}
