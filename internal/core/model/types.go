// Package model holds the domain types shared by the layout core and the
// dataset loaders. Items and lanes are constructed once at ingestion and
// treated as immutable afterwards.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// dateFormats lists the accepted date layouts, tried in order.
var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01",
}

// Date is a calendar date parsed from either an ISO-8601 string or an
// already-parsed time value. Parsing never fails the surrounding decode: an
// unparseable string is kept verbatim and reported through Err, so a single
// bad record can be skipped at validation time instead of corrupting the
// whole dataset.
type Date struct {
	Time time.Time
	Raw  string
	err  error
}

// NewDate wraps an already-parsed calendar date.
func NewDate(t time.Time) Date {
	return Date{Time: t.UTC()}
}

// ParseDate parses s using the accepted date layouts.
func ParseDate(s string) Date {
	var d Date
	d.set(s)
	return d
}

func (d *Date) set(s string) {
	d.Raw = strings.TrimSpace(s)
	if d.Raw == "" {
		d.err = fmt.Errorf("empty date")
		return
	}
	for _, layout := range dateFormats {
		t, err := time.Parse(layout, d.Raw)
		if err == nil {
			d.Time = t.UTC()
			d.err = nil
			return
		}
	}
	d.err = fmt.Errorf("unparseable date %q", d.Raw)
}

// Valid reports whether the date parsed successfully.
func (d Date) Valid() bool {
	return d.err == nil && !d.Time.IsZero()
}

// Err returns the parse error, if any.
func (d Date) Err() error {
	return d.err
}

func (d Date) String() string {
	if !d.Valid() {
		return d.Raw
	}
	return d.Time.Format("2006-01-02")
}

// UnmarshalJSON accepts a date string. Parse failures are recorded on the
// value rather than returned, see Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := sonic.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	d.set(s)
	return nil
}

// MarshalJSON renders the date back as an ISO-8601 day string.
func (d Date) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(d.String())
}

// UnmarshalYAML accepts a scalar date string.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("date must be a scalar, got %v", value.Kind)
	}
	d.set(value.Value)
	return nil
}

// TimelineItem is a single dated record within a lane: an interval when End
// is present, a point event when it is absent.
type TimelineItem struct {
	Title  string `json:"title" yaml:"title"`
	Start  Date   `json:"start" yaml:"start"`
	End    *Date  `json:"end,omitempty" yaml:"end,omitempty"`
	Rail   int    `json:"rail,omitempty" yaml:"rail,omitempty"`
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`
	Invert bool   `json:"invert,omitempty" yaml:"invert,omitempty"`
}

// IsPoint reports whether the item is a point event (no end date).
func (it TimelineItem) IsPoint() bool {
	return it.End == nil
}

// EffectiveEnd returns the end date for interval items, or the start date
// for point events.
func (it TimelineItem) EffectiveEnd() Date {
	if it.End != nil {
		return *it.End
	}
	return it.Start
}

// Lane is a named horizontal track grouping related items. Lane order in the
// dataset determines vertical stacking order, top to bottom.
type Lane struct {
	ID    string         `json:"id" yaml:"id"`
	Title string         `json:"title" yaml:"title"`
	Rails int            `json:"rails,omitempty" yaml:"rails,omitempty"`
	Items []TimelineItem `json:"items" yaml:"items"`
}

// RailCount returns the declared rail count clamped to the supported range.
func (l Lane) RailCount() int {
	if l.Rails >= 2 {
		return 2
	}
	return 1
}

// Dataset is the full static input: an ordered collection of lanes.
type Dataset struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Lanes []Lane `json:"lanes" yaml:"lanes"`
}

// Items flattens every lane's items into one slice, in lane order.
func (ds *Dataset) Items() []TimelineItem {
	var items []TimelineItem
	for _, lane := range ds.Lanes {
		items = append(items, lane.Items...)
	}
	return items
}
