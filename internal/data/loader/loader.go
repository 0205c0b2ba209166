// Package loader reads lane datasets from YAML or JSON files and applies
// the ingestion validation policy: items with unparseable dates are rejected
// individually, inverted intervals are clamped, and every correction is
// surfaced as a warning instead of aborting the whole chart.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/lanekit/lanechart/internal/core/model"
)

// WarningKind classifies a validation correction.
type WarningKind string

const (
	WarnInvalidDate      WarningKind = "invalid_date"
	WarnInvertedInterval WarningKind = "inverted_interval"
	WarnRailOutOfRange   WarningKind = "rail_out_of_range"
)

// Warning records one skipped or corrected item.
type Warning struct {
	LaneID string
	Item   string
	Kind   WarningKind
	Detail string
}

func (w Warning) String() string {
	return fmt.Sprintf("lane %s, item %q: %s (%s)", w.LaneID, w.Item, w.Kind, w.Detail)
}

// Load reads and validates a dataset file. The format is chosen by file
// extension: .yaml/.yml or .json. The returned dataset contains only items
// that survived validation; everything rejected or corrected is listed in
// the warnings.
func Load(path string) (*model.Dataset, []Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds model.Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, nil, fmt.Errorf("parsing YAML dataset: %w", err)
		}
	case ".json":
		if err := sonic.Unmarshal(data, &ds); err != nil {
			return nil, nil, fmt.Errorf("parsing JSON dataset: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}

	warnings := Sanitize(&ds)
	return &ds, warnings, nil
}

// Sanitize applies the validation policy in place and returns the warnings.
// Items whose start or end failed to parse are dropped; an end before its
// start is clamped to the start; rail indexes are clamped to the lane's
// declared rails.
func Sanitize(ds *model.Dataset) []Warning {
	var warnings []Warning

	for li := range ds.Lanes {
		lane := &ds.Lanes[li]
		kept := lane.Items[:0]
		for _, it := range lane.Items {
			if !it.Start.Valid() {
				warnings = append(warnings, Warning{
					LaneID: lane.ID, Item: it.Title,
					Kind: WarnInvalidDate, Detail: fmt.Sprintf("start: %v", it.Start.Err()),
				})
				continue
			}
			if it.End != nil && !it.End.Valid() {
				warnings = append(warnings, Warning{
					LaneID: lane.ID, Item: it.Title,
					Kind: WarnInvalidDate, Detail: fmt.Sprintf("end: %v", it.End.Err()),
				})
				continue
			}
			if it.End != nil && it.End.Time.Before(it.Start.Time) {
				clamped := it.Start
				it.End = &clamped
				warnings = append(warnings, Warning{
					LaneID: lane.ID, Item: it.Title,
					Kind: WarnInvertedInterval, Detail: "end clamped to start",
				})
			}
			if it.Rail < 0 || it.Rail >= lane.RailCount() {
				warnings = append(warnings, Warning{
					LaneID: lane.ID, Item: it.Title,
					Kind: WarnRailOutOfRange, Detail: fmt.Sprintf("rail %d clamped", it.Rail),
				})
				if it.Rail < 0 {
					it.Rail = 0
				} else {
					it.Rail = lane.RailCount() - 1
				}
			}
			kept = append(kept, it)
		}
		lane.Items = kept
	}

	return warnings
}
