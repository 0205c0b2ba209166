package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanekit/lanechart/internal/core/model"
)

const yamlDataset = `title: Career
lanes:
  - id: work
    title: Work
    rails: 2
    items:
      - title: Acme Corp
        start: 2020-05-01
        end: 2022-08-30
        rail: 0
        color: "#4285f4"
      - title: Side gig
        start: 2021-01-01
        end: 2021-06-30
        rail: 1
        invert: true
  - id: edu
    title: Education
    items:
      - title: Graduation
        start: 2019-06-15
`

const jsonDataset = `{
  "lanes": [
    {"id": "work", "items": [
      {"title": "Acme", "start": "2020-05-01", "end": "2022-08-30"}
    ]}
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	ds, warnings, err := Load(writeTemp(t, "cv.yaml", yamlDataset))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Len(t, ds.Lanes, 2)
	assert.Equal(t, "Career", ds.Title)
	assert.Equal(t, 2, ds.Lanes[0].RailCount())
	require.Len(t, ds.Lanes[0].Items, 2)
	assert.Equal(t, "2020-05-01", ds.Lanes[0].Items[0].Start.String())
	assert.True(t, ds.Lanes[0].Items[1].Invert)
	assert.True(t, ds.Lanes[1].Items[0].IsPoint())
}

func TestLoadJSON(t *testing.T) {
	ds, warnings, err := Load(writeTemp(t, "cv.json", jsonDataset))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, ds.Lanes, 1)
	assert.Equal(t, "Acme", ds.Lanes[0].Items[0].Title)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, _, err := Load(writeTemp(t, "cv.toml", "x = 1"))
	assert.ErrorContains(t, err, "unsupported dataset format")
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSanitizeSkipsInvalidDates(t *testing.T) {
	const bad = `lanes:
  - id: work
    items:
      - title: broken
        start: not-a-date
      - title: fine
        start: 2020-01-01
`
	ds, warnings, err := Load(writeTemp(t, "cv.yaml", bad))
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t, WarnInvalidDate, warnings[0].Kind)
	assert.Equal(t, "broken", warnings[0].Item)

	// The bad record is skipped; the good one survives.
	require.Len(t, ds.Lanes[0].Items, 1)
	assert.Equal(t, "fine", ds.Lanes[0].Items[0].Title)
}

func TestSanitizeSkipsInvalidEnd(t *testing.T) {
	const bad = `lanes:
  - id: work
    items:
      - title: broken-end
        start: 2020-01-01
        end: whenever
`
	ds, warnings, err := Load(writeTemp(t, "cv.yaml", bad))
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnInvalidDate, warnings[0].Kind)
	assert.Empty(t, ds.Lanes[0].Items)
}

func TestSanitizeClampsInvertedInterval(t *testing.T) {
	const inverted = `lanes:
  - id: work
    items:
      - title: backwards
        start: 2021-06-01
        end: 2020-01-01
`
	ds, warnings, err := Load(writeTemp(t, "cv.yaml", inverted))
	require.NoError(t, err)

	require.Len(t, warnings, 1)
	assert.Equal(t, WarnInvertedInterval, warnings[0].Kind)

	// Clamped, not dropped, and never a negative-width interval.
	require.Len(t, ds.Lanes[0].Items, 1)
	it := ds.Lanes[0].Items[0]
	assert.Equal(t, it.Start.Time, it.End.Time)
}

func TestSanitizeClampsRail(t *testing.T) {
	ds := &model.Dataset{
		Lanes: []model.Lane{{
			ID:    "work",
			Rails: 2,
			Items: []model.TimelineItem{
				{Title: "too-high", Start: model.ParseDate("2020-01-01"), Rail: 7},
				{Title: "negative", Start: model.ParseDate("2020-01-01"), Rail: -1},
			},
		}},
	}

	warnings := Sanitize(ds)
	require.Len(t, warnings, 2)
	assert.Equal(t, WarnRailOutOfRange, warnings[0].Kind)
	assert.Equal(t, 1, ds.Lanes[0].Items[0].Rail)
	assert.Equal(t, 0, ds.Lanes[0].Items[1].Rail)
}
