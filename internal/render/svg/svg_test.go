package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanekit/lanechart/internal/core/layout"
	"github.com/lanekit/lanechart/internal/core/model"
)

func testModel(t *testing.T) *layout.Model {
	t.Helper()
	end := model.ParseDate("2022-08-30")
	ds := &model.Dataset{
		Lanes: []model.Lane{
			{
				ID:    "work",
				Title: "Work",
				Items: []model.TimelineItem{
					{Title: "Acme & Sons", Start: model.ParseDate("2020-05-01"), End: &end},
					{Title: "Talk", Start: model.ParseDate("2021-03-02")},
				},
			},
		},
	}
	m, err := layout.Build(ds, model.DefaultScaleConfig())
	require.NoError(t, err)
	return m
}

func TestRenderDocumentShape(t *testing.T) {
	out := Render(testModel(t), DefaultTheme())

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Equal(t, 1, strings.Count(out, "<svg "))
}

func TestRenderPrimitives(t *testing.T) {
	out := Render(testModel(t), DefaultTheme())

	// background rect + one bar rect
	assert.Equal(t, 2, strings.Count(out, "<rect "))
	assert.Equal(t, 1, strings.Count(out, "<circle "))
	assert.Contains(t, out, "lane-caption\">Work<")
	assert.Contains(t, out, "<line ")
}

func TestRenderEscapesText(t *testing.T) {
	out := Render(testModel(t), DefaultTheme())
	assert.Contains(t, out, "Acme &amp; Sons")
	assert.NotContains(t, out, "Acme & Sons<")
}

func TestRenderCustomFillWins(t *testing.T) {
	m := testModel(t)
	m.Bars[0].Fill = "#112233"
	out := Render(m, DefaultTheme())
	assert.Contains(t, out, `fill="#112233"`)
}

func TestRenderSkipsOffCanvasGridlines(t *testing.T) {
	m := testModel(t)
	m.Gridlines = append([]layout.Gridline{{Year: 1900, X: -500}}, m.Gridlines...)
	out := Render(m, DefaultTheme())
	assert.NotContains(t, out, ">1900<")
}
