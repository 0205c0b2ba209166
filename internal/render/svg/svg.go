// Package svg is a rendering surface for layout models: it turns the
// abstract primitives into an SVG document. Presentation concerns (fonts,
// colors, truncation) live here; the layout core only supplies coordinates.
package svg

import (
	"fmt"
	"strings"

	"github.com/lanekit/lanechart/internal/core/layout"
	"github.com/lanekit/lanechart/internal/util"
)

// maxLabelCells caps label length in display cells before truncation.
const maxLabelCells = 40

// Theme holds the presentation settings applied to every primitive kind.
type Theme struct {
	Background string  `json:"background" yaml:"background"`
	Gridline   string  `json:"gridline" yaml:"gridline"`
	BarFill    string  `json:"bar_fill" yaml:"bar_fill"`
	PointFill  string  `json:"point_fill" yaml:"point_fill"`
	TextDark   string  `json:"text_dark" yaml:"text_dark"`
	TextLight  string  `json:"text_light" yaml:"text_light"`
	Caption    string  `json:"caption" yaml:"caption"`
	FontFamily string  `json:"font_family" yaml:"font_family"`
	FontSize   float64 `json:"font_size" yaml:"font_size"`
}

// DefaultTheme returns the stock appearance.
func DefaultTheme() Theme {
	return Theme{
		Background: "#ffffff",
		Gridline:   "#d8d8d8",
		BarFill:    "#4285f4",
		PointFill:  "#4285f4",
		TextDark:   "#333333",
		TextLight:  "#fafafa",
		Caption:    "#666666",
		FontFamily: "Arial, sans-serif",
		FontSize:   12,
	}
}

// Render produces a complete SVG document for the model.
func Render(m *layout.Model, theme Theme) string {
	var svg strings.Builder

	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%.0f" height="%.0f" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.label-dark { font-family: %s; font-size: %.0fpx; fill: %s; dominant-baseline: central; }
.label-light { font-family: %s; font-size: %.0fpx; fill: %s; dominant-baseline: central; }
.year-text { font-family: %s; font-size: %.0fpx; fill: %s; }
.lane-caption { font-family: %s; font-size: %.0fpx; font-weight: bold; fill: %s; }
</style>
</defs>
`, m.Width, m.Height, theme.Background,
		theme.FontFamily, theme.FontSize, theme.TextDark,
		theme.FontFamily, theme.FontSize, theme.TextLight,
		theme.FontFamily, theme.FontSize-2, theme.Caption,
		theme.FontFamily, theme.FontSize-1, theme.Caption)

	for _, g := range m.Gridlines {
		if g.X < 0 || g.X > m.Width {
			continue
		}
		fmt.Fprintf(&svg, "<line x1=\"%.1f\" y1=\"0\" x2=\"%.1f\" y2=\"%.0f\" stroke=\"%s\" stroke-width=\"1\"/>\n",
			g.X, g.X, m.Height, theme.Gridline)
		fmt.Fprintf(&svg, "<text x=\"%.1f\" y=\"%.0f\" class=\"year-text\">%d</text>\n",
			g.X+3, theme.FontSize, g.Year)
	}

	for _, band := range m.Bands {
		fmt.Fprintf(&svg, "<text x=\"4\" y=\"%.1f\" class=\"lane-caption\">%s</text>\n",
			band.Top+theme.FontSize, escape(band.Title))
	}

	for _, bar := range m.Bars {
		fill := bar.Fill
		if fill == "" {
			fill = theme.BarFill
		}
		fmt.Fprintf(&svg, "<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"2\" fill=\"%s\"/>\n",
			bar.X, bar.Y, bar.Width, bar.Height, fill)
	}

	for _, p := range m.Points {
		fill := p.Fill
		if fill == "" {
			fill = theme.PointFill
		}
		fmt.Fprintf(&svg, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n",
			p.X, p.Y, p.Radius, fill)
	}

	for _, label := range m.Labels {
		class := "label-light"
		if label.Tone == layout.ToneDark {
			class = "label-dark"
		}
		text := util.TruncateToWidth(label.Text, maxLabelCells)
		fmt.Fprintf(&svg, "<text x=\"%.1f\" y=\"%.1f\" class=\"%s\">%s</text>\n",
			label.X, label.Y, class, escape(text))
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// escape replaces the characters SVG text content cannot carry verbatim.
func escape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return replacer.Replace(s)
}
