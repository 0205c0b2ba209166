package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the terminal-cell width of a string, accounting for
// wide runes and emoji.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// TruncateToWidth trims a string to at most width display cells, appending
// an ellipsis when anything was cut.
func TruncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

// PadToWidth right-pads a string with spaces to exactly width display cells.
func PadToWidth(text string, width int) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}
