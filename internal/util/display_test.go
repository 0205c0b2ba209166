package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
	assert.Equal(t, 4, DisplayWidth("日本")) // wide runes count double
	assert.Equal(t, 0, DisplayWidth(""))
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "hello", TruncateToWidth("hello", 10))
	assert.Equal(t, "hell…", TruncateToWidth("hello world", 5))
	assert.Equal(t, "", TruncateToWidth("hello", 0))
}

func TestPadToWidth(t *testing.T) {
	assert.Equal(t, "ab   ", PadToWidth("ab", 5))
	assert.Equal(t, "abcdef", PadToWidth("abcdef", 3))
}
