package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadChartConfigDefaults(t *testing.T) {
	cfg, err := loadChartConfig("")
	require.NoError(t, err)
	assert.Equal(t, 14.0, cfg.Scale.PixelsPerMonth)
	assert.Equal(t, "#ffffff", cfg.Theme.Background)
}

func TestLoadChartConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	content := `scale:
  pixels_per_month: 20
theme:
  background: "#000000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := loadChartConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.Scale.PixelsPerMonth)
	assert.Equal(t, "#000000", cfg.Theme.Background)
	// Untouched fields keep their defaults.
	assert.Equal(t, 2, cfg.Scale.PadMonths)
	assert.Equal(t, "Arial, sans-serif", cfg.Theme.FontFamily)
}

func TestLoadChartConfigMissingFile(t *testing.T) {
	_, err := loadChartConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadChartConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scale: [broken"), 0644))
	_, err := loadChartConfig(path)
	assert.ErrorContains(t, err, "parsing config file")
}
