package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lanekit/lanechart/internal/core/model"
	"github.com/lanekit/lanechart/internal/render/svg"
)

// chartConfig is the optional YAML config file: scale tunables for the
// layout core plus theme settings for the SVG surface. Absent fields keep
// their defaults.
type chartConfig struct {
	Scale model.ScaleConfig `yaml:"scale"`
	Theme svg.Theme         `yaml:"theme"`
}

// loadChartConfig returns the defaults, overlaid with the YAML file at path
// when one is given.
func loadChartConfig(path string) (chartConfig, error) {
	cfg := chartConfig{
		Scale: model.DefaultScaleConfig(),
		Theme: svg.DefaultTheme(),
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return chartConfig{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return chartConfig{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}
