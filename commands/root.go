package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lanekit/lanechart/internal/util"
)

var (
	// Logging related
	debug   bool
	logFile string

	rootCmd = &cobra.Command{
		Use:   "lanechart",
		Short: "Chronological lane-chart layout and rendering tool",
		Long: `lanechart turns a static dataset of dated records grouped into lanes
(employment, education, volunteering, ...) into a year-ruled chart.

The layout core maps calendar dates to horizontal pixel offsets at
whole-month granularity, stacks lanes vertically with optional sub-track
rails, and emits drawable primitives; the SVG renderer turns them into a
document.

Examples:
  lanechart render --data cv.yaml --out cv.svg
  lanechart render --data cv.yaml --config chart.yaml --out cv.svg --watch
  lanechart validate --data cv.yaml`,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Append logs to this file in addition to stderr")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logLevel := "info"
		if debug {
			logLevel = "debug"
		}
		path := ""
		if logFile != "" {
			path = expandPath(logFile)
			ensureDir(filepath.Dir(path))
		}
		util.InitLogger(logLevel, path)
	}
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
