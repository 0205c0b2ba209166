package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lanekit/lanechart/internal/core/layout"
	"github.com/lanekit/lanechart/internal/data/loader"
	"github.com/lanekit/lanechart/internal/data/watcher"
	"github.com/lanekit/lanechart/internal/render/svg"
	"github.com/lanekit/lanechart/internal/util"
)

var (
	dataPath   string
	configPath string
	outPath    string
	watchMode  bool

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Build the layout and write the chart as SVG",
		RunE:  runRender,
	}
)

func init() {
	renderCmd.Flags().StringVar(&dataPath, "data", "",
		"Dataset file (.yaml, .yml or .json)")
	renderCmd.Flags().StringVar(&configPath, "config", "",
		"Chart config file (YAML, optional)")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "-",
		"Output SVG path, or - for stdout")
	renderCmd.Flags().BoolVarP(&watchMode, "watch", "w", false,
		"Re-render whenever the dataset file changes")
	renderCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadChartConfig(configPath)
	if err != nil {
		return err
	}
	data := expandPath(dataPath)

	if err := renderOnce(data, cfg); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	dw, err := watcher.New(data)
	if err != nil {
		return fmt.Errorf("starting dataset watcher: %w", err)
	}
	defer dw.Close()
	util.LogInfof("watching %s", data)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case ev, ok := <-dw.Events():
			if !ok {
				return nil
			}
			util.LogDebugf("dataset changed (%s), rebuilding", ev.Operation)
			if err := renderOnce(data, cfg); err != nil {
				// A mid-save parse failure should not kill watch mode.
				util.LogErrorf("rebuild failed: %v", err)
			}
		case <-stop:
			return nil
		}
	}
}

// renderOnce runs one full pass: load, validate, lay out, render, write.
func renderOnce(data string, cfg chartConfig) error {
	ds, warnings, err := loader.Load(data)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		util.LogWarnf("%s", w)
	}

	m, err := layout.Build(ds, cfg.Scale)
	if err != nil {
		return err
	}
	doc := svg.Render(m, cfg.Theme)

	if outPath == "" || outPath == "-" {
		_, err = os.Stdout.WriteString(doc)
		return err
	}
	out := expandPath(outPath)
	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	util.LogInfof("wrote %s (%d bars, %d points, %.0fx%.0f)",
		out, len(m.Bars), len(m.Points), m.Width, m.Height)
	return nil
}
