package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lanekit/lanechart/internal/core/domain"
	"github.com/lanekit/lanechart/internal/data/loader"
	"github.com/lanekit/lanechart/internal/util"
)

var (
	validateData string

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Check a dataset and report lanes, items and validation warnings",
		RunE:  runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVar(&validateData, "data", "",
		"Dataset file (.yaml, .yml or .json)")
	validateCmd.MarkFlagRequired("data")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ds, warnings, err := loader.Load(expandPath(validateData))
	if err != nil {
		return err
	}

	titleWidth := 24
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 60 {
			titleWidth = cols - 36
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s %s %s\n",
		util.PadToWidth("LANE", 12),
		util.PadToWidth("TITLE", titleWidth),
		util.PadToWidth("RAILS", 6),
		"ITEMS")
	for _, lane := range ds.Lanes {
		fmt.Fprintf(out, "%s %s %s %d\n",
			util.PadToWidth(lane.ID, 12),
			util.PadToWidth(util.TruncateToWidth(lane.Title, titleWidth), titleWidth),
			util.PadToWidth(fmt.Sprintf("%d", lane.RailCount()), 6),
			len(lane.Items))
	}

	dom, err := domain.Resolve(ds.Items(), 0)
	if err != nil {
		return fmt.Errorf("dataset is not renderable: %w", err)
	}
	fmt.Fprintf(out, "\nspan: %s .. %s\n",
		dom.Min.Format("2006-01-02"), dom.Max.Format("2006-01-02"))

	if len(warnings) > 0 {
		fmt.Fprintf(out, "\n%d warning(s):\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}
	return nil
}
