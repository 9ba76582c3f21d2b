package cmd

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/dayshift/dates"
	"github.com/chris-regnier/dayshift/internal/config"
	"github.com/chris-regnier/dayshift/internal/ui"
	"github.com/spf13/cobra"
)

const maxRangeCount = 10000

func newRangeCommand(a *app) *cobra.Command {
	var df dateFlags
	var count, step int

	cmd := &cobra.Command{
		Use:   "range",
		Short: "List consecutive dates",
		Long: `List count dates starting at the given date, step days apart.

Defaults for --count and --step come from range_count and range_step in the
config file. Set output = "markdown" in the config to render a table.`,
		Example: `  dayshift range
  dayshift range --count 5 --step 7
  dayshift range -y 2024 -m 2 -d 26 --count 5
  dayshift range --step -1 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = a.config.RangeCount
			}
			if !cmd.Flags().Changed("step") {
				step = a.config.RangeStep
			}
			if count <= 0 || count > maxRangeCount {
				return fmt.Errorf("count must be between 1 and %d, got %d", maxRangeCount, count)
			}
			start := df.resolve(cmd, a.clock.Today())
			return a.rangeRun(cmd.OutOrStdout(), start, count, step)
		},
	}
	df.register(cmd)
	cmd.Flags().IntVarP(&count, "count", "c", 0, "number of dates to list (default from config)")
	cmd.Flags().IntVarP(&step, "step", "s", 0, "days between dates (default from config)")
	return cmd
}

func (a *app) rangeRun(w io.Writer, start time.Time, count, step int) error {
	ts := dates.Range(start, count, step)

	switch a.config.Output {
	case config.OutputJSON:
		results := make([]ui.DateResult, len(ts))
		for i, t := range ts {
			results[i] = ui.ToDateResult(t)
		}
		return ui.FormatJSON(w, results)
	case config.OutputMarkdown:
		theme := a.theme()
		style := theme.MarkdownStyle
		if !isTerminal(w) {
			style = "notty"
		}
		rendered := ui.RenderMarkdownWithStyle(ui.RangeMarkdown(ts), 80, style)
		return ui.OutputOrPage(w, rendered+"\n", theme)
	}

	var buf bytes.Buffer
	a.printer(w).FormatRange(&buf, ts)
	return ui.OutputOrPage(w, buf.String(), a.theme())
}
