package cmd

import (
	"io"
	"time"

	"github.com/chris-regnier/dayshift/internal/config"
	"github.com/chris-regnier/dayshift/internal/ui"
	"github.com/spf13/cobra"
)

func newFormatCommand(a *app) *cobra.Command {
	var df dateFlags

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Print a date as YYYY-MM-DD",
		Example: `  dayshift format
  dayshift format --year 2023 --month 5 --day 7
  dayshift format --month 1 --day 32
  dayshift format --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			t := df.resolve(cmd, a.clock.Today())
			return a.formatRun(cmd.OutOrStdout(), t)
		},
	}
	df.register(cmd)
	return cmd
}

func (a *app) formatRun(w io.Writer, t time.Time) error {
	if a.config.Output == config.OutputJSON {
		return ui.FormatJSON(w, ui.ToDateResult(t))
	}
	a.printer(w).FormatDateLine(w, t)
	return nil
}
