package cmd

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"time"

	"github.com/chris-regnier/dayshift/dates"
	"github.com/chris-regnier/dayshift/internal/config"
	"github.com/chris-regnier/dayshift/internal/ui"
	"github.com/spf13/cobra"
)

func newAddCommand(a *app) *cobra.Command {
	var df dateFlags
	var days int
	var quiet bool

	cmd := &cobra.Command{
		Use:   "add [days]",
		Short: "Shift a date by a number of days",
		Long: `Shift a date by a signed number of days. Month and year rollover is
carried automatically, so 2023-01-31 plus one day is 2023-02-01.

The number of days may be given with --days or as the only argument. A
negative argument must follow "--" so it is not read as a flag.`,
		Example: `  dayshift add 30
  dayshift add --days -1 --year 2024 --month 3 --day 1
  dayshift add -y 2024 -m 3 -d 1 -- -1
  dayshift add 1 -y 2023 -m 12 -d 31 --quiet
  dayshift add 7 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			if len(args) == 1 {
				if cmd.Flags().Changed("days") {
					return fmt.Errorf("days given both as argument and --days")
				}
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid number of days %q: %w", args[0], err)
				}
				days = n
			}
			from := df.resolve(cmd, a.clock.Today())
			return a.addRun(cmd.OutOrStdout(), from, days, quiet)
		},
	}
	cmd.SetFlagErrorFunc(negativeDaysHint)
	df.register(cmd)
	cmd.Flags().IntVarP(&days, "days", "n", 0, "number of days to add (negative to go back)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the resulting date")
	return cmd
}

var numericShorthand = regexp.MustCompile(`unknown shorthand flag: '[0-9]' in (-[0-9]+)$`)

// negativeDaysHint explains how to pass a negative day count when pflag
// mistakes it for a shorthand flag.
func negativeDaysHint(cmd *cobra.Command, err error) error {
	m := numericShorthand.FindStringSubmatch(err.Error())
	if m == nil {
		return err
	}
	return fmt.Errorf("%w: pass negative days as --days=%s or after -- (dayshift add -- %s)", err, m[1], m[1])
}

func (a *app) addRun(w io.Writer, from time.Time, days int, quiet bool) error {
	to := dates.AddDays(from, days)

	if a.config.Output == config.OutputJSON {
		return ui.FormatJSON(w, ui.ShiftResult{
			From: ui.ToDateResult(from),
			Days: days,
			To:   ui.ToDateResult(to),
		})
	}

	p := a.printer(w)
	if quiet {
		p.FormatDateLine(w, to)
		return nil
	}
	p.FormatShift(w, from, days, to)
	return nil
}
