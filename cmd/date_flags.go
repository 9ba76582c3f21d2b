package cmd

import (
	"time"

	"github.com/chris-regnier/dayshift/dates"
	"github.com/spf13/cobra"
)

// dateFlags binds --year, --month and --day to a command. Fields the user
// does not set are taken from today.
type dateFlags struct {
	year, month, day int
}

func (f *dateFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.year, "year", "y", 0, "year (default: current year)")
	cmd.Flags().IntVarP(&f.month, "month", "m", 0, "month, 1-12 (default: current month)")
	cmd.Flags().IntVarP(&f.day, "day", "d", 0, "day of month (default: current day)")
}

// resolve builds the date in today's location. Out of range fields roll
// over rather than fail.
func (f *dateFlags) resolve(cmd *cobra.Command, today time.Time) time.Time {
	fields := dates.FieldsOf(today)
	if cmd.Flags().Changed("year") {
		fields.Year = f.year
	}
	if cmd.Flags().Changed("month") {
		fields.Month = f.month
	}
	if cmd.Flags().Changed("day") {
		fields.Day = f.day
	}
	return fields.Time(today.Location())
}
