package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/dayshift/internal/clock"
	"github.com/chris-regnier/dayshift/internal/config"
	"github.com/chris-regnier/dayshift/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app holds state shared by every subcommand of one root command.
type app struct {
	cfgFile    string
	jsonOutput bool
	config     *config.Config
	clock      *clock.Provider
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand(clock.New()).Execute()
}

// NewRootCommand creates the dayshift command tree. clk supplies the date
// used when a command is given no explicit date fields.
func NewRootCommand(clk *clock.Provider) *cobra.Command {
	a := &app{clock: clk}

	cmd := &cobra.Command{
		Use:   "dayshift",
		Short: "Format dates and shift them by days",
		Long: `dayshift formats calendar dates as YYYY-MM-DD and shifts them by whole days,
carrying month and year rollover.

Dates are given with --year, --month and --day; any field left out defaults to
today's value.`,
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file path")
	cmd.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "output in JSON format")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.AddCommand(
		newFormatCommand(a),
		newAddCommand(a),
		newRangeCommand(a),
		newStepCommand(a),
		newMCPServeCommand(),
		newVersionCommand(),
	)

	return cmd
}

// loadConfig reads the config once. Only commands that print dates call it,
// so a broken config file does not stop version or mcp-serve.
func (a *app) loadConfig() error {
	if a.config != nil {
		return nil
	}
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.jsonOutput {
		cfg.Output = config.OutputJSON
	}
	a.config = cfg
	return nil
}

func (a *app) theme() ui.Theme {
	return ui.ResolveTheme(a.config.Theme)
}

// printer styles output only when w is a terminal.
func (a *app) printer(w io.Writer) ui.Printer {
	return ui.Printer{Theme: a.theme(), Styled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
