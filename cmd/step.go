package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/dayshift/internal/ui"
	"github.com/spf13/cobra"
)

func newStepCommand(a *app) *cobra.Command {
	var df dateFlags

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Step through dates interactively",
		Long: `Open an interactive view starting at the given date. Arrow keys or h/l move
one day, up/down or k/j move one week, t returns to the start. Enter prints
the chosen date.

When stdout is not a terminal the start date is printed directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			start := df.resolve(cmd, a.clock.Today())
			w := cmd.OutOrStdout()
			if !isTerminal(w) {
				return a.formatRun(w, start)
			}
			return a.stepRun(w, start)
		},
	}
	df.register(cmd)
	return cmd
}

func (a *app) stepRun(w io.Writer, start time.Time) error {
	p := tea.NewProgram(ui.NewStepper(start, a.theme()), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running stepper: %w", err)
	}
	m, ok := final.(ui.Stepper)
	if !ok || !m.Selected() {
		return nil
	}
	return a.formatRun(w, m.Current())
}
