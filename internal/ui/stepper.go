package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/dayshift/dates"
)

// Stepper is a bubbletea model for walking through dates one day or one
// week at a time.
type Stepper struct {
	start    time.Time
	current  time.Time
	theme    Theme
	selected bool
	quitting bool
}

// NewStepper creates a Stepper positioned at start.
func NewStepper(start time.Time, theme Theme) Stepper {
	return Stepper{start: start, current: start, theme: theme}
}

// Current returns the date the stepper is positioned at.
func (m Stepper) Current() time.Time { return m.current }

// Selected reports whether the user confirmed a date with enter.
func (m Stepper) Selected() bool { return m.selected }

// Offset returns the number of days between the start and current dates.
func (m Stepper) Offset() int { return daysBetween(m.start, m.current) }

func (m Stepper) Init() tea.Cmd { return nil }

func (m Stepper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "left", "h":
		m.current = dates.AddDays(m.current, -1)
	case "right", "l":
		m.current = dates.AddDays(m.current, 1)
	case "up", "k":
		m.current = dates.AddDays(m.current, -7)
	case "down", "j":
		m.current = dates.AddDays(m.current, 7)
	case "t":
		m.current = m.start
	case "enter":
		m.selected = true
		m.quitting = true
		return m, tea.Quit
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Stepper) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.DateStyle().Render(dates.FormatDate(m.current)))
	b.WriteString("  ")
	b.WriteString(m.theme.TextStyle().Render(m.current.Weekday().String()))
	b.WriteString("  ")
	b.WriteString(m.theme.HelpStyle().Render(formatOffset(m.Offset())))
	b.WriteString("\n\n")
	b.WriteString(m.theme.HelpStyle().Render("←/→ day · ↑/↓ week · t reset · enter select · q quit"))
	b.WriteString("\n")
	return b.String()
}

func formatOffset(n int) string {
	switch n {
	case 0:
		return "(start)"
	case 1, -1:
		return fmt.Sprintf("(%+d day)", n)
	}
	return fmt.Sprintf("(%+d days)", n)
}
