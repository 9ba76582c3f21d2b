package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/chris-regnier/dayshift/dates"
)

// DateResult is the JSON representation of a single date.
type DateResult struct {
	Date    string `json:"date"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Weekday string `json:"weekday"`
}

// ToDateResult converts t to its JSON representation.
func ToDateResult(t time.Time) DateResult {
	f := dates.FieldsOf(t)
	return DateResult{
		Date:    dates.FormatDate(t),
		Year:    f.Year,
		Month:   f.Month,
		Day:     f.Day,
		Weekday: t.Weekday().String(),
	}
}

// ShiftResult is the JSON representation of a shifted date.
type ShiftResult struct {
	From DateResult `json:"from"`
	Days int        `json:"days"`
	To   DateResult `json:"to"`
}

// Printer writes dates, styled with a Theme when Styled is set.
type Printer struct {
	Theme  Theme
	Styled bool
}

func (p Printer) date(t time.Time) string {
	s := dates.FormatDate(t)
	if !p.Styled {
		return s
	}
	return p.Theme.DateStyle().Render(s)
}

func (p Printer) muted(s string) string {
	if !p.Styled {
		return s
	}
	return p.Theme.HelpStyle().Render(s)
}

// FormatDateLine writes a single formatted date.
func (p Printer) FormatDateLine(w io.Writer, t time.Time) {
	fmt.Fprintln(w, p.date(t))
}

// FormatShift writes "FROM +N days -> TO".
func (p Printer) FormatShift(w io.Writer, from time.Time, days int, to time.Time) {
	unit := "days"
	if days == 1 || days == -1 {
		unit = "day"
	}
	fmt.Fprintf(w, "%s %s %s\n", p.date(from), p.muted(fmt.Sprintf("%+d %s ->", days, unit)), p.date(to))
}

// FormatRange writes one date per line followed by its weekday.
func (p Printer) FormatRange(w io.Writer, ts []time.Time) {
	if len(ts) == 0 {
		fmt.Fprintln(w, "No dates.")
		return
	}
	for _, t := range ts {
		fmt.Fprintf(w, "%s  %s\n", p.date(t), p.muted(t.Weekday().String()[:3]))
	}
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
