package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/chris-regnier/dayshift/dates"
)

// RangeMarkdown builds a markdown table listing each date, its weekday and
// its offset in days from the first date.
func RangeMarkdown(ts []time.Time) string {
	var b strings.Builder
	b.WriteString("| Date | Weekday | Offset |\n")
	b.WriteString("|------|---------|--------|\n")
	for i, t := range ts {
		offset := 0
		if i > 0 {
			offset = daysBetween(ts[0], t)
		}
		fmt.Fprintf(&b, "| %s | %s | %+d |\n", dates.FormatDate(t), t.Weekday(), offset)
	}
	return b.String()
}

// daysBetween counts calendar days from a to b using their date fields, so
// DST transitions do not skew the result. It works on Unix seconds because a
// time.Duration saturates after roughly 292 years.
func daysBetween(a, b time.Time) int {
	ua := dates.FieldsOf(a).Time(time.UTC)
	ub := dates.FieldsOf(b).Time(time.UTC)
	return int((ub.Unix() - ua.Unix()) / 86400)
}

// RenderMarkdownWithStyle renders markdown content using the specified glamour style.
// Returns the original content if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}
