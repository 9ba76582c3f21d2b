package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/dayshift/dates"
)

func TestRangeMarkdown(t *testing.T) {
	start := time.Date(2023, 12, 30, 0, 0, 0, 0, time.UTC)
	md := RangeMarkdown(dates.Range(start, 3, 1))

	want := []string{
		"| Date | Weekday | Offset |",
		"| 2023-12-30 | Saturday | +0 |",
		"| 2023-12-31 | Sunday | +1 |",
		"| 2024-01-01 | Monday | +2 |",
	}
	for _, w := range want {
		if !strings.Contains(md, w) {
			t.Errorf("expected markdown to contain %q, got:\n%s", w, md)
		}
	}
}

func TestRangeMarkdownNegativeStep(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	md := RangeMarkdown(dates.Range(start, 2, -1))
	if !strings.Contains(md, "| 2024-02-29 | Thursday | -1 |") {
		t.Errorf("unexpected markdown:\n%s", md)
	}
}

func TestRangeMarkdownLargeStep(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	md := RangeMarkdown(dates.Range(start, 3, 200000))

	for _, w := range []string{
		"| 2570-08-01 | Wednesday | +200000 |",
		"| 3118-03-02 | Saturday | +400000 |",
	} {
		if !strings.Contains(md, w) {
			t.Errorf("expected markdown to contain %q, got:\n%s", w, md)
		}
	}
}

func TestDaysBetweenBeyondDurationRange(t *testing.T) {
	a := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	b := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	// 2000 Gregorian years is 5 cycles of 146097 days.
	if got := daysBetween(a, b); got != 730485 {
		t.Errorf("daysBetween() = %d, want 730485", got)
	}
	if got := daysBetween(b, a); got != -730485 {
		t.Errorf("daysBetween() = %d, want -730485", got)
	}
}

func TestDaysBetweenIgnoresClock(t *testing.T) {
	a := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC)
	if got := daysBetween(a, b); got != 2 {
		t.Errorf("daysBetween() = %d, want 2", got)
	}
	if got := daysBetween(b, a); got != -2 {
		t.Errorf("daysBetween() = %d, want -2", got)
	}
}

func TestRenderMarkdownWithStyle(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		style        string
		wantContains []string
	}{
		{"empty string", "", "notty", nil},
		{"plain text", "Hello world", "notty", []string{"Hello world"}},
		{"default style", "# Dates", "", []string{"Dates"}},
		{
			"range table",
			RangeMarkdown(dates.Range(time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), 2, 1)),
			"notty",
			[]string{"2024-02-28", "2024-02-29", "Thursday"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderMarkdownWithStyle(tt.input, 80, tt.style))
			if tt.input == "" && got != "" {
				t.Errorf("expected empty output, got %q", got)
			}
			for _, w := range tt.wantContains {
				if !strings.Contains(got, w) {
					t.Errorf("expected output to contain %q, got:\n%s", w, got)
				}
			}
		})
	}
}

func TestRenderMarkdownBadStyleFallsBack(t *testing.T) {
	got := RenderMarkdownWithStyle("plain", 80, "/does/not/exist.json")
	if got != "plain" {
		t.Errorf("expected raw content on renderer error, got %q", got)
	}
}
