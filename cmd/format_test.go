package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/chris-regnier/dayshift/internal/ui"
)

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"defaults to today", []string{"format"}, "2023-01-31\n"},
		{"explicit date", []string{"format", "--year", "2023", "--month", "5", "--day", "7"}, "2023-05-07\n"},
		{"shorthand flags", []string{"format", "-y", "2024", "-m", "2", "-d", "29"}, "2024-02-29\n"},
		{"partial override", []string{"format", "--day", "5"}, "2023-01-05\n"},
		{"day overflow rolls over", []string{"format", "--month", "1", "--day", "32"}, "2023-02-01\n"},
		{"month overflow rolls over", []string{"format", "--month", "13", "--day", "1"}, "2024-01-01\n"},
		{"five digit year", []string{"format", "-y", "10000", "-m", "1", "-d", "1"}, "10000-01-01\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCommandJSON(t *testing.T) {
	got, err := runCommand(t, "format", "--json", "-y", "2023", "-m", "5", "-d", "7")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	var res ui.DateResult
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", got, err)
	}
	want := ui.DateResult{Date: "2023-05-07", Year: 2023, Month: 5, Day: 7, Weekday: "Sunday"}
	if res != want {
		t.Errorf("got %+v, want %+v", res, want)
	}
}

func TestFormatRejectsArgs(t *testing.T) {
	if _, err := runCommand(t, "format", "2023-05-07"); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestFormatRun(t *testing.T) {
	var buf bytes.Buffer
	a := testApp("text")
	if err := a.formatRun(&buf, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "2023-12-01\n" {
		t.Errorf("formatRun() = %q", buf.String())
	}
}
