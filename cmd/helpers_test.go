package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/chris-regnier/dayshift/internal/clock"
	"github.com/chris-regnier/dayshift/internal/config"
)

// fixedNow is 2023-01-31 so the default date exercises month rollover.
var fixedNow = time.Date(2023, 1, 31, 10, 30, 0, 0, time.UTC)

// setupTestEnv keeps config loading away from the real home directory.
func setupTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DAYSHIFT_OUTPUT", "")
}

func testApp(output string) *app {
	return &app{
		clock: clock.Fixed(fixedNow),
		config: &config.Config{
			Output:     output,
			RangeCount: 7,
			RangeStep:  1,
		},
	}
}

// runCommand executes a fresh command tree and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	setupTestEnv(t)

	root := NewRootCommand(clock.Fixed(fixedNow))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}
