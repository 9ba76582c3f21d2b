package main

import (
	"fmt"
	"os"

	"github.com/chris-regnier/dayshift/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
