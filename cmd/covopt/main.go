// Command covopt is the CLI host for the maxcover engine: it loads a
// recipe catalog, runs a branch-and-bound search for a given
// ingredient budget, and renders the resulting recipe coverage.
// See SPEC_FULL.md §4.10.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var exitErr exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		os.Exit(1)
	}
}
