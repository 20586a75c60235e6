// Package config is the ambient configuration layer: CLI flags bound
// through cobra/viper, plus an optional YAML "bound profile" file that
// selects and orders the core's Bound functions. See SPEC_FULL.md §4.7.
package config

import "fmt"

// Defaults mirror SPEC_FULL.md §6's CLI flag defaults.
const (
	DefaultIngredients = 12
	DefaultMaxCalls    = 8_000_000
	DefaultFormat      = "table"

	MinIngredients = 2
	MaxIngredients = 109
)

// Options holds every value the CLI host needs to run one search, after
// flags and environment variables have been merged by viper.
// BoundProfile is only the path of the bound-profile file; that file is
// read by LoadBoundProfile, not by viper.
type Options struct {
	InputPath    string
	Ingredients  int
	MaxCalls     int
	Format       string
	BoundProfile string
	MetricsAddr  string
	Verbose      bool
}

// ValidateIngredients enforces the CLI-imposed range from
// SPEC_FULL.md §6: 2 ≤ k ≤ 109. A violation is a host-layer usage
// error (exit code 1), not a core invariant violation.
func ValidateIngredients(k int) error {
	if k < MinIngredients || k > MaxIngredients {
		return fmt.Errorf("ingredients (k=%d) must be between %d and %d", k, MinIngredients, MaxIngredients)
	}
	return nil
}

// ValidateFormat rejects anything other than the three supported
// output formats.
func ValidateFormat(format string) error {
	switch format {
	case "table", "json", "simple":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want table, json, or simple)", format)
	}
}
