package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gitrdm/covopt/pkg/maxcover"
)

// BoundProfile is the parsed shape of an optional YAML bound-profile
// file:
//
//	bounds:
//	  - total
//	  - singleton
//	  - concentration
//	  - amortized   # optional, historical variant
//
// It is the concrete realization of the specification's "optional
// ordered list of custom bound functions replacing or extending the
// default" (spec.md §6).
type BoundProfile struct {
	Bounds []string `yaml:"bounds"`
}

// LoadBoundProfile reads and parses a bound-profile file from disk.
func LoadBoundProfile(path string) (*BoundProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading bound profile %s: %w", path, err)
	}
	var bp BoundProfile
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("config: parsing bound profile %s: %w", path, err)
	}
	if len(bp.Bounds) == 0 {
		return nil, fmt.Errorf("config: bound profile %s names no bounds", path)
	}
	return &bp, nil
}

// knownBounds maps a bound-profile name to its maxcover.Bound
// constructor, preserving the canonical default names from
// maxcover.DefaultBounds plus the opt-in historical variant.
var knownBounds = map[string]func() maxcover.Bound{
	"total":         func() maxcover.Bound { return maxcover.TotalBound{} },
	"singleton":     func() maxcover.Bound { return maxcover.SingletonBound{} },
	"concentration": func() maxcover.Bound { return maxcover.ConcentrationBound{} },
	"amortized":     func() maxcover.Bound { return maxcover.AmortizedCostBound{} },
}

// Resolve turns the ordered list of bound names into concrete Bound
// values, in the same order, for use with maxcover.Builder.WithBound.
func (bp *BoundProfile) Resolve() ([]maxcover.Bound, error) {
	bounds := make([]maxcover.Bound, 0, len(bp.Bounds))
	for _, name := range bp.Bounds {
		ctor, ok := knownBounds[name]
		if !ok {
			return nil, fmt.Errorf("config: unknown bound %q (want one of total, singleton, concentration, amortized)", name)
		}
		bounds = append(bounds, ctor())
	}
	return bounds, nil
}
