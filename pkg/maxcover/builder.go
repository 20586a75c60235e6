package maxcover

import "fmt"

// Builder assembles an Engine with a configurable list of Bound
// functions and the call/size limits required to run it. Order of
// bounds is preserved and matters only for short-circuit evaluation
// speed — the logical pruning result is order-independent.
//
//	engine := maxcover.NewBuilder(8_000_000, 12).
//		WithDefaultBounds().
//		WithBound(myCustomBound{}).
//		Build()
type Builder struct {
	maxCalls int
	k        int
	bounds   []Bound
}

// NewBuilder starts a Builder for a search with the given call budget
// and ingredient budget k. Both must be positive; Build panics
// otherwise (a non-positive k is an invariant violation per the
// specification's error handling design, not a recoverable error).
func NewBuilder(maxCalls, k int) *Builder {
	return &Builder{maxCalls: maxCalls, k: k}
}

// WithBound appends a bound function to the list, preserving
// insertion order.
func (b *Builder) WithBound(bound Bound) *Builder {
	b.bounds = append(b.bounds, bound)
	return b
}

// WithDefaultBounds appends the canonical B1+B2+B3 bound set
// (TotalBound, SingletonBound, ConcentrationBound).
func (b *Builder) WithDefaultBounds() *Builder {
	b.bounds = append(b.bounds, DefaultBounds()...)
	return b
}

// Build validates the accumulated configuration and returns a fresh
// Engine. If no bounds were added, the default configuration
// (TotalBound, SingletonBound, ConcentrationBound) is installed.
// Build panics on invariant violations: non-positive maxCalls or k.
func (b *Builder) Build() *Engine {
	if b.maxCalls <= 0 {
		panic(fmt.Sprintf("maxcover: maxCalls must be positive, got %d", b.maxCalls))
	}
	if b.k <= 0 {
		panic(fmt.Sprintf("maxcover: k must be positive, got %d", b.k))
	}
	bounds := b.bounds
	if len(bounds) == 0 {
		bounds = DefaultBounds()
	}
	return newEngine(b.maxCalls, b.k, bounds)
}
