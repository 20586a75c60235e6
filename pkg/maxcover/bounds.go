package maxcover

import "sort"

// BoundState is the read-only view of the current search branch passed
// to every Bound. Implementations must treat it as immutable: bounds
// are declared pure and thread-safe so that a future parallel search
// could invoke them concurrently, even though the current Engine
// invokes them serially.
type BoundState struct {
	// C is the current candidate pool: recipes still eligible on this
	// branch.
	C []Recipe

	// P is the current partial solution: recipes already committed.
	P []Recipe

	// Footprint is I(P), the union of every recipe in P.
	Footprint BitSet

	// K is the ingredient budget.
	K int

	// MinCover and AmortizedCost are the tables preprocessed once over
	// the original recipe universe (see tables.go); they are keyed by
	// Recipe.Key() and must not be refreshed against the current,
	// pruned C.
	MinCover      map[string]int
	AmortizedCost map[string]float64
}

// Bound is a pure function over the current search state returning an
// upper bound on the number of additional recipes this branch can
// still cover, beyond len(P). The search prunes a branch as soon as any
// installed Bound is no greater than the threshold bestScore − len(P).
//
// A Bound must never return a negative value; doing so is an
// invariant violation and the Engine will panic rather than silently
// continue (see Engine.Search).
type Bound interface {
	Compute(state BoundState) int
	Name() string
}

// TotalBound (B1) is the trivial upper bound: at most every remaining
// candidate can join the solution.
type TotalBound struct{}

// Compute implements Bound.
func (TotalBound) Compute(state BoundState) int { return len(state.C) }

// Name implements Bound.
func (TotalBound) Name() string { return "total" }

// SingletonBound (B2) accounts for recipes that have at least one
// ingredient unique to the original universe: each such recipe costs
// at least one fresh ingredient, and only `slack` fresh ingredients
// remain in the budget.
type SingletonBound struct{}

// Compute implements Bound.
func (SingletonBound) Compute(state BoundState) int {
	unique := 0
	for _, r := range state.C {
		if state.MinCover[r.Key()] == 1 {
			unique++
		}
	}
	slack := state.K - state.Footprint.Size()
	if slack < 0 {
		slack = 0
	}
	admissible := unique
	if slack < admissible {
		admissible = slack
	}
	return len(state.C) - unique + admissible
}

// Name implements Bound.
func (SingletonBound) Name() string { return "singleton" }

// ConcentrationBound (B3) assumes the best case: any ingredient excess
// over budget is concentrated in as few candidate recipes as possible,
// and removing exactly those recipes restores feasibility.
type ConcentrationBound struct{}

// Compute implements Bound.
func (ConcentrationBound) Compute(state BoundState) int {
	u := universe(state.C)
	u.UnionAssign(state.Footprint)
	excess := u.Size() - state.K
	if excess <= 0 {
		return len(state.C)
	}

	increases := make([]int, len(state.C))
	for i, r := range state.C {
		increases[i] = r.Difference(state.Footprint).Size()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(increases)))

	remaining := len(state.C)
	for _, inc := range increases {
		if excess <= 0 {
			break
		}
		remaining--
		excess -= inc
	}
	return remaining
}

// Name implements Bound.
func (ConcentrationBound) Name() string { return "concentration" }

// AmortizedCostBound is the historical variant mentioned in the
// specification's design notes: candidates are admitted, cheapest
// amortized cost first, while a running sum stays within the
// remaining ingredient budget (k minus the amortized cost already
// spent by P). It is not part of the canonical B1+B2+B3 default, but
// is available for opt-in via a bound profile (see
// internal/config.BoundProfile).
type AmortizedCostBound struct{}

// Compute implements Bound.
func (AmortizedCostBound) Compute(state BoundState) int {
	var spent float64
	for _, r := range state.P {
		spent += state.AmortizedCost[r.Key()]
	}
	remaining := float64(state.K) - spent

	costs := make([]float64, len(state.C))
	for i, r := range state.C {
		costs[i] = state.AmortizedCost[r.Key()]
	}
	sort.Float64s(costs)

	admitted := 0
	var running float64
	for _, c := range costs {
		running += c
		if running > remaining {
			break
		}
		admitted++
	}
	return admitted
}

// Name implements Bound.
func (AmortizedCostBound) Name() string { return "amortized" }

// DefaultBounds returns the canonical bound set: B1, B2, B3 in that
// order.
func DefaultBounds() []Bound {
	return []Bound{TotalBound{}, SingletonBound{}, ConcentrationBound{}}
}
