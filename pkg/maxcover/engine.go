package maxcover

import "fmt"

// Result is what a completed (or budget-terminated) Search invocation
// returns: the best recipe collection found, its score, and
// diagnostics. Result.Incumbent always satisfies the feasibility and
// subset-closure properties from the specification, whether or not the
// call budget was exhausted before the search finished exploring.
type Result struct {
	// Incumbent is the best partial solution found: every recipe in it
	// is fully covered by the ingredient footprint of the collection
	// as a whole.
	Incumbent []Recipe

	// Score is len(Incumbent).
	Score int

	// Counter is the total number of recursive search entries
	// consumed, for diagnostics.
	Counter int

	// BudgetExhausted is true if the search hit maxCalls before
	// exploring the full tree. A true value means Incumbent is not
	// guaranteed optimal, only feasible — see the specification's
	// resolution of the "how does a caller detect early termination
	// programmatically" open question.
	BudgetExhausted bool
}

// Engine is the recursive branch-and-bound driver. An Engine is built
// by Builder and is valid for exactly one Search invocation: it is not
// re-entrant on the same instance. Construct a fresh Engine (via
// Builder) for each fresh problem.
type Engine struct {
	maxCalls int
	k        int
	bounds   []Bound

	callsRemaining  int
	counter         int
	initial         bool
	incumbent       []Recipe
	bestScore       int
	budgetExhausted bool
	tbl             tables
}

// newEngine constructs an Engine; only Builder calls this, after
// validating maxCalls, k, and bounds.
func newEngine(maxCalls, k int, bounds []Bound) *Engine {
	return &Engine{
		maxCalls:       maxCalls,
		k:              k,
		bounds:         bounds,
		callsRemaining: maxCalls,
		initial:        true,
		incumbent:      []Recipe{},
	}
}

// Search runs the branch-and-bound exploration over candidates (the
// initial candidate pool C₀) starting from partial (normally empty,
// but any feasible partial solution is accepted) and returns the best
// incumbent found within the call budget. Search must be called
// exactly once per Engine.
func (e *Engine) Search(candidates, partial []Recipe) Result {
	e.search(dedupeRecipes(candidates), dedupeRecipes(partial), EmptyForbidden())
	return Result{
		Incumbent:       e.incumbent,
		Score:           e.bestScore,
		Counter:         e.counter,
		BudgetExhausted: e.budgetExhausted,
	}
}

// dedupeRecipes collapses recipes sharing the same ingredient set down
// to one representative, preserving first-occurrence order. The
// specification treats the candidate pool as a set of ingredient sets
// (the original implementation stores it in a HashSet<IngredientSet>),
// not a multiset, so two distinct slice entries with identical bits
// must count as one recipe — otherwise leftPartial would append both
// into P and double-count a single recipe's coverage.
func dedupeRecipes(recipes []Recipe) []Recipe {
	if len(recipes) == 0 {
		return recipes
	}
	seen := make(map[string]struct{}, len(recipes))
	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		key := r.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// search is the recursive driver described by the specification's
// ten-step algorithm in §4.3. It mutates e.incumbent, e.bestScore,
// e.counter, and e.callsRemaining as it explores; C, P, and F are
// treated as per-call values (never mutated in place here — each
// branch builds its own slices), which trades some allocation for a
// direct match to the specification's pure-value semantics.
func (e *Engine) search(C, P []Recipe, F Forbidden) {
	if e.initial {
		F = EmptyForbidden()
		e.tbl = buildTables(C)
		e.initial = false
	}

	if e.callsRemaining <= 0 {
		e.budgetExhausted = true
		return
	}
	e.callsRemaining--
	e.counter++

	if len(P) > e.bestScore {
		e.bestScore = len(P)
		e.incumbent = append([]Recipe(nil), P...)
	}

	fp := footprint(P)

	state := BoundState{
		C:             C,
		P:             P,
		Footprint:     fp,
		K:             e.k,
		MinCover:      e.tbl.minCover,
		AmortizedCost: e.tbl.amortizedCost,
	}
	threshold := e.bestScore - len(P)
	for _, b := range e.bounds {
		v := b.Compute(state)
		if v < 0 {
			panic(fmt.Sprintf("maxcover: bound %q returned negative value %d", b.Name(), v))
		}
		if v <= threshold {
			return
		}
	}

	if len(C) == 0 {
		return
	}

	pivotIdx := 0
	pivotCost := e.tbl.amortizedCost[C[0].Key()]
	for i := 1; i < len(C); i++ {
		c := e.tbl.amortizedCost[C[i].Key()]
		if c < pivotCost {
			pivotCost = c
			pivotIdx = i
		}
	}
	pivot := C[pivotIdx]

	e.search(e.leftCandidates(C, fp, pivot, F), e.leftPartial(P, C, fp, pivot), F)
	e.search(e.rightCandidates(C, fp, pivot), P, F.Extend(pivot))
}

// leftPartial returns P ∪ covered, where covered is every recipe in C
// that is a subset of the footprint extended by pivot (including pivot
// itself).
func (e *Engine) leftPartial(P, C []Recipe, fp BitSet, pivot Recipe) []Recipe {
	newFootprint := fp.Union(pivot)
	out := append([]Recipe(nil), P...)
	for _, r := range C {
		if r.IsSubset(newFootprint) {
			out = append(out, r)
		}
	}
	return out
}

// leftCandidates returns the candidate pool for the "include pivot"
// branch: every recipe in C, minus the newly covered ones, that still
// fits the ingredient budget and is not blocked by F.
func (e *Engine) leftCandidates(C []Recipe, fp BitSet, pivot Recipe, F Forbidden) []Recipe {
	newFootprint := fp.Union(pivot)
	var out []Recipe
	for _, r := range C {
		if r.IsSubset(newFootprint) {
			continue // covered, moves to P instead
		}
		extended := r.Union(newFootprint)
		if extended.Size() > e.k {
			continue
		}
		if F.IsForbidden(extended) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// rightCandidates returns the candidate pool for the "exclude pivot
// forever" branch: every recipe in C other than pivot that would not,
// together with what's already committed, re-cover pivot.
func (e *Engine) rightCandidates(C []Recipe, fp BitSet, pivot Recipe) []Recipe {
	pivotKey := pivot.Key()
	var out []Recipe
	for _, r := range C {
		if r.Key() == pivotKey {
			continue
		}
		if pivot.IsSubset(r.Union(fp)) {
			continue
		}
		out = append(out, r)
	}
	return out
}
