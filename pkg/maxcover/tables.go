package maxcover

// tables holds the preprocessed statistics computed once, on the first
// Search call, over the initial recipe universe C₀. They are never
// recomputed after initialization — they describe the original
// universe, not whatever pruned candidate pool the search has reached.
type tables struct {
	// card[i] is the number of recipes in C₀ that contain ingredient i.
	card map[Iid]int

	// minCover[r] (keyed by Recipe.Key()) is min_{i∈r} card[i]: the
	// smallest recipe-count among r's own ingredients. A value of 1
	// marks r as having at least one ingredient unique to the original
	// universe.
	minCover map[string]int

	// amortizedCost[r] (keyed by Recipe.Key()) is Σ_{i∈r} 1/card[i]:
	// each ingredient's cost split evenly across every recipe that
	// uses it, summed over r's ingredients. A lower bound on the
	// ingredient cost attributable to r in any feasible covering.
	amortizedCost map[string]float64
}

// buildTables computes card, minCover, and amortizedCost over c0, the
// original recipe universe passed to the first Search call.
func buildTables(c0 []Recipe) tables {
	card := make(map[Iid]int)
	for _, r := range c0 {
		it := r.Iterator()
		for i, ok := it.Next(); ok; i, ok = it.Next() {
			card[i]++
		}
	}

	minCover := make(map[string]int, len(c0))
	amortizedCost := make(map[string]float64, len(c0))
	for _, r := range c0 {
		min := -1
		var cost float64
		it := r.Iterator()
		for i, ok := it.Next(); ok; i, ok = it.Next() {
			c := card[i]
			if min == -1 || c < min {
				min = c
			}
			cost += 1.0 / float64(c)
		}
		if min == -1 {
			// An empty recipe has no ingredients to constrain the
			// bound on; treat it as maximally unconstrained.
			min = 0
		}
		minCover[r.Key()] = min
		amortizedCost[r.Key()] = cost
	}

	return tables{card: card, minCover: minCover, amortizedCost: amortizedCost}
}
