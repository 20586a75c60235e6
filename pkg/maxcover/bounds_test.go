package maxcover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalBound(t *testing.T) {
	c := []Recipe{FromElements(0, 1), FromElements(2, 3), FromElements(4, 5)}
	state := BoundState{C: c}
	assert.Equal(t, 3, TotalBound{}.Compute(state))
}

func TestSingletonBoundFromSpecExample(t *testing.T) {
	// Recipes: {0,1},{0,2},{0,3},{0,4},{5,6}; k=4.
	recipes := []Recipe{
		FromElements(0, 1), FromElements(0, 2), FromElements(0, 3),
		FromElements(0, 4), FromElements(5, 6),
	}
	tbl := buildTables(recipes)

	state := BoundState{
		C:         recipes,
		Footprint: Empty(),
		K:         4,
		MinCover:  tbl.minCover,
	}
	// card[0]=4 so none of the first four recipes have minCover==1 via
	// ingredient 0, but ingredients 1..6 each have card 1, so every
	// recipe has minCover == 1 (its non-0 ingredient is unique).
	unique := 0
	for _, r := range recipes {
		if tbl.minCover[r.Key()] == 1 {
			unique++
		}
	}
	assert.Equal(t, 5, unique)

	got := SingletonBound{}.Compute(state)
	slack := 4 - 0
	want := len(recipes) - unique + minInt(unique, slack)
	assert.Equal(t, want, got)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func TestConcentrationBoundNoExcessReturnsTotal(t *testing.T) {
	c := []Recipe{FromElements(0, 1), FromElements(2, 3)}
	state := BoundState{C: c, Footprint: Empty(), K: 10}
	assert.Equal(t, len(c), ConcentrationBound{}.Compute(state))
}

func TestConcentrationBoundWithExcess(t *testing.T) {
	// Universe needs 4 ingredients but budget is 2: one recipe must be
	// dropped in the best case.
	c := []Recipe{FromElements(0, 1), FromElements(2, 3)}
	state := BoundState{C: c, Footprint: Empty(), K: 2}
	got := ConcentrationBound{}.Compute(state)
	assert.Equal(t, 1, got)
}

func TestAmortizedCostBoundAdmitsWithinBudget(t *testing.T) {
	recipes := []Recipe{FromElements(0, 1), FromElements(2, 3)}
	tbl := buildTables(recipes)
	state := BoundState{
		C:             recipes,
		P:             nil,
		K:             4,
		AmortizedCost: tbl.amortizedCost,
	}
	got := AmortizedCostBound{}.Compute(state)
	assert.Equal(t, 2, got)
}

func TestDefaultBoundsOrderAndCount(t *testing.T) {
	bounds := DefaultBounds()
	if assert.Len(t, bounds, 3) {
		assert.Equal(t, "total", bounds[0].Name())
		assert.Equal(t, "singleton", bounds[1].Name())
		assert.Equal(t, "concentration", bounds[2].Name())
	}
}
