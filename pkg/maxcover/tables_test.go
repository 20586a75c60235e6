package maxcover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTablesCardAndMinCover(t *testing.T) {
	// {0,1}, {0,2}, {3,4}
	r0 := FromElements(0, 1)
	r1 := FromElements(0, 2)
	r2 := FromElements(3, 4)
	tbl := buildTables([]Recipe{r0, r1, r2})

	assert.Equal(t, 2, tbl.card[0], "ingredient 0 appears in two recipes")
	assert.Equal(t, 1, tbl.card[1])
	assert.Equal(t, 1, tbl.card[2])
	assert.Equal(t, 1, tbl.card[3])

	// r0 = {0,1}: card[0]=2, card[1]=1 -> minCover = 1
	assert.Equal(t, 1, tbl.minCover[r0.Key()])
	// r2 = {3,4}: card[3]=1, card[4]=1 -> minCover = 1
	assert.Equal(t, 1, tbl.minCover[r2.Key()])
}

func TestBuildTablesAmortizedCost(t *testing.T) {
	// {0,1}, {0,2}: ingredient 0 is shared by both recipes.
	r0 := FromElements(0, 1)
	r1 := FromElements(0, 2)
	tbl := buildTables([]Recipe{r0, r1})

	// card[0] = 2, card[1] = 1, card[2] = 1
	// amortizedCost(r0) = 1/2 + 1/1 = 1.5
	assert.InDelta(t, 1.5, tbl.amortizedCost[r0.Key()], 1e-9)
	assert.InDelta(t, 1.5, tbl.amortizedCost[r1.Key()], 1e-9)
}
