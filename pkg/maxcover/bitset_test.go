package maxcover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSetEmptyLaws(t *testing.T) {
	a := FromElements(1, 3, 5)
	empty := Empty()

	assert.True(t, a.Union(empty).Equal(a), "a ∪ ∅ = a")
	assert.True(t, a.Intersection(empty).Equal(empty), "a ∩ ∅ = ∅")
	assert.True(t, a.Difference(empty).Equal(a), "a − ∅ = a")
	assert.True(t, empty.Difference(a).Equal(empty), "∅ − a = ∅")
}

func TestBitSetCommutativityAndAssociativity(t *testing.T) {
	a := FromElements(1, 2, 3)
	b := FromElements(2, 3, 4)
	c := FromElements(3, 4, 5)

	assert.True(t, a.Union(b).Equal(b.Union(a)))
	assert.True(t, a.Intersection(b).Equal(b.Intersection(a)))

	assert.True(t, a.Union(b).Union(c).Equal(a.Union(b.Union(c))))
	assert.True(t, a.Intersection(b).Intersection(c).Equal(a.Intersection(b.Intersection(c))))
}

func TestBitSetIdempotence(t *testing.T) {
	a := FromElements(7, 8, 9)
	assert.True(t, a.Union(a).Equal(a))
	assert.True(t, a.Intersection(a).Equal(a))
}

func TestBitSetInclusionExclusion(t *testing.T) {
	a := FromElements(1, 2, 3, 4)
	b := FromElements(3, 4, 5, 6)

	union := a.Union(b)
	inter := a.Intersection(b)

	assert.Equal(t, a.Size()+b.Size()-inter.Size(), union.Size())
}

func TestBitSetSubsetEquivalences(t *testing.T) {
	a := FromElements(1, 2)
	b := FromElements(1, 2, 3)

	assert.True(t, a.IsSubset(b))
	assert.True(t, a.Union(b).Equal(b))
	assert.True(t, a.Difference(b).IsEmpty())

	c := FromElements(5, 6)
	assert.False(t, c.IsSubset(b))
}

func TestBitSetRoundTripAndAscendingIteration(t *testing.T) {
	elems := []int{9, 0, 130, 64, 3}
	a := FromElements(elems...)

	roundTripped := FromElements(a.Elements()...)
	assert.True(t, a.Equal(roundTripped))

	got := a.Elements()
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i], "iteration must be strictly ascending")
	}
}

func TestBitSetIteratorRestart(t *testing.T) {
	a := FromElements(1, 5, 9)
	it := a.Iterator()
	var first []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		first = append(first, v)
	}
	it.Reset()
	var second []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		second = append(second, v)
	}
	assert.Equal(t, first, second)
}

func TestBitSetEqualityImpliesEqualHash(t *testing.T) {
	a := FromElements(1, 2, 200)
	b := Empty()
	b.Insert(200)
	b.Insert(2)
	b.Insert(1)

	require.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a.Key(), b.Key())
}

func TestBitSetTotalOrder(t *testing.T) {
	a := FromElements(1, 2)
	b := FromElements(1, 3)
	c := FromElements(1, 2, 3)

	assert.Equal(t, 0, a.Compare(a), "reflexive")

	if a.Compare(b) < 0 {
		assert.Greater(t, b.Compare(a), 0, "antisymmetric")
	}

	// a < c < b in this construction: a is a prefix of c, and c's second
	// element 2 < b's second element 3.
	assert.Less(t, a.Compare(b), 0)
	assert.Less(t, a.Compare(c), 0)
	assert.Less(t, c.Compare(b), 0)
}

func TestBitSetSpillsBeyondInlineWords(t *testing.T) {
	a := FromElements(0, 200, 500)
	assert.True(t, a.Contains(500))
	assert.Equal(t, 3, a.Size())

	b := Empty()
	for i := 0; i <= 500; i++ {
		if i == 0 || i == 200 || i == 500 {
			b.Insert(i)
		}
	}
	assert.True(t, a.Equal(b))
}

func TestBitSetAssignVariants(t *testing.T) {
	a := FromElements(1, 2, 3)
	b := FromElements(3, 4, 5)

	union := a
	union.UnionAssign(b)
	assert.True(t, union.Equal(a.Union(b)))

	inter := a
	inter.IntersectionAssign(b)
	assert.True(t, inter.Equal(a.Intersection(b)))

	diff := a
	diff.DifferenceAssign(b)
	assert.True(t, diff.Equal(a.Difference(b)))
}

func TestBitSetInsertIsIdempotent(t *testing.T) {
	a := Empty()
	a.Insert(42)
	a.Insert(42)
	assert.Equal(t, 1, a.Size())
}
