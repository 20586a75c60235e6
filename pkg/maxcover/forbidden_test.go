package maxcover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForbiddenExtendIsolatesSiblings(t *testing.T) {
	base := EmptyForbidden()
	a := FromElements(0, 1)
	b := FromElements(2, 3)

	withA := base.Extend(a)
	withB := base.Extend(b)

	assert.Equal(t, 1, withA.Len())
	assert.Equal(t, 1, withB.Len())
	assert.Equal(t, 0, base.Len(), "extending must not mutate the parent")

	assert.True(t, withA.IsForbidden(FromElements(0, 1, 9)))
	assert.False(t, withA.IsForbidden(FromElements(2, 3, 9)))
	assert.True(t, withB.IsForbidden(FromElements(2, 3, 9)))
}

func TestForbiddenEmptyNeverBlocks(t *testing.T) {
	f := EmptyForbidden()
	assert.False(t, f.IsForbidden(FromElements(1, 2, 3)))
	assert.False(t, f.IsForbidden(Empty()))
}
