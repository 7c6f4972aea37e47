package collections

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStack_PushPop tests LIFO behavior.
func TestStack_PushPop(t *testing.T) {
	t.Parallel()

	var s Stack[string]

	assert.True(t, s.IsEmpty())
	assert.Equal(t, "a", s.Push("a"))
	assert.Equal(t, "b", s.Push("b"))
	assert.Equal(t, 2, s.Size())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "b", top)

	item, ok := s.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", item)

	item, ok = s.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", item)

	item, ok = s.Pop()
	assert.False(t, ok)
	assert.Empty(t, item)

	_, ok = s.Peek()
	assert.False(t, ok)
}

// TestStack_AllReturnsCopy tests that All does not expose internal storage.
func TestStack_AllReturnsCopy(t *testing.T) {
	t.Parallel()

	s := NewStack(1, 2, 3)

	all := s.All()
	all[0] = 100

	assert.Equal(t, []int{1, 2, 3}, s.All())

	empty := NewStack[int]()
	assert.NotNil(t, empty.All())
	assert.Empty(t, empty.All())
}

// TestSet tests insertion order and membership.
func TestSet(t *testing.T) {
	t.Parallel()

	s := NewSet("cat", "ant", "bee", "ant")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"cat", "ant", "bee"}, s.Values())
	assert.True(t, s.Has("bee"))
	assert.False(t, s.Add("cat"))
	assert.True(t, s.Add("eel"))

	assert.True(t, s.Remove("ant"))
	assert.False(t, s.Remove("ant"))
	assert.False(t, s.Has("ant"))
	assert.Equal(t, []string{"cat", "bee", "eel"}, slices.Collect(s.All()))

	// Positions are reindexed after removal.
	assert.True(t, s.Remove("eel"))
	assert.Equal(t, []string{"cat", "bee"}, s.Values())
}
