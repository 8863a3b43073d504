package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsUsable(t *testing.T) {
	var v Vector[int]
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap())
	assert.True(t, v.IsEmpty())

	v.PopBack() // no-op on empty
	require.NoError(t, v.PushBack(42))
	assert.Equal(t, 1, v.Len())
	assert.Equal(t, 42, v.At(0))
}

func TestPushPopLaw(t *testing.T) {
	var v Vector[int]
	for i := range 100 {
		require.NoError(t, v.PushBack(i))
	}
	require.Equal(t, 100, v.Len())
	for i := range 100 {
		assert.Equal(t, i, v.At(i), "element %d must match insertion order", i)
	}

	for range 40 {
		v.PopBack()
	}
	assert.Equal(t, 60, v.Len(), "size equals net push/pop count")
	assert.Equal(t, 59, v.At(59))
}

func TestDoublingGrowthSequence(t *testing.T) {
	var caps []int
	v, err := New[int](WithOnGrow(func(oldCap, newCap int) {
		caps = append(caps, newCap)
	}))
	require.NoError(t, err)

	for i := range 9 {
		require.NoError(t, v.PushBack(i))
	}
	assert.Equal(t, []int{1, 2, 4, 8, 16}, caps)
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, 5, v.Stats().Grows)
}

func TestCapacityNeverShrinksImplicitly(t *testing.T) {
	var v Vector[int]
	for i := range 20 {
		require.NoError(t, v.PushBack(i))
	}
	grown := v.Cap()

	require.NoError(t, v.Resize(3))
	assert.Equal(t, grown, v.Cap(), "shrinking the length must keep capacity")
	v.Clear()
	assert.Equal(t, grown, v.Cap(), "Clear must keep capacity")
	require.NoError(t, v.Reserve(grown-1))
	assert.Equal(t, grown, v.Cap(), "Reserve below capacity is a no-op")
}

func TestNewOptions(t *testing.T) {
	v, err := New[string](WithCapacity(10))
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 10, v.Cap())

	w, err := New[string](WithLen(4))
	require.NoError(t, err)
	assert.Equal(t, 4, w.Len())
	assert.Equal(t, "", w.At(3), "WithLen fills with zero values")

	u, err := New[string](WithLen(3), WithCapacity(12))
	require.NoError(t, err)
	assert.Equal(t, 3, u.Len())
	assert.Equal(t, 12, u.Cap())
}

func TestOptionMisusePanics(t *testing.T) {
	assert.Panics(t, func() { WithCapacity(-1) })
	assert.Panics(t, func() { WithLen(-1) })
	assert.Panics(t, func() { WithOnGrow(nil) })
}

func TestOf(t *testing.T) {
	v, err := Of(3, 1, 4, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 5, v.Cap(), "Of sizes storage exactly")
	assert.Equal(t, []int{3, 1, 4, 1, 5}, v.Slice())
}

func TestIndexMisusePanics(t *testing.T) {
	v, err := Of(1, 2, 3)
	require.NoError(t, err)

	assert.Panics(t, func() { v.At(-1) })
	assert.Panics(t, func() { v.At(3) })
	assert.Panics(t, func() { v.Ref(3) })
	assert.Panics(t, func() { v.Set(3, 0) })
	assert.Panics(t, func() { v.Erase(3) })
	assert.Panics(t, func() { v.Insert(4, 0) })
	assert.Panics(t, func() { v.Resize(-1) })
}

func TestSetDestroysOverwrittenValue(t *testing.T) {
	log := &lifetimeLog{}
	var v Vector[tracked]
	require.NoError(t, v.PushBack(tracked{id: 1, log: log}))
	require.NoError(t, v.PushBack(tracked{id: 2, log: log}))

	v.Set(0, tracked{id: 9, log: log})
	assert.Equal(t, []int{1}, log.destroyed, "overwrite destroys exactly the old value")
	assert.Equal(t, 9, v.At(0).id)
}

func TestSwapIsO1Exchange(t *testing.T) {
	a, err := Of(1, 2, 3)
	require.NoError(t, err)
	b, err := Of(9)
	require.NoError(t, err)

	a.Swap(b)
	assert.Equal(t, []int{9}, a.Slice())
	assert.Equal(t, []int{1, 2, 3}, b.Slice())

	a.Swap(a) // self-swap is a no-op
	assert.Equal(t, []int{9}, a.Slice())
}

func TestClearAndRelease(t *testing.T) {
	log := &lifetimeLog{}
	var v Vector[tracked]
	for i := 1; i <= 3; i++ {
		require.NoError(t, v.PushBack(tracked{id: i, log: log}))
	}

	v.Clear()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, []int{1, 2, 3}, log.destroyed, "Clear destroys in index order")
	assert.Greater(t, v.Cap(), 0)

	require.NoError(t, v.PushBack(tracked{id: 4, log: log}))
	v.Release()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 0, v.Cap(), "Release surrenders storage")
	assert.Equal(t, []int{1, 2, 3, 4}, log.destroyed)
}

// The end-to-end walk from the acceptance scenario: push, insert,
// erase, pop.
func TestScenarioWalk(t *testing.T) {
	var v Vector[int]
	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PushBack(2))
	require.NoError(t, v.PushBack(3))

	require.Equal(t, 3, v.Len())
	assert.Equal(t, []int{1, 2, 3}, v.Slice())
	assert.Equal(t, 4, v.Cap(), "doubling from 1: 1, 2, 4")

	require.NoError(t, v.Insert(1, 9))
	assert.Equal(t, []int{1, 9, 2, 3}, v.Slice())

	v.Erase(2)
	assert.Equal(t, []int{1, 9, 3}, v.Slice())

	v.PopBack()
	v.PopBack()
	assert.Equal(t, []int{1}, v.Slice())
	assert.Equal(t, 1, v.Len())
}

func TestStatsSnapshot(t *testing.T) {
	var v Vector[int]
	require.NoError(t, v.PushBack(1))
	require.NoError(t, v.PushBack(2))
	require.NoError(t, v.PushBack(3))

	st := v.Stats()
	assert.Equal(t, 3, st.Len)
	assert.Equal(t, 4, st.Cap)
	assert.Equal(t, 3, st.Grows)
}
