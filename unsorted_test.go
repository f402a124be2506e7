package chunklist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/chunklist/testutil"
)

func unsortedValues[T any](l *UnsortedList[T]) []T {
	var out []T
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func TestUnsortedList(t *testing.T) {
	t.Run("PushPreservesOrder", func(t *testing.T) {
		list := NewUnsortedList[int64]()
		assert.Equal(t, 0, list.Len())

		list.Push(3)
		list.Push(-22)
		list.Push(11)

		assert.Equal(t, []int64{3, -22, 11}, unsortedValues(list))
		assert.Equal(t, 3, list.Len())
	})

	t.Run("PopEndsAndEmpty", func(t *testing.T) {
		list := UnsortedListOf(1, 2, 3)

		v, ok := list.Pop()
		require.True(t, ok)
		assert.Equal(t, 3, v)

		v, ok = list.PopFirst()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = list.Pop()
		require.True(t, ok)
		assert.Equal(t, 2, v)

		_, ok = list.Pop()
		assert.False(t, ok)
		_, ok = list.PopFirst()
		assert.False(t, ok)
		assert.Equal(t, 0, list.Len())
	})

	t.Run("Insert", func(t *testing.T) {
		list := NewUnsortedList[string](WithLoadFactor(2))
		list.Push("b")
		list.Insert(0, "a")
		list.Insert(2, "d")
		list.Insert(2, "c")

		assert.Equal(t, []string{"a", "b", "c", "d"}, unsortedValues(list))

		// i == Len() appends.
		list.Insert(list.Len(), "e")
		last, _ := list.Last()
		assert.Equal(t, "e", last)

		assert.PanicsWithError(t, "chunklist: index 6 out of range with length 5", func() {
			list.Insert(6, "x")
		})
	})

	t.Run("IndexedAccess", func(t *testing.T) {
		list := UnsortedListOf(10, 20, 30)

		assert.Equal(t, 20, list.At(1))

		list.Set(1, 21)
		assert.Equal(t, 21, list.At(1))
		assert.Equal(t, []int{10, 21, 30}, unsortedValues(list))

		assert.PanicsWithError(t, "chunklist: index 3 out of range with length 3", func() {
			list.At(3)
		})
		assert.PanicsWithError(t, "chunklist: index 3 out of range with length 3", func() {
			list.Set(3, 0)
		})
		assert.PanicsWithError(t, "chunklist: index -1 out of range with length 3", func() {
			list.At(-1)
		})
	})

	t.Run("Contains", func(t *testing.T) {
		list := UnsortedListOf("c", "a", "b")
		assert.True(t, list.Contains("a"))
		assert.False(t, list.Contains("z"))
	})

	t.Run("ContainsFunc", func(t *testing.T) {
		type point struct{ x, y []int }
		eq := func(a, b point) bool {
			return slices.Equal(a.x, b.x) && slices.Equal(a.y, b.y)
		}

		list := NewUnsortedListFunc(eq)
		list.Push(point{x: []int{1}, y: []int{2}})

		assert.True(t, list.Contains(point{x: []int{1}, y: []int{2}}))
		assert.False(t, list.Contains(point{x: []int{1}, y: []int{3}}))
	})

	t.Run("FirstLast", func(t *testing.T) {
		list := NewUnsortedList[int]()
		_, ok := list.First()
		assert.False(t, ok)
		_, ok = list.Last()
		assert.False(t, ok)

		list.Push(5)
		list.Push(6)

		first, ok := list.First()
		require.True(t, ok)
		assert.Equal(t, 5, first)

		last, ok := list.Last()
		require.True(t, ok)
		assert.Equal(t, 6, last)
	})

	t.Run("From", func(t *testing.T) {
		list := UnsortedListFrom(slices.Values([]int{3, 1, 2}))
		assert.Equal(t, []int{3, 1, 2}, unsortedValues(list))
	})
}

func TestUnsortedListMatchesSliceModel(t *testing.T) {
	// Random positional inserts and pops against a plain slice, with a
	// load factor small enough to force constant rebalancing.
	list := NewUnsortedList[int](WithLoadFactor(3))
	var ref []int

	gen := testutil.NewGenerator(31)
	for i := range 10_000 {
		switch {
		case i%7 == 3 && len(ref) > 0:
			got, ok := list.Pop()
			require.True(t, ok)
			require.Equal(t, ref[len(ref)-1], got)
			ref = ref[:len(ref)-1]
		case i%11 == 5 && len(ref) > 0:
			got, ok := list.PopFirst()
			require.True(t, ok)
			require.Equal(t, ref[0], got)
			ref = ref[1:]
		default:
			pos := gen.Ints(1, 0, len(ref))[0]
			list.Insert(pos, i)
			ref = slices.Insert(ref, pos, i)
		}
		require.Equal(t, len(ref), list.Len())
	}

	assert.Equal(t, ref, unsortedValues(list))
	for _, pos := range gen.Perm(len(ref))[:100] {
		require.Equal(t, ref[pos], list.At(pos))
	}
}

func TestUnsortedListRoundTrip(t *testing.T) {
	input := testutil.NewGenerator(17).Ints(2000, -500, 500)

	list := NewUnsortedList[int](WithLoadFactor(8))
	for _, v := range input {
		list.Push(v)
	}

	var out []int
	for v := range list.Drain() {
		out = append(out, v)
	}
	assert.Equal(t, input, out)
	assert.Equal(t, 0, list.Len())
}
