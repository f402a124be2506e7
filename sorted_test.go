package chunklist

import (
	"cmp"
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/chunklist/testutil"
)

// refSorted is a trivial flat-slice sorted list used as the reference
// model in equivalence tests.
type refSorted struct {
	values []int
}

func (r *refSorted) add(v int) {
	i, _ := slices.BinarySearch(r.values, v)
	r.values = slices.Insert(r.values, i, v)
}

func (r *refSorted) popFirst() (int, bool) {
	if len(r.values) == 0 {
		return 0, false
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v, true
}

func (r *refSorted) popLast() (int, bool) {
	if len(r.values) == 0 {
		return 0, false
	}
	v := r.values[len(r.values)-1]
	r.values = r.values[:len(r.values)-1]
	return v, true
}

func sortedValues[T any](l *SortedList[T]) []T {
	var out []T
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func TestSortedList(t *testing.T) {
	t.Run("AddAndAccess", func(t *testing.T) {
		list := NewSortedList[int]()
		assert.Equal(t, 0, list.Len())

		list.Add(3)

		assert.True(t, list.Contains(3))
		assert.False(t, list.Contains(13))

		first, ok := list.First()
		require.True(t, ok)
		assert.Equal(t, 3, first)

		last, ok := list.Last()
		require.True(t, ok)
		assert.Equal(t, 3, last)

		list.Add(13)

		assert.Equal(t, 2, list.Len())
		assert.True(t, list.Contains(3))
		assert.True(t, list.Contains(13))
		assert.False(t, list.Contains(1))

		v, ok := list.PopLast()
		require.True(t, ok)
		assert.Equal(t, 13, v)

		last, ok = list.Last()
		require.True(t, ok)
		assert.Equal(t, 3, last)

		v, ok = list.PopFirst()
		require.True(t, ok)
		assert.Equal(t, 3, v)
		assert.Equal(t, 0, list.Len())
	})

	t.Run("EmptyPops", func(t *testing.T) {
		list := NewSortedList[int]()

		_, ok := list.PopFirst()
		assert.False(t, ok)
		_, ok = list.PopLast()
		assert.False(t, ok)
		assert.Equal(t, 0, list.Len())

		_, ok = list.First()
		assert.False(t, ok)
		_, ok = list.Last()
		assert.False(t, ok)
	})

	t.Run("UnsortedInputComesOutSorted", func(t *testing.T) {
		list := NewSortedList[int](WithLoadFactor(4))
		input := testutil.NewGenerator(11).Ints(5000, -10_000, 10_000)
		for _, v := range input {
			list.Add(v)
		}

		want := slices.Clone(input)
		slices.Sort(want)
		assert.Equal(t, want, sortedValues(list))
		assert.Equal(t, len(input), list.Len())
	})

	t.Run("DuplicatesRetained", func(t *testing.T) {
		list := NewSortedList[int](WithLoadFactor(2))
		for range 100 {
			list.Add(7)
		}
		assert.Equal(t, 100, list.Len())
		assert.True(t, list.Contains(7))

		for _, v := range sortedValues(list) {
			require.Equal(t, 7, v)
		}
	})

	t.Run("At", func(t *testing.T) {
		list := SortedListOf(5, 1, 4, 2, 3)
		for i, want := range []int{1, 2, 3, 4, 5} {
			assert.Equal(t, want, list.At(i))
		}

		assert.PanicsWithError(t, "chunklist: index 5 out of range with length 5", func() {
			list.At(5)
		})
		assert.PanicsWithError(t, "chunklist: index -1 out of range with length 5", func() {
			list.At(-1)
		})
	})

	t.Run("ContainsIdempotent", func(t *testing.T) {
		list := SortedListOf(1, 2, 3)
		for range 10 {
			assert.True(t, list.Contains(2))
			assert.False(t, list.Contains(9))
		}
	})

	t.Run("CustomComparator", func(t *testing.T) {
		// Reverse numeric order.
		list := NewSortedListFunc(func(a, b int) int { return cmp.Compare(b, a) })
		for _, v := range []int{2, 9, 5} {
			list.Add(v)
		}

		assert.Equal(t, []int{9, 5, 2}, sortedValues(list))

		first, _ := list.First()
		last, _ := list.Last()
		assert.Equal(t, 9, first)
		assert.Equal(t, 2, last)
	})

	t.Run("From", func(t *testing.T) {
		list := SortedListFrom(slices.Values([]int{3, 1, 2}), WithLoadFactor(2))
		assert.Equal(t, []int{1, 2, 3}, sortedValues(list))
		assert.Equal(t, 2, list.LoadFactor())
	})
}

func TestSortedListSortednessProperty(t *testing.T) {
	prop := func(input []int16) bool {
		list := NewSortedList[int16](WithLoadFactor(3))
		for _, v := range input {
			list.Add(v)
			if !slices.IsSorted(sortedValues(list)) {
				return false
			}
		}
		return list.Len() == len(input)
	}
	if err := quick.Check(prop, nil); err != nil {
		t.Error(err)
	}
}

func TestSortedListMatchesReferenceModel(t *testing.T) {
	list := NewSortedList[int](WithLoadFactor(4))
	ref := &refSorted{}

	ops := testutil.NewGenerator(23).Workload(20_000, testutil.Mix{Add: 6, PopFirst: 2, PopLast: 2})
	for _, op := range ops {
		switch op.Kind {
		case testutil.OpAdd:
			list.Add(op.Value)
			ref.add(op.Value)
		case testutil.OpPopFirst:
			got, gotOK := list.PopFirst()
			want, wantOK := ref.popFirst()
			require.Equal(t, wantOK, gotOK)
			require.Equal(t, want, got)
		case testutil.OpPopLast:
			got, gotOK := list.PopLast()
			want, wantOK := ref.popLast()
			require.Equal(t, wantOK, gotOK)
			require.Equal(t, want, got)
		}
	}

	require.Equal(t, len(ref.values), list.Len())
	if len(ref.values) > 0 {
		assert.Equal(t, ref.values, sortedValues(list))
	}
}

func TestSortedListStrings(t *testing.T) {
	list := NewSortedList[string](WithLoadFactor(8))
	words := testutil.NewGenerator(5).Words(1000)
	for _, w := range words {
		list.Add(w)
	}

	got := sortedValues(list)
	want := slices.Clone(words)
	slices.Sort(want)
	assert.Equal(t, want, got)
}
