package chunklist

import (
	"cmp"
	"iter"

	"github.com/hupe1980/chunklist/internal/chunk"
)

// SortedList is a chunked list that keeps its elements sorted under a
// total order at all times. Every insertion binary-searches the chunk
// boundary keys for the target chunk, then the chunk itself for the
// insertion offset, so equal values accumulate in existing runs.
//
// SortedList is not safe for concurrent use.
type SortedList[T any] struct {
	store   *chunk.Store[T]
	compare func(a, b T) int
	logger  *Logger
	metrics MetricsCollector
}

// NewSortedList creates an empty SortedList ordered by cmp.Compare.
func NewSortedList[T cmp.Ordered](opts ...Option) *SortedList[T] {
	return NewSortedListFunc(cmp.Compare[T], opts...)
}

// NewSortedListFunc creates an empty SortedList ordered by compare,
// which must define a pure total order: negative when a sorts before b,
// zero when equal, positive when after.
func NewSortedListFunc[T any](compare func(a, b T) int, opts ...Option) *SortedList[T] {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &SortedList[T]{
		store:   chunk.New[T](o.loadFactor),
		compare: compare,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// SortedListFrom creates a SortedList holding every element of seq. The
// input does not need to be sorted.
func SortedListFrom[T cmp.Ordered](seq iter.Seq[T], opts ...Option) *SortedList[T] {
	list := NewSortedList[T](opts...)
	for v := range seq {
		list.Add(v)
	}
	return list
}

// SortedListOf creates a SortedList holding the given values.
func SortedListOf[T cmp.Ordered](values ...T) *SortedList[T] {
	list := NewSortedList[T]()
	for _, v := range values {
		list.Add(v)
	}
	return list
}

// Add inserts v, keeping the list sorted. Equal values are retained
// (multiset semantics).
func (l *SortedList[T]) Add(v T) {
	i := l.store.InsertSorted(v, l.compare)
	if l.metrics != nil {
		l.metrics.RecordInsert()
	}
	if l.store.Expand(i) {
		l.noteSplit(i)
	}
}

// Contains reports whether at least one element equal to v is present.
func (l *SortedList[T]) Contains(v T) bool {
	return l.store.ContainsSorted(v, l.compare)
}

// First returns the minimum element. The second result is false when
// the list is empty.
func (l *SortedList[T]) First() (T, bool) {
	return l.store.First()
}

// Last returns the maximum element. The second result is false when the
// list is empty.
func (l *SortedList[T]) Last() (T, bool) {
	return l.store.Last()
}

// PopFirst removes and returns the minimum element. The second result
// is false when the list is empty, in which case the list is unchanged.
func (l *SortedList[T]) PopFirst() (T, bool) {
	v, ok := l.store.PopFirst()
	if !ok {
		return v, false
	}
	if l.metrics != nil {
		l.metrics.RecordRemove()
	}
	if l.store.Contract(0) {
		l.noteMerge(0)
	}
	return v, true
}

// PopLast removes and returns the maximum element. The second result is
// false when the list is empty, in which case the list is unchanged.
func (l *SortedList[T]) PopLast() (T, bool) {
	v, ok := l.store.PopLast()
	if !ok {
		return v, false
	}
	if l.metrics != nil {
		l.metrics.RecordRemove()
	}
	i := l.store.ChunkCount() - 1
	if l.store.Contract(i) {
		l.noteMerge(i)
	}
	return v, true
}

// At returns the i-th smallest element (0-based). It panics with an
// *OutOfRangeError when i is outside [0, Len()).
//
// There is no positional Set on a sorted list: overwriting an element
// in place could violate the ordering invariant.
func (l *SortedList[T]) At(i int) T {
	checkRead(i, l.store.Len())
	return l.store.Get(i)
}

// Len returns the number of elements. It is maintained incrementally
// and costs O(1).
func (l *SortedList[T]) Len() int {
	return l.store.Len()
}

// LoadFactor returns the target chunk size the list was built with.
func (l *SortedList[T]) LoadFactor() int {
	return l.store.LoadFactor()
}

func (l *SortedList[T]) noteSplit(i int) {
	if l.metrics != nil {
		l.metrics.RecordSplit(l.store.ChunkCount())
	}
	if l.logger != nil {
		l.logger.LogSplit(i, l.store.ChunkCount(), l.store.Len())
	}
}

func (l *SortedList[T]) noteMerge(i int) {
	if l.metrics != nil {
		l.metrics.RecordMerge(l.store.ChunkCount())
	}
	if l.logger != nil {
		l.logger.LogMerge(i, l.store.ChunkCount(), l.store.Len())
	}
}
