package chunklist

import (
	"iter"

	"github.com/hupe1980/chunklist/internal/chunk"
)

// UnsortedList is a chunked list that preserves insertion order, usable
// as a drop-in replacement for a large slice when arbitrary positional
// insertion and removal matter: a flat slice shifts up to Len()
// elements per insert, while the chunked layout shifts at most one
// chunk's worth.
//
// UnsortedList is not safe for concurrent use.
type UnsortedList[T any] struct {
	store   *chunk.Store[T]
	equal   func(a, b T) bool
	logger  *Logger
	metrics MetricsCollector
}

// NewUnsortedList creates an empty UnsortedList using == for Contains.
func NewUnsortedList[T comparable](opts ...Option) *UnsortedList[T] {
	return NewUnsortedListFunc(func(a, b T) bool { return a == b }, opts...)
}

// NewUnsortedListFunc creates an empty UnsortedList using equal for
// Contains. Useful for element types that are not comparable with ==.
func NewUnsortedListFunc[T any](equal func(a, b T) bool, opts ...Option) *UnsortedList[T] {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &UnsortedList[T]{
		store:   chunk.New[T](o.loadFactor),
		equal:   equal,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// UnsortedListFrom creates an UnsortedList holding every element of seq
// in traversal order.
func UnsortedListFrom[T comparable](seq iter.Seq[T], opts ...Option) *UnsortedList[T] {
	list := NewUnsortedList[T](opts...)
	for v := range seq {
		list.Push(v)
	}
	return list
}

// UnsortedListOf creates an UnsortedList holding the given values in
// order.
func UnsortedListOf[T comparable](values ...T) *UnsortedList[T] {
	list := NewUnsortedList[T]()
	for _, v := range values {
		list.Push(v)
	}
	return list
}

// Push appends v after the current last element.
func (l *UnsortedList[T]) Push(v T) {
	i := l.store.Append(v)
	if l.metrics != nil {
		l.metrics.RecordInsert()
	}
	if l.store.Expand(i) {
		l.noteSplit(i)
	}
}

// Insert places v at logical position i, shifting later elements right.
// i == Len() appends. It panics with an *OutOfRangeError when i is
// outside [0, Len()].
func (l *UnsortedList[T]) Insert(i int, v T) {
	checkInsert(i, l.store.Len())
	ci := l.store.InsertAt(i, v)
	if l.metrics != nil {
		l.metrics.RecordInsert()
	}
	if l.store.Expand(ci) {
		l.noteSplit(ci)
	}
}

// Pop removes and returns the last element. The second result is false
// when the list is empty, in which case the list is unchanged.
func (l *UnsortedList[T]) Pop() (T, bool) {
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

// PopFirst removes and returns the first element. The second result is
// false when the list is empty, in which case the list is unchanged.
func (l *UnsortedList[T]) PopFirst() (T, bool) {
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

// Contains reports whether at least one element equal to v is present.
// Linear in the number of elements.
func (l *UnsortedList[T]) Contains(v T) bool {
	return l.store.ContainsFunc(v, l.equal)
}

// First returns the first element. The second result is false when the
// list is empty.
func (l *UnsortedList[T]) First() (T, bool) {
	return l.store.First()
}

// Last returns the last element. The second result is false when the
// list is empty.
func (l *UnsortedList[T]) Last() (T, bool) {
	return l.store.Last()
}

// At returns the element at logical position i. It panics with an
// *OutOfRangeError when i is outside [0, Len()).
func (l *UnsortedList[T]) At(i int) T {
	checkRead(i, l.store.Len())
	return l.store.Get(i)
}

// Set replaces the element at logical position i. It panics with an
// *OutOfRangeError when i is outside [0, Len()).
func (l *UnsortedList[T]) Set(i int, v T) {
	checkRead(i, l.store.Len())
	l.store.Set(i, v)
}

// Len returns the number of elements. It is maintained incrementally
// and costs O(1).
func (l *UnsortedList[T]) Len() int {
	return l.store.Len()
}

// LoadFactor returns the target chunk size the list was built with.
func (l *UnsortedList[T]) LoadFactor() int {
	return l.store.LoadFactor()
}

func (l *UnsortedList[T]) noteSplit(i int) {
	if l.metrics != nil {
		l.metrics.RecordSplit(l.store.ChunkCount())
	}
	if l.logger != nil {
		l.logger.LogSplit(i, l.store.ChunkCount(), l.store.Len())
	}
}

func (l *UnsortedList[T]) noteMerge(i int) {
	if l.metrics != nil {
		l.metrics.RecordMerge(l.store.ChunkCount())
	}
	if l.logger != nil {
		l.logger.LogMerge(i, l.store.ChunkCount(), l.store.Len())
	}
}
