// Package chunk implements the chunked storage engine shared by the
// sorted and unsorted list types. Elements live in an ordered sequence
// of bounded-size chunks; split and merge keep every chunk within a
// hysteresis band around a configurable load factor.
package chunk

import "slices"

// DefaultLoadFactor is the target chunk size used when the caller does
// not configure one. Split triggers at twice this value, merge at half.
const DefaultLoadFactor = 1000

// Store is an ordered sequence of chunks plus a running total length.
// The outer slice is never empty: a store with zero elements holds
// exactly one empty chunk. Chunks are created by split and destroyed by
// merge only; callers mutate elements through the positional and sorted
// primitives below.
//
// Store is not safe for concurrent use.
type Store[T any] struct {
	chunks     [][]T
	loadFactor int
	length     int
}

// New creates an empty store. A non-positive loadFactor falls back to
// DefaultLoadFactor.
func New[T any](loadFactor int) *Store[T] {
	if loadFactor <= 0 {
		loadFactor = DefaultLoadFactor
	}
	return &Store[T]{
		chunks:     [][]T{nil},
		loadFactor: loadFactor,
	}
}

// Len returns the total number of elements across all chunks.
func (s *Store[T]) Len() int { return s.length }

// LoadFactor returns the configured target chunk size.
func (s *Store[T]) LoadFactor() int { return s.loadFactor }

// ChunkCount returns the number of chunks, which is at least 1.
func (s *Store[T]) ChunkCount() int { return len(s.chunks) }

// ChunkLen returns the number of elements in chunk i.
func (s *Store[T]) ChunkLen(i int) int { return len(s.chunks[i]) }

// First returns the first element without removing it.
func (s *Store[T]) First() (T, bool) {
	if s.length == 0 {
		var zero T
		return zero, false
	}
	return s.chunks[0][0], true
}

// Last returns the last element without removing it.
func (s *Store[T]) Last() (T, bool) {
	if s.length == 0 {
		var zero T
		return zero, false
	}
	last := s.chunks[len(s.chunks)-1]
	return last[len(last)-1], true
}

// Append adds v after the current last element and returns the index of
// the chunk it landed in. The caller is responsible for the split check.
func (s *Store[T]) Append(v T) int {
	i := len(s.chunks) - 1
	s.chunks[i] = append(s.chunks[i], v)
	s.length++
	return i
}

// InsertAt inserts v so that it occupies logical position pos, where
// 0 <= pos <= Len(). Returns the index of the affected chunk. Bounds
// are the caller's responsibility.
func (s *Store[T]) InsertAt(pos int, v T) int {
	ci, off := s.locateInsert(pos)
	s.chunks[ci] = slices.Insert(s.chunks[ci], off, v)
	s.length++
	return ci
}

// InsertSorted inserts v into the chunk selected by locate-by-value,
// keeping that chunk internally sorted. Returns the index of the
// affected chunk. The store must already be sorted under compare.
func (s *Store[T]) InsertSorted(v T, compare func(a, b T) int) int {
	ci := s.locateValue(v, compare)
	c := s.chunks[ci]
	off, _ := slices.BinarySearchFunc(c, v, compare)
	s.chunks[ci] = slices.Insert(c, off, v)
	s.length++
	return ci
}

// Get returns the element at logical position pos. Bounds are the
// caller's responsibility.
func (s *Store[T]) Get(pos int) T {
	ci, off := s.locateRead(pos)
	return s.chunks[ci][off]
}

// Set replaces the element at logical position pos. Bounds are the
// caller's responsibility.
func (s *Store[T]) Set(pos int, v T) {
	ci, off := s.locateRead(pos)
	s.chunks[ci][off] = v
}

// PopFirst removes and returns the first element. The caller is
// responsible for the merge check on chunk 0.
func (s *Store[T]) PopFirst() (T, bool) {
	if s.length == 0 {
		var zero T
		return zero, false
	}
	v := s.chunks[0][0]
	s.chunks[0] = slices.Delete(s.chunks[0], 0, 1)
	s.length--
	return v, true
}

// PopLast removes and returns the last element. The caller is
// responsible for the merge check on the last chunk.
func (s *Store[T]) PopLast() (T, bool) {
	if s.length == 0 {
		var zero T
		return zero, false
	}
	i := len(s.chunks) - 1
	c := s.chunks[i]
	v := c[len(c)-1]
	s.chunks[i] = c[:len(c)-1]
	s.length--
	return v, true
}

// ContainsSorted reports whether v is present, assuming the store is
// sorted under compare. Chunk bounds let the search skip directly to
// the single candidate chunk.
func (s *Store[T]) ContainsSorted(v T, compare func(a, b T) int) bool {
	if s.length == 0 {
		return false
	}
	ci := s.locateValue(v, compare)
	_, found := slices.BinarySearchFunc(s.chunks[ci], v, compare)
	return found
}

// ContainsFunc reports whether any element satisfies eq(element, v).
// Linear over all elements; used by the unsorted list.
func (s *Store[T]) ContainsFunc(v T, eq func(a, b T) bool) bool {
	for _, c := range s.chunks {
		for _, e := range c {
			if eq(e, v) {
				return true
			}
		}
	}
	return false
}

// Take removes all chunks from the store, resetting it to a single
// empty chunk, and returns the removed chunks for consuming iteration.
func (s *Store[T]) Take() [][]T {
	chunks := s.chunks
	s.chunks = [][]T{nil}
	s.length = 0
	return chunks
}

// Cursor returns a two-level cursor positioned before the first
// element. The cursor is invalidated by any mutation of the store.
func (s *Store[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{chunks: s.chunks}
}
