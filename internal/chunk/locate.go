package chunk

import "sort"

// locateValue returns the index of the chunk that should receive or
// contain v in a store sorted under compare.
//
// The binary search runs over chunk boundary keys: it finds the
// earliest chunk whose last element is >= v. Ties therefore resolve to
// the leftmost viable chunk, so repeated equal values land in existing
// runs instead of spawning new chunks. When v is greater than every
// chunk's last element the miss index is clamped to the final chunk: a
// missed range search always attaches to an existing chunk rather than
// allocating a new one, since a list-of-lists search over (first, last)
// ranges has no definitive miss position the way a flat-array search
// does.
func (s *Store[T]) locateValue(v T, compare func(a, b T) int) int {
	n := len(s.chunks)
	i := sort.Search(n, func(i int) bool {
		c := s.chunks[i]
		if len(c) == 0 {
			// Only the sole chunk of an empty store can be empty.
			return true
		}
		return compare(c[len(c)-1], v) >= 0
	})
	if i == n {
		i = n - 1
	}
	return i
}

// locateRead resolves logical position pos to a (chunk, offset) pair
// for element access. Requires 0 <= pos < Len().
//
// The walk is linear in the number of chunks, not in the element count:
// chunk count is bounded by O(Len/loadFactor), which is what lets
// positional access beat a flat array at scale.
func (s *Store[T]) locateRead(pos int) (ci, off int) {
	for i, c := range s.chunks {
		if pos < len(c) {
			return i, pos
		}
		pos -= len(c)
	}
	panic("chunk: position out of range")
}

// locateInsert resolves logical position pos to the (chunk, offset)
// insertion point. Requires 0 <= pos <= Len(); pos == Len() targets the
// end of the last chunk. At a boundary between two chunks the earlier
// chunk wins, matching the bias of locateValue.
func (s *Store[T]) locateInsert(pos int) (ci, off int) {
	i := 0
	for pos > len(s.chunks[i]) {
		pos -= len(s.chunks[i])
		i++
	}
	return i, pos
}
