package chunk

import "slices"

// The split and merge thresholds are deliberately asymmetric: split
// fires at 2*loadFactor, merge at loadFactor/2. A chunk hovering around
// loadFactor never alternates between the two on successive
// insert/remove pairs; without this hysteresis band an adversarial
// alternating workload degrades every operation to O(n).

// Expand splits chunk i when it has reached twice the load factor,
// placing the tail half in a new chunk immediately after i. Reports
// whether a split happened.
func (s *Store[T]) Expand(i int) bool {
	if len(s.chunks[i]) < 2*s.loadFactor {
		return false
	}
	s.split(i)
	return true
}

func (s *Store[T]) split(i int) {
	c := s.chunks[i]
	mid := len(c) / 2
	tail := slices.Clone(c[mid:])
	s.chunks[i] = c[:mid:mid]
	s.chunks = slices.Insert(s.chunks, i+1, tail)
}

// Contract merges chunk i into a neighbor when it has dropped below
// half the load factor and more than one chunk exists. Reports whether
// a merge happened.
//
// The result of a merge is not re-checked against the split threshold:
// the merged chunk may transiently exceed 2*loadFactor until the next
// mutation touches it. Re-splitting here would undo the merge scenario
// callers rely on (two small neighbors combining into one), so the
// looser bound is accepted and documented instead.
func (s *Store[T]) Contract(i int) bool {
	if len(s.chunks) <= 1 {
		return false
	}
	if c := s.chunks[i]; len(c) >= s.loadFactor/2 && len(c) > 0 {
		// The len(c) > 0 clause keeps empty chunks from surviving when
		// loadFactor/2 rounds down to zero.
		return false
	}
	s.merge(i)
	return true
}

// merge combines chunk i with the smaller of its two neighbors. The
// first chunk can only merge forward and the last only backward. The
// higher-index chunk of the pair is removed and its elements appended
// onto the lower-index one.
func (s *Store[T]) merge(i int) {
	last := len(s.chunks) - 1
	var low, high int
	switch {
	case i == 0:
		low, high = 0, 1
	case i == last:
		low, high = last-1, last
	default:
		if len(s.chunks[i-1]) < len(s.chunks[i+1]) {
			low, high = i-1, i
		} else {
			low, high = i, i+1
		}
	}
	s.chunks[low] = append(s.chunks[low], s.chunks[high]...)
	s.chunks = slices.Delete(s.chunks, high, high+1)
}
