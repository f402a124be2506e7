package chunklist

import "iter"

// All returns a lazy forward traversal of the list in sorted order.
// The sequence is single-use; request a fresh one per traversal. The
// list must not be mutated while the traversal is in progress.
func (l *SortedList[T]) All() iter.Seq[T] {
	return cursorSeq(l.store.Cursor().Next)
}

// Drain returns a consuming traversal in sorted order. The list is
// emptied immediately; breaking out of the loop early discards the
// unvisited remainder.
func (l *SortedList[T]) Drain() iter.Seq[T] {
	return drainSeq(l.store.Take())
}

// All returns a lazy forward traversal of the list in insertion order.
// The sequence is single-use; request a fresh one per traversal. The
// list must not be mutated while the traversal is in progress.
func (l *UnsortedList[T]) All() iter.Seq[T] {
	return cursorSeq(l.store.Cursor().Next)
}

// Drain returns a consuming traversal in insertion order. The list is
// emptied immediately; breaking out of the loop early discards the
// unvisited remainder.
func (l *UnsortedList[T]) Drain() iter.Seq[T] {
	return drainSeq(l.store.Take())
}

func cursorSeq[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := next(); ok; v, ok = next() {
			if !yield(v) {
				return
			}
		}
	}
}

func drainSeq[T any](chunks [][]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, c := range chunks {
			for _, v := range c {
				if !yield(v) {
					return
				}
			}
		}
	}
}
