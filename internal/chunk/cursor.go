package chunk

// Cursor is a lazy, forward-only traversal across chunk boundaries,
// modeled as explicit two-level state: an outer chunk index and an
// inner element index. It is single-pass; request a fresh cursor from
// the store to traverse again.
//
// Mutating the store during a traversal leaves the set of subsequently
// visited elements undefined (though never unsafe); a cursor must not
// outlive the mutation that invalidated it.
type Cursor[T any] struct {
	chunks [][]T
	outer  int
	inner  int
}

// Next returns the next element, advancing to the following chunk when
// the current one is exhausted. The second result is false once the
// traversal is complete.
func (c *Cursor[T]) Next() (T, bool) {
	for c.outer < len(c.chunks) {
		if c.inner < len(c.chunks[c.outer]) {
			v := c.chunks[c.outer][c.inner]
			c.inner++
			return v, true
		}
		c.outer++
		c.inner = 0
	}
	var zero T
	return zero, false
}
