package chunklist

import "fmt"

// OutOfRangeError is the panic value raised by positional access with
// an index outside the valid range. Out-of-range access is a caller
// contract violation, not a recoverable condition, so it surfaces as a
// panic rather than an error return — the same stance the runtime takes
// on slice indexing.
type OutOfRangeError struct {
	Index int // the offending index
	Len   int // the list length at the time of access
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("chunklist: index %d out of range with length %d", e.Index, e.Len)
}

// checkRead panics unless 0 <= i < length.
func checkRead(i, length int) {
	if i < 0 || i >= length {
		panic(&OutOfRangeError{Index: i, Len: length})
	}
}

// checkInsert panics unless 0 <= i <= length; i == length addresses the
// position after the current last element.
func checkInsert(i, length int) {
	if i < 0 || i > length {
		panic(&OutOfRangeError{Index: i, Len: length})
	}
}
