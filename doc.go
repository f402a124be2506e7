// Package chunklist provides chunked ordered collections for Go.
//
// Two list types share one storage engine: an ordered sequence of
// bounded-size chunks that amortizes insertion, removal and positional
// access far below the O(n) cost of a flat slice:
//
//   - SortedList keeps elements sorted under a total order at all times
//   - UnsortedList keeps insertion order and supports positional insert
//
// Both are tuned by a single knob, the load factor (target chunk size).
// A chunk reaching twice the load factor is split in half; a chunk
// shrinking below half the load factor is merged into the smaller of
// its neighbors. The asymmetric thresholds form a hysteresis band so a
// chunk hovering near the load factor never thrashes between split and
// merge.
//
// # Quick Start
//
// Sorted list with natural ordering:
//
//	list := chunklist.NewSortedList[int]()
//	list.Add(3)
//	list.Add(13)
//
//	fmt.Println(list.Len())         // 2
//	fmt.Println(list.Contains(3))   // true
//	first, _ := list.First()        // 3
//	last, _ := list.Last()          // 13
//
//	for v := range list.All() {
//	    fmt.Println(v)
//	}
//
// Custom ordering via an injected comparator:
//
//	type user struct{ name string }
//
//	list := chunklist.NewSortedListFunc(func(a, b user) int {
//	    return strings.Compare(a.name, b.name)
//	})
//
// Unsorted list as a large-slice replacement:
//
//	list := chunklist.NewUnsortedList[string]()
//	list.Push("a")
//	list.Insert(0, "b")
//	list.Set(1, "c")
//
// # Tuning
//
// The load factor defaults to 1000 and is fixed at construction:
//
//	list := chunklist.NewSortedList[int](chunklist.WithLoadFactor(256))
//
// Larger load factors favor iteration and memory locality; smaller ones
// favor mutation-heavy workloads.
//
// # Caller Contract
//
// A list instance is single-threaded: no operation may run concurrently
// with another on the same instance. Elements must not have their
// ordering key mutated while stored (a logic error the structure does
// not guard against, in the manner of the standard library's container
// types). Mutating a list during an in-progress All/Drain traversal
// leaves the remaining traversal undefined.
package chunklist
