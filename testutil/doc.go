// Package testutil provides testing utilities for chunklist.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for randomized list workloads.
//
// # Random Data Generation
//
//	gen := testutil.NewGenerator(seed)
//	ints := gen.Ints(10_000, -1_000_000, 1_000_000)
//	words := gen.Words(500)
//
// # Workloads
//
//	ops := gen.Workload(100_000, testutil.Mix{Add: 6, PopFirst: 2, PopLast: 2})
package testutil
