package testutil

import "github.com/brianvoe/gofakeit/v6"

// OpKind identifies a workload operation.
type OpKind int

const (
	// OpAdd inserts the op's value.
	OpAdd OpKind = iota

	// OpPopFirst removes the minimum (or first) element.
	OpPopFirst

	// OpPopLast removes the maximum (or last) element.
	OpPopLast
)

// Op is a single step of a generated workload.
type Op struct {
	Kind  OpKind
	Value int
}

// Mix holds the relative weights of the operation kinds in a workload.
// A zero weight disables the kind.
type Mix struct {
	Add      int
	PopFirst int
	PopLast  int
}

// Generator produces deterministic pseudo-random data for tests and
// benchmarks. The same seed always yields the same sequence.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a Generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Ints returns n random integers in [min, max].
func (g *Generator) Ints(n, min, max int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = g.faker.IntRange(min, max)
	}
	return out
}

// Words returns n random lowercase words.
func (g *Generator) Words(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = g.faker.Word()
	}
	return out
}

// Perm returns a random permutation of 0..n-1.
func (g *Generator) Perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	g.faker.ShuffleInts(out)
	return out
}

// Workload returns n operations drawn with the weights in mix. Values
// for OpAdd are random integers in [-n, n].
func (g *Generator) Workload(n int, mix Mix) []Op {
	total := mix.Add + mix.PopFirst + mix.PopLast
	if total <= 0 {
		return nil
	}
	ops := make([]Op, n)
	for i := range ops {
		r := g.faker.IntRange(0, total-1)
		switch {
		case r < mix.Add:
			ops[i] = Op{Kind: OpAdd, Value: g.faker.IntRange(-n, n)}
		case r < mix.Add+mix.PopFirst:
			ops[i] = Op{Kind: OpPopFirst}
		default:
			ops[i] = Op{Kind: OpPopLast}
		}
	}
	return ops
}
