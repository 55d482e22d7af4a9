package dagpath_test

import (
	"math/rand"
	"testing"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/dagpath"
)

// benchDAG builds a random DAG by only ever adding forward edges u < v.
func benchDAG(n, e int, seed int64) *core.Graph {
	rnd := rand.New(rand.NewSource(seed))
	g, _ := core.NewGraph(n, core.WithDirected(true))
	for k := 0; k < e; k++ {
		u := rnd.Intn(n - 1)
		v := u + 1 + rnd.Intn(n-u-1)
		_ = g.AddEdge(u, v, int64(1+rnd.Intn(100)))
	}

	return g
}

// BenchmarkComputeFrom_Shortest measures the minimizing sweep.
func BenchmarkComputeFrom_Shortest(b *testing.B) {
	const (
		n = 5000
		e = 10000
	)
	g := benchDAG(n, e, 42)
	s, err := dagpath.New(g, dagpath.Shortest)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + e))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ComputeFrom(0)
	}
}

// BenchmarkComputeFrom_Longest measures the maximizing sweep on the
// same graph shape.
func BenchmarkComputeFrom_Longest(b *testing.B) {
	const (
		n = 5000
		e = 10000
	)
	g := benchDAG(n, e, 42)
	s, err := dagpath.New(g, dagpath.Longest)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + e))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ComputeFrom(0)
	}
}

// BenchmarkComputeCritical measures the all-sources chain search.
func BenchmarkComputeCritical(b *testing.B) {
	const (
		n = 5000
		e = 10000
	)
	g := benchDAG(n, e, 42)
	s, err := dagpath.New(g, dagpath.Longest)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + e))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = s.ComputeCritical()
	}
}

// BenchmarkPathTo measures predecessor-walk reconstruction on a chain,
// the longest possible path shape.
func BenchmarkPathTo(b *testing.B) {
	const n = 10000
	g, _ := core.NewGraph(n, core.WithDirected(true))
	for v := 0; v+1 < n; v++ {
		_ = g.AddEdge(v, v+1, 1)
	}
	s, err := dagpath.New(g, dagpath.Shortest)
	if err != nil {
		b.Fatal(err)
	}
	res, err := s.ComputeFrom(0)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = res.PathTo(n - 1)
	}
}
