package pipeline_test

import (
	"testing"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/dataset"
	"github.com/sajltaha/citygraph/pipeline"
)

func benchGraph(b *testing.B) (*core.Graph, int) {
	b.Helper()
	gen := dataset.NewGenerator(42)
	d, err := gen.MultiSCC(50, 5, 10, 0.1, 1, 20)
	if err != nil {
		b.Fatalf("generate: %v", err)
	}
	g, source, err := d.Build()
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	return g, source
}

func BenchmarkAnalyze(b *testing.B) {
	g, source := benchGraph(b)

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipeline.Analyze(g, source); err != nil {
			b.Fatalf("analyze: %v", err)
		}
	}
}

func BenchmarkMeasure(b *testing.B) {
	g, source := benchGraph(b)

	b.ReportAllocs()
	b.SetBytes(int64(g.VertexCount() + g.EdgeCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pipeline.Measure("bench", g, source); err != nil {
			b.Fatalf("measure: %v", err)
		}
	}
}
