package dataset_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sajltaha/citygraph/dataset"
)

// BenchmarkGenerator_DAG measures candidate drawing and shuffling.
func BenchmarkGenerator_DAG(b *testing.B) {
	gen := dataset.NewGenerator(42)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := gen.DAG(100, 0.2, 1, 50); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerator_MultiSCC measures block carving and bridging.
func BenchmarkGenerator_MultiSCC(b *testing.B) {
	gen := dataset.NewGenerator(42)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := gen.MultiSCC(20, 5, 10, 0.2, 1, 50); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseJSON measures wire-format decoding.
func BenchmarkParseJSON(b *testing.B) {
	gen := dataset.NewGenerator(42)
	d, err := gen.Random(200, 0.2, 1, 50, true)
	if err != nil {
		b.Fatal(err)
	}
	data, err := json.Marshal(d)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := dataset.ParseJSON(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
