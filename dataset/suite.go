package dataset

import (
	"fmt"
	"os"
	"path/filepath"
)

// Recipe names one standard dataset and how to generate it.
type Recipe struct {
	// Category is the size bucket, the directory the file lands in.
	Category string

	// Name is the file stem within the category.
	Name string

	// Generate draws the dataset from the given generator's stream.
	Generate func(g *Generator) (*Description, error)
}

// Suite returns the nine standard recipes in generation order: three
// small, three medium, three large, each bucket holding one DAG, one
// cyclic graph, and one multi-component graph.
func Suite() []Recipe {
	return []Recipe{
		{Category: "small", Name: "small1_dag",
			Generate: func(g *Generator) (*Description, error) { return g.DAG(8, 0.3, 1, 10) }},
		{Category: "small", Name: "small2_cycle",
			Generate: func(g *Generator) (*Description, error) { return g.Random(7, 0.25, 1, 8, true) }},
		{Category: "small", Name: "small3_multi_scc",
			Generate: func(g *Generator) (*Description, error) { return g.MultiSCC(3, 2, 3, 0.4, 1, 5) }},
		{Category: "medium", Name: "medium1_sparse_dag",
			Generate: func(g *Generator) (*Description, error) { return g.DAG(15, 0.2, 1, 15) }},
		{Category: "medium", Name: "medium2_dense_cycles",
			Generate: func(g *Generator) (*Description, error) { return g.Random(12, 0.4, 2, 12, true) }},
		{Category: "medium", Name: "medium3_scc_connected",
			Generate: func(g *Generator) (*Description, error) { return g.MultiSCC(4, 3, 5, 0.3, 1, 10) }},
		{Category: "large", Name: "large1_sparse_dag",
			Generate: func(g *Generator) (*Description, error) { return g.DAG(35, 0.15, 1, 20) }},
		{Category: "large", Name: "large2_dense_cycles",
			Generate: func(g *Generator) (*Description, error) { return g.Random(30, 0.25, 1, 15, true) }},
		{Category: "large", Name: "large3_complex_scc",
			Generate: func(g *Generator) (*Description, error) { return g.MultiSCC(8, 3, 7, 0.2, 1, 12) }},
	}
}

// WriteSuite generates the standard suite from one generator seeded
// with seed and writes each dataset to dir/<category>/<name>.json.
// It returns the written paths in generation order.
func WriteSuite(dir string, seed int64) ([]string, error) {
	recipes := Suite()
	gen := NewGenerator(seed)
	paths := make([]string, 0, len(recipes))

	for _, r := range recipes {
		d, err := r.Generate(gen)
		if err != nil {
			return nil, fmt.Errorf("dataset: generate %s: %w", r.Name, err)
		}

		path := filepath.Join(dir, r.Category, r.Name+".json")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		if err := WriteJSON(d, path); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}
