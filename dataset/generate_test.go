package dataset_test

import (
	"testing"

	"github.com/sajltaha/citygraph/dataset"
	"github.com/sajltaha/citygraph/scc"
	"github.com/sajltaha/citygraph/toposort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerator_Reproducible draws the same datasets from equal seeds.
func TestGenerator_Reproducible(t *testing.T) {
	a := dataset.NewGenerator(7)
	b := dataset.NewGenerator(7)

	for i := 0; i < 3; i++ {
		da, err := a.Random(20, 0.2, 1, 9, true)
		require.NoError(t, err)
		db, err := b.Random(20, 0.2, 1, 9, true)
		require.NoError(t, err)
		assert.Equal(t, da, db)
	}
}

// TestGenerator_DAG keeps the density share of forward edges only.
func TestGenerator_DAG(t *testing.T) {
	gen := dataset.NewGenerator(dataset.DefaultSeed)
	d, err := gen.DAG(8, 0.3, 1, 10)
	require.NoError(t, err)

	assert.True(t, d.Directed)
	assert.Equal(t, 8, d.N)
	assert.Equal(t, 0, d.Source)
	// 28 forward pairs, 30% kept.
	assert.Len(t, d.Edges, 8)
	for _, e := range d.Edges {
		assert.Less(t, e.U, e.V)
		assert.GreaterOrEqual(t, e.W, int64(1))
		assert.LessOrEqual(t, e.W, int64(10))
	}
}

// TestGenerator_DAGIsSortable hands the generated graph to both
// topological variants.
func TestGenerator_DAGIsSortable(t *testing.T) {
	gen := dataset.NewGenerator(3)
	d, err := gen.DAG(30, 0.4, 1, 20)
	require.NoError(t, err)

	g, _, err := d.Build()
	require.NoError(t, err)

	dfs, err := toposort.SortDFS(g)
	require.NoError(t, err)
	assert.True(t, toposort.IsValidOrder(g, dfs.Order))

	kahn, err := toposort.SortKahn(g)
	require.NoError(t, err)
	assert.True(t, toposort.IsValidOrder(g, kahn.Order))
}

// TestGenerator_Random hits the edge target exactly when no cycle walk
// overshoots it.
func TestGenerator_Random(t *testing.T) {
	gen := dataset.NewGenerator(11)
	d, err := gen.Random(7, 0.25, 1, 8, false)
	require.NoError(t, err)

	// target = 7*6*0.25 truncated.
	assert.Len(t, d.Edges, 10)
	assert.GreaterOrEqual(t, d.Source, 0)
	assert.Less(t, d.Source, 7)

	seen := map[[2]int]bool{}
	for _, e := range d.Edges {
		assert.NotEqual(t, e.U, e.V)
		assert.False(t, seen[[2]int{e.U, e.V}], "duplicate edge %d->%d", e.U, e.V)
		seen[[2]int{e.U, e.V}] = true
	}
}

// TestGenerator_RandomEnsureCycle makes the graph unsortable.
func TestGenerator_RandomEnsureCycle(t *testing.T) {
	gen := dataset.NewGenerator(11)
	for i := 0; i < 5; i++ {
		d, err := gen.Random(7, 0.25, 1, 8, true)
		require.NoError(t, err)

		g, _, err := d.Build()
		require.NoError(t, err)

		_, err = toposort.SortDFS(g)
		assert.ErrorIs(t, err, toposort.ErrCycleDetected)
	}
}

// TestGenerator_RandomSingleVertex yields the empty edge set.
func TestGenerator_RandomSingleVertex(t *testing.T) {
	gen := dataset.NewGenerator(1)
	d, err := gen.Random(1, 1.0, 1, 1, false)
	require.NoError(t, err)

	assert.Equal(t, 1, d.N)
	assert.Empty(t, d.Edges)
	assert.Equal(t, 0, d.Source)
}

// TestGenerator_MultiSCC_IsolatedBlocks pins the component structure
// when sizes are fixed and no bridges are drawn.
func TestGenerator_MultiSCC_IsolatedBlocks(t *testing.T) {
	gen := dataset.NewGenerator(5)
	d, err := gen.MultiSCC(3, 4, 4, 0, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, 12, d.N)
	assert.Equal(t, 0, d.Source)

	g, _, err := d.Build()
	require.NoError(t, err)

	res, err := scc.Tarjan(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1, 2, 3},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
	}, res.Components)
}

// TestGenerator_MultiSCC_FullBridging merges every block into one
// component when each ordered pair is bridged.
func TestGenerator_MultiSCC_FullBridging(t *testing.T) {
	gen := dataset.NewGenerator(5)
	d, err := gen.MultiSCC(3, 2, 2, 1.0, 1, 5)
	require.NoError(t, err)

	g, _, err := d.Build()
	require.NoError(t, err)

	res, err := scc.Tarjan(g)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count())
}

// TestGenerator_Validation rejects out-of-range parameters.
func TestGenerator_Validation(t *testing.T) {
	gen := dataset.NewGenerator(1)

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{
			name: "dag_zero_vertices",
			call: func() error { _, err := gen.DAG(0, 0.5, 1, 5); return err },
			want: dataset.ErrBadVertexCount,
		},
		{
			name: "dag_negative_density",
			call: func() error { _, err := gen.DAG(5, -0.1, 1, 5); return err },
			want: dataset.ErrBadDensity,
		},
		{
			name: "dag_density_above_one",
			call: func() error { _, err := gen.DAG(5, 1.1, 1, 5); return err },
			want: dataset.ErrBadDensity,
		},
		{
			name: "dag_inverted_weights",
			call: func() error { _, err := gen.DAG(5, 0.5, 9, 3); return err },
			want: dataset.ErrBadWeightRange,
		},
		{
			name: "random_zero_vertices",
			call: func() error { _, err := gen.Random(0, 0.5, 1, 5, false); return err },
			want: dataset.ErrBadVertexCount,
		},
		{
			name: "random_cycle_needs_two",
			call: func() error { _, err := gen.Random(1, 0.5, 1, 5, true); return err },
			want: dataset.ErrBadVertexCount,
		},
		{
			name: "multiscc_zero_components",
			call: func() error { _, err := gen.MultiSCC(0, 1, 2, 0.2, 1, 5); return err },
			want: dataset.ErrBadVertexCount,
		},
		{
			name: "multiscc_zero_min_size",
			call: func() error { _, err := gen.MultiSCC(2, 0, 2, 0.2, 1, 5); return err },
			want: dataset.ErrBadComponentSize,
		},
		{
			name: "multiscc_inverted_sizes",
			call: func() error { _, err := gen.MultiSCC(2, 3, 2, 0.2, 1, 5); return err },
			want: dataset.ErrBadComponentSize,
		},
		{
			name: "multiscc_bad_density",
			call: func() error { _, err := gen.MultiSCC(2, 1, 2, 1.5, 1, 5); return err },
			want: dataset.ErrBadDensity,
		},
		{
			name: "multiscc_inverted_weights",
			call: func() error { _, err := gen.MultiSCC(2, 1, 2, 0.2, 5, 1); return err },
			want: dataset.ErrBadWeightRange,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.call(), tc.want)
		})
	}
}

// TestGenerator_WeightBounds keeps every drawn weight inside the range.
func TestGenerator_WeightBounds(t *testing.T) {
	gen := dataset.NewGenerator(9)
	d, err := gen.MultiSCC(4, 2, 5, 0.5, -3, 3)
	require.NoError(t, err)

	for _, e := range d.Edges {
		assert.GreaterOrEqual(t, e.W, int64(-3))
		assert.LessOrEqual(t, e.W, int64(3))
	}
}
