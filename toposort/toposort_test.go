package toposort_test

import (
	"context"
	"testing"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/toposort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edge is a test shorthand for one (u, v, w) triple.
type edge struct {
	u, v int
	w    int64
}

// buildDirected constructs a directed graph over n vertices.
func buildDirected(t *testing.T, n int, edges []edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, core.WithDirected(true))
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}

	return g
}

// position returns the index of v in order, or -1.
func position(order []int, v int) int {
	for i, u := range order {
		if u == v {
			return i
		}
	}

	return -1
}

// sortBoth runs both variants and requires success from each.
func sortBoth(t *testing.T, g *core.Graph) (*toposort.Result, *toposort.Result) {
	t.Helper()
	dfs, err := toposort.SortDFS(g)
	require.NoError(t, err)
	kahn, err := toposort.SortKahn(g)
	require.NoError(t, err)

	return dfs, kahn
}

// TestSort_NilGraph rejects nil from both variants.
func TestSort_NilGraph(t *testing.T) {
	_, err := toposort.SortDFS(nil)
	assert.ErrorIs(t, err, toposort.ErrNilGraph)

	_, err = toposort.SortKahn(nil)
	assert.ErrorIs(t, err, toposort.ErrNilGraph)
}

// TestSort_UndirectedGraph rejects undirected graphs at construction.
func TestSort_UndirectedGraph(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	_, err = toposort.SortDFS(g)
	assert.ErrorIs(t, err, toposort.ErrUndirectedGraph)

	_, err = toposort.SortKahn(g)
	assert.ErrorIs(t, err, toposort.ErrUndirectedGraph)
}

// TestSort_EmptyGraph orders zero vertices.
func TestSort_EmptyGraph(t *testing.T) {
	g := buildDirected(t, 0, nil)

	dfs, kahn := sortBoth(t, g)
	assert.Empty(t, dfs.Order)
	assert.Empty(t, kahn.Order)
}

// TestSort_Chain produces the single valid order of a linear chain.
func TestSort_Chain(t *testing.T) {
	g := buildDirected(t, 3, []edge{{0, 1, 1}, {1, 2, 1}})

	dfs, kahn := sortBoth(t, g)
	assert.Equal(t, []int{0, 1, 2}, dfs.Order)
	assert.Equal(t, []int{0, 1, 2}, kahn.Order)
}

// TestSort_BothValidOnDiamond checks validity, not equality: the two
// variants break ties differently on branching graphs.
func TestSort_BothValidOnDiamond(t *testing.T) {
	g := buildDirected(t, 4, []edge{{0, 1, 1}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1}})

	dfs, kahn := sortBoth(t, g)
	assert.True(t, toposort.IsValidOrder(g, dfs.Order))
	assert.True(t, toposort.IsValidOrder(g, kahn.Order))

	assert.Equal(t, []int{0, 2, 1, 3}, dfs.Order, "postorder pops the later branch first")
	assert.Equal(t, []int{0, 1, 2, 3}, kahn.Order, "queue keeps edge insertion order")
}

// TestSort_EdgePositions verifies the ordering property edge by edge on
// a branchy graph with several roots.
func TestSort_EdgePositions(t *testing.T) {
	g := buildDirected(t, 7, []edge{
		{0, 3, 1}, {1, 3, 1}, {2, 4, 1},
		{3, 5, 1}, {4, 5, 1}, {5, 6, 1},
	})

	dfs, kahn := sortBoth(t, g)
	for _, res := range []*toposort.Result{dfs, kahn} {
		require.Len(t, res.Order, 7)
		for u := 0; u < 7; u++ {
			edges, err := g.Edges(u)
			require.NoError(t, err)
			for _, e := range edges {
				assert.Less(t, position(res.Order, u), position(res.Order, e.To),
					"edge %d->%d must point forward", u, e.To)
			}
		}
	}
}

// TestSort_CycleDetected fails both variants with the sentinel and no result.
func TestSort_CycleDetected(t *testing.T) {
	g := buildDirected(t, 3, []edge{{0, 1, 1}, {1, 2, 1}, {2, 0, 1}})

	res, err := toposort.SortDFS(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)

	res, err = toposort.SortKahn(g)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)
}

// TestSort_SelfLoop is the smallest cycle.
func TestSort_SelfLoop(t *testing.T) {
	g := buildDirected(t, 1, []edge{{0, 0, 1}})

	_, err := toposort.SortDFS(g)
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)

	_, err = toposort.SortKahn(g)
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)
}

// TestSortDFS_Counters pins the operation counts for a chain.
func TestSortDFS_Counters(t *testing.T) {
	g := buildDirected(t, 3, []edge{{0, 1, 1}, {1, 2, 1}})

	res, err := toposort.SortDFS(g)
	require.NoError(t, err)

	m := res.Metrics
	assert.Equal(t, 3, m.Count(toposort.CounterDFSVisits))
	assert.Equal(t, 2, m.Count(toposort.CounterEdgeTraversals))
	assert.Equal(t, 3, m.Count(toposort.CounterStackPushes))
	assert.Equal(t, 3, m.Count(toposort.CounterStackPops))
	assert.Equal(t, 0, m.Count(toposort.CounterQueueAdds), "queue counters stay untouched")
}

// TestSortKahn_Counters pins the queue counters for a chain.
func TestSortKahn_Counters(t *testing.T) {
	g := buildDirected(t, 3, []edge{{0, 1, 1}, {1, 2, 1}})

	res, err := toposort.SortKahn(g)
	require.NoError(t, err)

	m := res.Metrics
	assert.Equal(t, 3, m.Count(toposort.CounterQueueAdds))
	assert.Equal(t, 3, m.Count(toposort.CounterQueueRemoves))
	assert.Equal(t, 2, m.Count(toposort.CounterDegreeUpdates))
	assert.Equal(t, 0, m.Count(toposort.CounterStackPushes), "stack counters stay untouched")
}

// TestSort_Cancelled aborts with the context error.
func TestSort_Cancelled(t *testing.T) {
	g := buildDirected(t, 3, []edge{{0, 1, 1}, {1, 2, 1}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := toposort.SortDFS(g, toposort.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = toposort.SortKahn(g, toposort.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSortDFS_DeepChain survives a chain far deeper than any call stack.
func TestSortDFS_DeepChain(t *testing.T) {
	const n = 50000
	g, err := core.NewGraph(n, core.WithDirected(true))
	require.NoError(t, err)
	for v := 0; v+1 < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1, 1))
	}

	res, err := toposort.SortDFS(g)
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	for i, v := range res.Order {
		require.Equal(t, i, v, "chain has exactly one order")
	}
}

// TestIsValidOrder_Accepts recognizes hand-built valid orders.
func TestIsValidOrder_Accepts(t *testing.T) {
	g := buildDirected(t, 4, []edge{{0, 1, 1}, {0, 2, 1}, {1, 3, 1}, {2, 3, 1}})

	assert.True(t, toposort.IsValidOrder(g, []int{0, 1, 2, 3}))
	assert.True(t, toposort.IsValidOrder(g, []int{0, 2, 1, 3}))
}

// TestIsValidOrder_Rejects covers every invalid shape.
func TestIsValidOrder_Rejects(t *testing.T) {
	g := buildDirected(t, 3, []edge{{0, 1, 1}, {1, 2, 1}})

	assert.False(t, toposort.IsValidOrder(nil, []int{0, 1, 2}), "nil graph")
	assert.False(t, toposort.IsValidOrder(g, []int{0, 1}), "wrong length")
	assert.False(t, toposort.IsValidOrder(g, []int{0, 1, 1}), "duplicate entry")
	assert.False(t, toposort.IsValidOrder(g, []int{0, 1, 3}), "out of range")
	assert.False(t, toposort.IsValidOrder(g, []int{2, 1, 0}), "edge points backward")
	assert.False(t, toposort.IsValidOrder(g, []int{1, 0, 2}), "one violated edge suffices")
}
