package pipeline_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sajltaha/citygraph/dataset"
	"github.com/sajltaha/citygraph/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMeasure_Triangle pins every counter of one row.
func TestMeasure_Triangle(t *testing.T) {
	m, err := pipeline.Measure("triangle", triangle(t), 0)
	require.NoError(t, err)

	assert.Equal(t, "triangle", m.Dataset)
	assert.Equal(t, 3, m.Vertices)
	assert.Equal(t, 3, m.Edges)
	assert.Equal(t, 3, m.Components)
	assert.True(t, m.Acyclic)

	assert.Equal(t, 3, m.SCCVisits)
	assert.Equal(t, 3, m.SCCEdges)
	assert.Equal(t, 3, m.TopoDFSEdges)
	assert.Equal(t, 6, m.TopoKahnQueueOps)
	assert.Equal(t, 3, m.ShortestRelaxations)
	assert.Equal(t, 2, m.ReachableVertices)
	assert.Equal(t, 3, m.LongestRelaxations)
	assert.Equal(t, int64(5), m.CriticalPathLength)

	assert.GreaterOrEqual(t, m.SCCTime, time.Duration(0))
	assert.GreaterOrEqual(t, m.ShortestTime, time.Duration(0))
}

// TestRunSuite measures the whole generated suite.
func TestRunSuite(t *testing.T) {
	paths, err := dataset.WriteSuite(t.TempDir(), dataset.DefaultSeed)
	require.NoError(t, err)

	measurements, err := pipeline.RunSuite(paths)
	require.NoError(t, err)
	require.Len(t, measurements, 9)

	for i, m := range measurements {
		assert.Equal(t, filepath.Base(paths[i]), m.Dataset)
		assert.Positive(t, m.Vertices)
	}

	// The generated DAGs are acyclic, the cyclic recipes are not.
	assert.True(t, measurements[0].Acyclic)
	assert.False(t, measurements[1].Acyclic)
}

// TestRunSuite_ContinuesPastFailures keeps measuring after a bad path.
func TestRunSuite_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	paths, err := dataset.WriteSuite(dir, dataset.DefaultSeed)
	require.NoError(t, err)

	missing := filepath.Join(dir, "missing.json")
	all := append([]string{missing}, paths...)

	measurements, err := pipeline.RunSuite(all)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.json")
	assert.Len(t, measurements, 9)
}

// TestWriteReport renders one row per measurement in input order.
func TestWriteReport(t *testing.T) {
	measurements := []*pipeline.Measurement{
		{
			Dataset: "alpha.json", Vertices: 10, Edges: 20, Components: 10, Acyclic: true,
			SCCTime: 1500 * time.Nanosecond, SCCVisits: 10, SCCEdges: 20,
			TopoDFSTime: 800 * time.Nanosecond, TopoKahnTime: 900 * time.Nanosecond,
			TopoDFSEdges: 20, TopoKahnQueueOps: 20,
			ShortestTime: 700 * time.Nanosecond, ShortestRelaxations: 20, ReachableVertices: 9,
			LongestTime: 600 * time.Nanosecond, LongestRelaxations: 20, CriticalPathLength: 42,
		},
		{
			Dataset: "beta.json", Vertices: 7, Edges: 12, Components: 3, Acyclic: false,
		},
	}

	var sb strings.Builder
	require.NoError(t, pipeline.WriteReport(&sb, measurements))
	out := sb.String()

	sections := []string{
		"GRAPH ALGORITHMS BENCHMARK REPORT",
		"DATASET SUMMARY",
		"SCC ALGORITHM PERFORMANCE",
		"TOPOLOGICAL SORT PERFORMANCE",
		"DAG SHORTEST PATH PERFORMANCE",
		"DAG LONGEST PATH (CRITICAL PATH) PERFORMANCE",
		"ANALYSIS",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(out, s)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", s)
		assert.Greater(t, idx, last, "section %q out of order", s)
		last = idx
	}

	assert.Contains(t, out, "   Yes")
	assert.Contains(t, out, "    No")
	assert.Less(t, strings.Index(out, "alpha.json"), strings.Index(out, "beta.json"))
	assert.Contains(t, out, strings.Repeat("=", 80))
	assert.Contains(t, out, strings.Repeat("-", 80))
}

// TestWriteSummary averages stage times across rows.
func TestWriteSummary(t *testing.T) {
	measurements := []*pipeline.Measurement{
		{Vertices: 5, Edges: 6, SCCTime: 2 * time.Microsecond},
		{Vertices: 7, Edges: 8, SCCTime: 4 * time.Microsecond},
	}

	var sb strings.Builder
	require.NoError(t, pipeline.WriteSummary(&sb, measurements))
	out := sb.String()

	assert.Contains(t, out, "Total datasets tested: 2")
	assert.Contains(t, out, "Total vertices: 12")
	assert.Contains(t, out, "Total edges: 14")
	assert.Contains(t, out, "SCC: 3.00 us")
	assert.Contains(t, out, "DAG Longest Path: 0.00 us")
}

// TestWriteSummary_Empty handles the no-measurements case.
func TestWriteSummary_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, pipeline.WriteSummary(&sb, nil))
	assert.Contains(t, sb.String(), "Total datasets tested: 0")
}
