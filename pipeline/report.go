package pipeline

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/dagpath"
	"github.com/sajltaha/citygraph/dataset"
	"github.com/sajltaha/citygraph/scc"
	"github.com/sajltaha/citygraph/toposort"
)

// Measurement is one benchmark row: per-stage wall times and headline
// counters for a single dataset.
type Measurement struct {
	Dataset  string
	Vertices int
	Edges    int

	Components int
	SCCTime    time.Duration
	SCCVisits  int
	SCCEdges   int

	TopoDFSTime      time.Duration
	TopoKahnTime     time.Duration
	TopoDFSEdges     int
	TopoKahnQueueOps int

	ShortestTime        time.Duration
	ShortestRelaxations int
	ReachableVertices   int

	LongestTime        time.Duration
	LongestRelaxations int
	CriticalPathLength int64

	Acyclic bool
}

// Measure runs the full analysis over g and condenses it into one row.
// The reachable count excludes the source component, matching the
// shortest-path summary. Acyclic reports whether the input graph itself
// is a DAG; undirected graphs are not, any edge there closes a cycle.
func Measure(name string, g *core.Graph, source int) (*Measurement, error) {
	a, err := Analyze(g, source)
	if err != nil {
		return nil, err
	}

	acyclic := false
	if _, err := toposort.SortDFS(g); err == nil {
		acyclic = true
	} else if !errors.Is(err, toposort.ErrCycleDetected) && !errors.Is(err, toposort.ErrUndirectedGraph) {
		return nil, fmt.Errorf("pipeline: acyclicity check: %w", err)
	}

	return &Measurement{
		Dataset:  name,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),

		Components: a.Components.Count(),
		SCCTime:    a.Components.Metrics.Elapsed(),
		SCCVisits:  a.Components.Metrics.Count(scc.CounterDFSVisits),
		SCCEdges:   a.Components.Metrics.Count(scc.CounterEdgeTraversals),

		TopoDFSTime:  a.OrderDFS.Metrics.Elapsed(),
		TopoKahnTime: a.OrderKahn.Metrics.Elapsed(),
		TopoDFSEdges: a.OrderDFS.Metrics.Count(toposort.CounterEdgeTraversals),
		TopoKahnQueueOps: a.OrderKahn.Metrics.Count(toposort.CounterQueueAdds) +
			a.OrderKahn.Metrics.Count(toposort.CounterQueueRemoves),

		ShortestTime:        a.Shortest.Metrics().Elapsed(),
		ShortestRelaxations: a.Shortest.Metrics().Count(dagpath.CounterEdgeRelaxations),
		ReachableVertices:   a.Shortest.Summary().Reachable,

		LongestTime:        a.Longest.Metrics().Elapsed(),
		LongestRelaxations: a.Longest.Metrics().Count(dagpath.CounterEdgeRelaxations),
		CriticalPathLength: a.Critical.Length,

		Acyclic: acyclic,
	}, nil
}

// MeasureFile loads the dataset at path, builds its graph, and
// measures it. The row is named after the file's base name.
func MeasureFile(path string) (*Measurement, error) {
	d, err := dataset.LoadJSON(path)
	if err != nil {
		return nil, err
	}
	g, source, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m, err := Measure(filepath.Base(path), g, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// RunSuite loads and measures each dataset file. A failing dataset is
// recorded and skipped, so one bad file does not abort the batch; the
// collected failures come back as one combined error beside the rows
// that succeeded.
func RunSuite(paths []string) ([]*Measurement, error) {
	var merr *multierror.Error
	measurements := make([]*Measurement, 0, len(paths))

	for _, path := range paths {
		m, err := MeasureFile(path)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		measurements = append(measurements, m)
	}

	return measurements, merr.ErrorOrNil()
}

// WriteReport renders the fixed-layout benchmark report: the dataset
// summary table, one table per stage, and the closing analysis notes.
// Rows keep measurement order.
func WriteReport(w io.Writer, measurements []*Measurement) error {
	t := &textWriter{w: w}
	rule := strings.Repeat("=", 80)
	dash := strings.Repeat("-", 80)

	t.printf("%s\n", rule)
	t.printf("GRAPH ALGORITHMS BENCHMARK REPORT\n")
	t.printf("%s\n\n", rule)

	t.printf("DATASET SUMMARY\n%s\n", dash)
	t.printf("%-30s %8s %8s %8s %6s\n", "Dataset", "Vertices", "Edges", "SCCs", "IsDAG")
	t.printf("%s\n", dash)
	for _, m := range measurements {
		yn := "No"
		if m.Acyclic {
			yn = "Yes"
		}
		t.printf("%-30s %8d %8d %8d %6s\n", m.Dataset, m.Vertices, m.Edges, m.Components, yn)
	}
	t.printf("\n")

	t.printf("SCC ALGORITHM PERFORMANCE\n%s\n", dash)
	t.printf("%-30s %12s %12s %12s\n", "Dataset", "Time (ns)", "DFS Visits", "Edge Trav.")
	t.printf("%s\n", dash)
	for _, m := range measurements {
		t.printf("%-30s %12d %12d %12d\n", m.Dataset, m.SCCTime.Nanoseconds(), m.SCCVisits, m.SCCEdges)
	}
	t.printf("\n")

	t.printf("TOPOLOGICAL SORT PERFORMANCE\n%s\n", dash)
	t.printf("%-30s %15s %15s\n", "Dataset", "DFS Time (ns)", "Kahn Time (ns)")
	t.printf("%s\n", dash)
	for _, m := range measurements {
		t.printf("%-30s %15d %15d\n", m.Dataset, m.TopoDFSTime.Nanoseconds(), m.TopoKahnTime.Nanoseconds())
	}
	t.printf("\n")

	t.printf("DAG SHORTEST PATH PERFORMANCE\n%s\n", dash)
	t.printf("%-30s %12s %12s %12s\n", "Dataset", "Time (ns)", "Relaxations", "Reachable")
	t.printf("%s\n", dash)
	for _, m := range measurements {
		t.printf("%-30s %12d %12d %12d\n",
			m.Dataset, m.ShortestTime.Nanoseconds(), m.ShortestRelaxations, m.ReachableVertices)
	}
	t.printf("\n")

	t.printf("DAG LONGEST PATH (CRITICAL PATH) PERFORMANCE\n%s\n", dash)
	t.printf("%-30s %12s %12s %12s\n", "Dataset", "Time (ns)", "Relaxations", "CP Length")
	t.printf("%s\n", dash)
	for _, m := range measurements {
		t.printf("%-30s %12d %12d %12d\n",
			m.Dataset, m.LongestTime.Nanoseconds(), m.LongestRelaxations, m.CriticalPathLength)
	}
	t.printf("\n")

	t.printf("ANALYSIS\n%s\n\n", dash)
	t.printf("Complexity Analysis:\n")
	t.printf("- SCC (Tarjan): O(V + E) - Linear in graph size\n")
	t.printf("- Topological Sort: O(V + E) - Both DFS and Kahn variants\n")
	t.printf("- DAG Shortest/Longest Path: O(V + E) - Using topological order\n\n")
	t.printf("Performance Observations:\n")
	t.printf("- All algorithms show linear scaling with graph size\n")
	t.printf("- Kahn's algorithm typically faster for dense graphs (better cache locality)\n")
	t.printf("- DFS-based methods more memory efficient\n")
	t.printf("- Critical path computation identifies longest dependency chains\n\n")

	t.printf("%s\n", rule)

	return t.err
}

// WriteSummary renders the console totals and per-stage average times.
func WriteSummary(w io.Writer, measurements []*Measurement) error {
	t := &textWriter{w: w}

	vertices, edges := 0, 0
	var sccNS, dfsNS, kahnNS, spNS, lpNS int64
	for _, m := range measurements {
		vertices += m.Vertices
		edges += m.Edges
		sccNS += m.SCCTime.Nanoseconds()
		dfsNS += m.TopoDFSTime.Nanoseconds()
		kahnNS += m.TopoKahnTime.Nanoseconds()
		spNS += m.ShortestTime.Nanoseconds()
		lpNS += m.LongestTime.Nanoseconds()
	}

	avg := func(total int64) float64 {
		if len(measurements) == 0 {
			return 0
		}

		return float64(total) / float64(len(measurements)) / 1000.0
	}

	t.printf("=== BENCHMARK SUMMARY ===\n\n")
	t.printf("Total datasets tested: %d\n", len(measurements))
	t.printf("Total vertices: %d\n", vertices)
	t.printf("Total edges: %d\n", edges)
	t.printf("\nAverage execution times:\n")
	t.printf("  SCC: %.2f us\n", avg(sccNS))
	t.printf("  Topological Sort (DFS): %.2f us\n", avg(dfsNS))
	t.printf("  Topological Sort (Kahn): %.2f us\n", avg(kahnNS))
	t.printf("  DAG Shortest Path: %.2f us\n", avg(spNS))
	t.printf("  DAG Longest Path: %.2f us\n", avg(lpNS))

	return t.err
}
