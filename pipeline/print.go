package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/sajltaha/citygraph/dagpath"
	"github.com/sajltaha/citygraph/toposort"
)

// textWriter accumulates the first write error so render code can stay
// free of per-line checks.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *textWriter) section(title string) {
	rule := strings.Repeat("=", 50)
	t.printf("\n%s\n%s\n%s\n", rule, title, rule)
}

// WriteText renders the analysis as the step-by-step walkthrough: the
// graph summary, then one section per stage with its metrics report.
func (a *Analysis) WriteText(w io.Writer) error {
	t := &textWriter{w: w}

	// Graph summary.
	t.printf("%s", a.Graph)
	t.printf("Source vertex: %d\n", a.Source)
	t.printf("\n=== Graph Analysis ===\n")
	t.printf("Vertices: %d\n", a.Graph.VertexCount())
	t.printf("Edges: %d\n", a.Graph.EdgeCount())
	t.printf("Directed: %t\n", a.Graph.Directed())
	t.printf("Weight Model: %s\n", a.Graph.WeightModel())

	a.writeComponents(t)
	a.writeCondensation(t)
	a.writeOrders(t)
	a.writeShortest(t)
	a.writeLongest(t)

	return t.err
}

func (a *Analysis) writeComponents(t *textWriter) {
	t.section("STEP 1: Finding Strongly Connected Components")

	t.printf("\n=== Strongly Connected Components ===\n")
	t.printf("Number of SCCs: %d\n", a.Components.Count())
	for i, comp := range a.Components.Components {
		t.printf("SCC %d (size %d): %v\n", i, len(comp), comp)
	}
	t.printf("\n%s", a.Components.Metrics.Report())
}

func (a *Analysis) writeCondensation(t *textWriter) {
	t.section("STEP 2: Building Condensation Graph")

	t.printf("\n=== Condensation Graph (DAG) ===\n")
	t.printf("Components: %d\n", a.Condensed.VertexCount())
	t.printf("Inter-component edges: %d\n", a.Condensed.EdgeCount())
	t.printf("\nComponent details:\n")
	for i, comp := range a.Components.Components {
		t.printf("Component %d: vertices %v\n", i, comp)
		if edges, err := a.Condensed.Edges(i); err == nil && len(edges) > 0 {
			t.printf("  Edges to: %v\n", edges)
		}
	}
	t.printf("\nIs condensation a valid DAG? %t\n", a.Acyclic)
}

func (a *Analysis) writeOrders(t *textWriter) {
	t.section("STEP 3: Topological Sorting of Components")

	t.printf("\n--- Using DFS-based algorithm ---\n")
	a.writeOrder(t, a.OrderDFS)

	t.printf("\n=== Task Ordering (Derived from Component Order) ===\n")
	t.printf("Total tasks: %d\n", a.Plan.TaskCount())
	t.printf("\nTask execution order:\n")
	for i, comp := range a.OrderDFS.Order {
		t.printf("Step %d - Component %d (%d tasks): %v\n",
			i+1, comp, len(a.Plan.Groups[i]), a.Plan.Groups[i])
	}
	t.printf("\nFull task sequence: %v\n", a.Plan.VertexOrder)
	t.printf("\n")
	if t.err == nil {
		t.err = a.Plan.WriteText(t.w)
	}

	t.printf("\n--- Using Kahn's algorithm (for comparison) ---\n")
	a.writeOrder(t, a.OrderKahn)
}

func (a *Analysis) writeOrder(t *textWriter, res *toposort.Result) {
	t.printf("\n=== Topological Sort ===\n")
	t.printf("Topological order: %v\n", res.Order)
	t.printf("Number of vertices: %d\n", len(res.Order))
	t.printf("\n%s", res.Metrics.Report())
	t.printf("Valid topological order? %t\n", toposort.IsValidOrder(a.Condensed, res.Order))
}

func (a *Analysis) writeShortest(t *textWriter) {
	t.section("STEP 4: Shortest Paths in DAG")

	t.printf("\nOriginal source vertex: %d\n", a.Source)
	t.printf("Condensation source component: %d\n", a.CondensedSource)

	t.printf("\n=== Shortest Paths from Source %d ===\n", a.CondensedSource)
	dists := a.Shortest.AllDistances()

	t.printf("\nDistances:\n")
	for v, d := range dists {
		if d == dagpath.Inf {
			t.printf("  Vertex %d: unreachable\n", v)
		} else {
			t.printf("  Vertex %d: distance = %d\n", v, d)
		}
	}

	t.printf("\nPaths:\n")
	for v, d := range dists {
		if d == dagpath.Inf || v == a.CondensedSource {
			continue
		}
		if path, err := a.Shortest.PathTo(v); err == nil {
			t.printf("  %d -> %d: %v (length %d)\n", a.CondensedSource, v, path, d)
		}
	}

	t.printf("\n%s", a.Shortest.Metrics().Report())

	s := a.Shortest.Summary()
	t.printf("\nSummary: source=%d, reachable=%d, min=%d, max=%d, avg=%.2f\n",
		s.Source, s.Reachable, s.MinDist, s.MaxDist, s.AvgDist)
}

func (a *Analysis) writeLongest(t *textWriter) {
	t.section("STEP 5: Longest Paths (Critical Path Analysis)")

	t.printf("\n=== Longest Paths ===\n")
	t.printf("Critical Path Analysis (all vertices)\n")
	t.printf("\nDistances:\n")
	for v, d := range a.Longest.AllDistances() {
		t.printf("  Vertex %d: distance = %d\n", v, d)
	}
	t.printf("\n*** Critical Path ***\n")
	t.printf("Path: %v\n", a.Critical.Path)
	t.printf("Length: %d\n", a.Critical.Length)
	t.printf("\n%s", a.Longest.Metrics().Report())

	t.printf("\n--- Longest paths from source %d ---\n", a.CondensedSource)
	t.printf("\n=== Longest Paths ===\n")
	t.printf("From source: %d\n", a.CondensedSource)
	t.printf("\nDistances:\n")
	for v, d := range a.LongestFrom.AllDistances() {
		if d != dagpath.NegInf {
			t.printf("  Vertex %d: distance = %d\n", v, d)
		}
	}
	if cp, err := a.LongestFrom.Critical(); err == nil {
		t.printf("\n*** Critical Path ***\n")
		t.printf("Path: %v\n", cp.Path)
		t.printf("Length: %d\n", cp.Length)
	}
	t.printf("\n%s", a.LongestFrom.Metrics().Report())
}
