package pipeline

import (
	"fmt"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/dagpath"
	"github.com/sajltaha/citygraph/scc"
	"github.com/sajltaha/citygraph/schedule"
	"github.com/sajltaha/citygraph/toposort"
)

// Analysis bundles every result of one five-stage run over a task graph.
type Analysis struct {
	Graph  *core.Graph
	Source int

	// Stage 1: strongly connected components.
	Components *scc.Result

	// Stage 2: condensation of the components into a DAG.
	Condensation *scc.Condensation
	Condensed    *core.Graph
	Acyclic      bool

	// Stage 3: topological orders over the condensation and the task
	// plan derived from the DFS order.
	OrderDFS  *toposort.Result
	OrderKahn *toposort.Result
	Plan      *schedule.TaskPlan

	// Stage 4: shortest paths from the source's component.
	CondensedSource int
	Shortest        *dagpath.Result

	// Stage 5: the critical path over the whole condensation and the
	// longest paths from the source's component.
	Longest     *dagpath.Result
	Critical    dagpath.CriticalPath
	LongestFrom *dagpath.Result
}

// Analyze runs the full analysis over g: Tarjan's components, the
// condensation with its acyclicity check, both topological variants,
// the task plan, shortest paths from source's component, the critical
// path, and longest paths from source's component. Path stages operate
// on the condensation, so their vertices are component indices.
func Analyze(g *core.Graph, source int, options ...Option) (*Analysis, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}
	if source < 0 || source >= g.VertexCount() {
		return nil, fmt.Errorf("%w: source %d (n=%d)", core.ErrVertexOutOfRange, source, g.VertexCount())
	}

	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}

	a := &Analysis{Graph: g, Source: source}

	// 2. Components.
	comps, err := scc.Tarjan(g, scc.WithCancelContext(opts.ctx))
	if err != nil {
		return nil, fmt.Errorf("pipeline: components: %w", err)
	}
	a.Components = comps

	// 3. Condensation.
	cond, err := scc.Condense(g, comps)
	if err != nil {
		return nil, fmt.Errorf("pipeline: condensation: %w", err)
	}
	a.Condensation = cond
	a.Condensed = cond.Graph()
	a.Acyclic = cond.IsAcyclic()

	// 4. Topological orders and the task plan.
	dfs, err := toposort.SortDFS(a.Condensed, toposort.WithCancelContext(opts.ctx))
	if err != nil {
		return nil, fmt.Errorf("pipeline: order (dfs): %w", err)
	}
	a.OrderDFS = dfs

	kahn, err := toposort.SortKahn(a.Condensed, toposort.WithCancelContext(opts.ctx))
	if err != nil {
		return nil, fmt.Errorf("pipeline: order (kahn): %w", err)
	}
	a.OrderKahn = kahn

	plan, err := schedule.Plan(dfs.Order, comps.Components)
	if err != nil {
		return nil, fmt.Errorf("pipeline: task plan: %w", err)
	}
	a.Plan = plan

	// 5. Shortest paths from the source's component.
	condSource, err := cond.ComponentFor(source)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	a.CondensedSource = condSource

	sp, err := dagpath.New(a.Condensed, dagpath.Shortest, dagpath.WithCancelContext(opts.ctx))
	if err != nil {
		return nil, fmt.Errorf("pipeline: shortest paths: %w", err)
	}
	shortest, err := sp.ComputeFrom(condSource)
	if err != nil {
		return nil, fmt.Errorf("pipeline: shortest paths: %w", err)
	}
	a.Shortest = shortest

	// 6. Critical path and longest paths from the source's component.
	lp, err := dagpath.New(a.Condensed, dagpath.Longest, dagpath.WithCancelContext(opts.ctx))
	if err != nil {
		return nil, fmt.Errorf("pipeline: longest paths: %w", err)
	}
	longest, err := lp.ComputeCritical()
	if err != nil {
		return nil, fmt.Errorf("pipeline: critical path: %w", err)
	}
	a.Longest = longest

	critical, err := longest.Critical()
	if err != nil {
		return nil, fmt.Errorf("pipeline: critical path: %w", err)
	}
	a.Critical = critical

	fromSource, err := lp.ComputeFrom(condSource)
	if err != nil {
		return nil, fmt.Errorf("pipeline: longest paths: %w", err)
	}
	a.LongestFrom = fromSource

	return a, nil
}
