// Package dagpath implements the Result accessors: distances, paths,
// the critical-path scan, and summary statistics.
package dagpath

import (
	"fmt"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/metrics"
)

// Result is one completed path computation. It owns its distance and
// predecessor arrays: the solver that produced it can run again without
// disturbing it, and it never mutates after the compute call returns.
type Result struct {
	dir      Direction
	source   int
	sentinel int64
	dist     []int64
	pred     []int
	met      *metrics.Metrics
}

// Direction returns the relaxation sense that produced this result.
func (r *Result) Direction() Direction { return r.dir }

// Source returns the run's source vertex, or NoSource for a critical run.
func (r *Result) Source() int { return r.source }

// Metrics returns the run's measurement record.
func (r *Result) Metrics() *metrics.Metrics { return r.met }

// VertexCount returns the size of the solved graph.
func (r *Result) VertexCount() int { return len(r.dist) }

// check validates an accessor index against the distance array.
func (r *Result) check(v int) error {
	if v < 0 || v >= len(r.dist) {
		return fmt.Errorf("%w: %d (n=%d)", core.ErrVertexOutOfRange, v, len(r.dist))
	}

	return nil
}

// Distance returns the best-known cost from the source to v.
// Unreachable vertices report the direction's sentinel (Inf or NegInf).
func (r *Result) Distance(v int) (int64, error) {
	if err := r.check(v); err != nil {
		return 0, err
	}

	return r.dist[v], nil
}

// Reachable reports whether v holds a non-sentinel distance. Critical
// runs seed every vertex, so every vertex is reachable there.
func (r *Result) Reachable(v int) (bool, error) {
	if err := r.check(v); err != nil {
		return false, err
	}

	return r.dist[v] != r.sentinel, nil
}

// PathTo reconstructs the path ending at v by walking predecessors back
// to the chain's start, then reversing. A sentinel-valued target yields
// ErrUnreachable.
func (r *Result) PathTo(v int) ([]int, error) {
	if err := r.check(v); err != nil {
		return nil, err
	}
	if r.dist[v] == r.sentinel {
		return nil, fmt.Errorf("%w: vertex %d", ErrUnreachable, v)
	}

	path := make([]int, 0, 4)
	for cur := v; cur != -1; cur = r.pred[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// AllDistances returns a copy of every distance, indexed by vertex.
func (r *Result) AllDistances() []int64 {
	return append([]int64(nil), r.dist...)
}

// CriticalPath is the heaviest dependency chain of one result.
type CriticalPath struct {
	// Path lists the chain's vertices from start to end.
	Path []int

	// Length is the chain's total weight.
	Length int64
}

// String renders the chain for human output.
func (c CriticalPath) String() string {
	return fmt.Sprintf("critical path %v (length %d)", c.Path, c.Length)
}

// Critical scans every vertex for the maximum distance and returns the
// chain ending there. Only a strictly greater distance displaces the
// current maximum, so ties resolve to the lowest vertex index; the scan
// floor is zero, so a graph whose best chain never exceeds 0 reports
// vertex 0 with length 0. Shortest results carry no critical path.
func (r *Result) Critical() (CriticalPath, error) {
	if r.dir != Longest {
		return CriticalPath{}, ErrCriticalRequiresLongest
	}

	maxDist := int64(0)
	end := 0
	for v, d := range r.dist {
		if d > maxDist {
			maxDist = d
			end = v
		}
	}

	path, err := r.PathTo(end)
	if err != nil {
		return CriticalPath{}, fmt.Errorf("dagpath: critical endpoint: %w", err)
	}

	return CriticalPath{Path: path, Length: maxDist}, nil
}

// Summary aggregates reachability and distance statistics of one run.
// The source itself is excluded from every figure.
type Summary struct {
	// Source is the run's source vertex, or NoSource.
	Source int

	// Reachable counts non-source vertices holding a real distance.
	Reachable int

	// MinDist and MaxDist bound the reachable distances; both are 0
	// when nothing but the source is reachable.
	MinDist int64
	MaxDist int64

	// AvgDist is the mean reachable distance, 0 when none exist.
	AvgDist float64
}

// Summary computes the run's aggregate statistics.
func (r *Result) Summary() Summary {
	sum := Summary{Source: r.source}

	var total int64
	found := false
	for v, d := range r.dist {
		if d == r.sentinel || v == r.source {
			continue
		}
		if !found {
			sum.MinDist, sum.MaxDist = d, d
			found = true
		} else {
			if d < sum.MinDist {
				sum.MinDist = d
			}
			if d > sum.MaxDist {
				sum.MaxDist = d
			}
		}
		sum.Reachable++
		total += d
	}
	if sum.Reachable > 0 {
		sum.AvgDist = float64(total) / float64(sum.Reachable)
	}

	return sum
}
