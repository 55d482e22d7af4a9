package dagpath_test

import (
	"fmt"

	"github.com/sajltaha/citygraph/core"
	"github.com/sajltaha/citygraph/dagpath"
)

// ExampleSolver_ComputeFrom relaxes a three-vertex DAG where the
// two-hop route 0->2->1 beats the direct edge 0->1.
func ExampleSolver_ComputeFrom() {
	g, _ := core.NewGraph(3, core.WithDirected(true))
	_ = g.AddEdge(0, 1, 5)
	_ = g.AddEdge(0, 2, 3)
	_ = g.AddEdge(2, 1, 1)

	s, _ := dagpath.New(g, dagpath.Shortest)
	res, _ := s.ComputeFrom(0)

	d, _ := res.Distance(1)
	path, _ := res.PathTo(1)
	fmt.Println("distance to 1:", d)
	fmt.Println("path to 1:", path)

	// Output:
	// distance to 1: 4
	// path to 1: [0 2 1]
}

// ExampleSolver_ComputeCritical finds the heaviest chain in a task
// graph, the schedule's minimum completion time.
func ExampleSolver_ComputeCritical() {
	g, _ := core.NewGraph(4, core.WithDirected(true))
	_ = g.AddEdge(0, 1, 3)
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(2, 3, 2)

	s, _ := dagpath.New(g, dagpath.Longest)
	res, _ := s.ComputeCritical()

	cp, _ := res.Critical()
	fmt.Println(cp)

	// Output:
	// critical path [0 1 2 3] (length 9)
}
