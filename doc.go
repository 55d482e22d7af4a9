// Package citygraph turns weighted directed task graphs into schedules —
// from cyclic dependency clusters to a condensed DAG, linear orders, and
// minimum/maximum-cost timing analysis.
//
// What is citygraph?
//
//	A small, focused toolkit built around one four-stage pipeline:
//		• Components:   Tarjan's strongly connected components (scc)
//		• Condensation: collapse each component into one DAG node (scc)
//		• Ordering:     DFS-postorder and Kahn topological sorts (toposort)
//		• Paths:        single-source shortest/longest + critical path (dagpath)
//
// Why citygraph?
//
//   - One pass each – every stage is O(V + E), iterative, heap-bounded
//   - Honest results – a cycle is a branchable sentinel, never a panic
//   - Instrumented – every run returns a fresh Metrics value
//     (elapsed time plus named counters) alongside its result
//
// The packages, leaves first:
//
//	core/     — the adjacency-list Graph every stage reads
//	metrics/  — per-run timing and counter recorder
//	scc/      — component detection and condensation
//	toposort/ — two linearizations plus order validation
//	schedule/ — component order mapped back to task phases
//	dagpath/  — DAG shortest/longest paths and the critical path
//	dataset/  — JSON and HCL ingestion, seeded graph generation
//	pipeline/ — the five-step analysis run, benchmarking, reports
//
// Quick sketch: tasks 0→1(5), 0→2(3), 2→1(1) schedule as phases
// {0} {2} {1}, shortest cost to 1 is 4 (via 2), longest is 5 (direct).
//
//	go get github.com/sajltaha/citygraph
package citygraph
