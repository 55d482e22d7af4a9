// Package dagpath computes single-source shortest and longest paths
// over directed acyclic graphs, including the global critical path.
//
// What:
//
//   - New: constructs a Solver for one direction, Shortest or Longest.
//     Both directions share one relaxation skeleton; the comparison
//     sense and the unreachable sentinel (Inf or NegInf) are fixed at
//     construction.
//   - ComputeFrom: seeds the source at 0 and everything else at the
//     sentinel, obtains a topological order internally, then relaxes
//     each vertex's outgoing edges in that order. Vertices still at the
//     sentinel are skipped, so only source-rooted paths propagate.
//   - ComputeCritical (Longest only): seeds every vertex at 0 with no
//     sentinel skip, finding the heaviest chain anywhere in the graph.
//     This is the critical-path bound on minimum completion time.
//   - Result accessors: Distance, Reachable, PathTo, AllDistances,
//     Critical, Summary. Results exist only after a successful compute
//     and own their arrays.
//
// Why:
//   - Over a topological order, one O(V+E) sweep replaces priority
//     queues entirely; negative weights cost nothing, and maximizing is
//     the same loop with the comparison flipped.
//
// Key Types & Constants:
//
//   - Direction: Shortest or Longest
//   - Inf, NegInf: half-range sentinels, immune to single-step overflow
//   - NoSource: the Source() value of a critical-path result
//   - CriticalPath: the chain's vertices and total weight
//   - Counter names: edge_relaxations, distance_updates
//
// Complexity:
//
//   - ComputeFrom, ComputeCritical: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrNilGraph                  graph pointer is nil
//   - ErrUndirectedGraph           solvers require a directed graph
//   - ErrBadDirection              direction is neither Shortest nor Longest
//   - ErrCriticalRequiresLongest   critical path asked of a shortest solver
//   - ErrUnreachable               path requested to a sentinel-valued vertex
//   - toposort.ErrCycleDetected    the graph admits no topological order
//   - core.ErrVertexOutOfRange     source or accessor index outside [0, n)
//   - context.Canceled             traversal canceled via context
package dagpath
