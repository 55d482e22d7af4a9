// Package toposort linearizes directed acyclic graphs two independent
// ways and validates orderings against the graph's edges.
//
// What:
//
//   - SortDFS: depth-first postorder ordering over explicit
//     (vertex, edge index) frames with White/Gray/Black vertex states.
//     An edge into a Gray vertex is a back edge and aborts the sort.
//     Completed vertices push onto a result stack; the final order pops
//     that stack.
//   - SortKahn: in-degree/queue ordering. In-degrees come from a full
//     edge scan, zero-in-degree vertices seed a FIFO queue, and each
//     removal decrements its neighbors' degrees. Fewer ordered vertices
//     than n means a cycle.
//   - IsValidOrder: the authoritative position check both variants must
//     satisfy. The two variants may break ties differently, so equal
//     output is never guaranteed, only validity.
//
// Why:
//   - A task graph can only be scheduled once its dependencies are
//     linearized; two independent algorithms cross-check each other and
//     expose different operation-count profiles for benchmarking.
//
// Key Types & Constants:
//
//   - White, Gray, Black: the per-vertex traversal states
//   - Result: the order plus the run's Metrics
//   - Counter names: dfs_visits, edge_traversals, stack_pushes,
//     stack_pops (SortDFS); queue_adds, queue_removes, degree_updates
//     (SortKahn)
//
// Complexity:
//
//   - SortDFS:      Time O(V+E), Memory O(V)
//   - SortKahn:     Time O(V+E), Memory O(V)
//   - IsValidOrder: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrNilGraph         graph pointer is nil
//   - ErrUndirectedGraph  ordering requires a directed graph
//   - ErrCycleDetected    the graph has no topological order
//   - context.Canceled    traversal canceled via context
package toposort
