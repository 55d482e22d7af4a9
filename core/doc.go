// Package core defines the weighted graph every analysis stage reads:
// a dense, adjacency-list Graph whose vertices are the integers [0, n).
//
// What
//
//   - Graph: vertex count n, a directed flag, an opaque weight-model tag,
//     and per-vertex outgoing edge lists in insertion order.
//   - Edge: (From, To, Weight) with an int64 weight. Parallel edges and
//     self-loops are stored as given, never merged.
//   - Undirected graphs store both directions as two records; EdgeCount
//     reports the logical (halved) count.
//   - Reverse() builds the transpose with weights preserved.
//
// Why
//
//   - Task graphs identify tasks by index, so identity is the index: no
//     vertex objects, no ID maps, O(1) adjacency access.
//   - Every algorithm in this module treats the Graph as immutable after
//     construction, so instances can be shared across solver runs.
//
// Complexity
//
//   - AddEdge: O(1) amortized. Edges(u): O(1). Reverse: O(V + E).
//   - Memory: O(V + E).
//
// Errors
//
//   - ErrBadVertexCount     if NewGraph is given a negative n.
//   - ErrVertexOutOfRange   if an edge endpoint or query index is outside [0, n).
package core
