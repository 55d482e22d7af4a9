// Package scc finds strongly connected components with Tarjan's
// algorithm and builds the acyclic condensation of a directed graph.
//
// What:
//
//   - Tarjan: single-pass component detection driven by an explicit
//     work stack of (vertex, edge index) frames, with discovery and
//     low-link bookkeeping and an explicit component stack. Components
//     close in reverse topological order; each lists its vertices in
//     ascending order.
//   - Condense: collapses every component to one vertex, dropping
//     self-loops and keeping at most one edge per ordered component
//     pair (the first-encountered weight survives).
//   - Condensation.IsAcyclic: independent three-color verification
//     that the condensed graph carries no cycle.
//
// Why:
//   - Cyclic dependency clusters in a task graph must be located and
//     compressed before any linearization or path analysis can run.
//   - The condensation is the acyclic backbone every downstream stage
//     (ordering, scheduling, path solving) consumes.
//
// Key Types & Constants:
//
//   - Result: Components, ComponentOf, and the run's Metrics
//   - Condensation: the condensed graph plus partition lookups
//   - Counter names: dfs_visits, edge_traversals, stack_pops
//
// Complexity:
//
//   - Tarjan:    Time O(V+E), Memory O(V)
//   - Condense:  Time O(V+E), Memory O(V+E)
//   - IsAcyclic: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrNilGraph             graph pointer is nil
//   - ErrNilResult            component result pointer is nil
//   - ErrPartitionMismatch    partition does not cover the graph
//   - ErrComponentOutOfRange  component index outside [0, Count)
//   - context.Canceled        traversal canceled via context
package scc
