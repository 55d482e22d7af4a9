// Package schedule maps a component-level execution order back onto the
// original task vertices.
//
// What:
//
//   - Plan: pure mapping, no graph traversal. Given a topological order
//     of component indices and the component partition, it produces the
//     flat task order (each component's tasks sorted ascending, in
//     component order), the per-phase task groups, and the task→phase
//     lookup. Tasks of one component share a phase: they depend on each
//     other cyclically, so they ship as one unit.
//
// Why:
//   - Downstream consumers schedule original tasks, not components; the
//     plan translates the condensation-level ordering into both views.
//
// Complexity:
//
//   - Plan: Time O(V log V) from per-component sorting, Memory O(V)
//
// Errors:
//
//   - ErrBadComponentOrder  order is not a permutation of component indices
//   - ErrBadPartition       components do not partition the task range
package schedule
