// Package metrics provides the per-run measurement record attached to
// every algorithm result in this module.
//
// What
//
//	A Metrics value owns a wall-clock window (Start/Stop) and a set of
//	named operation counters (Inc/Add). Each solver run creates a fresh
//	value, fills it while the algorithm executes, and hands it to the
//	caller inside the run's Result. Nothing is ambient: two concurrent
//	runs never share a Metrics value, so no reset step exists or is
//	needed.
//
// Why
//
//	Comparing algorithm variants (DFS vs Kahn ordering, shortest vs
//	longest relaxation) requires like-for-like operation counts next to
//	wall time. Keeping the record inside the Result makes a measurement
//	impossible to read before the run that produced it has finished.
//
// Complexity
//
//	Inc/Add/Count are O(1) map operations; Report is O(k log k) in the
//	number of distinct counters, from sorting the names.
//
// Errors
//
//	None. Reading an unknown counter returns zero; Elapsed before Stop
//	measures up to the current instant.
package metrics
