// Package pipeline chains the graph algorithms into the full task-graph
// analysis: components, condensation, topological orders, the task
// plan, and DAG path computations, plus the benchmark harness that
// measures the same stages across dataset files.
//
// What:
//
//   - Analyze runs the five stages over one graph and bundles every
//     per-stage result into an Analysis.
//   - (*Analysis).WriteText renders the step-by-step walkthrough.
//   - Measure condenses one run into a Measurement row; RunSuite
//     measures a list of dataset files, collecting per-file failures
//     without aborting the batch.
//   - WriteReport and WriteSummary render the benchmark tables and the
//     console summary.
//
// Why:
//
//   - The stages feed each other (components → condensation → order →
//     plan → paths); one entry point keeps the wiring in a single place.
//
// Complexity:
//
//   - Analyze: O(V + E) over the input graph plus O(C + E') over its
//     condensation; every stage is linear.
//
// Errors:
//
//   - ErrNilGraph: Analyze received a nil graph.
//   - A source outside [0, n) wraps core.ErrVertexOutOfRange.
//   - Stage failures are wrapped with the stage name; cancellation via
//     WithCancelContext surfaces the context error.
package pipeline
