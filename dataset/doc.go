// Package dataset reads, writes, and synthesizes graph descriptions,
// the interchange format between stored task graphs and *core.Graph.
//
// What:
//
//   - Description / EdgeDesc mirror the JSON wire format: directed flag,
//     vertex count, edge list, source vertex, weight model.
//   - ParseJSON / LoadJSON and ParseHCL / LoadHCL decode the two
//     supported file formats into a Description.
//   - (*Description).Build validates the description and constructs the
//     graph together with its source vertex.
//   - Generator draws synthetic datasets (pure DAGs, cyclic graphs,
//     multi-component graphs) from a seeded random stream.
//   - Suite / WriteSuite produce the nine standard datasets used by the
//     benchmark commands.
//
// Why:
//
//   - Task graphs arrive as files; analysis wants *core.Graph.
//   - Reproducible synthetic inputs make benchmark runs comparable.
//
// Key Types & Constants:
//
//   - Description    — one dataset: shape, edges, source, weight model.
//   - EdgeDesc       — one edge record (u, v, w).
//   - Generator      — seeded dataset synthesizer; DefaultSeed = 42.
//   - Recipe         — a named standard dataset and its generation call.
//
// Complexity:
//
//   - ParseJSON / ParseHCL: O(size of input).
//   - Build:                O(V + E).
//   - Generator.DAG:        O(n^2) candidate edges drawn and shuffled.
//   - Generator.Random:     expected O(target edges) draws.
//   - Generator.MultiSCC:   O(total vertices + edges).
//
// Errors:
//
//   - ErrBadVertexCount:   generator called with a non-positive size.
//   - ErrBadDensity:       density outside [0, 1].
//   - ErrBadWeightRange:   minimum weight exceeds maximum.
//   - ErrBadComponentSize: component size bounds missing or inverted.
//   - Decode and build failures wrap the underlying json, hcl, or core
//     errors, so errors.Is sees core.ErrVertexOutOfRange and friends.
package dataset
