// Package generator implements the chunk-partitioned deterministic samplers:
// G(n,p) and G(n,m) in directed and undirected variants, and 2D/3D lattice
// graphs with Bernoulli edge retention.
//
// What:
//
//   - Config + functional options resolve into a validated, immutable setup.
//   - NewGNPDirected / NewGNPUndirected: fixed edge probability p; one
//     hashed Bernoulli coin per candidate pair.
//   - NewGNMDirected / NewGNMUndirected: exact global edge count m,
//     distributed down an implicit binary chunk tree by hypergeometric
//     splits, then placed inside leaves by partial Fisher–Yates.
//   - NewGrid2D / NewGrid3D: per-vertex axis-neighbor queries with optional
//     periodic wrap; a coin keyed on the unordered pair decides emission.
//
// Why no communication:
//
//   - Every per-edge coin and every edge-count split is keyed on
//     Hash(seed, entity id); any two participants that evaluate the same
//     entity derive the same bits, so the global edge set is reproduced
//     exactly without exchanging a single edge.
//
// Lifecycle:
//
//   - New* → Generate() (once) → VertexRange() / NumberOfEdges() / Output().
//     Generators are single-use; a second Generate returns
//     ErrAlreadyGenerated, Output before Generate reports ErrNotGenerated,
//     and VertexRange before Generate returns (0, 0).
//
// Determinism:
//
//   - For fixed (model parameters, k, seed) the emitted global edge multiset
//     is identical for every participant count P ≤ k; within one participant
//     edges appear in chunk-major, then row/vertex-major order.
//
// Errors:
//
//   - ErrNilCommunicator, ErrInvalidVertexCount, ErrInvalidProbability,
//     ErrInvalidEdgeCount, ErrInvalidChunkCount, ErrInvalidDistSize,
//     ErrDimensionMismatch, ErrAlreadyGenerated, ErrNotGenerated.
//     Constructors aggregate the parameter checks before returning; the
//     G(n,m) capacity check and the lattice decomposition checks (chunk
//     package sentinels) run only once those pass.
package generator
