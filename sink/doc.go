// Package sink receives accepted edges from a generator and accumulates
// either an append-only edge list or a fixed-size degree histogram.
//
// What:
//
//   - Sink:     the capability every generator emits into.
//   - EdgeSink: buffers (u,v) pairs; optional per-edge callback for drivers
//     that attach weights or stream edges elsewhere.
//   - DistSink: increments a degree histogram for both endpoints instead of
//     storing edges.
//
// Ownership:
//
//   - A sink is exclusively owned by its generator and accessed by exactly
//     one goroutine; no locking is needed or provided.
//
// Accounting:
//
//   - NumEdges reports one count per Emit call in both modes. Generators emit
//     each undirected edge exactly once (canonical orientation), so no
//     halving is applied anywhere.
package sink
