// Package graphstat reduces descriptive statistics of a generated graph
// across the participants of a communicator.
//
// What:
//
//   - GlobalNodeCount / GlobalEdgeCount: the graph-wide totals derived from
//     per-participant state (no participant ever holds the whole graph).
//   - GatherEdgeCounts: per-rank local edge counts, at the root.
//   - ReduceDegreeStatistics: min / mean / max out-degree over the locally
//     sorted edge lists, folded at the root.
//   - LoadBalance: mean and standard deviation of the per-rank edge counts,
//     at the root.
//
// All functions are collective: every participant must call them in the
// same order. Root-only results are zero-valued on other ranks.
package graphstat
