// Package rng provides the deterministic randomness kernel of KaGen:
// a stateless 64-bit hash, a counter-mode uniform stream derived from it,
// and Bernoulli / Binomial / Hypergeometric variate samplers.
//
// What:
//
//   - Hash:            high-quality 64-bit mixer (xxHash over the LE encoding).
//   - Stream:          deterministic uniform stream keyed on a single seed.
//   - Bernoulli:       biased coin decided by the top 53 bits of a hash value.
//   - Binomial:        X ~ Binom(trials, p), deterministic in its seed.
//   - Hypergeometric:  successes among draws without replacement, deterministic
//     in its seed and always inside the exact support.
//
// Why:
//
//   - Distributed generation without communication: any two participants that
//     evaluate the same (seed, entity) tuple obtain the same variate, so edge
//     decisions and edge-count splits agree everywhere by construction.
//
// Determinism:
//
//   - Every function is pure: no package-level state, no time, no sync.
//     Identical inputs yield identical outputs on every participant.
//   - Degenerate parameters (p ∈ {0,1}, trials = 0, empty populations) return
//     the analytically exact answer and never panic.
//
// Complexity:
//
//   - Hash/Bernoulli: O(1).
//   - Binomial: O(trials·p) for the inverse-CDF branch, O(1) for the
//     normal-approximation branch.
//   - Hypergeometric: O(min(draws, successes)) for the inverse-CDF branch,
//     O(1) for the normal-approximation branch.
package rng
