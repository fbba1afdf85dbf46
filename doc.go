// Package kagen is a distributed random-graph generator: every participant
// independently and deterministically emits its own slice of one global edge
// set, without exchanging edges and without any participant materializing
// the whole graph.
//
// 🎲 What is KaGen?
//
//	A communication-free sampling library built on three ideas:
//		• Chunking: the candidate-edge space tiles into k chunks, a pure
//		  function of the model parameters; participants own contiguous runs.
//		• Stateless randomness: every coin and every count is keyed on
//		  Hash(seed, entity id), so all participants agree bit for bit.
//		• Collectives by handle: output and statistics reduce over an
//		  explicitly passed communicator, never a process-wide global.
//
// Generator families:
//
//   - G(n,p) — directed/undirected Erdős–Rényi with fixed edge probability.
//   - G(n,m) — directed/undirected with an exact global edge count.
//   - Grid   — 2D/3D lattices with per-adjacency Bernoulli retention and
//     optional periodic (torus) boundaries.
//
// This package is the driver facade: one call builds, runs, and unwraps a
// generator into the local edge list and vertex range. The underlying
// machinery lives in the subpackages:
//
//	rng/       — deterministic hash and Binomial/Hypergeometric variates
//	chunk/     — linear and lattice chunk decompositions + ownership
//	sink/      — edge-list and degree-histogram accumulation
//	comm/      — communicator handle + in-process collective runtime
//	generator/ — the samplers themselves, with full configuration
//	edgeio/    — text/binary edge-list and distribution output
//	graphstat/ — graph statistics reduced across participants
//
// Quick example (one participant, 4×4 lattice, every adjacency kept):
//
//	c, _ := comm.NewLocalGroup(1)
//	res, _ := kagen.Generate2DGrid(c[0], 4, 4, 1.0, false)
//	// res.Edges holds all 24 lattice edges, res.Range is [0,15].
//
// For multi-participant runs, call the same facade function on every
// communicator of a group (comm.Run drives one goroutine per rank).
package kagen
