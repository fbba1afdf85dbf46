// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// impl_gnp_directed.go — directed G(n,p).
//
// Canonical model:
//   • Candidate space: the n×n adjacency matrix, minus the diagonal unless
//     self-loops are enabled.
//   • Chunk c owns the vertex rows of the linear decomposition; this
//     participant scans only its owned chunks.
//   • Per ordered pair (u,v): emit iff Bernoulli(Hash(seed ⊕ (u·n+v)), p).
//
// Determinism:
//   • The decision for (u,v) depends only on (n, p, seed), never on k or the
//     participant count, so re-partitioned runs agree cell by cell.
//   • Emission order: chunk-major, then row-major, then column-major.
//
// Complexity:
//   • Time: O(owned rows · n) Bernoulli trials. Space: O(accepted edges).

package generator

import (
	"fmt"

	"github.com/mschimek/KaGen/chunk"
	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/rng"
)

// GNPDirected samples a directed Erdős–Rényi graph with edge probability p.
type GNPDirected struct {
	base
	lin  chunk.Linear
	span chunk.Span
}

// NewGNPDirected validates cfg (N, P, K, sink mode) and prepares the
// generator for the participant behind c.
func NewGNPDirected(cfg Config, c comm.Communicator, opts ...Option) (*GNPDirected, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", methodGNPDirected, ErrNilCommunicator)
	}
	cfg.K = resolveChunkCount(cfg.K, c)

	if err := collect(methodGNPDirected,
		validateVertexCount(cfg.N),
		validateProbability(cfg.P),
		validateLinearChunks(cfg.K, cfg.N, c.Size()),
		validateDist(cfg),
	); err != nil {
		return nil, err
	}

	lin, err := chunk.NewLinear(cfg.N, cfg.K)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGNPDirected, err)
	}

	g := &GNPDirected{
		base: newBase(cfg, c, opts),
		lin:  lin,
		span: chunk.Owned(c.Rank(), c.Size(), cfg.K),
	}
	g.startNode = lin.Offset(g.span.Start)
	g.endNode = lin.Offset(g.span.End())

	return g, nil
}

// Generate scans every owned candidate cell exactly once.
func (g *GNPDirected) Generate() error {
	if err := g.begin(methodGNPDirected); err != nil {
		return err
	}

	n, p, seed := g.cfg.N, g.cfg.P, g.cfg.Seed
	for c := g.span.Start; c < g.span.End(); c++ {
		g.opts.log.Debug().Uint64("chunk", c).Msg("gnp-directed: sampling chunk")

		lo, hi := g.lin.Range(c)
		for u := lo; u < hi; u++ {
			for v := uint64(0); v < n; v++ {
				if u == v && !g.cfg.SelfLoops {
					continue
				}
				if rng.Bernoulli(rng.Hash(seed^(u*n+v)), p) {
					g.out.Emit(u, v)
				}
			}
		}
	}
	g.finish()

	return nil
}
