// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// impl_gnp_undirected.go — undirected G(n,p).
//
// Canonical model:
//   • Candidate space: the strict upper triangle of the adjacency matrix
//     (the diagonal joins it when self-loops are enabled).
//   • Each unordered pair {u,v} lives in exactly one chunk — the chunk that
//     owns row min(u,v) — so every edge is emitted by exactly one
//     participant (the single-emission contract).
//   • Per canonical pair u ≤ v: emit iff Bernoulli(Hash(seed ⊕ (u·n+v)), p).
//
// Determinism:
//   • Same per-pair keying as the directed variant; the edge set is a pure
//     function of (n, p, seed).
//   • Emission order: chunk-major, then row-major, then column-major.

package generator

import (
	"fmt"

	"github.com/mschimek/KaGen/chunk"
	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/rng"
)

// GNPUndirected samples an undirected Erdős–Rényi graph with edge
// probability p; every emitted edge is in canonical (min,max) orientation.
type GNPUndirected struct {
	base
	lin  chunk.Linear
	span chunk.Span
}

// NewGNPUndirected validates cfg and prepares the generator.
func NewGNPUndirected(cfg Config, c comm.Communicator, opts ...Option) (*GNPUndirected, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", methodGNPUndirected, ErrNilCommunicator)
	}
	cfg.K = resolveChunkCount(cfg.K, c)

	if err := collect(methodGNPUndirected,
		validateVertexCount(cfg.N),
		validateProbability(cfg.P),
		validateLinearChunks(cfg.K, cfg.N, c.Size()),
		validateDist(cfg),
	); err != nil {
		return nil, err
	}

	lin, err := chunk.NewLinear(cfg.N, cfg.K)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGNPUndirected, err)
	}

	g := &GNPUndirected{
		base: newBase(cfg, c, opts),
		lin:  lin,
		span: chunk.Owned(c.Rank(), c.Size(), cfg.K),
	}
	g.startNode = lin.Offset(g.span.Start)
	g.endNode = lin.Offset(g.span.End())

	return g, nil
}

// Generate scans the owned upper-triangular rows exactly once.
func (g *GNPUndirected) Generate() error {
	if err := g.begin(methodGNPUndirected); err != nil {
		return err
	}

	n, p, seed := g.cfg.N, g.cfg.P, g.cfg.Seed
	for c := g.span.Start; c < g.span.End(); c++ {
		g.opts.log.Debug().Uint64("chunk", c).Msg("gnp-undirected: sampling chunk")

		lo, hi := g.lin.Range(c)
		for u := lo; u < hi; u++ {
			vStart := u + 1
			if g.cfg.SelfLoops {
				vStart = u
			}
			for v := vStart; v < n; v++ {
				if rng.Bernoulli(rng.Hash(seed^(u*n+v)), p) {
					g.out.Emit(u, v)
				}
			}
		}
	}
	g.finish()

	return nil
}
