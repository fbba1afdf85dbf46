// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// impl_gnm_undirected.go — undirected G(n,m): exactly m unordered pairs
// drawn uniformly without replacement from the strict upper triangle (the
// diagonal joins it when self-loops are enabled). Every emitted edge is in
// canonical (min,max) orientation and appears on exactly one participant.

package generator

import (
	"fmt"

	"github.com/mschimek/KaGen/chunk"
	"github.com/mschimek/KaGen/comm"
)

// GNMUndirected samples an undirected graph with an exact global edge count.
type GNMUndirected struct {
	gnmEngine
}

// NewGNMUndirected validates cfg (N, M ≤ n(n−1)/2[+n], K, sink mode) and
// prepares the generator.
func NewGNMUndirected(cfg Config, c comm.Communicator, opts ...Option) (*GNMUndirected, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", methodGNMUndirected, ErrNilCommunicator)
	}
	cfg.K = resolveChunkCount(cfg.K, c)

	if err := collect(methodGNMUndirected,
		validateVertexCount(cfg.N),
		validateLinearChunks(cfg.K, cfg.N, c.Size()),
		validateDist(cfg),
	); err != nil {
		return nil, err
	}

	lin, err := chunk.NewLinear(cfg.N, cfg.K)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGNMUndirected, err)
	}

	g := &GNMUndirected{gnmEngine{
		base:  newBase(cfg, c, opts),
		space: gnmSpace{n: cfg.N, selfLoops: cfg.SelfLoops, undirected: true, lin: lin},
		span:  chunk.Owned(c.Rank(), c.Size(), cfg.K),
	}}

	if capacity := g.space.capacity(); cfg.M > capacity {
		return nil, fmt.Errorf("%s: m=%d > capacity=%d: %w",
			methodGNMUndirected, cfg.M, capacity, ErrInvalidEdgeCount)
	}

	g.startNode = lin.Offset(g.span.Start)
	g.endNode = lin.Offset(g.span.End())

	return g, nil
}

// Generate distributes m down the chunk tree and fills the owned leaves.
func (g *GNMUndirected) Generate() error {
	return g.generate(methodGNMUndirected)
}
