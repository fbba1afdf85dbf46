// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// impl_gnm_directed.go — directed G(n,m): exactly m ordered pairs drawn
// uniformly without replacement from the n×n matrix (minus the diagonal
// unless self-loops are enabled).

package generator

import (
	"fmt"

	"github.com/mschimek/KaGen/chunk"
	"github.com/mschimek/KaGen/comm"
)

// GNMDirected samples a directed graph with an exact global edge count m.
type GNMDirected struct {
	gnmEngine
}

// NewGNMDirected validates cfg (N, M ≤ n(n−1)[+n], K, sink mode) and
// prepares the generator.
func NewGNMDirected(cfg Config, c comm.Communicator, opts ...Option) (*GNMDirected, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", methodGNMDirected, ErrNilCommunicator)
	}
	cfg.K = resolveChunkCount(cfg.K, c)

	if err := collect(methodGNMDirected,
		validateVertexCount(cfg.N),
		validateLinearChunks(cfg.K, cfg.N, c.Size()),
		validateDist(cfg),
	); err != nil {
		return nil, err
	}

	lin, err := chunk.NewLinear(cfg.N, cfg.K)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGNMDirected, err)
	}

	g := &GNMDirected{gnmEngine{
		base:  newBase(cfg, c, opts),
		space: gnmSpace{n: cfg.N, selfLoops: cfg.SelfLoops, undirected: false, lin: lin},
		span:  chunk.Owned(c.Rank(), c.Size(), cfg.K),
	}}

	if capacity := g.space.capacity(); cfg.M > capacity {
		return nil, fmt.Errorf("%s: m=%d > capacity=%d: %w",
			methodGNMDirected, cfg.M, capacity, ErrInvalidEdgeCount)
	}

	g.startNode = lin.Offset(g.span.Start)
	g.endNode = lin.Offset(g.span.End())

	return g, nil
}

// Generate distributes m down the chunk tree and fills the owned leaves.
func (g *GNMDirected) Generate() error {
	return g.generate(methodGNMDirected)
}
