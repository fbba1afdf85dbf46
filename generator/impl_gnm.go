// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// impl_gnm.go — the shared G(n,m) engine: recursive hypergeometric splitting
// over an implicit binary chunk tree, then exact placement inside leaves.
//
// Canonical model:
//   • The candidate space of T cells is tiled by the k linear chunks; an
//     implicit binary tree covers the chunk range [0,k) with heap-indexed
//     node ids (root 1, children 2i and 2i+1).
//   • At each internal node, the node's edge budget splits into the left
//     subtree by Hypergeometric(Hash(seed ⊕ nodeID), T_left, T_node, m_node);
//     the right subtree receives the remainder, so budgets are conserved
//     exactly at every level and Σ m_leaf = m.
//   • A leaf places its m_leaf edges on distinct cells by partial
//     Fisher–Yates keyed on Hash(seed ⊕ leafNodeID); the hypergeometric
//     support bound guarantees m_leaf never exceeds the leaf area.
//   • A participant descends only into subtrees that intersect its owned
//     chunk span, recomputing the splits along those paths locally; the
//     hash keying makes every participant derive identical budgets.
//
// Complexity:
//   • Time: O(k) tree nodes + O(m_local) placements (expected).
//   • Space: O(m_local) for the Fisher–Yates swap map.

package generator

import (
	"github.com/mschimek/KaGen/chunk"
	"github.com/mschimek/KaGen/rng"
)

// gnmSpace abstracts the directed / undirected candidate-cell geometry.
type gnmSpace struct {
	n          uint64
	selfLoops  bool
	undirected bool
	lin        chunk.Linear
}

// cells returns the candidate-cell count of the chunk range [loC, hiC).
func (s gnmSpace) cells(loC, hiC uint64) uint64 {
	lo, hi := s.lin.Offset(loC), s.lin.Offset(hiC)
	if s.undirected {
		return cellsUndirected(s.n, lo, hi, s.selfLoops)
	}

	return cellsDirected(s.n, lo, hi, s.selfLoops)
}

// capacity returns the total candidate-cell count T.
func (s gnmSpace) capacity() uint64 {
	return s.cells(0, s.lin.Count())
}

// pair maps a cell index inside chunk c to its (u,v) pair.
func (s gnmSpace) pair(c, cell uint64) (u, v uint64) {
	lo, hi := s.lin.Range(c)
	if s.undirected {
		return undirectedCell(s.n, lo, hi, cell, s.selfLoops)
	}

	return directedCell(s.n, lo, cell, s.selfLoops)
}

// gnmEngine is the scaffolding shared by both G(n,m) variants.
type gnmEngine struct {
	base
	space gnmSpace
	span  chunk.Span
}

// generate runs the splitter over the owned part of the chunk tree.
func (g *gnmEngine) generate(method string) error {
	if err := g.begin(method); err != nil {
		return err
	}

	if g.edges != nil && g.space.capacity() > 0 {
		// Proportional reservation: owned share of the global budget.
		owned := g.space.cells(g.span.Start, g.span.End())
		share := float64(g.cfg.M) * float64(owned) / float64(g.space.capacity())
		g.edges.Reserve(uint64(share))
	}

	g.distribute(0, g.space.lin.Count(), gnmRootNode, g.cfg.M)
	g.finish()

	return nil
}

// distribute splits the budget of the node covering chunks [loC, hiC) and
// recurses into the halves that intersect the owned span.
func (g *gnmEngine) distribute(loC, hiC, node, budget uint64) {
	if hiC <= g.span.Start || loC >= g.span.End() {
		return // nothing owned below this node
	}
	if hiC-loC == 1 {
		g.sampleLeaf(loC, node, budget)

		return
	}

	mid := (loC + hiC) / 2
	left := g.space.cells(loC, mid)
	total := left + g.space.cells(mid, hiC)
	mLeft := rng.Hypergeometric(rng.Hash(g.cfg.Seed^node), left, total, budget)

	g.distribute(loC, mid, 2*node, mLeft)
	g.distribute(mid, hiC, 2*node+1, budget-mLeft)
}

// sampleLeaf places exactly budget edges on distinct cells of chunk c via
// partial Fisher–Yates over [0, area).
func (g *gnmEngine) sampleLeaf(c, node, budget uint64) {
	if budget == 0 {
		return
	}

	g.opts.log.Debug().
		Uint64("chunk", c).
		Uint64("edges", budget).
		Msg("gnm: sampling leaf")

	area := g.space.cells(c, c+1)
	stream := rng.NewStream(rng.Hash(g.cfg.Seed ^ node))

	// Sparse Fisher–Yates: swaps holds only the displaced positions.
	swaps := make(map[uint64]uint64, budget)
	for i := uint64(0); i < budget; i++ {
		j := i + stream.Below(area-i)

		vi, ok := swaps[i]
		if !ok {
			vi = i
		}
		vj, ok := swaps[j]
		if !ok {
			vj = j
		}
		swaps[j] = vi

		u, v := g.space.pair(c, vj)
		g.out.Emit(u, v)
	}
}
