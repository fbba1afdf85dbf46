// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// cells.go — candidate-edge space arithmetic shared by G(n,p) and G(n,m).
//
// The candidate space is tiled by vertex rows: chunk c owns the rows of the
// linear decomposition, and within a row the admissible columns are
//   directed:    [0,n) minus the diagonal unless self-loops are on;
//   undirected:  (u,n) — the strict upper triangle — or [u,n) with loops.
// Each candidate pair therefore belongs to exactly one chunk, which is what
// makes undirected single emission hold across participants.

package generator

// rowWidthDirected is the number of admissible columns of any directed row.
func rowWidthDirected(n uint64, selfLoops bool) uint64 {
	if selfLoops {
		return n
	}

	return n - 1
}

// cellsDirected is the candidate-cell count of the directed rows [lo,hi).
func cellsDirected(n, lo, hi uint64, selfLoops bool) uint64 {
	return (hi - lo) * rowWidthDirected(n, selfLoops)
}

// cellsUndirected is the candidate-cell count of the undirected rows [lo,hi):
// Σ_{u=lo}^{hi-1} (n−u−1), plus one diagonal cell per row with self-loops.
func cellsUndirected(n, lo, hi uint64, selfLoops bool) uint64 {
	span := hi - lo
	if span == 0 {
		return 0
	}

	sumRows := (lo + hi - 1) * span / 2 // Σ u over [lo,hi)
	cells := span*(n-1) - sumRows
	if selfLoops {
		cells += span
	}

	return cells
}

// directedCell maps a cell index inside the directed rows [rowLo,·) to its
// (u,v) pair, skipping the diagonal when self-loops are off.
func directedCell(n, rowLo, cell uint64, selfLoops bool) (u, v uint64) {
	width := rowWidthDirected(n, selfLoops)
	u = rowLo + cell/width
	v = cell % width

	if !selfLoops && v >= u {
		v++
	}

	return u, v
}

// undirectedCell maps a cell index inside the undirected rows [rowLo,rowHi)
// to its canonical (u,v) pair, u ≤ v, via binary search on the cumulative
// row widths.
func undirectedCell(n, rowLo, rowHi, cell uint64, selfLoops bool) (u, v uint64) {
	// Find the last row u with cells(rowLo,u) ≤ cell.
	lo, hi := rowLo+1, rowHi // candidate exclusive upper bounds
	for lo < hi {
		mid := (lo + hi) / 2
		if cellsUndirected(n, rowLo, mid, selfLoops) <= cell {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	u = lo - 1

	col := cell - cellsUndirected(n, rowLo, u, selfLoops)
	v = u + col
	if !selfLoops {
		v++
	}

	return u, v
}
