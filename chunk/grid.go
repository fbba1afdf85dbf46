// SPDX-License-Identifier: MIT
// Package: kagen/chunk
//
// grid.go — square/cubic chunk grids over 2D/3D lattices.
//
// Canonical model:
//   • k chunks arranged as a d×d (2D) or d×d×d (3D) grid; k MUST be a perfect
//     square/cube (rejected otherwise, no floating-point truncation).
//   • Along each axis, cells divide as ⌊cells/d⌋ per chunk with the first
//     cells mod d chunks one cell wider ("remainder rows").
//   • Chunk ids decode lexicographically: cx = c mod d, cy = (c/d) mod d,
//     cz = c/d².
//   • Vertex ids are lexicographic within a chunk (x fastest) and chunks are
//     contiguous in global id space; Offset computes the first vertex id of a
//     chunk in closed form by inclusion–exclusion over the axis half-spaces
//     {x < vx}, {y < vy}, {z < vz}.
//
// Invariant:
//   • Offset(c+1) − Offset(c) equals the cell volume of chunk c, and
//     Offset(k) = X·Y·Z (asserted by enumeration tests on small grids).

package chunk

import (
	"fmt"
	"math"
)

// Grid tiles an X×Y×Z lattice (Z = 1 in 2D) into a grid of chunks.
// The z axis always carries a single chunk layer in 2D.
type Grid struct {
	x, y, z    uint64 // lattice dimensions in cells
	dx, dy, dz uint64 // chunks per axis

	xPer, yPer, zPer uint64 // base cells per chunk along each axis
	xRem, yRem, zRem uint64 // chunks receiving one extra cell
}

// NewGrid2 builds the decomposition of an X×Y lattice into k = d² chunks.
// Complexity: O(1) time, O(1) space.
func NewGrid2(x, y, k uint64) (Grid, error) {
	if x == 0 || y == 0 {
		return Grid{}, fmt.Errorf("NewGrid2: dims %d×%d: %w", x, y, ErrZeroSpace)
	}
	if k == 0 {
		return Grid{}, fmt.Errorf("NewGrid2: %w", ErrZeroChunks)
	}

	d, ok := intRoot(k, 2)
	if !ok {
		return Grid{}, fmt.Errorf("NewGrid2: k=%d: %w", k, ErrNotPerfectSquare)
	}
	if d > x || d > y {
		return Grid{}, fmt.Errorf("NewGrid2: %d chunks per axis over %d×%d cells: %w",
			d, x, y, ErrTooManyChunks)
	}

	return newGrid(x, y, 1, d, d, 1), nil
}

// NewGrid3 builds the decomposition of an X×Y×Z lattice into k = d³ chunks.
// Complexity: O(1) time, O(1) space.
func NewGrid3(x, y, z, k uint64) (Grid, error) {
	if x == 0 || y == 0 || z == 0 {
		return Grid{}, fmt.Errorf("NewGrid3: dims %d×%d×%d: %w", x, y, z, ErrZeroSpace)
	}
	if k == 0 {
		return Grid{}, fmt.Errorf("NewGrid3: %w", ErrZeroChunks)
	}

	d, ok := intRoot(k, 3)
	if !ok {
		return Grid{}, fmt.Errorf("NewGrid3: k=%d: %w", k, ErrNotPerfectCube)
	}
	if d > x || d > y || d > z {
		return Grid{}, fmt.Errorf("NewGrid3: %d chunks per axis over %d×%d×%d cells: %w",
			d, x, y, z, ErrTooManyChunks)
	}

	return newGrid(x, y, z, d, d, d), nil
}

func newGrid(x, y, z, dx, dy, dz uint64) Grid {
	return Grid{
		x: x, y: y, z: z,
		dx: dx, dy: dy, dz: dz,
		xPer: x / dx, yPer: y / dy, zPer: z / dz,
		xRem: x % dx, yRem: y % dy, zRem: z % dz,
	}
}

// Dims returns the lattice dimensions (Z = 1 in 2D).
func (g Grid) Dims() (x, y, z uint64) { return g.x, g.y, g.z }

// Cells returns the total lattice cell count X·Y·Z.
func (g Grid) Cells() uint64 { return g.x * g.y * g.z }

// Count returns the total chunk count.
func (g Grid) Count() uint64 { return g.dx * g.dy * g.dz }

// PerDim returns the chunk count along the x axis (equal to y, and to z in
// 3D).
func (g Grid) PerDim() uint64 { return g.dx }

// AxisCount returns the chunk counts along each axis (dz = 1 in 2D).
func (g Grid) AxisCount() (dx, dy, dz uint64) { return g.dx, g.dy, g.dz }

// Decode splits a chunk id into its per-axis coordinates.
func (g Grid) Decode(c uint64) (cx, cy, cz uint64) {
	return c % g.dx, (c / g.dx) % g.dy, c / (g.dx * g.dy)
}

// Encode composes a chunk id from per-axis coordinates.
func (g Grid) Encode(cx, cy, cz uint64) uint64 {
	return cx + cy*g.dx + cz*g.dx*g.dy
}

// Extent returns the cell counts of chunk (cx, cy, cz) along each axis.
func (g Grid) Extent(cx, cy, cz uint64) (xs, ys, zs uint64) {
	xs = g.xPer + boolToCell(cx < g.xRem)
	ys = g.yPer + boolToCell(cy < g.yRem)
	zs = g.zPer + boolToCell(cz < g.zRem)

	return xs, ys, zs
}

// AxisStart returns the first global cell coordinates of chunk (cx, cy, cz).
func (g Grid) AxisStart(cx, cy, cz uint64) (vx, vy, vz uint64) {
	return axisOffset(cx, g.xPer, g.xRem),
		axisOffset(cy, g.yPer, g.yRem),
		axisOffset(cz, g.zPer, g.zRem)
}

// Offset returns the first global vertex id of chunk c, valid for c ∈ [0, k].
// Offset(k) is the one-past-the-end id X·Y·Z.
//
// The id of a chunk's first vertex equals the number of cells preceding it,
// counted by inclusion–exclusion over the three half-spaces below the chunk's
// start coordinates.
func (g Grid) Offset(c uint64) uint64 {
	cx, cy, cz := g.Decode(c)

	vx, vy, vz := g.AxisStart(cx, cy, cz)
	vyNext := axisOffset(cy+1, g.yPer, g.yRem)
	vzNext := axisOffset(cz+1, g.zPer, g.zRem)

	upper := g.x * vy * vzNext
	frontal := g.x * g.y * vz
	left := vx * vyNext * vzNext

	upperFrontal := g.x * vy * vz
	upperLeft := vx * vy * vzNext
	frontalLeft := vx * vyNext * vz
	all := vx * vy * vz

	return upper + frontal + left - upperFrontal - upperLeft - frontalLeft + all
}

// axisOffset is the first cell coordinate of the c-th chunk along one axis.
func axisOffset(c, per, rem uint64) uint64 {
	extra := c
	if rem < c {
		extra = rem
	}

	return c*per + extra
}

func boolToCell(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}

// intRoot returns the exact integer square or cube root of k, reporting
// whether k is a perfect power. Float estimation is corrected by a short
// integer walk so no truncation error can leak into the decomposition.
func intRoot(k uint64, degree int) (uint64, bool) {
	var est uint64
	if degree == 2 {
		est = uint64(math.Round(math.Sqrt(float64(k))))
	} else {
		est = uint64(math.Round(math.Cbrt(float64(k))))
	}

	for est > 0 && pow(est, degree) > k {
		est--
	}
	for pow(est+1, degree) <= k {
		est++
	}

	return est, pow(est, degree) == k
}

func pow(v uint64, degree int) uint64 {
	out := v
	for i := 1; i < degree; i++ {
		out *= v
	}

	return out
}
