// Package chunk contains enumeration tests for the linear and lattice
// decompositions: the telescoping offset invariant, exact tiling, and the
// balanced ownership assignment.
package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLinearValidation exercises the constructor sentinels.
func TestLinearValidation(t *testing.T) {
	t.Parallel()

	_, err := NewLinear(0, 4)
	assert.ErrorIs(t, err, ErrZeroSpace)

	_, err = NewLinear(10, 0)
	assert.ErrorIs(t, err, ErrZeroChunks)
}

// TestLinearOffsetsTile verifies Offset(0)=0, Offset(k)=n, and that chunk
// ranges tile [0,n) exactly once, including k > n (empty chunks allowed).
func TestLinearOffsetsTile(t *testing.T) {
	t.Parallel()

	cases := []struct{ n, k uint64 }{
		{n: 10, k: 1},
		{n: 10, k: 3},
		{n: 10, k: 10},
		{n: 7, k: 16}, // more chunks than vertices
		{n: 1000, k: 16},
	}
	for _, tc := range cases {
		l, err := NewLinear(tc.n, tc.k)
		require.NoError(t, err)

		require.Zero(t, l.Offset(0))
		require.Equal(t, tc.n, l.Offset(tc.k), "n=%d k=%d", tc.n, tc.k)

		var total uint64
		for c := uint64(0); c < tc.k; c++ {
			lo, hi := l.Range(c)
			require.LessOrEqual(t, lo, hi)
			require.Equal(t, lo, l.Offset(c))
			total += hi - lo
		}
		require.Equal(t, tc.n, total)
	}
}

// TestOwnedTiles verifies that the per-rank chunk spans tile [0,k) in rank
// order with no gap and no overlap, for divisible and leftover cases.
func TestOwnedTiles(t *testing.T) {
	t.Parallel()

	cases := []struct {
		size int
		k    uint64
	}{
		{size: 1, k: 4},
		{size: 2, k: 4},
		{size: 3, k: 8},
		{size: 4, k: 6},
		{size: 5, k: 3}, // some ranks own nothing
	}
	for _, tc := range cases {
		var next uint64
		for rank := 0; rank < tc.size; rank++ {
			span := Owned(rank, tc.size, tc.k)
			require.Equal(t, next, span.Start, "size=%d k=%d rank=%d", tc.size, tc.k, rank)
			next = span.End()
		}
		require.Equal(t, tc.k, next, "size=%d k=%d", tc.size, tc.k)
	}
}

// TestOwnedBalance verifies chunk counts differ by at most one across ranks.
func TestOwnedBalance(t *testing.T) {
	t.Parallel()

	const size = 7
	const k = uint64(24)
	lo, hi := k/size, k/size+1
	for rank := 0; rank < size; rank++ {
		count := Owned(rank, size, k).Count
		assert.GreaterOrEqual(t, count, lo)
		assert.LessOrEqual(t, count, hi)
	}
}

// TestGridValidation exercises the lattice constructor sentinels, including
// the perfect-square/cube requirement.
func TestGridValidation(t *testing.T) {
	t.Parallel()

	_, err := NewGrid2(0, 4, 4)
	assert.ErrorIs(t, err, ErrZeroSpace)

	_, err = NewGrid2(4, 4, 0)
	assert.ErrorIs(t, err, ErrZeroChunks)

	_, err = NewGrid2(4, 4, 3)
	assert.ErrorIs(t, err, ErrNotPerfectSquare)

	_, err = NewGrid2(2, 2, 9) // 3 chunks per axis over 2 cells
	assert.ErrorIs(t, err, ErrTooManyChunks)

	_, err = NewGrid3(3, 3, 3, 26)
	assert.ErrorIs(t, err, ErrNotPerfectCube)

	_, err = NewGrid3(3, 3, 0, 27)
	assert.ErrorIs(t, err, ErrZeroSpace)

	_, err = NewGrid3(2, 2, 2, 27)
	assert.ErrorIs(t, err, ErrTooManyChunks)
}

// TestGridOffsetTelescopes enumerates small lattices and asserts that
// Offset(c+1) − Offset(c) equals the volume of chunk c and Offset(k) = n.
func TestGridOffsetTelescopes(t *testing.T) {
	t.Parallel()

	grids := []Grid{
		mustGrid2(t, 4, 4, 4),
		mustGrid2(t, 5, 7, 4),
		mustGrid2(t, 9, 9, 9),
		mustGrid3(t, 3, 3, 3, 27),
		mustGrid3(t, 4, 5, 6, 8),
		mustGrid3(t, 7, 7, 7, 8),
	}
	for _, g := range grids {
		k := g.Count()
		require.Zero(t, g.Offset(0))
		require.Equal(t, g.Cells(), g.Offset(k))

		for c := uint64(0); c < k; c++ {
			xs, ys, zs := g.Extent(g.Decode(c))
			require.Equal(t, xs*ys*zs, g.Offset(c+1)-g.Offset(c),
				"chunk %d of %d×%d grid", c, g.x, g.y)
		}
	}
}

// TestGridEncodeDecodeRoundTrip verifies the chunk id coding is bijective.
func TestGridEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	g := mustGrid3(t, 6, 6, 6, 27)
	for c := uint64(0); c < g.Count(); c++ {
		cx, cy, cz := g.Decode(c)
		require.Equal(t, c, g.Encode(cx, cy, cz))
		require.Less(t, cx, g.PerDim())
		require.Less(t, cy, g.PerDim())
		require.Less(t, cz, g.PerDim())
	}
}

// TestGridAxisStartMatchesExtent verifies that per-axis starts advance by the
// per-axis extents (the 1D telescoping invariant along every axis).
func TestGridAxisStartMatchesExtent(t *testing.T) {
	t.Parallel()

	g := mustGrid2(t, 11, 5, 9)
	d := g.PerDim()
	for cx := uint64(0); cx+1 < d; cx++ {
		vx0, _, _ := g.AxisStart(cx, 0, 0)
		vx1, _, _ := g.AxisStart(cx+1, 0, 0)
		xs, _, _ := g.Extent(cx, 0, 0)
		require.Equal(t, xs, vx1-vx0)
	}
}

func mustGrid2(t *testing.T, x, y, k uint64) Grid {
	t.Helper()
	g, err := NewGrid2(x, y, k)
	require.NoError(t, err)

	return g
}

func mustGrid3(t *testing.T, x, y, z, k uint64) Grid {
	t.Helper()
	g, err := NewGrid3(x, y, z, k)
	require.NoError(t, err)

	return g
}
