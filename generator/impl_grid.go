// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// impl_grid.go — 2D/3D lattice graphs with Bernoulli edge retention.
//
// Canonical model:
//   • Every local vertex queries its 4 (2D) or 6 (3D) axis neighbors; out of
//     lattice bounds means skip (non-periodic) or wrap (periodic), realized
//     at the chunk-grid level exactly as in the neighbor walk below.
//   • The coin is keyed on the unordered pair: edgeSeed = min·X·Y·Z + max,
//     emit iff Bernoulli(Hash(seed + edgeSeed), p). Both endpoints compute
//     the same coin; only the endpoint with the smaller id emits, which
//     yields the single-emission contract without deduplication.
//   • Chunk extents along an axis depend only on that axis' chunk
//     coordinate, so a neighbor entered through a face keeps its other two
//     local coordinates valid.
//
// Determinism:
//   • Emission order: chunk-major, vertex-major, then direction-major in the
//     fixed order right, left, up, down, front, back.

package generator

import (
	"fmt"

	"github.com/mschimek/KaGen/chunk"
	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/rng"
)

// direction indexes the axis neighbor walk.
type direction int

const (
	dirRight direction = iota // +x
	dirLeft                   // −x
	dirUp                     // −y
	dirDown                   // +y
	dirFront                  // −z
	dirBack                   // +z
)

// dirDelta holds the (dx, dy, dz) step of each direction.
var dirDelta = [...][3]int64{
	dirRight: {1, 0, 0},
	dirLeft:  {-1, 0, 0},
	dirUp:    {0, -1, 0},
	dirDown:  {0, 1, 0},
	dirFront: {0, 0, -1},
	dirBack:  {0, 0, 1},
}

// dirCount2D / dirCount3D bound the direction walk per dimensionality.
const (
	dirCount2D = 4
	dirCount3D = 6
)

// latticeGen is the engine shared by Grid2D and Grid3D.
type latticeGen struct {
	base
	grid   chunk.Grid
	span   chunk.Span
	ndirs  int
	method string
}

// generate walks every owned lattice vertex through its neighbor queries.
func (g *latticeGen) generate() error {
	if err := g.begin(g.method); err != nil {
		return err
	}

	for c := g.span.Start; c < g.span.End(); c++ {
		g.opts.log.Debug().Uint64("chunk", c).Msg("grid: sampling chunk")

		lo, hi := g.grid.Offset(c), g.grid.Offset(c+1)
		for vertex := lo; vertex < hi; vertex++ {
			for d := direction(0); int(d) < g.ndirs; d++ {
				g.query(c, vertex, d)
			}
		}
	}
	g.finish()

	return nil
}

// query resolves the neighbor of vertex in direction d and tries the coin.
func (g *latticeGen) query(c, vertex uint64, d direction) {
	offset := g.grid.Offset(c)
	local := vertex - offset

	cx, cy, cz := g.grid.Decode(c)
	xs, ys, zs := g.grid.Extent(cx, cy, cz)

	lx := local % xs
	ly := (local / xs) % ys
	lz := local / (xs * ys)

	delta := dirDelta[d]
	nx := int64(lx) + delta[0]
	ny := int64(ly) + delta[1]
	nz := int64(lz) + delta[2]

	// Fast path: the neighbor stays inside this chunk.
	if nx >= 0 && nx < int64(xs) && ny >= 0 && ny < int64(ys) && nz >= 0 && nz < int64(zs) {
		neighbor := offset + uint64(nx) + uint64(ny)*xs + uint64(nz)*xs*ys
		g.tryEmit(vertex, neighbor)

		return
	}

	// The neighbor lives in the adjacent chunk along d; wrap if periodic.
	dx, dy, dz := g.grid.AxisCount()
	ncx := int64(cx) + delta[0]
	ncy := int64(cy) + delta[1]
	ncz := int64(cz) + delta[2]
	if g.cfg.Periodic {
		ncx = wrapCoord(ncx, dx)
		ncy = wrapCoord(ncy, dy)
		ncz = wrapCoord(ncz, dz)
	}
	if ncx < 0 || ncx >= int64(dx) || ncy < 0 || ncy >= int64(dy) ||
		ncz < 0 || ncz >= int64(dz) {
		return // lattice boundary, non-periodic
	}

	nc := g.grid.Encode(uint64(ncx), uint64(ncy), uint64(ncz))
	g.tryEmit(vertex, g.locate(nc, lx, ly, lz, d))
}

// locate returns the global id of the neighbor inside chunk nc, entered
// through the face opposite to direction d.
func (g *latticeGen) locate(nc, lx, ly, lz uint64, d direction) uint64 {
	offset := g.grid.Offset(nc)

	cx, cy, cz := g.grid.Decode(nc)
	xs, ys, zs := g.grid.Extent(cx, cy, cz)

	switch d {
	case dirRight:
		lx = 0
	case dirLeft:
		lx = xs - 1
	case dirUp:
		ly = ys - 1
	case dirDown:
		ly = 0
	case dirFront:
		lz = zs - 1
	case dirBack:
		lz = 0
	}

	return offset + lx + ly*xs + lz*xs*ys
}

// tryEmit applies the canonical-orientation gate and the Bernoulli coin.
func (g *latticeGen) tryEmit(u, v uint64) {
	if u >= v {
		return // the endpoint with the smaller id owns the emission
	}

	edgeSeed := u*g.grid.Cells() + v
	if rng.Bernoulli(rng.Hash(g.cfg.Seed+edgeSeed), g.cfg.P) {
		g.out.Emit(u, v)
	}
}

// wrapCoord reduces a chunk coordinate modulo the per-axis chunk count.
func wrapCoord(c int64, count uint64) int64 {
	n := int64(count)

	return ((c % n) + n) % n
}

// Grid2D samples an X×Y lattice with per-adjacency Bernoulli retention.
type Grid2D struct {
	latticeGen
}

// NewGrid2D validates cfg (GridX/GridY, P, K a perfect square, sink mode)
// and prepares the generator. N is derived as GridX·GridY.
func NewGrid2D(cfg Config, c comm.Communicator, opts ...Option) (*Grid2D, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", methodGrid2D, ErrNilCommunicator)
	}
	cfg.K = resolveChunkCount(cfg.K, c)

	if err := collect(methodGrid2D,
		validateProbability(cfg.P),
		validateDist(cfg),
		validateGridChunks(cfg.K, c.Size()),
		validateGridDims(cfg.N, cfg.GridX*cfg.GridY),
	); err != nil {
		return nil, err
	}
	cfg.N = cfg.GridX * cfg.GridY

	grid, err := chunk.NewGrid2(cfg.GridX, cfg.GridY, cfg.K)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGrid2D, err)
	}

	g := &Grid2D{latticeGen{
		base:   newBase(cfg, c, opts),
		grid:   grid,
		span:   chunk.Owned(c.Rank(), c.Size(), cfg.K),
		ndirs:  dirCount2D,
		method: methodGrid2D,
	}}
	g.startNode = grid.Offset(g.span.Start)
	g.endNode = grid.Offset(g.span.End())

	return g, nil
}

// Generate emits the retained lattice adjacencies of the owned chunks.
func (g *Grid2D) Generate() error { return g.generate() }

// Grid3D samples an X×Y×Z lattice with per-adjacency Bernoulli retention.
type Grid3D struct {
	latticeGen
}

// NewGrid3D validates cfg (GridX/Y/Z, P, K a perfect cube, sink mode) and
// prepares the generator. N is derived as GridX·GridY·GridZ.
func NewGrid3D(cfg Config, c comm.Communicator, opts ...Option) (*Grid3D, error) {
	if c == nil {
		return nil, fmt.Errorf("%s: %w", methodGrid3D, ErrNilCommunicator)
	}
	cfg.K = resolveChunkCount(cfg.K, c)

	if err := collect(methodGrid3D,
		validateProbability(cfg.P),
		validateDist(cfg),
		validateGridChunks(cfg.K, c.Size()),
		validateGridDims(cfg.N, cfg.GridX*cfg.GridY*cfg.GridZ),
	); err != nil {
		return nil, err
	}
	cfg.N = cfg.GridX * cfg.GridY * cfg.GridZ

	grid, err := chunk.NewGrid3(cfg.GridX, cfg.GridY, cfg.GridZ, cfg.K)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGrid3D, err)
	}

	g := &Grid3D{latticeGen{
		base:   newBase(cfg, c, opts),
		grid:   grid,
		span:   chunk.Owned(c.Rank(), c.Size(), cfg.K),
		ndirs:  dirCount3D,
		method: methodGrid3D,
	}}
	g.startNode = grid.Offset(g.span.Start)
	g.endNode = grid.Offset(g.span.End())

	return g, nil
}

// Generate emits the retained lattice adjacencies of the owned chunks.
func (g *Grid3D) Generate() error { return g.generate() }

// validateGridDims rejects an explicitly set N that contradicts the lattice
// dimensions; N = 0 means "derive from the dimensions".
func validateGridDims(n, cells uint64) error {
	if n != 0 && n != cells {
		return fmt.Errorf("n=%d but lattice has %d cells: %w", n, cells, ErrDimensionMismatch)
	}

	return nil
}

// validateGridChunks enforces k ≥ participants; the perfect-power and
// cells-per-axis requirements are enforced by the chunk decomposition.
func validateGridChunks(k uint64, size int) error {
	if k == 0 {
		return fmt.Errorf("k=0: %w", ErrInvalidChunkCount)
	}
	if k < uint64(size) {
		return fmt.Errorf("k=%d < participants=%d: %w", k, size, ErrInvalidChunkCount)
	}

	return nil
}
