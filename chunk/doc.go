// Package chunk computes the deterministic decomposition of an entity space
// into chunks and the assignment of chunks to participants.
//
// What:
//
//   - Linear:  tiles the vertex range [0,n) into k contiguous chunks.
//   - Grid:    tiles a 2D/3D lattice into a square/cubic grid of chunks whose
//     cells are contiguous in global vertex-id space (closed-form
//     inclusion–exclusion offsets, no per-chunk enumeration).
//   - Owned:   balanced contiguous chunk assignment for a participant.
//
// Why:
//
//   - Every participant derives the identical decomposition from (n, k) — or
//     (X, Y, Z, k) — alone, so chunk geometry never has to be exchanged.
//
// Invariants (enforced by tests):
//
//   - Chunks tile the space exactly once: Offset(c+1) − Offset(c) equals the
//     cell count of chunk c, and Offset(k) = n.
//   - Owned ranges tile [0,k) across ranks with no gap and no overlap.
//
// Errors:
//
//   - ErrZeroSpace:        the entity space is empty.
//   - ErrZeroChunks:       the chunk count is zero.
//   - ErrNotPerfectSquare: a 2D lattice chunk count is not d².
//   - ErrNotPerfectCube:   a 3D lattice chunk count is not d³.
//   - ErrTooManyChunks:    more chunks per axis than lattice cells.
package chunk
