// SPDX-License-Identifier: MIT
// Package: kagen/chunk
//
// errors.go — sentinel errors for the chunk package.
//
// Error policy:
//   • Only package-level sentinels; callers branch with errors.Is.
//   • Constructors wrap sentinels with parameter context via %w.

package chunk

import "errors"

// ErrZeroSpace indicates an empty entity space (n = 0 or a lattice dimension
// of zero cells).
var ErrZeroSpace = errors.New("chunk: entity space is empty")

// ErrZeroChunks indicates a chunk count of zero.
var ErrZeroChunks = errors.New("chunk: chunk count must be positive")

// ErrNotPerfectSquare indicates a 2D lattice chunk count that is not d² for
// an integer d. The decomposition would be ill-defined otherwise.
var ErrNotPerfectSquare = errors.New("chunk: chunk count must be a perfect square")

// ErrNotPerfectCube indicates a 3D lattice chunk count that is not d³ for an
// integer d.
var ErrNotPerfectCube = errors.New("chunk: chunk count must be a perfect cube")

// ErrTooManyChunks indicates more chunks along an axis than the axis has
// cells, which would produce empty lattice chunks.
var ErrTooManyChunks = errors.New("chunk: more chunks per axis than cells")
