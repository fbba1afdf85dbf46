// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors aggregate the parameter checks (go-multierror) and wrap
//     each sentinel with parameter context via %w; the G(n,m) capacity check
//     and the lattice decomposition run after them.
//   • Generators never panic at runtime.

package generator

import "errors"

// ErrNilCommunicator indicates a constructor received a nil communicator.
var ErrNilCommunicator = errors.New("generator: communicator is required")

// ErrInvalidVertexCount indicates n = 0 for a G(n,p) / G(n,m) model. A
// lattice dimension of zero surfaces as chunk.ErrZeroSpace.
var ErrInvalidVertexCount = errors.New("generator: vertex count must be positive")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("generator: probability out of range")

// ErrInvalidEdgeCount indicates m exceeds the candidate-edge capacity of the
// model.
var ErrInvalidEdgeCount = errors.New("generator: edge count exceeds capacity")

// ErrInvalidChunkCount indicates an unusable chunk count: zero, fewer chunks
// than participants, or (linear models) more chunks than vertices. A lattice
// chunk count that is not a perfect square/cube surfaces as
// chunk.ErrNotPerfectSquare / chunk.ErrNotPerfectCube.
var ErrInvalidChunkCount = errors.New("generator: invalid chunk count")

// ErrInvalidDistSize indicates dist mode was requested with a zero-size
// histogram.
var ErrInvalidDistSize = errors.New("generator: distribution size must be positive")

// ErrAlreadyGenerated indicates Generate was called twice.
var ErrAlreadyGenerated = errors.New("generator: already generated")

// ErrNotGenerated indicates an accessor ran before Generate finished.
var ErrNotGenerated = errors.New("generator: not generated yet")

// ErrDimensionMismatch indicates n does not match the lattice's cell count.
var ErrDimensionMismatch = errors.New("generator: dimension mismatch")
