// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// constants.go — method tags and shared defaults (no magic literals).

package generator

// Canonical constructor names, used to prefix wrapped errors with context.
const (
	methodGNPDirected   = "GNPDirected"
	methodGNPUndirected = "GNPUndirected"
	methodGNMDirected   = "GNMDirected"
	methodGNMUndirected = "GNMUndirected"
	methodGrid2D        = "Grid2D"
	methodGrid3D        = "Grid3D"
)

// Probability domain shared by GNP and Grid models.
const (
	minProbability = 0.0
	maxProbability = 1.0
)

// gnmRootNode is the heap index of the chunk-tree root; children of node i
// are 2i and 2i+1, which keeps every node id unique and participant-independent.
const gnmRootNode = 1
