// SPDX-License-Identifier: MIT
// Package: kagen/comm
//
// comm.go — the Communicator capability and its sentinel errors.
//
// Error policy:
//   • Only package-level sentinels; callers branch with errors.Is.

package comm

import "errors"

// ErrGroupSize indicates a non-positive participant count.
var ErrGroupSize = errors.New("comm: group size must be positive")

// Communicator is one participant's handle into a cooperating group.
// All collective methods must be called by every member of the group in the
// same order.
type Communicator interface {
	// Rank returns this participant's id in [0, Size).
	Rank() int

	// Size returns the number of participants in the group.
	Size() int

	// Barrier blocks until every participant has entered it.
	Barrier()

	// AllreduceSum returns the sum of v across all participants, on all
	// participants.
	AllreduceSum(v uint64) uint64

	// ReduceSum sums vals element-wise across participants. The root receives
	// the reduced slice; every other rank receives nil. All participants must
	// pass slices of equal length.
	ReduceSum(vals []uint64, root int) []uint64

	// Gather collects one value per rank. The root receives the values in
	// rank order; every other rank receives nil.
	Gather(v uint64, root int) []uint64

	// GatherSlices collects one variable-length slice per rank. The root
	// receives them in rank order; every other rank receives nil.
	GatherSlices(local []uint64, root int) [][]uint64

	// Bcast returns the root's value on every participant.
	Bcast(v uint64, root int) uint64
}
