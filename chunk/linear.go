// SPDX-License-Identifier: MIT
// Package: kagen/chunk
//
// linear.go — 1D decomposition of [0,n) and the chunk-to-rank assignment.
//
// Contract:
//   • Offset(c) = c·⌊n/k⌋ + min(c, n mod k); the first n mod k chunks are one
//     vertex longer. Offset(0) = 0 and Offset(k) = n.
//   • Owned(rank, size, k) assigns ⌊k/P⌋ + (rank < k mod P) contiguous chunks
//     per rank; the ranges tile [0,k) in rank order.
//
// Determinism:
//   • Both mappings are pure functions of their integer inputs; participants
//     never exchange geometry.

package chunk

// Linear tiles the vertex range [0,n) into k contiguous chunks.
type Linear struct {
	n uint64 // entity count
	k uint64 // chunk count
}

// NewLinear validates (n, k) and returns the decomposition.
// Complexity: O(1) time, O(1) space.
func NewLinear(n, k uint64) (Linear, error) {
	if n == 0 {
		return Linear{}, ErrZeroSpace
	}
	if k == 0 {
		return Linear{}, ErrZeroChunks
	}

	return Linear{n: n, k: k}, nil
}

// Count returns the chunk count k.
func (l Linear) Count() uint64 { return l.k }

// Offset returns the first vertex id of chunk c, valid for c ∈ [0, k].
// Offset(k) is the one-past-the-end id n.
func (l Linear) Offset(c uint64) uint64 {
	per, rem := l.n/l.k, l.n%l.k

	extra := c
	if rem < c {
		extra = rem
	}

	return c*per + extra
}

// Range returns the half-open vertex range [lo, hi) of chunk c.
func (l Linear) Range(c uint64) (lo, hi uint64) {
	return l.Offset(c), l.Offset(c + 1)
}

// Span is a contiguous run of chunk ids owned by one participant.
type Span struct {
	Start uint64 // first owned chunk id
	Count uint64 // number of owned chunks (possibly zero)
}

// End returns the one-past-the-end chunk id of the span.
func (s Span) End() uint64 { return s.Start + s.Count }

// Owns reports whether chunk c falls inside the span.
func (s Span) Owns(c uint64) bool { return c >= s.Start && c < s.End() }

// Owned returns the chunk span of the given rank among size participants.
// The spans of ranks 0..size−1 tile [0,k) in order.
// Complexity: O(1) time, O(1) space.
func Owned(rank, size int, k uint64) Span {
	leftover := k % uint64(size)
	count := k / uint64(size)

	if uint64(rank) < leftover {
		count++

		return Span{Start: uint64(rank) * count, Count: count}
	}

	return Span{Start: uint64(rank)*count + leftover, Count: count}
}
