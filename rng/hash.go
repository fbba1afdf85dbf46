// SPDX-License-Identifier: MIT
// Package: kagen/rng
//
// hash.go — stateless 64-bit hashing and the counter-mode uniform stream.
//
// Contract:
//   • Hash is a pure function u64 → u64 with full 64-bit diffusion.
//   • Stream yields a reproducible uniform sequence for a fixed seed; two
//     Streams with the same seed produce byte-identical sequences.
//   • No mutable package state; a Stream is the only stateful value and it is
//     owned by exactly one caller.
//
// Determinism:
//   • Stream draws are Hash(seed + i·gamma) for i = 1,2,…; the sequence is a
//     pure function of the seed, independent of platform and participant.

package rng

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// File-local constants (no magic literals).
const (
	// streamGamma is the odd 64-bit increment separating consecutive counter
	// values before mixing (2^64 / φ, the usual Weyl constant).
	streamGamma = 0x9E3779B97F4A7C15

	// float53Scale converts a 53-bit integer into [0,1).
	float53Scale = 0x1p-53

	// float53Shift drops the low 11 bits, keeping the 53 high-quality bits
	// that fit a float64 mantissa.
	float53Shift = 11
)

// Hash mixes x into a statistically uniform 64-bit value.
// Collisions are no more likely than for any 64-bit hash at the call scales
// used by the generators (up to ~2^40 evaluations per run).
// Complexity: O(1) time, O(1) space.
func Hash(x uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], x)

	return xxhash.Sum64(buf[:])
}

// Stream is a deterministic uniform stream in counter mode: draw i is
// Hash(seed + i·streamGamma). It carries no entropy beyond its seed.
type Stream struct {
	seed uint64 // immutable after NewStream
	ctr  uint64 // number of draws taken so far
}

// NewStream returns a Stream positioned before its first draw.
// Complexity: O(1) time, O(1) space.
func NewStream(seed uint64) *Stream {
	return &Stream{seed: seed}
}

// Uint64 returns the next uniform 64-bit draw.
func (s *Stream) Uint64() uint64 {
	s.ctr++

	return Hash(s.seed + s.ctr*streamGamma)
}

// Float64 returns the next uniform draw in [0,1) with 53-bit resolution.
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()>>float53Shift) * float53Scale
}

// openFloat64 returns the next uniform draw in the open interval (0,1).
// Used where a logarithm of the draw must stay finite.
func (s *Stream) openFloat64() float64 {
	return (float64(s.Uint64()>>float53Shift) + 0.5) * float53Scale
}

// Below returns the next uniform draw in [0, bound), unbiased via rejection.
// bound = 0 returns 0.
func (s *Stream) Below(bound uint64) uint64 {
	if bound == 0 {
		return 0
	}

	// Reject draws below 2^64 mod bound so every residue is equally likely.
	reject := -bound % bound
	for {
		if v := s.Uint64(); v >= reject {
			return v % bound
		}
	}
}
