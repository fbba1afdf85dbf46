// SPDX-License-Identifier: MIT
// Package: kagen/rng
//
// binomial.go — deterministic Binomial sampling.
//
// Canonical model:
//   • Binomial(seed, trials, p) returns X ~ Binom(trials, p) as a pure
//     function of its arguments.
//   • Small mean (trials·min(p,1−p) < binvCutoff): BINV inverse-CDF walk.
//   • Large mean: normal approximation rounded and clamped to [0, trials].
//   • p > 1/2 is reflected through X = trials − Binom(trials, 1−p) so the
//     inverse-CDF walk always runs on the short tail.
//
// Contract:
//   • Degenerate inputs (trials = 0, p ≤ 0, p ≥ 1) return the exact answer.
//   • The branch choice depends only on (trials, p), never on the seed, so
//     identically compiled participants agree on the full code path.
//
// Complexity:
//   • BINV branch: O(trials·p) expected steps.
//   • Normal branch: O(1).

package rng

import "math"

// File-local constants.
const (
	// binvCutoff bounds the expected inverse-CDF walk length; above it the
	// normal approximation is both faster and numerically safer.
	binvCutoff = 30.0

	// halfProbability splits the reflection branch.
	halfProbability = 0.5

	twoPi = 2 * math.Pi
)

// Binomial returns a deterministic sample X ~ Binom(trials, p) keyed on seed.
func Binomial(seed, trials uint64, p float64) uint64 {
	// 1) Exact degenerate outcomes; no randomness is consumed.
	if trials == 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return trials
	}

	// 2) A single trial is the per-edge coin; key it on the mixed seed.
	if trials == 1 {
		if Bernoulli(Hash(seed), p) {
			return 1
		}

		return 0
	}

	// 3) Reflect heavy coins so the sampled tail is always the short one.
	if p > halfProbability {
		return trials - binomialVariate(seed, trials, 1-p)
	}

	return binomialVariate(seed, trials, p)
}

// binomialVariate samples Binom(trials, p) for 0 < p ≤ 1/2, trials ≥ 2.
func binomialVariate(seed, trials uint64, p float64) uint64 {
	stream := NewStream(seed)

	mean := float64(trials) * p
	if mean < binvCutoff {
		if x, ok := binomialBINV(stream, trials, p); ok {
			return x
		}
		// pmf(0) underflowed; the mass sits far from zero, fall through.
	}

	return binomialNormal(stream, trials, p)
}

// binomialBINV performs the classic BINV inverse-CDF walk from x = 0.
// Returns ok = false when q^trials underflows to zero.
func binomialBINV(stream *Stream, trials uint64, p float64) (uint64, bool) {
	q := 1 - p

	// pmf(0) = q^trials; the walk multiplies up by (trials−x+1)/x · p/q.
	f := math.Pow(q, float64(trials))
	if f <= 0 {
		return 0, false
	}

	ratio := p / q
	u := stream.Float64()

	var x uint64
	for u > f {
		u -= f
		x++
		if x > trials {
			// Floating-point tail residue; the support ends at trials.
			return trials, true
		}
		f *= float64(trials-x+1) / float64(x) * ratio
	}

	return x, true
}

// binomialNormal rounds a Gaussian around the mean and clamps to the support.
func binomialNormal(stream *Stream, trials uint64, p float64) uint64 {
	mean := float64(trials) * p
	sd := math.Sqrt(mean * (1 - p))

	x := math.Round(mean + sd*stream.gauss())
	if x < 0 {
		return 0
	}
	if x > float64(trials) {
		return trials
	}

	return uint64(x)
}

// gauss draws one standard normal deviate via Box–Muller.
func (s *Stream) gauss() float64 {
	u1 := s.openFloat64() // (0,1): keeps the logarithm finite
	u2 := s.Float64()

	return math.Sqrt(-2*math.Log(u1)) * math.Cos(twoPi*u2)
}
