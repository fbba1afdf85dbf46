// SPDX-License-Identifier: MIT
// Package: kagen/rng
//
// hypergeometric.go — deterministic Hypergeometric sampling.
//
// Canonical model:
//   • Hypergeometric(seed, successes, population, draws) samples the number
//     of successes among `draws` draws without replacement from a population
//     of size `population` containing `successes` successes.
//   • The result always lies in the exact support
//     [max(0, draws+successes−population), min(draws, successes)], which is
//     what lets the G(n,m) splitter conserve edge counts exactly.
//   • Small variance: inverse-CDF walk from the lower support bound with the
//     pmf seeded in log space (Lgamma) and advanced by the exact ratio
//     recurrence. Large variance: normal approximation clamped to the support.
//
// Contract:
//   • Degenerate inputs (empty population, zero draws, zero or full
//     successes) return the exact answer without consuming randomness.
//   • successes and draws are clamped to the population size; callers that
//     care should validate upstream.
//   • The branch choice depends only on the distribution parameters, never
//     on the seed.
//
// Complexity:
//   • Inverse-CDF branch: O(min(draws, successes)) worst case.
//   • Normal branch: O(1).

package rng

import "math"

// hypNormalCutoff switches to the clamped normal approximation once the
// distribution variance makes the inverse-CDF walk unprofitable.
const hypNormalCutoff = 64.0

// Hypergeometric returns a deterministic hypergeometric sample keyed on seed.
func Hypergeometric(seed, successes, population, draws uint64) uint64 {
	// 1) Clamp out-of-range populations; the distribution is undefined past N.
	if successes > population {
		successes = population
	}
	if draws > population {
		draws = population
	}

	// 2) Exact degenerate outcomes; no randomness is consumed.
	if population == 0 || draws == 0 || successes == 0 {
		return 0
	}
	if successes == population {
		return draws
	}
	if draws == population {
		return successes
	}

	// 3) Exact support bounds.
	var lo uint64
	if draws+successes > population {
		lo = draws + successes - population
	}
	hi := draws
	if successes < hi {
		hi = successes
	}
	if lo == hi {
		return lo
	}

	stream := NewStream(seed)

	// 4) Branch on variance, a pure function of the parameters.
	n := float64(population)
	mean := float64(draws) * float64(successes) / n
	variance := mean * (n - float64(successes)) / n * (n - float64(draws)) / (n - 1)
	if variance > hypNormalCutoff {
		return hypergeometricNormal(stream, mean, variance, lo, hi)
	}

	return hypergeometricWalk(stream, successes, population, draws, lo, hi)
}

// hypergeometricWalk runs the inverse-CDF walk upward from the support floor.
func hypergeometricWalk(stream *Stream, successes, population, draws, lo, hi uint64) uint64 {
	f := math.Exp(logPMF(successes, population, draws, lo))
	u := stream.Float64()

	x := lo
	for u > f && x < hi {
		u -= f
		// pmf(x+1)/pmf(x) = (K−x)(n−x) / ((x+1)(N−K−n+x+1)); all factors are
		// non-negative inside the support.
		f *= float64(successes-x) * float64(draws-x) /
			(float64(x+1) * float64(population-successes-draws+x+1))
		x++
	}

	return x
}

// hypergeometricNormal rounds a Gaussian around the mean and clamps to the
// exact support so downstream count conservation still holds.
func hypergeometricNormal(stream *Stream, mean, variance float64, lo, hi uint64) uint64 {
	x := math.Round(mean + math.Sqrt(variance)*stream.gauss())
	if x < float64(lo) {
		return lo
	}
	if x > float64(hi) {
		return hi
	}

	return uint64(x)
}

// logPMF evaluates ln P(X = x) through log-binomials, stable for the full
// 64-bit parameter range.
func logPMF(successes, population, draws, x uint64) float64 {
	return logChoose(successes, x) +
		logChoose(population-successes, draws-x) -
		logChoose(population, draws)
}

// logChoose returns ln C(a, b) for b ≤ a via Lgamma.
func logChoose(a, b uint64) float64 {
	lgA, _ := math.Lgamma(float64(a + 1))
	lgB, _ := math.Lgamma(float64(b + 1))
	lgAB, _ := math.Lgamma(float64(a - b + 1))

	return lgA - lgB - lgAB
}
