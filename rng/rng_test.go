// Package rng contains unit tests for the deterministic hash, the uniform
// stream, and the Binomial / Hypergeometric variate samplers.
package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashDeterminismAndDiffusion verifies that Hash is pure and that
// consecutive inputs do not produce correlated outputs.
func TestHashDeterminismAndDiffusion(t *testing.T) {
	t.Parallel()

	// Purity: the same input always maps to the same output.
	require.Equal(t, Hash(42), Hash(42))

	// Diffusion: no collisions among a dense block of small inputs.
	seen := make(map[uint64]struct{}, 1<<16)
	for x := uint64(0); x < 1<<16; x++ {
		h := Hash(x)
		_, dup := seen[h]
		require.False(t, dup, "collision at x=%d", x)
		seen[h] = struct{}{}
	}
}

// TestStreamReproducibility verifies that two streams with the same seed
// yield byte-identical sequences and that distinct seeds diverge.
func TestStreamReproducibility(t *testing.T) {
	t.Parallel()

	a, b := NewStream(7), NewStream(7)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
	}

	c, d := NewStream(1), NewStream(2)
	var same int
	for i := 0; i < 1000; i++ {
		if c.Uint64() == d.Uint64() {
			same++
		}
	}
	assert.Zero(t, same, "seeds 1 and 2 should not collide on 64-bit draws")
}

// TestStreamFloat64Range verifies the [0,1) contract of Float64.
func TestStreamFloat64Range(t *testing.T) {
	t.Parallel()

	s := NewStream(99)
	for i := 0; i < 10000; i++ {
		f := s.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

// TestBernoulliDegenerate verifies exact outcomes for p outside (0,1).
func TestBernoulliDegenerate(t *testing.T) {
	t.Parallel()

	for x := uint64(0); x < 100; x++ {
		h := Hash(x)
		assert.False(t, Bernoulli(h, 0.0))
		assert.False(t, Bernoulli(h, -0.5))
		assert.True(t, Bernoulli(h, 1.0))
		assert.True(t, Bernoulli(h, 1.5))
	}
}

// TestBernoulliCalibration verifies that the acceptance fraction converges to
// p within the statistical tolerance of the sample size.
func TestBernoulliCalibration(t *testing.T) {
	t.Parallel()

	const trials = 200000
	for _, p := range []float64{0.1, 0.5, 0.9} {
		var hits int
		for x := uint64(0); x < trials; x++ {
			if Bernoulli(Hash(x), p) {
				hits++
			}
		}
		got := float64(hits) / trials
		// 5σ band around p for a Binomial(trials, p) fraction.
		tol := 5 * math.Sqrt(p*(1-p)/trials)
		assert.InDelta(t, p, got, tol, "p=%v", p)
	}
}

// TestBinomialDegenerate exercises the exact branches of Binomial.
func TestBinomialDegenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		trials uint64
		p      float64
		want   uint64
	}{
		{name: "zero trials", trials: 0, p: 0.5, want: 0},
		{name: "p zero", trials: 100, p: 0.0, want: 0},
		{name: "p negative", trials: 100, p: -1.0, want: 0},
		{name: "p one", trials: 100, p: 1.0, want: 100},
		{name: "p above one", trials: 100, p: 2.0, want: 100},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Binomial(1234, tc.trials, tc.p))
		})
	}
}

// TestBinomialDeterminismAndBounds verifies purity and the [0, trials] range
// across both sampling branches.
func TestBinomialDeterminismAndBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		trials uint64
		p      float64
	}{
		{trials: 10, p: 0.3},     // BINV
		{trials: 1000, p: 0.001}, // BINV, tiny mean
		{trials: 100000, p: 0.4}, // normal approximation
		{trials: 50, p: 0.9},     // reflection path
	}
	for seed := uint64(0); seed < 200; seed++ {
		for _, tc := range cases {
			x := Binomial(seed, tc.trials, tc.p)
			require.Equal(t, x, Binomial(seed, tc.trials, tc.p))
			require.LessOrEqual(t, x, tc.trials)
		}
	}
}

// TestBinomialMean verifies that sample means across seeds track trials·p.
func TestBinomialMean(t *testing.T) {
	t.Parallel()

	const seeds = 3000
	cases := []struct {
		trials uint64
		p      float64
	}{
		{trials: 20, p: 0.25},
		{trials: 100000, p: 0.5},
	}
	for _, tc := range cases {
		var sum float64
		for seed := uint64(0); seed < seeds; seed++ {
			sum += float64(Binomial(seed, tc.trials, tc.p))
		}
		mean := sum / seeds
		want := float64(tc.trials) * tc.p
		sd := math.Sqrt(float64(tc.trials) * tc.p * (1 - tc.p))
		assert.InDelta(t, want, mean, 5*sd/math.Sqrt(seeds)+1,
			"trials=%d p=%v", tc.trials, tc.p)
	}
}

// TestHypergeometricDegenerate exercises the exact branches.
func TestHypergeometricDegenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                         string
		successes, population, draws uint64
		want                         uint64
	}{
		{name: "empty population", successes: 0, population: 0, draws: 0, want: 0},
		{name: "zero draws", successes: 5, population: 10, draws: 0, want: 0},
		{name: "zero successes", successes: 0, population: 10, draws: 4, want: 0},
		{name: "all successes", successes: 10, population: 10, draws: 4, want: 4},
		{name: "draw everything", successes: 3, population: 10, draws: 10, want: 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Hypergeometric(77, tc.successes, tc.population, tc.draws))
		})
	}
}

// TestHypergeometricSupport verifies that samples never leave the exact
// support, across both branches.
func TestHypergeometricSupport(t *testing.T) {
	t.Parallel()

	cases := []struct {
		successes, population, draws uint64
	}{
		{successes: 5, population: 20, draws: 8},          // walk
		{successes: 18, population: 20, draws: 15},        // tight lower bound
		{successes: 5000, population: 10000, draws: 4000}, // normal approximation
	}
	for _, tc := range cases {
		var lo uint64
		if tc.draws+tc.successes > tc.population {
			lo = tc.draws + tc.successes - tc.population
		}
		hi := tc.draws
		if tc.successes < hi {
			hi = tc.successes
		}
		for seed := uint64(0); seed < 500; seed++ {
			x := Hypergeometric(seed, tc.successes, tc.population, tc.draws)
			require.GreaterOrEqual(t, x, lo, "K=%d N=%d n=%d", tc.successes, tc.population, tc.draws)
			require.LessOrEqual(t, x, hi, "K=%d N=%d n=%d", tc.successes, tc.population, tc.draws)
			require.Equal(t, x, Hypergeometric(seed, tc.successes, tc.population, tc.draws))
		}
	}
}

// TestHypergeometricMean verifies the first moment across seeds.
func TestHypergeometricMean(t *testing.T) {
	t.Parallel()

	const (
		successes  = 300
		population = 1000
		draws      = 100
		seeds      = 3000
	)
	var sum float64
	for seed := uint64(0); seed < seeds; seed++ {
		sum += float64(Hypergeometric(seed, successes, population, draws))
	}
	mean := sum / seeds
	want := float64(draws) * float64(successes) / float64(population)
	assert.InDelta(t, want, mean, 1.0)
}

// BenchmarkHash measures the raw mixer.
func BenchmarkHash(b *testing.B) {
	var acc uint64
	for i := 0; i < b.N; i++ {
		acc ^= Hash(uint64(i))
	}
	_ = acc
}

// BenchmarkBinomialBINV measures the inverse-CDF branch.
func BenchmarkBinomialBINV(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Binomial(uint64(i), 1000, 0.01)
	}
}

// BenchmarkHypergeometricWalk measures the inverse-CDF branch.
func BenchmarkHypergeometricWalk(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Hypergeometric(uint64(i), 30, 200, 50)
	}
}
