// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// config.go — the generator configuration, functional options, and the
// validation helpers shared by all constructors.
//
// Contract:
//   • Config is read-only once a constructor accepted it.
//   • Option constructors validate and panic on meaningless inputs;
//     generators themselves only return sentinel errors.
//   • K = 0 resolves to one chunk per participant, the smallest valid
//     decomposition.

package generator

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/mschimek/KaGen/edgeio"
	"github.com/mschimek/KaGen/sink"
)

// SinkMode selects what a generator accumulates.
type SinkMode int

const (
	// SinkEdges buffers the accepted edges (default).
	SinkEdges SinkMode = iota
	// SinkDist accumulates a degree histogram of size DistSize instead.
	SinkDist
)

// Config carries every model and output parameter. Zero values are valid
// only where documented (K, M, and the output block).
type Config struct {
	// N is the global vertex count. For lattice models it is derived from
	// the grid dimensions and must not be set by the caller.
	N uint64

	// M is the exact global edge count (G(n,m) only).
	M uint64

	// P is the Bernoulli probability (G(n,p) and Grid).
	P float64

	// K is the chunk count; 0 resolves to the participant count.
	K uint64

	// Seed is the root of all randomness.
	Seed uint64

	// SelfLoops permits (u,u) edges in G(n,p) / G(n,m).
	SelfLoops bool

	// Periodic wraps lattice boundaries (Grid only).
	Periodic bool

	// GridX, GridY, GridZ are the lattice dimensions (Grid only).
	GridX, GridY, GridZ uint64

	// Mode selects edge-list or degree-histogram accumulation.
	Mode SinkMode

	// DistSize is the histogram length in SinkDist mode.
	DistSize uint64

	// Output parameters, consumed by Output().
	OutputFile       string
	OutputFormat     edgeio.Format
	OutputSingleFile bool
	OutputHeader     bool
}

// options holds the per-generator knobs resolved from Option values.
type options struct {
	log zerolog.Logger
	cb  sink.Callback
}

func defaultOptions() options {
	return options{log: zerolog.Nop()}
}

// Option customizes a generator beyond its Config.
type Option func(*options)

// WithLogger attaches a structured logger; generators log chunk progress at
// debug level. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithEdgeCallback registers an observer invoked once per accepted edge, in
// emission order. Panics on nil to surface the programmer error early.
func WithEdgeCallback(cb sink.Callback) Option {
	if cb == nil {
		panic("generator: WithEdgeCallback(nil)")
	}

	return func(o *options) { o.cb = cb }
}

// resolveOptions applies options in order; later options win.
func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// collect aggregates validation failures and wraps them with the method tag.
func collect(method string, checks ...error) error {
	var merr *multierror.Error
	for _, err := range checks {
		merr = multierror.Append(merr, err)
	}

	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}

// validateVertexCount enforces n ≥ 1.
func validateVertexCount(n uint64) error {
	if n == 0 {
		return fmt.Errorf("n=0: %w", ErrInvalidVertexCount)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(p float64) error {
	if p < minProbability || p > maxProbability {
		return fmt.Errorf("p=%v not in [%v,%v]: %w",
			p, minProbability, maxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateLinearChunks enforces 1 ≤ size ≤ k ≤ n so that every participant
// owns at least one chunk and no chunk is empty.
func validateLinearChunks(k, n uint64, size int) error {
	if k == 0 {
		return fmt.Errorf("k=0: %w", ErrInvalidChunkCount)
	}
	if k < uint64(size) {
		return fmt.Errorf("k=%d < participants=%d: %w", k, size, ErrInvalidChunkCount)
	}
	if k > n {
		return fmt.Errorf("k=%d > n=%d: %w", k, n, ErrInvalidChunkCount)
	}

	return nil
}

// validateDist enforces a positive histogram size in SinkDist mode.
func validateDist(cfg Config) error {
	if cfg.Mode == SinkDist && cfg.DistSize == 0 {
		return fmt.Errorf("dist mode: %w", ErrInvalidDistSize)
	}

	return nil
}
