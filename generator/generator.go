// SPDX-License-Identifier: MIT
// Package: kagen/generator
//
// generator.go — the Generator capability and the scaffolding shared by all
// model implementations (state machine, sink wiring, vertex range, output).
//
// State machine: Unstarted → Generating → Finished. Generate is the only
// transition; VertexRange, NumberOfEdges and Output are final-state reads.

package generator

import (
	"fmt"

	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/edgeio"
	"github.com/mschimek/KaGen/sink"
)

// Generator is the uniform driver surface of every model.
type Generator interface {
	// Generate emits this participant's share of the global edge set into
	// the sink. It must be called exactly once, on every participant.
	Generate() error

	// VertexRange returns the inclusive global vertex range [first, last]
	// owned by this participant. Valid once Generate has finished.
	VertexRange() (first, last uint64)

	// NumberOfEdges returns the local emitted edge count.
	NumberOfEdges() uint64

	// Output writes the result per the configuration. Collective: every
	// participant must call it.
	Output() error
}

type state uint8

const (
	stateUnstarted state = iota
	stateGenerating
	stateFinished
)

// base carries the model-independent generator state.
type base struct {
	cfg  Config
	comm comm.Communicator
	opts options

	out   sink.Sink
	edges *sink.EdgeSink // non-nil in SinkEdges mode
	dist  *sink.DistSink // non-nil in SinkDist mode

	startNode uint64 // first owned vertex id
	endNode   uint64 // one past the last owned vertex id
	st        state
}

// newBase resolves options and wires the sink selected by cfg.Mode.
func newBase(cfg Config, c comm.Communicator, opts []Option) base {
	b := base{cfg: cfg, comm: c, opts: resolveOptions(opts)}

	if cfg.Mode == SinkDist {
		b.dist = sink.NewDistSink(cfg.DistSize, b.opts.cb)
		b.out = b.dist
	} else {
		b.edges = sink.NewEdgeSink(b.opts.cb)
		b.out = b.edges
	}

	return b
}

// begin transitions Unstarted → Generating.
func (b *base) begin(method string) error {
	if b.st != stateUnstarted {
		return fmt.Errorf("%s: Generate: %w", method, ErrAlreadyGenerated)
	}
	b.st = stateGenerating

	return nil
}

// finish transitions Generating → Finished.
func (b *base) finish() { b.st = stateFinished }

// VertexRange returns the inclusive owned vertex range; zero before Finished.
func (b *base) VertexRange() (first, last uint64) {
	if b.st != stateFinished {
		return 0, 0
	}

	return b.startNode, b.endNode - 1
}

// NumberOfEdges returns the local emitted edge count.
func (b *base) NumberOfEdges() uint64 { return b.out.NumEdges() }

// Output writes edges or the reduced histogram per the configuration.
func (b *base) Output() error {
	if b.st != stateFinished {
		return fmt.Errorf("Output: %w", ErrNotGenerated)
	}

	ocfg := edgeio.Config{
		File:       b.cfg.OutputFile,
		Format:     b.cfg.OutputFormat,
		SingleFile: b.cfg.OutputSingleFile,
		Header:     b.cfg.OutputHeader,
	}

	if b.dist != nil {
		return edgeio.WriteDist(ocfg, b.comm, b.dist.Dist())
	}

	return edgeio.WriteEdges(ocfg, b.comm, b.edges.Edges(), b.cfg.N)
}

// Edges exposes the local edge list (SinkEdges mode; nil otherwise). The
// slice is owned by the generator.
func (b *base) Edges() []sink.Edge {
	if b.edges == nil {
		return nil
	}

	return b.edges.Edges()
}

// Dist exposes the local degree histogram (SinkDist mode; nil otherwise).
func (b *base) Dist() []uint64 {
	if b.dist == nil {
		return nil
	}

	return b.dist.Dist()
}

// resolveChunkCount maps K = 0 to one chunk per participant.
func resolveChunkCount(k uint64, c comm.Communicator) uint64 {
	if k == 0 && c != nil {
		return uint64(c.Size())
	}

	return k
}
