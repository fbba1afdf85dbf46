// SPDX-License-Identifier: MIT
// Package: kagen
//
// kagen.go — thin driver facade over the generator package.
//
// Design contract:
//   • One call per model: build the generator, run it, unwrap the local
//     result. The communicator decides which slice of the graph this call
//     produces; calling the same function on every rank of a group yields
//     the full graph.
//   • Model options (WithChunks/WithSeed/WithSelfLoops) resolve into the
//     generator Config; unset options keep the library defaults (one chunk
//     per participant, seed 1).
//   • Weighted variants attach a WeightFunc per accepted edge through the
//     generator's edge callback; the sink never learns about weights.

package kagen

import (
	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/generator"
	"github.com/mschimek/KaGen/sink"
)

// defaultSeed matches the original tool's default root seed.
const defaultSeed = 1

// VertexRange is the inclusive range of vertex ids owned by a participant.
type VertexRange struct {
	First uint64
	Last  uint64
}

// Result is one participant's share of a generated graph.
type Result struct {
	Edges []sink.Edge
	Range VertexRange
}

// WeightFunc derives a deterministic weight for an accepted edge.
type WeightFunc func(u, v uint64) float64

// WeightedEdge is an accepted edge with its derived weight.
type WeightedEdge struct {
	Source uint64
	Target uint64
	Weight float64
}

// WeightedResult is one participant's share of a weighted graph.
type WeightedResult struct {
	Edges []WeightedEdge
	Range VertexRange
}

// ModelOption adjusts the shared model parameters of a facade call.
type ModelOption func(*generator.Config)

// WithChunks sets the chunk count k (default: one chunk per participant).
func WithChunks(k uint64) ModelOption {
	return func(cfg *generator.Config) { cfg.K = k }
}

// WithSeed sets the root randomness seed (default 1).
func WithSeed(seed uint64) ModelOption {
	return func(cfg *generator.Config) { cfg.Seed = seed }
}

// WithSelfLoops permits (u,u) edges in G(n,p) / G(n,m).
func WithSelfLoops() ModelOption {
	return func(cfg *generator.Config) { cfg.SelfLoops = true }
}

// GenerateDirectedGNP samples a directed G(n,p) slice on this participant.
func GenerateDirectedGNP(c comm.Communicator, n uint64, p float64, opts ...ModelOption) (Result, error) {
	cfg := resolve(generator.Config{N: n, P: p}, opts)
	g, err := generator.NewGNPDirected(cfg, c)
	if err != nil {
		return Result{}, err
	}

	return runEdges(g)
}

// GenerateUndirectedGNP samples an undirected G(n,p) slice.
func GenerateUndirectedGNP(c comm.Communicator, n uint64, p float64, opts ...ModelOption) (Result, error) {
	cfg := resolve(generator.Config{N: n, P: p}, opts)
	g, err := generator.NewGNPUndirected(cfg, c)
	if err != nil {
		return Result{}, err
	}

	return runEdges(g)
}

// GenerateDirectedGNM samples a directed G(n,m) slice.
func GenerateDirectedGNM(c comm.Communicator, n, m uint64, opts ...ModelOption) (Result, error) {
	cfg := resolve(generator.Config{N: n, M: m}, opts)
	g, err := generator.NewGNMDirected(cfg, c)
	if err != nil {
		return Result{}, err
	}

	return runEdges(g)
}

// GenerateUndirectedGNM samples an undirected G(n,m) slice.
func GenerateUndirectedGNM(c comm.Communicator, n, m uint64, opts ...ModelOption) (Result, error) {
	cfg := resolve(generator.Config{N: n, M: m}, opts)
	g, err := generator.NewGNMUndirected(cfg, c)
	if err != nil {
		return Result{}, err
	}

	return runEdges(g)
}

// Generate2DGrid samples an X×Y lattice slice.
func Generate2DGrid(c comm.Communicator, x, y uint64, p float64, periodic bool, opts ...ModelOption) (Result, error) {
	cfg := resolve(generator.Config{GridX: x, GridY: y, P: p, Periodic: periodic}, opts)
	g, err := generator.NewGrid2D(cfg, c)
	if err != nil {
		return Result{}, err
	}

	return runEdges(g)
}

// Generate3DGrid samples an X×Y×Z lattice slice.
func Generate3DGrid(c comm.Communicator, x, y, z uint64, p float64, periodic bool, opts ...ModelOption) (Result, error) {
	cfg := resolve(generator.Config{GridX: x, GridY: y, GridZ: z, P: p, Periodic: periodic}, opts)
	g, err := generator.NewGrid3D(cfg, c)
	if err != nil {
		return Result{}, err
	}

	return runEdges(g)
}

// GenerateUndirectedGNMWeighted is GenerateUndirectedGNM with a per-edge
// weight derived by wfn at emission time.
func GenerateUndirectedGNMWeighted(c comm.Communicator, wfn WeightFunc, n, m uint64, opts ...ModelOption) (WeightedResult, error) {
	cfg := resolve(generator.Config{N: n, M: m}, opts)

	var out WeightedResult
	g, err := generator.NewGNMUndirected(cfg, c, generator.WithEdgeCallback(weightCollector(wfn, &out)))
	if err != nil {
		return WeightedResult{}, err
	}

	return runWeighted(g, &out)
}

// Generate2DGridWeighted is Generate2DGrid with derived edge weights.
func Generate2DGridWeighted(c comm.Communicator, wfn WeightFunc, x, y uint64, p float64, periodic bool, opts ...ModelOption) (WeightedResult, error) {
	cfg := resolve(generator.Config{GridX: x, GridY: y, P: p, Periodic: periodic}, opts)

	var out WeightedResult
	g, err := generator.NewGrid2D(cfg, c, generator.WithEdgeCallback(weightCollector(wfn, &out)))
	if err != nil {
		return WeightedResult{}, err
	}

	return runWeighted(g, &out)
}

// Generate3DGridWeighted is Generate3DGrid with derived edge weights.
func Generate3DGridWeighted(c comm.Communicator, wfn WeightFunc, x, y, z uint64, p float64, periodic bool, opts ...ModelOption) (WeightedResult, error) {
	cfg := resolve(generator.Config{GridX: x, GridY: y, GridZ: z, P: p, Periodic: periodic}, opts)

	var out WeightedResult
	g, err := generator.NewGrid3D(cfg, c, generator.WithEdgeCallback(weightCollector(wfn, &out)))
	if err != nil {
		return WeightedResult{}, err
	}

	return runWeighted(g, &out)
}

// resolve applies model options over the base config and the seed default.
func resolve(cfg generator.Config, opts []ModelOption) generator.Config {
	cfg.Seed = defaultSeed
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// edgeGenerator is the surface the facade needs from a built generator.
type edgeGenerator interface {
	generator.Generator
	Edges() []sink.Edge
}

// runEdges executes the generator and unwraps the unweighted result.
func runEdges(g edgeGenerator) (Result, error) {
	if err := g.Generate(); err != nil {
		return Result{}, err
	}

	first, last := g.VertexRange()

	return Result{Edges: g.Edges(), Range: VertexRange{First: first, Last: last}}, nil
}

// weightCollector appends weighted edges into out as the generator emits.
func weightCollector(wfn WeightFunc, out *WeightedResult) sink.Callback {
	return func(u, v uint64) {
		out.Edges = append(out.Edges, WeightedEdge{Source: u, Target: v, Weight: wfn(u, v)})
	}
}

// runWeighted executes the generator and finalizes the collected result.
// out is the value the weight collector appends into.
func runWeighted(g edgeGenerator, out *WeightedResult) (WeightedResult, error) {
	if err := g.Generate(); err != nil {
		return WeightedResult{}, err
	}

	first, last := g.VertexRange()
	out.Range = VertexRange{First: first, Last: last}

	return *out, nil
}
