// SPDX-License-Identifier: MIT
// Package: kagen/cmd/kagen
//
// root.go — flag surface and the participant-group runner.

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/atomic"

	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/edgeio"
	"github.com/mschimek/KaGen/generator"
	"github.com/mschimek/KaGen/graphstat"
)

// Generator model tokens accepted by --gen.
const (
	genGNPDirected   = "gnp-directed"
	genGNPUndirected = "gnp-undirected"
	genGNMDirected   = "gnm-directed"
	genGNMUndirected = "gnm-undirected"
	genGrid2D        = "grid-2d"
	genGrid3D        = "grid-3d"
)

// cliFlags mirrors the recognized option table of the generator.
type cliFlags struct {
	gen   string
	procs int

	n, m    uint64
	p       float64
	k       uint64
	seed    uint64
	loops   bool
	wrap    bool
	gx, gy  uint64
	gz      uint64
	out     string
	format  string
	single  bool
	header  bool
	dist    bool
	distLen uint64
	verbose bool
}

func newRootCommand() *cobra.Command {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "kagen",
		Short: "communication-free distributed random-graph generation",
		Long: `kagen emits a random graph across an in-process group of participants.
Every participant deterministically produces its own slice of one global
edge set; no edges are exchanged between participants.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGeneration(cmd, flags)
		},
	}

	registerFlags(cmd.Flags(), &flags)

	return cmd
}

// registerFlags wires the recognized option table onto the flag set.
func registerFlags(fs *pflag.FlagSet, flags *cliFlags) {
	fs.StringVarP(&flags.gen, "gen", "g", genGNPUndirected, "generator model")
	fs.IntVarP(&flags.procs, "procs", "P", 1, "number of in-process participants")

	fs.Uint64VarP(&flags.n, "nodes", "n", 100, "global vertex count")
	fs.Uint64VarP(&flags.m, "edges", "m", 0, "global edge count (G(n,m))")
	fs.Float64VarP(&flags.p, "prob", "p", 0.0, "edge probability (G(n,p), grid)")
	fs.Uint64VarP(&flags.k, "chunks", "k", 0, "chunk count (0: one per participant)")
	fs.Uint64VarP(&flags.seed, "seed", "s", 1, "root randomness seed")
	fs.BoolVar(&flags.loops, "self-loops", false, "permit (u,u) edges")
	fs.BoolVar(&flags.wrap, "periodic", false, "wrap grid boundaries")
	fs.Uint64Var(&flags.gx, "grid-x", 0, "grid cells along x")
	fs.Uint64Var(&flags.gy, "grid-y", 0, "grid cells along y")
	fs.Uint64Var(&flags.gz, "grid-z", 0, "grid cells along z")

	fs.StringVarP(&flags.out, "output", "o", "", "output path prefix (empty: no files)")
	fs.StringVar(&flags.format, "format", edgeio.FormatEdgeList.String(), "edge-list or binary-edge-list")
	fs.BoolVar(&flags.single, "single-file", false, "gather edges to rank 0 into one file")
	fs.BoolVar(&flags.header, "header", false, "prepend the (n, m) header")
	fs.BoolVar(&flags.dist, "dist", false, "accumulate a degree histogram instead of edges")
	fs.Uint64Var(&flags.distLen, "dist-size", 10, "degree histogram length in dist mode")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
}

// runGeneration drives the whole group and logs the summary on rank 0.
func runGeneration(cmd *cobra.Command, flags cliFlags) error {
	if flags.procs < 1 {
		return fmt.Errorf("kagen: --procs=%d: %w", flags.procs, comm.ErrGroupSize)
	}

	format, err := edgeio.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("kagen: %w", err)
	}

	level := zerolog.InfoLevel
	if flags.verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).With().Timestamp().Logger()

	cfg := generator.Config{
		N:                flags.n,
		M:                flags.m,
		P:                flags.p,
		K:                flags.k,
		Seed:             flags.seed,
		SelfLoops:        flags.loops,
		Periodic:         flags.wrap,
		GridX:            flags.gx,
		GridY:            flags.gy,
		GridZ:            flags.gz,
		OutputFile:       flags.out,
		OutputFormat:     format,
		OutputSingleFile: flags.single,
		OutputHeader:     flags.header,
	}
	if flags.dist {
		cfg.Mode = generator.SinkDist
		cfg.DistSize = flags.distLen
	}
	// Lattice models derive n from the dimensions.
	if flags.gen == genGrid2D || flags.gen == genGrid3D {
		cfg.N = 0
	}

	var emitted atomic.Uint64

	err = comm.Run(flags.procs, func(c comm.Communicator) error {
		g, buildErr := buildGenerator(flags.gen, cfg, c, log)
		if buildErr != nil {
			return buildErr
		}
		if genErr := g.Generate(); genErr != nil {
			return genErr
		}

		local := g.NumberOfEdges()
		emitted.Add(local)

		if flags.out != "" {
			if outErr := g.Output(); outErr != nil {
				return outErr
			}
		}

		_, last := g.VertexRange()
		nodes := graphstat.GlobalNodeCount(c, last+1)
		edges := graphstat.GlobalEdgeCount(c, local)
		mean, sd := graphstat.LoadBalance(c, local)

		if c.Rank() == 0 {
			log.Info().
				Str("gen", flags.gen).
				Int("procs", flags.procs).
				Uint64("nodes", nodes).
				Uint64("edges", edges).
				Float64("edges-per-rank", mean).
				Float64("imbalance-sd", sd).
				Msg("generation finished")
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("generation failed")

		return err
	}

	log.Debug().Uint64("emitted", emitted.Load()).Msg("all participants joined")

	return nil
}

// buildGenerator maps the --gen token to a constructor.
func buildGenerator(name string, cfg generator.Config, c comm.Communicator, log zerolog.Logger) (generator.Generator, error) {
	opt := generator.WithLogger(log.With().Int("rank", c.Rank()).Logger())

	switch name {
	case genGNPDirected:
		return generator.NewGNPDirected(cfg, c, opt)
	case genGNPUndirected:
		return generator.NewGNPUndirected(cfg, c, opt)
	case genGNMDirected:
		return generator.NewGNMDirected(cfg, c, opt)
	case genGNMUndirected:
		return generator.NewGNMUndirected(cfg, c, opt)
	case genGrid2D:
		return generator.NewGrid2D(cfg, c, opt)
	case genGrid3D:
		return generator.NewGrid3D(cfg, c, opt)
	default:
		return nil, fmt.Errorf("kagen: unknown generator %q", name)
	}
}
