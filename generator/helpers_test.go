// Package generator — shared helpers for the multi-participant tests.
package generator

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/sink"
)

// edgeLister is implemented by every generator in SinkEdges mode.
type edgeLister interface {
	Generator
	Edges() []sink.Edge
}

// buildFn constructs one participant's generator.
type buildFn func(c comm.Communicator) (edgeLister, error)

// runResult aggregates a whole group run.
type runResult struct {
	edges  []sink.Edge // all ranks, sorted
	ranges [][2]uint64 // inclusive vertex range per rank
	counts []uint64    // local edge count per rank
}

// runGroup generates on size participants and collects the global state.
func runGroup(t *testing.T, size int, build buildFn) runResult {
	t.Helper()

	var mu sync.Mutex
	res := runResult{
		ranges: make([][2]uint64, size),
		counts: make([]uint64, size),
	}

	require.NoError(t, comm.Run(size, func(c comm.Communicator) error {
		g, err := build(c)
		if err != nil {
			return err
		}
		if err := g.Generate(); err != nil {
			return err
		}

		first, last := g.VertexRange()

		mu.Lock()
		defer mu.Unlock()
		res.edges = append(res.edges, g.Edges()...)
		res.ranges[c.Rank()] = [2]uint64{first, last}
		res.counts[c.Rank()] = g.NumberOfEdges()

		return nil
	}))

	sortEdges(res.edges)

	return res
}

func sortEdges(edges []sink.Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })
}

// requireCoverage asserts that the per-rank vertex ranges tile [0,n) with no
// gap and no overlap (§8 property 2).
func requireCoverage(t *testing.T, ranges [][2]uint64, n uint64) {
	t.Helper()

	var next uint64
	for rank, r := range ranges {
		require.Equal(t, next, r[0], "rank %d first", rank)
		require.GreaterOrEqual(t, r[1], r[0], "rank %d range", rank)
		next = r[1] + 1
	}
	require.Equal(t, n, next)
}

// requireNoSelfLoops asserts §8 property 3.
func requireNoSelfLoops(t *testing.T, edges []sink.Edge) {
	t.Helper()

	for _, e := range edges {
		require.NotEqual(t, e.Source, e.Target, "self-loop %v", e)
	}
}

// requireCanonicalDistinct asserts §8 property 4: every unordered edge
// appears exactly once, in (min,max) orientation.
func requireCanonicalDistinct(t *testing.T, edges []sink.Edge) {
	t.Helper()

	seen := make(map[sink.Edge]struct{}, len(edges))
	for _, e := range edges {
		require.LessOrEqual(t, e.Source, e.Target, "orientation %v", e)
		_, dup := seen[e]
		require.False(t, dup, "duplicate %v", e)
		seen[e] = struct{}{}
	}
}
