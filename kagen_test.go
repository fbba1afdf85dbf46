// Package kagen contains facade tests: single- and multi-participant driver
// calls, option resolution, and the weighted entry points.
package kagen

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/generator"
	"github.com/mschimek/KaGen/sink"
)

// solo returns a one-participant communicator.
func solo(t *testing.T) comm.Communicator {
	t.Helper()

	comms, err := comm.NewLocalGroup(1)
	require.NoError(t, err)

	return comms[0]
}

// TestGenerate2DGridSolo verifies the facade unwraps edges and range.
func TestGenerate2DGridSolo(t *testing.T) {
	t.Parallel()

	res, err := Generate2DGrid(solo(t), 4, 4, 1.0, false)
	require.NoError(t, err)

	assert.Len(t, res.Edges, 24)
	assert.Equal(t, VertexRange{First: 0, Last: 15}, res.Range)
}

// TestGenerateUndirectedGNPAcrossRanks verifies the facade composes with a
// multi-participant group: local slices join into the complete triangle.
func TestGenerateUndirectedGNPAcrossRanks(t *testing.T) {
	t.Parallel()

	const n = 60
	var mu sync.Mutex
	var all []sink.Edge

	require.NoError(t, comm.Run(2, func(c comm.Communicator) error {
		res, err := GenerateUndirectedGNP(c, n, 1.0, WithChunks(2), WithSeed(9))
		if err != nil {
			return err
		}

		mu.Lock()
		all = append(all, res.Edges...)
		mu.Unlock()

		return nil
	}))

	assert.Len(t, all, n*(n-1)/2)
}

// TestGenerateDirectedGNMOptions verifies option resolution (chunks, seed,
// self-loops) reaches the generator.
func TestGenerateDirectedGNMOptions(t *testing.T) {
	t.Parallel()

	const n = 12
	res, err := GenerateDirectedGNM(solo(t), n, n*n, WithChunks(3), WithSeed(5), WithSelfLoops())
	require.NoError(t, err)

	require.Len(t, res.Edges, n*n)

	var loops int
	for _, e := range res.Edges {
		if e.Source == e.Target {
			loops++
		}
	}
	assert.Equal(t, n, loops)
}

// TestGenerateInvalidConfigSurfacesSentinels verifies constructor errors
// pass through the facade unchanged.
func TestGenerateInvalidConfigSurfacesSentinels(t *testing.T) {
	t.Parallel()

	_, err := GenerateUndirectedGNP(solo(t), 10, 1.5)
	assert.ErrorIs(t, err, generator.ErrInvalidProbability)

	_, err = GenerateUndirectedGNM(solo(t), 10, 1<<40)
	assert.ErrorIs(t, err, generator.ErrInvalidEdgeCount)
}

// TestGenerateUndirectedGNMWeighted verifies the weight callback fires once
// per edge in emission order with the derived weight.
func TestGenerateUndirectedGNMWeighted(t *testing.T) {
	t.Parallel()

	wfn := func(u, v uint64) float64 { return float64(u + v) }

	res, err := GenerateUndirectedGNMWeighted(solo(t), wfn, 100, 250, WithSeed(21))
	require.NoError(t, err)

	require.Len(t, res.Edges, 250)
	for _, e := range res.Edges {
		require.Less(t, e.Source, e.Target)
		require.Equal(t, float64(e.Source+e.Target), e.Weight)
	}
	assert.Equal(t, VertexRange{First: 0, Last: 99}, res.Range)
}

// TestGenerate3DGridWeightedMatchesUnweighted verifies the weighted variant
// emits exactly the unweighted edge set.
func TestGenerate3DGridWeightedMatchesUnweighted(t *testing.T) {
	t.Parallel()

	plain, err := Generate3DGrid(solo(t), 3, 3, 3, 0.7, true, WithSeed(8))
	require.NoError(t, err)

	weighted, err := Generate3DGridWeighted(solo(t), func(u, v uint64) float64 { return 1 },
		3, 3, 3, 0.7, true, WithSeed(8))
	require.NoError(t, err)

	got := make([]sink.Edge, len(weighted.Edges))
	for i, e := range weighted.Edges {
		got[i] = sink.Edge{Source: e.Source, Target: e.Target}
	}

	sort.Slice(got, func(i, j int) bool { return got[i].Less(got[j]) })
	want := append([]sink.Edge(nil), plain.Edges...)
	sort.Slice(want, func(i, j int) bool { return want[i].Less(want[j]) })

	assert.Equal(t, want, got)
}
