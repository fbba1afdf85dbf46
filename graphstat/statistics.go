// SPDX-License-Identifier: MIT
// Package: kagen/graphstat
//
// statistics.go — collective graph statistics.
//
// Contract:
//   • Every function is collective over the communicator.
//   • Degree accounting is out-degree over the emitted orientation; for
//     undirected models (canonical single emission) this is the degree of
//     the smaller endpoint.

package graphstat

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/sink"
)

// statsRoot receives the folded results of the root-only reductions.
const statsRoot = 0

// GlobalNodeCount returns the graph-wide vertex count on every participant.
// vertexRangeEnd is this participant's one-past-the-end owned vertex id; the
// last participant's value is the global count.
func GlobalNodeCount(c comm.Communicator, vertexRangeEnd uint64) uint64 {
	return c.Bcast(vertexRangeEnd, c.Size()-1)
}

// GlobalEdgeCount returns the graph-wide edge count on every participant.
func GlobalEdgeCount(c comm.Communicator, localEdges uint64) uint64 {
	return c.AllreduceSum(localEdges)
}

// GatherEdgeCounts returns the per-rank edge counts at the root, nil
// elsewhere.
func GatherEdgeCounts(c comm.Communicator, localEdges uint64) []uint64 {
	return c.Gather(localEdges, statsRoot)
}

// DegreeStatistics summarizes the out-degree distribution.
type DegreeStatistics struct {
	Min  uint64
	Max  uint64
	Mean float64
}

// ReduceDegreeStatistics folds local degree extremes and the global mean at
// the root; other ranks receive the zero value. globalNodes should come from
// GlobalNodeCount.
func ReduceDegreeStatistics(c comm.Communicator, edges []sink.Edge, globalNodes uint64) DegreeStatistics {
	localMin, localMax := localDegreeExtremes(edges)

	mins := c.Gather(localMin, statsRoot)
	maxes := c.Gather(localMax, statsRoot)
	totalEdges := c.AllreduceSum(uint64(len(edges)))

	if c.Rank() != statsRoot {
		return DegreeStatistics{}
	}

	out := DegreeStatistics{Min: math.MaxUint64}
	for rank := range mins {
		if mins[rank] < out.Min {
			out.Min = mins[rank]
		}
		if maxes[rank] > out.Max {
			out.Max = maxes[rank]
		}
	}
	if globalNodes > 0 {
		out.Mean = float64(totalEdges) / float64(globalNodes)
	}

	return out
}

// localDegreeExtremes scans the local edge list, sorted by source, for the
// smallest and largest out-degree. A gap in the source sequence means a
// vertex with no outgoing edges, so the minimum drops to zero.
func localDegreeExtremes(edges []sink.Edge) (min, max uint64) {
	if len(edges) == 0 {
		return 0, 0
	}

	sorted := make([]sink.Edge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	min = math.MaxUint64
	var degree uint64
	current := sorted[0].Source

	flush := func() {
		if degree < min {
			min = degree
		}
		if degree > max {
			max = degree
		}
	}

	for _, e := range sorted {
		if e.Source == current {
			degree++

			continue
		}
		flush()
		if e.Source != current+1 {
			min = 0 // a skipped source has out-degree zero
		}
		current = e.Source
		degree = 1
	}
	flush()

	return min, max
}

// LoadBalance returns the mean and standard deviation of the per-rank edge
// counts at the root; other ranks receive zeros.
func LoadBalance(c comm.Communicator, localEdges uint64) (mean, sd float64) {
	counts := c.Gather(localEdges, statsRoot)
	if c.Rank() != statsRoot {
		return 0, 0
	}

	values := make(stats.Float64Data, len(counts))
	for i, v := range counts {
		values[i] = float64(v)
	}

	// Mean and population standard deviation; both error only on empty
	// input, which Gather at the root never produces.
	mean, _ = stats.Mean(values)
	sd, _ = stats.StandardDeviationPopulation(values)

	return mean, sd
}
