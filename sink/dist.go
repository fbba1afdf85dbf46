// SPDX-License-Identifier: MIT
// Package: kagen/sink
//
// dist.go — the degree-histogram sink.
//
// Contract:
//   • Emit increments the counters of both endpoints that fall inside
//     [0, size); out-of-range ids still count toward the edge total.
//   • The histogram is local to one participant; Output reduces it
//     element-wise (SUM) across participants.

package sink

// DistSink accumulates a per-vertex degree histogram instead of edges.
type DistSink struct {
	dist  []uint64
	count uint64
	cb    Callback // optional observer, may be nil
}

// NewDistSink returns a histogram sink covering vertex ids [0, size).
// The callback may be nil.
func NewDistSink(size uint64, cb Callback) *DistSink {
	return &DistSink{dist: make([]uint64, size), cb: cb}
}

// Emit counts one accepted edge toward both endpoint degrees.
func (s *DistSink) Emit(u, v uint64) {
	if u < uint64(len(s.dist)) {
		s.dist[u]++
	}
	if v < uint64(len(s.dist)) {
		s.dist[v]++
	}
	s.count++

	if s.cb != nil {
		s.cb(u, v)
	}
}

// NumEdges returns the number of emitted edges.
func (s *DistSink) NumEdges() uint64 { return s.count }

// Dist returns the local histogram. The slice is owned by the sink.
func (s *DistSink) Dist() []uint64 { return s.dist }
