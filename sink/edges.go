// SPDX-License-Identifier: MIT
// Package: kagen/sink
//
// edges.go — the append-only edge-list sink.

package sink

// EdgeSink buffers accepted edges in emission order.
type EdgeSink struct {
	edges []Edge
	cb    Callback // optional observer, may be nil
}

// NewEdgeSink returns an empty edge-list sink. The callback may be nil.
func NewEdgeSink(cb Callback) *EdgeSink {
	return &EdgeSink{cb: cb}
}

// Reserve pre-allocates capacity for the expected number of edges.
// Complexity: O(n) on growth, amortizes the append path.
func (s *EdgeSink) Reserve(n uint64) {
	if uint64(cap(s.edges)) < n {
		grown := make([]Edge, len(s.edges), n)
		copy(grown, s.edges)
		s.edges = grown
	}
}

// Emit appends one accepted edge and notifies the callback, if any.
func (s *EdgeSink) Emit(u, v uint64) {
	s.edges = append(s.edges, Edge{Source: u, Target: v})
	if s.cb != nil {
		s.cb(u, v)
	}
}

// NumEdges returns the buffered edge count.
func (s *EdgeSink) NumEdges() uint64 { return uint64(len(s.edges)) }

// Edges returns the buffered edges in emission order. The slice is owned by
// the sink; callers must not mutate it while the generator is running.
func (s *EdgeSink) Edges() []Edge { return s.edges }
