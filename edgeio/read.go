// SPDX-License-Identifier: MIT
// Package: kagen/edgeio
//
// read.go — binary edge-list reader (the round-trip counterpart of the
// binary writer).

package edgeio

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/mschimek/KaGen/sink"
)

const recordBytes = 16 // two 64-bit words per edge

// ReadBinaryEdges reads a binary edge list written by WriteEdges, undoing
// the 1-based id shift. When header is true the leading (n, m) pair is
// decoded; otherwise both return zero.
func ReadBinaryEdges(path string, header bool) (n, m uint64, edges []sink.Edge, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("ReadBinaryEdges: %w", err)
	}

	if header {
		if len(raw) < recordBytes {
			return 0, 0, nil, fmt.Errorf("ReadBinaryEdges: %s: %w", path, ErrTruncatedFile)
		}
		n = binary.LittleEndian.Uint64(raw[0:8])
		m = binary.LittleEndian.Uint64(raw[8:16])
		raw = raw[recordBytes:]
	}

	if len(raw)%recordBytes != 0 {
		return 0, 0, nil, fmt.Errorf("ReadBinaryEdges: %s: %w", path, ErrTruncatedFile)
	}

	edges = make([]sink.Edge, 0, len(raw)/recordBytes)
	for off := 0; off < len(raw); off += recordBytes {
		edges = append(edges, sink.Edge{
			Source: binary.LittleEndian.Uint64(raw[off:off+8]) - idShift,
			Target: binary.LittleEndian.Uint64(raw[off+8:off+16]) - idShift,
		})
	}

	return n, m, edges, nil
}
