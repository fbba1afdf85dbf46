// SPDX-License-Identifier: MIT
// Package: kagen/edgeio
//
// write.go — collective edge-list and distribution writers.
//
// Contract:
//   • WriteEdges and WriteDist are collective over the communicator; every
//     participant must call them with consistently shaped arguments.
//   • Vertex ids are shifted to 1-based on disk.
//   • Per-rank headers carry the global (allreduced) edge count, so every
//     partial file documents the whole graph it belongs to.

package edgeio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/sink"
)

// outputRoot is the rank that writes single-file and distribution output.
const outputRoot = 0

// idShift converts between 0-based in-memory ids and 1-based on-disk ids.
const idShift = 1

// WriteEdges writes the local edge list per cfg. Collective.
func WriteEdges(cfg Config, c comm.Communicator, edges []sink.Edge, n uint64) error {
	if cfg.File == "" {
		return fmt.Errorf("WriteEdges: %w", ErrNoOutputPath)
	}

	if cfg.SingleFile {
		return writeSingleFile(cfg, c, edges, n)
	}

	return writeRankFile(cfg, c, edges, n)
}

// writeRankFile writes "<File>_<rank>" with this participant's edges.
func writeRankFile(cfg Config, c comm.Communicator, edges []sink.Edge, n uint64) error {
	// The header documents the global edge count; reduce before writing.
	total := c.AllreduceSum(uint64(len(edges)))

	path := fmt.Sprintf("%s_%d", cfg.File, c.Rank())

	return writeEdgeFile(path, cfg, edges, n, total)
}

// writeSingleFile gathers every participant's edges to the root, which
// sorts, deduplicates, and writes one file.
func writeSingleFile(cfg Config, c comm.Communicator, edges []sink.Edge, n uint64) error {
	parts := c.GatherSlices(flatten(edges), outputRoot)
	if c.Rank() != outputRoot {
		return nil
	}

	var all []sink.Edge
	for _, part := range parts {
		all = append(all, unflatten(part)...)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Less(all[j]) })
	all = dedup(all)

	return writeEdgeFile(cfg.File, cfg, all, n, uint64(len(all)))
}

// writeEdgeFile writes one edge file in the configured format.
func writeEdgeFile(path string, cfg Config, edges []sink.Edge, n, m uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteEdges: %w", err)
	}

	w := bufio.NewWriter(f)

	if cfg.Format == FormatBinaryEdgeList {
		err = writeBinary(w, cfg.Header, edges, n, m)
	} else {
		err = writeText(w, cfg.Header, edges, n, m)
	}
	if err == nil {
		err = w.Flush()
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("WriteEdges: %s: %w", path, err)
	}

	return nil
}

func writeText(w *bufio.Writer, header bool, edges []sink.Edge, n, m uint64) error {
	if header {
		if _, err := fmt.Fprintf(w, "p %d %d\n", n, m); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "e %d %d\n", e.Source+idShift, e.Target+idShift); err != nil {
			return err
		}
	}

	return nil
}

func writeBinary(w *bufio.Writer, header bool, edges []sink.Edge, n, m uint64) error {
	if header {
		if err := binary.Write(w, binary.LittleEndian, [2]uint64{n, m}); err != nil {
			return err
		}
	}
	for _, e := range edges {
		rec := [2]uint64{e.Source + idShift, e.Target + idShift}
		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return err
		}
	}

	return nil
}

// WriteDist reduces the degree histogram (element-wise SUM) to the root,
// which writes one count per line. Collective.
func WriteDist(cfg Config, c comm.Communicator, dist []uint64) error {
	if cfg.File == "" {
		return fmt.Errorf("WriteDist: %w", ErrNoOutputPath)
	}

	reduced := c.ReduceSum(dist, outputRoot)
	if c.Rank() != outputRoot {
		return nil
	}

	f, err := os.Create(cfg.File)
	if err != nil {
		return fmt.Errorf("WriteDist: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, count := range reduced {
		if _, err = fmt.Fprintf(w, "%d\n", count); err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}

	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("WriteDist: %s: %w", cfg.File, err)
	}

	return nil
}

// flatten packs edges as alternating (source, target) words for the gather.
func flatten(edges []sink.Edge) []uint64 {
	flat := make([]uint64, 0, 2*len(edges))
	for _, e := range edges {
		flat = append(flat, e.Source, e.Target)
	}

	return flat
}

// unflatten reverses flatten.
func unflatten(flat []uint64) []sink.Edge {
	edges := make([]sink.Edge, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		edges = append(edges, sink.Edge{Source: flat[i], Target: flat[i+1]})
	}

	return edges
}

// dedup removes adjacent duplicates from a sorted edge list, in place.
func dedup(edges []sink.Edge) []sink.Edge {
	if len(edges) == 0 {
		return edges
	}

	out := edges[:1]
	for _, e := range edges[1:] {
		if last := out[len(out)-1]; e != last {
			out = append(out, e)
		}
	}

	return out
}
