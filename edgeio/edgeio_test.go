// Package edgeio contains byte-exact tests for the text/binary writers, the
// distribution writer, and the binary round-trip.
package edgeio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mschimek/KaGen/comm"
	"github.com/mschimek/KaGen/sink"
)

// TestParseFormatRoundTrip verifies token mapping in both directions.
func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{FormatEdgeList, FormatBinaryEdgeList} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// TestWriteEdgesRejectsEmptyPath exercises the path sentinel.
func TestWriteEdgesRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	require.NoError(t, comm.Run(1, func(c comm.Communicator) error {
		err := WriteEdges(Config{}, c, nil, 10)
		assert.ErrorIs(t, err, ErrNoOutputPath)

		err = WriteDist(Config{}, c, nil)
		assert.ErrorIs(t, err, ErrNoOutputPath)

		return nil
	}))
}

// TestWriteTextPerRank verifies the exact bytes of per-rank text output,
// including the 1-based shift and the global header count.
func TestWriteTextPerRank(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	prefix := filepath.Join(dir, "out")

	perRank := [][]sink.Edge{
		{{Source: 0, Target: 1}, {Source: 0, Target: 2}},
		{{Source: 3, Target: 4}},
	}

	require.NoError(t, comm.Run(2, func(c comm.Communicator) error {
		cfg := Config{File: prefix, Format: FormatEdgeList, Header: true}

		return WriteEdges(cfg, c, perRank[c.Rank()], 5)
	}))

	got0, err := os.ReadFile(prefix + "_0")
	require.NoError(t, err)
	assert.Equal(t, "p 5 3\ne 1 2\ne 1 3\n", string(got0))

	got1, err := os.ReadFile(prefix + "_1")
	require.NoError(t, err)
	assert.Equal(t, "p 5 3\ne 4 5\n", string(got1))
}

// TestWriteSingleFileSortsAndDedups verifies gather-to-root output order.
func TestWriteSingleFileSortsAndDedups(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "single")

	perRank := [][]sink.Edge{
		{{Source: 2, Target: 3}, {Source: 0, Target: 1}},
		{{Source: 0, Target: 1}, {Source: 1, Target: 2}}, // duplicate (0,1)
	}

	require.NoError(t, comm.Run(2, func(c comm.Communicator) error {
		cfg := Config{File: path, Format: FormatEdgeList, SingleFile: true, Header: true}

		return WriteEdges(cfg, c, perRank[c.Rank()], 4)
	}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "p 4 3\ne 1 2\ne 2 3\ne 3 4\n", string(got))
}

// TestBinaryRoundTrip verifies §8 property 8: write-then-read recovers the
// exact edge multiset after undoing the 1-based shift.
func TestBinaryRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bin")

	edges := []sink.Edge{{Source: 0, Target: 9}, {Source: 4, Target: 4}, {Source: 7, Target: 2}}

	require.NoError(t, comm.Run(1, func(c comm.Communicator) error {
		cfg := Config{File: path, Format: FormatBinaryEdgeList, Header: true}

		return WriteEdges(cfg, c, edges, 10)
	}))

	n, m, got, err := ReadBinaryEdges(path+"_0", true)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), n)
	assert.Equal(t, uint64(3), m)
	assert.Equal(t, edges, got)
}

// TestBinaryNoHeader verifies headerless round-trip.
func TestBinaryNoHeader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "raw")

	edges := []sink.Edge{{Source: 1, Target: 2}}

	require.NoError(t, comm.Run(1, func(c comm.Communicator) error {
		cfg := Config{File: path, Format: FormatBinaryEdgeList}

		return WriteEdges(cfg, c, edges, 3)
	}))

	n, m, got, err := ReadBinaryEdges(path+"_0", false)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, m)
	assert.Equal(t, edges, got)
}

// TestReadBinaryTruncated verifies the truncation sentinel.
func TestReadBinaryTruncated(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "trunc")
	require.NoError(t, os.WriteFile(path, make([]byte, 12), 0o644))

	_, _, _, err := ReadBinaryEdges(path, false)
	assert.ErrorIs(t, err, ErrTruncatedFile)
}

// TestWriteDistReducesToRoot verifies the element-wise SUM and the line
// format.
func TestWriteDistReducesToRoot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dist")

	perRank := [][]uint64{
		{1, 0, 2},
		{0, 3, 1},
		{1, 1, 1},
	}

	require.NoError(t, comm.Run(3, func(c comm.Communicator) error {
		return WriteDist(Config{File: path}, c, perRank[c.Rank()])
	}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2\n4\n4\n", string(got))
}
