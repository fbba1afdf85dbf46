// Package edgeio writes generated edge lists and degree distributions in the
// bit-exact formats of the original tool, and reads binary edge lists back.
//
// Formats (vertex ids are 1-based on disk):
//
//   - Text edge list:   optional header "p <n> <m>\n", then "e <u> <v>\n"
//     per edge.
//   - Binary edge list: optional header of two 64-bit little-endian values
//     (n, m), then two 64-bit little-endian values per edge.
//   - Distribution:     one decimal count per line, indexed by vertex id.
//
// Modes:
//
//   - Per-rank: every participant writes "<path>_<rank>"; headers carry the
//     allreduced global edge count.
//   - Single-file: edges are gathered to rank 0, sorted, deduplicated, and
//     written as one file (rank order is imposed by the gather).
//
// Both writers are collective: every participant of the communicator must
// call them, in dist mode and single-file mode alike.
package edgeio
