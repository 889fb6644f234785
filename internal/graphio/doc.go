// Package graphio reads bipartite graphs from operators or files and writes
// matchings back out. Vertices are 1-based on the wire and 0-based inside.
//
// Formats:
//
//   - text: the interactive dialogue. Line 1 holds |X|, line 2 holds |Y|, then
//     one line per X vertex lists its adjacent Y vertices separated by spaces
//     (a blank line means none). Missing trailing rows are read as blank.
//   - yaml: a document {x: 2, y: 2, adjacency: [[1], [1, 2]]}.
//
// Output mirrors the same two formats.
package graphio
