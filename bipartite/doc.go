// Package bipartite provides an immutable, index-based bipartite graph
// G = (X ∪ Y, E) where every edge joins a vertex of X to a vertex of Y.
//
// What:
//
//   - Graph stores a fixed xCount × yCount boolean adjacency relation plus
//     precomputed, ascending neighbor lists for every X vertex.
//   - Vertices are plain 0-based integers local to their side: X vertex 0 and
//     Y vertex 0 are different vertices.
//   - Builders (Complete, RandomSparse) produce deterministic fixtures.
//
// Why:
//
//   - Matching algorithms scan neighbor lists in a stable order and need O(1)
//     adjacency checks; a dense matrix plus sorted lists gives both.
//   - A Graph is never mutated after construction, so it can be shared by any
//     number of concurrent readers without locks.
//
// Complexity:
//
//   - New / FromMatrix: O(X·Y) time and memory.
//   - Adjacent:         O(1).
//   - Neighbors:        O(deg(x)) (fresh copy).
//   - Edges:            O(E).
//
// Errors:
//
//   - ErrNegativeCount:   a side size is negative.
//   - ErrTooManyRows:     more adjacency rows than X vertices.
//   - ErrIndexOutOfRange: a neighbor index lies outside [0, yCount).
//   - ErrNonRectangular:  FromMatrix rows of differing lengths.
//   - ErrBadProbability:  RandomSparse probability outside [0, 1].
//
// Out-of-range indices passed to query methods (Adjacent, Neighbors) are
// programmer errors and panic, like slice indexing does.
package bipartite
