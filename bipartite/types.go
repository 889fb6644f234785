// SPDX-License-Identifier: MIT

package bipartite

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrNegativeCount indicates a negative vertex count for X or Y.
	ErrNegativeCount = errors.New("bipartite: vertex count must be non-negative")

	// ErrTooManyRows indicates more adjacency rows than X vertices.
	ErrTooManyRows = errors.New("bipartite: more adjacency rows than X vertices")

	// ErrIndexOutOfRange indicates a Y index outside [0, yCount).
	ErrIndexOutOfRange = errors.New("bipartite: vertex index out of range")

	// ErrNonRectangular indicates matrix rows of differing lengths.
	ErrNonRectangular = errors.New("bipartite: all matrix rows must have the same length")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("bipartite: probability must lie in [0, 1]")
)

// Edge joins X vertex X to Y vertex Y. Both indices are 0-based.
type Edge struct {
	X, Y int
}

// String renders the edge 1-based, the way operators number vertices.
func (e Edge) String() string {
	return fmt.Sprintf("[x%d, y%d]", e.X+1, e.Y+1)
}

// Graph is an immutable bipartite adjacency relation.
// adj[x][y] reports an edge; nbrs[x] lists the Y neighbors of x in ascending order.
type Graph struct {
	xCount, yCount int
	adj            [][]bool
	nbrs           [][]int
	edgeCount      int
}
