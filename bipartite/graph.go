// SPDX-License-Identifier: MIT

package bipartite

import "fmt"

// New builds a Graph with xCount X vertices and yCount Y vertices.
// adjacency[x] lists the 0-based Y neighbors of X vertex x; rows beyond
// len(adjacency) have no neighbors and duplicate entries collapse.
//
// Returns ErrNegativeCount, ErrTooManyRows or ErrIndexOutOfRange
// (wrapped with the offending indices) on malformed input.
//
// Complexity: O(X·Y) time and memory.
func New(xCount, yCount int, adjacency [][]int) (*Graph, error) {
	// 1) Validate dimensions before allocating anything.
	if xCount < 0 || yCount < 0 {
		return nil, fmt.Errorf("New: xCount=%d, yCount=%d: %w", xCount, yCount, ErrNegativeCount)
	}
	if len(adjacency) > xCount {
		return nil, fmt.Errorf("New: %d rows for %d X vertices: %w", len(adjacency), xCount, ErrTooManyRows)
	}

	// 2) Fill the dense relation, rejecting any index outside Y.
	g := newEmpty(xCount, yCount)
	for x, row := range adjacency {
		for _, y := range row {
			if y < 0 || y >= yCount {
				return nil, fmt.Errorf("New: x=%d lists y=%d (yCount=%d): %w", x, y, yCount, ErrIndexOutOfRange)
			}
			g.adj[x][y] = true
		}
	}

	// 3) Derive the sorted neighbor lists from the dense relation.
	g.index()

	return g, nil
}

// FromMatrix builds a Graph from a rectangular boolean matrix where
// m[x][y] reports an edge. An empty matrix yields the empty graph.
//
// Complexity: O(X·Y).
func FromMatrix(m [][]bool) (*Graph, error) {
	xCount, yCount := len(m), 0
	if xCount > 0 {
		yCount = len(m[0])
	}
	for x, row := range m {
		if len(row) != yCount {
			return nil, fmt.Errorf("FromMatrix: row %d has %d columns, want %d: %w", x, len(row), yCount, ErrNonRectangular)
		}
	}

	g := newEmpty(xCount, yCount)
	for x := range m {
		copy(g.adj[x], m[x])
	}
	g.index()

	return g, nil
}

// newEmpty allocates an edgeless graph of the given dimensions.
func newEmpty(xCount, yCount int) *Graph {
	adj := make([][]bool, xCount)
	for x := range adj {
		adj[x] = make([]bool, yCount)
	}

	return &Graph{
		xCount: xCount,
		yCount: yCount,
		adj:    adj,
		nbrs:   make([][]int, xCount),
	}
}

// index rebuilds nbrs and edgeCount from adj. Called once by constructors.
func (g *Graph) index() {
	g.edgeCount = 0
	for x := 0; x < g.xCount; x++ {
		row := make([]int, 0)
		for y := 0; y < g.yCount; y++ {
			if g.adj[x][y] {
				row = append(row, y)
			}
		}
		g.nbrs[x] = row
		g.edgeCount += len(row)
	}
}

// XCount returns |X|.
func (g *Graph) XCount() int { return g.xCount }

// YCount returns |Y|.
func (g *Graph) YCount() int { return g.yCount }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Adjacent reports whether X vertex x and Y vertex y are joined by an edge.
// Panics if either index is out of range.
func (g *Graph) Adjacent(x, y int) bool {
	return g.adj[x][y]
}

// Neighbors returns the Y neighbors of X vertex x in ascending order.
// The slice is a copy; callers may modify it.
func (g *Graph) Neighbors(x int) []int {
	out := make([]int, len(g.nbrs[x]))
	copy(out, g.nbrs[x])

	return out
}

// Degree returns the number of Y neighbors of X vertex x.
func (g *Graph) Degree(x int) int {
	return len(g.nbrs[x])
}

// Edges lists every edge, X ascending then Y ascending.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for x, row := range g.nbrs {
		for _, y := range row {
			out = append(out, Edge{X: x, Y: y})
		}
	}

	return out
}

// AdjacencyLists returns a deep copy of the neighbor lists, one row per X vertex.
func (g *Graph) AdjacencyLists() [][]int {
	out := make([][]int, g.xCount)
	for x := range out {
		out[x] = g.Neighbors(x)
	}

	return out
}
