// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"

	"github.com/katalvlaran/bimatch/bipartite"
)

// Matching is an ordered set of X–Y edges with no shared endpoints.
// Size always equals the number of edges; every mutator keeps it in sync.
// The zero value is an empty matching ready to use.
type Matching struct {
	Size int

	edges []bipartite.Edge
	posX  map[int]int // X index → position in edges
	byY   map[int]int // Y index → matched X index
}

// NewMatching returns a matching holding the given edges in order.
// Panics with ErrInvariantViolation if two edges share an endpoint.
func NewMatching(edges ...bipartite.Edge) *Matching {
	m := &Matching{}
	for _, e := range edges {
		m.AddEdge(e.X, e.Y)
	}

	return m
}

func (m *Matching) init() {
	if m.posX == nil {
		m.posX = make(map[int]int)
		m.byY = make(map[int]int)
	}
}

// AddEdge appends (x, y) and increments Size.
// Both endpoints must be free; otherwise it panics with ErrInvariantViolation.
func (m *Matching) AddEdge(x, y int) {
	m.init()
	if _, used := m.posX[x]; used {
		panic(fmt.Errorf("AddEdge(%d,%d): x already matched: %w", x, y, ErrInvariantViolation))
	}
	if _, used := m.byY[y]; used {
		panic(fmt.Errorf("AddEdge(%d,%d): y already matched: %w", x, y, ErrInvariantViolation))
	}

	m.posX[x] = len(m.edges)
	m.byY[y] = x
	m.edges = append(m.edges, bipartite.Edge{X: x, Y: y})
	m.Size++
}

// ReplaceEdgeAt replaces the edge whose X endpoint is x with (x, y), keeping
// its position in the edge order. Size is unchanged and the old Y endpoint
// becomes free. Panics with ErrInvariantViolation if x is unmatched or y is
// matched to another X vertex.
func (m *Matching) ReplaceEdgeAt(x, y int) {
	m.init()
	pos, ok := m.posX[x]
	if !ok {
		panic(fmt.Errorf("ReplaceEdgeAt(%d,%d): x not matched: %w", x, y, ErrInvariantViolation))
	}
	if other, used := m.byY[y]; used && other != x {
		panic(fmt.Errorf("ReplaceEdgeAt(%d,%d): y matched to x=%d: %w", x, y, other, ErrInvariantViolation))
	}

	delete(m.byY, m.edges[pos].Y)
	m.edges[pos].Y = y
	m.byY[y] = x
}

// HasX reports whether X vertex x is saturated.
func (m *Matching) HasX(x int) bool {
	_, ok := m.posX[x]
	return ok
}

// HasY reports whether Y vertex y is saturated.
func (m *Matching) HasY(y int) bool {
	_, ok := m.byY[y]
	return ok
}

// PartnerOfX returns the Y vertex matched to x.
func (m *Matching) PartnerOfX(x int) (int, bool) {
	pos, ok := m.posX[x]
	if !ok {
		return 0, false
	}

	return m.edges[pos].Y, true
}

// PartnerOfY returns the X vertex matched to y.
func (m *Matching) PartnerOfY(y int) (int, bool) {
	x, ok := m.byY[y]
	return x, ok
}

// Edges returns a copy of the edges in insertion order.
func (m *Matching) Edges() []bipartite.Edge {
	out := make([]bipartite.Edge, len(m.edges))
	copy(out, m.edges)

	return out
}

// Clone returns a deep copy sharing no state with m.
func (m *Matching) Clone() *Matching {
	c := &Matching{
		Size:  m.Size,
		edges: make([]bipartite.Edge, len(m.edges)),
		posX:  make(map[int]int, len(m.posX)),
		byY:   make(map[int]int, len(m.byY)),
	}
	copy(c.edges, m.edges)
	for k, v := range m.posX {
		c.posX[k] = v
	}
	for k, v := range m.byY {
		c.byY[k] = v
	}

	return c
}

// Validate checks, from the edge list alone, that Size matches the edge
// count, that no endpoint is reused and, when g is non-nil, that every edge
// exists in g. Errors wrap ErrInvariantViolation.
func (m *Matching) Validate(g *bipartite.Graph) error {
	if m.Size != len(m.edges) {
		return fmt.Errorf("Validate: Size=%d but %d edges: %w", m.Size, len(m.edges), ErrInvariantViolation)
	}

	seenX := make(map[int]struct{}, len(m.edges))
	seenY := make(map[int]struct{}, len(m.edges))
	for _, e := range m.edges {
		if _, dup := seenX[e.X]; dup {
			return fmt.Errorf("Validate: x%d used twice: %w", e.X+1, ErrInvariantViolation)
		}
		if _, dup := seenY[e.Y]; dup {
			return fmt.Errorf("Validate: y%d used twice: %w", e.Y+1, ErrInvariantViolation)
		}
		seenX[e.X] = struct{}{}
		seenY[e.Y] = struct{}{}

		if g == nil {
			continue
		}
		if e.X < 0 || e.X >= g.XCount() || e.Y < 0 || e.Y >= g.YCount() || !g.Adjacent(e.X, e.Y) {
			return fmt.Errorf("Validate: %v: %w", e, ErrEdgeNotInGraph)
		}
	}

	return nil
}
