package bipartite_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bipartite"
)

//----------------------------------------------------------------------------//
// Construction errors
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed dimensions and indices.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		xCount int
		yCount int
		adj    [][]int
		err    error
	}{
		{"NegativeX", -1, 2, nil, bipartite.ErrNegativeCount},
		{"NegativeY", 2, -3, nil, bipartite.ErrNegativeCount},
		{"TooManyRows", 1, 2, [][]int{{0}, {1}}, bipartite.ErrTooManyRows},
		{"YTooLarge", 2, 2, [][]int{{0}, {2}}, bipartite.ErrIndexOutOfRange},
		{"YNegative", 2, 2, [][]int{{-1}}, bipartite.ErrIndexOutOfRange},
		{"NoYButEdge", 1, 0, [][]int{{0}}, bipartite.ErrIndexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := bipartite.New(tc.xCount, tc.yCount, tc.adj)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d,%v) error = %v; want %v", tc.xCount, tc.yCount, tc.adj, err, tc.err)
			}
			if g != nil {
				t.Errorf("New returned non-nil graph on error")
			}
		})
	}
}

// TestFromMatrix_NonRectangular verifies ragged matrices are rejected.
func TestFromMatrix_NonRectangular(t *testing.T) {
	_, err := bipartite.FromMatrix([][]bool{{true, false}, {true}})
	require.ErrorIs(t, err, bipartite.ErrNonRectangular)
}

//----------------------------------------------------------------------------//
// Queries
//----------------------------------------------------------------------------//

// TestNew_Queries checks dimensions, adjacency, neighbors and edge order.
func TestNew_Queries(t *testing.T) {
	// x0 – y0; x1 – y0, y1 (listed out of order and with a duplicate)
	g, err := bipartite.New(3, 2, [][]int{{0}, {1, 0, 1}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.XCount())
	assert.Equal(t, 2, g.YCount())
	assert.Equal(t, 3, g.EdgeCount())

	assert.True(t, g.Adjacent(0, 0))
	assert.False(t, g.Adjacent(0, 1))
	assert.True(t, g.Adjacent(1, 1))
	assert.False(t, g.Adjacent(2, 0))

	assert.Equal(t, []int{0, 1}, g.Neighbors(1))
	assert.Empty(t, g.Neighbors(2))
	assert.Equal(t, 2, g.Degree(1))

	want := []bipartite.Edge{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	assert.Equal(t, want, g.Edges())
}

// TestNeighbors_IsCopy ensures callers cannot mutate graph internals.
func TestNeighbors_IsCopy(t *testing.T) {
	g, err := bipartite.New(1, 3, [][]int{{0, 2}})
	require.NoError(t, err)

	n := g.Neighbors(0)
	n[0] = 1
	assert.Equal(t, []int{0, 2}, g.Neighbors(0))

	lists := g.AdjacencyLists()
	lists[0][1] = 1
	assert.Equal(t, []int{0, 2}, g.Neighbors(0))
}

// TestFromMatrix_MatchesNew verifies both constructors agree.
func TestFromMatrix_MatchesNew(t *testing.T) {
	m := [][]bool{
		{true, false, true},
		{false, false, false},
		{false, true, false},
	}
	fromM, err := bipartite.FromMatrix(m)
	require.NoError(t, err)
	fromL, err := bipartite.New(3, 3, [][]int{{0, 2}, nil, {1}})
	require.NoError(t, err)

	assert.Equal(t, fromL.Edges(), fromM.Edges())
	assert.Equal(t, fromL.AdjacencyLists(), fromM.AdjacencyLists())

	// mutating the source matrix must not leak into the graph
	m[1][1] = true
	assert.False(t, fromM.Adjacent(1, 1))
}

// TestEmptyGraphs covers zero-sized sides.
func TestEmptyGraphs(t *testing.T) {
	g, err := bipartite.New(0, 0, nil)
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Edges())

	g, err = bipartite.FromMatrix(nil)
	require.NoError(t, err)
	assert.Zero(t, g.XCount())
	assert.Zero(t, g.YCount())
}

// TestEdge_String renders 1-based labels.
func TestEdge_String(t *testing.T) {
	assert.Equal(t, "[x1, y3]", bipartite.Edge{X: 0, Y: 2}.String())
}

// TestAdjacent_PanicsOutOfRange documents the programmer-error contract.
func TestAdjacent_PanicsOutOfRange(t *testing.T) {
	g, err := bipartite.New(1, 1, [][]int{{0}})
	require.NoError(t, err)
	assert.Panics(t, func() { g.Adjacent(1, 0) })
	assert.Panics(t, func() { g.Adjacent(0, 1) })
}
