package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/matching"
)

// mustGraph builds a graph from 0-based adjacency lists or fails the test.
func mustGraph(t testing.TB, xCount, yCount int, adj [][]int) *bipartite.Graph {
	t.Helper()
	g, err := bipartite.New(xCount, yCount, adj)
	require.NoError(t, err)

	return g
}

// maximumSize computes the true maximum matching size with Kuhn's DFS
// augmenting paths; used only as an upper bound in property tests.
func maximumSize(g *bipartite.Graph) int {
	matchY := make([]int, g.YCount())
	for y := range matchY {
		matchY[y] = -1
	}

	var try func(x int, seen []bool) bool
	try = func(x int, seen []bool) bool {
		for _, y := range g.Neighbors(x) {
			if seen[y] {
				continue
			}
			seen[y] = true
			if matchY[y] == -1 || try(matchY[y], seen) {
				matchY[y] = x
				return true
			}
		}
		return false
	}

	size := 0
	for x := 0; x < g.XCount(); x++ {
		if try(x, make([]bool, g.YCount())) {
			size++
		}
	}

	return size
}

// requireMaximal asserts no graph edge has both endpoints free.
func requireMaximal(t testing.TB, g *bipartite.Graph, m *matching.Matching) {
	t.Helper()
	for _, e := range g.Edges() {
		if !m.HasX(e.X) && !m.HasY(e.Y) {
			t.Fatalf("edge %v could still be added to %v", e, m.Edges())
		}
	}
}

// randomGraphs yields a deterministic family of small random graphs.
func randomGraphs(t testing.TB, count int) []*bipartite.Graph {
	t.Helper()
	out := make([]*bipartite.Graph, 0, count)
	for seed := int64(1); seed <= int64(count); seed++ {
		n1 := 1 + int(seed%6)
		n2 := 1 + int((seed*7)%6)
		p := 0.2 + float64(seed%5)*0.15
		g, err := bipartite.RandomSparse(n1, n2, p, seed)
		require.NoError(t, err)
		out = append(out, g)
	}

	return out
}
