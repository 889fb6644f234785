package matching_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/bipartite"
	"github.com/katalvlaran/bimatch/matching"
)

// eventLog records engine events in order as short strings (0-based).
type eventLog []string

func (l *eventLog) hooks() matching.Hooks {
	return matching.Hooks{
		OnReach:  func(x2, y, from int) { *l = append(*l, fmt.Sprintf("reach x%d y%d from x%d", x2, y, from)) },
		OnExtend: func(x, y int) { *l = append(*l, fmt.Sprintf("extend x%d y%d", x, y)) },
		OnSwap:   func(x, oldY, newY int) { *l = append(*l, fmt.Sprintf("swap x%d y%d->y%d", x, oldY, newY)) },
	}
}

// augmentSeed runs the engine on a single seed edge the way the driver does.
func augmentSeed(g *bipartite.Graph, seed bipartite.Edge, h matching.Hooks) (*matching.Matching, *matching.SearchState) {
	m := matching.NewMatching(seed)
	st := matching.NewSearchState(matching.NewPool(g.XCount(), seed.X))

	return matching.Augment(g, m, st, h), st
}

// TestAugment_ExtendOnly grows a seed by plain extensions.
func TestAugment_ExtendOnly(t *testing.T) {
	// x0 – y0, x1 – y1, x2 – y2
	g := mustGraph(t, 3, 3, [][]int{{0}, {1}, {2}})
	var log eventLog

	m, st := augmentSeed(g, bipartite.Edge{X: 0, Y: 0}, log.hooks())

	assert.Equal(t, 3, m.Size)
	assert.Equal(t, []bipartite.Edge{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}, m.Edges())
	assert.Equal(t, eventLog{"extend x1 y1", "extend x2 y2"}, log)
	assert.Empty(t, st.T)
}

// TestAugment_MatchedEdgeEncounter grows the tree without touching the matching.
func TestAugment_MatchedEdgeEncounter(t *testing.T) {
	// x0 – y0 (seed), x1 – y0 only
	g := mustGraph(t, 2, 1, [][]int{{0}, {0}})
	var log eventLog

	m, st := augmentSeed(g, bipartite.Edge{X: 0, Y: 0}, log.hooks())

	assert.Equal(t, 1, m.Size)
	assert.Equal(t, eventLog{"reach x0 y0 from x1"}, log)

	// x0 entered S through y0, y0 entered T through x1
	x0, ok := st.LookupS(0)
	require.True(t, ok)
	assert.Equal(t, 0, x0.ReachedFrom)
	assert.False(t, x0.Visited)
	y0, ok := st.LookupT(0)
	require.True(t, ok)
	assert.Equal(t, 1, y0.ReachedFrom)

	// the root x1 was fully explored
	x1, ok := st.LookupS(1)
	require.True(t, ok)
	assert.True(t, x1.Visited)
	assert.Equal(t, matching.NoParent, x1.ReachedFrom)
}

// TestAugment_SwapFreesPartner shows a Swap releasing a Y vertex that an
// earlier, already visited X vertex then takes.
func TestAugment_SwapFreesPartner(t *testing.T) {
	// x0 – y0 (seed); x1 – y1, y2; x2 – y1
	g := mustGraph(t, 3, 3, [][]int{{0}, {1, 2}, {1}})
	var log eventLog

	m, _ := augmentSeed(g, bipartite.Edge{X: 0, Y: 0}, log.hooks())

	assert.Equal(t, eventLog{
		"extend x1 y1",
		"reach x1 y1 from x2",
		"swap x1 y1->y2",
		"extend x2 y1",
	}, log)
	assert.Equal(t, 3, m.Size)
	// Swap keeps the edge position
	assert.Equal(t, []bipartite.Edge{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}}, m.Edges())
}

// TestAugment_SwapWithoutGain keeps Size when nobody can use the freed vertex.
func TestAugment_SwapWithoutGain(t *testing.T) {
	// x0 – y0 (seed); x1 – y1, y2
	g := mustGraph(t, 2, 3, [][]int{{0}, {1, 2}})
	var log eventLog

	m, _ := augmentSeed(g, bipartite.Edge{X: 0, Y: 0}, log.hooks())

	assert.Equal(t, eventLog{"extend x1 y1", "swap x1 y1->y2"}, log)
	assert.Equal(t, []bipartite.Edge{{X: 0, Y: 0}, {X: 1, Y: 2}}, m.Edges())
	assert.Equal(t, 2, m.Size)
}

// TestAugment_SwapStopsScan checks that after a Swap the remaining neighbors
// of x are left alone: x1 moves to y2 once and never on to y3.
func TestAugment_SwapStopsScan(t *testing.T) {
	// x0 – y0 (seed); x1 – y1, y2, y3
	g := mustGraph(t, 2, 4, [][]int{{0}, {1, 2, 3}})
	var log eventLog

	m, st := augmentSeed(g, bipartite.Edge{X: 0, Y: 0}, log.hooks())

	assert.Equal(t, eventLog{"extend x1 y1", "swap x1 y1->y2"}, log)
	assert.Equal(t, []bipartite.Edge{{X: 0, Y: 0}, {X: 1, Y: 2}}, m.Edges())
	assert.False(t, m.HasY(3))

	// the swapped vertex is left unmarked
	x1, ok := st.LookupS(1)
	require.True(t, ok)
	assert.False(t, x1.Visited)
}

// TestAugment_SeedNotImproved reproduces a seed that blocks the only partner
// of another vertex: the engine does not re-route the seed edge.
func TestAugment_SeedNotImproved(t *testing.T) {
	// x0 – y0, y1; x1 – y0
	g := mustGraph(t, 2, 2, [][]int{{0, 1}, {0}})

	m, _ := augmentSeed(g, bipartite.Edge{X: 0, Y: 0}, matching.Hooks{})
	assert.Equal(t, 1, m.Size)

	m, _ = augmentSeed(g, bipartite.Edge{X: 0, Y: 1}, matching.Hooks{})
	assert.Equal(t, 2, m.Size)
}

// TestAugment_Properties checks every seed of many random graphs: the result
// is a valid matching inside the graph, no unmatched S vertex keeps a free
// neighbor, and the size never exceeds the true maximum.
func TestAugment_Properties(t *testing.T) {
	for gi, g := range randomGraphs(t, 60) {
		upper := maximumSize(g)
		for _, seed := range g.Edges() {
			m, st := augmentSeed(g, seed, matching.Hooks{})
			name := fmt.Sprintf("graph %d seed %v", gi, seed)

			require.NoError(t, m.Validate(g), name)
			require.LessOrEqual(t, m.Size, upper, name)
			require.GreaterOrEqual(t, m.Size, 1, name)

			for _, v := range st.S {
				if m.HasX(v.Index) {
					continue
				}
				for _, y := range g.Neighbors(v.Index) {
					require.True(t, m.HasY(y), "%s: x%d keeps free neighbor y%d", name, v.Index, y)
				}
			}
			requireMaximal(t, g, m)

			for _, v := range st.T {
				assert.NotEqual(t, matching.NoParent, v.ReachedFrom, name)
			}
		}
	}
}
