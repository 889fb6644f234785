// SPDX-License-Identifier: MIT

package matching

import "github.com/katalvlaran/bimatch/bipartite"

// augmenter carries one seed's search: the shared read-only graph, the
// matching and tree being grown, and the reset set of X vertices whose
// visited mark survives a Swap restart.
type augmenter struct {
	g     *bipartite.Graph
	m     *Matching
	st    *SearchState
	reset map[int]struct{}
	hooks Hooks
}

// Augment grows m over g by alternating-tree search from state and returns m.
// state must hold the X pool minus the seed's saturated vertex (see NewPool);
// m and state are mutated in place.
//
// Steps (explore, re-entered after every Extend or Swap):
//  1. Scan S in order for an unvisited vertex x; none left → return.
//  2. x already matched → skip it without marking.
//  3. For each neighbor y of x (ascending):
//     a. y matched to x2 → x2 joins S (from y), y joins T (from x); continue.
//     b. y free, x matched earlier in this loop → Swap: move x's edge to y,
//     add x to reset, un-visit S \ reset, explore again, then leave x.
//     c. y free, x free → Extend: add (x, y), explore again.
//  4. All neighbors done without a Swap → mark x visited.
//
// Indices are trusted: out-of-range vertices panic.
//
// Complexity: every Extend raises Size and every Swap follows an Extend of
// the same vertex, so at most 2·min(X,Y) re-entries, each an O(|S|·Y) scan.
func Augment(g *bipartite.Graph, m *Matching, state *SearchState, hooks Hooks) *Matching {
	a := &augmenter{
		g:     g,
		m:     m,
		st:    state,
		reset: make(map[int]struct{}),
		hooks: hooks,
	}
	a.explore()

	return a.m
}

func (a *augmenter) explore() {
	// S may grow while we scan; newcomers are matched and get skipped.
	for j := 0; j < len(a.st.S); j++ {
		x := a.st.S[j]
		if x.Visited || a.m.HasX(x.Index) {
			continue
		}

		if swapped := a.scan(x); swapped {
			continue
		}
		x.Visited = true
	}
}

// scan processes the neighbors of x and reports whether a Swap consumed it.
func (a *augmenter) scan(x *Vertex) bool {
	for _, y := range a.g.Neighbors(x.Index) {
		if x2, saturated := a.m.PartnerOfY(y); saturated {
			a.reach(x2, y, x.Index)
			continue
		}

		// x may have been matched by an Extend earlier in this loop.
		if oldY, matched := a.m.PartnerOfX(x.Index); matched {
			a.m.ReplaceEdgeAt(x.Index, y)
			a.reset[x.Index] = struct{}{}
			a.st.unvisitExcept(a.reset)
			if a.hooks.OnSwap != nil {
				a.hooks.OnSwap(x.Index, oldY, y)
			}
			a.explore()

			return true
		}

		a.m.AddEdge(x.Index, y)
		if a.hooks.OnExtend != nil {
			a.hooks.OnExtend(x.Index, y)
		}
		a.explore()
	}

	return false
}

// reach pulls the matched pair (x2, y) into the tree.
func (a *augmenter) reach(x2, y, from int) {
	addedS := a.st.ensureS(x2, y)
	addedT := a.st.ensureT(y, from)
	if (addedS || addedT) && a.hooks.OnReach != nil {
		a.hooks.OnReach(x2, y, from)
	}
}
