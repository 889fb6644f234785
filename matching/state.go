package matching

// NoParent marks a tree root: a vertex not reached through the other side.
const NoParent = -1

// Vertex is a node of the alternating tree.
type Vertex struct {
	Index       int  // position within its own side (X or Y)
	Visited     bool // fully explored by the current pass
	ReachedFrom int  // opposite-side index it entered through, or NoParent
}

// NewPool returns every X vertex 0..xCount-1, unvisited and parentless,
// except the saturated one. Pass a negative saturated to keep all of them.
func NewPool(xCount, saturated int) []*Vertex {
	pool := make([]*Vertex, 0, xCount)
	for x := 0; x < xCount; x++ {
		if x == saturated {
			continue
		}
		pool = append(pool, &Vertex{Index: x, ReachedFrom: NoParent})
	}

	return pool
}

// SearchState holds the alternating sets S (X side) and T (Y side) of one
// seed's search. Both only grow; lookups by index are O(1).
type SearchState struct {
	S []*Vertex
	T []*Vertex

	inS map[int]*Vertex
	inT map[int]*Vertex
}

// NewSearchState starts a search with S = pool and T empty.
// The pool slice is adopted, not copied.
func NewSearchState(pool []*Vertex) *SearchState {
	st := &SearchState{
		S:   pool,
		T:   make([]*Vertex, 0),
		inS: make(map[int]*Vertex, len(pool)),
		inT: make(map[int]*Vertex),
	}
	for _, v := range pool {
		st.inS[v.Index] = v
	}

	return st
}

// LookupS returns the S vertex with X index x.
func (st *SearchState) LookupS(x int) (*Vertex, bool) {
	v, ok := st.inS[x]
	return v, ok
}

// LookupT returns the T vertex with Y index y.
func (st *SearchState) LookupT(y int) (*Vertex, bool) {
	v, ok := st.inT[y]
	return v, ok
}

// ensureS appends x to S (unvisited, reached from y) unless already present.
// Reports whether it was added.
func (st *SearchState) ensureS(x, y int) bool {
	if _, ok := st.inS[x]; ok {
		return false
	}
	v := &Vertex{Index: x, ReachedFrom: y}
	st.S = append(st.S, v)
	st.inS[x] = v

	return true
}

// ensureT appends y to T (unvisited, reached from x) unless already present.
func (st *SearchState) ensureT(y, x int) bool {
	if _, ok := st.inT[y]; ok {
		return false
	}
	v := &Vertex{Index: y, ReachedFrom: x}
	st.T = append(st.T, v)
	st.inT[y] = v

	return true
}

// unvisitExcept clears Visited on every S vertex whose index is not in keep.
func (st *SearchState) unvisitExcept(keep map[int]struct{}) {
	for _, v := range st.S {
		if _, skip := keep[v.Index]; !skip {
			v.Visited = false
		}
	}
}
