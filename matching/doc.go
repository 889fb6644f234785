// Package matching grows matchings in a *bipartite.Graph by alternating-tree
// search, seeding the search from every single edge and keeping the largest
// result.
//
// The package has three layers:
//
//   - Matching: an ordered edge set with an always-in-sync Size and O(1)
//     partner lookups on both sides.
//   - Augment: the alternating-tree engine described below.
//   - MaxMatching: the seed driver. Every edge of the graph, X ascending then
//     Y ascending, becomes a size-1 seed; the first seed reaching the largest
//     size wins.
//
// # Augment
//
// Given a seed matching and a SearchState (S ⊆ X reached, T ⊆ Y reached),
// Augment scans S for unvisited, unmatched vertices x and looks at each
// neighbor y in ascending order:
//
//	y matched to x2          grow the tree: x2 joins S, y joins T
//	y free, x free           Extend: add (x, y), recurse, continue with the next y
//	y free, x now matched    Swap: move x's edge to y, un-visit S except the
//	                         reset set, recurse, then stop scanning x
//
// The engine stops when no unvisited unmatched S vertex remains.
//
// # Options
//
//	opts := []matching.Option{
//	    matching.WithContext(ctx),      // cancellation between seeds
//	    matching.WithWorkers(4),        // evaluate seeds concurrently
//	    matching.WithVerbose(),         // debug log per seed and engine event
//	    matching.WithOnSeed(fn),        // observe (seed, size)
//	}
//	res, err := matching.MaxMatching(g, opts...)
//
// Seeds are independent given the read-only graph, so WithWorkers(n) fans them
// out with errgroup; ties still resolve to the lowest seed index, so the result
// equals the sequential one.
//
// # Complexity
//
//	Augment per seed:  O(|S|·Y·min(X,Y)) scans in the worst case.
//	MaxMatching:       |E| seeds × Augment.
//	Memory:            O(X + Y) per seed in flight.
//
// This is a study of the seed-from-every-edge design rather than an
// asymptotically optimal matcher; see Hopcroft–Karp for that.
//
// # Errors
//
//   - ErrGraphNil:           nil graph passed to MaxMatching.
//   - ErrOptionViolation:    invalid Option (e.g. negative workers).
//   - ErrInvariantViolation: a seed result broke the matching property; this
//     indicates a defect, never an input problem.
//   - ErrEdgeNotInGraph:     a result edge is absent from the graph (wraps
//     ErrInvariantViolation).
package matching
