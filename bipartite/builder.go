// SPDX-License-Identifier: MIT
// Package: bimatch/bipartite
//
// builder.go — deterministic fixture constructors.
//
// Contract:
//   • Complete(n1, n2) emits every cross pair (x, y), x asc then y asc.
//   • RandomSparse(n1, n2, p, seed) runs one Bernoulli(p) trial per cross pair
//     in the same order, so a fixed seed always yields the same graph.
//   • Both return sentinel errors only; negative sizes → ErrNegativeCount,
//     p ∉ [0, 1] → ErrBadProbability.
//
// Complexity:
//   • Time:  O(n1·n2).
//   • Space: O(n1·n2) for the dense relation.

package bipartite

import (
	"fmt"
	"math/rand"
)

// File-local constants (no magic literals).
const (
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// Complete returns the complete bipartite graph K_{n1,n2}.
func Complete(n1, n2 int) (*Graph, error) {
	if n1 < 0 || n2 < 0 {
		return nil, fmt.Errorf("%s: n1=%d, n2=%d: %w", methodComplete, n1, n2, ErrNegativeCount)
	}

	g := newEmpty(n1, n2)
	for x := 0; x < n1; x++ {
		for y := 0; y < n2; y++ {
			g.adj[x][y] = true
		}
	}
	g.index()

	return g, nil
}

// RandomSparse samples a bipartite graph with n1 X vertices and n2 Y vertices,
// including each cross pair independently with probability p.
func RandomSparse(n1, n2 int, p float64, seed int64) (*Graph, error) {
	// 1) Validate parameters early: no allocation on invalid input.
	if n1 < 0 || n2 < 0 {
		return nil, fmt.Errorf("%s: n1=%d, n2=%d: %w", methodRandomSparse, n1, n2, ErrNegativeCount)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrBadProbability)
	}

	// 2) One trial per pair in stable (x asc, y asc) order.
	rng := rand.New(rand.NewSource(seed))
	g := newEmpty(n1, n2)
	for x := 0; x < n1; x++ {
		for y := 0; y < n2; y++ {
			if rng.Float64() < p {
				g.adj[x][y] = true
			}
		}
	}
	g.index()

	return g, nil
}
