// Package bimatch finds maximum matchings in bipartite graphs by seeding an
// alternating-tree (augmenting-path) search from every single edge and
// keeping the largest result.
//
// What is in here?
//
//	bipartite/        — immutable X/Y graph, sorted neighbor lists, fixture builders
//	matching/         — Matching, SearchState, the Augment engine and the MaxMatching driver
//	internal/graphio/ — operator dialogue and YAML input; text and YAML reports
//	internal/cli/     — cobra commands behind cmd/bimatch
//
// Quick ASCII example:
//
//	x1 ─── y1
//	      ╱
//	x2 ─── y2
//
// has the maximum matching {(x1,y1), (x2,y2)}.
//
// The seed-from-every-edge design is studied as is: it costs one search per
// edge, and among equally large results the first seed wins.
//
//	go install github.com/katalvlaran/bimatch/cmd/bimatch@latest
package bimatch
