// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bimatch/bipartite"
)

// MaxMatching seeds Augment from every edge of g (X ascending, then Y
// ascending) and returns the largest matching produced. Among seeds reaching
// the same size the first one wins, with or without WithWorkers.
//
// A graph without edges yields an empty matching with HasSeed == false.
//
// Steps:
//  1. Apply options; ErrOptionViolation on invalid ones.
//  2. Reject a nil graph with ErrGraphNil.
//  3. For each seed edge (x, y):
//     a. Check ctx for cancellation.
//     b. Run Augment on {(x, y)} with S = X \ {x}.
//     c. Validate the result against g (ErrInvariantViolation on defect).
//     d. Keep a Clone if strictly larger than the best so far.
//
// Complexity: |E| × Augment; memory O(X + Y) per worker plus the best copy.
func MaxMatching(g *bipartite.Graph, opts ...Option) (*Result, error) {
	// 1) Gather options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}

	seeds := g.Edges()
	if len(seeds) == 0 {
		o.Logger.Debug("graph has no edges")
		return &Result{Matching: NewMatching()}, nil
	}

	// 3) Try every seed
	if o.Workers > 1 {
		return parallelSeeds(g, seeds, o)
	}

	return sequentialSeeds(g, seeds, o)
}

func sequentialSeeds(g *bipartite.Graph, seeds []bipartite.Edge, o Options) (*Result, error) {
	res := &Result{Matching: NewMatching()}
	for _, seed := range seeds {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("MaxMatching: %w", err)
		}

		m, err := runSeed(g, seed, o)
		if err != nil {
			return nil, err
		}
		res.SeedsTried++

		// strict > keeps the first seed among ties
		if m.Size > res.Matching.Size {
			res.Matching = m.Clone()
			res.Seed = seed
			res.HasSeed = true
		}
	}

	o.Logger.WithFields(logrus.Fields{"size": res.Matching.Size, "seed": res.Seed.String()}).Debug("best matching")

	return res, nil
}

func parallelSeeds(g *bipartite.Graph, seeds []bipartite.Edge, o Options) (*Result, error) {
	grp, ctx := errgroup.WithContext(o.Ctx)
	grp.SetLimit(o.Workers)

	var (
		mu      sync.Mutex
		best    *Matching
		bestIdx int
		tried   int
	)
	for i, seed := range seeds {
		i, seed := i, seed
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("MaxMatching: %w", err)
			}

			m, err := runSeed(g, seed, o)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			tried++
			// the lowest index wins among equal sizes, as in the sequential order
			if best == nil || m.Size > best.Size || (m.Size == best.Size && i < bestIdx) {
				best = m.Clone()
				bestIdx = i
			}

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	o.Logger.WithFields(logrus.Fields{"size": best.Size, "seed": seeds[bestIdx].String(), "workers": o.Workers}).
		Debug("best matching")

	return &Result{
		Matching:   best,
		Seed:       seeds[bestIdx],
		HasSeed:    true,
		SeedsTried: tried,
	}, nil
}

// runSeed grows the singleton matching {seed} and validates the outcome.
func runSeed(g *bipartite.Graph, seed bipartite.Edge, o Options) (*Matching, error) {
	m := NewMatching(seed)
	st := NewSearchState(NewPool(g.XCount(), seed.X))

	log := o.Logger.WithField("seed", seed.String())
	out := Augment(g, m, st, tracedHooks(log, o.Hooks))

	if err := out.Validate(g); err != nil {
		return nil, fmt.Errorf("MaxMatching: seed %v: %w", seed, err)
	}

	log.WithFields(logrus.Fields{"size": out.Size, "reached_x": len(st.S), "reached_y": len(st.T)}).Debug("seed done")
	o.OnSeed(seed, out.Size)

	return out, nil
}

// tracedHooks wraps user hooks with debug logging of each engine event.
func tracedHooks(log logrus.FieldLogger, user Hooks) Hooks {
	return Hooks{
		OnReach: func(x2, y, from int) {
			log.WithFields(logrus.Fields{"x": x2 + 1, "y": y + 1, "from": from + 1}).Debug("reach")
			if user.OnReach != nil {
				user.OnReach(x2, y, from)
			}
		},
		OnExtend: func(x, y int) {
			log.WithFields(logrus.Fields{"x": x + 1, "y": y + 1}).Debug("extend")
			if user.OnExtend != nil {
				user.OnExtend(x, y)
			}
		},
		OnSwap: func(x, oldY, newY int) {
			log.WithFields(logrus.Fields{"x": x + 1, "from_y": oldY + 1, "to_y": newY + 1}).Debug("swap")
			if user.OnSwap != nil {
				user.OnSwap(x, oldY, newY)
			}
		},
	}
}
