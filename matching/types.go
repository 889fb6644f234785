// SPDX-License-Identifier: MIT

package matching

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bimatch/bipartite"
)

// Sentinel errors for matching operations.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")

	// ErrInvariantViolation signals a broken matching property or a Size out
	// of sync with the edge list.
	ErrInvariantViolation = errors.New("matching: invariant violation")

	// ErrEdgeNotInGraph signals a matching edge absent from the graph.
	ErrEdgeNotInGraph = fmt.Errorf("%w: edge not in graph", ErrInvariantViolation)
)

// Hooks observe engine events. Nil fields are skipped.
// With more than one worker they are called concurrently from several seeds.
type Hooks struct {
	// OnReach is called on a matched edge encounter: X vertex x2 (matched to y)
	// and Y vertex y were pulled into the tree from X vertex from.
	OnReach func(x2, y, from int)

	// OnExtend is called after edge (x, y) was added.
	OnExtend func(x, y int)

	// OnSwap is called after x's edge moved from oldY to newY.
	OnSwap func(x, oldY, newY int)
}

// Option configures MaxMatching via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for MaxMatching.
type Options struct {
	// Ctx is checked before every seed.
	Ctx context.Context

	// Workers is the number of seeds evaluated concurrently; 1 runs sequentially.
	Workers int

	// Logger receives a Debug entry per seed and per engine event.
	Logger logrus.FieldLogger

	// OnSeed is called once per seed with the size of its result.
	OnSeed func(seed bipartite.Edge, size int)

	// Hooks are forwarded to every Augment run.
	Hooks Hooks

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a single worker (sequential, deterministic hook order)
//   - a logger that discards everything
//   - no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Logger:  discardLogger(),
		OnSeed:  func(bipartite.Edge, int) {},
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets how many seeds run concurrently.
//
//	n > 0: n workers
//	n == 0: runtime.GOMAXPROCS(0) workers
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithVerbose logs every seed and engine event to stderr at Debug level.
func WithVerbose() Option {
	return func(o *Options) {
		l := logrus.New()
		l.SetOutput(os.Stderr)
		l.SetLevel(logrus.DebugLevel)
		o.Logger = l
	}
}

// WithOnSeed registers a callback run after each seed completes.
func WithOnSeed(fn func(seed bipartite.Edge, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSeed = fn
		}
	}
}

// WithHooks registers engine event callbacks, replacing any set before.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = h
	}
}

// WithOnReach sets Hooks.OnReach.
func WithOnReach(fn func(x2, y, from int)) Option {
	return func(o *Options) {
		o.Hooks.OnReach = fn
	}
}

// WithOnExtend sets Hooks.OnExtend.
func WithOnExtend(fn func(x, y int)) Option {
	return func(o *Options) {
		o.Hooks.OnExtend = fn
	}
}

// WithOnSwap sets Hooks.OnSwap.
func WithOnSwap(fn func(x, oldY, newY int)) Option {
	return func(o *Options) {
		o.Hooks.OnSwap = fn
	}
}

// Result is the outcome of MaxMatching.
//   - Matching: the best matching found, independent of any search state.
//   - Seed: the edge whose search produced it (valid only if HasSeed).
//   - SeedsTried: number of seeds evaluated.
type Result struct {
	Matching   *Matching
	Seed       bipartite.Edge
	HasSeed    bool
	SeedsTried int
}
