// Package carve defines tunable options, phases and error definitions
// for randomized depth-first maze carving.
package carve

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Sentinel errors for carve execution.
var (
	// ErrCarveDone is returned by Step once the carve has finalized.
	ErrCarveDone = errors.New("carve: maze already finalized")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("carve: invalid option supplied")

	// ErrPickOutOfRange is returned when a custom PickFn chooses an index
	// outside the candidate list.
	ErrPickOutOfRange = errors.New("carve: pick index out of range")
)

// Phase tracks generation progress: NotStarted → InProgress → Finalized.
type Phase int

const (
	// NotStarted means no cell has been visited yet.
	NotStarted Phase = iota
	// InProgress means the carve is advancing or backtracking.
	InProgress
	// Finalized means every cell is completed and the entrance and exit
	// openings have been cut; the grid is ready to solve.
	Finalized
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "NotStarted"
	case InProgress:
		return "InProgress"
	case Finalized:
		return "Finalized"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// PickFn chooses one index in [0,n) from the candidate-neighbor list.
// Candidates are enumerated in the canonical grid.Directions order, so a
// scripted PickFn pins the exact carve sequence deterministically.
type PickFn func(rng *rand.Rand, n int) int

// Option configures carve behavior via functional arguments.
// If an Option is invalid (e.g. an out-of-grid start cell), it is recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize carve execution.
type Options struct {
	// Ctx allows cancellation of Run between steps.
	Ctx context.Context

	// Rng is the randomness source for neighbor choice (and the start cell
	// unless WithStartAt is given). Must be uniform over candidates;
	// defaults to a time-seeded source, so two carves are not reproducible
	// unless a seeded Rng is injected.
	Rng *rand.Rand

	// Pick selects among candidate neighbors. Defaults to rng.Intn.
	Pick PickFn

	// OnCellState is called after every lifecycle change with the cell's
	// coordinates and its new state.
	OnCellState func(c grid.Coord, s grid.State)

	// OnWallRemoved is called after every wall removal, including the two
	// boundary openings cut at finalization.
	OnWallRemoved func(c grid.Coord, d grid.Direction)

	// startX, startY fix the first visited cell when startSet is true.
	startX, startY int
	startSet       bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - context.Background()
//   - time-seeded *rand.Rand
//   - uniform pick (rng.Intn)
//   - random start cell
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		Pick:          func(rng *rand.Rand, n int) int { return rng.Intn(n) },
		OnCellState:   func(grid.Coord, grid.State) {},
		OnWallRemoved: func(grid.Coord, grid.Direction) {},
	}
}

// WithContext sets a custom context for cancelling Run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRand injects a randomness source; pass a seeded source to make the
// carve deterministic under test.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rng = rng
		}
	}
}

// WithPickFn overrides the neighbor-choice policy. The function must
// return an index in [0,n); anything else aborts the carve with
// ErrPickOutOfRange.
func WithPickFn(fn PickFn) Option {
	return func(o *Options) {
		if fn != nil {
			o.Pick = fn
		}
	}
}

// WithStartAt fixes the first visited cell instead of drawing it from Rng.
// The start cell is cosmetic: the entrance and exit corners are designated
// at finalization regardless of where the walk began.
func WithStartAt(x, y int) Option {
	return func(o *Options) {
		if x < 0 || y < 0 {
			o.err = fmt.Errorf("%w: start cell (%d,%d) negative", ErrOptionViolation, x, y)
			return
		}
		o.startX, o.startY = x, y
		o.startSet = true
	}
}

// WithOnCellState registers a callback for lifecycle changes.
func WithOnCellState(fn func(c grid.Coord, s grid.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCellState = fn
		}
	}
}

// WithOnWallRemoved registers a callback for wall removals.
func WithOnWallRemoved(fn func(c grid.Coord, d grid.Direction)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnWallRemoved = fn
		}
	}
}
