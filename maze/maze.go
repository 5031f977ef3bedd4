// Package maze is the host-facing facade: it wires generation, solving
// and a presentation Renderer into one object with the two host commands,
// generate and solve.
package maze

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/solve"
)

// Sentinel errors for facade misuse.
var (
	// ErrStepwise is returned by Generate on a stepwise maze; drive Step.
	ErrStepwise = errors.New("maze: stepwise mode, drive generation via Step")
	// ErrNotStepwise is returned by Step on an immediate-mode maze.
	ErrNotStepwise = errors.New("maze: immediate mode, use Generate")
)

// Renderer receives the core→presentation event stream: every lifecycle
// change and every wall removal, in mutation order. Implementations render
// these however they like; they get no write access back into the core.
type Renderer interface {
	CellStateChanged(c grid.Coord, s grid.State)
	WallRemoved(c grid.Coord, d grid.Direction)
}

// Option configures a Maze via functional arguments.
type Option func(*Options)

// Options holds the host configuration for one maze.
type Options struct {
	// Renderer, if non-nil, receives all carve and solve events.
	Renderer Renderer

	// Stepwise selects the suspendable generation variant: the host calls
	// Step once per unit of work instead of Generate. Both variants carve
	// the identical cell graph for the same random draws.
	Stepwise bool

	// Rng overrides the generator's randomness source.
	Rng *rand.Rand
}

// DefaultOptions returns an Options with no renderer, immediate-mode
// generation and the generator's own time-seeded randomness.
func DefaultOptions() Options {
	return Options{}
}

// WithRenderer attaches the presentation collaborator.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		o.Renderer = r
	}
}

// WithStepwise selects suspendable generation.
func WithStepwise() Option {
	return func(o *Options) {
		o.Stepwise = true
	}
}

// WithRand injects a randomness source; pass a seeded source for
// reproducible mazes.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rng = rng
		}
	}
}

// Maze ties one generation and its solves together. Width and height are
// free in principle; dimensions between 5 and 30 are the practical range
// this library is tuned for. A Maze is single-owner and not goroutine-safe;
// to abandon an in-progress generation, drop the Maze and make a new one.
// There is no partial resume.
type Maze struct {
	carver *carve.Carver
	opts   Options
}

// New allocates a width×height maze ready to generate. Returns
// grid.ErrInvalidDimension for non-positive dimensions.
func New(width, height int, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	carveOpts := make([]carve.Option, 0, 3)
	if o.Rng != nil {
		carveOpts = append(carveOpts, carve.WithRand(o.Rng))
	}
	if o.Renderer != nil {
		carveOpts = append(carveOpts,
			carve.WithOnCellState(o.Renderer.CellStateChanged),
			carve.WithOnWallRemoved(o.Renderer.WallRemoved),
		)
	}
	c, err := carve.New(width, height, carveOpts...)
	if err != nil {
		return nil, err
	}
	return &Maze{carver: c, opts: o}, nil
}

// Grid exposes the underlying grid, e.g. for inspection once Finalized.
func (m *Maze) Grid() *grid.Grid { return m.carver.Grid() }

// Phase reports generation progress.
func (m *Maze) Phase() carve.Phase { return m.carver.Phase() }

// Generate runs the immediate variant to completion. On a stepwise maze it
// refuses with ErrStepwise: the host owns the step loop there.
func (m *Maze) Generate() error {
	if m.opts.Stepwise {
		return ErrStepwise
	}
	return m.carver.Run()
}

// Step performs one unit of generation work in stepwise mode and reports
// whether the maze is finalized. Returns ErrNotStepwise in immediate mode.
func (m *Maze) Step() (done bool, err error) {
	if !m.opts.Stepwise {
		return false, ErrNotStepwise
	}
	return m.carver.Step()
}

// Solve finds the entrance→exit path of the generated maze, streaming
// Solution paint events to the renderer. Valid only once generation has
// finalized; surfaces solve.ErrNotFinalized otherwise.
func (m *Maze) Solve() (*solve.Result, error) {
	solveOpts := make([]solve.Option, 0, 1)
	if m.opts.Renderer != nil {
		solveOpts = append(solveOpts, solve.WithOnCellState(m.opts.Renderer.CellStateChanged))
	}
	return solve.Solve(m.carver.Grid(), solveOpts...)
}
