// Package solve defines tunable options and error definitions for
// breadth-first maze solving.
package solve

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvlmaze/grid"
)

// Sentinel errors for solve execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("solve: grid is nil")

	// ErrNotFinalized is returned when the grid's generation has not
	// completed; no partial solve is attempted.
	ErrNotFinalized = errors.New("solve: grid generation not finalized")

	// ErrDisconnected is returned when the start cell is unreachable from
	// the end cell. A correctly generated maze is a spanning tree, so this
	// signals a corrupted grid: a contract violation, not a runtime
	// condition to handle.
	ErrDisconnected = errors.New("solve: start unreachable from end")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solve: invalid option supplied")
)

// Option configures solve behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize solve execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Start and End override the designated corners. Defaults: Start is
	// the entrance (0,0) and End is the exit (W-1,H-1).
	Start, End       grid.Coord
	startSet, endSet bool

	// OnVisit is called for every cell dequeued from the frontier.
	OnVisit func(c grid.Coord)

	// OnPathCell is called once per painted path cell, in path order.
	// It is the step boundary for animated solution drawing.
	OnPathCell func(c grid.Coord)

	// OnCellState is called after every lifecycle change.
	OnCellState func(c grid.Coord, s grid.State)
}

// DefaultOptions returns an Options with sane defaults: background
// context, corner endpoints, no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnVisit:     func(grid.Coord) {},
		OnPathCell:  func(grid.Coord) {},
		OnCellState: func(grid.Coord, grid.State) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart overrides the path's start cell (default: the entrance corner).
func WithStart(c grid.Coord) Option {
	return func(o *Options) {
		o.Start = c
		o.startSet = true
	}
}

// WithEnd overrides the path's end cell (default: the exit corner).
func WithEnd(c grid.Coord) Option {
	return func(o *Options) {
		o.End = c
		o.endSet = true
	}
}

// WithOnVisit registers a callback for every dequeued cell.
func WithOnVisit(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnPathCell registers a callback for every painted path cell.
func WithOnPathCell(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPathCell = fn
		}
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

// Result holds the outcome of a solve: the unique shortest path through
// the maze, ordered start→end (both endpoints included).
type Result struct {
	Path []grid.Coord
}
