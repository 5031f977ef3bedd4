// Package carve implements randomized depth-first maze generation
// (recursive backtracking) over a grid.Grid, expressed iteratively with an
// explicit path stack so the suspendable and immediate variants share one
// algorithm.
package carve

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/lvlmaze/grid"
)

// candidate pairs a neighbor cell index with the direction leading to it.
type candidate struct {
	idx int
	dir grid.Direction
}

// Carver drives one maze generation. It owns its grid exclusively until
// Finalized; abandoning an in-progress carve means dropping the Carver and
// allocating a fresh one. There is no partial resume.
type Carver struct {
	g         *grid.Grid
	opts      Options
	stack     *arraystack.Stack // active DFS path, cell indices
	visited   []bool            // pushed at least once (on stack or completed)
	completed int               // cells popped for good
	phase     Phase
}

// New allocates a sealed width×height grid and a Carver in NotStarted
// phase. Returns grid.ErrInvalidDimension for non-positive dimensions and
// ErrOptionViolation for invalid options (including an out-of-grid start).
// Complexity: O(W×H) time and memory.
func New(width, height int, opts ...Option) (*Carver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	if o.startSet && !g.InBounds(o.startX, o.startY) {
		return nil, fmt.Errorf("%w: start cell (%d,%d) outside %dx%d grid",
			ErrOptionViolation, o.startX, o.startY, width, height)
	}

	return &Carver{
		g:       g,
		opts:    o,
		stack:   arraystack.New(),
		visited: make([]bool, g.Size()),
	}, nil
}

// Grid exposes the grid under generation. Callers must not mutate it
// before Phase reports Finalized.
func (c *Carver) Grid() *grid.Grid { return c.g }

// Phase reports generation progress.
func (c *Carver) Phase() Phase { return c.phase }

// Step performs exactly one unit of work and reports whether the carve has
// finished. The first call pushes the start cell; each later call either
// carves into a random unvisited neighbor of the path head (advance) or
// pops a dead end (backtrack). The step completing the last cell also cuts
// the entrance and exit openings and latches the grid Finalized.
// Calling Step after that returns ErrCarveDone.
// Complexity: O(1) per call; O(W×H) calls to completion.
func (c *Carver) Step() (done bool, err error) {
	switch c.phase {
	case Finalized:
		return true, ErrCarveDone
	case NotStarted:
		start := c.startIndex()
		c.push(start)
		c.phase = InProgress
		return false, nil
	}

	head, _ := c.stack.Peek()
	cur := head.(int)

	// Candidate neighbors: neither completed nor on the path stack.
	var cands [4]candidate
	n := 0
	for _, d := range grid.Directions {
		if nb, ok := c.g.NeighborIndex(cur, d); ok && !c.visited[nb] {
			cands[n] = candidate{idx: nb, dir: d}
			n++
		}
	}

	if n > 0 {
		return false, c.advance(cur, cands[:n])
	}
	return c.backtrack(), nil
}

// Run loops Step until the maze is Finalized, checking the context once
// per step. On cancellation the whole Carver must be discarded.
// Complexity: O(W×H) time.
func (c *Carver) Run() error {
	for {
		select {
		case <-c.opts.Ctx.Done():
			return c.opts.Ctx.Err()
		default:
		}

		done, err := c.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Generate is the immediate variant: allocate, carve to completion and
// return the finalized grid.
func Generate(width, height int, opts ...Option) (*grid.Grid, error) {
	c, err := New(width, height, opts...)
	if err != nil {
		return nil, err
	}
	if err = c.Run(); err != nil {
		return nil, err
	}
	return c.g, nil
}

// startIndex resolves the first visited cell: fixed via WithStartAt or a
// uniform draw over all cells.
func (c *Carver) startIndex() int {
	if c.opts.startSet {
		return c.g.Index(c.opts.startX, c.opts.startY)
	}
	return c.opts.Rng.Intn(c.g.Size())
}

// push puts i on the path stack, marks it visited and Current.
func (c *Carver) push(i int) {
	c.stack.Push(i)
	c.visited[i] = true
	c.setState(i, grid.Current)
}

// advance picks one candidate uniformly, removes the shared wall pair
// atomically and pushes the chosen cell.
func (c *Carver) advance(cur int, cands []candidate) error {
	k := c.opts.Pick(c.opts.Rng, len(cands))
	if k < 0 || k >= len(cands) {
		return fmt.Errorf("%w: got %d of %d candidates", ErrPickOutOfRange, k, len(cands))
	}
	chosen := cands[k]
	if err := c.g.RemoveWallPair(cur, chosen.dir); err != nil {
		return fmt.Errorf("carve: remove wall pair at %v: %w", c.g.Coordinate(cur), err)
	}
	c.opts.OnWallRemoved(c.g.Coordinate(cur), chosen.dir)
	c.push(chosen.idx)
	return nil
}

// backtrack pops the dead-end path head and marks it Completed. The pop
// that completes the last cell triggers finalization, so the stack empties
// at exactly the moment the completed count reaches the cell count.
func (c *Carver) backtrack() (done bool) {
	head, _ := c.stack.Pop()
	i := head.(int)
	c.completed++
	c.setState(i, grid.Completed)

	if c.completed == c.g.Size() {
		c.finalize()
		return true
	}
	return false
}

// finalize designates the fixed corners: (0,0) becomes the entrance with
// its outward Left wall cut, (W-1,H-1) becomes the exit with its outward
// Right wall cut. These corners and walls are a convention, not an option.
func (c *Carver) finalize() {
	entrance := c.g.Index(0, 0)
	c.g.RemoveWall(entrance, grid.Left)
	c.opts.OnWallRemoved(c.g.Coordinate(entrance), grid.Left)
	c.setState(entrance, grid.Start)

	exit := c.g.Index(c.g.Width()-1, c.g.Height()-1)
	c.g.RemoveWall(exit, grid.Right)
	c.opts.OnWallRemoved(c.g.Coordinate(exit), grid.Right)
	c.setState(exit, grid.End)

	c.g.Finalize()
	c.phase = Finalized
}

// setState records a lifecycle change and notifies the state hook.
func (c *Carver) setState(i int, s grid.State) {
	c.g.SetState(i, s)
	c.opts.OnCellState(c.g.Coordinate(i), s)
}
