// Package solve finds the unique shortest path through a finalized maze
// by breadth-first search, reconstructing it via parent links.
package solve

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/katalvlaran/lvlmaze/grid"
)

// noParent marks a cell without a recorded BFS predecessor.
const noParent = -1

// walker encapsulates mutable BFS state for a single solve invocation.
// Parent links live here, not on the grid, so every solve starts clean.
type walker struct {
	g       *grid.Grid
	opts    Options
	queue   *arrayqueue.Queue
	visited []bool
	parent  []int
}

// Solve runs BFS over g's open passages and returns the shortest path
// between the designated corners (or the endpoints set via WithStart /
// WithEnd), ordered start→end. The search runs from end toward start, so
// the reconstructed path already reads in start→end order with no
// reversal step.
//
// Because a correctly carved maze is a spanning tree, the returned path is
// the single path between the endpoints and necessarily shortest. Every
// path cell except the entrance and exit is tagged grid.Solution.
//
// Returns ErrGridNil, ErrNotFinalized, ErrOptionViolation for invalid
// input, ErrDisconnected for a corrupted grid, or the context error on
// cancellation.
// Complexity: O(W×H) time and memory.
func Solve(g *grid.Grid, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.Finalized() {
		return nil, ErrNotFinalized
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.startSet {
		o.Start = grid.Coord{X: 0, Y: 0}
	}
	if !o.endSet {
		o.End = grid.Coord{X: g.Width() - 1, Y: g.Height() - 1}
	}
	if !g.InBounds(o.Start.X, o.Start.Y) || !g.InBounds(o.End.X, o.End.Y) {
		return nil, fmt.Errorf("%w: endpoints %v→%v outside %dx%d grid",
			ErrOptionViolation, o.Start, o.End, g.Width(), g.Height())
	}

	size := g.Size()
	w := &walker{
		g:       g,
		opts:    o,
		queue:   arrayqueue.New(),
		visited: make([]bool, size),
		parent:  make([]int, size),
	}
	for i := range w.parent {
		w.parent[i] = noParent
	}

	// Seed the frontier with the end cell and search toward start.
	end := g.Index(o.End.X, o.End.Y)
	start := g.Index(o.Start.X, o.Start.Y)
	w.visited[end] = true
	w.queue.Enqueue(end)

	if err := w.search(start); err != nil {
		return nil, err
	}
	return w.reconstruct(start, end), nil
}

// search expands the frontier until start is dequeued. The remaining
// frontier is discarded at that point; nothing beyond start matters.
func (w *walker) search(start int) error {
	for !w.queue.Empty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		head, _ := w.queue.Dequeue()
		cur := head.(int)
		w.opts.OnVisit(w.g.Coordinate(cur))

		if cur == start {
			return nil
		}
		for _, d := range grid.Directions {
			if !w.g.HasPassage(cur, d) {
				continue
			}
			nb, _ := w.g.NeighborIndex(cur, d)
			if !w.visited[nb] {
				w.visited[nb] = true
				w.parent[nb] = cur
				w.queue.Enqueue(nb)
			}
		}
	}
	return ErrDisconnected
}

// reconstruct follows parent links from start until the parentless cell
// (the end, where the search began), painting every interior path cell as
// Solution. The entrance and exit keep their Start/End tags.
func (w *walker) reconstruct(start, end int) *Result {
	path := make([]grid.Coord, 0, w.g.Size())
	for cur := start; ; {
		coord := w.g.Coordinate(cur)
		path = append(path, coord)
		if cur != start && cur != end {
			w.g.SetState(cur, grid.Solution)
			w.opts.OnCellState(coord, grid.Solution)
			w.opts.OnPathCell(coord)
		}
		next := w.parent[cur]
		if next == noParent {
			break
		}
		cur = next
	}
	return &Result{Path: path}
}
