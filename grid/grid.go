package grid

// Grid owns all width×height cells of a maze in a flat row-major slice,
// so neighbor lookup is O(1) index arithmetic. A wall between two adjacent
// cells is always consistent from both sides: pair operations update both
// facing flags in the same call.
type Grid struct {
	width, height int
	cells         []Cell
	finalized     bool
}

// New allocates a width×height grid with every wall present and every
// cell Untouched. Returns ErrInvalidDimension (before any allocation)
// if width < 1 or height < 1.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimension
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Walls: [numDirections]bool{true, true, true, true}}
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the total cell count, width×height.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate is the inverse of Index.
// Complexity: O(1).
func (g *Grid) Coordinate(i int) Coord {
	return Coord{X: i % g.width, Y: i / g.width}
}

// Cell returns a copy of the cell at index i.
func (g *Grid) Cell(i int) Cell {
	return g.cells[i]
}

// SetState overwrites the lifecycle tag of the cell at index i.
func (g *Grid) SetState(i int, s State) {
	g.cells[i].State = s
}

// NeighborIndex returns the index of the cell adjacent to i in direction d,
// or ok=false if that step would leave the grid.
// Complexity: O(1).
func (g *Grid) NeighborIndex(i int, d Direction) (int, bool) {
	c := g.Coordinate(i)
	dx, dy := d.Delta()
	nx, ny := c.X+dx, c.Y+dy
	if !g.InBounds(nx, ny) {
		return 0, false
	}
	return g.Index(nx, ny), true
}

// RemoveWallPair clears the wall of cell i facing d and the opposing wall
// of the adjacent cell, as a single atomic update. Returns ErrNoNeighbor
// if d points outside the grid; use RemoveWall for boundary openings.
// Complexity: O(1).
func (g *Grid) RemoveWallPair(i int, d Direction) error {
	n, ok := g.NeighborIndex(i, d)
	if !ok {
		return ErrNoNeighbor
	}
	g.cells[i].Walls[d] = false
	g.cells[n].Walls[d.Opposite()] = false
	return nil
}

// AddWallPair restores the wall of cell i facing d and the opposing wall
// of the adjacent cell, as a single atomic update. The counterpart of
// RemoveWallPair, useful for diagnostics and corruption scenarios in tests.
// Complexity: O(1).
func (g *Grid) AddWallPair(i int, d Direction) error {
	n, ok := g.NeighborIndex(i, d)
	if !ok {
		return ErrNoNeighbor
	}
	g.cells[i].Walls[d] = true
	g.cells[n].Walls[d.Opposite()] = true
	return nil
}

// RemoveWall clears only cell i's own wall facing d. Intended for the two
// boundary openings (entrance and exit), where no adjacent cell exists.
func (g *Grid) RemoveWall(i int, d Direction) {
	g.cells[i].Walls[d] = false
}

// HasPassage reports whether cell i and its neighbor in direction d are
// connected by an open passage, i.e. both facing walls are cleared.
// Returns false at the grid boundary.
// Complexity: O(1).
func (g *Grid) HasPassage(i int, d Direction) bool {
	n, ok := g.NeighborIndex(i, d)
	if !ok {
		return false
	}
	return !g.cells[i].Walls[d] && !g.cells[n].Walls[d.Opposite()]
}

// PassageCount counts the open internal wall-pairs by scanning each cell's
// Right and Bottom sides, so every adjacent pair is inspected exactly once.
// A perfect maze over W×H cells has exactly W×H-1 passages.
// Complexity: O(W×H).
func (g *Grid) PassageCount() int {
	count := 0
	for i := range g.cells {
		if g.HasPassage(i, Right) {
			count++
		}
		if g.HasPassage(i, Bottom) {
			count++
		}
	}
	return count
}

// Finalize latches the grid as fully generated. Called by the generator
// once carving completes; the solver refuses grids that are not finalized.
func (g *Grid) Finalize() {
	g.finalized = true
}

// Finalized reports whether generation has completed on this grid.
func (g *Grid) Finalized() bool {
	return g.finalized
}
