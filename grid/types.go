// Package grid defines the core types for the wall-grid cell model:
// directions, lifecycle states, coordinates and cells.
package grid

import "fmt"

// Direction identifies one of the four walls of a cell.
// The zero value is Right; wall arrays are indexed by Direction.
type Direction int

const (
	// Right is the wall toward x+1.
	Right Direction = iota
	// Left is the wall toward x-1.
	Left
	// Top is the wall toward y-1.
	Top
	// Bottom is the wall toward y+1.
	Bottom
)

// numDirections is the size of per-cell wall arrays.
const numDirections = 4

// Directions enumerates all four directions in their canonical order:
// Right, Left, Top, Bottom. All neighbor iteration in this module follows
// this order, which keeps traversals deterministic for fixed random draws.
var Directions = [numDirections]Direction{Right, Left, Top, Bottom}

// Opposite returns the direction facing d from the adjacent cell.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Top:
		return Bottom
	default:
		return Top
	}
}

// Delta returns the coordinate offset of the neighbor in direction d.
// The y axis grows downward: Top is (0,-1), Bottom is (0,+1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	case Top:
		return 0, -1
	default:
		return 0, 1
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// State is the observational lifecycle tag of a cell. It drives
// presentation only and has no effect on algorithm correctness, except
// that Start and End cells are skipped when painting the solution path.
type State uint8

const (
	// Untouched marks a cell the carve has not reached yet.
	Untouched State = iota
	// Current marks a cell on the active carve path.
	Current
	// Completed marks a cell whose subtree is fully explored.
	Completed
	// Start marks the maze entrance cell.
	Start
	// End marks the maze exit cell.
	End
	// Solution marks a cell on the solved path (corners excluded).
	Solution
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Untouched:
		return "Untouched"
	case Current:
		return "Current"
	case Completed:
		return "Completed"
	case Start:
		return "Start"
	case End:
		return "End"
	case Solution:
		return "Solution"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Coord is a cell position: X grows rightward, Y grows downward,
// (0,0) is the top-left cell.
type Coord struct {
	X, Y int
}

// String implements fmt.Stringer, e.g. "(2,5)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Cell is a single maze cell: four wall flags (true = wall present,
// passage blocked) indexed by Direction, plus its lifecycle State.
type Cell struct {
	Walls [numDirections]bool
	State State
}
