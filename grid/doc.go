// Package grid models a rectangular maze as a flat, row-major slice of
// cells, each carrying four wall flags and an observational lifecycle tag.
//
// What:
//
//   - Grid owns width×height cells; neighbor lookup is O(1) index arithmetic.
//   - Direction (Right, Left, Top, Bottom) indexes per-cell wall arrays;
//     Directions fixes the canonical enumeration order.
//   - State (Untouched … Solution) tags a cell's lifecycle for presentation.
//   - Wall mutations come in atomic pairs: RemoveWallPair / AddWallPair
//     update both facing flags in one call, so adjacent cells never disagree
//     about the wall between them.
//   - RemoveWall opens a single boundary wall (maze entrance and exit).
//   - HasPassage answers "can I walk from here to there?" for adjacent cells.
//
// Why:
//
//   - Maze carving: the generator removes wall pairs along its random walk.
//   - Maze solving: the solver walks only HasPassage edges.
//   - Presentation: renderers read Coord + State change streams, never the
//     grid itself.
//
// Complexity:
//
//   - New:           O(W×H) time and memory.
//   - Index, Coordinate, NeighborIndex, wall operations, HasPassage: O(1).
//   - PassageCount:  O(W×H).
//
// Errors:
//
//   - ErrInvalidDimension: width or height below 1.
//   - ErrNoNeighbor: a wall-pair operation pointed outside the grid.
package grid
