// Package solve computes the unique shortest path through a finalized
// maze via breadth-first search.
//
// What:
//
//   - Solve walks only open passages (grid.HasPassage) from the end cell
//     toward the start cell, recording one parent index per discovered
//     cell; dequeuing the start stops the search and discards the rest of
//     the frontier.
//   - The path is reconstructed by following parents from start until the
//     parentless end cell, so it already reads start→end.
//   - Every interior path cell is tagged grid.Solution and streamed through
//     OnPathCell / OnCellState; the entrance and exit keep their tags.
//   - Endpoints default to the designated corners; WithStart / WithEnd
//     route between arbitrary cells.
//
// Why:
//
//   - A carved maze is a spanning tree: exactly one path exists between any
//     two cells, and it is necessarily the shortest — BFS finds it without
//     weights or heuristics.
//   - Re-solving the same grid is idempotent: neighbor enumeration follows
//     the canonical direction order and parent state is per-invocation.
//
// Complexity:
//
//   - Solve: O(W×H) time and memory.
//
// Errors:
//
//   - ErrGridNil: nil grid pointer.
//   - ErrNotFinalized: generation has not completed; rejected up front.
//   - ErrOptionViolation: an endpoint lies outside the grid.
//   - ErrDisconnected: start unreachable from end — the grid violates the
//     spanning-tree contract (corruption), surfaced rather than handled.
//   - context.Canceled / DeadlineExceeded: cancelled via WithContext.
package solve
