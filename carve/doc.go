// Package carve generates perfect mazes by randomized depth-first search
// (recursive backtracking) over a grid.Grid.
//
// What:
//
//   - Carver walks the grid with an explicit path stack: advance carves the
//     wall pair toward a uniformly chosen unvisited neighbor; a dead end
//     backtracks one cell and marks it Completed.
//   - One Step() is exactly one advance or one backtrack, so a host can
//     interleave rendering and input between steps; Run() resolves the same
//     algorithm immediately. For identical random draws both produce the
//     identical cell graph.
//   - The step completing the last cell finalizes the maze: cell (0,0)
//     becomes the entrance (outward Left wall cut) and cell (W-1,H-1) the
//     exit (outward Right wall cut), by fixed convention.
//   - Every wall removal and lifecycle change is streamed through the
//     OnWallRemoved / OnCellState hooks.
//
// Why:
//
//   - Perfect mazes: the carved passages form a spanning tree — connected,
//     acyclic, exactly W×H-1 open wall pairs, one path between any two cells.
//   - Game hosts: drive Step() from a frame loop for animated generation.
//   - Testing: inject a seeded Rng, or script PickFn over the canonical
//     Right/Left/Top/Bottom candidate order, to pin exact carve sequences.
//
// Complexity:
//
//   - Step: O(1). Run / Generate: O(W×H) time, O(W×H) memory
//     (each cell is pushed and popped exactly once).
//
// Options:
//
//   - WithRand(rng): randomness source (time-seeded by default).
//   - WithPickFn(fn): neighbor-choice policy; default uniform rng.Intn.
//   - WithStartAt(x, y): fix the first visited cell (default: random draw;
//     cosmetic either way, corners are designated at finalization).
//   - WithContext(ctx): cancellation between steps in Run.
//   - WithOnCellState(fn), WithOnWallRemoved(fn): presentation hooks.
//
// Errors:
//
//   - grid.ErrInvalidDimension: width or height below 1.
//   - ErrOptionViolation: invalid option (e.g. start cell outside the grid).
//   - ErrPickOutOfRange: custom PickFn chose outside [0,n).
//   - ErrCarveDone: Step called after finalization.
//   - context.Canceled / DeadlineExceeded: Run cancelled via context.
package carve
