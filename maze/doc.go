// Package maze exposes the two host commands — generate and solve — and
// the presentation boundary of the library.
//
// What:
//
//   - Maze wraps one carve.Carver and its grid: New allocates, Generate
//     (immediate) or Step (suspendable) carves, Solve finds the path.
//   - Renderer is the core→presentation collaborator: it receives every
//     (coordinates, new state) and (coordinates, direction) event as the
//     core mutates, and has no write access back.
//   - Host configuration is just width, height and the stepwise flag;
//     dimensions of 5–30 are the practical sweet spot (not enforced).
//
// Why:
//
//   - Game loops: attach a Renderer, pick WithStepwise, and call Step once
//     per frame for animated carving; Solve paints the answer afterwards.
//   - Headless use: skip the renderer, Generate, Solve, read Result.Path.
//
// Concurrency:
//
//   - Single-threaded by design. The grid is exclusively owned by whichever
//     process is active; generation must finalize before Solve, and one
//     solve runs at a time. Abandoning an in-progress generation means
//     dropping the Maze — no partial resume, no timeouts.
//
// Errors:
//
//   - grid.ErrInvalidDimension: width or height below 1.
//   - ErrStepwise / ErrNotStepwise: the wrong drive command for the mode.
//   - solve.ErrNotFinalized: Solve before generation finalized.
//   - solve.ErrDisconnected: corrupted grid; see the solve package.
package maze
