// Package lvlmaze generates perfect mazes and solves them — a small,
// hook-driven toolkit for carving spanning-tree grid labyrinths and
// finding the one path through them.
//
// 🚀 What is lvlmaze?
//
//	A library that brings together:
//		• grid/  — the wall-grid cell model: directions, lifecycle states, atomic wall pairs
//		• carve/ — randomized depth-first carving (recursive backtracking), stepwise or immediate
//		• solve/ — breadth-first shortest path with parent-link reconstruction
//		• maze/  — a host facade wiring generation, solving and a Renderer event stream
//
// ✨ Why choose lvlmaze?
//
//   - Perfect mazes, guaranteed – every carve yields a spanning tree:
//     connected, acyclic, exactly one path between any two cells
//   - Suspendable – one Step() per unit of work, so a host can interleave
//     rendering and input between steps; Run() resolves immediately
//   - Observable – OnCellState / OnWallRemoved hooks stream every mutation
//     to your presentation layer, which never writes back
//   - Deterministic under test – inject a seeded *rand.Rand or script the
//     neighbor pick to pin exact carve sequences
//
// Quick ASCII example (a carved 2×2 maze and its solution):
//
//	 →┌───┬───┐         start (0,0), entrance on its left wall,
//	  │ ▒ │ ▒ │         end (1,1), exit on its right wall,
//	  ├───┘   ├→        solution path (0,0) (1,0) (1,1).
//	  │       │
//	  └───┴───┘
//
// Dive into the per-package doc.go files for tutorials, complexity notes
// and the full option reference.
//
//	go get github.com/katalvlaran/lvlmaze
package lvlmaze
