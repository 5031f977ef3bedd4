// File: solve/example_test.go
package solve_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/solve"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve carves a 2×2 maze deterministically and walks its one path.
// Scenario:
//
//   - Start the carve at (0,0) and always take the first candidate in the
//     canonical Right/Left/Top/Bottom order: the walk carves
//     (0,0)→(1,0)→(1,1)→(0,1), leaving (0,0)↔(0,1) walled.
//   - The only route from entrance to exit is therefore through (1,0).
//
// Complexity: O(W·H) carve + O(W·H) solve.
func ExampleSolve() {
	g, err := carve.Generate(2, 2,
		carve.WithStartAt(0, 0),
		carve.WithPickFn(func(_ *rand.Rand, _ int) int { return 0 }),
	)
	if err != nil {
		fmt.Println("carve:", err)
		return
	}

	res, err := solve.Solve(g)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Println("path:", res.Path)

	// Output:
	// path: [(0,0) (1,0) (1,1)]
}
