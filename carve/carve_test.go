package carve_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/grid"
)

// firstCandidate always picks candidate 0, making the walk fully
// deterministic under the canonical Right/Left/Top/Bottom ordering.
func firstCandidate(_ *rand.Rand, _ int) int { return 0 }

// reachableCells flood-fills from cell 0 over open passages and returns
// the number of cells reached.
func reachableCells(g *grid.Grid) int {
	seen := make([]bool, g.Size())
	seen[0] = true
	frontier := []int{0}
	count := 1
	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		for _, d := range grid.Directions {
			if !g.HasPassage(cur, d) {
				continue
			}
			nb, _ := g.NeighborIndex(cur, d)
			if !seen[nb] {
				seen[nb] = true
				count++
				frontier = append(frontier, nb)
			}
		}
	}
	return count
}

func TestNew_InvalidDimension(t *testing.T) {
	_, err := carve.New(0, 5)
	assert.ErrorIs(t, err, grid.ErrInvalidDimension)
	_, err = carve.New(5, -1)
	assert.ErrorIs(t, err, grid.ErrInvalidDimension)
}

func TestNew_OptionViolation(t *testing.T) {
	_, err := carve.New(3, 3, carve.WithStartAt(-1, 0))
	assert.ErrorIs(t, err, carve.ErrOptionViolation)
	_, err = carve.New(3, 3, carve.WithStartAt(3, 0))
	assert.ErrorIs(t, err, carve.ErrOptionViolation)
}

// TestGenerate_SpanningTree asserts the perfect-maze properties over the
// typical dimension range: exactly W×H-1 open pairs, full connectivity,
// and the fixed entrance and exit openings.
func TestGenerate_SpanningTree(t *testing.T) {
	cases := []struct{ w, h int }{
		{2, 2}, {5, 5}, {9, 4}, {30, 30},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%dx%d", tc.w, tc.h), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(tc.w*100 + tc.h)))
			g, err := carve.Generate(tc.w, tc.h, carve.WithRand(rng))
			require.NoError(t, err)

			size := tc.w * tc.h
			assert.Equal(t, size-1, g.PassageCount(), "open pair count")
			assert.Equal(t, size, reachableCells(g), "connectivity")
			assert.True(t, g.Finalized())

			entrance := g.Cell(g.Index(0, 0))
			assert.False(t, entrance.Walls[grid.Left], "entrance opening")
			assert.Equal(t, grid.Start, entrance.State)

			exit := g.Cell(g.Index(tc.w-1, tc.h-1))
			assert.False(t, exit.Walls[grid.Right], "exit opening")
			assert.Equal(t, grid.End, exit.State)
		})
	}
}

// TestGenerate_EventCounts checks the hook stream: one Current and one
// Completed per cell (entrance/exit re-tagged afterwards), and W×H-1
// carved pairs plus the two boundary openings.
func TestGenerate_EventCounts(t *testing.T) {
	const w, h = 6, 7
	states := make(map[grid.State]int)
	walls := 0
	_, err := carve.Generate(w, h,
		carve.WithRand(rand.New(rand.NewSource(7))),
		carve.WithOnCellState(func(_ grid.Coord, s grid.State) { states[s]++ }),
		carve.WithOnWallRemoved(func(grid.Coord, grid.Direction) { walls++ }),
	)
	require.NoError(t, err)

	assert.Equal(t, w*h, states[grid.Current])
	assert.Equal(t, w*h, states[grid.Completed])
	assert.Equal(t, 1, states[grid.Start])
	assert.Equal(t, 1, states[grid.End])
	assert.Equal(t, (w*h-1)+2, walls)
}

// TestStepwiseMatchesImmediate verifies the suspendable and immediate
// variants produce the identical cell graph for the same random draws.
func TestStepwiseMatchesImmediate(t *testing.T) {
	const w, h, seed = 12, 8, 42

	immediate, err := carve.Generate(w, h,
		carve.WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)

	stepper, err := carve.New(w, h,
		carve.WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	assert.Equal(t, carve.NotStarted, stepper.Phase())

	steps := 0
	for {
		done, stepErr := stepper.Step()
		require.NoError(t, stepErr)
		steps++
		if done {
			break
		}
	}
	// One push per cell, one pop per cell: 2·W·H steps in total.
	assert.Equal(t, 2*w*h, steps)
	assert.Equal(t, carve.Finalized, stepper.Phase())

	stepped := stepper.Grid()
	for i := 0; i < immediate.Size(); i++ {
		assert.Equal(t, immediate.Cell(i).Walls, stepped.Cell(i).Walls,
			"cell %v walls", immediate.Coordinate(i))
	}
}

// TestStep_Scripted2x2 pins the exact carve semantics: starting at (0,0)
// and always taking the first candidate (Right, Left, Top, Bottom order),
// the walk must carve (0,0)→(1,0)→(1,1)→(0,1) and leave the (0,0)↔(0,1)
// wall in place.
func TestStep_Scripted2x2(t *testing.T) {
	c, err := carve.New(2, 2,
		carve.WithStartAt(0, 0),
		carve.WithPickFn(firstCandidate),
	)
	require.NoError(t, err)

	for {
		done, stepErr := c.Step()
		require.NoError(t, stepErr)
		if done {
			break
		}
	}

	g := c.Grid()
	assert.True(t, g.HasPassage(g.Index(0, 0), grid.Right), "(0,0)↔(1,0)")
	assert.True(t, g.HasPassage(g.Index(1, 0), grid.Bottom), "(1,0)↔(1,1)")
	assert.True(t, g.HasPassage(g.Index(1, 1), grid.Left), "(1,1)↔(0,1)")
	assert.False(t, g.HasPassage(g.Index(0, 0), grid.Bottom), "(0,0)↔(0,1) stays walled")
	assert.Equal(t, 3, g.PassageCount())

	// The carve is over; further stepping is an error.
	done, err := c.Step()
	assert.True(t, done)
	assert.ErrorIs(t, err, carve.ErrCarveDone)
}

func TestRun_PickOutOfRange(t *testing.T) {
	_, err := carve.Generate(4, 4,
		carve.WithPickFn(func(_ *rand.Rand, n int) int { return n }))
	assert.ErrorIs(t, err, carve.ErrPickOutOfRange)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := carve.Generate(10, 10, carve.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
