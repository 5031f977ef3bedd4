package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmaze/carve"
	"github.com/katalvlaran/lvlmaze/grid"
	"github.com/katalvlaran/lvlmaze/maze"
	"github.com/katalvlaran/lvlmaze/solve"
)

// recorder captures the event stream for assertions.
type recorder struct {
	states map[grid.State]int
	walls  int
	last   map[grid.Coord]grid.State
}

func newRecorder() *recorder {
	return &recorder{
		states: make(map[grid.State]int),
		last:   make(map[grid.Coord]grid.State),
	}
}

func (r *recorder) CellStateChanged(c grid.Coord, s grid.State) {
	r.states[s]++
	r.last[c] = s
}

func (r *recorder) WallRemoved(grid.Coord, grid.Direction) {
	r.walls++
}

func TestNew_InvalidDimension(t *testing.T) {
	_, err := maze.New(0, 7)
	assert.ErrorIs(t, err, grid.ErrInvalidDimension)
}

// TestImmediateFlow drives generate-then-solve end to end and checks the
// renderer saw the whole mutation stream.
func TestImmediateFlow(t *testing.T) {
	const w, h = 6, 5
	rec := newRecorder()
	m, err := maze.New(w, h,
		maze.WithRenderer(rec),
		maze.WithRand(rand.New(rand.NewSource(21))),
	)
	require.NoError(t, err)
	assert.Equal(t, carve.NotStarted, m.Phase())

	// Solving before generation is rejected outright.
	_, err = m.Solve()
	assert.ErrorIs(t, err, solve.ErrNotFinalized)

	require.NoError(t, m.Generate())
	assert.Equal(t, carve.Finalized, m.Phase())
	assert.Equal(t, w*h-1, m.Grid().PassageCount())
	assert.Equal(t, (w*h-1)+2, rec.walls, "carved pairs plus the two openings")

	res, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, grid.Coord{X: 0, Y: 0}, res.Path[0])
	assert.Equal(t, grid.Coord{X: w - 1, Y: h - 1}, res.Path[len(res.Path)-1])

	// Renderer view agrees with the grid: corners tagged, interior painted.
	assert.Equal(t, grid.Start, rec.last[grid.Coord{X: 0, Y: 0}])
	assert.Equal(t, grid.End, rec.last[grid.Coord{X: w - 1, Y: h - 1}])
	assert.Equal(t, len(res.Path)-2, rec.states[grid.Solution])

	// Step is the wrong drive command in immediate mode.
	_, err = m.Step()
	assert.ErrorIs(t, err, maze.ErrNotStepwise)
}

// TestStepwiseFlow drives generation one Step at a time, as a frame loop
// would, and confirms Generate refuses to take over.
func TestStepwiseFlow(t *testing.T) {
	const w, h = 5, 5
	m, err := maze.New(w, h,
		maze.WithStepwise(),
		maze.WithRand(rand.New(rand.NewSource(33))),
	)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Generate(), maze.ErrStepwise)

	steps := 0
	for {
		done, stepErr := m.Step()
		require.NoError(t, stepErr)
		steps++
		if done {
			break
		}
	}
	assert.Equal(t, 2*w*h, steps)
	assert.Equal(t, carve.Finalized, m.Phase())

	res, err := m.Solve()
	require.NoError(t, err)
	assert.NotEmpty(t, res.Path)
}

// TestStepwiseMatchesImmediate confirms the facade preserves the carve
// equivalence guarantee for the same seed.
func TestStepwiseMatchesImmediate(t *testing.T) {
	const w, h, seed = 7, 9, 99

	im, err := maze.New(w, h, maze.WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	require.NoError(t, im.Generate())

	st, err := maze.New(w, h, maze.WithStepwise(), maze.WithRand(rand.New(rand.NewSource(seed))))
	require.NoError(t, err)
	for {
		done, stepErr := st.Step()
		require.NoError(t, stepErr)
		if done {
			break
		}
	}

	for i := 0; i < im.Grid().Size(); i++ {
		assert.Equal(t, im.Grid().Cell(i).Walls, st.Grid().Cell(i).Walls,
			"cell %v walls", im.Grid().Coordinate(i))
	}
}
