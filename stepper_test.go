package gridkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_FirstStep(t *testing.T) {
	t.Parallel()

	stepper, err := NewStepper(NewGrid2(3, 3, 1), C2(0, 0), C2(2, 2))
	require.NoError(t, err)

	snapshot, err := stepper.Step()
	require.NoError(t, err)
	assert.Equal(t, C2(0, 0), snapshot.Current)
	assert.Equal(t, map[Coord]bool{C2(0, 1): true, C2(1, 0): true}, snapshot.Open)
	assert.Equal(t, map[Coord]bool{C2(0, 0): true}, snapshot.Closed)
	assert.Equal(t, 1, snapshot.StepIndex)
	assert.False(t, snapshot.Done)
	assert.Nil(t, snapshot.Path)
}

func TestStepper_RunsToCompletion(t *testing.T) {
	t.Parallel()

	stepper, err := NewStepper(NewGrid2(3, 3, 1), C2(0, 0), C2(2, 2))
	require.NoError(t, err)

	var last StepSnapshot
	for !stepper.Done() {
		last, err = stepper.Step()
		require.NoError(t, err)
	}
	assert.True(t, last.Found)
	assert.Equal(t, C2(2, 2), last.Current)
	assert.Equal(t, []Coord{C2(2, 2), C2(1, 2), C2(0, 2), C2(0, 1), C2(0, 0)}, last.Path)
	assert.Len(t, last.Closed, 9)

	// Stepping a finished search returns the final state again.
	again, err := stepper.Step()
	require.NoError(t, err)
	assert.True(t, again.Done)
	assert.Equal(t, last.StepIndex, again.StepIndex)
}

func TestStepper_Unreachable(t *testing.T) {
	t.Parallel()

	grid, err := FromTable([][]int{{1, 1, 1}})
	require.NoError(t, err)
	grid.Delete(C2(1, 0))

	stepper, err := NewStepper(grid, C2(0, 0), C2(2, 0))
	require.NoError(t, err)

	snapshot, err := stepper.Step()
	require.NoError(t, err)
	assert.False(t, snapshot.Done)
	assert.Empty(t, snapshot.Open)

	snapshot, err = stepper.Step()
	require.NoError(t, err)
	assert.True(t, snapshot.Done)
	assert.False(t, snapshot.Found)
}
