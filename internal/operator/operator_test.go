package operator

import (
	"testing"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/stretchr/testify/require"
)

func TestPlayAndUndoRestoresState(t *testing.T) {
	c := cube.NewCube(4)
	op := New(c)
	before := c.GetState()

	a, err := alg.Parse("R U R' F2")
	require.NoError(t, err)
	require.NoError(t, op.Play(a, false))
	require.NotEqual(t, before, c.GetState())

	for len(op.History()) > 0 {
		require.NoError(t, op.Undo())
	}
	require.True(t, cube.CompareState(before, c.GetState()))
}

func TestCountNeverShrinksOnUndo(t *testing.T) {
	c := cube.NewCube(3)
	op := New(c)
	a, _ := alg.Parse("R U")
	require.NoError(t, op.Play(a, false))
	require.Equal(t, 2, op.Count())
	require.NoError(t, op.Undo())
	require.Equal(t, 2, op.Count())
	require.Len(t, op.History(), 1)
}

func TestSaveHistoryRestoresOnExit(t *testing.T) {
	c := cube.NewCube(3)
	op := New(c)
	a, _ := alg.Parse("R U")
	require.NoError(t, op.Play(a, false))
	snapshotLen := len(op.History())

	done := op.SaveHistory()
	more, _ := alg.Parse("F2 L'")
	require.NoError(t, op.Play(more, false))
	require.Greater(t, len(op.History()), snapshotLen)
	done()
	require.Len(t, op.History(), snapshotLen)
}

func TestWithAnimationRestoresPreviousSetting(t *testing.T) {
	c := cube.NewCube(3)
	op := New(c)
	require.True(t, op.animationOn)
	done := op.WithAnimation(false)
	require.False(t, op.animationOn)
	done()
	require.True(t, op.animationOn)
}
