package orchestrator

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
)

func TestSolveAlreadySolvedReturnsImmediately(t *testing.T) {
	c := cube.NewCube(4)
	o := New(c, zerolog.Nop())
	res, err := o.Solve(All)
	require.NoError(t, err)
	require.Equal(t, Solved, res.FinalState)
}

func TestSolveScrambled3x3Directly(t *testing.T) {
	c := cube.NewCube(3)
	scramble, err := alg.Parse("R U2 F' L D2 B' R2 U F2")
	require.NoError(t, err)
	require.NoError(t, alg.Play(c, scramble))

	o := New(c, zerolog.Nop())
	res, err := o.Solve(All)
	require.NoError(t, err)
	require.Equal(t, Solved, res.FinalState)
	require.True(t, c.IsSolved())
}

func TestSolveCentersOnlyStopsAtReduced(t *testing.T) {
	c := cube.NewCube(4)
	scramble, err := alg.Parse("r U2 F' l D2")
	require.NoError(t, err)
	require.NoError(t, alg.Play(c, scramble))

	o := New(c, zerolog.Nop())
	res, err := o.Solve(CentersOnly)
	require.NoError(t, err)
	require.Equal(t, Reduced, res.FinalState)
}
