package solver3

import (
	"testing"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/stretchr/testify/require"
)

func TestSolveAlreadySolvedCubeIsNoop(t *testing.T) {
	c := cube.NewCube(3)
	a, err := Solve(c, CFOP)
	require.NoError(t, err)
	require.Empty(t, a.Flatten())
	require.True(t, c.IsSolved())
}

func TestSolveScrambled3x3(t *testing.T) {
	c := cube.NewCube(3)
	scramble, err := alg.Parse("R U2 F' L D2 B' R2 U F2 L'")
	require.NoError(t, err)
	require.NoError(t, alg.Play(c, scramble))
	require.False(t, c.IsSolved())

	_, err = Solve(c, Beginner)
	require.NoError(t, err)
	require.True(t, c.IsSolved())
}

// Outer single-layer turns on a 4x4 permute corners and edge-pairs
// exactly like a 3x3 while leaving every center block and edge pairing
// intact, so this exercises solver3's virtual-cube sampling without
// first needing a full reducer pass.
func TestSolveReduced4x4ViaOuterTurnScramble(t *testing.T) {
	c := cube.NewCube(4)
	scramble, err := alg.Parse("R U2 F' L D2 B' R2 U F2")
	require.NoError(t, err)
	require.NoError(t, alg.Play(c, scramble))

	_, err = Solve(c, CFOP)
	require.NoError(t, err)
	require.True(t, c.IsSolved())
}
