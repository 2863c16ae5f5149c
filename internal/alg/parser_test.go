package alg

import (
	"testing"

	"github.com/cubeforge/nxn/internal/cube"
	"github.com/stretchr/testify/require"
)

func TestParseBasicTokens(t *testing.T) {
	a, err := Parse("R U R' U'")
	require.NoError(t, err)
	require.Equal(t, "R U R' U'", a.String())
}

func TestParseBracketAndRepetition(t *testing.T) {
	a, err := Parse("(R U R' U') 3 M[2]'")
	require.NoError(t, err)
	require.Equal(t, "(R U R' U') 3 M[2]'", a.String())
}

func TestParseEmptyInput(t *testing.T) {
	a, err := Parse("   ")
	require.NoError(t, err)
	require.Empty(t, a.Flatten())
}

func TestParseUnknownTokenFails(t *testing.T) {
	_, err := Parse("Q")
	require.Error(t, err)
	var sw *cube.InternalSWError
	require.ErrorAs(t, err, &sw)
}

func TestSexyMoveHasOrderSix(t *testing.T) {
	c := cube.NewCube(3)
	a, err := Parse("R U R' U'")
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		require.NoError(t, Play(c, a))
	}
	require.True(t, c.IsSolved())
}

func TestFaceTurnFourTimesIsIdentityViaParse(t *testing.T) {
	c := cube.NewCube(4)
	before := c.GetState()
	a, err := Parse("R4")
	require.NoError(t, err)
	require.NoError(t, Play(c, a))
	require.True(t, cube.CompareState(before, c.GetState()))
}
