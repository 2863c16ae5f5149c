package commutator

import (
	"testing"

	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestCycle3RejectsSameFace(t *testing.T) {
	c := cube.NewCube(5)
	_, err := Cycle3(c, geom.U, 0, 0, geom.U, 0, 0, true)
	require.Error(t, err)
	var ge *cube.GeometryError
	require.ErrorAs(t, err, &ge)
}

func TestCycle3DryRunDoesNotMutateCube(t *testing.T) {
	c := cube.NewCube(5)
	before := c.GetState()
	res, err := Cycle3(c, geom.U, 0, 0, geom.F, 0, 0, true)
	require.NoError(t, err)
	require.NotNil(t, res.Alg)
	require.True(t, cube.CompareState(before, c.GetState()))
}

func TestCycle3PlayKeepsColorCounts(t *testing.T) {
	c := cube.NewCube(5)
	_, err := Cycle3(c, geom.U, 0, 0, geom.F, 0, 0, false)
	require.NoError(t, err)
	require.NoError(t, c.AssertInvariants())
}

func TestCycleOppositeHandlesOppositeFaces(t *testing.T) {
	c := cube.NewCube(5)
	_, err := Cycle3(c, geom.U, 0, 0, geom.D, 0, 0, false)
	require.NoError(t, err)
	require.NoError(t, c.AssertInvariants())
}
