package reducer

import (
	"testing"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestReduceOnAlreadySolvedCubeIsNoop(t *testing.T) {
	c := cube.NewCube(4)
	red := New(c)
	defer red.Release()
	require.NoError(t, red.Reduce())
	require.True(t, c.IsSolved())
}

func TestSolveCentersRestoresSolidCenters(t *testing.T) {
	c := cube.NewCube(4)
	a, err := alg.Parse("r U r' U' r F r' F'")
	require.NoError(t, err)
	require.NoError(t, alg.Play(c, a))

	red := New(c)
	defer red.Release()
	require.NoError(t, red.SolveCenters())

	colors := red.holder.GetFaceColors()
	for _, f := range geom.AllFaces() {
		face := c.Face(f)
		want := colors[f]
		for row := 0; row < face.CenterSize(); row++ {
			for col := 0; col < face.CenterSize(); col++ {
				require.Equal(t, want, face.CenterAt(row, col).Color, "face %v (%d,%d)", f, row, col)
			}
		}
	}
}
