package cube

import (
	"testing"

	"github.com/cubeforge/nxn/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestNewCubeIsSolved(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 6} {
		c := NewCube(n)
		require.True(t, c.IsSolved(), "size %d", n)
		require.NoError(t, c.AssertInvariants())
	}
}

func TestFaceTurnFourTimesIsIdentity(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		for _, f := range geom.AllFaces() {
			c := NewCube(n)
			before := c.GetState()
			c.RotateFaceAndSlice(f, 4, nil)
			require.True(t, CompareState(before, c.GetState()), "face %v size %d", f, n)
		}
	}
}

func TestFaceTurnAndInverseCancel(t *testing.T) {
	c := NewCube(5)
	before := c.GetState()
	c.RotateFaceAndSlice(geom.R, 1, []int{0, 1})
	require.False(t, CompareState(before, c.GetState()))
	c.RotateFaceAndSlice(geom.R, -1, []int{0, 1})
	require.True(t, CompareState(before, c.GetState()))
}

func TestWideMoveTurnsOuterFaceToo(t *testing.T) {
	c := NewCube(4)
	all := make([]int, c.N-2)
	for i := range all {
		all[i] = i + 1
	}
	c.RotateFaceAndSlice(geom.F, 1, all)
	require.NotEqual(t, Yellow, c.Face(geom.U).At(c.N-1, 0).Color)
}

func TestSliceMoveLeavesBoundingFacesUntouched(t *testing.T) {
	c := NewCube(5)
	beforeL := snapshotFace(c, geom.L)
	beforeR := snapshotFace(c, geom.R)
	c.RotateSlice(geom.M, 1, []int{0, 1, 2})
	require.Equal(t, beforeL, snapshotFace(c, geom.L))
	require.Equal(t, beforeR, snapshotFace(c, geom.R))
}

func TestWholeCubeRotationFourTimesIsIdentity(t *testing.T) {
	c := NewCube(4)
	before := c.GetState()
	c.RotateWholeCube(geom.AxisY, 4)
	require.True(t, CompareState(before, c.GetState()))
}

func snapshotFace(c *Cube, f geom.Face) [][]Color {
	face := c.Face(f)
	out := make([][]Color, c.N)
	for r := 0; r < c.N; r++ {
		out[r] = make([]Color, c.N)
		for col := 0; col < c.N; col++ {
			out[r][col] = face.At(r, col).Color
		}
	}
	return out
}
