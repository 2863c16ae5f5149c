package tracker

import (
	"testing"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestPartSliceTrackerSurvivesRotation(t *testing.T) {
	c := cube.NewCube(4)
	pe := c.Face(geom.U).At(0, 0)
	pt := NewPartSliceTracker(c, pe)
	defer pt.Release()

	a, err := alg.Parse("R U F' R2")
	require.NoError(t, err)
	require.NoError(t, alg.Play(c, a))

	_, _, _, ok := pt.Locate()
	require.True(t, ok, "tracked facelet must still be found somewhere after rotation")

	require.NoError(t, alg.Play(c, a.Inv()))
	f, r, col, ok := pt.Locate()
	require.True(t, ok)
	require.Equal(t, geom.U, f)
	require.Equal(t, 0, r)
	require.Equal(t, 0, col)
}

func TestFacesTrackerHolderOddIsBOY(t *testing.T) {
	c := cube.NewCube(5)
	h := NewFacesTrackerHolderOdd(c)
	defer h.Release()
	require.True(t, h.AssertIsBOY())
}

func TestFacesTrackerHolderEvenIsBOY(t *testing.T) {
	c := cube.NewCube(4)
	h := NewFacesTrackerHolderEven(c)
	defer h.Release()
	require.True(t, h.AssertIsBOY())
}

func TestCornerTrackerLocatesSolvedCorner(t *testing.T) {
	c := cube.NewCube(3)
	ct := NewCornerTracker(c, [3]cube.Color{cube.Blue, cube.Orange, cube.Yellow})
	co, ok := ct.Locate()
	require.True(t, ok)
	require.ElementsMatch(t, []geom.Face{geom.F, geom.L, geom.U}, co.Faces[:])
}
