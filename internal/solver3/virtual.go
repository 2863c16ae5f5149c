package solver3

import (
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
)

// buildVirtual samples a reduced NxN cube's solid centers and paired
// edge wings into a fresh 3x3 shadow cube sharing the same layout. The
// shadow is what the piece-placement engine actually solves; its
// resulting algorithm is atomic-for-atomic replayable on the real cube,
// since FaceAlg/SliceAlg/WholeCubeAlg generalize over N (spec: "virtual
// 3x3 view").
func buildVirtual(c *cube.Cube) *cube.Cube {
	v := cube.NewCubeWithLayout(3, c.Layout())
	for _, co := range geom.Corners() {
		colors := c.CornerColors(co)
		dst := v.CornerFacelets(co)
		for i, f := range co.Faces {
			dst[f].Color = colors[i]
		}
	}
	for _, e := range geom.Edges() {
		colors := c.EdgeWingColors(e, 0)
		dst := v.EdgeWingFacelets(e, 0)
		for i, f := range e.Faces {
			dst[f].Color = colors[i]
		}
	}
	for _, f := range geom.AllFaces() {
		v.Face(f).CenterAt(0, 0).Color = c.Face(f).CenterAt(0, 0).Color
	}
	return v
}

func cloneCube(c *cube.Cube) *cube.Cube {
	clone := cube.NewCubeWithLayout(c.N, c.Layout())
	if err := clone.SetSnapshot(c.GetSnapshot()); err != nil {
		panic(err) // same size and layout by construction; SetSnapshot cannot fail here
	}
	return clone
}

func cornerRowCol(co geom.Corner, f geom.Face, n int) (int, int) {
	return geom.FromPoint(f, geom.CornerPoint(co, n), n)
}

func edgeRowCol(e geom.Edge, i int, f geom.Face, n int) (int, int) {
	return geom.FromPoint(f, geom.EdgeWingPoint(e, i, n), n)
}

func cornerRefPairs(src, dst geom.Corner) [][2]geom.Face {
	var out [][2]geom.Face
	for _, a := range src.Faces {
		for _, b := range dst.Faces {
			if a != b {
				out = append(out, [2]geom.Face{a, b})
			}
		}
	}
	return out
}

func edgeRefPairs(src, dst geom.Edge) [][2]geom.Face {
	var out [][2]geom.Face
	for _, a := range src.Faces {
		for _, b := range dst.Faces {
			if a != b {
				out = append(out, [2]geom.Face{a, b})
			}
		}
	}
	return out
}
