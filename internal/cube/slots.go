package cube

import "github.com/cubeforge/nxn/internal/geom"

// CornerFacelets returns, for corner co, a pointer to the PartEdge sitting
// at that corner on each of its three faces.
func (c *Cube) CornerFacelets(co geom.Corner) map[geom.Face]*PartEdge {
	p := geom.CornerPoint(co, c.N)
	out := make(map[geom.Face]*PartEdge, 3)
	for _, f := range co.Faces {
		row, col := geom.FromPoint(f, p, c.N)
		out[f] = c.faces[f].At(row, col)
	}
	return out
}

// EdgeWingFacelets returns, for edge e's wing index i (0-based, in
// [0, N-3]), a pointer to the PartEdge on each of the edge's two faces.
func (c *Cube) EdgeWingFacelets(e geom.Edge, i int) map[geom.Face]*PartEdge {
	p := geom.EdgeWingPoint(e, i, c.N)
	out := make(map[geom.Face]*PartEdge, 2)
	for _, f := range e.Faces {
		row, col := geom.FromPoint(f, p, c.N)
		out[f] = c.faces[f].At(row, col)
	}
	return out
}

// CornerColors returns the current color at each of corner co's three
// faces, in the same order as co.Faces.
func (c *Cube) CornerColors(co geom.Corner) [3]Color {
	fs := c.CornerFacelets(co)
	var out [3]Color
	for i, f := range co.Faces {
		out[i] = fs[f].Color
	}
	return out
}

// EdgeWingColors returns the current color at each of edge e's two faces
// for wing i, in the same order as e.Faces.
func (c *Cube) EdgeWingColors(e geom.Edge, i int) [2]Color {
	fs := c.EdgeWingFacelets(e, i)
	var out [2]Color
	for j, f := range e.Faces {
		out[j] = fs[f].Color
	}
	return out
}
