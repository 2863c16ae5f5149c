package geom

import "sort"

// Corner names one of the eight cube corners by the three faces that meet
// there, letters sorted, e.g. "FLU". Edge names one of the twelve edges by its two faces,
// e.g. "FU". Both are derived, never listed by hand: a corner is any
// triple of mutually-adjacent faces (one per axis), an edge is any pair of
// adjacent faces.
type Corner struct {
	Faces [3]Face
	Name  string
}

type Edge struct {
	Faces [2]Face
	Name  string
}

func faceLetter(f Face) byte { return faceNames[f][0] }

// CornerPoint returns the centered 3D point where corner co sits: all
// three of its faces' axes at their extremal (signed) value.
func CornerPoint(co Corner, n int) Point3 {
	m := n - 1
	p := Point3{}
	for _, f := range co.Faces {
		p = p.withAxis(axisOf(f), signOf(f)*m)
	}
	return p
}

// EdgeWingPoint returns the centered 3D point of wing index i (0-based,
// i in [0, n-3]) along edge e: both of e's faces' axes at their extremal
// value, and the third (shared-border) axis stepping from one corner
// toward the other as i increases.
func EdgeWingPoint(e Edge, i, n int) Point3 {
	m := n - 1
	p := Point3{}
	p = p.withAxis(axisOf(e.Faces[0]), signOf(e.Faces[0])*m)
	p = p.withAxis(axisOf(e.Faces[1]), signOf(e.Faces[1])*m)
	third := AxisX + AxisY + AxisZ - axisOf(e.Faces[0]) - axisOf(e.Faces[1])
	p = p.withAxis(third, 2*(i+1)-m)
	return p
}

// Corners derives the 8 corner wirings from the opposite-pairs topology:
// every corner is exactly one face per axis, chosen independently, so
// there are 2*2*2 = 8 corners, one per sign combination.
func Corners() []Corner {
	var out []Corner
	for _, fx := range []Face{L, R} {
		for _, fy := range []Face{D, U} {
			for _, fz := range []Face{B, F} {
				faces := [3]Face{fx, fy, fz}
				out = append(out, Corner{Faces: faces, Name: cornerName(faces)})
			}
		}
	}
	return out
}

func cornerName(faces [3]Face) string {
	letters := []byte{faceLetter(faces[0]), faceLetter(faces[1]), faceLetter(faces[2])}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return string(letters)
}

// Edges derives the 12 edge wirings: every unordered pair of adjacent
// (non-opposite) faces shares exactly one edge.
func Edges() []Edge {
	var out []Edge
	seen := map[[2]Face]bool{}
	for _, f := range AllFaces() {
		for _, g := range Adjacent(f) {
			key := [2]Face{f, g}
			rkey := [2]Face{g, f}
			if seen[key] || seen[rkey] {
				continue
			}
			seen[key] = true
			faces := [2]Face{f, g}
			out = append(out, Edge{Faces: faces, Name: edgeName(faces)})
		}
	}
	return out
}

func edgeName(faces [2]Face) string {
	a, b := faceLetter(faces[0]), faceLetter(faces[1])
	if a > b {
		a, b = b, a
	}
	return string([]byte{a, b})
}

// SameDirection reports whether traversing edge (f,g) from its "low"
// corner to its "high" corner yields the same slice-index ordering on
// both faces - i.e. whether f's and g's local coordinate frames agree in
// direction along the shared border. Derived by comparing, at two
// neighboring points along the shared border, whether each face's own
// (row,col) reading along its border-parallel axis moves in the same
// sign as the other face's.
func SameDirection(f, g Face) bool {
	const n = 5
	m := n - 1
	third := AxisX + AxisY + AxisZ - axisOf(f) - axisOf(g)
	p1 := Point3{}
	p1 = p1.withAxis(axisOf(f), signOf(f)*m)
	p1 = p1.withAxis(axisOf(g), signOf(g)*m)
	p1 = p1.withAxis(third, -1)
	p2 := p1.withAxis(third, 1)

	return borderIndex(f, p2, n) > borderIndex(f, p1, n) ==
		(borderIndex(g, p2, n) > borderIndex(g, p1, n))
}

// borderIndex combines h's (row,col) reading of a point into one
// monotonic value. Between two border-adjacent points only one of
// row/col actually changes, so the combined value's direction of change
// equals that component's direction of change.
func borderIndex(h Face, p Point3, n int) int {
	row, col := FromPoint(h, p, n)
	return row*1000 + col
}
