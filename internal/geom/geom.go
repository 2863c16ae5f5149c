// Package geom answers pure topology questions about an NxN cube: which
// faces are opposite or adjacent, how a coordinate on one face maps onto
// another, and how a slice index on a face turns into a 0-based layer
// depth. It never touches colors or physical parts - those live in
// package cube.
//
// Everything here is derived from two fundamental facts about a cube:
// the three opposite-face pairs (F/B, U/D, L/R) and, for each face, which
// of the other two axes reads as "row" and which reads as "col". Nothing
// is hardcoded per cube size; a (slice, face, index) triple produces the
// same formula for N=3 as for N=100.
package geom

import "fmt"

// Face names a side of the cube, independent of any color assignment.
type Face int

const (
	U Face = iota
	D
	F
	B
	L
	R
)

var faceNames = [6]string{"U", "D", "F", "B", "L", "R"}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return fmt.Sprintf("Face(%d)", int(f))
	}
	return faceNames[f]
}

// AllFaces enumerates the six faces in a stable order.
func AllFaces() []Face { return []Face{U, D, F, B, L, R} }

// Axis is one of the cube's three rotation axes.
type Axis int

const (
	AxisX Axis = iota // L/R axis - the spec's "X rotation... around R face axis"
	AxisY             // U/D axis - "Y rotation... around U face axis"
	AxisZ             // F/B axis - "Z rotation... around F face axis"
)

// Slice is one of the three middle-slice families.
type Slice int

const (
	M Slice = iota // parallel to L
	E              // parallel to D
	S              // parallel to F
)

func (s Slice) String() string { return [3]string{"M", "E", "S"}[s] }

// axisOf and signOf are the two fundamental inputs: which axis a face sits
// on, and on which side of it. Opposite faces share an axis and differ in
// sign; this is the spec's "three opposite pairs" input, expressed so that
// every other geometric fact (adjacency, edge wiring, corner wiring) is
// derived from it rather than listed separately per face.
func axisOf(f Face) Axis {
	switch f {
	case L, R:
		return AxisX
	case U, D:
		return AxisY
	case F, B:
		return AxisZ
	}
	panic("geom: bad face")
}

func signOf(f Face) int {
	switch f {
	case R, U, F:
		return 1
	case L, D, B:
		return -1
	}
	panic("geom: bad face")
}

func faceFromAxisSign(a Axis, sign int) Face {
	for _, f := range AllFaces() {
		if axisOf(f) == a && signOf(f) == sign {
			return f
		}
	}
	panic("geom: no face for axis/sign")
}

// Opposite returns the face on the other side of the same axis.
func Opposite(f Face) Face {
	return faceFromAxisSign(axisOf(f), -signOf(f))
}

// Adjacent returns the four faces neither equal to nor opposite f, in a
// fixed cyclic order matching the ring a clockwise turn of f drags stickers
// through (top -> right -> bottom -> left of the turning face, spec
// §4.1 "sliced rotation cycles").
func Adjacent(f Face) [4]Face {
	all := AllFaces()
	var out [4]Face
	n := 0
	for _, g := range all {
		if g != f && g != Opposite(f) {
			out[n] = g
			n++
		}
	}
	return orderRing(f, out)
}

// rowAxis/colAxis/rowSign/colSign fix, for each face, which of the two
// non-fixed axes is "row" (spec: row 0 = bottom, increases upward) and
// which is "col" (col 0 = left), and in which direction along that axis
// the index increases. This is the second fundamental input: a face's
// local coordinate frame. Everything else (edge/corner wiring, the
// face-to-face coordinate map, the slice-index formula) is derived from
// this plus the opposite-pairs table above - never hardcoded per size.
type frame struct {
	rowAxis, colAxis Axis
	rowSign, colSign int
}

func frameOf(f Face) frame {
	switch f {
	case U:
		return frame{AxisZ, AxisX, 1, 1}
	case D:
		return frame{AxisZ, AxisX, -1, 1}
	case F:
		return frame{AxisY, AxisX, 1, -1}
	case B:
		return frame{AxisY, AxisX, 1, 1}
	case L:
		return frame{AxisY, AxisZ, 1, 1}
	case R:
		return frame{AxisY, AxisZ, 1, -1}
	}
	panic("geom: bad face")
}

// Point3 is a centered integer coordinate: for an N-cube, each component
// ranges over {-(N-1), -(N-3), ..., N-1} (i.e. 2*index-(N-1)), so the
// cube's center is the origin and the six faces sit at the extremal
// planes x=±m, y=±m, z=±m where m=N-1.
type Point3 struct{ X, Y, Z int }

// AxisValue returns the coordinate of p along axis a.
func (p Point3) AxisValue(a Axis) int { return p.axis(a) }

func (p Point3) axis(a Axis) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	}
	panic("geom: bad axis")
}

func (p Point3) withAxis(a Axis, v int) Point3 {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	case AxisZ:
		p.Z = v
	}
	return p
}

// ToPoint maps a facelet (face, row, col) on an NxN cube to its centered
// 3D coordinate plus the face's outward-normal axis/sign, encoded as a
// Point3 whose coordinate on axisOf(face) is signOf(face)*m.
func ToPoint(f Face, row, col, n int) Point3 {
	m := n - 1
	fr := frameOf(f)
	p := Point3{}
	p = p.withAxis(axisOf(f), signOf(f)*m)
	p = p.withAxis(fr.rowAxis, fr.rowSign*(2*row-m))
	p = p.withAxis(fr.colAxis, fr.colSign*(2*col-m))
	return p
}

// FromPoint is the inverse of ToPoint for a known face: given the face and
// a centered 3D point known to lie on it, recover (row, col).
func FromPoint(f Face, p Point3, n int) (row, col int) {
	m := n - 1
	fr := frameOf(f)
	rowC := fr.rowSign * p.axis(fr.rowAxis)
	colC := fr.colSign * p.axis(fr.colAxis)
	row = (rowC + m) / 2
	col = (colC + m) / 2
	return row, col
}

// normalVec returns the outward unit normal of a face as a Point3 with
// entries in {-1,0,1}.
func normalVec(f Face) Point3 {
	return Point3{}.withAxis(axisOf(f), signOf(f))
}

func faceFromNormal(p Point3) (Face, bool) {
	for _, f := range AllFaces() {
		if normalVec(f) == p {
			return f, true
		}
	}
	return 0, false
}

// Rotate90 applies a right-hand-rule quarter turn about the given axis,
// `turns` times (turns may be any integer; only turns mod 4 matters).
func Rotate90(p Point3, a Axis, turns int) Point3 {
	turns = ((turns % 4) + 4) % 4
	for i := 0; i < turns; i++ {
		switch a {
		case AxisX:
			p = Point3{p.X, -p.Z, p.Y}
		case AxisY:
			p = Point3{p.Z, p.Y, -p.X}
		case AxisZ:
			p = Point3{-p.Y, p.X, p.Z}
		}
	}
	return p
}

// turnDirection returns the sign multiplier that converts a "clockwise as
// viewed from outside face f" quarter-turn count into the Rotate90 turn
// count on axisOf(f). Rotate90 is right-handed, so a positive turn is
// counter-clockwise as seen from the + side of its axis: R, U and F turn
// clockwise in the -Rotate90 sense, and L, D, B in the +Rotate90 sense.
// That is why a whole-cube rotation "rotates face X by n and opposite face
// X' by -n simultaneously" (spec §4.2) falls out for free: applying the
// same Rotate90(axis, k) to every sticker turns the two faces on that axis
// by opposite amounts in their own local clockwise senses.
func turnDirection(f Face) int { return -signOf(f) }

// FaceTurnSign is turnDirection exported for callers (e.g. whole-cube
// rotation) that need to convert a face-local clockwise sense into the
// raw Rotate90 sign convention.
func FaceTurnSign(f Face) int { return turnDirection(f) }

// RotateSticker rotates one facelet by `turns` quarter turns about axis a
// (the convention is Rotate90's, i.e. a raw coordinate rotation, not a
// face-local "clockwise" rotation - callers that want face-local clockwise
// semantics multiply turns by turnDirection(face) first). It returns the
// new face and (row, col) the facelet lands on.
func RotateSticker(f Face, row, col, n int, a Axis, turns int) (Face, int, int) {
	p := ToPoint(f, row, col, n)
	nrm := normalVec(f)
	p2 := Rotate90(p, a, turns)
	nrm2 := Rotate90(nrm, a, turns)
	f2, ok := faceFromNormal(nrm2)
	if !ok {
		panic("geom: rotated normal matches no face")
	}
	r2, c2 := FromPoint(f2, p2, n)
	return f2, r2, c2
}

// FaceTurnAxis returns the axis and the clockwise sign convention for
// turning `face` n quarter turns clockwise (as the algorithm layer defines
// clockwise for that face): the equivalent raw Rotate90 turn count.
func FaceTurnAxis(face Face, n int) (Axis, int) {
	a := axisOf(face)
	return a, n * turnDirection(face)
}

// SliceTurnAxis returns the axis and raw Rotate90 turn count for an M/E/S
// slice move of n quarter turns, using the spec's "M parallel to L, E
// parallel to D, S parallel to F" direction convention.
func SliceTurnAxis(s Slice, n int) (Axis, int) {
	switch s {
	case M:
		return AxisX, n * turnDirection(L)
	case E:
		return AxisY, n * turnDirection(D)
	case S:
		return AxisZ, n * turnDirection(F)
	}
	panic("geom: bad slice")
}

// LayerCoord returns the signed centered coordinate that identifies layer
// k (0-based, 0 = the face's own outer layer) of a face turn on `face`,
// for an NxN cube. A sticker belongs to that layer iff its coordinate on
// axisOf(face) equals this value. This one formula is simultaneously the
// "which stickers does rotate_face_and_slice(n, face, k) touch" rule and
// the public slice-index formula's size-independent core (spec §4.1,
// "Slice index formula").
func LayerCoord(face Face, k, n int) int {
	m := n - 1
	return signOf(face) * (m - 2*k)
}

// LayerOf inverts LayerCoord: given the coordinate on axisOf(face) that a
// sticker sits at, return which layer k (0-based from `face`) that is.
// This is the property exercised by spec §8 test #10 ("the formula must
// invert walking info").
func LayerOf(face Face, coord, n int) int {
	m := n - 1
	return (m - signOf(face)*coord) / 2
}

// SliceLayer returns the 0-based layer depth, counted from either face a
// slice sits between, that a 1-based public slice index `idx` (1..N-2)
// corresponds to; the two numbers are equal.
func SliceLayer(idx int) int { return idx }

// orderRing fixes the cyclic order top->right->bottom->left that a
// clockwise turn of `f` drags its four adjacent faces' bordering rows/cols
// through, derived by sampling the ring each adjacent face's border
// sticker (the one nearest `f`) moves to under one clockwise turn.
func orderRing(f Face, faces [4]Face) [4]Face {
	// Start from an arbitrary adjacent face and repeatedly ask "which
	// adjacent face does turning f clockwise send this border to".
	start := faces[0]
	order := [4]Face{start}
	cur := start
	for i := 1; i < 4; i++ {
		nxt := nextInRing(f, cur)
		order[i] = nxt
		cur = nxt
	}
	return order
}

// nextInRing answers: under one clockwise turn of face f, the stickers
// bordering face `cur` (at the outer layer, row/col nearest f) move onto
// which adjacent face? Found by rotating a sample point on cur's border
// and reading off the destination face.
func nextInRing(f Face, cur Face) Face {
	const n = 5 // any N>=3 gives an unambiguous, size-independent answer
	m := n - 1
	// A point on `cur` immediately bordering `f`: fix cur's own face
	// coordinate, and set the coordinate shared with f's axis to the
	// value just inside f (one layer in), keeping the third coordinate
	// at an arbitrary non-center value so the rotation is unambiguous.
	p := Point3{}
	p = p.withAxis(axisOf(cur), signOf(cur)*m)
	p = p.withAxis(axisOf(f), signOf(f)*(m-2))
	third := AxisX + AxisY + AxisZ - axisOf(cur) - axisOf(f)
	p = p.withAxis(third, 1)
	a, turns := FaceTurnAxis(f, 1)
	p2 := Rotate90(p, a, turns)
	for _, g := range AllFaces() {
		if g == cur || g == f || g == Opposite(f) {
			continue
		}
		if p2.axis(axisOf(g)) == signOf(g)*m {
			return g
		}
	}
	panic("geom: nextInRing found no destination face")
}
