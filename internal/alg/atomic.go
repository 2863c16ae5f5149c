// Package alg is the algorithm language: atomic moves (face, slice,
// whole-cube, wide, double-layer), their composition into sequences,
// repetitions and inverses, a parser for standard cubing notation, and a
// canonical serializer. Atomic algorithms are played against a
// *cube.Cube; composite algorithms are expanded into atomic steps before
// the operator records them, so the operator's history is always a flat
// list of atomic moves.
package alg

import (
	"fmt"

	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
)

// Atomic is one indivisible move: the seven concrete shapes below are the
// total set (Design Notes §9: "tagged union with one variant per
// algorithm shape"). All instances are immutable after construction.
type Atomic interface {
	Apply(c *cube.Cube)
	Inverse() Atomic
	String() string
}

// FaceAlg rotates an outer face by n quarter turns. n<0 is the inverse
// direction; n is reduced mod 4 only at play time, never in the tree.
type FaceAlg struct {
	Face geom.Face
	N    int
}

func (a FaceAlg) Apply(c *cube.Cube) { c.RotateFaceAndSlice(a.Face, a.N, nil) }
func (a FaceAlg) Inverse() Atomic    { return FaceAlg{a.Face, -a.N} }
func (a FaceAlg) String() string     { return atomicStr(faceLetter(a.Face, false), nil, a.N) }

// SlicedFaceAlg rotates a face together with an explicit set of 1-based
// inner-slice indices in [1, size-2].
type SlicedFaceAlg struct {
	Face   geom.Face
	N      int
	Slices []int // 1-based, public convention
}

func (a SlicedFaceAlg) Apply(c *cube.Cube) {
	// RotateFaceAndSlice's own slices argument is already absolute depth
	// (0 = the face itself, always implied) and always prepends 0 for
	// us, so the public 1-based inner-slice index maps straight through
	// with no conversion - unlike RotateSlice, which expects 0-based
	// interior indices and adds its own +1.
	c.RotateFaceAndSlice(a.Face, a.N, a.Slices)
}
func (a SlicedFaceAlg) Inverse() Atomic {
	return SlicedFaceAlg{a.Face, -a.N, a.Slices}
}
func (a SlicedFaceAlg) String() string {
	return atomicStr(faceLetter(a.Face, false), a.Slices, a.N)
}

// SliceAlg rotates one of the three middle-slice families (M, E, S) by n
// quarter turns, touching every interior layer.
type SliceAlg struct {
	Slice geom.Slice
	N     int
}

func (a SliceAlg) Apply(c *cube.Cube) {
	c.RotateSlice(a.Slice, a.N, allInteriorLayers(c.N))
}
func (a SliceAlg) Inverse() Atomic { return SliceAlg{a.Slice, -a.N} }
func (a SliceAlg) String() string  { return atomicStr(a.Slice.String(), nil, a.N) }

// SlicedSliceAlg rotates an explicit set of 1-based interior indices of
// slice family Slice.
type SlicedSliceAlg struct {
	Slice   geom.Slice
	N       int
	Indices []int // 1-based
}

func (a SlicedSliceAlg) Apply(c *cube.Cube) {
	c.RotateSlice(a.Slice, a.N, toZeroBased(a.Indices))
}
func (a SlicedSliceAlg) Inverse() Atomic {
	return SlicedSliceAlg{a.Slice, -a.N, a.Indices}
}
func (a SlicedSliceAlg) String() string {
	return atomicStr(a.Slice.String(), a.Indices, a.N)
}

// DoubleLayerAlg is the plain lowercase wide move: at play time it
// expands to the face plus every inner slice [1, size-2], i.e. everything
// but the opposite face.
type DoubleLayerAlg struct {
	Face geom.Face
	N    int
}

func (a DoubleLayerAlg) Apply(c *cube.Cube) {
	c.RotateFaceAndSlice(a.Face, a.N, innerFaceLayers(c.N))
}
func (a DoubleLayerAlg) Inverse() Atomic { return DoubleLayerAlg{a.Face, -a.N} }
func (a DoubleLayerAlg) String() string  { return atomicStr(faceLetter(a.Face, true), nil, a.N) }

// WideFaceAlg is a depth-limited wide move: Depth is the number of layers
// turned counting the outer face as layer 1 (Depth=2 is the classic
// 2-layer "Rw"). Unlike DoubleLayerAlg, the depth does not scale with
// cube size - it is clamped to the actual cube's available interior
// layers when played, which is what makes it "adaptive": the same
// WideFaceAlg{Depth:3} plays a 2-layer turn on a 3x3 (clamped) and a true
// 3-layer turn on a 6x6.
type WideFaceAlg struct {
	Face  geom.Face
	N     int
	Depth int
}

func (a WideFaceAlg) Apply(c *cube.Cube) {
	max := c.N - 2
	d := a.Depth - 1
	if d > max {
		d = max
	}
	layers := make([]int, 0, d)
	for i := 1; i <= d; i++ {
		layers = append(layers, i)
	}
	c.RotateFaceAndSlice(a.Face, a.N, layers)
}
func (a WideFaceAlg) Inverse() Atomic { return WideFaceAlg{a.Face, -a.N, a.Depth} }
func (a WideFaceAlg) String() string {
	return fmt.Sprintf("%s", atomicStr(faceLetter(a.Face, true), []int{a.Depth}, a.N))
}

// WholeCubeAlg rotates every layer about axis by n quarter turns.
type WholeCubeAlg struct {
	Axis geom.Axis
	N    int
}

func (a WholeCubeAlg) Apply(c *cube.Cube) { c.RotateWholeCube(a.Axis, a.N) }
func (a WholeCubeAlg) Inverse() Atomic    { return WholeCubeAlg{a.Axis, -a.N} }
func (a WholeCubeAlg) String() string     { return atomicStr(axisLetter(a.Axis), nil, a.N) }

func toZeroBased(idx []int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = v - 1
	}
	return out
}

// allInteriorLayers returns the 0-based interior indices RotateSlice
// expects (it adds its own +1 to reach absolute depth).
func allInteriorLayers(n int) []int {
	out := make([]int, 0, n-2)
	for i := 0; i < n-2; i++ {
		out = append(out, i)
	}
	return out
}

// innerFaceLayers returns every absolute depth strictly inside the cube
// (excluding the always-implied outer face at depth 0) for
// RotateFaceAndSlice, whose slices argument is absolute depth already.
func innerFaceLayers(n int) []int {
	out := make([]int, 0, n-2)
	for k := 1; k <= n-2; k++ {
		out = append(out, k)
	}
	return out
}

func faceLetter(f geom.Face, wide bool) string {
	s := f.String()
	if wide {
		return string(byte(s[0] + ('a' - 'A')))
	}
	return s
}

func axisLetter(a geom.Axis) string {
	switch a {
	case geom.AxisX:
		return "X"
	case geom.AxisY:
		return "Y"
	case geom.AxisZ:
		return "Z"
	}
	return "?"
}

// atomicStr builds the canonical `R`, `R'`, `R2`, `R[1:3]`, `M[2]'` form.
// A bracket holding exactly the single index 1 is hidden for the outer
// face letters (R[1] prints as R) and shown for every other letter, so
// M[1] and r[1] print distinct from M and r.
func atomicStr(letter string, indices []int, n int) string {
	var b []byte
	b = append(b, letter...)
	hideOne := false
	switch letter {
	case "R", "L", "U", "D", "F", "B":
		hideOne = true
	}
	if bracket := formatBracket(indices, hideOne); bracket != "" {
		b = append(b, bracket...)
	}
	turns := ((n % 4) + 4) % 4
	switch turns {
	case 2:
		b = append(b, '2')
	case 3:
		b = append(b, '\'')
	}
	return string(b)
}

func formatBracket(indices []int, hideOne bool) string {
	if len(indices) == 0 {
		return ""
	}
	if hideOne && len(indices) == 1 && indices[0] == 1 {
		return ""
	}
	out := "["
	contiguous := true
	for i := 1; i < len(indices); i++ {
		if indices[i] != indices[i-1]+1 {
			contiguous = false
			break
		}
	}
	if contiguous && len(indices) > 1 {
		out += fmt.Sprintf("%d:%d", indices[0], indices[len(indices)-1])
	} else {
		for i, v := range indices {
			if i > 0 {
				out += ","
			}
			out += fmt.Sprintf("%d", v)
		}
	}
	out += "]"
	return out
}
