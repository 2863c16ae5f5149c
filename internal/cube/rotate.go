package cube

import "github.com/cubeforge/nxn/internal/geom"

// stickerMove is one cached (source -> destination) facelet move under a
// fixed (n, axis, turns, layer) rotation.
type stickerMove struct {
	fromFace          geom.Face
	fromRow, fromCol  int
	toFace            geom.Face
	toRow, toCol      int
}

// layerPermutation returns the (possibly cached) list of facelet moves
// that a `turns`-quarter-turn rotation about `axis` induces on layer
// `layerCoord` (a centered coordinate, see geom.LayerCoord) of an NxN
// cube. Purely geometric: independent of any particular Cube's state, so
// it is memoized process-wide exactly like the teacher's permCache.
func layerPermutation(n int, axis geom.Axis, turns, layerCoord int) []stickerMove {
	key := permKey{n: n, axis: int(axis), turns: ((turns % 4) + 4) % 4, face: layerCoord, slice: -1}
	permCacheMu.RLock()
	if mv, ok := permCache[key]; ok {
		permCacheMu.RUnlock()
		return mv
	}
	permCacheMu.RUnlock()

	var moves []stickerMove
	for _, f := range geom.AllFaces() {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				p := geom.ToPoint(f, r, c, n)
				if p.AxisValue(axis) != layerCoord {
					continue
				}
				f2, r2, c2 := geom.RotateSticker(f, r, c, n, axis, turns)
				moves = append(moves, stickerMove{f, r, c, f2, r2, c2})
			}
		}
	}

	permCacheMu.Lock()
	permCache[key] = moves
	permCacheMu.Unlock()
	return moves
}

// applyMoves performs a set of facelet moves atomically: every source
// value is read before any destination is written, so overlapping move
// lists (e.g. several layers rotated together) never see a partially
// updated grid.
func (c *Cube) applyMoves(moves []stickerMove) {
	type placed struct {
		face     geom.Face
		row, col int
		val      PartEdge
	}
	staged := make([]placed, len(moves))
	for i, mv := range moves {
		staged[i] = placed{mv.toFace, mv.toRow, mv.toCol, *c.faces[mv.fromFace].At(mv.fromRow, mv.fromCol)}
	}
	for _, s := range staged {
		*c.faces[s.face].At(s.row, s.col) = s.val
	}
}

// RotateFaceAndSlice rotates `face` by n quarter turns (mod 4; negative is
// inverse) and simultaneously rotates the layers listed in slices with it.
// Entries of slices are absolute depths counted from face (1 = the first
// inner layer); the outer face (depth 0) is always turned, so an empty
// slices rotates only the outer face and slices=1..N-2 turns the face and
// everything not opposite to it (a full wide move).
func (c *Cube) RotateFaceAndSlice(face geom.Face, n int, slices []int) {
	axis, turns := geom.FaceTurnAxis(face, n)
	layers := append([]int{0}, slices...)
	c.rotateLayers(face, axis, turns, layers)
	c.emitModified()
}

// RotateSlice rotates one or more inner layers of slice family s (M, E,
// or S) by n quarter turns, without touching the two faces the slice sits
// between. `slices` are 0-based interior indices in [0, N-3]; the
// algorithm layer is responsible for the public 1-based <-> internal
// 0-based translation.
func (c *Cube) RotateSlice(s geom.Slice, n int, slices []int) {
	axis, turns := geom.SliceTurnAxis(s, n)
	layers := make([]int, len(slices))
	for i, k := range slices {
		layers[i] = k + 1 // interior layers start at depth 1 (depth 0 is a face)
	}
	// Any face on this axis works as the reference for LayerCoord's sign
	// convention; pick the slice's own named "positive" face.
	ref := sliceReferenceFace(s)
	c.rotateLayers(ref, axis, turns, layers)
	c.emitModified()
}

// RotateWholeCube rotates every layer about `axis` by n quarter turns -
// equivalent, per spec §4.2, to rotating the axis's positive face and all
// slices together.
func (c *Cube) RotateWholeCube(axis geom.Axis, n int) {
	ref := referenceFaceForAxis(axis)
	layers := make([]int, c.N)
	for i := range layers {
		layers[i] = i
	}
	turns := n * geom.FaceTurnSign(ref)
	c.rotateLayers(ref, axis, turns, layers)
	c.emitModified()
}

func (c *Cube) rotateLayers(refFace geom.Face, axis geom.Axis, turns int, layers0 []int) {
	for _, k := range layers0 {
		coord := geom.LayerCoord(refFace, k, c.N)
		moves := layerPermutation(c.N, axis, turns, coord)
		c.applyMoves(moves)
	}
}

func sliceReferenceFace(s geom.Slice) geom.Face {
	switch s {
	case geom.M:
		return geom.L
	case geom.E:
		return geom.D
	case geom.S:
		return geom.F
	}
	panic("cube: bad slice")
}

func referenceFaceForAxis(a geom.Axis) geom.Face {
	switch a {
	case geom.AxisX:
		return geom.R
	case geom.AxisY:
		return geom.U
	case geom.AxisZ:
		return geom.F
	}
	panic("cube: bad axis")
}
