// Package commutator provides the generic 3-cycle primitive NxN
// reduction uses to move a single center piece between faces without
// disturbing the rest of the cube: a conjugated pair of face turns of the
// classic X Y X' Y' commutator shape.
package commutator

import (
	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
)

// Result is what a (possibly dry-run) commutator computation produces:
// the algorithm to play, and s2 - the position the piece originally at
// the target slot is displaced to, itself reachable from the target by a
// single face rotation (spec §4.6's key derivation rule).
type Result struct {
	Alg alg.Algorithm
	S2  geom.Face
}

// Cycle3 builds a commutator that carries the center slice at (aRow,aCol)
// on face A onto (bRow,bCol) on face B, cycling B's displaced piece to a
// derived s2 position and s2 back to A - leaving every other center
// unchanged. dryRun computes the algorithm without playing it.
//
// The setup move X is not a bare outer turn of the conjugating face: it is
// widened to the exact interior layer (aRow,aCol) sits at, found via
// geom.LayerOf, so the commutator actually reaches into the cube instead
// of only ever touching the outermost ring (spec §4.6 / testable
// property #9). The target turn count for both X and the B-side turn Y is
// derived the same way, by simulating the rotation with geom.RotateSticker
// and solving for the quarter-turn counts that land exactly on
// (bRow,bCol) - closed-form face/row/col arithmetic here would have to
// special-case each of the 24 ordered (A,B) face pairs; simulating off
// the same primitives the rest of this package already trusts is the
// idiom geom.go itself uses throughout (e.g. LayerOf, FromPoint).
//
// Same-face source and target is a GeometryError. Opposite faces
// (A = opposite(B)) use a distinct, two-hop algorithm family (see
// CycleOpposite); this function only handles adjacent A, B. A requested
// (aRow,aCol) -> (bRow,bCol) pair that this single conjugate cannot reach
// (not every inner layer, for large N, lands on every interior cell of B
// through one B turn) is also a GeometryError - callers that search for a
// source piece among several same-colored candidates should try another
// one rather than treat this as fatal (see Reachable).
func Cycle3(c *cube.Cube, A geom.Face, aRow, aCol int, B geom.Face, bRow, bCol int, dryRun bool) (*Result, error) {
	if A == B {
		return nil, cube.NewGeometryError("same-face", "source and target face are both %v", A)
	}
	if geom.Opposite(A) == B {
		return CycleOpposite(c, A, aRow, aCol, B, bRow, bCol, dryRun)
	}

	setup, err := conjugatingFace(A, B)
	if err != nil {
		return nil, err
	}

	xAtom, midRow, midCol, err := setupMove(setup, A, aRow, aCol, B, c.N)
	if err != nil {
		return nil, err
	}
	ty, ok := matchingTurn(B, midRow, midCol, bRow, bCol, c.N)
	if !ok {
		return nil, cube.NewGeometryError("unreachable",
			"(%d,%d) on %v cannot reach (%d,%d) on %v through %v", aRow, aCol, A, bRow, bCol, B, setup)
	}

	x := alg.One{A: xAtom}
	y := alg.One{A: alg.FaceAlg{Face: B, N: ty}}
	full := alg.Sequence{Algs: []alg.Algorithm{x, y, x.Inv(), y.Inv()}}

	s2 := deriveS2(setup, B)

	if !dryRun {
		if err := alg.Play(c, full); err != nil {
			return nil, err
		}
	}
	return &Result{Alg: full, S2: s2}, nil
}

// Reachable reports whether Cycle3(A,aRow,aCol,B,bRow,bCol) would succeed,
// without playing anything onto c (it runs the same computation dryRun).
// Callers that have several same-colored candidate source pieces to
// choose from should filter with this first instead of discovering
// unreachability from Cycle3's error.
func Reachable(c *cube.Cube, A geom.Face, aRow, aCol int, B geom.Face, bRow, bCol int) bool {
	_, err := Cycle3(c, A, aRow, aCol, B, bRow, bCol, true)
	return err == nil
}

// setupMove builds the X atomic for carrying A(aRow,aCol) across setup
// onto B, and reports where it lands on B.
func setupMove(setup, A geom.Face, aRow, aCol int, B geom.Face, n int) (alg.Atomic, int, int, error) {
	tx, err := ringTurn(setup, A, B)
	if err != nil {
		return nil, 0, 0, err
	}
	depth := depthAlong(setup, A, aRow, aCol, n)
	midFace, midRow, midCol := afterFaceTurn(setup, A, aRow, aCol, n, tx)
	if midFace != B {
		return nil, 0, 0, cube.NewGeometryError("ring-mismatch",
			"turning %v did not carry %v onto %v", setup, A, B)
	}
	return setupTurn(setup, tx, depth), midRow, midCol, nil
}

// setupTurn builds the X move: a turn of setup's own outer face, widened
// to the interior layer `depth` sits at (0 meaning the outer layer itself,
// already implied - no widening needed).
func setupTurn(setup geom.Face, tx, depth int) alg.Atomic {
	if depth == 0 {
		return alg.FaceAlg{Face: setup, N: tx}
	}
	return alg.SlicedFaceAlg{Face: setup, N: tx, Slices: []int{depth}}
}

// depthAlong reports the 0-based layer (0 = onFace's own bordering edge
// with setup, increasing inward) that point (row,col) on onFace sits at,
// measured along setup's own turn axis.
func depthAlong(setup, onFace geom.Face, row, col, n int) int {
	p := geom.ToPoint(onFace, row, col, n)
	return geom.LayerOf(setup, p.AxisValue(axisOfFace(setup)), n)
}

// ringTurn reports which quarter-turn count (1 or 3) of setup carries a
// piece on face `from` onto face `to`. Two non-opposite faces in setup's
// 4-face adjacency ring are always exactly one turn apart in one
// direction or the other (the only "two turns apart" pairs in that ring
// are true 3D opposites, which Cycle3 excludes before reaching here).
func ringTurn(setup, from, to geom.Face) (int, error) {
	for _, tx := range [2]int{1, 3} {
		face, _, _ := afterFaceTurn(setup, from, 0, 0, 5, tx)
		if face == to {
			return tx, nil
		}
	}
	return 0, cube.NewGeometryError("no-ring-turn", "%v and %v are not one turn apart around %v", from, to, setup)
}

// afterFaceTurn simulates turning `setup` by tx quarter turns (face-local
// clockwise convention) and reports where the point (row,col) on onFace
// lands.
func afterFaceTurn(setup, onFace geom.Face, row, col, n, tx int) (geom.Face, int, int) {
	turns := tx * geom.FaceTurnSign(setup)
	return geom.RotateSticker(onFace, row, col, n, axisOfFace(setup), turns)
}

// matchingTurn finds the quarter-turn count (1..3, face-local clockwise)
// of b that carries the point (row,col), already on b, to
// (wantRow,wantCol).
func matchingTurn(b geom.Face, row, col, wantRow, wantCol, n int) (int, bool) {
	for _, ty := range [3]int{1, 2, 3} {
		turns := ty * geom.FaceTurnSign(b)
		face, r, cc := geom.RotateSticker(b, row, col, n, axisOfFace(b), turns)
		if face == b && r == wantRow && cc == wantCol {
			return ty, true
		}
	}
	return 0, false
}

// conjugatingFace picks a face that shares an edge with both A and B -
// the "third" face used to carry a piece from A's border to B's border.
// Adjacent (non-opposite) A, B always have exactly two such faces, which
// are opposite each other; the lower Face value is picked for a stable,
// deterministic choice.
func conjugatingFace(A, B geom.Face) (geom.Face, error) {
	aAdj := geom.Adjacent(A)
	bAdj := geom.Adjacent(B)
	var candidates []geom.Face
	for _, f := range aAdj {
		if f == B {
			continue
		}
		for _, g := range bAdj {
			if f == g {
				candidates = append(candidates, f)
			}
		}
	}
	if len(candidates) == 0 {
		return 0, cube.NewGeometryError("no-conjugate", "no face adjacent to both %v and %v", A, B)
	}
	best := candidates[0]
	for _, f := range candidates {
		if f < best {
			best = f
		}
	}
	return best, nil
}

// deriveS2 returns the face a single turn of `setup` sends target's
// displaced piece to - the empirical rule spec §4.6 describes as
// validated "across all 30 source/target face pairs".
func deriveS2(setup, target geom.Face) geom.Face {
	f2, _, _ := geom.RotateSticker(target, 1, 1, 5, axisOfFace(setup), 1)
	return f2
}

func axisOfFace(f geom.Face) geom.Axis {
	a, _ := geom.FaceTurnAxis(f, 1)
	return a
}
