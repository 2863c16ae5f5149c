package reducer

import (
	"github.com/cubeforge/nxn/internal/commutator"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
)

// PairEdges pairs each of the 12 edges' N-2 wings into a single solid
// color pair, matching each edge's home colors (the layout colors of the
// two faces it borders). Wings already matching are skipped; a
// mismatched wing is replaced by commutating in a correctly colored wing
// found elsewhere on the cube.
//
// EvenCubeEdgeParityException is returned when, after every wing has been
// attempted, one edge is left with an odd wing out - unreachable on a
// true 3x3, reachable here because N is even (spec §4.7).
func (r *Reducer) PairEdges() error {
	layout := r.c.Layout()
	edges := geom.Edges()
	if r.c.N == 3 {
		return nil // every "wing" on a 3x3 edge is its own whole edge; nothing to pair
	}

	unresolved := 0
	for _, e := range edges {
		want := [2]cube.Color{layout.ColorOf(e.Faces[0]), layout.ColorOf(e.Faces[1])}
		for i := 0; i < r.c.N-2; i++ {
			colors := r.c.EdgeWingColors(e, i)
			if colors == want {
				continue
			}
			if src, srcIdx, ok := r.findEdgeWingOfColors(want, e, i); ok {
				p0 := geom.EdgeWingPoint(src, srcIdx, r.c.N)
				row0, col0 := geom.FromPoint(src.Faces[0], p0, r.c.N)
				p1 := geom.EdgeWingPoint(e, i, r.c.N)
				row1, col1 := geom.FromPoint(e.Faces[0], p1, r.c.N)
				if _, err := commutator.Cycle3(r.c, src.Faces[0], row0, col0, e.Faces[0], row1, col1, false); err != nil {
					return err
				}
			} else {
				unresolved++
			}
		}
	}
	if unresolved%2 == 1 {
		return &cube.EvenCubeEdgeParityException{}
	}
	return nil
}

// findEdgeWingOfColors looks for a differently-placed wing with the
// needed color pair, preferring one Cycle3 can actually reach from (see
// commutator.Reachable and DESIGN.md - not every same-colored wing is
// reachable from an arbitrary target wing slot on N>=5).
func (r *Reducer) findEdgeWingOfColors(want [2]cube.Color, exclude geom.Edge, excludeIdx int) (geom.Edge, int, bool) {
	targetP := geom.EdgeWingPoint(exclude, excludeIdx, r.c.N)
	targetRow, targetCol := geom.FromPoint(exclude.Faces[0], targetP, r.c.N)
	for _, e := range geom.Edges() {
		for i := 0; i < r.c.N-2; i++ {
			if e == exclude && i == excludeIdx {
				continue
			}
			colors := r.c.EdgeWingColors(e, i)
			if colors != want {
				continue
			}
			srcP := geom.EdgeWingPoint(e, i, r.c.N)
			srcRow, srcCol := geom.FromPoint(e.Faces[0], srcP, r.c.N)
			if commutator.Reachable(r.c, e.Faces[0], srcRow, srcCol, exclude.Faces[0], targetRow, targetCol) {
				return e, i, true
			}
		}
	}
	return geom.Edge{}, 0, false
}

// FixEdgeParity plays the OLL-parity algorithm that flips exactly one
// pair of edge wings in place: a wide double-turn sandwiching a half-turn
// of the opposing face, the standard big-cube parity fix, expressed here
// with depth-2 wide moves so it scales to any even N.
func (r *Reducer) FixEdgeParity() error {
	a, err := parseFixAlg("r[2]2 B2 U2 r[2]2 U2 F2 r[2]2")
	if err != nil {
		return err
	}
	return playAlg(r.c, a)
}

// FixCornerParity plays the PLL-parity algorithm that swaps two corners,
// an inner-slice move family. Per spec §4.7, this disturbs edge pairing;
// callers must re-run PairEdges afterward.
func (r *Reducer) FixCornerParity() error {
	a, err := parseFixAlg("r[2]2 U2 r[2]2 u[2]2 r[2]2 u[2]2")
	if err != nil {
		return err
	}
	return playAlg(r.c, a)
}
