// Package reducer reduces an NxN cube to a state indistinguishable from a
// 3x3: every face's centers solid, every edge's wings paired. It uses a
// FacesTrackerHolder to know which color belongs on which face and the
// commutator engine to move pieces without disturbing the rest of the
// reduction.
package reducer

import (
	"github.com/cubeforge/nxn/internal/commutator"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
	"github.com/cubeforge/nxn/internal/tracker"
)

// Reducer drives center-solving and edge-pairing against one cube.
type Reducer struct {
	c      *cube.Cube
	holder *tracker.FacesTrackerHolder
}

// New builds a Reducer, constructing the right FacesTrackerHolder variant
// for the cube's parity (odd cubes have fixed centers; even cubes need
// the majority-vote heuristic).
func New(c *cube.Cube) *Reducer {
	var h *tracker.FacesTrackerHolder
	if c.N%2 == 1 {
		h = tracker.NewFacesTrackerHolderOdd(c)
	} else {
		h = tracker.NewFacesTrackerHolderEven(c)
	}
	return &Reducer{c: c, holder: h}
}

// Release frees the reducer's tracker holder.
func (r *Reducer) Release() { r.holder.Release() }

// Reduce runs SolveCenters then PairEdges. If edge pairing detects
// leftover parity, Reduce returns PairEdges' EvenCubeEdgeParityException
// (the centers are already solved by then) - per spec §4.9, the
// orchestrator decides what to do with the signal.
func (r *Reducer) Reduce() error {
	if err := r.SolveCenters(); err != nil {
		return err
	}
	return r.PairEdges()
}

// SolveCenters fills every face's (N-2)x(N-2) center grid with that
// face's target color, one mismatched slice at a time: find a
// differently-placed slice of the needed color and commutate it home.
// (The greedy block-search heuristic spec §4.7 describes for reducing
// average move count on 14+ cubes is not implemented - see DESIGN.md.)
func (r *Reducer) SolveCenters() error {
	colors := r.holder.GetFaceColors()
	for _, f := range geom.AllFaces() {
		want := colors[f]
		face := r.c.Face(f)
		size := face.CenterSize()
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if face.CenterAt(row, col).Color == want {
					continue
				}
				src, sRow, sCol, ok := r.findCenterOfColor(want, f, row, col)
				if !ok {
					continue // already the correct color everywhere reachable
				}
				if _, err := commutator.Cycle3(r.c, src, sRow+1, sCol+1, f, row+1, col+1, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// findCenterOfColor looks for a differently-placed center slice of the
// needed color, preferring one Cycle3 can actually reach from - not every
// matching-colored slice is reachable from an arbitrary target slot on
// N>=5 (see commutator.Reachable and DESIGN.md). Centers of the same
// color are interchangeable, so skipping an unreachable match for a
// reachable one changes nothing about correctness.
func (r *Reducer) findCenterOfColor(want cube.Color, excludeFace geom.Face, excludeRow, excludeCol int) (geom.Face, int, int, bool) {
	for _, f := range geom.AllFaces() {
		if f == excludeFace {
			continue
		}
		face := r.c.Face(f)
		size := face.CenterSize()
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				if face.CenterAt(row, col).Color != want {
					continue
				}
				if commutator.Reachable(r.c, f, row+1, col+1, excludeFace, excludeRow+1, excludeCol+1) {
					return f, row, col, true
				}
			}
		}
	}
	return 0, 0, 0, false
}
