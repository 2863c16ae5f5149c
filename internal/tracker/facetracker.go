package tracker

import (
	"github.com/google/uuid"

	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
)

// FaceTracker locates one logical face (a color's role, e.g. "the face
// that should end up White") as the cube rotates.
type FaceTracker interface {
	Face() (geom.Face, bool)
	Release()
}

// SimpleFaceTracker locates a face by a predicate over its current
// state - used for odd cubes, where a face's single true center never
// moves, so "center color == target" is a stable predicate, and for
// "the opposite of another tracker's face".
type SimpleFaceTracker struct {
	c    *cube.Cube
	pred func(f geom.Face) bool
}

func NewSimpleFaceTracker(c *cube.Cube, pred func(f geom.Face) bool) *SimpleFaceTracker {
	return &SimpleFaceTracker{c: c, pred: pred}
}

func (t *SimpleFaceTracker) Face() (geom.Face, bool) {
	for _, f := range geom.AllFaces() {
		if t.pred(f) {
			return f, true
		}
	}
	return 0, false
}

func (t *SimpleFaceTracker) Release() {}

// OddCubeCenterPredicate returns a predicate matching the face whose
// single fixed center facelet currently shows `color` - valid only when
// the cube's side is odd (a true, immovable center exists).
func OddCubeCenterPredicate(c *cube.Cube, color cube.Color) func(geom.Face) bool {
	return func(f geom.Face) bool {
		mid := c.N / 2
		return c.Face(f).At(mid, mid).Color == color
	}
}

// OppositeOf returns a predicate matching the face opposite the one held
// by another tracker.
func OppositeOf(other FaceTracker) func(geom.Face) bool {
	return func(f geom.Face) bool {
		of, ok := other.Face()
		return ok && geom.Opposite(of) == f
	}
}

// MarkedFaceTracker is the even-cube variant: it stamps a unique key onto
// one center slice of the target face at construction time and locates
// the face containing that marked slice afterward.
type MarkedFaceTracker struct {
	c   *cube.Cube
	key uuid.UUID
}

// NewMarkedFaceTracker stamps a center slice of `face` (at cube
// construction's orientation) with a fresh key.
func NewMarkedFaceTracker(c *cube.Cube, face geom.Face) *MarkedFaceTracker {
	k := uuid.New()
	c.Face(face).CenterAt(0, 0).SetAttr(k, true)
	return &MarkedFaceTracker{c: c, key: k}
}

func (t *MarkedFaceTracker) Face() (geom.Face, bool) {
	var found geom.Face
	ok := false
	t.c.AllFacelets(func(f geom.Face, r, co int, pe *cube.PartEdge) {
		if ok {
			return
		}
		if _, has := pe.Attr(t.key); has {
			found, ok = f, true
		}
	})
	return found, ok
}

func (t *MarkedFaceTracker) Release() {
	if f, ok := t.Face(); ok {
		face := t.c.Face(f)
		for r := 0; r < face.CenterSize(); r++ {
			for col := 0; col < face.CenterSize(); col++ {
				face.CenterAt(r, col).ClearAttr(t.key)
			}
		}
	}
}

// FacesTrackerHolder owns six FaceTrackers, one per logical face-color
// role, and ensures their markers are released together.
type FacesTrackerHolder struct {
	c        *cube.Cube
	trackers map[cube.Color]FaceTracker
}

// NewFacesTrackerHolderOdd builds a holder for an odd cube using the
// fixed-center predicate for every color.
func NewFacesTrackerHolderOdd(c *cube.Cube) *FacesTrackerHolder {
	h := &FacesTrackerHolder{c: c, trackers: map[cube.Color]FaceTracker{}}
	for _, col := range []cube.Color{cube.White, cube.Yellow, cube.Blue, cube.Green, cube.Red, cube.Orange} {
		h.trackers[col] = NewSimpleFaceTracker(c, OddCubeCenterPredicate(c, col))
	}
	return h
}

// NewFacesTrackerHolderEven builds a holder for an even cube using the
// majority-vote heuristic from spec §4.5:
//  1. face #1 = the face with the plurality of one color among its centers
//  2. face #2 = its opposite
//  3. face #3 = from the remaining four, whichever maximizes its own
//     dominant color's center count
//  4. face #4 = opposite of #3
//  5. faces #5, #6 = the last two, assigned so the whole layout is BOY
func NewFacesTrackerHolderEven(c *cube.Cube) *FacesTrackerHolder {
	dominant := map[geom.Face]cube.Color{}
	counts := map[geom.Face]int{}
	for _, f := range geom.AllFaces() {
		col, n := dominantCenterColor(c, f)
		dominant[f] = col
		counts[f] = n
	}

	boy := cube.BOYLayout()
	face1 := geom.AllFaces()[0]
	for _, f := range geom.AllFaces() {
		if counts[f] > counts[face1] {
			face1 = f
			continue
		}
		// Tie-break toward a face whose own plurality color is already
		// BOY-consistent at its position, per spec §4.5 step 1 - avoids
		// picking a face whose own vote will only get overridden by the
		// #5/#6 BOY fixup below anyway.
		if counts[f] == counts[face1] && dominant[f] == boy.ColorOf(f) && dominant[face1] != boy.ColorOf(face1) {
			face1 = f
		}
	}
	face2 := geom.Opposite(face1)

	remaining := []geom.Face{}
	for _, f := range geom.AllFaces() {
		if f != face1 && f != face2 {
			remaining = append(remaining, f)
		}
	}
	face3 := remaining[0]
	for _, f := range remaining {
		if counts[f] > counts[face3] {
			face3 = f
		}
	}
	face4 := geom.Opposite(face3)

	var last []geom.Face
	for _, f := range remaining {
		if f != face3 && f != face4 {
			last = append(last, f)
		}
	}

	h := &FacesTrackerHolder{c: c, trackers: map[cube.Color]FaceTracker{}}
	assign := func(f geom.Face, col cube.Color) {
		h.trackers[col] = NewMarkedFaceTracker(c, f)
	}
	assign(face1, dominant[face1])
	assign(face2, dominant[face2])
	assign(face3, dominant[face3])
	assign(face4, dominant[face4])
	// Faces #5/#6: assign so the whole layout is BOY-consistent with what
	// has already been fixed, rather than trusting their own (possibly
	// tied) dominant-color vote.
	for _, f := range last {
		assign(f, boy.ColorOf(f))
	}
	return h
}

func dominantCenterColor(c *cube.Cube, f geom.Face) (cube.Color, int) {
	face := c.Face(f)
	counts := map[cube.Color]int{}
	for r := 0; r < face.CenterSize(); r++ {
		for col := 0; col < face.CenterSize(); col++ {
			counts[face.CenterAt(r, col).Color]++
		}
	}
	best := cube.White
	bestN := -1
	for _, col := range []cube.Color{cube.White, cube.Yellow, cube.Blue, cube.Green, cube.Red, cube.Orange} {
		if counts[col] > bestN {
			best, bestN = col, counts[col]
		}
	}
	return best, bestN
}

// GetFaceColors returns the current {FaceName -> Color} assignment this
// holder has resolved.
func (h *FacesTrackerHolder) GetFaceColors() map[geom.Face]cube.Color {
	out := make(map[geom.Face]cube.Color, 6)
	for col, t := range h.trackers {
		if f, ok := t.Face(); ok {
			out[f] = col
		}
	}
	return out
}

// AssertIsBOY reports whether the holder's resolved layout is a valid BOY
// assignment up to whole-cube rotation (spec testable property #7).
func (h *FacesTrackerHolder) AssertIsBOY() bool {
	colors := h.GetFaceColors()
	l, err := cube.NewCubeLayout(colors)
	if err != nil {
		return false
	}
	return l.IsBOY()
}

// Release releases every owned tracker.
func (h *FacesTrackerHolder) Release() {
	for _, t := range h.trackers {
		t.Release()
	}
}

// Tracker returns the FaceTracker for a given color role.
func (h *FacesTrackerHolder) Tracker(c cube.Color) FaceTracker { return h.trackers[c] }
