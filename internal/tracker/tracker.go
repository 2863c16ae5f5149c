// Package tracker lets solvers follow physical parts and faces across
// arbitrary rotations, which relabel positions but never move a part's
// identity. Most trackers stamp a unique google/uuid key into one or more
// PartEdges' moveable_attributes and re-locate the part by scanning for
// that key; CornerTracker and EdgeTracker instead scan for a matching color
// set, needing no marker at all.
package tracker

import (
	"github.com/google/uuid"

	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
)

// PartSliceTracker stamps a unique key into one PartEdge and later
// re-locates that exact facelet by scanning.
type PartSliceTracker struct {
	c   *cube.Cube
	key uuid.UUID
}

// NewPartSliceTracker stamps pe with a fresh key.
func NewPartSliceTracker(c *cube.Cube, pe *cube.PartEdge) *PartSliceTracker {
	k := uuid.New()
	pe.SetAttr(k, true)
	return &PartSliceTracker{c: c, key: k}
}

// Locate scans every facelet for the stamped key.
func (t *PartSliceTracker) Locate() (face geom.Face, row, col int, ok bool) {
	t.c.AllFacelets(func(f geom.Face, r, co int, pe *cube.PartEdge) {
		if ok {
			return
		}
		if _, has := pe.Attr(t.key); has {
			face, row, col, ok = f, r, co, true
		}
	})
	return
}

// Release removes the stamped key, restoring the facelet to its
// untracked state - the tracker's scoped cleanup.
func (t *PartSliceTracker) Release() {
	if f, r, c, ok := t.Locate(); ok {
		t.c.Face(f).At(r, c).ClearAttr(t.key)
	}
}

// MarkedPartTracker stamps the same key onto every facelet of a multi-
// facelet Part (a corner's 3 facelets, an edge wing's 2, or a single
// center slice's 1), and resolves the part's current position as the set
// of facelets sharing that key.
type MarkedPartTracker struct {
	c   *cube.Cube
	key uuid.UUID
}

// NewMarkedPartTracker stamps every PartEdge in pes with a fresh shared
// key.
func NewMarkedPartTracker(c *cube.Cube, pes []*cube.PartEdge) *MarkedPartTracker {
	k := uuid.New()
	for _, pe := range pes {
		pe.SetAttr(k, true)
	}
	return &MarkedPartTracker{c: c, key: k}
}

// Located is one facelet found bearing the tracker's key.
type Located struct {
	Face     geom.Face
	Row, Col int
}

// Locate returns every facelet currently bearing the tracker's key.
func (t *MarkedPartTracker) Locate() []Located {
	var out []Located
	t.c.AllFacelets(func(f geom.Face, r, co int, pe *cube.PartEdge) {
		if _, has := pe.Attr(t.key); has {
			out = append(out, Located{f, r, co})
		}
	})
	return out
}

// Release clears the key from every facelet it currently marks.
func (t *MarkedPartTracker) Release() {
	for _, l := range t.Locate() {
		t.c.Face(l.Face).At(l.Row, l.Col).ClearAttr(t.key)
	}
}

// MultiPartTracker is a MarkedPartTracker's plural form: it owns several
// independent per-part trackers (e.g. all 12 edges at once) and releases
// them together.
type MultiPartTracker struct {
	Parts []*MarkedPartTracker
}

func (m *MultiPartTracker) Release() {
	for _, p := range m.Parts {
		p.Release()
	}
}
