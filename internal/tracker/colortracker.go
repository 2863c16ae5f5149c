package tracker

import (
	"sort"

	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
)

// CornerTracker identifies a corner part by the *set* of its three
// colors, scanning all 8 corner slots for a match. No marker is needed;
// it only works once the color layout is fixed and each corner's color
// set is unique (true once every face's centers are solid, i.e. after
// reduction - the reducer's assumption for handing off to the 3x3 solver).
type CornerTracker struct {
	c      *cube.Cube
	target colorSet
}

func colorKey(colors []cube.Color) colorSet {
	cp := append([]cube.Color(nil), colors...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	var out colorSet
	copy(out[:], cp)
	return out
}

type colorSet [3]cube.Color

// NewCornerTracker targets the corner whose solved-state colors are
// `colors` (any order).
func NewCornerTracker(c *cube.Cube, colors [3]cube.Color) *CornerTracker {
	return &CornerTracker{c: c, target: colorKey(colors[:])}
}

// Locate scans all 8 corners for the matching color set.
func (t *CornerTracker) Locate() (geom.Corner, bool) {
	for _, co := range geom.Corners() {
		colors := t.c.CornerColors(co)
		if colorKey(colors[:]) == t.target {
			return co, true
		}
	}
	return geom.Corner{}, false
}

// EdgeTracker identifies a (paired) edge by its two colors, scanning all
// 12 edge slots' wing-0 colors for a match. Only meaningful once the
// cube's edges have been paired (all wings on an edge agree), the same
// precondition as CornerTracker.
type EdgeTracker struct {
	c      *cube.Cube
	target [2]cube.Color
}

func edgeKey(a, b cube.Color) [2]cube.Color {
	if a > b {
		a, b = b, a
	}
	return [2]cube.Color{a, b}
}

func NewEdgeTracker(c *cube.Cube, a, b cube.Color) *EdgeTracker {
	return &EdgeTracker{c: c, target: edgeKey(a, b)}
}

func (t *EdgeTracker) Locate() (geom.Edge, bool) {
	for _, e := range geom.Edges() {
		colors := t.c.EdgeWingColors(e, 0)
		if edgeKey(colors[0], colors[1]) == t.target {
			return e, true
		}
	}
	return geom.Edge{}, false
}
