package cube

import (
	"fmt"
	"sync"

	"github.com/cubeforge/nxn/internal/geom"
)

// CubeLayout assigns a Color to each geom.Face. The topology (opposites,
// adjacency, slice parallelism, corner wiring) never varies with layout -
// that is geom's job, fixed and singleton. CubeLayout only varies the
// color-to-face labeling on top of that fixed topology.
type CubeLayout struct {
	colorOf map[geom.Face]Color
	faceOf  map[Color]geom.Face
}

// NewCubeLayout builds a layout from an explicit Color->Face assignment.
// It is the caller's responsibility to supply a bijection over the six
// faces; callers that just want the default should use BOYLayout().
func NewCubeLayout(assignment map[geom.Face]Color) (*CubeLayout, error) {
	if len(assignment) != 6 {
		return nil, NewInternalError("layout needs exactly 6 face assignments, got %d", len(assignment))
	}
	l := &CubeLayout{
		colorOf: make(map[geom.Face]Color, 6),
		faceOf:  make(map[Color]geom.Face, 6),
	}
	for f, c := range assignment {
		l.colorOf[f] = c
		l.faceOf[c] = f
	}
	if len(l.faceOf) != 6 {
		return nil, NewInternalError("layout colors are not a bijection over the six faces")
	}
	return l, nil
}

func (l *CubeLayout) ColorOf(f geom.Face) Color { return l.colorOf[f] }
func (l *CubeLayout) FaceOf(c Color) geom.Face  { return l.faceOf[c] }

// IsBOY reports whether this layout is equivalent to the canonical BOY
// scheme (Blue-Orange-Yellow on Front-Left-Up) up to whole-cube rotation.
// It tries every rotation x^a y^b z^c (a, b, c in 0..3, which covers all
// 24 orientations) of the canonical assignment against this layout.
func (l *CubeLayout) IsBOY() bool {
	want := map[geom.Face]Color{
		geom.F: Blue, geom.L: Orange, geom.U: Yellow,
		geom.B: Green, geom.R: Red, geom.D: White,
	}
	for r := 0; r < 64; r++ {
		match := true
		for f, c := range want {
			g, _, _ := geom.RotateSticker(f, 1, 1, 3, geom.AxisX, r%4)
			g, _, _ = geom.RotateSticker(g, 1, 1, 3, geom.AxisY, r/4%4)
			g, _, _ = geom.RotateSticker(g, 1, 1, 3, geom.AxisZ, r/16)
			match = match && l.colorOf[g] == c
		}
		if match {
			return true
		}
	}
	return false
}

var (
	boyOnce   sync.Once
	boySingle *CubeLayout
)

// BOYLayout returns the process-wide canonical BOY layout singleton
// (Design Notes §9: "module-level singletons ... realize as lazily
// initialized process-wide constants").
func BOYLayout() *CubeLayout {
	boyOnce.Do(func() {
		l, err := NewCubeLayout(map[geom.Face]Color{
			geom.F: Blue, geom.L: Orange, geom.U: Yellow,
			geom.B: Green, geom.R: Red, geom.D: White,
		})
		if err != nil {
			panic(fmt.Sprintf("cube: BOY singleton failed to construct: %v", err))
		}
		boySingle = l
	})
	return boySingle
}
