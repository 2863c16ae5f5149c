package cube

import (
	"sync"

	"github.com/cubeforge/nxn/internal/geom"
)

// ModifiedFunc is called after every mutating operation, before control
// returns to the caller (spec: "every mutating operation must eventually
// emit modified"). The external viewer is the only real subscriber; the
// core never depends on what a listener does with the notification.
type ModifiedFunc func()

// Face is one face's NxN grid of facelets, row 0 = bottom, col 0 = left.
type Face struct {
	name geom.Face
	n    int
	grid [][]PartEdge
}

func newFace(name geom.Face, n int, color Color) *Face {
	g := make([][]PartEdge, n)
	for r := range g {
		g[r] = make([]PartEdge, n)
		for c := range g[r] {
			g[r][c] = newPartEdge(color)
		}
	}
	return &Face{name: name, n: n, grid: g}
}

func (f *Face) Name() geom.Face { return f.name }

// At returns a pointer to the facelet at (row, col), row 0 = bottom,
// col 0 = left, so callers may both read and stamp attributes in place.
func (f *Face) At(row, col int) *PartEdge { return &f.grid[row][col] }

// CenterAt indexes into the (n-2)x(n-2) center grid by 0-based (row, col)
// within that sub-grid (spec: CenterSlice "positioned at (row,col) in an
// (N-2)x(N-2) grid").
func (f *Face) CenterAt(row, col int) *PartEdge { return f.At(row+1, col+1) }

// CenterSize is the center-grid side length N-2.
func (f *Face) CenterSize() int { return f.n - 2 }

// Cube is the aggregate: size N, the six faces, the originating layout,
// and a CacheManager. It emits `modified` after every structural change.
type Cube struct {
	N        int
	faces    map[geom.Face]*Face
	layout   *CubeLayout
	cache    *CacheManager
	onMod    []ModifiedFunc
	abortReq bool
	mu       sync.Mutex // guards abortReq; the cube itself is not meant to be shared across goroutines
}

// NewCube builds a solved cube of size n using the default BOY layout.
func NewCube(n int) *Cube {
	return NewCubeWithLayout(n, BOYLayout())
}

// NewCubeWithLayout builds a solved cube of size n with an explicit layout.
func NewCubeWithLayout(n int, layout *CubeLayout) *Cube {
	c := &Cube{
		N:      n,
		faces:  make(map[geom.Face]*Face, 6),
		layout: layout,
		cache:  NewCacheManager(),
	}
	for _, f := range geom.AllFaces() {
		c.faces[f] = newFace(f, n, layout.ColorOf(f))
	}
	return c
}

func (c *Cube) Face(f geom.Face) *Face { return c.faces[f] }

func (c *Cube) Layout() *CubeLayout { return c.layout }

func (c *Cube) Cache() *CacheManager { return c.cache }

// OnModified registers a listener invoked after every mutating operation.
func (c *Cube) OnModified(fn ModifiedFunc) { c.onMod = append(c.onMod, fn) }

func (c *Cube) emitModified() {
	c.cache.InvalidateAll()
	for _, fn := range c.onMod {
		fn()
	}
}

// RequestAbort is called from an external thread/goroutine to request
// that a long-running solve stop at the next atomic step.
func (c *Cube) RequestAbort() {
	c.mu.Lock()
	c.abortReq = true
	c.mu.Unlock()
}

// CheckAbort returns OpAborted (and clears the flag) if an abort was
// requested since the last check; called by the operator between atomic
// moves.
func (c *Cube) CheckAbort() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.abortReq {
		c.abortReq = false
		return &OpAborted{}
	}
	return nil
}

// IsSolved reports whether every face's facelets are a single solid color
// matching that face's layout color.
func (c *Cube) IsSolved() bool {
	for _, f := range geom.AllFaces() {
		face := c.faces[f]
		want := c.layout.ColorOf(f)
		for r := 0; r < c.N; r++ {
			for col := 0; col < c.N; col++ {
				if face.grid[r][col].Color != want {
					return false
				}
			}
		}
	}
	return true
}

// AllFacelets iterates every (face, row, col) in a stable order - useful
// for invariant checks and state snapshots.
func (c *Cube) AllFacelets(fn func(f geom.Face, row, col int, pe *PartEdge)) {
	for _, f := range geom.AllFaces() {
		face := c.faces[f]
		for r := 0; r < c.N; r++ {
			for col := 0; col < c.N; col++ {
				fn(f, r, col, &face.grid[r][col])
			}
		}
	}
}

// AssertInvariants re-validates the structural invariants from the data
// model: the facelet total and, unless wildcard Grey facelets are
// present, N*N facelets of each color. It is O(N^2) per call and runs only
// when a caller invokes it; moves do not run it.
func (c *Cube) AssertInvariants() error {
	counts := map[Color]int{}
	total := 0
	c.AllFacelets(func(f geom.Face, row, col int, pe *PartEdge) {
		counts[pe.Color]++
		total++
	})
	if total != 6*c.N*c.N {
		return NewInternalError("expected %d facelets, found %d", 6*c.N*c.N, total)
	}
	if counts[Grey] > 0 {
		return nil // shadow cube with wildcards: per-color counts are not meaningful
	}
	for _, col := range []Color{White, Yellow, Blue, Green, Red, Orange} {
		if counts[col] != c.N*c.N {
			return NewInternalError("color %v has %d facelets, want %d", col, counts[col], c.N*c.N)
		}
	}
	return nil
}
