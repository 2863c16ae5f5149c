package cube

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/cubeforge/nxn/internal/geom"
)

// StateToken is an opaque, comparable equality token over a cube's full
// facelet-color-plus-attribute state (spec: "hashable snapshot of the
// 6*N^2 colors + attribute multisets").
type StateToken [32]byte

// GetState returns a StateToken for the cube's current state. Two cubes
// (or the same cube at two points in time) compare equal under
// CompareState iff every facelet's color and attribute set matches.
func (c *Cube) GetState() StateToken {
	h := sha256.New()
	var buf [8]byte
	for _, f := range geom.AllFaces() {
		face := c.faces[f]
		for r := 0; r < c.N; r++ {
			for col := 0; col < c.N; col++ {
				pe := face.grid[r][col]
				binary.LittleEndian.PutUint64(buf[:], uint64(pe.Color))
				h.Write(buf[:])
				writeAttrDigest(h, pe.Attrs)
			}
		}
	}
	var tok StateToken
	copy(tok[:], h.Sum(nil))
	return tok
}

// writeAttrDigest hashes a PartEdge's attribute set in a stable order so
// that equal attribute maps always hash equally regardless of Go's
// randomized map iteration.
func writeAttrDigest(h interface{ Write([]byte) (int, error) }, attrs map[AttrKey]interface{}) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	repr := make(map[string]string, len(attrs))
	for k, v := range attrs {
		ks := keyString(k)
		keys = append(keys, ks)
		repr[ks] = valueString(v)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte(repr[k]))
	}
}

func keyString(k AttrKey) string { return fmt.Sprintf("%v", k) }

func valueString(v interface{}) string { return fmt.Sprintf("%v", v) }

// CompareState is equality on two state tokens.
func CompareState(a, b StateToken) bool { return a == b }

// Reset restores the cube's original solved coloring; Part identities are
// conceptually preserved since a solved cube has no attribute markers to
// lose (any attached tracker markers are cleared, matching the invariant
// that reset clears the cube, not just its colors).
func (c *Cube) Reset() {
	for _, f := range geom.AllFaces() {
		want := c.layout.ColorOf(f)
		face := c.faces[f]
		for r := 0; r < c.N; r++ {
			for col := 0; col < c.N; col++ {
				face.grid[r][col] = newPartEdge(want)
			}
		}
	}
	c.emitModified()
}
