// Package solver3 solves the "virtual 3x3" stage: once an NxN cube has
// been reduced (solid centers, paired edge wings), corners and edges
// behave exactly like a 3x3's pieces, and can be solved by sampling them
// into a real 3x3 shadow cube, solving that, and replaying the result.
package solver3

import (
	"fmt"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
)

// Method selects which staging is reported while solving; both methods
// share the same piece-placement engine underneath (see DESIGN.md for
// why a from-scratch CFOP with hand-authored OLL/PLL tables was not
// attempted).
type Method int

const (
	Beginner Method = iota
	CFOP
)

func (m Method) String() string {
	switch m {
	case Beginner:
		return "beginner"
	case CFOP:
		return "cfop"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Solve runs the layer-solving stage against an already-reduced cube c:
// it builds a 3x3 shadow cube from c's centers and paired edges, places
// every corner and edge by color, fixes any leftover twists/flips, then
// replays the resulting algorithm onto c itself. The returned error may
// be one of cube's three even-cube parity exceptions, which the
// orchestrator is expected to catch and route through the reducer's
// parity-fix algorithms before retrying.
func Solve(c *cube.Cube, method Method) (alg.Algorithm, error) {
	v := buildVirtual(c)

	var steps []alg.Algorithm
	collect := func(s []alg.Algorithm, err error) error {
		steps = append(steps, s...)
		return err
	}

	if err := collect(placeCorners(v)); err != nil {
		return nil, err
	}
	if err := collect(placeEdges(v)); err != nil {
		return nil, err
	}
	if err := collect(fixCornerOrientation(v)); err != nil {
		return nil, err
	}
	if err := collect(fixEdgeOrientation(v)); err != nil {
		return nil, err
	}

	if !v.IsSolved() {
		return nil, cube.NewInternalError("solver3: shadow cube still unsolved after placement and orientation passes (method=%s)", method)
	}

	full := alg.Sequence{Algs: steps}
	if err := alg.Play(c, full); err != nil {
		return nil, err
	}
	return full, nil
}
