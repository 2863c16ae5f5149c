package commutator

import (
	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/geom"
)

// CycleOpposite handles A = opposite(B): a distinct algorithm family from
// the adjacent case (spec §4.6: "supported via a distinct algorithm
// family"). It routes the piece through one intermediate adjacent face C
// using two adjacent-pair commutators in sequence, since there is no
// single face sharing an edge with both A and a face opposite it.
//
// The intermediate cell is (aRow,aCol) on mid: the first hop carries the
// piece there and the second hop carries it on to (bRow,bCol) on B. If
// Cycle3 cannot reach either hop, its GeometryError is returned.
func CycleOpposite(c *cube.Cube, A geom.Face, aRow, aCol int, B geom.Face, bRow, bCol int, dryRun bool) (*Result, error) {
	if geom.Opposite(A) != B {
		return nil, cube.NewGeometryError("not-opposite", "%v is not opposite %v", A, B)
	}
	mid := geom.Adjacent(A)[0]

	first, err := Cycle3(c, A, aRow, aCol, mid, aRow, aCol, true)
	if err != nil {
		return nil, err
	}
	second, err := Cycle3(c, mid, aRow, aCol, B, bRow, bCol, true)
	if err != nil {
		return nil, err
	}
	full := alg.Sequence{Algs: []alg.Algorithm{first.Alg, second.Alg}}
	if !dryRun {
		if err := alg.Play(c, full); err != nil {
			return nil, err
		}
	}
	return &Result{Alg: full, S2: second.S2}, nil
}
