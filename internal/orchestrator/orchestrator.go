// Package orchestrator composes the reducer and the virtual-3x3 solver
// into the full NxN solve loop: reduce, solve, catch a parity exception,
// repair, retry - bounded by a small retry count (spec §4.9).
package orchestrator

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
	"github.com/cubeforge/nxn/internal/reducer"
	"github.com/cubeforge/nxn/internal/solver3"
)

// State is the orchestrator's externally observable phase (spec §4.9).
type State int

const (
	Unsolved State = iota
	Reducing
	Reduced
	SolvingThreeByThree
	FixingParity
	Solved
)

func (s State) String() string {
	switch s {
	case Unsolved:
		return "UNSOLVED"
	case Reducing:
		return "REDUCING"
	case Reduced:
		return "REDUCED"
	case SolvingThreeByThree:
		return "SOLVING_3X3"
	case FixingParity:
		return "FIXING_PARITY"
	case Solved:
		return "SOLVED"
	default:
		return "?"
	}
}

// SolveStep restricts orchestration to a prefix of the pipeline (spec
// §4.9). L1/L2/L3 name the beginner method's sub-stages; since solver3's
// piece-placement engine solves corners and edges together rather than
// layer by layer (see DESIGN.md), requesting any of L1/L2/L3/ALL here
// runs the full 3x3 stage - only centers_only and edges_only meaningfully
// stop short, at the reducer boundary.
type SolveStep int

const (
	All SolveStep = iota
	L1
	L2
	L3
	CentersOnly
	EdgesOnly
)

// Result reports what the orchestrator actually did, for callers (the
// CLI, the web handler) that want to report progress or move count.
type Result struct {
	FinalState     State
	ReduceRetries  int
	AppliedAlg     alg.Algorithm
	EdgeParityHit  bool
	CornerSwapHit  bool
}

// Orchestrator drives one cube through the solve loop. maxRetries bounds
// step 3's loop (spec: "bounded by a small retry count").
type Orchestrator struct {
	c           *cube.Cube
	log         zerolog.Logger
	maxRetries  int
	method      solver3.Method
}

// New builds an Orchestrator for c, defaulting to the CFOP 3x3 method
// and a retry bound of 4 (one initial reduce + up to 3 parity repairs,
// generous given spec's own observation that parity states are rare and
// independent).
func New(c *cube.Cube, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{c: c, log: log, maxRetries: 4, method: solver3.CFOP}
}

// WithMethod selects the 3x3 solving method (Beginner or CFOP).
func (o *Orchestrator) WithMethod(m solver3.Method) *Orchestrator {
	o.method = m
	return o
}

// WithMaxRetries overrides the retry bound.
func (o *Orchestrator) WithMaxRetries(n int) *Orchestrator {
	o.maxRetries = n
	return o
}

// Solve runs the full composition described in spec §4.9, honoring
// step's restriction to a pipeline prefix.
func (o *Orchestrator) Solve(step SolveStep) (*Result, error) {
	res := &Result{FinalState: Unsolved}

	if o.c.IsSolved() {
		res.FinalState = Solved
		return res, nil
	}

	if o.c.N == 3 {
		o.log.Debug().Msg("cube already 3x3, solving directly")
		res.FinalState = SolvingThreeByThree
		a, err := solver3.Solve(o.c, o.method)
		if err != nil {
			return res, err
		}
		if !o.c.IsSolved() {
			return res, cube.NewInternalError("solver3 reported success but the cube is not solved")
		}
		res.AppliedAlg = a
		res.FinalState = Solved
		return res, nil
	}

	red := reducer.New(o.c)
	defer red.Release()

	for attempt := 0; attempt < o.maxRetries; attempt++ {
		res.FinalState = Reducing
		o.log.Debug().Int("attempt", attempt).Msg("reducing")
		reduceErr := red.Reduce()
		var edgeParity *cube.EvenCubeEdgeParityException
		if reduceErr != nil {
			if errors.As(reduceErr, &edgeParity) {
				res.EdgeParityHit = true
				o.log.Debug().Msg("partial edge parity recorded during reduce, continuing")
			} else {
				return res, reduceErr
			}
		}
		res.FinalState = Reduced

		if step == CentersOnly || step == EdgesOnly {
			res.FinalState = Reduced
			return res, nil
		}

		res.FinalState = SolvingThreeByThree
		a, err := solver3.Solve(o.c, o.method)
		if err == nil {
			// solver3's own success check only samples the virtual 3x3
			// shadow (one representative slot per face/edge); assert the
			// real NxN cube before trusting it, since a reduction bug
			// elsewhere can leave other center/wing slots wrong while the
			// shadow still reads solved.
			if !o.c.IsSolved() {
				return res, cube.NewInternalError("solver3 reported success but the cube is not solved")
			}
			res.AppliedAlg = a
			res.FinalState = Solved
			return res, nil
		}

		var eep *cube.EvenCubeEdgeParityException
		var eesp *cube.EvenCubeEdgeSwapParityException
		var ecs *cube.EvenCubeCornerSwapException
		switch {
		case errors.As(err, &eep), errors.As(err, &eesp):
			// Both OLL edge-flip parity and PLL edge-swap parity are
			// repaired by the same fixed algorithm family (spec §4.7's
			// fix_edge_parity); the solver only tells them apart to
			// decide it's stuck, not to pick a different fix.
			res.FinalState = FixingParity
			res.EdgeParityHit = true
			o.log.Debug().Msg("edge parity detected, repairing")
			if ferr := red.FixEdgeParity(); ferr != nil {
				return res, ferr
			}
		case errors.As(err, &ecs):
			res.FinalState = FixingParity
			res.CornerSwapHit = true
			o.log.Debug().Msg("corner swap (PLL) parity detected, repairing")
			if ferr := red.FixCornerParity(); ferr != nil {
				return res, ferr
			}
			if perr := red.PairEdges(); perr != nil {
				return res, perr
			}
		default:
			return res, err
		}
	}

	return res, cube.NewInternalError("orchestrator: exceeded %d reduce/solve retries", o.maxRetries)
}
