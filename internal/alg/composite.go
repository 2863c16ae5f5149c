package alg

import (
	"strconv"
	"strings"

	"github.com/cubeforge/nxn/internal/cube"
)

// Algorithm is any playable unit: a single Atomic move, or a composite
// built from Sequence/Repetition/Inverse. Play and Inv are total
// functions over this variant set (Design Notes §9).
type Algorithm interface {
	Flatten() []Atomic
	Inv() Algorithm
	String() string
}

// One wraps a single Atomic as an Algorithm.
type One struct{ A Atomic }

func (o One) Flatten() []Atomic { return []Atomic{o.A} }
func (o One) Inv() Algorithm    { return One{o.A.Inverse()} }
func (o One) String() string    { return o.A.String() }

// Sequence plays its members left to right.
type Sequence struct{ Algs []Algorithm }

func (s Sequence) Flatten() []Atomic {
	var out []Atomic
	for _, a := range s.Algs {
		out = append(out, a.Flatten()...)
	}
	return out
}

// Inv of a sequence reverses order and inverts each member:
// inv(seq(a,b,c)) = seq(inv(c), inv(b), inv(a)).
func (s Sequence) Inv() Algorithm {
	out := make([]Algorithm, len(s.Algs))
	for i, a := range s.Algs {
		out[len(s.Algs)-1-i] = a.Inv()
	}
	return Sequence{out}
}

func (s Sequence) String() string {
	parts := make([]string, len(s.Algs))
	for i, a := range s.Algs {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

// Repetition plays Alg K times.
type Repetition struct {
	Alg Algorithm
	K   int
}

func (r Repetition) Flatten() []Atomic {
	var out []Atomic
	for i := 0; i < r.K; i++ {
		out = append(out, r.Alg.Flatten()...)
	}
	return out
}
func (r Repetition) Inv() Algorithm { return Repetition{r.Alg.Inv(), r.K} }
func (r Repetition) String() string {
	s := r.Alg.String()
	if needsParens(r.Alg) {
		s = "(" + s + ")"
	}
	return s + " " + strconv.Itoa(r.K)
}

func needsParens(a Algorithm) bool {
	switch a.(type) {
	case Sequence:
		return true
	default:
		return false
	}
}

// Play applies every atomic step of alg to c, in order.
func Play(c *cube.Cube, a Algorithm) error {
	for _, atom := range a.Flatten() {
		if err := c.CheckAbort(); err != nil {
			return err
		}
		atom.Apply(c)
	}
	return nil
}
