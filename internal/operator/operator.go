// Package operator plays algorithms against a cube, records history,
// supports undo, and exposes the scoped-acquisition hooks
// (with_animation, save_history, annotate) that higher layers use to
// describe their progress without coupling to a particular viewer.
package operator

import (
	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
)

// Operator is not reentrant and is not meant to be shared across
// goroutines (spec §5: "the operator is not reentrant").
type Operator struct {
	cube    *cube.Cube
	history []alg.Atomic
	count   int

	animationOn bool
	annotateOn  bool
	onAnimate   func(step alg.Atomic)
	onAnnotate  func(goal string)
}

// New wraps c; animation emission starts enabled, matching the
// `animation_enabled` (true) default from spec §6.
func New(c *cube.Cube) *Operator {
	return &Operator{cube: c, animationOn: true}
}

func (o *Operator) Cube() *cube.Cube { return o.cube }

// OnAnimate registers the callback invoked after each atomic step while
// animation is enabled.
func (o *Operator) OnAnimate(fn func(step alg.Atomic)) { o.onAnimate = fn }

// OnAnnotate registers the callback used by Annotate while
// solver_annotate_trackers is enabled.
func (o *Operator) OnAnnotate(fn func(goal string)) { o.onAnnotate = fn }

// Play executes an algorithm, appending each of its atomic steps to
// history. If inverse is true, Alg.Inv() is played instead.
func (o *Operator) Play(a alg.Algorithm, inverse bool) error {
	if inverse {
		a = a.Inv()
	}
	for _, atom := range a.Flatten() {
		if err := o.cube.CheckAbort(); err != nil {
			return err
		}
		atom.Apply(o.cube)
		o.history = append(o.history, atom)
		o.count++
		if o.animationOn && o.onAnimate != nil {
			o.onAnimate(atom)
		}
	}
	return nil
}

// Undo pops the last atomic step and plays its inverse without
// re-appending to history - history shrinks by one.
func (o *Operator) Undo() error {
	if len(o.history) == 0 {
		return nil
	}
	last := o.history[len(o.history)-1]
	o.history = o.history[:len(o.history)-1]
	last.Inverse().Apply(o.cube)
	return nil
}

// Reset clears the cube to its original solved state and clears history.
// Count (the all-time move counter) is unaffected, matching the spec's
// "count: number of atomic moves ever played (does not shrink on undo)".
func (o *Operator) Reset() {
	o.cube.Reset()
	o.history = nil
}

// History returns an immutable view of the recorded atomic steps, in
// play order.
func (o *Operator) History() []alg.Atomic {
	out := make([]alg.Atomic, len(o.history))
	copy(out, o.history)
	return out
}

// Count is the number of atomic moves ever played; it never shrinks.
func (o *Operator) Count() int { return o.count }

// Replay plays a list of algorithms in order - the original project's
// "replay" affordance for reconstructing a cube from a recorded history.
func (o *Operator) Replay(algs []alg.Algorithm) error {
	for _, a := range algs {
		if err := o.Play(a, false); err != nil {
			return err
		}
	}
	return nil
}
