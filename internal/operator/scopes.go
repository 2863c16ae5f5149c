package operator

// WithAnimation is a scoped acquisition (Design Notes §9) that toggles
// animation emission for the duration of the returned done func's
// lifetime, restoring the previous setting on every exit path:
//
//	done := op.WithAnimation(false)
//	defer done()
func (o *Operator) WithAnimation(on bool) (done func()) {
	prev := o.animationOn
	o.animationOn = on
	return func() { o.animationOn = prev }
}

// SaveHistory is a scoped acquisition that captures the current history
// and count, and restores both on exit - used by the solver's "compute a
// candidate solution without committing to it" path (e.g. the
// commutator's dry_run mode composes with this at a higher level).
func (o *Operator) SaveHistory() (done func()) {
	savedHistory := o.History()
	savedCount := o.count
	return func() {
		o.history = savedHistory
		o.count = savedCount
	}
}

// Annotate passes a sub-goal string to the OnAnnotate callback (separate
// from the OnAnimate callback animation steps use), when annotation is
// enabled; the returned done func clears it.
// This mirrors the original project's "describe current sub-goal to
// observers" affordance (solver_annotate_trackers).
func (o *Operator) Annotate(goal string) (done func()) {
	if !o.annotateOn || o.onAnnotate == nil {
		return func() {}
	}
	o.onAnnotate(goal)
	return func() { o.onAnnotate("") }
}

// SetAnnotateTrackers toggles the solver_annotate_trackers knob.
func (o *Operator) SetAnnotateTrackers(on bool) { o.annotateOn = on }
