package parallax

// Seed drives the tree with a raw value expressed in the effect's own
// interval. The effect's progress is interval.ProgressFor(value); from there
// every node, in depth-first attachment order:
//
//  1. clamps progress to [0, 1] if Clamped,
//  2. applies its Curve,
//  3. reports interval.ValueAt(shaped progress) through OnChange,
//  4. hands the shaped progress to each child, renormalized into the child's
//     focus window when it has one.
//
// Seeding is synchronous and allocates nothing. Panics if the effect has no
// valid interval (a zero Effect literal). The same value always produces
// the same sequence of callbacks.
func (e *Effect[T]) Seed(value T) {
	e.mustBeValid()
	e.propagate(e.interval.ProgressFor(value))
}

// SeedProgress drives the tree with a progress value that is already
// normalized to the effect's interval.
func (e *Effect[T]) SeedProgress(p T) {
	e.mustBeValid()
	e.propagate(p)
}

// Evaluate returns the output the effect would report for value, without
// invoking any callbacks or visiting children.
func (e *Effect[T]) Evaluate(value T) T {
	e.mustBeValid()
	_, out := e.shape(e.interval.ProgressFor(value))
	return out
}

func (e *Effect[T]) shape(p T) (shaped, out T) {
	if e.Clamped {
		p = ClampToUnitInterval(p)
	}
	shaped = e.Curve.Apply(p)
	return shaped, e.interval.ValueAt(shaped)
}

func (e *Effect[T]) propagate(p T) {
	shaped, out := e.shape(p)
	if e.OnChange != nil {
		e.OnChange(out)
	}
	if e.changes != nil {
		e.changes.Publish(out)
	}
	for i := range e.children {
		b := &e.children[i]
		if b.focused {
			b.effect.propagate(focus(shaped, b.sub))
		} else {
			b.effect.propagate(shaped)
		}
	}
}
