package parallax

import (
	"errors"
	"fmt"
)

// ErrSubintervalOutOfRange is returned when a child is focused on a window
// that does not lie within the parent's [0, 1] progress space.
var ErrSubintervalOutOfRange = errors.New("parallax: subinterval outside [0, 1]")

// binding attaches a child effect to its parent, optionally through a focus
// window in the parent's progress space.
type binding[T Float] struct {
	effect  *Effect[T]
	sub     Interval[T]
	focused bool
}

// Effect is a node in a parallax tree. Seeding the root with a driving value
// propagates progress through every node: each node clamps and shapes the
// progress it receives, maps it into its own interval, reports the result
// through OnChange, and passes the shaped progress on to its children.
//
// A tree is owned by its root and must not be seeded from more than one
// goroutine at a time.
type Effect[T Float] struct {
	// Name identifies the node for lookups, debug output and declarative
	// bindings. Names need not be unique unless the tree is loaded from YAML.
	Name string

	// Curve shapes progress before it is mapped into the interval. The zero
	// value is the identity curve.
	Curve Curve[T]

	// Clamped forces incoming progress into [0, 1] before the curve is
	// applied.
	Clamped bool

	// OnChange receives the node's output on every seed. Optional.
	OnChange func(T)

	interval Interval[T]
	parent   *Effect[T]
	children []binding[T]
	changes  *Subject[T]
}

// NewEffect creates an effect over the given interval. Panics if the interval
// is the invalid zero value.
func NewEffect[T Float](name string, interval Interval[T]) *Effect[T] {
	e := &Effect[T]{Name: name, interval: interval}
	e.mustBeValid()
	return e
}

// mustBeValid panics if the effect was not created with NewEffect, such as a
// zero Effect literal, and so has no interval.
func (e *Effect[T]) mustBeValid() {
	if !e.interval.Valid() {
		panic(fmt.Sprintf("parallax: effect %q has an invalid interval", e.Name))
	}
}

// Interval returns the effect's own interval.
func (e *Effect[T]) Interval() Interval[T] {
	return e.interval
}

// Parent returns the effect this one is attached to, or nil for a root.
func (e *Effect[T]) Parent() *Effect[T] {
	return e.parent
}

// Changes returns a stream of the node's outputs, published after OnChange
// on every seed.
func (e *Effect[T]) Changes() Stream[T] {
	if e.changes == nil {
		e.changes = NewSubject[T]()
	}
	return e.changes.Stream()
}

// --- Tree manipulation ---

// AddChild attaches child so that it receives this effect's shaped progress
// unchanged. If child already has a parent, it is detached from it first.
// Panics if child is nil or is an ancestor of this effect (cycle).
func (e *Effect[T]) AddChild(child *Effect[T]) {
	e.attach(binding[T]{effect: child})
}

// AddChildFocused attaches child to the window sub of this effect's progress
// space. The child receives progress renormalized into the window, so it runs
// from 0 to 1 while the parent's shaped progress runs from sub.From() to
// sub.To(). sub must lie within [0, 1].
func (e *Effect[T]) AddChildFocused(child *Effect[T], sub Interval[T]) error {
	if !sub.Valid() {
		return fmt.Errorf("%w: focus window for %q has zero width", ErrInvalidInterval, nameOf(child))
	}
	if !UnitInterval[T]().ContainsInterval(sub) {
		return fmt.Errorf("%w: %v for %q", ErrSubintervalOutOfRange, sub, nameOf(child))
	}
	e.attach(binding[T]{effect: child, sub: sub, focused: true})
	return nil
}

func (e *Effect[T]) attach(b binding[T]) {
	child := b.effect
	if child == nil {
		panic("parallax: cannot add nil child")
	}
	e.mustBeValid()
	child.mustBeValid()
	if isAncestor(child, e) {
		panic("parallax: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = e
	e.children = append(e.children, b)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this effect.
// Panics if child is not a child of this effect.
func (e *Effect[T]) RemoveChild(child *Effect[T]) {
	if child == nil || child.parent != e {
		panic("parallax: child's parent is not this effect")
	}
	e.removeChildByPtr(child)
	child.parent = nil
}

// RemoveChildren detaches all children.
func (e *Effect[T]) RemoveChildren() {
	for i := range e.children {
		e.children[i].effect.parent = nil
		e.children[i] = binding[T]{}
	}
	e.children = e.children[:0]
}

// NumChildren returns the number of attached children.
func (e *Effect[T]) NumChildren() int {
	return len(e.children)
}

// Children returns a copy of the children in attachment order.
func (e *Effect[T]) Children() []*Effect[T] {
	out := make([]*Effect[T], len(e.children))
	for i := range e.children {
		out[i] = e.children[i].effect
	}
	return out
}

// ChildAt returns the child at index in attachment order.
func (e *Effect[T]) ChildAt(index int) *Effect[T] {
	return e.children[index].effect
}

// FocusAt returns the focus window of the child at index, and whether it has
// one.
func (e *Effect[T]) FocusAt(index int) (Interval[T], bool) {
	b := e.children[index]
	return b.sub, b.focused
}

// Walk visits the effect and its descendants depth-first in seeding order.
// Returning false from fn skips the visited node's children.
func (e *Effect[T]) Walk(fn func(*Effect[T]) bool) {
	if !fn(e) {
		return
	}
	for i := range e.children {
		e.children[i].effect.Walk(fn)
	}
}

// Find returns the first effect named name in seeding order, or nil.
func (e *Effect[T]) Find(name string) *Effect[T] {
	var found *Effect[T]
	e.Walk(func(n *Effect[T]) bool {
		if found != nil {
			return false
		}
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// Depth returns the number of ancestors of the effect.
func (e *Effect[T]) Depth() int {
	d := 0
	for p := e.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// --- Helpers ---

// isAncestor reports whether candidate is e or one of its ancestors.
func isAncestor[T Float](candidate, e *Effect[T]) bool {
	for p := e; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing
// child.parent.
func (e *Effect[T]) removeChildByPtr(child *Effect[T]) {
	for i := range e.children {
		if e.children[i].effect == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = binding[T]{}
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}

func nameOf[T Float](e *Effect[T]) string {
	if e == nil {
		return "<nil>"
	}
	return e.Name
}
