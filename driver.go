package parallax

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Driver produces driving values over time from a gween tween, for effects
// that animate without user input, such as a drawer opening on a tap. Call
// Update(dt) each frame; every update publishes the new value on Stream().
//
// There is no global animation manager; callers call Update themselves.
type Driver[T Float] struct {
	tween   *gween.Tween
	value   T
	changes Subject[T]

	// Done is true once the tween has reached its end value.
	Done bool
}

// NewDriver creates a Driver moving from from to to over duration seconds
// using the easing function fn.
func NewDriver[T Float](from, to T, duration float32, fn ease.TweenFunc) *Driver[T] {
	return &Driver[T]{
		tween: gween.New(float32(from), float32(to), duration, fn),
		value: from,
	}
}

// Update advances the tween by dt seconds and publishes the new value. No-op
// once Done.
func (d *Driver[T]) Update(dt float32) {
	if d.Done {
		return
	}
	val, finished := d.tween.Update(dt)
	d.value = T(val)
	d.Done = finished
	d.changes.Publish(d.value)
}

// To restarts the driver from its current value toward to.
func (d *Driver[T]) To(to T, duration float32, fn ease.TweenFunc) {
	d.tween = gween.New(float32(d.value), float32(to), duration, fn)
	d.Done = false
}

// Value returns the most recently produced value.
func (d *Driver[T]) Value() T {
	return d.value
}

// Stream returns the stream of produced values.
func (d *Driver[T]) Stream() Stream[T] {
	return d.changes.Stream()
}
