package parallax

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scroller tracks a scroll position inside bounds and publishes it as a
// driving value. Direct moves (ScrollBy) take effect on the next Update;
// animated moves (ScrollTo, SnapTo) advance with Update. A position is
// published only when it differs from the last one published.
type Scroller[T Float] struct {
	// Position is the current scroll offset.
	Position T

	bounds    Interval[T]
	anim      *gween.Tween
	changes   Subject[T]
	last      T
	published bool
}

// NewScroller creates a Scroller clamped to bounds, positioned at the lower
// bound.
func NewScroller[T Float](bounds Interval[T]) *Scroller[T] {
	mustValid(bounds, "scroller")
	lo, _ := bounds.bounds()
	return &Scroller[T]{Position: lo, bounds: bounds}
}

// Bounds returns the interval the position is clamped to.
func (s *Scroller[T]) Bounds() Interval[T] {
	return s.bounds
}

// SetBounds replaces the bounds and clamps the position into them.
func (s *Scroller[T]) SetBounds(bounds Interval[T]) {
	mustValid(bounds, "scroller")
	s.bounds = bounds
	s.Position = bounds.Clamp(s.Position)
}

// ScrollBy moves the position by delta, cancelling any animation.
func (s *Scroller[T]) ScrollBy(delta T) {
	s.anim = nil
	s.Position = s.bounds.Clamp(s.Position + delta)
}

// ScrollTo animates the position to target over duration seconds. The target
// is clamped to the bounds.
func (s *Scroller[T]) ScrollTo(target T, duration float32, fn ease.TweenFunc) {
	target = s.bounds.Clamp(target)
	s.anim = gween.New(float32(s.Position), float32(target), duration, fn)
}

// SnapTo animates the position to the nearest multiple of step measured from
// the lower bound, as a pager settles on a page.
func (s *Scroller[T]) SnapTo(step T, duration float32, fn ease.TweenFunc) {
	if step <= 0 {
		panic("parallax: snap step must be positive")
	}
	lo, _ := s.bounds.bounds()
	n := math.Round(float64((s.Position - lo) / step))
	s.ScrollTo(lo+T(n)*step, duration, fn)
}

// Scrolling reports whether an animation is in progress.
func (s *Scroller[T]) Scrolling() bool {
	return s.anim != nil
}

// Update advances any animation by dt seconds and publishes the position if
// it changed.
func (s *Scroller[T]) Update(dt float32) {
	if s.anim != nil {
		val, done := s.anim.Update(dt)
		s.Position = s.bounds.Clamp(T(val))
		if done {
			s.anim = nil
		}
	}
	if s.published && s.Position == s.last {
		return
	}
	s.last, s.published = s.Position, true
	s.changes.Publish(s.Position)
}

// Stream returns the stream of published positions.
func (s *Scroller[T]) Stream() Stream[T] {
	return s.changes.Stream()
}
