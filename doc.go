// Package parallax maps a single driving value, such as a scroll offset,
// through a tree of nested intervals to produce many dependent outputs
// (alpha, scale, rotation, position) in one synchronous pass.
//
// # Intervals and curves
//
// An [Interval] is an oriented range. [Interval.ProgressFor] normalizes a
// value so that From maps to 0 and To maps to 1; [Interval.ValueAt] maps
// progress back. Descending intervals invert direction:
//
//	parallax.MustInterval(1.0, 0.0).ValueAt(0.25) // 0.75
//
// A [Curve] shapes progress before it is mapped: [Oscillate], [ClampToUnit],
// [EaseInOut], [Custom], or any [gween] easing function via [Tween].
//
// # Effect trees
//
// Every output is produced by an [Effect]. Effects form a tree rooted at the
// effect that receives the driving value:
//
//	root := parallax.NewEffect("pageKey", parallax.MustInterval(0.0, 1.0))
//
//	slide := parallax.NewEffect("slide", parallax.MustInterval(left, right))
//	slide.Clamped = true
//	slide.OnChange = func(x float64) { slider.X = x }
//	root.AddChild(slide)
//
//	shrink := parallax.NewEffect("shrink", parallax.MustInterval(1.0, 0.6))
//	shrink.Curve = parallax.Oscillate[float64](pages - 1)
//	shrink.OnChange = func(s float64) { slider.ScaleX = s }
//	root.AddChild(shrink)
//
//	root.Seed(scrollProgress)
//
// A node clamps (when Clamped) and shapes the progress it receives, reports
// interval.ValueAt(shaped) through OnChange, and hands the shaped progress to
// its children. [Effect.AddChildFocused] attaches a child to a window of the
// parent's progress so the child is active only during part of the parent's
// range. Trees can also be declared in YAML with [LoadEffect].
//
// # Pipelines
//
// The same mathematics is available as stages over a [Stream] of samples:
//
//	offsets := parallax.NewSubject[float64]()
//	alpha := parallax.Relate(offsets.Stream(), content).
//		Focus(page).
//		Clamp().
//		Reposition(parallax.Oscillate[float64](1)).
//		Scale(parallax.MustInterval(0.5, 1.0))
//	sub := alpha.Subscribe(func(a float64) { card.Alpha = a })
//	defer sub.Dispose()
//
// Intervals, windows and curves can also come from streams, for layouts that
// change while scrolling: [RelateTo], [Pipeline.FocusOn] and
// [Pipeline.RepositionWith] use the latest one published.
//
// [Driver] and [Scroller] are sample sources backed by gween tweens.
//
// # Threading
//
// Everything runs synchronously on the caller's goroutine. A tree, subject or
// pipeline must not be used from more than one goroutine at a time.
// Callbacks must not reseed the tree that invoked them.
//
// [gween]: https://github.com/tanema/gween
package parallax
