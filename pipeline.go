package parallax

import "fmt"

// Transform is one element of a Pipeline: a progress value and the interval
// it is expressed in.
type Transform[T Float] struct {
	Interval Interval[T]
	Progress T
}

// Value maps the progress into the interval.
func (t Transform[T]) Value() T {
	return t.Interval.ValueAt(t.Progress)
}

// Pipeline composes the stream form of an effect branch. Each stage is a
// one-to-one map over the samples of the source stream. Consecutive fixed
// stages are fused into a single function at construction time, so an emitted
// sample costs one call per stage and no allocation.
//
// Stages ending in To, On or With take their interval or curve from a stream
// instead of a fixed value. They combine the latest interval (or curve) with
// the latest sample and emit whenever either changes, so effects follow
// layout changes. Nothing is emitted until both have been seen.
//
// Pipelines are immutable: every method returns a new Pipeline and leaves the
// receiver usable.
type Pipeline[T Float] struct {
	head  Stream[Transform[T]]
	step  func(Transform[T]) Transform[T] // fused fixed stages after head; nil is identity
	apply func(T) Transform[T]            // whole pipeline on one raw sample; nil after a stream stage
}

// Relate starts a pipeline over raw samples from s, expressing each one as
// progress through interval.
func Relate[T Float](s Stream[T], interval Interval[T]) Pipeline[T] {
	mustValid(interval, "relate")
	first := func(v T) Transform[T] {
		return Transform[T]{Interval: interval, Progress: interval.ProgressFor(v)}
	}
	return Pipeline[T]{head: Map(s, first), apply: first}
}

// RelateTo is like Relate but takes each sample's interval from the latest
// one published on intervals. Invalid intervals on the stream are skipped.
func RelateTo[T Float](s Stream[T], intervals Stream[Interval[T]]) Pipeline[T] {
	return Pipeline[T]{head: CombineLatest(s, validIntervals(intervals),
		func(v T, iv Interval[T]) Transform[T] {
			return Transform[T]{Interval: iv, Progress: iv.ProgressFor(v)}
		})}
}

// Relate keeps the current progress and re-expresses it in interval.
func (p Pipeline[T]) Relate(interval Interval[T]) Pipeline[T] {
	mustValid(interval, "relate")
	return p.then(func(t Transform[T]) Transform[T] {
		t.Interval = interval
		return t
	})
}

// RelateTo is like Relate with the interval taken from the latest one
// published on intervals. Invalid intervals on the stream are skipped.
func (p Pipeline[T]) RelateTo(intervals Stream[Interval[T]]) Pipeline[T] {
	return Pipeline[T]{head: CombineLatest(p.Transforms(), validIntervals(intervals),
		func(t Transform[T], iv Interval[T]) Transform[T] {
			t.Interval = iv
			return t
		})}
}

// Focus renormalizes progress into the window sub, so that progress
// sub.From() becomes 0 and sub.To() becomes 1. Unlike Effect.AddChildFocused,
// the window may extend beyond [0, 1]; focusing on [-1, 1] widens the range
// instead of narrowing it.
func (p Pipeline[T]) Focus(sub Interval[T]) Pipeline[T] {
	mustValid(sub, "focus")
	return p.then(func(t Transform[T]) Transform[T] {
		t.Progress = focus(t.Progress, sub)
		return t
	})
}

// FocusOn is like Focus with the window taken from the latest one published
// on subs. Invalid windows on the stream are skipped.
func (p Pipeline[T]) FocusOn(subs Stream[Interval[T]]) Pipeline[T] {
	return Pipeline[T]{head: CombineLatest(p.Transforms(), validIntervals(subs),
		func(t Transform[T], sub Interval[T]) Transform[T] {
			t.Progress = focus(t.Progress, sub)
			return t
		})}
}

// Reposition applies curve to progress.
func (p Pipeline[T]) Reposition(curve Curve[T]) Pipeline[T] {
	return p.then(func(t Transform[T]) Transform[T] {
		t.Progress = curve.Apply(t.Progress)
		return t
	})
}

// RepositionWith applies the latest curve published on curves.
func (p Pipeline[T]) RepositionWith(curves Stream[Curve[T]]) Pipeline[T] {
	return Pipeline[T]{head: CombineLatest(p.Transforms(), curves,
		func(t Transform[T], c Curve[T]) Transform[T] {
			t.Progress = c.Apply(t.Progress)
			return t
		})}
}

// Clamp clamps progress to [0, 1].
func (p Pipeline[T]) Clamp() Pipeline[T] {
	return p.Reposition(ClampToUnit[T]())
}

// Scale returns the stream of progress values mapped into target.
func (p Pipeline[T]) Scale(target Interval[T]) Stream[T] {
	mustValid(target, "scale")
	return Map(p.Transforms(), func(t Transform[T]) T {
		return target.ValueAt(t.Progress)
	})
}

// Value returns the stream of progress values mapped into the pipeline's
// current interval.
func (p Pipeline[T]) Value() Stream[T] {
	return Map(p.Transforms(), Transform[T].Value)
}

// Progress returns the stream of progress values.
func (p Pipeline[T]) Progress() Stream[T] {
	return Map(p.Transforms(), func(t Transform[T]) T {
		return t.Progress
	})
}

// Transforms returns the stream of transforms.
func (p Pipeline[T]) Transforms() Stream[Transform[T]] {
	if p.step == nil {
		return p.head
	}
	return Map(p.head, p.step)
}

// Subscribe delivers each transform to onNext.
func (p Pipeline[T]) Subscribe(onNext func(Transform[T])) Disposable {
	return p.Transforms().Subscribe(onNext)
}

// Apply runs the pipeline's stages on a single raw sample. Panics if the
// pipeline has a stage fed by a stream, since its output then depends on
// more than the sample.
func (p Pipeline[T]) Apply(v T) Transform[T] {
	if p.apply == nil {
		panic("parallax: Apply on a pipeline with stream-fed stages")
	}
	return p.apply(v)
}

func (p Pipeline[T]) then(fn func(Transform[T]) Transform[T]) Pipeline[T] {
	next := Pipeline[T]{head: p.head, step: fn}
	if prev := p.step; prev != nil {
		next.step = func(t Transform[T]) Transform[T] { return fn(prev(t)) }
	}
	if apply := p.apply; apply != nil {
		next.apply = func(v T) Transform[T] { return fn(apply(v)) }
	}
	return next
}

func validIntervals[T Float](s Stream[Interval[T]]) Stream[Interval[T]] {
	return Filter(s, Interval[T].Valid)
}

func mustValid[T Float](iv Interval[T], op string) {
	if !iv.Valid() {
		panic(fmt.Sprintf("parallax: %s with an invalid interval", op))
	}
}
