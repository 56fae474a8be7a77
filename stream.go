package parallax

// Stream is a push-based sequence of samples. Subscribers are invoked
// synchronously, on the publishing goroutine, once per sample and in
// publication order. The zero value is an empty stream that never emits.
type Stream[E any] struct {
	attach func(sink func(E)) (cancel func())
}

// Subscribe registers onNext and returns a handle that stops delivery.
func (s Stream[E]) Subscribe(onNext func(E)) Disposable {
	return DisposableFunc(s.subscribe(onNext))
}

func (s Stream[E]) subscribe(sink func(E)) func() {
	if s.attach == nil {
		return func() {}
	}
	return s.attach(sink)
}

// Map returns a stream emitting fn(v) for every v emitted by s.
func Map[E, R any](s Stream[E], fn func(E) R) Stream[R] {
	return Stream[R]{attach: func(sink func(R)) func() {
		return s.subscribe(func(v E) { sink(fn(v)) })
	}}
}

// Distinct returns a stream that drops samples equal to the previous one.
// Each subscriber tracks its own previous sample.
func Distinct[E comparable](s Stream[E]) Stream[E] {
	return Stream[E]{attach: func(sink func(E)) func() {
		var last E
		seen := false
		return s.subscribe(func(v E) {
			if seen && v == last {
				return
			}
			seen, last = true, v
			sink(v)
		})
	}}
}

// Filter returns a stream emitting only the samples of s for which keep
// returns true.
func Filter[E any](s Stream[E], keep func(E) bool) Stream[E] {
	return Stream[E]{attach: func(sink func(E)) func() {
		return s.subscribe(func(v E) {
			if keep(v) {
				sink(v)
			}
		})
	}}
}

// Merge returns a stream emitting the samples of every stream in ss, in the
// order they are published.
func Merge[E any](ss ...Stream[E]) Stream[E] {
	return Stream[E]{attach: func(sink func(E)) func() {
		cancels := make([]func(), len(ss))
		for i, s := range ss {
			cancels[i] = s.subscribe(sink)
		}
		return func() {
			for _, cancel := range cancels {
				cancel()
			}
		}
	}}
}

// CombineLatest returns a stream emitting fn(a, b) with the latest sample of
// each input whenever either input emits. Nothing is emitted until both
// inputs have emitted at least once.
func CombineLatest[A, B, R any](as Stream[A], bs Stream[B], fn func(A, B) R) Stream[R] {
	return Stream[R]{attach: func(sink func(R)) func() {
		var (
			a            A
			b            B
			haveA, haveB bool
		)
		cancelA := as.subscribe(func(v A) {
			a, haveA = v, true
			if haveB {
				sink(fn(a, b))
			}
		})
		cancelB := bs.subscribe(func(v B) {
			b, haveB = v, true
			if haveA {
				sink(fn(a, b))
			}
		})
		return func() {
			cancelA()
			cancelB()
		}
	}}
}

// Bind seeds root with every sample emitted by s.
func Bind[T Float](s Stream[T], root *Effect[T]) Disposable {
	return s.Subscribe(root.Seed)
}

// --- Subject ---

type subscription[E any] struct {
	fn     func(E)
	active bool
}

// Subject is the source end of a Stream: every Publish is delivered to the
// current subscribers of Stream(). Subscribers added while a sample is being
// delivered start with the next sample.
//
// A Subject is not safe for concurrent use.
type Subject[E any] struct {
	subs       []*subscription[E]
	publishing int
	dirty      bool
}

// NewSubject creates a Subject with no subscribers.
func NewSubject[E any]() *Subject[E] {
	return &Subject[E]{}
}

// Stream returns the stream of published samples.
func (s *Subject[E]) Stream() Stream[E] {
	return Stream[E]{attach: s.add}
}

// Publish delivers v to every subscriber.
func (s *Subject[E]) Publish(v E) {
	s.publishing++
	n := len(s.subs)
	for i := 0; i < n; i++ {
		if sub := s.subs[i]; sub.active {
			sub.fn(v)
		}
	}
	s.publishing--
	if s.publishing == 0 && s.dirty {
		s.compact()
	}
}

// Len returns the number of active subscribers.
func (s *Subject[E]) Len() int {
	n := 0
	for _, sub := range s.subs {
		if sub.active {
			n++
		}
	}
	return n
}

func (s *Subject[E]) add(fn func(E)) func() {
	sub := &subscription[E]{fn: fn, active: true}
	s.subs = append(s.subs, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		if s.publishing > 0 {
			s.dirty = true
			return
		}
		s.compact()
	}
}

// compact drops inactive subscriptions, nil-ing the tail so the backing array
// does not retain them.
func (s *Subject[E]) compact() {
	j := 0
	for _, sub := range s.subs {
		if sub.active {
			s.subs[j] = sub
			j++
		}
	}
	for i := j; i < len(s.subs); i++ {
		s.subs[i] = nil
	}
	s.subs = s.subs[:j]
	s.dirty = false
}
