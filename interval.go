package parallax

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of value types an Interval can hold.
type Float = constraints.Float

// ErrInvalidInterval is returned when an interval would have zero width.
var ErrInvalidInterval = errors.New("parallax: invalid interval")

// Interval is an oriented numeric range. From may be greater than To, in which
// case the interval is descending and maps progress in the opposite direction.
//
// The zero value is not a valid interval; create one with NewInterval or
// MustInterval.
type Interval[T Float] struct {
	from, to T
}

// NewInterval returns the interval [from, to]. It fails with
// ErrInvalidInterval when from == to or either bound is NaN or infinite.
func NewInterval[T Float](from, to T) (Interval[T], error) {
	if !finite(from) || !finite(to) {
		return Interval[T]{}, fmt.Errorf("%w: bounds %v and %v must be finite", ErrInvalidInterval, from, to)
	}
	if from == to {
		return Interval[T]{}, fmt.Errorf("%w: from and to are both %v", ErrInvalidInterval, from)
	}
	return Interval[T]{from: from, to: to}, nil
}

// MustInterval is like NewInterval but panics on error. Intended for literal
// intervals.
func MustInterval[T Float](from, to T) Interval[T] {
	iv, err := NewInterval(from, to)
	if err != nil {
		panic(err)
	}
	return iv
}

// UnitInterval returns [0, 1].
func UnitInterval[T Float]() Interval[T] {
	return Interval[T]{from: 0, to: 1}
}

// From returns the value at progress 0.
func (iv Interval[T]) From() T { return iv.from }

// To returns the value at progress 1.
func (iv Interval[T]) To() T { return iv.to }

// Span returns to - from. Negative for descending intervals.
func (iv Interval[T]) Span() T { return iv.to - iv.from }

// Valid reports whether the interval has non-zero width and finite bounds.
// Only the zero value (or a value copied from it) is invalid.
func (iv Interval[T]) Valid() bool {
	return iv.from != iv.to && finite(iv.from) && finite(iv.to)
}

// Reversed reports whether the interval is descending.
func (iv Interval[T]) Reversed() bool { return iv.from > iv.to }

// ValueAt maps progress onto the interval: from + p*span. Progress outside
// [0, 1] extrapolates. ValueAt(0) and ValueAt(1) return from and to exactly.
func (iv Interval[T]) ValueAt(p T) T {
	if p == 1 {
		return iv.to
	}
	return iv.from + p*(iv.to-iv.from)
}

// ProgressFor is the inverse of ValueAt: (v - from) / span. Values outside the
// interval yield progress below 0 or above 1.
func (iv Interval[T]) ProgressFor(v T) T {
	return (v - iv.from) / (iv.to - iv.from)
}

// Contains reports whether v lies between from and to, inclusive, in either
// orientation.
func (iv Interval[T]) Contains(v T) bool {
	lo, hi := iv.bounds()
	return v >= lo && v <= hi
}

// Clamp forces v into the closed range covered by the interval.
func (iv Interval[T]) Clamp(v T) T {
	lo, hi := iv.bounds()
	return min(max(v, lo), hi)
}

// ContainsInterval reports whether other lies entirely within iv.
func (iv Interval[T]) ContainsInterval(other Interval[T]) bool {
	return iv.Contains(other.from) && iv.Contains(other.to)
}

// ClampToUnitInterval clamps progress p to [0, 1]. Same as the package-level
// function; the receiver is unused.
func (iv Interval[T]) ClampToUnitInterval(p T) T {
	return ClampToUnitInterval(p)
}

// String returns "[from, to]".
func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", iv.from, iv.to)
}

func (iv Interval[T]) bounds() (lo, hi T) {
	if iv.from < iv.to {
		return iv.from, iv.to
	}
	return iv.to, iv.from
}

// ClampToUnitInterval returns max(0, min(1, p)).
func ClampToUnitInterval[T Float](p T) T {
	return min(max(p, 0), 1)
}

func finite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// focus renormalizes progress into the frame of sub. Shared by Effect seeding
// and Pipeline.Focus.
func focus[T Float](p T, sub Interval[T]) T {
	return sub.ProgressFor(p)
}
