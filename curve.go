package parallax

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// ErrUnknownCurve is returned when a curve is looked up by a name that is not
// registered.
var ErrUnknownCurve = errors.New("parallax: unknown curve")

// curveKind selects the shaping function a Curve applies.
type curveKind uint8

const (
	curveIdentity  curveKind = iota // p
	curveOscillate                  // triangle wave, n round trips over [0, 1]
	curveClamp                      // max(0, min(1, p))
	curveEaseInOut                  // cubic ease in-out
	curveCustom                     // caller-supplied func
	curveTween                      // gween easing function
)

// Curve shapes a normalized progress value before it is mapped into an
// interval. Curves are immutable values; the zero value is the identity curve.
type Curve[T Float] struct {
	kind  curveKind
	times float64
	fn    func(T) T
	ease  ease.TweenFunc
	name  string
}

// Identity returns the curve that leaves progress unchanged.
func Identity[T Float]() Curve[T] {
	return Curve[T]{}
}

// Oscillate returns a curve that ramps progress from 0 to 1 and back to 0,
// numberOfTimes round trips across [0, 1]. Oscillate(1) maps 0, 0.5 and 1 to
// 0, 1 and 0.
func Oscillate[T Float](numberOfTimes float64) Curve[T] {
	return Curve[T]{kind: curveOscillate, times: numberOfTimes}
}

// ClampToUnit returns a curve that clamps progress to [0, 1].
func ClampToUnit[T Float]() Curve[T] {
	return Curve[T]{kind: curveClamp}
}

// EaseInOut returns a cubic ease-in-out curve. It fixes 0, 0.5 and 1.
func EaseInOut[T Float]() Curve[T] {
	return Curve[T]{kind: curveEaseInOut}
}

// Custom returns a curve that applies fn.
func Custom[T Float](fn func(T) T) Curve[T] {
	if fn == nil {
		panic("parallax: custom curve with nil func")
	}
	return Curve[T]{kind: curveCustom, fn: fn}
}

// Tween returns a curve backed by a gween easing function, evaluated over a
// unit duration. Precision is limited to float32. Its String is "tween"; use
// CurveNamed to get a curve named after its easing.
func Tween[T Float](fn ease.TweenFunc) Curve[T] {
	if fn == nil {
		panic("parallax: tween curve with nil func")
	}
	return Curve[T]{kind: curveTween, ease: fn, name: "tween"}
}

// Apply shapes progress p.
func (c Curve[T]) Apply(p T) T {
	switch c.kind {
	case curveOscillate:
		return T(oscillate(float64(p), c.times))
	case curveClamp:
		return ClampToUnitInterval(p)
	case curveEaseInOut:
		return T(easeInOutCubic(float64(p)))
	case curveCustom:
		return c.fn(p)
	case curveTween:
		return T(c.ease(float32(p), 0, 1, 1))
	}
	return p
}

// IsIdentity reports whether the curve leaves progress unchanged.
func (c Curve[T]) IsIdentity() bool {
	return c.kind == curveIdentity
}

// String names the curve.
func (c Curve[T]) String() string {
	switch c.kind {
	case curveOscillate:
		return fmt.Sprintf("oscillate(%v)", c.times)
	case curveClamp:
		return "clamp"
	case curveEaseInOut:
		return "easeInOut"
	case curveCustom:
		return "custom"
	case curveTween:
		return c.name
	}
	return "identity"
}

// oscillate is a triangle wave with period 1/n: 1 - |2*frac(p*n) - 1|.
func oscillate(p, n float64) float64 {
	x := p * n
	f := x - math.Floor(x)
	return 1 - math.Abs(2*f-1)
}

func easeInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	q := -2*p + 2
	return 1 - q*q*q/2
}

// easeFuncs are the gween easing functions addressable by name.
var easeFuncs = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"outBounce":    ease.OutBounce,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
}

// CurveNamed resolves a curve by name. The built-in names are "identity",
// "oscillate" (using times), "clamp" and "easeInOut"; any other name is looked
// up among the gween easing functions ("outBounce", "inOutSine", ...).
func CurveNamed[T Float](name string, times float64) (Curve[T], error) {
	switch name {
	case "", "identity":
		return Identity[T](), nil
	case "oscillate":
		if times == 0 {
			times = 1
		}
		return Oscillate[T](times), nil
	case "clamp":
		return ClampToUnit[T](), nil
	case "easeInOut":
		return EaseInOut[T](), nil
	}
	fn, ok := easeFuncs[name]
	if !ok {
		return Curve[T]{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	c := Tween[T](fn)
	c.name = name
	return c, nil
}
