package animation

import "math"

// Curves map linear progress t in [0, 1] to eased progress. Assign one to
// an [AnimationController]'s Curve or ReverseCurve. Themes refer to curves
// by name through [CurveByName].

// LinearCurve returns t unchanged.
func LinearCurve(t float64) float64 {
	return t
}

// Ease matches CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn matches CSS ease-in.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut decelerates into the end value. The press bounce uses it by default.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut matches CSS ease-in-out.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// unitBezier is a cubic bezier from (0,0) to (1,1) in polynomial form.
type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
}

func newUnitBezier(x1, y1, x2, y2 float64) unitBezier {
	var b unitBezier
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by
	return b
}

func (b unitBezier) x(u float64) float64  { return ((b.ax*u+b.bx)*u + b.cx) * u }
func (b unitBezier) y(u float64) float64  { return ((b.ay*u+b.by)*u + b.cy) * u }
func (b unitBezier) dx(u float64) float64 { return (3*b.ax*u+2*b.bx)*u + b.cx }

const bezierEpsilon = 1e-7

// solveX finds the curve parameter whose x is t.
func (b unitBezier) solveX(t float64) float64 {
	u := t
	for range 8 {
		err := b.x(u) - t
		if math.Abs(err) < bezierEpsilon {
			return u
		}
		d := b.dx(u)
		if math.Abs(d) < bezierEpsilon {
			break
		}
		u -= err / d
	}

	// Newton stalled; x is monotonic on [0, 1] so bisection always lands.
	lo, hi := 0.0, 1.0
	u = min(max(t, lo), hi)
	for hi-lo > bezierEpsilon {
		x := b.x(u)
		if math.Abs(x-t) < bezierEpsilon {
			break
		}
		if x < t {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// CubicBezier returns the easing curve with control points (x1,y1) and
// (x2,y2), as in CSS cubic-bezier().
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	b := newUnitBezier(x1, y1, x2, y2)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return b.y(b.solveX(t))
	}
}
