package motion

import "math"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return Clamp(t, 0, 1) }

// CubicBezier returns the CSS-style cubic-bezier(x1, y1, x2, y2) easing.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	bez := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	dbez := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
	}
	return func(x float64) float64 {
		x = Clamp(x, 0, 1)
		if x == 0 || x == 1 {
			return x
		}
		// Newton-Raphson on x(t) = x, falling back to bisection.
		t := x
		for i := 0; i < 8; i++ {
			d := dbez(t, x1, x2)
			if math.Abs(d) < 1e-6 {
				break
			}
			next := t - (bez(t, x1, x2)-x)/d
			if next < 0 || next > 1 {
				break
			}
			t = next
		}
		if math.Abs(bez(t, x1, x2)-x) > 1e-5 {
			lo, hi := 0.0, 1.0
			t = x
			for i := 0; i < 40; i++ {
				if bez(t, x1, x2) < x {
					lo = t
				} else {
					hi = t
				}
				t = (lo + hi) / 2
			}
		}
		return bez(t, y1, y2)
	}
}

// EaseIn accelerates from rest.
var EaseIn = CubicBezier(0.42, 0, 1, 1)

// EaseOut decelerates to rest.
var EaseOut = CubicBezier(0, 0, 0.58, 1)
