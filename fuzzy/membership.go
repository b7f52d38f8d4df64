// Package fuzzy provides trapezoidal membership functions.
//
// A membership function maps a crisp value (for lsts, an angle in radians)
// to a degree of membership in [0, 1] of a linguistic category. Shapes are
// continuous and piecewise linear; degenerate ramps (a == b) become steps.
package fuzzy

import "math"

// ChartDiagonalAngle is the angle of the diagonal of the normalized chart
// (x in [0, 8/5], y in [0, 1]). Category boundaries are expressed as
// fractions of it.
var ChartDiagonalAngle = math.Atan(5.0 / 8.0)

// Func is a membership function.
type Func func(x float64) float64

// Trapezoid returns the membership function that is 0 below a, ramps
// linearly up to 1 between a and b, stays 1 between b and c, ramps down
// between c and d and is 0 above d. Parameters must satisfy a <= b <= c <= d.
func Trapezoid(a, b, c, d float64) Func {
	up := TrapezoidR(a, b)
	down := TrapezoidL(c, d)

	return func(x float64) float64 {
		return math.Min(up(x), down(x))
	}
}

// TrapezoidL returns the left shoulder: 1 below b, a linear descent to 0
// between b and c, 0 above c.
func TrapezoidL(b, c float64) Func {
	return func(x float64) float64 {
		switch {
		case x <= b:
			return 1
		case x >= c:
			return 0
		default:
			return (c - x) / (c - b)
		}
	}
}

// TrapezoidR returns the right shoulder: 0 below a, a linear ascent to 1
// between a and b, 1 above b.
func TrapezoidR(a, b float64) Func {
	return func(x float64) float64 {
		switch {
		case x >= b:
			return 1
		case x <= a:
			return 0
		default:
			return (x - a) / (b - a)
		}
	}
}

// Not returns the complement 1 - f(x).
func Not(f Func) Func {
	return func(x float64) float64 {
		return 1 - f(x)
	}
}

// And returns the minimum t-norm of fs. It returns 1 for no functions.
func And(fs ...Func) Func {
	return func(x float64) float64 {
		degree := 1.0
		for _, f := range fs {
			degree = math.Min(degree, f(x))
		}

		return degree
	}
}

// Or returns the maximum t-conorm of fs. It returns 0 for no functions.
func Or(fs ...Func) Func {
	return func(x float64) float64 {
		degree := 0.0
		for _, f := range fs {
			degree = math.Max(degree, f(x))
		}

		return degree
	}
}
