package easing

import "math"

const solveEpsilon = 1e-6

// Ease evaluates the curve as a timing function: for a normalized time
// x in [0,1] it returns the eased progress. Inputs outside [0,1] clamp to
// the endpoints. Back-family curves return values outside [0,1] mid-flight,
// which is their overshoot.
func (c Curve) Ease(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return c.sampleY(c.solveX(x))
}

// Polynomial coefficients for the horizontal component. The curve is
// anchored at (0,0) and (1,1), so the cubic collapses to three terms.
func (c Curve) coeffX() (ax, bx, cx float64) {
	cx = 3 * c.X1
	bx = 3*(c.X2-c.X1) - cx
	ax = 1 - cx - bx
	return
}

func (c Curve) sampleX(t float64) float64 {
	ax, bx, cx := c.coeffX()
	return ((ax*t+bx)*t + cx) * t
}

func (c Curve) sampleDX(t float64) float64 {
	ax, bx, cx := c.coeffX()
	return (3*ax*t+2*bx)*t + cx
}

func (c Curve) sampleY(t float64) float64 {
	cy := 3 * c.Y1
	by := 3*(c.Y2-c.Y1) - cy
	ay := 1 - cy - by
	return ((ay*t+by)*t + cy) * t
}

// solveX finds the parameter t whose horizontal position equals x.
// Newton iteration with a bisection fallback for flat regions, after
// the classic UnitBezier solver.
func (c Curve) solveX(x float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		err := c.sampleX(t) - x
		if math.Abs(err) < solveEpsilon {
			return t
		}
		d := c.sampleDX(t)
		if math.Abs(d) < solveEpsilon {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for hi-lo > solveEpsilon {
		if c.sampleX(t) < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}
