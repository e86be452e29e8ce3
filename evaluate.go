package mandel

import "math"

// Squared escape radii. The larger radius is used for smooth colouring.
const (
	EscapeRadiusSq       = 4.0
	SmoothEscapeRadiusSq = 256.0
)

// EscapeRadiusSqFor returns the squared escape radius for the colouring mode.
func EscapeRadiusSqFor(smooth bool) float64 {
	if smooth {
		return SmoothEscapeRadiusSq
	}
	return EscapeRadiusSq
}

// EscapeResult is the outcome of iterating one point.
type EscapeResult struct {
	// Iteration is the 0-based step on which the orbit escaped, or the
	// iteration budget when it did not escape.
	Iteration int
	// Escaped reports whether the orbit left the escape radius inside the
	// iteration loop. Points rejected by the exterior short-circuit report
	// Iteration 0 with Escaped false.
	Escaped bool
	// Smooth is the fractional escape position in [0,1]. Only set when
	// smoothing was requested and Escaped is true.
	Smooth float64
	// Radius is |z| at the moment of escape, |c| for the exterior short-circuit.
	Radius float64
}

// Interior reports whether the point is treated as part of the set.
func (r EscapeResult) Interior(maxIter int) bool {
	return r.Iteration >= maxIter
}

// SmoothByte returns the smooth fraction scaled to a byte.
func (r EscapeResult) SmoothByte() byte {
	return smoothByte(r.Smooth)
}

// Evaluate runs the escape-time iteration z <- z^2 + c for c = x + iy.
//
// Two closed-form interior tests skip the loop for points inside the period-2
// disc and the central disc of the main cardioid. Points whose distance from the
// origin already exceeds the escape radius are reported as escaping at
// iteration 0 without iterating. This tests |c| rather than |z1| and so can
// misclassify a thin band of points.
func Evaluate(x, y float64, maxIter int, escapeRadiusSq float64, smooth bool) EscapeResult {
	if maxIter <= 0 {
		return EscapeResult{}
	}

	x2, y2 := x*x, y*y
	if xp := x + 1; xp*xp+y2 < 1.0/16 {
		return EscapeResult{Iteration: maxIter}
	}
	if x2+y2 < 0.25 && x > -0.75 {
		return EscapeResult{Iteration: maxIter}
	}
	if x2+y2 > escapeRadiusSq {
		return EscapeResult{Radius: math.Sqrt(x2 + y2)}
	}

	var zr, zi, zr2, zi2 float64
	for i := 0; i < maxIter; i++ {
		zi = 2*zr*zi + y
		zr = zr2 - zi2 + x
		zr2, zi2 = zr*zr, zi*zi
		if r2 := zr2 + zi2; r2 >= escapeRadiusSq {
			res := EscapeResult{Iteration: i, Escaped: true, Radius: math.Sqrt(r2)}
			if smooth {
				res.Smooth = smoothFraction(r2)
			}
			return res
		}
	}
	return EscapeResult{Iteration: maxIter}
}

// JuliaConstant is the fixed c of a Julia set.
type JuliaConstant struct {
	Re, Im float64
}

// EvaluateJulia runs z <- z^2 + c from z0 = x + iy with c fixed to (cr, ci).
// Iteration counts follow Evaluate: with z0 = 0 the orbit is the Mandelbrot
// orbit of c. The cardioid and bulb tests do not apply; starting points
// already outside the escape radius report Iteration 0.
func EvaluateJulia(x, y, cr, ci float64, maxIter int, escapeRadiusSq float64, smooth bool) EscapeResult {
	if maxIter <= 0 {
		return EscapeResult{}
	}

	zr, zi := x, y
	zr2, zi2 := zr*zr, zi*zi
	if zr2+zi2 > escapeRadiusSq {
		return EscapeResult{Radius: math.Sqrt(zr2 + zi2)}
	}
	for i := 0; i < maxIter; i++ {
		zi = 2*zr*zi + ci
		zr = zr2 - zi2 + cr
		zr2, zi2 = zr*zr, zi*zi
		if r2 := zr2 + zi2; r2 >= escapeRadiusSq {
			res := EscapeResult{Iteration: i, Escaped: true, Radius: math.Sqrt(r2)}
			if smooth {
				res.Smooth = smoothFraction(r2)
			}
			return res
		}
	}
	return EscapeResult{Iteration: maxIter}
}

// smoothFraction is the normalised iteration count offset log2(log2|z|) - 2,
// clamped to [0,1].
func smoothFraction(r2 float64) float64 {
	s := math.Log2(math.Log2(math.Sqrt(r2))) - 2
	switch {
	case s < 0 || math.IsNaN(s):
		return 0
	case s > 1:
		return 1
	}
	return s
}

func smoothByte(s float64) byte {
	v := math.Floor(s * 255)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return byte(v)
}
