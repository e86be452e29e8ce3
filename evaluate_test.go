package mandel

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluateInterior(t *testing.T) {
	points := []struct {
		name string
		x, y float64
	}{
		{"origin", 0, 0},
		{"cardioid centre", -0.1, 0.1},
		{"inner disc", 0.2, 0},
		{"bulb centre", -1, 0},
		{"bulb off axis", -1.1, 0.1},
	}

	for _, p := range points {
		for _, maxIter := range []int{1, 10, 1000} {
			for _, esc := range []float64{EscapeRadiusSq, SmoothEscapeRadiusSq} {
				r := Evaluate(p.x, p.y, maxIter, esc, true)
				if r.Iteration != maxIter || r.Escaped {
					t.Errorf("%s: Evaluate(%g, %g, %d, %g) = %+v, want interior",
						p.name, p.x, p.y, maxIter, esc, r)
				}
				if !r.Interior(maxIter) {
					t.Errorf("%s: Interior(%d) = false", p.name, maxIter)
				}
			}
		}
	}
}

func TestEvaluateEscape(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		maxIter int
		want    int
		escaped bool
	}{
		{"exterior short-circuit", 2, 2, 100, 0, false},
		{"far away", -10, 3, 100, 0, false},
		{"one", 1, 0, 100, 1, true},
		{"half", 0.5, 0, 100, 4, true},
		{"zero budget", 0.5, 0, 0, 0, false},
		{"budget exhausted before escape", 0.5, 0, 3, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Evaluate(tt.x, tt.y, tt.maxIter, EscapeRadiusSq, false)
			if r.Iteration != tt.want || r.Escaped != tt.escaped {
				t.Errorf("Evaluate(%g, %g, %d) = %+v, want iteration %d escaped %v",
					tt.x, tt.y, tt.maxIter, r, tt.want, tt.escaped)
			}
		})
	}
}

func TestEvaluateJulia(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		cr, ci  float64
		want    int
		escaped bool
	}{
		{"unit disc interior", 0.5, 0, 0, 0, 100, false},
		{"unit disc exterior", 1.5, 0, 0, 0, 0, true},
		{"short-circuit", 3, 0, 0, 0, 0, false},
		// Inside the main cardioid, but not in the Julia set of 1+i.
		{"no cardioid test", -0.1, 0.1, 1, 1, 1, true},
		{"basilica centre", 0, 0, -1, 0, 100, false},
	}
	for _, tt := range tests {
		r := EvaluateJulia(tt.x, tt.y, tt.cr, tt.ci, 100, EscapeRadiusSq, false)
		if r.Iteration != tt.want || r.Escaped != tt.escaped {
			t.Errorf("%s: EvaluateJulia(%g, %g, %g, %g) = %+v, want iteration %d escaped %v",
				tt.name, tt.x, tt.y, tt.cr, tt.ci, r, tt.want, tt.escaped)
		}
	}
	if r := EvaluateJulia(0.1, 0.1, 0.3, 0.5, 0, EscapeRadiusSq, false); r != (EscapeResult{}) {
		t.Errorf("zero budget = %+v", r)
	}
}

// From z0 = 0 a Julia orbit is the Mandelbrot orbit of its constant.
func TestEvaluateJuliaOrigin(t *testing.T) {
	for _, c := range [][2]float64{{0.5, 0}, {1, 0}, {0.3, 0.6}, {-0.75, 0.1}, {-1.8, 0.01}} {
		for _, smooth := range []bool{false, true} {
			esc := EscapeRadiusSqFor(smooth)
			got := EvaluateJulia(0, 0, c[0], c[1], 300, esc, smooth)
			want := Evaluate(c[0], c[1], 300, esc, smooth)
			if got != want {
				t.Errorf("c = %v smooth %v: EvaluateJulia = %+v, Evaluate = %+v", c, smooth, got, want)
			}
		}
	}
}

// Julia sets are symmetric under z -> -z.
func TestEvaluateJuliaSymmetric(t *testing.T) {
	const cr, ci = -0.8, 0.156
	for _, p := range [][2]float64{{0.1, 0.2}, {-0.7, 0.05}, {1.2, -0.3}, {0.33, 0.41}} {
		a := EvaluateJulia(p[0], p[1], cr, ci, 500, SmoothEscapeRadiusSq, true)
		b := EvaluateJulia(-p[0], -p[1], cr, ci, 500, SmoothEscapeRadiusSq, true)
		if a != b {
			t.Errorf("%v: %+v, mirrored %+v", p, a, b)
		}
	}
}

func TestEvaluateRadius(t *testing.T) {
	r := Evaluate(2, 2, 100, EscapeRadiusSq, false)
	if want := math.Sqrt(8); r.Radius != want {
		t.Errorf("short-circuit radius = %g, want |c| = %g", r.Radius, want)
	}

	for _, esc := range []float64{EscapeRadiusSq, SmoothEscapeRadiusSq} {
		r := Evaluate(0.5, 0.5, 500, esc, false)
		if !r.Escaped {
			t.Fatalf("0.5+0.5i should escape, got %+v", r)
		}
		if r.Radius*r.Radius < esc {
			t.Errorf("escape radius %g is inside the escape radius %g", r.Radius, math.Sqrt(esc))
		}
	}
}

func TestEvaluatePoint(t *testing.T) {
	it, radius, err := EvaluatePoint(2, 2, 50, false)
	if err != nil {
		t.Fatal(err)
	}
	if it != 0 || radius != math.Sqrt(8) {
		t.Errorf("EvaluatePoint(2, 2) = %d, %g; want 0, %g", it, radius, math.Sqrt(8))
	}

	it, _, err = EvaluatePoint(-0.5, 0, 50, true)
	if err != nil {
		t.Fatal(err)
	}
	if it != 50 {
		t.Errorf("EvaluatePoint(-0.5, 0) = %d, want 50", it)
	}

	if _, _, err := EvaluatePoint(0, 0, -1, false); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative max iterations: got %v, want ErrInvalidArgument", err)
	}
}

func TestSmoothFraction(t *testing.T) {
	tests := []struct {
		r2   float64
		want float64
	}{
		{SmoothEscapeRadiusSq, 0}, // |z| = 16
		{256 * 256, 1},            // |z| = 256
		{4, 0},                    // below the smooth radius, clamped
		{1 << 40, 1},              // far beyond, clamped
		{math.Pow(2, 2*math.Pow(2, 2.5)), 0.5},
	}

	for _, tt := range tests {
		if got := smoothFraction(tt.r2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("smoothFraction(%g) = %g, want %g", tt.r2, got, tt.want)
		}
	}
}

// The smooth fraction rises continuously with the escape radius, so the
// blended colour has no jumps within one iteration band.
func TestSmoothFractionContinuous(t *testing.T) {
	const steps = 10000
	prev := smoothFraction(SmoothEscapeRadiusSq)
	for i := 1; i <= steps; i++ {
		r2 := SmoothEscapeRadiusSq + (256*256-SmoothEscapeRadiusSq)*float64(i)/steps
		s := smoothFraction(r2)
		if s < prev {
			t.Fatalf("smoothFraction decreased at r2=%g: %g < %g", r2, s, prev)
		}
		if s-prev > 0.01 {
			t.Fatalf("smoothFraction jumped at r2=%g: %g -> %g", r2, prev, s)
		}
		prev = s
	}
}

func TestSmoothByte(t *testing.T) {
	tests := []struct {
		s    float64
		want byte
	}{
		{0, 0},
		{0.5, 127},
		{1, 255},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		if got := smoothByte(tt.s); got != tt.want {
			t.Errorf("smoothByte(%g) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestEscapeRadiusSqFor(t *testing.T) {
	if got := EscapeRadiusSqFor(false); got != 4 {
		t.Errorf("EscapeRadiusSqFor(false) = %g, want 4", got)
	}
	if got := EscapeRadiusSqFor(true); got != 256 {
		t.Errorf("EscapeRadiusSqFor(true) = %g, want 256", got)
	}
}
