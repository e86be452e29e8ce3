package mandel

import "testing"

func TestOptimalIterations(t *testing.T) {
	tests := []struct {
		zoom        float64
		base, limit int
		want        int
	}{
		{1, 100, 1000, 100},
		{0.01, 100, 1000, 100},
		{50, 100, 1000, 184},
		{5000, 100, 1000, 284},
		{1e20, 100, 1000, 1000},
		{1e4, 100, 250, 250},
	}
	for _, tt := range tests {
		if got := OptimalIterations(tt.zoom, tt.base, tt.limit); got != tt.want {
			t.Errorf("OptimalIterations(%g, %d, %d) = %d, want %d", tt.zoom, tt.base, tt.limit, got, tt.want)
		}
	}
}

func TestOptimalIterationsMonotonic(t *testing.T) {
	const base, limit = 250, 5000
	prev := 0
	for zoom := 0.5; zoom < 1e15; zoom *= 1.7 {
		it := OptimalIterations(zoom, base, limit)
		if it < prev {
			t.Fatalf("OptimalIterations decreased at zoom %g: %d < %d", zoom, it, prev)
		}
		if it > limit || it < base {
			t.Fatalf("OptimalIterations(%g) = %d outside [%d, %d]", zoom, it, base, limit)
		}
		prev = it
	}
}
