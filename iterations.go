package mandel

import "math"

// OptimalIterations scales an iteration budget with zoom: deeper views need
// more iterations to resolve the boundary. The result is
// base*(1 + log10(zoom)/2), never below base and never above limit.
func OptimalIterations(zoom float64, base, limit int) int {
	it := float64(base) * (1 + math.Log10(math.Max(zoom, 1))*0.5)
	return min(max(int(it), base), limit)
}
