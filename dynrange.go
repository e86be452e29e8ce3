package mandel

import "sync"

// Canvases at least this wide are sampled on a coarser grid.
const wideCanvas = 1024

// sampleStride returns the distance in pixels between range samples.
func sampleStride(width int) int {
	if width >= wideCanvas {
		return 8
	}
	return 4
}

// rangeAcc accumulates the iteration span of escaping points.
type rangeAcc struct {
	min, max int
	seen     bool
}

func (a *rangeAcc) add(it, maxIter int) {
	if it >= maxIter {
		return
	}
	if !a.seen {
		a.min, a.max, a.seen = it, it, true
		return
	}
	a.min = min(a.min, it)
	a.max = max(a.max, it)
}

func (a *rangeAcc) merge(b rangeAcc) {
	if !b.seen {
		return
	}
	if !a.seen {
		*a = b
		return
	}
	a.min = min(a.min, b.min)
	a.max = max(a.max, b.max)
}

// result returns the span, or 0..maxIter if no point escaped.
func (a rangeAcc) result(maxIter int) IterRange {
	if !a.seen {
		return IterRange{Min: 0, Max: maxIter}
	}
	return IterRange{Min: a.min, Max: a.max}
}

// scanRows runs scan over the block-row indices [0, rows) on the request's
// workers and merges what each chunk accumulated.
func scanRows(req Request, rows int, scan func(acc *rangeAcc, b int)) IterRange {
	var (
		mu    sync.Mutex
		total rangeAcc
	)
	_ = parallelRows(req.Workers, 0, rows, 1, func(b0, b1 int) {
		var acc rangeAcc
		for b := b0; b < b1; b++ {
			scan(&acc, b)
		}
		mu.Lock()
		total.merge(acc)
		mu.Unlock()
	})
	return total.result(req.MaxIterations)
}

// sampleRange evaluates a stride grid over the whole canvas. Each sample is
// taken at the representative point of its block, so the range matches what
// block rendering displays.
func sampleRange(req Request, m planeMap, esc float64) IterRange {
	s, k := sampleStride(req.Width), req.BlockSize
	rows := (req.Height + s - 1) / s
	return scanRows(req, rows, func(acc *rangeAcc, b int) {
		y := b * s
		ci := m.y(y - y%k)
		for x := 0; x < req.Width; x += s {
			r := req.evaluate(m.x(x-x%k), ci, esc, false)
			acc.add(r.Iteration, req.MaxIterations)
		}
	})
}

// exhaustiveRange evaluates every block of the whole canvas. Blocks inside
// the request's segment are read from iters instead of being evaluated
// again; iters may be nil when the segment is empty.
func exhaustiveRange(req Request, m planeMap, esc float64, iters []int32) IterRange {
	k := req.BlockSize
	segStart, segEnd := req.StartLine, req.StartLine+req.SegmentHeight
	rows := (req.Height + k - 1) / k
	return scanRows(req, rows, func(acc *rangeAcc, b int) {
		ry := b * k
		if ry+k > segStart && ry < segEnd {
			off := (max(ry, segStart) - segStart) * req.Width
			for x := 0; x < req.Width; x += k {
				acc.add(int(iters[off+x]), req.MaxIterations)
			}
			return
		}
		ci := m.y(ry)
		for x := 0; x < req.Width; x += k {
			acc.add(req.evaluate(m.x(x), ci, esc, false).Iteration, req.MaxIterations)
		}
	})
}
