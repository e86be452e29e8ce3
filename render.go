package mandel

import (
	"image"
	"image/color"
	"time"

	"golang.org/x/sync/errgroup"
)

// Renderer turns requests into pixel buffers. It is the per-worker context:
// its Pool is reused across calls, so a Renderer must not be used by two
// goroutines at once. Run one Renderer per worker instead. The zero value is
// ready to use.
type Renderer struct {
	// Palette colours FormatRGBA renders. nil means ClassicPalette.
	Palette *Palette
	// Pool holds the scratch buffers. nil means a pool is created on first use.
	Pool *Pool
	// OnSegment, when set, is called before each segment is rendered.
	OnSegment func(seg image.Rectangle)
}

// Render evaluates the requested segment and encodes it in req.Format.
// The returned buffers are copies; the Renderer keeps no reference to them.
func (rd *Renderer) Render(req Request) (*Result, error) {
	start := time.Now()
	req, err := req.normalize()
	if err != nil {
		return nil, err
	}
	if rd.OnSegment != nil {
		rd.OnSegment(req.Segment())
	}
	if rd.Pool == nil {
		rd.Pool = NewPool()
	}
	pal := rd.Palette
	if pal == nil {
		pal = ClassicPalette
	}

	m := req.Viewport.planeMap(req.Width, req.Height)
	esc := EscapeRadiusSqFor(req.Smooth)
	n := req.Width * req.SegmentHeight
	iters, fracs := rd.Pool.escapes(n)
	segEnd := req.StartLine + req.SegmentHeight

	err = parallelRows(req.Workers, req.StartLine, segEnd, req.BlockSize, func(y0, y1 int) {
		evalRows(req, m, esc, iters, fracs, y0, y1)
	})
	if err != nil {
		return nil, err
	}

	rng := IterRange{Min: 0, Max: req.MaxIterations}
	switch {
	case req.Bounds != nil:
		rng = *req.Bounds
	case req.Format == FormatGray && req.Range == RangeSampled:
		rng = sampleRange(req, m, esc)
	case req.Format == FormatGray && req.Range == RangeExhaustive:
		rng = exhaustiveRange(req, m, esc, iters)
	}

	ch := req.Format.Channels()
	pix := rd.Pool.bytes(n * ch)
	var smooth []byte
	if req.Format == FormatRaw && req.Smooth {
		smooth = rd.Pool.smoothBytes(n)
	}
	err = parallelRows(req.Workers, 0, req.SegmentHeight, 1, func(y0, y1 int) {
		for i := y0 * req.Width; i < y1*req.Width; i++ {
			it, frac := int(iters[i]), float64(fracs[i])
			switch req.Format {
			case FormatRaw:
				pix[i] = rawLevel(it, req.MaxIterations)
				if smooth != nil {
					smooth[i] = smoothByte(max(frac, 0))
				}
			case FormatGray:
				pix[i] = grayLevel(it, req.MaxIterations, rng)
			case FormatRGBA:
				c := black
				if it < req.MaxIterations {
					c = pal.Color(it, frac, req.Smooth && frac >= 0)
				}
				p := pix[i*4 : i*4+4 : i*4+4]
				p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
			}
		}
	})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Pix:       append([]byte(nil), pix...),
		Format:    req.Format,
		Width:     req.Width,
		Height:    req.SegmentHeight,
		StartLine: req.StartLine,
		Range:     rng,
	}
	if smooth != nil {
		res.Smooth = append([]byte(nil), smooth...)
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// ScanRange discovers the iteration range of the whole canvas described by
// req, using a sample grid for RangeSampled and every block otherwise. Hosts
// that tile a canvas can scan once and pass the result as Request.Bounds.
func (rd *Renderer) ScanRange(req Request) (IterRange, error) {
	req, err := req.normalize()
	if err != nil {
		return IterRange{}, err
	}
	m := req.Viewport.planeMap(req.Width, req.Height)
	esc := EscapeRadiusSqFor(req.Smooth)
	if req.Range == RangeSampled {
		return sampleRange(req, m, esc), nil
	}
	req.SegmentHeight = 0
	req.StartLine = 0
	return exhaustiveRange(req, m, esc, nil), nil
}

// evalRows evaluates the canvas rows [y0, y1) of the request's segment into
// iters and fracs. A fraction of -1 marks points without a smooth value.
func evalRows(req Request, m planeMap, esc float64, iters []int32, fracs []float32, y0, y1 int) {
	w, k := req.Width, req.BlockSize
	for y := y0; y < y1; y++ {
		off := (y - req.StartLine) * w
		if y > y0 && y%k != 0 {
			copy(iters[off:off+w], iters[off-w:off])
			copy(fracs[off:off+w], fracs[off-w:off])
			continue
		}
		ci := m.y(y - y%k)
		for x := 0; x < w; x += k {
			r := req.evaluate(m.x(x), ci, esc, req.Smooth)
			frac := float32(-1)
			if r.Escaped && req.Smooth {
				frac = float32(r.Smooth)
			}
			end := min(x+k, w)
			for i := off + x; i < off+end; i++ {
				iters[i] = int32(r.Iteration)
				fracs[i] = frac
			}
		}
	}
}

var black = color.RGBA{A: 255}

// rawLevel is the raw byte of an iteration count: 255 for interior points.
func rawLevel(it, maxIter int) byte {
	if it >= maxIter {
		return 255
	}
	return byte(it % cycle)
}

// grayLevel stretches it over rng and inverts it, so slow escapes are darker.
func grayLevel(it, maxIter int, rng IterRange) byte {
	if it >= maxIter {
		return 0
	}
	if rng.Max == rng.Min {
		return 128
	}
	v := float64(it-rng.Min) / float64(rng.Max-rng.Min) * 255
	switch {
	case v < 0:
		v = 0
	case v > 255:
		v = 255
	}
	return 255 - byte(v)
}

// parallelRows calls fn over [lo, hi) split into chunks whose inner
// boundaries are multiples of align. With workers <= 1 fn runs once on the
// calling goroutine. Chunks are disjoint, so fn may write its rows without
// locking.
func parallelRows(workers, lo, hi, align int, fn func(y0, y1 int)) error {
	if hi <= lo {
		return nil
	}
	if workers <= 1 {
		fn(lo, hi)
		return nil
	}
	blocks := (hi - lo + align - 1) / align
	per := max(1, blocks/(workers*4))

	var g errgroup.Group
	g.SetLimit(workers)
	for y := lo; y < hi; {
		end := min((y/align+per)*align, hi)
		y0, y1 := y, end
		g.Go(func() error {
			fn(y0, y1)
			return nil
		})
		y = end
	}
	return g.Wait()
}
