package mandel

import (
	"bytes"
	"errors"
	"testing"
)

func TestRenderSegment(t *testing.T) {
	const (
		w, h    = 80, 60
		sx, sy  = 40.0, 30.0
		zoom    = 20.0
		maxIter = 100
	)
	pix, err := RenderSegment(0, h, w, sx, sy, zoom, maxIter, false, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pix) != w*h {
		t.Fatalf("len = %d, want %d", len(pix), w*h)
	}
	// (sx, sy) is the origin, inside the set; the corner is -2-1.5i, outside
	// the escape radius.
	if got := pix[int(sy)*w+int(sx)]; got != 255 {
		t.Errorf("origin pixel = %d, want 255", got)
	}
	if got := pix[0]; got != 0 {
		t.Errorf("corner pixel = %d, want 0", got)
	}

	again, err := RenderSegment(0, h, w, sx, sy, zoom, maxIter, false, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pix, again) {
		t.Error("RenderSegment is not deterministic")
	}
}

func TestRenderSegmentCompose(t *testing.T) {
	const w, h = 80, 60
	for _, block := range []int{1, 4} {
		for _, smooth := range []bool{false, true} {
			rd := &Renderer{}
			full, err := rd.RenderSegment(0, h, w, 50, 25, 18, 150, smooth, block)
			if err != nil {
				t.Fatal(err)
			}
			var parts []byte
			for _, seg := range SplitRows(w, h, 9) {
				part, err := rd.RenderSegment(seg.Min.Y, seg.Dy(), w, 50, 25, 18, 150, smooth, block)
				if err != nil {
					t.Fatal(err)
				}
				parts = append(parts, part...)
			}
			if !bytes.Equal(full, parts) {
				t.Errorf("block %d smooth %v: segments differ from the full render", block, smooth)
			}
		}
	}
}

// Canvases taller than wide, split at rows on both sides of the width.
func TestRenderSegmentComposeTall(t *testing.T) {
	const w, h = 54, 257
	screens := []struct{ sx, sy, zoom float64 }{
		{27, 128, 17},
		{40.5, 200.25, 23.7},
		{-10, 300, 41},
	}
	for _, sc := range screens {
		for _, rows := range []int{7, 23, 53, 55} {
			rd := &Renderer{}
			full, err := rd.RenderSegment(0, h, w, sc.sx, sc.sy, sc.zoom, 120, true, 1)
			if err != nil {
				t.Fatal(err)
			}
			var parts []byte
			for _, seg := range SplitRows(w, h, rows) {
				part, err := rd.RenderSegment(seg.Min.Y, seg.Dy(), w, sc.sx, sc.sy, sc.zoom, 120, true, 1)
				if err != nil {
					t.Fatal(err)
				}
				parts = append(parts, part...)
			}
			if !bytes.Equal(full, parts) {
				t.Errorf("screen %+v, %d rows: segments differ from the full render", sc, rows)
			}
		}
	}
}

// A segment starting past the canvas width maps its rows like any other.
func TestRenderSegmentRowMapping(t *testing.T) {
	const (
		w          = 30
		sx, sy     = 12.5, 90.0
		zoom       = 31.0
		start, seg = 70, 40
	)
	pix, err := RenderSegment(start, seg, w, sx, sy, zoom, 80, false, 1)
	if err != nil {
		t.Fatal(err)
	}
	step := 1 / zoom
	for _, p := range [][2]int{{0, 70}, {12, 89}, {29, 109}} {
		x, y := p[0], p[1]
		r := Evaluate(-sx*step+float64(x)*step, -sy*step+float64(y)*step, 80, EscapeRadiusSqFor(false), false)
		if got, want := pix[(y-start)*w+x], rawLevel(r.Iteration, 80); got != want {
			t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
		}
	}
}

func TestRenderSegmentWithSmooth(t *testing.T) {
	const w, segH = 64, 10
	pix, smooth, err := RenderSegmentWithSmooth(20, segH, w, 32, 32, 16, 200, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(pix) != w*segH || len(smooth) != w*segH {
		t.Fatalf("got %d pixels and %d smooth bytes, want %d each", len(pix), len(smooth), w*segH)
	}

	plain, err := RenderSegment(20, segH, w, 32, 32, 16, 200, true, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pix, plain) {
		t.Error("RenderSegmentWithSmooth pixels differ from RenderSegment with smoothing")
	}
	for i, p := range pix {
		if p == 255 && smooth[i] != 0 {
			t.Fatalf("interior pixel %d has smooth byte %d", i, smooth[i])
		}
	}
}

func TestRenderImage(t *testing.T) {
	const w, h = 48, 32
	gray, err := RenderImage(-0.5, 0, 12, 100, w, h, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(gray) != w*h {
		t.Errorf("grey len = %d, want %d", len(gray), w*h)
	}

	rgba, err := RenderImageRGBA(-0.5, 0, 12, 100, w, h, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rgba) != w*h*4 {
		t.Errorf("rgba len = %d, want %d", len(rgba), w*h*4)
	}
	// The centre is inside the set.
	if c := rgba[(h/2*w+w/2)*4:][:4]; !bytes.Equal(c, []byte{0, 0, 0, 255}) {
		t.Errorf("centre pixel = %v, want opaque black", c)
	}
	if g := gray[h/2*w+w/2]; g != 0 {
		t.Errorf("centre grey = %d, want 0", g)
	}
}

func TestRenderFull(t *testing.T) {
	p := Params{
		MinReal: Home.Xmin, MaxReal: Home.Xmax,
		MinImag: Home.Ymin, MaxImag: Home.Ymax,
		CanvasWidth:     70,
		CanvasHeight:    50,
		MaxIterations:   120,
		SmoothRendering: true,
		BlockSize:       2,
	}
	full, err := RenderFull(p)
	if err != nil {
		t.Fatal(err)
	}
	if full.Width != 70 || full.Height != 50 || len(full.ImageData) != 70*50*4 {
		t.Fatalf("RenderFull = %dx%d with %d bytes", full.Width, full.Height, len(full.ImageData))
	}

	rd := &Renderer{}
	var parts []byte
	for _, seg := range SplitRows(p.CanvasWidth, p.CanvasHeight, 12) {
		res, err := rd.RenderFullSegment(p, seg.Min.Y, seg.Dy())
		if err != nil {
			t.Fatal(err)
		}
		parts = append(parts, res.ImageData...)
	}
	if !bytes.Equal(parts, full.ImageData) {
		t.Error("RenderFullSegment pieces differ from RenderFull")
	}
}

func TestBoundaryInvalid(t *testing.T) {
	tests := []struct {
		name string
		call func() error
	}{
		{"segment zero height", func() error {
			_, err := RenderSegment(0, 0, 10, 0, 0, 1, 10, false, 1)
			return err
		}},
		{"segment zero block", func() error {
			_, err := RenderSegment(0, 5, 10, 0, 0, 1, 10, false, 0)
			return err
		}},
		{"segment zero zoom", func() error {
			_, err := RenderSegment(0, 5, 10, 0, 0, 0, 10, false, 1)
			return err
		}},
		{"segment zero width", func() error {
			_, _, err := RenderSegmentWithSmooth(0, 5, 0, 0, 0, 1, 10, 1)
			return err
		}},
		{"segment negative iterations", func() error {
			_, err := RenderSegment(0, 5, 10, 0, 0, 1, -1, false, 1)
			return err
		}},
		{"image zero zoom", func() error {
			_, err := RenderImage(0, 0, 0, 10, 10, 10, 0)
			return err
		}},
		{"image negative start line", func() error {
			_, err := RenderImage(0, 0, 1, 10, 10, 10, -1)
			return err
		}},
		{"image rgba negative start line", func() error {
			_, err := RenderImageRGBA(0, 0, 1, 10, 10, 10, -4)
			return err
		}},
		{"image zero size", func() error {
			_, err := RenderImageRGBA(0, 0, 1, 10, 0, 10, 0)
			return err
		}},
		{"full empty region", func() error {
			_, err := RenderFull(Params{MinReal: 1, MaxReal: 0, MinImag: 0, MaxImag: 1, CanvasWidth: 4, CanvasHeight: 4})
			return err
		}},
		{"full zero segment", func() error {
			_, err := new(Renderer).RenderFullSegment(Params{MaxReal: 1, MaxImag: 1, CanvasWidth: 4, CanvasHeight: 4}, 0, 0)
			return err
		}},
	}
	for _, tt := range tests {
		if err := tt.call(); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: got %v, want ErrInvalidArgument", tt.name, err)
		}
	}
}
