package mandel

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"
)

// Format selects the pixel encoding of a render.
type Format int

const (
	// FormatRaw writes one byte per pixel: 255 for interior points, otherwise
	// the iteration count mod 255. With Smooth, a parallel array of smooth
	// bytes is returned as well.
	FormatRaw Format = iota
	// FormatGray writes one contrast-stretched grey byte per pixel.
	FormatGray
	// FormatRGBA writes four bytes per pixel coloured through the palette.
	FormatRGBA
)

// Channels returns the number of bytes per pixel.
func (f Format) Channels() int {
	if f == FormatRGBA {
		return 4
	}
	return 1
}

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatGray:
		return "gray"
	case FormatRGBA:
		return "rgba"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses the name returned by Format.String.
func ParseFormat(s string) (Format, error) {
	for _, f := range []Format{FormatRaw, FormatGray, FormatRGBA} {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown format %q", ErrInvalidArgument, s)
}

// RangeMode selects how the grey path discovers the iteration range.
type RangeMode int

const (
	// RangeOff uses the fixed scale 0..MaxIterations.
	RangeOff RangeMode = iota
	// RangeSampled evaluates a sparse grid over the whole canvas.
	RangeSampled
	// RangeExhaustive evaluates every block of the whole canvas.
	RangeExhaustive
)

func (m RangeMode) String() string {
	switch m {
	case RangeOff:
		return "off"
	case RangeSampled:
		return "sampled"
	case RangeExhaustive:
		return "exhaustive"
	}
	return fmt.Sprintf("RangeMode(%d)", int(m))
}

// ParseRangeMode parses the name returned by RangeMode.String.
func ParseRangeMode(s string) (RangeMode, error) {
	for _, m := range []RangeMode{RangeOff, RangeSampled, RangeExhaustive} {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown range mode %q", ErrInvalidArgument, s)
}

// IterRange is the span of iteration counts among escaping points.
type IterRange struct {
	Min, Max int
}

// Request describes one render: a viewport on a Width x Height canvas, and
// the horizontal slice [StartLine, StartLine+SegmentHeight) of it to produce.
// Slices of the same canvas compose into the full image.
type Request struct {
	Viewport      Viewport
	Width, Height int
	MaxIterations int
	Smooth        bool
	// BlockSize k evaluates one point per k x k block. Blocks are aligned to
	// the canvas, not the segment. 0 means 1.
	BlockSize int
	StartLine int
	// SegmentHeight 0 means the rest of the canvas.
	SegmentHeight int

	Format Format
	Range  RangeMode
	// Bounds, when set, is used as the grey scale range instead of scanning.
	Bounds *IterRange
	// Workers > 1 splits the rows between that many goroutines.
	Workers int
	// Julia, when set, renders the Julia set of that constant: each pixel's
	// point is the starting z instead of c.
	Julia *JuliaConstant
}

// normalize checks the preconditions and fills the defaults.
func (r Request) normalize() (Request, error) {
	if r.Viewport == nil {
		return r, fmt.Errorf("%w: no viewport", ErrInvalidArgument)
	}
	if err := r.Viewport.validate(); err != nil {
		return r, err
	}
	if r.Width <= 0 || r.Height <= 0 {
		return r, fmt.Errorf("%w: canvas %dx%d", ErrInvalidArgument, r.Width, r.Height)
	}
	if r.MaxIterations < 0 {
		return r, fmt.Errorf("%w: max iterations %d", ErrInvalidArgument, r.MaxIterations)
	}
	if r.BlockSize < 0 {
		return r, fmt.Errorf("%w: block size %d", ErrInvalidArgument, r.BlockSize)
	}
	if r.BlockSize == 0 {
		r.BlockSize = 1
	}
	if r.StartLine < 0 || r.StartLine >= r.Height {
		return r, fmt.Errorf("%w: start line %d outside canvas height %d", ErrInvalidArgument, r.StartLine, r.Height)
	}
	if r.SegmentHeight < 0 || r.StartLine+r.SegmentHeight > r.Height {
		return r, fmt.Errorf("%w: segment [%d,%d) outside canvas height %d",
			ErrInvalidArgument, r.StartLine, r.StartLine+r.SegmentHeight, r.Height)
	}
	if r.SegmentHeight == 0 {
		r.SegmentHeight = r.Height - r.StartLine
	}
	if r.Format < FormatRaw || r.Format > FormatRGBA {
		return r, fmt.Errorf("%w: format %v", ErrInvalidArgument, r.Format)
	}
	if r.Range < RangeOff || r.Range > RangeExhaustive {
		return r, fmt.Errorf("%w: range mode %v", ErrInvalidArgument, r.Range)
	}
	if r.Bounds != nil && r.Bounds.Min > r.Bounds.Max {
		return r, fmt.Errorf("%w: bounds %+v", ErrInvalidArgument, *r.Bounds)
	}
	if r.Workers < 0 {
		return r, fmt.Errorf("%w: workers %d", ErrInvalidArgument, r.Workers)
	}
	if j := r.Julia; j != nil && (math.IsNaN(j.Re) || math.IsInf(j.Re, 0) || math.IsNaN(j.Im) || math.IsInf(j.Im, 0)) {
		return r, fmt.Errorf("%w: julia constant %+v is not finite", ErrInvalidArgument, *j)
	}
	return r, nil
}

// evaluate iterates the point of one pixel, as c of the Mandelbrot set or as
// the starting z of the request's Julia set.
func (r Request) evaluate(x, y, esc float64, smooth bool) EscapeResult {
	if r.Julia != nil {
		return EvaluateJulia(x, y, r.Julia.Re, r.Julia.Im, r.MaxIterations, esc, smooth)
	}
	return Evaluate(x, y, r.MaxIterations, esc, smooth)
}

// Segment returns the rectangle covered by the request in canvas coordinates.
func (r Request) Segment() image.Rectangle {
	h := r.SegmentHeight
	if h == 0 {
		h = r.Height - r.StartLine
	}
	return image.Rect(0, r.StartLine, r.Width, r.StartLine+h)
}

// Result is a rendered segment. Pix is owned by the caller.
type Result struct {
	Pix []byte
	// Smooth holds one smooth byte per pixel for FormatRaw renders with
	// smoothing, nil otherwise.
	Smooth []byte

	Format    Format
	Width     int
	Height    int
	StartLine int
	// Range is the iteration range used for the grey scale, 0..MaxIterations
	// when no range was discovered.
	Range   IterRange
	Elapsed time.Duration
}

// Bounds returns the rectangle of the segment in canvas coordinates.
func (r *Result) Bounds() image.Rectangle {
	return image.Rect(0, r.StartLine, r.Width, r.StartLine+r.Height)
}

// Image wraps the pixels in an image placed at the segment's canvas position,
// so it can be drawn straight into the full canvas. The pixels are shared.
func (r *Result) Image() image.Image {
	if r.Format == FormatRGBA {
		return &image.RGBA{Pix: r.Pix, Stride: r.Width * 4, Rect: r.Bounds()}
	}
	return &image.Gray{Pix: r.Pix, Stride: r.Width, Rect: r.Bounds()}
}
