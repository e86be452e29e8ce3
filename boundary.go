package mandel

import (
	"fmt"
	"time"
)

// The functions in this file are the flat entry points used by hosts that
// address the renderer with plain numbers (a wasm bridge, a websocket
// handler). Package-level variants use a fresh Renderer per call and are safe
// for concurrent use; the Renderer methods reuse the renderer's Pool.

// EvaluatePoint returns the escape iteration of x+iy and |z| at escape.
// Smooth selects the larger escape radius used for smooth colouring.
func EvaluatePoint(x, y float64, maxIter int, smooth bool) (iterations int, escapeRadius float64, err error) {
	if maxIter < 0 {
		return 0, 0, fmt.Errorf("%w: max iterations %d", ErrInvalidArgument, maxIter)
	}
	r := Evaluate(x, y, maxIter, EscapeRadiusSqFor(smooth), smooth)
	return r.Iteration, r.Radius, nil
}

// segmentRequest builds the raw request for the screen form, where
// (screenX, screenY) is the pixel position of the complex origin. The canvas
// height does not enter the Screen mapping, so the canvas is taken just tall
// enough to hold the segment.
func segmentRequest(startLine, segmentHeight, canvasWidth int, screenX, screenY, zoom float64, maxIter int, smooth bool, blockSize int) (Request, error) {
	if segmentHeight <= 0 {
		return Request{}, fmt.Errorf("%w: segment height %d", ErrInvalidArgument, segmentHeight)
	}
	if blockSize < 1 {
		return Request{}, fmt.Errorf("%w: block size %d", ErrInvalidArgument, blockSize)
	}
	if zoom <= 0 {
		return Request{}, fmt.Errorf("%w: zoom %g must be positive", ErrInvalidArgument, zoom)
	}
	return Request{
		Viewport:      Screen{OriginX: screenX, OriginY: screenY, Zoom: zoom},
		Width:         canvasWidth,
		Height:        startLine + segmentHeight,
		MaxIterations: maxIter,
		Smooth:        smooth,
		BlockSize:     blockSize,
		StartLine:     startLine,
		SegmentHeight: segmentHeight,
		Format:        FormatRaw,
	}, nil
}

// RenderSegment renders canvasWidth x segmentHeight raw bytes starting at
// canvas row startLine: 255 for interior points, iteration mod 255 otherwise.
func (rd *Renderer) RenderSegment(startLine, segmentHeight, canvasWidth int, screenX, screenY, zoom float64, maxIter int, smooth bool, blockSize int) ([]byte, error) {
	req, err := segmentRequest(startLine, segmentHeight, canvasWidth, screenX, screenY, zoom, maxIter, smooth, blockSize)
	if err != nil {
		return nil, err
	}
	res, err := rd.Render(req)
	if err != nil {
		return nil, err
	}
	return res.Pix, nil
}

// RenderSegmentWithSmooth is RenderSegment with smoothing forced on. It also
// returns the parallel array of smooth bytes.
func (rd *Renderer) RenderSegmentWithSmooth(startLine, segmentHeight, canvasWidth int, screenX, screenY, zoom float64, maxIter, blockSize int) (mandel, smooth []byte, err error) {
	req, err := segmentRequest(startLine, segmentHeight, canvasWidth, screenX, screenY, zoom, maxIter, true, blockSize)
	if err != nil {
		return nil, nil, err
	}
	res, err := rd.Render(req)
	if err != nil {
		return nil, nil, err
	}
	return res.Pix, res.Smooth, nil
}

// imageRequest builds a width x height request centred on (cx, cy), shifted
// down by startLine rows.
func imageRequest(cx, cy, zoom float64, maxIter, width, height, startLine int, format Format) (Request, error) {
	if startLine < 0 {
		return Request{}, fmt.Errorf("%w: start line %d", ErrInvalidArgument, startLine)
	}
	v := View{CenterX: cx, CenterY: cy, Zoom: zoom}
	if zoom > 0 {
		v.CenterY += float64(startLine) / zoom
	}
	return Request{
		Viewport:      v,
		Width:         width,
		Height:        height,
		MaxIterations: maxIter,
		Format:        format,
		Range:         RangeSampled,
	}, nil
}

// RenderImage renders a contrast-stretched grey image of width x height.
//
// Each call samples its own grey range over its own window, so tiles rendered
// with different startLine values do not share one scale. To tile a grey
// canvas, scan it once with ScanRange and render the tiles through Render
// with that range as Request.Bounds.
func (rd *Renderer) RenderImage(cx, cy, zoom float64, maxIter, width, height, startLine int) ([]byte, error) {
	req, err := imageRequest(cx, cy, zoom, maxIter, width, height, startLine, FormatGray)
	if err != nil {
		return nil, err
	}
	res, err := rd.Render(req)
	if err != nil {
		return nil, err
	}
	return res.Pix, nil
}

// RenderImageRGBA renders width x height RGBA pixels through the renderer's palette.
func (rd *Renderer) RenderImageRGBA(cx, cy, zoom float64, maxIter, width, height, startLine int) ([]byte, error) {
	req, err := imageRequest(cx, cy, zoom, maxIter, width, height, startLine, FormatRGBA)
	if err != nil {
		return nil, err
	}
	res, err := rd.Render(req)
	if err != nil {
		return nil, err
	}
	return res.Pix, nil
}

// Params describes a full RGBA render over an explicit plane interval.
type Params struct {
	MinReal, MaxReal float64
	MinImag, MaxImag float64
	CanvasWidth      int
	CanvasHeight     int
	MaxIterations    int
	SmoothRendering  bool
	BlockSize        int
}

func (p Params) request() Request {
	return Request{
		Viewport:      Region{Xmin: p.MinReal, Xmax: p.MaxReal, Ymin: p.MinImag, Ymax: p.MaxImag},
		Width:         p.CanvasWidth,
		Height:        p.CanvasHeight,
		MaxIterations: p.MaxIterations,
		Smooth:        p.SmoothRendering,
		BlockSize:     p.BlockSize,
		Format:        FormatRGBA,
	}
}

// FullResult is a ready-to-blit RGBA image.
type FullResult struct {
	ImageData       []byte
	Width, Height   int
	ComputationTime time.Duration
}

// RenderFull renders the whole canvas described by p.
func (rd *Renderer) RenderFull(p Params) (*FullResult, error) {
	return rd.RenderFullSegment(p, 0, p.CanvasHeight)
}

// RenderFullSegment renders rows [startLine, startLine+segmentHeight) of the
// canvas described by p.
func (rd *Renderer) RenderFullSegment(p Params, startLine, segmentHeight int) (*FullResult, error) {
	if segmentHeight <= 0 {
		return nil, fmt.Errorf("%w: segment height %d", ErrInvalidArgument, segmentHeight)
	}
	req := p.request()
	req.StartLine, req.SegmentHeight = startLine, segmentHeight
	res, err := rd.Render(req)
	if err != nil {
		return nil, err
	}
	return &FullResult{
		ImageData:       res.Pix,
		Width:           res.Width,
		Height:          res.Height,
		ComputationTime: res.Elapsed,
	}, nil
}

// RenderSegment renders a raw segment with a one-off Renderer.
func RenderSegment(startLine, segmentHeight, canvasWidth int, screenX, screenY, zoom float64, maxIter int, smooth bool, blockSize int) ([]byte, error) {
	return new(Renderer).RenderSegment(startLine, segmentHeight, canvasWidth, screenX, screenY, zoom, maxIter, smooth, blockSize)
}

// RenderSegmentWithSmooth renders a raw segment and its smooth bytes with a one-off Renderer.
func RenderSegmentWithSmooth(startLine, segmentHeight, canvasWidth int, screenX, screenY, zoom float64, maxIter, blockSize int) (mandel, smooth []byte, err error) {
	return new(Renderer).RenderSegmentWithSmooth(startLine, segmentHeight, canvasWidth, screenX, screenY, zoom, maxIter, blockSize)
}

// RenderImage renders a grey image with a one-off Renderer.
func RenderImage(cx, cy, zoom float64, maxIter, width, height, startLine int) ([]byte, error) {
	return new(Renderer).RenderImage(cx, cy, zoom, maxIter, width, height, startLine)
}

// RenderImageRGBA renders an RGBA image in the classic palette with a one-off Renderer.
func RenderImageRGBA(cx, cy, zoom float64, maxIter, width, height, startLine int) ([]byte, error) {
	return new(Renderer).RenderImageRGBA(cx, cy, zoom, maxIter, width, height, startLine)
}

// RenderFull renders an RGBA image in the classic palette with a one-off Renderer.
func RenderFull(p Params) (*FullResult, error) {
	return new(Renderer).RenderFull(p)
}
