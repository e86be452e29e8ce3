// Package wire carries segment requests and rendered frames between
// mandelserve and its callers over irpc. The SegmentService interface is
// served by Service and reached remotely through the generated client.
package wire

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	mandel "github.com/marben/mandelview"
)

// NewSegmentRequest converts a request for the wire. Palette, Rotate and
// Compress are left for the caller to fill in.
func NewSegmentRequest(r mandel.Request) (SegmentRequest, error) {
	s := SegmentRequest{
		Julia:         r.Julia,
		Width:         r.Width,
		Height:        r.Height,
		MaxIterations: r.MaxIterations,
		Smooth:        r.Smooth,
		BlockSize:     r.BlockSize,
		StartLine:     r.StartLine,
		SegmentHeight: r.SegmentHeight,
		Format:        r.Format.String(),
		Range:         r.Range.String(),
		Bounds:        r.Bounds,
	}
	switch v := r.Viewport.(type) {
	case mandel.Region:
		s.Region = &v
	case mandel.View:
		s.View = &v
	case mandel.Screen:
		s.Screen = &v
	default:
		return s, fmt.Errorf("%w: unsupported viewport %T", mandel.ErrInvalidArgument, r.Viewport)
	}
	return s, nil
}

// Request converts the wire form back into a mandel.Request.
func (s SegmentRequest) Request() (mandel.Request, error) {
	format, err := mandel.ParseFormat(s.Format)
	if err != nil {
		return mandel.Request{}, err
	}
	rng := mandel.RangeOff
	if s.Range != "" {
		if rng, err = mandel.ParseRangeMode(s.Range); err != nil {
			return mandel.Request{}, err
		}
	}
	r := mandel.Request{
		Julia:         s.Julia,
		Width:         s.Width,
		Height:        s.Height,
		MaxIterations: s.MaxIterations,
		Smooth:        s.Smooth,
		BlockSize:     s.BlockSize,
		StartLine:     s.StartLine,
		SegmentHeight: s.SegmentHeight,
		Format:        format,
		Range:         rng,
		Bounds:        s.Bounds,
	}

	var n int
	if s.Region != nil {
		r.Viewport = *s.Region
		n++
	}
	if s.View != nil {
		r.Viewport = *s.View
		n++
	}
	if s.Screen != nil {
		r.Viewport = *s.Screen
		n++
	}
	switch n {
	case 0:
		return r, fmt.Errorf("%w: no viewport", mandel.ErrInvalidArgument)
	case 1:
		return r, nil
	}
	return r, fmt.Errorf("%w: %d viewports set", mandel.ErrInvalidArgument, n)
}

// maxFrame bounds the decoded size of one payload: 8k x 8k RGBA.
const maxFrame = 8192 * 8192 * 4

// Codec converts results to frames and back. It is safe for concurrent use.
type Codec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewCodec prepares the zstd encoder and decoder.
func NewCodec() (*Codec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("zstd.NewWriter: %w", err)
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxFrame))
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("zstd.NewReader: %w", err)
	}
	return &Codec{enc: enc, dec: dec}, nil
}

// Close releases the encoder and decoder.
func (c *Codec) Close() {
	c.enc.Close()
	c.dec.Close()
}

// Frame packs a result for the wire, compressing the pixel and smooth bytes
// when compress is set. The frame shares the result's buffers when it is
// not compressed.
func (c *Codec) Frame(res *mandel.Result, compress bool) Frame {
	f := Frame{
		Format:     res.Format.String(),
		Width:      res.Width,
		Height:     res.Height,
		StartLine:  res.StartLine,
		Range:      res.Range,
		Elapsed:    res.Elapsed,
		Compressed: compress,
		Pix:        res.Pix,
		Smooth:     res.Smooth,
	}
	if compress {
		f.Pix = c.enc.EncodeAll(res.Pix, nil)
		if len(res.Smooth) > 0 {
			f.Smooth = c.enc.EncodeAll(res.Smooth, nil)
		}
	}
	return f
}

// Result unpacks a frame and checks its payload against its size.
func (c *Codec) Result(f Frame) (*mandel.Result, error) {
	format, err := mandel.ParseFormat(f.Format)
	if err != nil {
		return nil, err
	}
	if f.Width <= 0 || f.Height <= 0 || f.StartLine < 0 {
		return nil, fmt.Errorf("wire: frame %dx%d at line %d", f.Width, f.Height, f.StartLine)
	}
	pixels := f.Width * f.Height
	res := &mandel.Result{
		Format:    format,
		Width:     f.Width,
		Height:    f.Height,
		StartLine: f.StartLine,
		Range:     f.Range,
		Elapsed:   f.Elapsed,
		Pix:       f.Pix,
		Smooth:    f.Smooth,
	}
	if f.Compressed {
		if res.Pix, err = c.dec.DecodeAll(f.Pix, make([]byte, 0, pixels*format.Channels())); err != nil {
			return nil, fmt.Errorf("zstd decode pixels: %w", err)
		}
		if len(f.Smooth) > 0 {
			if res.Smooth, err = c.dec.DecodeAll(f.Smooth, make([]byte, 0, pixels)); err != nil {
				return nil, fmt.Errorf("zstd decode smooth bytes: %w", err)
			}
		}
	}

	if want := pixels * format.Channels(); len(res.Pix) != want {
		return nil, fmt.Errorf("wire: frame carries %d pixel bytes, want %d", len(res.Pix), want)
	}
	switch len(res.Smooth) {
	case 0:
		res.Smooth = nil
	case pixels:
	default:
		return nil, fmt.Errorf("wire: frame carries %d smooth bytes, want %d", len(res.Smooth), pixels)
	}
	return res, nil
}
