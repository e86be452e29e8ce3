package wire

import (
	"context"
	"fmt"
	"sync"

	mandel "github.com/marben/mandelview"
)

// Service renders segments for SegmentService callers. Calls may run in
// parallel; each takes a renderer with its own scratch pool from a free list.
type Service struct {
	codec     *Codec
	workers   int
	maxPixels int
	renderers sync.Pool

	// OnSegment, when set, is called after each rendered segment.
	OnSegment func(*mandel.Result)
}

var _ SegmentService = (*Service)(nil)

// NewService returns a service rendering each request on up to workers row
// goroutines. maxPixels bounds the segment size; 0 means no bound.
func NewService(codec *Codec, workers, maxPixels int) *Service {
	return &Service{
		codec:     codec,
		workers:   workers,
		maxPixels: maxPixels,
		renderers: sync.Pool{
			New: func() any { return &mandel.Renderer{Pool: mandel.NewPool()} },
		},
	}
}

// RenderSegment implements SegmentService.
func (s *Service) RenderSegment(ctx context.Context, sr SegmentRequest) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}
	req, err := sr.Request()
	if err != nil {
		return Frame{}, err
	}
	if seg := req.Segment(); s.maxPixels > 0 && seg.Dx()*seg.Dy() > s.maxPixels {
		return Frame{}, fmt.Errorf("%w: segment %s exceeds %d pixels", mandel.ErrInvalidArgument, seg, s.maxPixels)
	}

	palette := mandel.ClassicPalette
	if sr.Palette != "" {
		p, ok := mandel.PaletteByName(sr.Palette)
		if !ok {
			return Frame{}, fmt.Errorf("%w: unknown palette %q", mandel.ErrInvalidArgument, sr.Palette)
		}
		palette = p
	}
	if sr.Rotate != 0 {
		palette = palette.Rotate(sr.Rotate)
	}
	req.Workers = s.workers

	rd := s.renderers.Get().(*mandel.Renderer)
	defer s.renderers.Put(rd)
	rd.Palette = palette
	res, err := rd.Render(req)
	if err != nil {
		return Frame{}, err
	}
	if s.OnSegment != nil {
		s.OnSegment(res)
	}
	return s.codec.Frame(res, sr.Compress), nil
}
