package mandel

import "context"

// SegmentRenderer renders one request. *Renderer implements it locally;
// hosts may implement it over a transport to farm segments out to workers.
// ctx bounds the single call.
type SegmentRenderer interface {
	RenderSegment(ctx context.Context, req Request) (*Result, error)
}

var _ SegmentRenderer = (*Renderer)(nil)

// RenderSegment implements SegmentRenderer. A local render is not
// interrupted once started; ctx is only checked up front.
func (r *Renderer) RenderSegment(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.Render(req)
}
