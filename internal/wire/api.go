package wire

import (
	"context"
	"time"

	mandel "github.com/marben/mandelview"
)

//go:generate go run github.com/marben/irpc/cmd/irpc

// SegmentService renders segments of a canvas for a remote caller.
// Service implements it; the irpc client implements it over a connection.
type SegmentService interface {
	RenderSegment(ctx context.Context, req SegmentRequest) (Frame, error)
}

// SegmentRequest is the wire form of mandel.Request. Exactly one of Region,
// View and Screen is set.
type SegmentRequest struct {
	Region *mandel.Region
	View   *mandel.View
	Screen *mandel.Screen
	Julia  *mandel.JuliaConstant

	Width         int
	Height        int
	MaxIterations int
	Smooth        bool
	BlockSize     int
	StartLine     int
	SegmentHeight int
	Format        string
	Range         string
	Bounds        *mandel.IterRange

	// Palette names a built-in palette for rgba renders, rotated by Rotate.
	Palette  string
	Rotate   int
	Compress bool
}

// Frame is one rendered segment. With Compressed set, Pix and Smooth are
// each a zstd frame.
type Frame struct {
	Format     string
	Width      int
	Height     int
	StartLine  int
	Range      mandel.IterRange
	Elapsed    time.Duration
	Compressed bool
	Pix        []byte
	Smooth     []byte
}
