package mandel

import "image"

// SplitRows splits a canvas of the given height into contiguous horizontal
// segments of at most segmentHeight rows. The last segment is shorter when
// height is not divisible.
func SplitRows(width, height, segmentHeight int) []image.Rectangle {
	if segmentHeight <= 0 {
		panic("segment height must be positive")
	}

	var segs []image.Rectangle
	for y := 0; y < height; y += segmentHeight {
		segs = append(segs, image.Rect(0, y, width, min(y+segmentHeight, height)))
	}
	return segs
}

// SplitForWorkers splits a canvas into one segment per worker, rounded up to
// a multiple of align rows so block rendering stays aligned.
func SplitForWorkers(width, height, workers, align int) []image.Rectangle {
	if workers <= 0 || align <= 0 {
		panic("workers and align must be positive")
	}
	h := (height + workers - 1) / workers
	h = (h + align - 1) / align * align
	return SplitRows(width, height, h)
}
