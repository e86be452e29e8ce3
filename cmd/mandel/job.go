package main

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	mandel "github.com/marben/mandelview"
)

// job is one canvas split into segments. Workers pop segments and draw the
// results into img. When no segment is left unstarted, idle workers pick up
// segments still in process, so a slow or failed worker does not stall the job.
type job struct {
	req      mandel.Request
	palette  *mandel.Palette
	segments []image.Rectangle

	img draw.Image

	totalPixels    int
	finishedPixels int
	workers        int
	lastErr        error

	unstarted map[image.Rectangle]struct{}
	inProcess map[image.Rectangle]struct{}
	m         sync.Mutex
}

func newJob(cfg config) (*job, error) {
	format, err := mandel.ParseFormat(cfg.format)
	if err != nil {
		return nil, err
	}
	rng, err := mandel.ParseRangeMode(cfg.rangeMode)
	if err != nil {
		return nil, err
	}
	palette, ok := mandel.PaletteByName(cfg.palette)
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", cfg.palette)
	}
	if cfg.rotate != 0 {
		palette = palette.Rotate(cfg.rotate)
	}

	w, h := cfg.width*cfg.aa, cfg.height*cfg.aa
	vp, err := viewport(cfg, w)
	if err != nil {
		return nil, err
	}
	iter := cfg.iter
	if cfg.autoIter > 0 {
		iter = mandel.OptimalIterations(vp.View(w, h).Zoom/float64(cfg.aa), cfg.autoIter, cfg.iter)
	}

	req := mandel.Request{
		Viewport:      vp,
		Width:         w,
		Height:        h,
		MaxIterations: iter,
		Smooth:        cfg.smooth,
		BlockSize:     cfg.block,
		Format:        format,
		Range:         rng,
		Julia:         cfg.julia,
	}

	var segs []image.Rectangle
	if cfg.rows > 0 {
		segs = mandel.SplitRows(w, h, cfg.rows)
	} else {
		segs = mandel.SplitForWorkers(w, h, cfg.workers, max(cfg.block, 1))
	}

	var img draw.Image
	if format == mandel.FormatRGBA {
		img = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		img = image.NewGray(image.Rect(0, 0, w, h))
	}

	unstarted := make(map[image.Rectangle]struct{}, len(segs))
	for _, s := range segs {
		unstarted[s] = struct{}{}
	}
	return &job{
		req:         req,
		palette:     palette,
		segments:    segs,
		img:         img,
		totalPixels: w * h,
		unstarted:   unstarted,
		inProcess:   make(map[image.Rectangle]struct{}),
	}, nil
}

// viewport picks the landmark named by -at, or builds a view from -x, -y and
// -zoom. Zooms are given for the output size and scaled by the
// supersampling factor. A zero -zoom fits the whole set, or the whole Julia
// set when -julia is given.
func viewport(cfg config, width int) (mandel.Viewport, error) {
	if cfg.at != "" {
		vp, ok := mandel.Landmark(cfg.at)
		if !ok {
			return nil, fmt.Errorf("unknown landmark %q", cfg.at)
		}
		if v, isView := vp.(mandel.View); isView {
			v.Zoom *= float64(cfg.aa)
			return v, nil
		}
		return vp, nil
	}
	zoom := cfg.zoom * float64(cfg.aa)
	if zoom == 0 {
		fit := mandel.Home
		if cfg.julia != nil {
			fit = mandel.JuliaHome
		}
		zoom = float64(width) / (fit.Xmax - fit.Xmin)
	}
	return mandel.View{CenterX: cfg.x, CenterY: cfg.y, Zoom: zoom}, nil
}

func (j *job) popSegment() (seg image.Rectangle, found bool) {
	j.m.Lock()
	defer j.m.Unlock()

	if len(j.unstarted) > 0 {
		for seg = range j.unstarted {
			break
		}
		delete(j.unstarted, seg)
		j.inProcess[seg] = struct{}{}
		return seg, true
	}

	// Nothing left to start: race another worker on a segment in process.
	for seg = range j.inProcess {
		return seg, true
	}
	return image.Rectangle{}, false
}

func (j *job) finished() float32 {
	j.m.Lock()
	defer j.m.Unlock()
	return float32(j.finishedPixels) / float32(j.totalPixels)
}

func (j *job) segmentFinished(res *mandel.Result) {
	defer log.Printf("finished: %.1f%%", j.finished()*100)

	rect := res.Bounds()
	j.m.Lock()
	defer j.m.Unlock()

	if _, found := j.inProcess[rect]; !found {
		// another worker got there first
		return
	}
	draw.Draw(
		j.img,
		rect,        // destination rectangle (canvas coords)
		res.Image(), // source image
		rect.Min,    // source start
		draw.Src,
	)
	j.finishedPixels += rect.Dx() * rect.Dy()
	delete(j.inProcess, rect)
}

func (j *job) incActiveWorker() {
	j.m.Lock()
	j.workers++
	w := j.workers
	j.m.Unlock()

	log.Printf("workers: %d", w)
}

func (j *job) decActiveWorker() {
	j.m.Lock()
	j.workers--
	w := j.workers
	j.m.Unlock()

	log.Printf("workers: %d", w)
}

// render renders segments on r until none is left. A failed segment is
// logged and retires the worker; the segment stays in process for the
// others. Only cancellation is returned as an error.
func (j *job) render(ctx context.Context, r mandel.SegmentRenderer) error {
	j.incActiveWorker()
	defer j.decActiveWorker()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		seg, found := j.popSegment()
		if !found {
			return nil
		}
		req := j.req
		req.StartLine, req.SegmentHeight = seg.Min.Y, seg.Dy()
		res, err := r.RenderSegment(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("render of segment %s failed: %v", seg, err)
			j.m.Lock()
			j.lastErr = err
			j.m.Unlock()
			return nil
		}
		j.segmentFinished(res)
	}
}

// run renders every segment on the given renderers, one goroutine per
// renderer, and returns the composed canvas.
func (j *job) run(ctx context.Context, renderers []mandel.SegmentRenderer) (image.Image, error) {
	if j.req.Format == mandel.FormatGray && j.req.Range != mandel.RangeOff {
		// Segments must share one grey scale, so the range is scanned once
		// for the whole canvas rather than per segment.
		scan := j.req
		scan.Workers = len(renderers)
		rng, err := new(mandel.Renderer).ScanRange(scan)
		if err != nil {
			return nil, fmt.Errorf("scan range: %w", err)
		}
		log.Printf("iteration range: %d..%d", rng.Min, rng.Max)
		j.req.Bounds = &rng
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range renderers {
		g.Go(func() error { return j.render(ctx, r) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	j.m.Lock()
	defer j.m.Unlock()
	if left := len(j.unstarted) + len(j.inProcess); left > 0 {
		return nil, fmt.Errorf("%d segments not rendered: %w", left, j.lastErr)
	}
	return j.img, nil
}
