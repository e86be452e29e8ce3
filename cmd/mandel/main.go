// mandel renders a view of the Mandelbrot set, or of a Julia set, to an image file.
// Segments are rendered by local goroutines, or by a mandelserve instance
// when -remote is given, and composed into one canvas.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"

	mandel "github.com/marben/mandelview"
	"github.com/marben/mandelview/internal/wire"
)

type config struct {
	at         string
	x, y, zoom float64
	width      int
	height     int
	iter       int
	autoIter   int
	smooth     bool
	block      int
	format     string
	rangeMode  string
	palette    string
	rotate     int
	workers    int
	rows       int
	aa         int
	caption    bool
	out        string
	remote     string
	compress   bool
	profile    string
	julia      *mandel.JuliaConstant
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("mandel", flag.ContinueOnError)
	fs.StringVar(&cfg.at, "at", "", "landmark to render, one of: "+strings.Join(mandel.LandmarkNames(), ", "))
	fs.Float64Var(&cfg.x, "x", -0.75, "real part of the view centre")
	fs.Float64Var(&cfg.y, "y", 0, "imaginary part of the view centre")
	fs.Float64Var(&cfg.zoom, "zoom", 0, "pixels per unit; 0 fits the whole set")
	fs.IntVar(&cfg.width, "w", 1200, "width of the output image in pixels")
	fs.IntVar(&cfg.height, "h", 900, "height of the output image in pixels")
	fs.IntVar(&cfg.iter, "iter", 500, "maximum number of iterations")
	fs.IntVar(&cfg.autoIter, "auto-iter", 0, "if > 0, base iterations scaled with zoom, capped by -iter")
	fs.BoolVar(&cfg.smooth, "smooth", true, "smooth colouring")
	fs.IntVar(&cfg.block, "block", 1, "block size; > 1 renders a coarse preview")
	fs.StringVar(&cfg.format, "format", "rgba", "pixel format: rgba, gray or raw")
	fs.StringVar(&cfg.rangeMode, "range", "sampled", "grey range discovery: off, sampled or exhaustive")
	fs.StringVar(&cfg.palette, "palette", "classic", "palette, one of: "+strings.Join(mandel.PaletteNames(), ", "))
	fs.IntVar(&cfg.rotate, "rotate", 0, "rotate the palette by this many entries")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of segment workers (or connections with -remote)")
	fs.IntVar(&cfg.rows, "rows", 0, "segment height in rows; 0 splits the canvas evenly between workers")
	fs.IntVar(&cfg.aa, "aa", 1, "supersampling factor, e.g. 4 renders at 4x and downscales")
	fs.BoolVar(&cfg.caption, "caption", false, "print the view coordinates onto the image")
	fs.StringVar(&cfg.out, "o", "mandel.png", "output file; .png, .bmp or .tiff")
	fs.Func("julia", "render the Julia set of the constant `re,im` instead of the Mandelbrot set", func(s string) error {
		c, err := parseJulia(s)
		cfg.julia = c
		return err
	})
	fs.StringVar(&cfg.remote, "remote", "", "mandelserve address, ws://localhost:8080/ws or tcp://localhost:8081")
	fs.BoolVar(&cfg.compress, "compress", true, "ask -remote for zstd compressed segments")
	fs.StringVar(&cfg.profile, "profile", "", "write a cpu, mem or trace profile to the current directory")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case cfg.width <= 0 || cfg.height <= 0:
		return cfg, fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	case cfg.workers <= 0:
		return cfg, fmt.Errorf("invalid -workers %d", cfg.workers)
	case cfg.aa <= 0:
		return cfg, fmt.Errorf("invalid -aa %d", cfg.aa)
	case cfg.rows < 0:
		return cfg, fmt.Errorf("invalid -rows %d", cfg.rows)
	}
	return cfg, nil
}

// parseJulia parses a Julia constant written as "re,im".
func parseJulia(s string) (*mandel.JuliaConstant, error) {
	reStr, imStr, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("julia constant %q: want re,im", s)
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(reStr), 64)
	if err != nil {
		return nil, fmt.Errorf("julia constant %q: %w", s, err)
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(imStr), 64)
	if err != nil {
		return nil, fmt.Errorf("julia constant %q: %w", s, err)
	}
	return &mandel.JuliaConstant{Re: re, Im: im}, nil
}

// main is the entry point for the CLI.
func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("run: %+v", err)
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	switch cfg.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown -profile %q", cfg.profile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	job, err := newJob(cfg)
	if err != nil {
		return err
	}

	renderers, closeRenderers, err := openRenderers(ctx, cfg, job.palette)
	if err != nil {
		return err
	}
	defer closeRenderers()

	log.Printf("rendering %dx%d (%dx supersampled) at %+v, %d iterations, %d segments",
		cfg.width, cfg.height, cfg.aa, job.req.Viewport, job.req.MaxIterations, len(job.segments))

	start := time.Now()
	img, err := job.run(ctx, renderers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	log.Printf("generation took: %v", elapsed)

	out := downscale(img, cfg.width, cfg.height)
	if cfg.caption {
		v := job.req.Viewport.View(job.req.Width, job.req.Height)
		text := fmt.Sprintf("re %.12g  im %.12g  zoom %.4g  iter %d  %v",
			v.CenterX, v.CenterY, v.Zoom/float64(cfg.aa), job.req.MaxIterations, elapsed.Round(time.Millisecond))
		if c := cfg.julia; c != nil {
			text = fmt.Sprintf("julia %g,%g  %s", c.Re, c.Im, text)
		}
		if out, err = drawCaption(out, text); err != nil {
			return fmt.Errorf("caption: %w", err)
		}
	}

	if err := saveImage(out, cfg.out); err != nil {
		return err
	}
	log.Printf("image saved to %q", cfg.out)
	return nil
}

// openRenderers returns one renderer per worker: local renderers with their
// own pools, or irpc connections to a mandelserve.
func openRenderers(ctx context.Context, cfg config, palette *mandel.Palette) ([]mandel.SegmentRenderer, func(), error) {
	renderers := make([]mandel.SegmentRenderer, 0, cfg.workers)
	if cfg.remote == "" {
		for range cfg.workers {
			renderers = append(renderers, &mandel.Renderer{Palette: palette, Pool: mandel.NewPool()})
		}
		return renderers, func() {}, nil
	}

	codec, err := wire.NewCodec()
	if err != nil {
		return nil, nil, fmt.Errorf("wire.NewCodec: %w", err)
	}
	var remotes []*remoteRenderer
	closeAll := func() {
		for _, r := range remotes {
			if err := r.Close(); err != nil {
				log.Printf("close %s: %v", cfg.remote, err)
			}
		}
		codec.Close()
	}
	for range cfg.workers {
		r, err := dialRemote(ctx, cfg.remote, codec)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		r.palette, r.rotate, r.compress = cfg.palette, cfg.rotate, cfg.compress
		remotes = append(remotes, r)
		renderers = append(renderers, r)
	}
	log.Printf("connected %d workers to %s", len(remotes), cfg.remote)
	return renderers, closeAll, nil
}
