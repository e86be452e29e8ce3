package mandel

import (
	"fmt"
	"math"
	"sort"
)

// Viewport is a rectangle of the complex plane mapped onto a canvas.
// It is implemented by Region (interval form), View (center/zoom form) and
// Screen (origin/zoom form).
type Viewport interface {
	// Region returns the interval form of the viewport on a width x height canvas.
	Region(width, height int) Region
	// View returns the center/zoom form of the viewport on a width x height canvas.
	View(width, height int) View

	validate() error
	planeMap(width, height int) planeMap
}

// Region within the Mandelbrot set
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

func (r Region) Region(int, int) Region { return r }

// View converts the region to center/zoom form. Zoom is derived from the width only.
func (r Region) View(width, _ int) View {
	return View{
		CenterX: (r.Xmin + r.Xmax) / 2,
		CenterY: (r.Ymin + r.Ymax) / 2,
		Zoom:    float64(width) / (r.Xmax - r.Xmin),
	}
}

func (r Region) validate() error {
	for _, v := range []float64{r.Xmin, r.Xmax, r.Ymin, r.Ymax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: region %+v is not finite", ErrInvalidArgument, r)
		}
	}
	if r.Xmax <= r.Xmin || r.Ymax <= r.Ymin {
		return fmt.Errorf("%w: region %+v is empty", ErrInvalidArgument, r)
	}
	return nil
}

func (r Region) planeMap(width, height int) planeMap {
	return planeMap{
		x0: r.Xmin, dx: (r.Xmax - r.Xmin) / float64(width),
		y0: r.Ymin, dy: (r.Ymax - r.Ymin) / float64(height),
	}
}

// View is the center/zoom form of a viewport. Zoom is measured in pixels per unit
// of the complex plane, so one canvas pixel is 1/Zoom wide in both directions.
type View struct {
	CenterX, CenterY float64
	Zoom             float64
}

func (v View) View(int, int) View { return v }

func (v View) Region(width, height int) Region {
	hw := float64(width) / 2 / v.Zoom
	hh := float64(height) / 2 / v.Zoom
	return Region{
		Xmin: v.CenterX - hw, Xmax: v.CenterX + hw,
		Ymin: v.CenterY - hh, Ymax: v.CenterY + hh,
	}
}

func (v View) validate() error {
	for _, f := range []float64{v.CenterX, v.CenterY, v.Zoom} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: view %+v is not finite", ErrInvalidArgument, v)
		}
	}
	if v.Zoom <= 0 {
		return fmt.Errorf("%w: zoom %g must be positive", ErrInvalidArgument, v.Zoom)
	}
	return nil
}

func (v View) planeMap(width, height int) planeMap {
	step := 1 / v.Zoom
	return planeMap{
		x0: v.CenterX - float64(width)/2*step, dx: step,
		y0: v.CenterY - float64(height)/2*step, dy: step,
	}
}

// ViewFromScreen converts the "screen" form, where (screenX, screenY) is the pixel
// position of the complex origin, into a View for a width x height canvas.
func ViewFromScreen(screenX, screenY, zoom float64, width, height int) View {
	return View{
		CenterX: (float64(width)/2 - screenX) / zoom,
		CenterY: (float64(height)/2 - screenY) / zoom,
		Zoom:    zoom,
	}
}

// Screen is the origin/zoom form of a viewport: (OriginX, OriginY) is the
// pixel position of the complex origin and Zoom is in pixels per unit.
// Its mapping does not depend on the canvas size, so canvases of different
// heights map shared rows to the same points.
type Screen struct {
	OriginX, OriginY float64
	Zoom             float64
}

func (s Screen) View(width, height int) View {
	return ViewFromScreen(s.OriginX, s.OriginY, s.Zoom, width, height)
}

func (s Screen) Region(width, height int) Region {
	return s.View(width, height).Region(width, height)
}

func (s Screen) validate() error {
	for _, f := range []float64{s.OriginX, s.OriginY, s.Zoom} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: screen %+v is not finite", ErrInvalidArgument, s)
		}
	}
	if s.Zoom <= 0 {
		return fmt.Errorf("%w: zoom %g must be positive", ErrInvalidArgument, s.Zoom)
	}
	return nil
}

func (s Screen) planeMap(int, int) planeMap {
	step := 1 / s.Zoom
	return planeMap{
		x0: -s.OriginX * step, dx: step,
		y0: -s.OriginY * step, dy: step,
	}
}

// planeMap is the affine pixel -> plane transform for one canvas.
type planeMap struct {
	x0, dx float64
	y0, dy float64
}

func (m planeMap) x(px int) float64 { return m.x0 + float64(px)*m.dx }
func (m planeMap) y(py int) float64 { return m.y0 + float64(py)*m.dy }

// Classic regions / landmarks in the Mandelbrot set
var (
	// Home shows the whole set on a canvas about 3.5 units wide.
	Home = Region{
		Xmin: -2.5,
		Xmax: 1.0,
		Ymin: -1.25,
		Ymax: 1.25,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}

	// Flower – the tip of the needle, near the double precision limit
	Flower = View{CenterX: -1.9999858812, CenterY: 0, Zoom: 276637121362}

	// Tendrils – thin branches off the bottom bulb
	Tendrils = View{CenterX: -0.226266647, CenterY: -1.11617444, Zoom: 743786806}

	// Tree – branching antenna on the negative real axis
	Tree = View{CenterX: -1.940157342, CenterY: 0.0000008, Zoom: 799366122}

	// Sun – radiating spiral near the seahorse valley
	Sun = View{CenterX: -0.776592852, CenterY: 0.13664085, Zoom: 58282440}

	// Julia Island – a minibrot on the antenna ringed by Julia-like filaments
	JuliaIsland = View{CenterX: -1.768778832, CenterY: 0.001738995, Zoom: 1585714676}

	// Spirals – double spirals off the top of the main cardioid
	Spirals = View{CenterX: -0.343806077, CenterY: -0.61127804, Zoom: 2097031}

	// Starfish – star-shaped spirals below the main cardioid
	Starfish = View{CenterX: -0.374004139, CenterY: -0.659792175, Zoom: 484254}

	// JuliaHome shows a whole Julia set.
	JuliaHome = Region{
		Xmin: -2,
		Xmax: 2,
		Ymin: -1.5,
		Ymax: 1.5,
	}
)

var landmarks = map[string]Viewport{
	"home":            Home,
	"seahorse":        SeahorseValley,
	"elephant":        ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
	"dragon":          ValleyOfTheDragon,
	"mini-spiral":     MinibrotInMiniSpiral,
	"flower":          Flower,
	"tendrils":        Tendrils,
	"tree":            Tree,
	"sun":             Sun,
	"julia":           JuliaIsland,
	"spirals":         Spirals,
	"starfish":        Starfish,
}

// Landmark returns the named landmark viewport.
func Landmark(name string) (Viewport, bool) {
	v, ok := landmarks[name]
	return v, ok
}

// LandmarkNames returns the known landmark names, sorted.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
