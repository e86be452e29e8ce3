package mandel

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// PaletteSize is the number of palette entries. Escaping points index the
// palette with Iteration mod (PaletteSize-1), so the last entry is never hit
// directly.
const PaletteSize = 256

const cycle = PaletteSize - 1

// Palette maps iteration counts to colours. A Palette is never modified after
// it is built and can be shared between renderers.
type Palette [PaletteSize]color.RGBA

// ClassicPalette is the default ramp: red rises over 0..127 and holds, green
// rises over 64..192 and holds, blue rises over 192..255.
var ClassicPalette = buildPalette(func(i int) (r, g, b int) {
	return ramp(i, 0, 127), ramp(i, 64, 192), ramp(i, 192, 255)
})

// ramp rises linearly from 0 at lo to 255 at hi.
func ramp(i, lo, hi int) int {
	return clampByte((i - lo) * 255 / (hi - lo))
}

func clampByte(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// fourColours cycles four 0xRRGGBB colours over the palette.
func fourColours(c0, c1, c2, c3 uint32) *Palette {
	cs := [4]uint32{c0, c1, c2, c3}
	return buildPalette(func(i int) (r, g, b int) {
		c := cs[i%4]
		return int(c >> 16), int(c >> 8 & 0xff), int(c & 0xff)
	})
}

func buildPalette(f func(i int) (r, g, b int)) *Palette {
	var p Palette
	for i := range p {
		r, g, b := f(i)
		p[i] = color.RGBA{uint8(clampByte(r)), uint8(clampByte(g)), uint8(clampByte(b)), 255}
	}
	return &p
}

// GradientStop is one keypoint of a gradient palette. Pos is in [0,1].
type GradientStop struct {
	Hex string
	Pos float64
}

// GradientPalette builds a palette by blending the stops in HCL space.
// Stops must be sorted by Pos.
func GradientPalette(stops ...GradientStop) (*Palette, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: gradient needs at least 2 stops, got %d", ErrInvalidArgument, len(stops))
	}
	cols := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, err := colorful.Hex(s.Hex)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		if i > 0 && s.Pos < stops[i-1].Pos {
			return nil, fmt.Errorf("%w: gradient stops out of order at %d", ErrInvalidArgument, i)
		}
		cols[i] = c
	}

	var p Palette
	for i := range p {
		t := float64(i) / float64(cycle)
		c := cols[len(cols)-1]
		for j := 0; j < len(stops)-1; j++ {
			a, b := stops[j], stops[j+1]
			if a.Pos <= t && t <= b.Pos {
				c = cols[j]
				if b.Pos > a.Pos {
					c = cols[j].BlendHcl(cols[j+1], (t-a.Pos)/(b.Pos-a.Pos)).Clamped()
				}
				break
			}
		}
		r, g, b := c.RGB255()
		p[i] = color.RGBA{r, g, b, 255}
	}
	return &p, nil
}

func mustGradient(stops ...GradientStop) *Palette {
	p, err := GradientPalette(stops...)
	if err != nil {
		panic(err)
	}
	return p
}

var palettes = map[string]*Palette{
	"classic": ClassicPalette,
	"original": buildPalette(func(i int) (r, g, b int) {
		switch {
		case i < 32:
			return i * 8, i * 8, 127 - i*4
		case i < 128:
			return 255, 255 - (i-32)*8/3, (i - 32) * 4 / 3
		case i < 192:
			return 255 - (i-128)*4, (i - 128) * 3, 127 - (i - 128)
		}
		return 0, 192 - (i-192)*3, 64 + (i - 192)
	}),
	"fire": buildPalette(func(i int) (r, g, b int) {
		switch {
		case i < 64:
			return i * 4, 0, 0
		case i < 128:
			return 255, (i - 64) * 2, 0
		case i < 192:
			return 255, 128 - (i-128)*2, 0
		}
		return 255 - (i-192)*4, 0, 0
	}),
	"bw": buildPalette(func(i int) (r, g, b int) {
		v := (i - 128) * 2
		if i < 128 {
			v = 255 - i*2
		}
		return v, v, v
	}),
	"electric": buildPalette(func(i int) (r, g, b int) {
		switch {
		case i < 32:
			return 0, 0, i * 4
		case i < 64:
			return (i - 32) * 8, (i - 32) * 8, 127 + (i-32)*4
		case i < 96:
			return 255 - (i-64)*8, 255 - (i-64)*8, 255 - (i-64)*4
		case i < 128:
			return 0, 0, 127 - (i-96)*4
		case i < 192:
			return 0, 0, i - 128
		}
		return 0, 0, 63 - (i - 192)
	}),
	"toon": buildPalette(func(i int) (r, g, b int) {
		switch i % 4 {
		case 0:
			return 100, 20, 200
		case 1:
			return 220, 112, 0
		case 2:
			return 230, 120, 0
		}
		return 255, 128, 0
	}),
	"ultra": mustGradient(
		GradientStop{"#000764", 0},
		GradientStop{"#206bcb", 0.16},
		GradientStop{"#edffff", 0.42},
		GradientStop{"#ffaa00", 0.6425},
		GradientStop{"#000200", 0.8575},
		GradientStop{"#000764", 1},
	),
	"gold": buildPalette(func(i int) (r, g, b int) {
		switch {
		case i < 32:
			return 54 + i*(224-54)/32, 11 + i*(115-11)/32, 2 + i*(10-2)/32
		case i < 64:
			return 224 + (i-32)*(255-224)/32, 115 + (i-32)*(192-115)/32, 10 + (i-32)*(49-10)/32
		case i < 192:
			return 255, 192 + (i-64)*(255-192)/128, 49 + (i-64)*(166-49)/128
		case i < 224:
			return 255, 255 + floorDiv((i-192)*(192-255), 32), 166 + floorDiv((i-192)*(49-166), 32)
		}
		return 255 + floorDiv((i-224)*(54-255), 32), 192 + floorDiv((i-224)*(11-192), 32), 49 + floorDiv((i-224)*(2-49), 32)
	}),
	"vga": buildPalette(func(i int) (r, g, b int) {
		c := vgaColours[i]
		return int(c >> 16), int(c >> 8 & 0xff), int(c & 0xff)
	}),
	"cga1": fourColours(0x000000, 0x55ffff, 0xff55ff, 0xffffff),
	"cga2": fourColours(0x000000, 0x55ff55, 0xff5555, 0xffff55),
	"primary": buildPalette(func(i int) (r, g, b int) {
		switch {
		case i < 85:
			return 255 - i*3, i * 3, 0
		case i < 170:
			return 0, 255 - (i-85)*3, (i - 85) * 3
		}
		return (i - 170) * 3, 0, 255 - (i-170)*3
	}),
	"secondary": buildPalette(func(i int) (r, g, b int) {
		switch {
		case i < 85:
			return i * 3, 255 - i*3, 255
		case i < 170:
			return 255, (i - 85) * 3, 255 - (i-85)*3
		}
		return 255 - (i-170)*3, 255, (i - 170) * 3
	}),
	// The tertiary ramps move in half steps; values are written doubled and
	// halved at the end.
	"tertiary1": buildPalette(func(i int) (r, g, b int) {
		switch {
		case i < 85:
			return (510 - i*3) / 2, (254 - i*3) / 2, i * 3
		case i < 170:
			j := i - 85
			return (254 - j*3) / 2, j * 3, (510 - j*3) / 2
		}
		j := i - 170
		return j * 3, (510 - j*3) / 2, (254 - j*3) / 2
	}),
	"tertiary2": buildPalette(func(i int) (r, g, b int) {
		switch {
		case i < 85:
			return 255 - i*3, i * 3 / 2, (254 + i*3) / 2
		case i < 170:
			j := i - 85
			return j * 3 / 2, (254 + j*3) / 2, 255 - j*3
		}
		j := i - 170
		return (254 + j*3) / 2, 255 - j*3, j * 3 / 2
	}),
	"neon": buildPalette(func(i int) (r, g, b int) {
		j := i % 32
		switch i / 32 {
		case 0:
			return j * 4, 0, j * 8
		case 1:
			return 124 - j*4, 0, 248 - j*8
		case 2:
			return j * 8, j * 4, 0
		case 3:
			return 248 - j*8, 124 - j*4, 0
		case 4:
			return 0, j * 4, j * 8
		case 5:
			return 0, 124 - j*4, 248 - j*8
		case 6:
			return j * 4, j * 8, j * 4
		}
		return 124 - j*4, 248 - j*8, 124 - j*4
	}),
	"ocean": mustGradient(
		GradientStop{"#03045e", 0},
		GradientStop{"#0077b6", 0.3},
		GradientStop{"#90e0ef", 0.6},
		GradientStop{"#caf0f8", 0.8},
		GradientStop{"#03045e", 1},
	),
}

// PaletteByName returns a built-in palette.
func PaletteByName(name string) (*Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// PaletteNames returns the names of the built-in palettes, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Rotate returns a copy of the palette with the cycled entries 0..254 shifted
// by steps, so that entry i of the result is entry i+steps of p. Entry 255 is
// left in place.
func (p *Palette) Rotate(steps int) *Palette {
	steps %= cycle
	if steps < 0 {
		steps += cycle
	}
	var out Palette
	for i := 0; i < cycle; i++ {
		out[i] = p[(i+steps)%cycle]
	}
	out[cycle] = p[cycle]
	return &out
}

// Color returns the colour of an escaping point. With blend set, smooth is
// the fraction in [0,1] from the smooth byte: 1 gives entry iteration and 0
// gives the next entry, iteration+1. A point whose fraction has fallen to 0
// is about to take one more iteration to escape, so it meets the colour of
// the points that do.
func (p *Palette) Color(iteration int, smooth float64, blend bool) color.RGBA {
	idx := iteration % cycle
	cur := p[idx]
	if !blend {
		return cur
	}
	next := p[(idx+1)%cycle]
	return color.RGBA{
		R: lerp8(next.R, cur.R, smooth),
		G: lerp8(next.G, cur.G, smooth),
		B: lerp8(next.B, cur.B, smooth),
		A: 255,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// vgaColours is the default 256-colour VGA palette as 0xRRGGBB.
var vgaColours = [PaletteSize]uint32{
	0x000000, 0x0000aa, 0x00aa00, 0x00aaaa, 0xaa0000, 0xaa00aa, 0xaa5500, 0xaaaaaa,
	0x555555, 0x5555ff, 0x55ff55, 0x55ffff, 0xff5555, 0xff55ff, 0xffff55, 0xffffff,
	0x000000, 0x141414, 0x202020, 0x2c2c2c, 0x383838, 0x454545, 0x515151, 0x616161,
	0x717171, 0x828282, 0x929292, 0xa2a2a2, 0xb6b6b6, 0xcbcbcb, 0xe3e3e3, 0xffffff,
	0x0000ff, 0x4100ff, 0x7d00ff, 0xbe00ff, 0xff00ff, 0xff00be, 0xff007d, 0xff0041,
	0xff0000, 0xff4100, 0xff7d00, 0xffbe00, 0xffff00, 0xbeff00, 0x7dff00, 0x41ff00,
	0x00ff00, 0x00ff41, 0x00ff7d, 0x00ffbe, 0x00ffff, 0x00beff, 0x007dff, 0x0041ff,
	0x7d7dff, 0x9e7dff, 0xbe7dff, 0xdf7dff, 0xff7dff, 0xff7ddf, 0xff7dbe, 0xff7d9e,
	0xff7d7d, 0xff9e7d, 0xffbe7d, 0xffdf7d, 0xffff7d, 0xdfff7d, 0xbeff7d, 0x9eff7d,
	0x7dff7d, 0x7dff9e, 0x7dffbe, 0x7dffdf, 0x7dffff, 0x7ddfff, 0x7dbeff, 0x7d9eff,
	0xb6b6ff, 0xc7b6ff, 0xdbb6ff, 0xebb6ff, 0xffb6ff, 0xffb6eb, 0xffb6db, 0xffb6c7,
	0xffb6b6, 0xffc7b6, 0xffdbb6, 0xffebb6, 0xffffb6, 0xebffb6, 0xdbffb6, 0xc7ffb6,
	0xb6ffb6, 0xb6ffc7, 0xb6ffdb, 0xb6ffeb, 0xb6ffff, 0xb6ebff, 0xb6dbff, 0xb6c7ff,
	0x000071, 0x1c0071, 0x380071, 0x550071, 0x710071, 0x710055, 0x710038, 0x71001c,
	0x710000, 0x711c00, 0x713800, 0x715500, 0x717100, 0x557100, 0x387100, 0x1c7100,
	0x007100, 0x00711c, 0x007138, 0x007155, 0x007171, 0x005571, 0x003871, 0x001c71,
	0x383871, 0x453871, 0x553871, 0x613871, 0x713871, 0x713861, 0x713855, 0x713845,
	0x713838, 0x714538, 0x715538, 0x716138, 0x717138, 0x617138, 0x557138, 0x457138,
	0x387138, 0x387145, 0x387155, 0x387161, 0x387171, 0x386171, 0x385571, 0x384571,
	0x515171, 0x595171, 0x615171, 0x695171, 0x715171, 0x715169, 0x715161, 0x715159,
	0x715151, 0x715951, 0x716151, 0x716951, 0x717151, 0x697151, 0x617151, 0x597151,
	0x517151, 0x517159, 0x517161, 0x517169, 0x517171, 0x516971, 0x516171, 0x515971,
	0x000041, 0x100041, 0x200041, 0x300041, 0x410041, 0x410030, 0x410020, 0x410010,
	0x410000, 0x411000, 0x412000, 0x413000, 0x414100, 0x304100, 0x204100, 0x104100,
	0x004100, 0x004110, 0x004120, 0x004130, 0x004141, 0x003041, 0x002041, 0x001041,
	0x202041, 0x282041, 0x302041, 0x382041, 0x412041, 0x412038, 0x412030, 0x412028,
	0x412020, 0x412820, 0x413020, 0x413820, 0x414120, 0x384120, 0x304120, 0x284120,
	0x204120, 0x204128, 0x204130, 0x204138, 0x204141, 0x203841, 0x203041, 0x202841,
	0x2c2c41, 0x302c41, 0x342c41, 0x3c2c41, 0x412c41, 0x412c3c, 0x412c34, 0x412c30,
	0x412c2c, 0x41302c, 0x41342c, 0x413c2c, 0x41412c, 0x3c412c, 0x34412c, 0x30412c,
	0x2c412c, 0x2c4130, 0x2c4134, 0x2c413c, 0x2c4141, 0x2c3c41, 0x2c3441, 0x2c3041,
	0x000000, 0x000000, 0x000000, 0x000000, 0x000000, 0x000000, 0x000000, 0x000000,
}
