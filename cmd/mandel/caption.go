package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	captionSize   = 12.0
	captionMargin = 4
)

// drawCaption returns a copy of img with text printed on a dark band along
// the bottom edge.
func drawCaption(img image.Image, text string) (image.Image, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)

	metrics := face.Metrics()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()
	band := image.Rect(b.Min.X, b.Max.Y-lineHeight-2*captionMargin, b.Max.X, b.Max.Y)
	draw.Draw(dst, band, image.NewUniform(color.RGBA{A: 160}), image.Point{}, draw.Over)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(captionSize)
	ctx.SetClip(band)
	ctx.SetDst(dst)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	baseline := band.Min.Y + captionMargin + metrics.Ascent.Ceil()
	if _, err := ctx.DrawString(text, freetype.Pt(b.Min.X+captionMargin, baseline)); err != nil {
		return nil, err
	}
	return dst, nil
}
