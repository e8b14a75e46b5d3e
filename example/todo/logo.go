package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"gioui.org/op/paint"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed logo.svg
var logoSVG []byte

// RasterizeSVG renders an SVG document into a square image of the given
// side length.
func RasterizeSVG(data []byte, side int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(side), float64(side))
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	scanner := rasterx.NewScannerGV(side, side, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(side, side, scanner), 1)
	return img, nil
}

// Logo caches the rasterized list logo per pixel size.
type Logo struct {
	side int
	op   paint.ImageOp
	ok   bool
}

// Op returns the logo rasterized at side pixels.
func (l *Logo) Op(side int) (paint.ImageOp, bool) {
	if side == l.side {
		return l.op, l.ok
	}
	l.side = side
	img, err := RasterizeSVG(logoSVG, side)
	if err != nil {
		l.ok = false
		return paint.ImageOp{}, false
	}
	l.op, l.ok = paint.NewImageOp(img), true
	return l.op, true
}
