package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/nvr-ai/go-collision/common"
)

// Box outline colors per danger level, matching the mobile app's palette.
var dangerColors = map[common.DangerLevel]color.NRGBA{
	common.CriticalCollision: {R: 0xd5, G: 0x00, B: 0x00, A: 0xff},
	common.HighWarning:       {R: 0xff, G: 0x6d, B: 0x00, A: 0xff},
	common.ModerateWarning:   {R: 0xff, G: 0xd6, B: 0x00, A: 0xff},
	common.LowWarning:        {R: 0x64, G: 0xdd, B: 0x17, A: 0xff},
	common.Safe:              {R: 0x90, G: 0xa4, B: 0xae, A: 0xff},
}

// ColorFor returns the overlay color for a danger level.
func ColorFor(level common.DangerLevel) color.NRGBA {
	if c, ok := dangerColors[level]; ok {
		return c
	}
	return dangerColors[common.Safe]
}

// Overlay clones the base image and draws each analyzed object's bounding
// box in its danger color, 2px outlines. Boxes are clipped to the image;
// objects whose boxes lie entirely outside are skipped.
func Overlay(base image.Image, objects []common.AnalyzedObject) *image.NRGBA {
	dst := imaging.Clone(base)
	bounds := dst.Bounds()
	for _, obj := range objects {
		box, ok := obj.BBox.ClampTo(bounds.Dx(), bounds.Dy())
		if !ok {
			continue
		}
		drawRect(dst, box, ColorFor(obj.Danger), 2)
	}
	return dst
}

// drawRect strokes an axis-aligned rectangle outline of the given
// thickness, growing inward from the box edges.
func drawRect(dst *image.NRGBA, box common.BoundingBox, c color.NRGBA, thickness int) {
	setPx := func(x, y int) {
		if x < box.X1 || x > box.X2 || y < box.Y1 || y > box.Y2 {
			return
		}
		i := dst.PixOffset(x, y)
		dst.Pix[i] = c.R
		dst.Pix[i+1] = c.G
		dst.Pix[i+2] = c.B
		dst.Pix[i+3] = c.A
	}

	for t := 0; t < thickness; t++ {
		for x := box.X1; x <= box.X2; x++ {
			setPx(x, box.Y1+t)
			setPx(x, box.Y2-t)
		}
		for y := box.Y1; y <= box.Y2; y++ {
			setPx(box.X1+t, y)
			setPx(box.X2-t, y)
		}
	}
}
