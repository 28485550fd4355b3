// Package render produces debug visualizations of collision analysis:
// depth heatmaps and danger-coded overlay boxes. Output is plain
// image.Image; nothing here touches a display.
package render

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/nvr-ai/go-collision/depthmap"
)

// Heatmap endpoints. Far is deep blue, near is red; the blend runs through
// Luv space so perceived brightness tracks depth monotonically.
var (
	heatFar, _  = colorful.Hex("#1a237e")
	heatNear, _ = colorful.Hex("#d32f2f")
)

// Heatmap renders a depth map as a color image, one pixel per depth value.
// Values outside [0, 1] are clamped for display only.
func Heatmap(m *depthmap.Map) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			v := m.At(x, y)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			c := heatFar.BlendLuv(heatNear, float64(v)).Clamped()
			r, g, b := c.RGB255()
			i := out.PixOffset(x, y)
			out.Pix[i] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = 0xff
		}
	}
	return out
}

// HeatmapScaled renders the heatmap and resamples it to width x height,
// typically the camera frame size the boxes were detected in.
func HeatmapScaled(m *depthmap.Map, width, height int) *image.NRGBA {
	return imaging.Resize(Heatmap(m), width, height, imaging.Lanczos)
}
