// Package depthio adapts depth-estimation collaborator output into
// depthmap.Map form: grayscale depth renders, raw tensors, and the
// coordinate-space rescaling the engine's input contract requires.
//
// Nothing here runs a model. The collaborators own inference; this package
// only reshapes what they hand over.
package depthio

import (
	"bytes"
	"image"

	// Depth renders commonly arrive as PNG or JPEG.
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-collision/depthmap"
)

// FromImage converts a grayscale depth render into a Map, mapping luminance
// 0..255 onto [0, 1]. Estimators render inverse depth as brightness, so the
// depth convention (higher = nearer) carries over unchanged.
func FromImage(img image.Image) (*depthmap.Map, error) {
	if img == nil {
		return nil, errors.New("depthio: nil image")
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, depthmap.ErrEmptyMap
	}

	gray := imaging.Grayscale(img)
	m, err := depthmap.New(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+width*4]
		for x := 0; x < width; x++ {
			// Grayscale output has R == G == B.
			m.Set(x, y, float32(row[x*4])/255.0)
		}
	}
	return m, nil
}

// FromBytes decodes an encoded depth render (PNG/JPEG) and converts it with
// FromImage.
func FromBytes(data []byte) (*depthmap.Map, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "depthio: decode depth render")
	}
	return FromImage(img)
}

// Normalize rescales a map in place so its values span [0, 1]. Estimator
// output is often normalized already; this is for collaborators that emit
// raw relative depth. A flat map is left unchanged - there is no range to
// stretch.
func Normalize(m *depthmap.Map) {
	values := m.Values()
	if len(values) == 0 {
		return
	}
	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	depthRange := max - min
	if depthRange == 0 {
		return
	}
	for i, v := range values {
		values[i] = (v - min) / depthRange
	}
}

// ResizeMap resamples a map to width x height with bilinear interpolation,
// for callers whose detector and depth estimator run at different
// resolutions. The round trip goes through a 16-bit grayscale image, so
// values are quantized to 1/65535 - far below the precision the piecewise
// score mappings care about.
func ResizeMap(m *depthmap.Map, width, height int) (*depthmap.Map, error) {
	if width <= 0 || height <= 0 {
		return nil, depthmap.ErrEmptyMap
	}

	src := image.NewGray16(image.Rect(0, 0, m.Width(), m.Height()))
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			v := m.At(x, y)
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			g := uint16(v * 65535)
			src.Pix[y*src.Stride+x*2] = uint8(g >> 8)
			src.Pix[y*src.Stride+x*2+1] = uint8(g)
		}
	}

	resized := resize.Resize(uint(width), uint(height), src, resize.Bilinear)
	out, err := depthmap.New(width, height)
	if err != nil {
		return nil, err
	}
	gray, ok := resized.(*image.Gray16)
	if !ok {
		return nil, errors.Errorf("depthio: unexpected resize output %T", resized)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g := uint16(gray.Pix[y*gray.Stride+x*2])<<8 | uint16(gray.Pix[y*gray.Stride+x*2+1])
			out.Set(x, y, float32(g)/65535.0)
		}
	}
	return out, nil
}
