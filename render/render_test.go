package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-collision/common"
	"github.com/nvr-ai/go-collision/depthmap"
)

func TestHeatmapDimensions(t *testing.T) {
	m, err := depthmap.New(16, 9)
	require.NoError(t, err)
	img := Heatmap(m)
	require.Equal(t, 16, img.Bounds().Dx())
	require.Equal(t, 9, img.Bounds().Dy())
}

func TestHeatmapNearIsRedderThanFar(t *testing.T) {
	m, err := depthmap.FromValues([]float32{0.0, 1.0}, 2, 1)
	require.NoError(t, err)
	img := Heatmap(m)

	far := img.NRGBAAt(0, 0)
	near := img.NRGBAAt(1, 0)
	require.Greater(t, near.R, far.R)
	require.Greater(t, far.B, near.B)
	require.Equal(t, uint8(0xff), near.A)
}

func TestHeatmapClampsOutOfRangeValues(t *testing.T) {
	m, err := depthmap.FromValues([]float32{-0.5, 0.0, 1.0, 1.5}, 4, 1)
	require.NoError(t, err)
	img := Heatmap(m)
	require.Equal(t, img.NRGBAAt(1, 0), img.NRGBAAt(0, 0))
	require.Equal(t, img.NRGBAAt(2, 0), img.NRGBAAt(3, 0))
}

func TestHeatmapScaled(t *testing.T) {
	m, err := depthmap.New(8, 6)
	require.NoError(t, err)
	img := HeatmapScaled(m, 64, 48)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 48, img.Bounds().Dy())
}

func TestOverlayDrawsDangerColor(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	obj := common.AnalyzedObject{
		LabeledObject: common.LabeledObject{
			ObjectID: "x",
			BBox:     common.NewBoundingBox(10, 10, 20, 20),
		},
		Danger: common.CriticalCollision,
	}

	out := Overlay(base, []common.AnalyzedObject{obj})
	want := ColorFor(common.CriticalCollision)
	require.Equal(t, want, out.NRGBAAt(10, 10))
	require.Equal(t, want, out.NRGBAAt(20, 20))
	require.Equal(t, want, out.NRGBAAt(15, 10))
	// The box interior stays untouched.
	require.Equal(t, color.NRGBA{}, out.NRGBAAt(15, 15))
}

func TestOverlaySkipsOutOfFrameBoxes(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	obj := common.AnalyzedObject{
		LabeledObject: common.LabeledObject{
			ObjectID: "off",
			BBox:     common.NewBoundingBox(50, 50, 60, 60),
		},
		Danger: common.HighWarning,
	}
	out := Overlay(base, []common.AnalyzedObject{obj})
	for i := range out.Pix {
		require.Zero(t, out.Pix[i])
	}
}

func TestOverlayClipsOverhangingBoxes(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	obj := common.AnalyzedObject{
		LabeledObject: common.LabeledObject{
			ObjectID: "edge",
			BBox:     common.NewBoundingBox(15, 15, 30, 30),
		},
		Danger: common.LowWarning,
	}
	out := Overlay(base, []common.AnalyzedObject{obj})
	require.Equal(t, ColorFor(common.LowWarning), out.NRGBAAt(15, 15))
	require.Equal(t, ColorFor(common.LowWarning), out.NRGBAAt(19, 19))
}

func TestColorForUnknownLevel(t *testing.T) {
	require.Equal(t, dangerColors[common.Safe], ColorFor(common.DangerLevel(99)))
}
