package depthio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-collision/common"
)

func TestRescaleBox(t *testing.T) {
	// 640x480 detector frame down to a 128x96 depth map: scale is exactly
	// 1/5 on both axes.
	box := common.NewBoundingBox(240, 300, 400, 450)
	got := RescaleBox(box, 640, 480, 128, 96)
	require.Equal(t, common.NewBoundingBox(48, 60, 80, 90), got)
}

func TestRescaleBoxClampsToGrid(t *testing.T) {
	// A box touching the detector frame's far edge scales to the depth
	// grid's far edge, never past it.
	box := common.NewBoundingBox(-10, 0, 640, 480)
	got := RescaleBox(box, 640, 480, 128, 96)
	require.Equal(t, common.NewBoundingBox(0, 0, 127, 95), got)
}

func TestRescaleBoxTinyBoxKeepsAPixel(t *testing.T) {
	box := common.NewBoundingBox(3, 3, 4, 4)
	got := RescaleBox(box, 640, 480, 128, 96)
	require.GreaterOrEqual(t, got.X2, got.X1)
	require.GreaterOrEqual(t, got.Y2, got.Y1)
}

func TestRescaleObjects(t *testing.T) {
	objects := []common.LabeledObject{
		{ObjectID: "a", Label: "person", BBox: common.NewBoundingBox(240, 300, 400, 450)},
		{ObjectID: "b", Label: "bike", BBox: common.NewBoundingBox(0, 0, 639, 479)},
	}
	out := RescaleObjects(objects, 640, 480, 128, 96)
	require.Len(t, out, 2)
	require.Equal(t, common.NewBoundingBox(48, 60, 80, 90), out[0].BBox)
	require.Equal(t, "a", out[0].ObjectID)

	// The input slice is left untouched.
	require.Equal(t, common.NewBoundingBox(240, 300, 400, 450), objects[0].BBox)
}
