package depthio

import (
	"github.com/nvr-ai/go-collision/common"
)

// RescaleBox maps a detector-space bounding box into depth-map pixel space.
// The detector and the depth estimator usually run at different
// resolutions; the engine's contract requires boxes in the depth map's
// coordinate space, and this is the conversion callers apply first.
//
// Corners are scaled by depthW/imageW and depthH/imageH and clamped onto
// the depth grid, so a valid detector box always lands on at least one
// depth pixel.
func RescaleBox(box common.BoundingBox, imageW, imageH, depthW, depthH int) common.BoundingBox {
	scaleX := float32(depthW) / float32(imageW)
	scaleY := float32(depthH) / float32(imageH)

	clamp := func(v, max int) int {
		if v < 0 {
			return 0
		}
		if v > max {
			return max
		}
		return v
	}

	return common.BoundingBox{
		X1: clamp(int(float32(box.X1)*scaleX), depthW-1),
		Y1: clamp(int(float32(box.Y1)*scaleY), depthH-1),
		X2: clamp(int(float32(box.X2)*scaleX), depthW-1),
		Y2: clamp(int(float32(box.Y2)*scaleY), depthH-1),
	}
}

// RescaleObjects returns a copy of the labeled objects with every box
// rescaled into depth-map space.
func RescaleObjects(objects []common.LabeledObject, imageW, imageH, depthW, depthH int) []common.LabeledObject {
	out := make([]common.LabeledObject, len(objects))
	for i, obj := range objects {
		obj.BBox = RescaleBox(obj.BBox, imageW, imageH, depthW, depthH)
		out[i] = obj
	}
	return out
}
