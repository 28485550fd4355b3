package common

import (
	"fmt"
	"image"
)

// BoundingBox represents a detector bounding box in integer pixel
// coordinates, [X1, Y1] top-left to [X2, Y2] bottom-right, in the same
// coordinate space as the depth map it is sampled against.
type BoundingBox struct {
	X1, Y1, X2, Y2 int
}

// NewBoundingBox builds a box from a [x1, y1, x2, y2] quad as delivered by
// the detection collaborator.
func NewBoundingBox(x1, y1, x2, y2 int) BoundingBox {
	return BoundingBox{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d, %d), (%d, %d)", b.X1, b.Y1, b.X2, b.Y2)
}

// Area returns the box area in pixels using the detector's half-open
// convention (X2-X1 by Y2-Y1).
func (b BoundingBox) Area() int {
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

// Center returns the box midpoint in pixel coordinates.
func (b BoundingBox) Center() (float32, float32) {
	return float32(b.X1+b.X2) / 2.0, float32(b.Y1+b.Y2) / 2.0
}

// ToRect converts the bounding box to an image.Rectangle.
func (b BoundingBox) ToRect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2).Canon()
}

// ClampTo intersects the box with a width x height pixel grid, returning the
// inclusive pixel range to sample. ok is false when the intersection is
// empty, e.g. a box lying entirely outside the grid; callers treat that as a
// defined degenerate case, not an error.
func (b BoundingBox) ClampTo(width, height int) (BoundingBox, bool) {
	c := BoundingBox{
		X1: maxInt(b.X1, 0),
		Y1: maxInt(b.Y1, 0),
		X2: minInt(b.X2, width-1),
		Y2: minInt(b.Y2, height-1),
	}
	if c.X1 > c.X2 || c.Y1 > c.Y2 {
		return BoundingBox{}, false
	}
	return c, true
}

// Intersection calculates the intersection area between two bounding boxes.
func (b BoundingBox) Intersection(other BoundingBox) float32 {
	intersected := b.ToRect().Intersect(other.ToRect()).Canon().Size()
	return float32(intersected.X * intersected.Y)
}

// Union calculates the union area between two bounding boxes.
func (b BoundingBox) Union(other BoundingBox) float32 {
	intersectArea := b.Intersection(other)
	size1 := b.ToRect().Size()
	size2 := other.ToRect().Size()
	totalArea := float32(size1.X*size1.Y + size2.X*size2.Y)
	return totalArea - intersectArea
}

// IoU calculates the Intersection over Union between two bounding boxes.
//
// Callers deduplicating overlapping detections before analysis use this to
// decide which boxes describe the same object. This won't be entirely precise
// due to conversion to the integral rectangles from the image.Image library,
// but we're only using it to estimate which boxes are overlapping too much,
// so some imprecision should be OK.
func (b BoundingBox) IoU(other BoundingBox) float32 {
	union := b.Union(other)
	if union == 0 {
		return 0
	}
	return b.Intersection(other) / union
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
