package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoundingBoxArea(t *testing.T) {
	require.Equal(t, 10000, NewBoundingBox(0, 0, 100, 100).Area())
	require.Equal(t, 0, NewBoundingBox(5, 5, 5, 5).Area())
}

func TestBoundingBoxCenter(t *testing.T) {
	cx, cy := NewBoundingBox(10, 20, 30, 60).Center()
	require.Equal(t, float32(20), cx)
	require.Equal(t, float32(40), cy)

	// Centers are not snapped to the pixel grid.
	cx, cy = NewBoundingBox(0, 0, 5, 5).Center()
	require.Equal(t, float32(2.5), cx)
	require.Equal(t, float32(2.5), cy)
}

func TestBoundingBoxClampTo(t *testing.T) {
	// Fully inside: unchanged.
	c, ok := NewBoundingBox(2, 3, 7, 8).ClampTo(10, 10)
	require.True(t, ok)
	require.Equal(t, NewBoundingBox(2, 3, 7, 8), c)

	// Overhanging: intersected with the grid.
	c, ok = NewBoundingBox(-5, -5, 4, 4).ClampTo(10, 10)
	require.True(t, ok)
	require.Equal(t, NewBoundingBox(0, 0, 4, 4), c)

	c, ok = NewBoundingBox(5, 5, 100, 100).ClampTo(10, 10)
	require.True(t, ok)
	require.Equal(t, NewBoundingBox(5, 5, 9, 9), c)

	// Entirely outside: empty, not dragged onto the border.
	_, ok = NewBoundingBox(20, 20, 30, 30).ClampTo(10, 10)
	require.False(t, ok)

	_, ok = NewBoundingBox(-10, -10, -1, -1).ClampTo(10, 10)
	require.False(t, ok)
}

func TestBoundingBoxIoU(t *testing.T) {
	b1 := NewBoundingBox(0, 0, 100, 100)
	b2 := NewBoundingBox(50, 50, 150, 150)
	require.InDelta(t, 2500.0/17500.0, b1.IoU(b2), 1e-5)

	// Identical boxes overlap perfectly.
	require.InDelta(t, 1.0, b1.IoU(b1), 1e-5)

	// Disjoint boxes.
	require.Equal(t, float32(0), b1.IoU(NewBoundingBox(200, 200, 300, 300)))

	// Two zero-area boxes must not divide by zero.
	z := NewBoundingBox(5, 5, 5, 5)
	require.Equal(t, float32(0), z.IoU(z))
}
