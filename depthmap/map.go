// Package depthmap holds the normalized inverse-depth grid the collision
// engine consumes, plus the per-frame statistics used to calibrate it.
//
// Depth values are unit-less and relative: [0, 1] with higher = nearer, the
// convention of monocular depth estimators such as MiDaS. Nothing here is
// metric; "close" only means close relative to the rest of the scene.
package depthmap

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyMap is returned when a depth map has no pixels.
	ErrEmptyMap = errors.New("depthmap: empty map")
	// ErrRaggedGrid is returned when the rows of a grid have unequal widths.
	ErrRaggedGrid = errors.New("depthmap: rows have unequal widths")
)

// Map is a rectangular grid of inverse-depth values in [0, 1], stored
// row-major. A Map is owned by the caller for the duration of an analysis
// call and must not be mutated concurrently with one.
type Map struct {
	values []float32
	width  int
	height int
}

// FromValues wraps a row-major value slice as a Map. The slice is used
// directly, not copied.
func FromValues(values []float32, width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyMap
	}
	if len(values) != width*height {
		return nil, errors.Errorf("depthmap: have %d values, want %d (%dx%d)",
			len(values), width*height, width, height)
	}
	return &Map{values: values, width: width, height: height}, nil
}

// FromGrid copies a [row][col] grid into a Map, validating that the grid is
// non-empty and rectangular.
func FromGrid(grid [][]float32) (*Map, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(grid[0])
	values := make([]float32, 0, len(grid)*width)
	for _, row := range grid {
		if len(row) != width {
			return nil, ErrRaggedGrid
		}
		values = append(values, row...)
	}
	return &Map{values: values, width: width, height: len(grid)}, nil
}

// New returns a zero-filled Map, for builders and tests.
func New(width, height int) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyMap
	}
	return &Map{
		values: make([]float32, width*height),
		width:  width,
		height: height,
	}, nil
}

// Width returns the map width in pixels.
func (m *Map) Width() int { return m.width }

// Height returns the map height in pixels.
func (m *Map) Height() int { return m.height }

// Len returns the total pixel count.
func (m *Map) Len() int { return len(m.values) }

// At returns the depth value at (x, y). Bounds are the caller's problem;
// all engine call sites clamp first.
func (m *Map) At(x, y int) float32 {
	return m.values[y*m.width+x]
}

// Set writes the depth value at (x, y).
func (m *Map) Set(x, y int, v float32) {
	m.values[y*m.width+x] = v
}

// Values exposes the backing row-major slice.
func (m *Map) Values() []float32 { return m.values }

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	values := make([]float32, len(m.values))
	copy(values, m.values)
	return &Map{values: values, width: m.width, height: m.height}
}
