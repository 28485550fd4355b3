package depthmap

import "github.com/chewxy/math32"

// SobelAt computes the local depth gradient magnitude at (x, y) with a 3x3
// Sobel operator, normalized by 8 so a full 0-to-1 step edge reads as 0.5.
// A strong gradient at an object's center means a sharp depth edge against
// its surroundings - the signature of a standalone obstacle rather than a
// surface patch.
//
// Points within one pixel of any map edge return 0; the kernel never reads
// out of bounds.
func SobelAt(m *Map, x, y int) float32 {
	if x < 1 || x >= m.width-1 || y < 1 || y >= m.height-1 {
		return 0
	}

	gx := -m.At(x-1, y-1) + m.At(x+1, y-1) +
		-2*m.At(x-1, y) + 2*m.At(x+1, y) +
		-m.At(x-1, y+1) + m.At(x+1, y+1)

	gy := -m.At(x-1, y-1) - 2*m.At(x, y-1) - m.At(x+1, y-1) +
		m.At(x-1, y+1) + 2*m.At(x, y+1) + m.At(x+1, y+1)

	return math32.Sqrt(gx*gx+gy*gy) / 8.0
}
