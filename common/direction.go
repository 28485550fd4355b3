package common

import "github.com/chewxy/math32"

// DirectionOf buckets a point into a narration direction relative to the
// frame center. Horizontally, anything within 20% of the frame width from
// the center column reads as "center"; otherwise left/right by sign.
// Vertically, the top and bottom thirds add a "top "/"bottom " prefix and
// the middle third adds nothing.
func DirectionOf(x, y float32, width, height int) string {
	centerX := float32(width) / 2.0
	offsetX := x - centerX

	var horizontal string
	switch {
	case math32.Abs(offsetX) < float32(width)*0.2:
		horizontal = "center"
	case offsetX < 0:
		horizontal = "left"
	default:
		horizontal = "right"
	}

	switch {
	case y < float32(height)/3.0:
		return "top " + horizontal
	case y > float32(height)*2.0/3.0:
		return "bottom " + horizontal
	default:
		return horizontal
	}
}

// AngleOf returns the signed bearing of a point from the frame center in
// degrees. Zero is straight ahead, negative is left, positive is right;
// the vertical offset only tightens the angle, it never flips the sign.
func AngleOf(x, y float32, width, height int) float32 {
	offsetX := x - float32(width)/2.0
	offsetY := y - float32(height)/2.0

	angleRad := math32.Atan2(offsetX, math32.Abs(offsetY))
	return angleRad * 180.0 / math32.Pi
}
