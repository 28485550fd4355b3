package collision

import (
	"sort"

	"github.com/nvr-ai/go-collision/common"
	"github.com/nvr-ai/go-collision/depthmap"
)

// depthSample summarizes the depth values inside one bounding box.
type depthSample struct {
	// maxDepth is the nearest point (highest inverse depth).
	maxDepth float32
	// medianDepth is sorted[len/2] of the samples.
	medianDepth float32
	// variance is the population variance of the samples.
	variance float32
	// count is how many pixels were sampled.
	count int
}

// sampleObjectDepth collects the depth values inside bbox and derives the
// per-object statistics. The box is intersected with the map bounds first;
// an empty intersection (a degenerate box, or one entirely outside the map)
// yields all-zero statistics rather than an error, so one bad detection
// never aborts the rest of the frame.
func sampleObjectDepth(m *depthmap.Map, bbox common.BoundingBox) depthSample {
	clamped, ok := bbox.ClampTo(m.Width(), m.Height())
	if !ok {
		return depthSample{}
	}

	samples := make([]float32, 0, (clamped.X2-clamped.X1+1)*(clamped.Y2-clamped.Y1+1))
	for y := clamped.Y1; y <= clamped.Y2; y++ {
		for x := clamped.X1; x <= clamped.X2; x++ {
			samples = append(samples, m.At(x, y))
		}
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	n := len(samples)
	var mean float32
	for _, d := range samples {
		mean += d
	}
	mean /= float32(n)

	var variance float32
	for _, d := range samples {
		diff := d - mean
		variance += diff * diff
	}
	variance /= float32(n)

	return depthSample{
		maxDepth:    samples[n-1],
		medianDepth: samples[n/2],
		variance:    variance,
		count:       n,
	}
}
