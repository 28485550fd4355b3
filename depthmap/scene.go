package depthmap

import (
	"sort"
)

// Scene holds per-frame depth statistics. Depth values carry no absolute
// scale, so every analysis is calibrated against the frame's own
// distribution: the median stands in for the background and the upper
// percentiles define what counts as foreground in this scene.
type Scene struct {
	// Min and Max bound the frame's depth range.
	Min float32 `json:"min"`
	Max float32 `json:"max"`

	// P25, P50, P75, P90 are the depth percentiles.
	P25 float32 `json:"p25"`
	P50 float32 `json:"p50"`
	P75 float32 `json:"p75"`
	P90 float32 `json:"p90"`

	// BackgroundDepth is the typical background depth (the median).
	BackgroundDepth float32 `json:"background_depth"`

	// ForegroundThreshold is the depth above which a value counts as
	// foreground: halfway between the 75th and 90th percentiles.
	ForegroundThreshold float32 `json:"foreground_threshold"`
}

// AnalyzeScene computes the scene statistics for one frame.
//
// The percentile pick is sorted[min(n-1, floor(n*p))], which is valid for
// any n >= 1 even when the indices collide on tiny maps. Runs once per
// frame; O(N log N) over the pixel count, dominated by the sort.
func AnalyzeScene(m *Map) (*Scene, error) {
	if m == nil || m.Len() == 0 {
		return nil, ErrEmptyMap
	}

	sorted := make([]float32, m.Len())
	copy(sorted, m.values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	n := len(sorted)
	pick := func(idx int) float32 {
		if idx > n-1 {
			idx = n - 1
		}
		return sorted[idx]
	}

	s := &Scene{
		Min: sorted[0],
		Max: sorted[n-1],
		P25: pick(n / 4),
		P50: pick(n / 2),
		P75: pick(3 * n / 4),
		P90: pick(9 * n / 10),
	}

	// Background = median (most of scene). Foreground = anything
	// significantly above the 75th percentile.
	s.BackgroundDepth = s.P50
	s.ForegroundThreshold = s.P75 + (s.P90-s.P75)*0.5

	return s, nil
}
