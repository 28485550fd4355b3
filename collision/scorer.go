package collision

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-collision/common"
	"github.com/nvr-ai/go-collision/depthmap"
)

// Classification thresholds over the weighted danger score, inclusive at
// the lower bound.
const (
	criticalThreshold float32 = 0.75
	highThreshold     float32 = 0.55
	moderateThreshold float32 = 0.35
	lowThreshold      float32 = 0.20
)

// scoreDanger combines the object's depth statistics, placement and size
// into the weighted danger score and fills in the object's Factors,
// ConfidenceScore, Danger and ReasonForDanger.
//
// The function is pure: fixed inputs always produce the same score. Every
// factor is derived scene-relative, never from absolute depth.
func scoreDanger(obj *common.AnalyzedObject, scene *depthmap.Scene, width, height int) {
	var f common.FactorBreakdown

	// FACTOR 1: closeness relative to the scene's depth range. A flat
	// scene (max == min) has no range to normalize against; the ratio is
	// defined as 0 there so no NaN can reach the score.
	var normalizedCloseness float32
	if depthRange := scene.Max - scene.Min; depthRange > 0 {
		normalizedCloseness = (obj.MaxDepth - scene.Min) / depthRange
	}
	switch {
	case normalizedCloseness > 0.95:
		f.Closeness = 1.0
	case normalizedCloseness > 0.85:
		f.Closeness = 0.7
	case normalizedCloseness > 0.75:
		f.Closeness = 0.5
	case normalizedCloseness > 0.65:
		f.Closeness = 0.3
	default:
		f.Closeness = 0.1
	}

	// FACTOR 2: how much closer than the typical background. Ratio is
	// defined as 0 when the background depth is 0.
	var relativeCloseness float32
	if scene.BackgroundDepth > 0 {
		relativeCloseness = obj.MedianDepth / scene.BackgroundDepth
	}
	switch {
	case relativeCloseness > 2.0:
		f.Relative = 0.8
	case relativeCloseness > 1.5:
		f.Relative = 0.5
	case relativeCloseness > 1.2:
		f.Relative = 0.3
	default:
		f.Relative = 0.1
	}

	// FACTOR 3: position in frame; centered objects are more dangerous.
	centerX := float32(width) / 2.0
	centerY := float32(height) / 2.0
	dx := obj.CenterX - centerX
	dy := obj.CenterY - centerY
	distFromCenter := math32.Sqrt(dx*dx + dy*dy)
	maxDistFromCenter := math32.Sqrt(centerX*centerX + centerY*centerY)
	f.Position = 1.0 - distFromCenter/maxDistFromCenter

	// Walking-path boost: lower half of the frame, within the central 60%
	// of the width. Deliberately unclamped - see the package doc.
	inWalkingPath := obj.CenterY > float32(height)*0.5 &&
		math32.Abs(dx) < float32(width)*0.3
	if inWalkingPath {
		f.Position *= 1.3
	}

	// FACTOR 4: depth edge strength at the object center.
	f.Gradient = math32.Min(1.0, obj.DepthGradient*3.0)

	// FACTOR 5: object size; boxes over 20% of the frame max out.
	sizeRatio := float32(obj.BBox.Area()) / float32(width*height)
	f.Size = math32.Min(1.0, sizeRatio*5.0)

	// FACTOR 6: depth uniformity; uniform = solid object, varied = noisy
	// or partly background.
	switch {
	case obj.DepthVariance < 0.01:
		f.Uniformity = 1.0
	case obj.DepthVariance < 0.05:
		f.Uniformity = 0.7
	default:
		f.Uniformity = 0.3
	}

	score := f.WeightedTotal()

	obj.Factors = f
	obj.ConfidenceScore = score
	obj.Danger = Classify(score)
	obj.ReasonForDanger = fmt.Sprintf(
		"Closeness:%.2f Relative:%.2f Position:%.2f Gradient:%.2f Size:%.2f Uniformity:%.2f Total:%.2f",
		f.Closeness, f.Relative, f.Position, f.Gradient, f.Size, f.Uniformity, score)
}

// Classify maps a weighted danger score onto a DangerLevel. Boundary values
// belong to the more severe level: exactly 0.75 is a critical collision.
func Classify(score float32) common.DangerLevel {
	switch {
	case score >= criticalThreshold:
		return common.CriticalCollision
	case score >= highThreshold:
		return common.HighWarning
	case score >= moderateThreshold:
		return common.ModerateWarning
	case score >= lowThreshold:
		return common.LowWarning
	default:
		return common.Safe
	}
}
