package common

// Factor weights for the danger score. They sum to 1.0; the position factor
// can exceed 1.0 when the walking-path boost applies, so the combined score
// lives in [0, 1+WeightPosition*0.3].
const (
	// WeightCloseness - most important: how close?
	WeightCloseness float32 = 0.35
	// WeightRelative - is it foreground or background?
	WeightRelative float32 = 0.25
	// WeightPosition - is it in my path?
	WeightPosition float32 = 0.20
	// WeightGradient - is it a real obstacle?
	WeightGradient float32 = 0.10
	// WeightSize - how big is it?
	WeightSize float32 = 0.05
	// WeightUniformity - is it solid?
	WeightUniformity float32 = 0.05
)

// LabeledObject is one detection from the object-detection collaborator:
// a labeled bounding box with its detection confidence. Coordinates must
// already be in the depth map's pixel space.
type LabeledObject struct {
	// ObjectID uniquely identifies the detection within its frame
	// (e.g. "person_1").
	ObjectID string `json:"object_id"`

	// Label is the object class label (e.g. "person", "chair", "car").
	Label string `json:"label"`

	// BBox is the detector bounding box [x1, y1, x2, y2].
	BBox BoundingBox `json:"bbox"`

	// DetectionConfidence is the detector's confidence in [0, 1].
	DetectionConfidence float32 `json:"detection_confidence"`
}

// FactorBreakdown carries the normalized value of each danger factor so
// callers can inspect a score without parsing the reason string.
type FactorBreakdown struct {
	Closeness  float32 `json:"closeness"`
	Relative   float32 `json:"relative"`
	Position   float32 `json:"position"`
	Gradient   float32 `json:"gradient"`
	Size       float32 `json:"size"`
	Uniformity float32 `json:"uniformity"`
}

// WeightedTotal combines the factors into the danger score using the
// canonical weights. This is the exact arithmetic the scorer applies, so the
// result matches the reported confidence score bit for bit.
func (f FactorBreakdown) WeightedTotal() float32 {
	return f.Closeness*WeightCloseness +
		f.Relative*WeightRelative +
		f.Position*WeightPosition +
		f.Gradient*WeightGradient +
		f.Size*WeightSize +
		f.Uniformity*WeightUniformity
}

// AnalyzedObject is a LabeledObject extended with its depth statistics,
// spatial placement and danger assessment.
type AnalyzedObject struct {
	LabeledObject

	// CenterX, CenterY is the raw bbox midpoint. It is derived from the
	// unclamped box so direction and angle keep pointing at the detection
	// even when the box overhangs the frame.
	CenterX float32 `json:"center_x"`
	CenterY float32 `json:"center_y"`

	// MaxDepth is the highest inverse-depth value inside the box, i.e. the
	// object's closest point.
	MaxDepth float32 `json:"max_depth"`

	// MedianDepth is the median inverse-depth value inside the box.
	MedianDepth float32 `json:"median_depth"`

	// DepthVariance is the population variance of the sampled depths.
	DepthVariance float32 `json:"depth_variance"`

	// DepthGradient is the Sobel edge magnitude at the box center.
	DepthGradient float32 `json:"depth_gradient"`

	// Direction is the narration bucket, e.g. "center", "top left",
	// "bottom right".
	Direction string `json:"direction"`

	// AngleDeg is the signed bearing from the frame center in degrees;
	// negative is left of center.
	AngleDeg float32 `json:"angle_deg"`

	// Danger is the classified threat level.
	Danger DangerLevel `json:"danger_level"`

	// ConfidenceScore is the raw weighted danger score the classification
	// was derived from.
	ConfidenceScore float32 `json:"confidence_score"`

	// Factors is the per-factor breakdown behind ConfidenceScore.
	Factors FactorBreakdown `json:"factors"`

	// ReasonForDanger is a human-readable rendering of Factors for
	// debugging and logging.
	ReasonForDanger string `json:"reason_for_danger"`
}
