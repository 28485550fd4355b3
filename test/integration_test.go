package test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-collision/collision"
	"github.com/nvr-ai/go-collision/common"
	"github.com/nvr-ai/go-collision/depthio"
	"github.com/nvr-ai/go-collision/depthmap"
	"github.com/nvr-ai/go-collision/render"
)

// TestFullPipeline runs the whole path a caller walks: rescale detector
// boxes into depth space, analyze, and render the overlay.
func TestFullPipeline(t *testing.T) {
	gen := NewSceneGenerator(128, 96)
	m, blob := gen.BlobScene(common.NewBoundingBox(48, 60, 80, 90), 0.95)

	// A detector running at camera resolution 640x480.
	detections := []common.LabeledObject{
		{
			ObjectID:            "person_1",
			Label:               "person",
			BBox:                common.NewBoundingBox(240, 300, 400, 450),
			DetectionConfidence: 0.92,
		},
	}
	rescaled := depthio.RescaleObjects(detections, 640, 480, m.Width(), m.Height())
	require.Equal(t, blob.BBox.X1, rescaled[0].BBox.X1)
	require.Equal(t, blob.BBox.Y1, rescaled[0].BBox.Y1)

	engine := collision.NewEngine(collision.Options{})
	results, err := engine.Analyze(m, rescaled)
	require.NoError(t, err)
	require.Len(t, results, 1)

	obj := results[0]
	require.Equal(t, "person_1", obj.ObjectID)
	require.True(t, obj.Danger.MoreSevere(common.Safe),
		"a near centered blob in the walking path should not be safe, got %s (%s)",
		obj.Danger, obj.ReasonForDanger)
	require.Contains(t, obj.Direction, "center")

	overlay := render.Overlay(render.Heatmap(m), results)
	require.Equal(t, m.Width(), overlay.Bounds().Dx())
	require.Equal(t, m.Height(), overlay.Bounds().Dy())
}

// TestRankingInvariant checks that output danger levels never increase down
// the result list, across a spread of random frames.
func TestRankingInvariant(t *testing.T) {
	gen := NewSceneGenerator(96, 96)
	engine := collision.NewEngine(collision.Options{})

	m := gen.NoisyScene()
	objects := gen.RandomObjects(25)

	results, err := engine.Analyze(m, objects)
	require.NoError(t, err)
	require.Len(t, results, len(objects))

	for i := 1; i < len(results); i++ {
		require.False(t, results[i].Danger.MoreSevere(results[i-1].Danger),
			"result %d (%s) outranks result %d (%s)",
			i, results[i].Danger, i-1, results[i-1].Danger)
	}

	// Every input object comes back exactly once.
	seen := make(map[string]bool, len(results))
	for _, obj := range results {
		require.False(t, seen[obj.ObjectID])
		seen[obj.ObjectID] = true
	}
}

// TestParallelMatchesSerial verifies the worker fan-out changes nothing
// about the output.
func TestParallelMatchesSerial(t *testing.T) {
	gen := NewSceneGenerator(64, 64)
	m := gen.NoisyScene()
	objects := gen.RandomObjects(40)

	serial, err := collision.NewEngine(collision.Options{}).Analyze(m, objects)
	require.NoError(t, err)

	parallel, err := collision.NewEngine(collision.Options{Workers: 8}).Analyze(m, objects)
	require.NoError(t, err)

	require.Equal(t, serial, parallel)
}

// TestScoreBounds fuzzes random scenes and objects against the documented
// score range: [0, 1.3], the upper bound being the unclamped walking-path
// boost applied to a perfectly centered position factor.
func TestScoreBounds(t *testing.T) {
	engine := collision.NewEngine(collision.Options{})
	for _, dims := range [][2]int{{8, 8}, {33, 17}, {128, 64}} {
		gen := NewSceneGenerator(dims[0], dims[1])
		results, err := engine.Analyze(gen.NoisyScene(), gen.RandomObjects(15))
		require.NoError(t, err)
		for _, obj := range results {
			require.GreaterOrEqual(t, obj.ConfidenceScore, float32(0))
			require.LessOrEqual(t, obj.ConfidenceScore, float32(1.3))
			require.False(t, obj.ConfidenceScore != obj.ConfidenceScore, "NaN score")
		}
	}
}

// TestTensorRoundTrip feeds a tensor-backed depth plane through the engine.
func TestTensorRoundTrip(t *testing.T) {
	gen := NewSceneGenerator(32, 24)
	m := gen.NoisyScene()

	tens := depthio.ToTensor(m)
	back, err := depthio.FromTensor(tens)
	require.NoError(t, err)
	require.Equal(t, m.Values(), back.Values())

	scene, err := depthmap.AnalyzeScene(back)
	require.NoError(t, err)
	require.LessOrEqual(t, scene.Min, scene.Max)
}
