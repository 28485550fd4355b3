// Package test provides deterministic scene generators for integration
// testing the collision analysis pipeline.
package test

import (
	"fmt"
	"math/rand"

	"github.com/nvr-ai/go-collision/common"
	"github.com/nvr-ai/go-collision/depthmap"
)

// SceneGenerator creates deterministic depth scenes with controlled
// foreground content for idempotent testing.
type SceneGenerator struct {
	width  int
	height int
	seed   int64
}

// NewSceneGenerator creates a generator with the given dimensions.
func NewSceneGenerator(width, height int) *SceneGenerator {
	return &SceneGenerator{
		width:  width,
		height: height,
		seed:   42, // Deterministic seed for reproducibility.
	}
}

// UniformScene returns a depth map filled with a single value.
func (g *SceneGenerator) UniformScene(depth float32) *depthmap.Map {
	m, err := depthmap.New(g.width, g.height)
	if err != nil {
		panic(err)
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			m.Set(x, y, depth)
		}
	}
	return m
}

// GradientScene returns a map whose depth increases toward the bottom of
// the frame, like ground sloping toward the camera: the top row reads far,
// the bottom row reads near.
func (g *SceneGenerator) GradientScene(far, near float32) *depthmap.Map {
	m, err := depthmap.New(g.width, g.height)
	if err != nil {
		panic(err)
	}
	rows := g.height - 1
	if rows == 0 {
		rows = 1
	}
	for y := 0; y < g.height; y++ {
		v := far + (near-far)*float32(y)/float32(rows)
		for x := 0; x < g.width; x++ {
			m.Set(x, y, v)
		}
	}
	return m
}

// BlobScene returns a gradient background with a uniform foreground blob
// written into the given box at the given depth, plus the labeled object
// covering it.
func (g *SceneGenerator) BlobScene(box common.BoundingBox, blobDepth float32) (*depthmap.Map, common.LabeledObject) {
	m := g.GradientScene(0.05, 0.45)
	for y := box.Y1; y <= box.Y2; y++ {
		for x := box.X1; x <= box.X2; x++ {
			if x >= 0 && x < g.width && y >= 0 && y < g.height {
				m.Set(x, y, blobDepth)
			}
		}
	}
	obj := common.LabeledObject{
		ObjectID:            "blob_0",
		Label:               "obstacle",
		BBox:                box,
		DetectionConfidence: 0.9,
	}
	return m, obj
}

// NoisyScene returns a seeded pseudo-random depth field in [0, 1). The same
// generator dimensions always produce the same field.
func (g *SceneGenerator) NoisyScene() *depthmap.Map {
	rng := rand.New(rand.NewSource(g.seed))
	m, err := depthmap.New(g.width, g.height)
	if err != nil {
		panic(err)
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			m.Set(x, y, rng.Float32())
		}
	}
	return m
}

// RandomObjects returns count seeded random labeled boxes inside the frame.
func (g *SceneGenerator) RandomObjects(count int) []common.LabeledObject {
	rng := rand.New(rand.NewSource(g.seed + 1))
	objects := make([]common.LabeledObject, count)
	for i := range objects {
		w := 2 + rng.Intn(g.width/2)
		h := 2 + rng.Intn(g.height/2)
		x1 := rng.Intn(g.width - w)
		y1 := rng.Intn(g.height - h)
		objects[i] = common.LabeledObject{
			ObjectID:            fmt.Sprintf("object_%d", i),
			Label:               "obstacle",
			BBox:                common.NewBoundingBox(x1, y1, x1+w, y1+h),
			DetectionConfidence: 0.5 + rng.Float32()*0.5,
		}
	}
	return objects
}
