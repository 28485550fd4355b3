package benchmark

import (
	"fmt"
	"math/rand"

	"github.com/nvr-ai/go-collision/common"
	"github.com/nvr-ai/go-collision/depthmap"
)

// Frame is one synthetic benchmark input: a depth map plus the labeled
// objects detected in it.
type Frame struct {
	Map     *depthmap.Map
	Objects []common.LabeledObject
}

// GenerateCorpus builds a deterministic synthetic corpus: each frame has a
// floor-like vertical depth gradient with foreground blobs dropped onto it,
// and one labeled box per blob. The same seed always produces the same
// corpus, so runs are comparable.
func GenerateCorpus(res Resolution, objectCount, frames int, seed int64) []Frame {
	rng := rand.New(rand.NewSource(seed))
	corpus := make([]Frame, frames)
	for i := range corpus {
		corpus[i] = generateFrame(res, objectCount, rng)
	}
	return corpus
}

func generateFrame(res Resolution, objectCount int, rng *rand.Rand) Frame {
	m, err := depthmap.New(res.Width, res.Height)
	if err != nil {
		panic(fmt.Sprintf("benchmark: bad resolution %+v: %v", res, err))
	}

	// Background: lower rows nearer, like ground ahead of the camera.
	for y := 0; y < res.Height; y++ {
		base := 0.1 + 0.4*float32(y)/float32(res.Height)
		for x := 0; x < res.Width; x++ {
			m.Set(x, y, base+rng.Float32()*0.02)
		}
	}

	objects := make([]common.LabeledObject, objectCount)
	for i := range objects {
		w := 4 + rng.Intn(res.Width/4)
		h := 4 + rng.Intn(res.Height/4)
		x1 := rng.Intn(res.Width - w)
		y1 := rng.Intn(res.Height - h)
		depth := 0.55 + rng.Float32()*0.45

		for y := y1; y < y1+h; y++ {
			for x := x1; x < x1+w; x++ {
				m.Set(x, y, depth)
			}
		}

		objects[i] = common.LabeledObject{
			ObjectID:            fmt.Sprintf("object_%d", i),
			Label:               "obstacle",
			BBox:                common.NewBoundingBox(x1, y1, x1+w-1, y1+h-1),
			DetectionConfidence: 0.5 + rng.Float32()*0.5,
		}
	}

	return Frame{Map: m, Objects: objects}
}
